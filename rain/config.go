package rain

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/lixenwraith/vi-rain/parameter"
	"github.com/lixenwraith/vi-rain/parameter/visual"
	"github.com/lixenwraith/vi-rain/terminal"
	"github.com/lixenwraith/vi-rain/vmath"
)

// Config is the complete, immutable option set of the engine
// Together with (elapsed, width, height) it fully determines the output
type Config struct {
	Charset       CharacterSet
	Density       Density
	Speed         Speed
	Variance      float64       // fraction of base speed, >= 0
	TailLifespan  time.Duration // time a tail segment stays visible, >= 0
	Color         terminal.RGB
	HeadColor     terminal.RGB
	BoldDim       bool
	NoiseInterval time.Duration // glyph reroll period, > 0
	Seed          uint64
}

// DefaultConfig returns the matrix preset configuration
func DefaultConfig() Config {
	return Config{
		Charset:       CharsetHalfKana,
		Density:       DensitySparse,
		Speed:         SpeedSlow,
		Variance:      parameter.MatrixVariance,
		TailLifespan:  parameter.MatrixTailLifespan,
		Color:         visual.RgbMatrixGreen,
		HeadColor:     visual.RgbWhite,
		BoldDim:       true,
		NoiseInterval: parameter.MatrixNoiseInterval,
		Seed:          parameter.DefaultSeed,
	}
}

// Validate reports every invalid option, joined in field order
// The result depends only on option values, never on the order overrides were applied
func (c Config) Validate() error {
	return errors.Join(
		optionError("character set", c.Charset.validate()),
		optionError("density", c.Density.validate()),
		optionError("speed", c.Speed.validate()),
		optionError("speed variance", validateVariance(c.Variance)),
		optionError("tail lifespan", validateLifespan(c.TailLifespan)),
		optionError("noise interval", validateNoise(c.NoiseInterval)),
	)
}

func validateVariance(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidVariance, v)
	}
	return nil
}

func validateLifespan(d time.Duration) error {
	if d < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidLifespan, d)
	}
	return nil
}

func validateNoise(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidNoise, d)
	}
	return nil
}

// params is the Q32.32 form of the numeric options, converted once per render
type params struct {
	seed      uint64
	baseSpeed int64
	variance  int64
	minSpeed  int64
	lifespan  time.Duration
}

func (c Config) params() params {
	return params{
		seed:      c.Seed,
		baseSpeed: vmath.FromFloat(c.Speed.rowsPerSecond),
		variance:  vmath.FromFloat(c.Variance),
		minSpeed:  vmath.FromFloat(parameter.MinSpeed),
		lifespan:  c.TailLifespan,
	}
}
