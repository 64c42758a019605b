// Package rain renders falling-glyph effects (matrix, rain, snow, emoji soup) into a
// character-cell sink.
//
// Every frame is reconstructed from (configuration, elapsed, width, height) alone:
// drops come from a keyed random field and are positioned by exact fixed-point
// modular arithmetic. Nothing persists between calls, so any frame can be rendered
// at any time and at any size, from any goroutine.
//
//	r := rain.NewMatrix(time.Since(start)).WithSeed(7)
//	if err := r.Render(buf, width, height); err != nil {
//		return err
//	}
package rain

import (
	"time"

	"github.com/lixenwraith/vi-rain/terminal"
)

// Rain is an immutable engine value: a configuration plus the instant to render
// Every With method returns an updated copy; overrides are order-independent
type Rain struct {
	elapsed time.Duration
	cfg     Config
}

// New returns an engine for cfg at elapsed
func New(cfg Config, elapsed time.Duration) Rain {
	return Rain{elapsed: elapsed, cfg: cfg}
}

// Config returns the configuration
func (r Rain) Config() Config { return r.cfg }

// Elapsed returns the instant rendered by Render
func (r Rain) Elapsed() time.Duration { return r.elapsed }

// Err reports configuration problems; nil when the engine can render
func (r Rain) Err() error { return r.cfg.Validate() }

func (r Rain) WithElapsed(elapsed time.Duration) Rain {
	r.elapsed = elapsed
	return r
}

func (r Rain) WithCharacterSet(cs CharacterSet) Rain {
	r.cfg.Charset = cs
	return r
}

func (r Rain) WithDensity(d Density) Rain {
	r.cfg.Density = d
	return r
}

func (r Rain) WithSpeed(s Speed) Rain {
	r.cfg.Speed = s
	return r
}

// WithSpeedVariance sets the fraction by which each drop's speed deviates from the base
func (r Rain) WithSpeedVariance(v float64) Rain {
	r.cfg.Variance = v
	return r
}

func (r Rain) WithTailLifespan(d time.Duration) Rain {
	r.cfg.TailLifespan = d
	return r
}

func (r Rain) WithColor(c terminal.RGB) Rain {
	r.cfg.Color = c
	return r
}

func (r Rain) WithHeadColor(c terminal.RGB) Rain {
	r.cfg.HeadColor = c
	return r
}

// WithBoldDim toggles bold for young tail segments and dim for old ones
func (r Rain) WithBoldDim(enabled bool) Rain {
	r.cfg.BoldDim = enabled
	return r
}

// WithNoiseInterval sets how long a cell keeps its glyph before rerolling
func (r Rain) WithNoiseInterval(d time.Duration) Rain {
	r.cfg.NoiseInterval = d
	return r
}

func (r Rain) WithSeed(seed uint64) Rain {
	r.cfg.Seed = seed
	return r
}

// Compose resolves the frame at the engine's elapsed time without drawing it
func (r Rain) Compose(width, height int) (Frame, error) {
	if err := r.cfg.Validate(); err != nil {
		return Frame{}, err
	}
	return compose(r.cfg, r.elapsed, width, height), nil
}

// Render writes every covered cell to sink and leaves the rest untouched
// An invalid configuration draws nothing and returns the error; an empty grid is a no-op
func (r Rain) Render(sink Sink, width, height int) error {
	f, err := r.Compose(width, height)
	if err != nil {
		return err
	}
	f.Draw(sink)
	return nil
}
