package rain

import (
	"fmt"
	"strings"
	"time"

	"github.com/lixenwraith/vi-rain/parameter"
	"github.com/lixenwraith/vi-rain/parameter/visual"
)

// Preset names a built-in configuration
type Preset string

const (
	PresetMatrix    Preset = "matrix"
	PresetRain      Preset = "rain"
	PresetSnow      Preset = "snow"
	PresetEmojiSoup Preset = "emoji-soup"
)

// Presets lists the built-in presets
func Presets() []Preset {
	return []Preset{PresetMatrix, PresetRain, PresetSnow, PresetEmojiSoup}
}

// PresetConfig returns the configuration of a built-in preset
func PresetConfig(p Preset) (Config, error) {
	switch Preset(strings.ToLower(string(p))) {
	case PresetMatrix:
		return DefaultConfig(), nil
	case PresetRain:
		return Config{
			Charset:       UnicodeRange(parameter.RainGlyph, 1),
			Density:       DensityDense,
			Speed:         SpeedFast,
			Variance:      parameter.RainVariance,
			TailLifespan:  parameter.RainTailLifespan,
			Color:         visual.RgbLightBlue,
			HeadColor:     visual.RgbLightBlue,
			BoldDim:       false,
			NoiseInterval: parameter.RainNoiseInterval,
			Seed:          parameter.DefaultSeed,
		}, nil
	case PresetSnow:
		return Config{
			Charset:       Explicit(parameter.SnowGlyph),
			Density:       DensityDense,
			Speed:         SpeedSlow,
			Variance:      parameter.SnowVariance,
			TailLifespan:  parameter.SnowTailLifespan,
			Color:         visual.RgbSnow,
			HeadColor:     visual.RgbWhite,
			BoldDim:       true,
			NoiseInterval: parameter.SnowNoiseInterval,
			Seed:          parameter.DefaultSeed,
		}, nil
	case PresetEmojiSoup:
		return Config{
			Charset:       UnicodeRange(parameter.EmojiStart, parameter.EmojiCount),
			Density:       DensityDense,
			Speed:         SpeedNormal,
			Variance:      parameter.EmojiVariance,
			TailLifespan:  parameter.EmojiTailLifespan,
			Color:         visual.RgbWhite,
			HeadColor:     visual.RgbWhite,
			BoldDim:       false,
			NoiseInterval: parameter.EmojiNoiseInterval,
			Seed:          parameter.DefaultSeed,
		}, nil
	}
	return Config{}, fmt.Errorf("%w: %q", ErrUnknownPreset, string(p))
}

// NewPreset returns the named preset at elapsed
func NewPreset(name string, elapsed time.Duration) (Rain, error) {
	cfg, err := PresetConfig(Preset(name))
	if err != nil {
		return Rain{}, err
	}
	return New(cfg, elapsed), nil
}

func mustPreset(p Preset, elapsed time.Duration) Rain {
	cfg, err := PresetConfig(p)
	if err != nil {
		panic(err)
	}
	return New(cfg, elapsed)
}

// NewMatrix returns green half-width kana with white heads and bold/dim grading
func NewMatrix(elapsed time.Duration) Rain { return mustPreset(PresetMatrix, elapsed) }

// NewRain returns fast, short, light blue streaks
func NewRain(elapsed time.Duration) Rain { return mustPreset(PresetRain, elapsed) }

// NewSnow returns slow white flakes
func NewSnow(elapsed time.Duration) Rain { return mustPreset(PresetSnow, elapsed) }

// NewEmojiSoup returns falling emoticons
func NewEmojiSoup(elapsed time.Duration) Rain { return mustPreset(PresetEmojiSoup, elapsed) }
