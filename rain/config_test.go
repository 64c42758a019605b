package rain

import (
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/lixenwraith/vi-rain/parameter/visual"
	"github.com/lixenwraith/vi-rain/terminal"
)

func TestPresetsValid(t *testing.T) {
	for _, p := range Presets() {
		t.Run(string(p), func(t *testing.T) {
			cfg, err := PresetConfig(p)
			if err != nil {
				t.Fatalf("PresetConfig: %v", err)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset invalid: %v", err)
			}
			r, err := NewPreset(string(p), time.Second)
			if err != nil {
				t.Fatalf("NewPreset: %v", err)
			}
			if r.Elapsed() != time.Second {
				t.Errorf("elapsed = %v", r.Elapsed())
			}
		})
	}

	constructors := map[string]func(time.Duration) Rain{
		"matrix":     NewMatrix,
		"rain":       NewRain,
		"snow":       NewSnow,
		"emoji-soup": NewEmojiSoup,
	}
	for name, ctor := range constructors {
		want, _ := NewPreset(name, 3*time.Second)
		if got := ctor(3 * time.Second); !reflect.DeepEqual(got, want) {
			t.Errorf("%s constructor differs from NewPreset", name)
		}
	}
}

func TestUnknownPreset(t *testing.T) {
	_, err := NewPreset("hail", 0)
	if !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("got %v, want ErrUnknownPreset", err)
	}
	if _, err := NewPreset("MATRIX", 0); err != nil {
		t.Errorf("preset lookup should be case-insensitive: %v", err)
	}
}

func TestValidatePolicy(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   error
		option string
	}{
		{"EmptyExplicit", func(c *Config) { c.Charset = Explicit() }, ErrEmptyCharset, "character set"},
		{"ZeroValueCharset", func(c *Config) { c.Charset = CharacterSet{} }, ErrEmptyCharset, "character set"},
		{"ZeroRange", func(c *Config) { c.Charset = UnicodeRange('a', 0) }, ErrInvalidRange, "character set"},
		{"NegativeRange", func(c *Config) { c.Charset = UnicodeRange('a', -4) }, ErrInvalidRange, "character set"},
		{"NegativeStart", func(c *Config) { c.Charset = UnicodeRange(-1, 4) }, ErrInvalidRange, "character set"},
		{"PastMaxRune", func(c *Config) { c.Charset = UnicodeRange(0x10FFFE, 4) }, ErrInvalidRange, "character set"},
		{"Surrogates", func(c *Config) { c.Charset = UnicodeRange(0xD7F0, 32) }, ErrInvalidRange, "character set"},
		{"ZeroSparseness", func(c *Config) { c.Density = RelativeDensity(0) }, ErrInvalidDensity, "density"},
		{"NegativeSparseness", func(c *Config) { c.Density = RelativeDensity(-5) }, ErrInvalidDensity, "density"},
		{"NegativeCount", func(c *Config) { c.Density = AbsoluteDensity(-1) }, ErrInvalidDensity, "density"},
		{"ZeroSpeed", func(c *Config) { c.Speed = AbsoluteSpeed(0) }, ErrInvalidSpeed, "speed"},
		{"NegativeSpeed", func(c *Config) { c.Speed = AbsoluteSpeed(-1) }, ErrInvalidSpeed, "speed"},
		{"NaNSpeed", func(c *Config) { c.Speed = AbsoluteSpeed(math.NaN()) }, ErrInvalidSpeed, "speed"},
		{"InfSpeed", func(c *Config) { c.Speed = AbsoluteSpeed(math.Inf(1)) }, ErrInvalidSpeed, "speed"},
		{"NegativeVariance", func(c *Config) { c.Variance = -0.1 }, ErrInvalidVariance, "speed variance"},
		{"NaNVariance", func(c *Config) { c.Variance = math.NaN() }, ErrInvalidVariance, "speed variance"},
		{"NegativeLifespan", func(c *Config) { c.TailLifespan = -time.Second }, ErrInvalidLifespan, "tail lifespan"},
		{"ZeroNoise", func(c *Config) { c.NoiseInterval = 0 }, ErrInvalidNoise, "noise interval"},
		{"NegativeNoise", func(c *Config) { c.NoiseInterval = -time.Second }, ErrInvalidNoise, "noise interval"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, tt.want) {
				t.Fatalf("Validate() = %v, want %v", err, tt.want)
			}
			var ce *ConfigError
			if !errors.As(err, &ce) {
				t.Fatalf("error %v is not a *ConfigError", err)
			}
			if ce.Option != tt.option {
				t.Errorf("option = %q, want %q", ce.Option, tt.option)
			}
		})
	}
}

func TestValidateAcceptsEdgeValues(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"ZeroCount", func(c *Config) { c.Density = AbsoluteDensity(0) }},
		{"ZeroVariance", func(c *Config) { c.Variance = 0 }},
		{"HugeVariance", func(c *Config) { c.Variance = 1e6 }},
		{"ZeroLifespan", func(c *Config) { c.TailLifespan = 0 }},
		{"SingleRune", func(c *Config) { c.Charset = Explicit('x') }},
		{"LastPlane", func(c *Config) { c.Charset = UnicodeRange(0x10FFF0, 16) }},
		{"AnyColor", func(c *Config) { c.Color = terminal.RGB{R: 1, G: 2, B: 3}; c.HeadColor = terminal.RGB{} }},
		{"AnySeed", func(c *Config) { c.Seed = math.MaxUint64 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			if err := cfg.Validate(); err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestValidateJoinsAll(t *testing.T) {
	r := NewMatrix(0).
		WithCharacterSet(Explicit()).
		WithNoiseInterval(0).
		WithSpeed(AbsoluteSpeed(-2))
	err := r.Err()
	for _, want := range []error{ErrEmptyCharset, ErrInvalidNoise, ErrInvalidSpeed} {
		if !errors.Is(err, want) {
			t.Errorf("joined error %v missing %v", err, want)
		}
	}
}

func TestOverridesOrderIndependent(t *testing.T) {
	a := NewSnow(2 * time.Second).
		WithSeed(99).
		WithDensity(DensitySparse).
		WithColor(terminal.RGB{R: 10, G: 20, B: 30}).
		WithSpeedVariance(0.3).
		WithCharacterSet(CharsetLowercase)
	b := NewSnow(2 * time.Second).
		WithCharacterSet(CharsetLowercase).
		WithSpeedVariance(0.3).
		WithColor(terminal.RGB{R: 10, G: 20, B: 30}).
		WithDensity(DensitySparse).
		WithSeed(99)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("override order changed the configuration")
	}

	ra, err := render(a, 40, 20)
	if err != nil {
		t.Fatal(err)
	}
	rb, _ := render(b, 40, 20)
	if !ra.equal(rb) {
		t.Error("override order changed the output")
	}

	// An invalid override does not disturb unrelated options
	bad := a.WithNoiseInterval(0)
	if bad.Config().Seed != 99 || bad.Config().Charset.String() != "lowercase" {
		t.Error("invalid override leaked into other options")
	}
}

func TestWithCopies(t *testing.T) {
	base := NewMatrix(time.Second)
	_ = base.WithSeed(42).WithBoldDim(false).WithElapsed(time.Hour)
	if base.Config().Seed != DefaultConfig().Seed || !base.Config().BoldDim || base.Elapsed() != time.Second {
		t.Error("With methods mutated the receiver")
	}

	runes := []rune{'a', 'b'}
	cs := Explicit(runes...)
	runes[0] = 'z'
	if cs.At(0) != 'a' {
		t.Error("Explicit aliases the caller's slice")
	}
}

func TestCharacterSet(t *testing.T) {
	abc := Explicit('a', 'b', 'c')
	if abc.Len() != 3 || abc.At(1) != 'b' || abc.At(4) != 'b' || abc.At(-1) != 'c' {
		t.Errorf("explicit indexing broken: len=%d", abc.Len())
	}
	if CharsetHalfKana.Len() != 56 || CharsetHalfKana.At(0) != 0xFF66 || CharsetHalfKana.At(55) != 0xFF9D {
		t.Error("half-kana range wrong")
	}
	if CharsetLowercase.At(0) != 'a' || CharsetLowercase.At(25) != 'z' {
		t.Error("lowercase range wrong")
	}
	if (CharacterSet{}).At(3) != 0 {
		t.Error("empty set should yield 0")
	}
	if ExplicitString("01").At(1) != '1' {
		t.Error("ExplicitString wrong")
	}

	for _, name := range CharacterSetNames() {
		cs, ok := CharacterSetByName(name)
		if !ok {
			t.Errorf("preset %q not found", name)
			continue
		}
		if err := cs.validate(); err != nil {
			t.Errorf("preset %q invalid: %v", name, err)
		}
	}
	if _, ok := CharacterSetByName(" Half-Kana "); !ok {
		t.Error("lookup should trim and ignore case")
	}
	if _, ok := CharacterSetByName("klingon"); ok {
		t.Error("unknown name resolved")
	}
}

func TestDensityTarget(t *testing.T) {
	tests := []struct {
		name          string
		d             Density
		width, height int
		want          int
	}{
		{"Absolute", AbsoluteDensity(7), 80, 24, 7},
		{"AbsoluteZero", AbsoluteDensity(0), 80, 24, 0},
		{"AbsoluteNegative", AbsoluteDensity(-3), 80, 24, 0},
		{"AbsoluteClamped", AbsoluteDensity(1 << 40), 80, 24, 1 << 20},
		{"Relative", RelativeDensity(50), 100, 50, 100},
		{"RelativeRoundsUp", RelativeDensity(3), 5, 1, 2},
		{"RelativeRoundsDown", RelativeDensity(4), 5, 1, 1},
		{"RelativeOneByOne", RelativeDensity(1), 1, 1, 1},
		{"RelativeZeroSparseness", RelativeDensity(0), 10, 10, 0},
		{"RelativeEmptyGrid", RelativeDensity(10), 0, 10, 0},
		{"Normal", DensityNormal, 200, 50, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.Target(tt.width, tt.height); got != tt.want {
				t.Errorf("Target(%d, %d) = %d, want %d", tt.width, tt.height, got, tt.want)
			}
		})
	}
}

func TestMatrixDefaults(t *testing.T) {
	cfg := NewMatrix(0).Config()
	if cfg.Density != RelativeDensity(100) || cfg.Density.Target(100, 10) != 10 {
		t.Errorf("density = %v, want relative(100)", cfg.Density)
	}
	if cfg.Speed.RowsPerSecond() != 5 {
		t.Errorf("speed = %v, want 5 rows/sec", cfg.Speed)
	}
	if cfg.TailLifespan != time.Second || cfg.Seed != 1234 {
		t.Errorf("tail %v seed %d, want 1s and 1234", cfg.TailLifespan, cfg.Seed)
	}
	if cfg.Charset.String() != CharsetHalfKana.String() || cfg.Color != visual.RgbMatrixGreen {
		t.Errorf("charset %v color %v", cfg.Charset, cfg.Color)
	}
}
