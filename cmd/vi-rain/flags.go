package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/vi-rain/parameter"
	"github.com/lixenwraith/vi-rain/rain"
	"github.com/lixenwraith/vi-rain/render"
)

// options holds parsed command-line flags
// Only flags the user set override the preset
type options struct {
	preset   string
	seed     uint64
	density  string
	speed    string
	variance float64
	tail     time.Duration
	noise    time.Duration
	color    string
	head     string
	bold     bool
	chars    string
	fps      int
	debug    bool
	snapshot bool
	at       time.Duration
	width    int
	height   int
	profile  string
	list     bool

	set map[string]bool
}

var errBadFPS = errors.New("fps must be in [1, " + strconv.Itoa(parameter.MaxFPS) + "]")

// parseOptions parses args (without the program name)
func parseOptions(args []string, output io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("vi-rain", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&o.preset, "preset", string(rain.PresetMatrix), "Preset: matrix, rain, snow, emoji-soup")
	fs.Uint64Var(&o.seed, "seed", parameter.DefaultSeed, "Random field seed")
	fs.StringVar(&o.density, "density", "", "Density: sparse, normal, dense, N drops, or rel:N cells per drop")
	fs.StringVar(&o.speed, "speed", "", "Speed: slow, normal, fast, or rows per second")
	fs.Float64Var(&o.variance, "variance", 0, "Speed variance as a fraction of base speed")
	fs.DurationVar(&o.tail, "tail", 0, "Tail lifespan (e.g. 2s, 250ms)")
	fs.DurationVar(&o.noise, "noise", 0, "Glyph noise interval")
	fs.StringVar(&o.color, "color", "", "Body color: palette name or #rrggbb")
	fs.StringVar(&o.head, "head", "", "Head color: palette name or #rrggbb")
	fs.BoolVar(&o.bold, "bold", false, "Bold/dim grading by tail age")
	fs.StringVar(&o.chars, "chars", "", "Character set: preset name, U+XXXX:N range, or literal glyphs")
	fs.IntVar(&o.fps, "fps", parameter.DefaultFPS, "Frames per second")
	fs.BoolVar(&o.debug, "debug", false, "Write debug log to "+parameter.LogDir+"/"+parameter.LogFileName)
	fs.BoolVar(&o.snapshot, "snapshot", false, "Print one frame to stdout and exit")
	fs.DurationVar(&o.at, "at", 0, "Elapsed time of the first (or snapshot) frame")
	fs.IntVar(&o.width, "width", 80, "Snapshot width")
	fs.IntVar(&o.height, "height", 24, "Snapshot height")
	fs.StringVar(&o.profile, "profile", "auto", "Snapshot color profile: auto, truecolor, 256, 16, ascii")
	fs.BoolVar(&o.list, "list", false, "List presets, character sets and colors")

	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if o.fps < 1 || o.fps > parameter.MaxFPS {
		return o, fmt.Errorf("%w: %d", errBadFPS, o.fps)
	}

	o.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
	return o, nil
}

// build resolves the preset and applies every explicitly set override
func (o options) build() (rain.Rain, error) {
	r, err := rain.NewPreset(o.preset, o.at)
	if err != nil {
		return rain.Rain{}, err
	}

	var errs []error
	if o.set["seed"] {
		r = r.WithSeed(o.seed)
	}
	if o.set["density"] {
		d, err := parseDensity(o.density)
		errs = append(errs, err)
		r = r.WithDensity(d)
	}
	if o.set["speed"] {
		s, err := parseSpeed(o.speed)
		errs = append(errs, err)
		r = r.WithSpeed(s)
	}
	if o.set["variance"] {
		r = r.WithSpeedVariance(o.variance)
	}
	if o.set["tail"] {
		r = r.WithTailLifespan(o.tail)
	}
	if o.set["noise"] {
		r = r.WithNoiseInterval(o.noise)
	}
	if o.set["color"] {
		c, err := render.ParseColor(o.color)
		errs = append(errs, err)
		r = r.WithColor(c)
	}
	if o.set["head"] {
		c, err := render.ParseColor(o.head)
		errs = append(errs, err)
		r = r.WithHeadColor(c)
	}
	if o.set["bold"] {
		r = r.WithBoldDim(o.bold)
	}
	if o.set["chars"] {
		cs, err := parseCharset(o.chars)
		errs = append(errs, err)
		r = r.WithCharacterSet(cs)
	}

	if err := errors.Join(errs...); err != nil {
		return rain.Rain{}, err
	}
	return r, r.Err()
}

// parseDensity accepts sparse|normal|dense, an absolute count, or rel:N
func parseDensity(s string) (rain.Density, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "sparse":
		return rain.DensitySparse, nil
	case "normal":
		return rain.DensityNormal, nil
	case "dense":
		return rain.DensityDense, nil
	}
	if rest, ok := strings.CutPrefix(s, "rel:"); ok {
		n, err := strconv.Atoi(rest)
		if err != nil {
			return rain.Density{}, fmt.Errorf("density %q: %w", s, err)
		}
		return rain.RelativeDensity(n), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return rain.Density{}, fmt.Errorf("density %q: %w", s, err)
	}
	return rain.AbsoluteDensity(n), nil
}

// parseSpeed accepts slow|normal|fast or rows per second
func parseSpeed(s string) (rain.Speed, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "slow":
		return rain.SpeedSlow, nil
	case "normal":
		return rain.SpeedNormal, nil
	case "fast":
		return rain.SpeedFast, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return rain.Speed{}, fmt.Errorf("speed %q: %w", s, err)
	}
	return rain.AbsoluteSpeed(v), nil
}

// parseCharset accepts a named set, a U+XXXX:N code point range, or literal glyphs
func parseCharset(s string) (rain.CharacterSet, error) {
	if cs, ok := rain.CharacterSetByName(s); ok {
		return cs, nil
	}
	upper := strings.ToUpper(s)
	if rest, ok := strings.CutPrefix(upper, "U+"); ok {
		start, count, found := strings.Cut(rest, ":")
		if !found {
			return rain.CharacterSet{}, fmt.Errorf("chars %q: want U+XXXX:N", s)
		}
		cp, err := strconv.ParseUint(start, 16, 32)
		if err != nil {
			return rain.CharacterSet{}, fmt.Errorf("chars %q: %w", s, err)
		}
		n, err := strconv.Atoi(count)
		if err != nil {
			return rain.CharacterSet{}, fmt.Errorf("chars %q: %w", s, err)
		}
		return rain.UnicodeRange(rune(cp), n), nil
	}
	return rain.ExplicitString(s), nil
}
