package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lixenwraith/vi-rain/parameter"
	"github.com/lixenwraith/vi-rain/parameter/visual"
	"github.com/lixenwraith/vi-rain/rain"
	"github.com/lixenwraith/vi-rain/render"
	"github.com/lixenwraith/vi-rain/terminal"
)

// resolveProfile maps the -profile flag to a termenv profile; auto inspects w and the environment
func resolveProfile(name string, w io.Writer) termenv.Profile {
	switch strings.ToLower(name) {
	case "truecolor", "true", "24bit":
		return termenv.TrueColor
	case "256":
		return termenv.ANSI256
	case "16", "ansi":
		return termenv.ANSI
	case "ascii", "none":
		return termenv.Ascii
	}
	return termenv.NewOutput(w).EnvColorProfile()
}

// swatch renders a head-to-body color ramp
func swatch(re *lipgloss.Renderer, head, body terminal.RGB) string {
	var b strings.Builder
	for _, c := range render.Gradient(head, body, parameter.LegendGradientSteps) {
		b.WriteString(re.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render("█"))
	}
	return b.String()
}

// caption is the styled header printed above a snapshot
func caption(r rain.Rain, preset string, profile termenv.Profile) string {
	re := lipgloss.NewRenderer(io.Discard)
	re.SetColorProfile(profile)
	cfg := r.Config()

	title := re.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(cfg.HeadColor.Hex())).
		Background(lipgloss.Color(visual.RgbBlack.Hex())).
		Padding(0, 1).
		Render(preset)
	meta := re.NewStyle().
		Foreground(lipgloss.Color(cfg.Color.Hex())).
		PaddingLeft(1).
		Render(fmt.Sprintf("t=%v %s", r.Elapsed(), describe(cfg)))

	return lipgloss.JoinHorizontal(lipgloss.Center, title, swatch(re, cfg.HeadColor, cfg.Color), meta)
}

// printList writes presets, named character sets and palette colors
func printList(w io.Writer) {
	re := lipgloss.NewRenderer(w)
	heading := re.NewStyle().Bold(true).Underline(true)
	name := re.NewStyle().Width(14)

	fmt.Fprintln(w, heading.Render("Presets"))
	for _, p := range rain.Presets() {
		cfg, _ := rain.PresetConfig(p)
		fmt.Fprintf(w, "  %s%s %s\n", name.Render(string(p)), swatch(re, cfg.HeadColor, cfg.Color), cfg.Charset)
	}

	fmt.Fprintln(w, heading.Render("Character sets"))
	for _, n := range rain.CharacterSetNames() {
		cs, _ := rain.CharacterSetByName(n)
		sample := make([]rune, 0, 8)
		for i := 0; i < min(cs.Len(), 8); i++ {
			sample = append(sample, cs.At(i))
		}
		fmt.Fprintf(w, "  %s%d glyphs  %s\n", name.Render(n), cs.Len(), string(sample))
	}

	fmt.Fprintln(w, heading.Render("Colors"))
	colors := make([]string, 0, len(visual.Palette))
	for n := range visual.Palette {
		colors = append(colors, n)
	}
	slices.Sort(colors)
	for _, n := range colors {
		c := visual.Palette[n]
		block := re.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render("██")
		fmt.Fprintf(w, "  %s%s %s\n", name.Render(n), block, c.Hex())
	}
}
