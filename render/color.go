package render

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/vi-rain/parameter/visual"
	"github.com/lixenwraith/vi-rain/terminal"
)

// ParseColor resolves a palette name ("matrix", "snow") or a hex string ("#00ff41", "0f4")
func ParseColor(s string) (terminal.RGB, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if c, ok := visual.Palette[name]; ok {
		return c, nil
	}
	hex := strings.TrimPrefix(name, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return terminal.RGB{}, fmt.Errorf("render: unknown color %q", s)
	}
	return FromColorful(c), nil
}

// FromColorful clamps a colorful.Color into 8-bit channels
func FromColorful(c colorful.Color) terminal.RGB {
	r, g, b := c.Clamped().RGB255()
	return terminal.RGB{R: r, G: g, B: b}
}

// ToColorful converts 8-bit channels to a colorful.Color
func ToColorful(c terminal.RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// Gradient returns n colors blended from a to b in CIE-L*C*h° space, endpoints inclusive
// n <= 0 yields nil, n == 1 yields a
func Gradient(a, b terminal.RGB, n int) []terminal.RGB {
	if n <= 0 {
		return nil
	}
	out := make([]terminal.RGB, n)
	if n == 1 {
		out[0] = a
		return out
	}
	ca, cb := ToColorful(a), ToColorful(b)
	last := float64(n - 1)
	for i := range out {
		out[i] = FromColorful(ca.BlendHcl(cb, float64(i)/last))
	}
	out[0], out[n-1] = a, b
	return out
}
