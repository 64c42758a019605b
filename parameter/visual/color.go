package visual

import (
	"github.com/lixenwraith/vi-rain/terminal"
)

// terminal.RGB color definitions for rain presets and named color lookup
var (
	RgbBlack       = terminal.RGB{R: 0, G: 0, B: 0}
	RgbWhite       = terminal.RGB{R: 255, G: 255, B: 255}
	RgbMatrixGreen = terminal.RGB{R: 0, G: 255, B: 65}
	RgbLightGreen  = terminal.RGB{R: 144, G: 238, B: 144}
	RgbLightBlue   = terminal.RGB{R: 135, G: 206, B: 250}
	RgbSnow        = terminal.RGB{R: 240, G: 248, B: 255}
	RgbAmber       = terminal.RGB{R: 255, G: 191, B: 0}
	RgbRed         = terminal.RGB{R: 255, G: 0, B: 0}
	RgbOrange      = terminal.RGB{R: 255, G: 165, B: 0}
	RgbBlue        = terminal.RGB{R: 0, G: 150, B: 255}
	RgbPurple      = terminal.RGB{R: 128, G: 0, B: 255}
	RgbCyan        = terminal.RGB{R: 0, G: 255, B: 255}
	RgbPink        = terminal.RGB{R: 255, G: 20, B: 147}
	RgbGreen       = terminal.RGB{R: 0, G: 255, B: 0}

	// Demo status line: text cells and the tinted remainder of the row
	RgbStatusFg  = terminal.RGB{R: 0, G: 0, B: 0}
	RgbStatusBg  = terminal.RGB{R: 0, G: 200, B: 60}
	RgbStatusBar = terminal.RGB{R: 0, G: 48, B: 16}
)

// Palette maps lowercase color names to RGB for flag and config lookup
var Palette = map[string]terminal.RGB{
	"black":       RgbBlack,
	"white":       RgbWhite,
	"matrix":      RgbMatrixGreen,
	"green":       RgbGreen,
	"light-green": RgbLightGreen,
	"light-blue":  RgbLightBlue,
	"snow":        RgbSnow,
	"amber":       RgbAmber,
	"red":         RgbRed,
	"orange":      RgbOrange,
	"blue":        RgbBlue,
	"purple":      RgbPurple,
	"cyan":        RgbCyan,
	"pink":        RgbPink,
}
