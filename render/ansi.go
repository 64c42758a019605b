package render

import (
	"bufio"
	"io"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/lixenwraith/vi-rain/terminal"
)

// WriteANSI writes buf as text rows styled for profile, one line per row
// Colors are downsampled by termenv; termenv.Ascii yields plain glyphs
// Empty cells are spaces; cells shadowed by a preceding wide glyph are skipped
// Only backgrounds set through SetBgOnly or SetWithBg are emitted
func WriteANSI(w io.Writer, buf *RenderBuffer, profile termenv.Profile) error {
	bw := bufio.NewWriter(w)
	width, height := buf.Bounds()

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := buf.Get(x, y)
			touched := buf.Touched(x, y)
			if c.Rune == 0 {
				if _, err := bw.WriteString(styleBg(profile, " ", c.Bg, touched)); err != nil {
					return err
				}
				continue
			}
			s := profile.String(string(c.Rune)).Foreground(profile.Color(c.Fg.Hex()))
			if touched {
				s = s.Background(profile.Color(c.Bg.Hex()))
			}
			if c.Attrs&terminal.AttrBold != 0 {
				s = s.Bold()
			}
			if c.Attrs&terminal.AttrDim != 0 {
				s = s.Faint()
			}
			if c.Attrs&terminal.AttrItalic != 0 {
				s = s.Italic()
			}
			if c.Attrs&terminal.AttrUnderline != 0 {
				s = s.Underline()
			}
			if c.Attrs&terminal.AttrBlink != 0 {
				s = s.Blink()
			}
			if c.Attrs&terminal.AttrReverse != 0 {
				s = s.Reverse()
			}
			if _, err := bw.WriteString(s.String()); err != nil {
				return err
			}
			if runewidth.RuneWidth(c.Rune) == 2 {
				x++
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// styleBg paints text with c only when the cell background was set explicitly
func styleBg(profile termenv.Profile, text string, c terminal.RGB, touched bool) string {
	if !touched {
		return text
	}
	return profile.String(text).Background(profile.Color(c.Hex())).String()
}
