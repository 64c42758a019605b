package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-rain/terminal"
)

// ScreenSink writes rain cells straight onto a tcell.Screen
// Existing background of each cell is kept; only rune, foreground and attributes change
type ScreenSink struct {
	screen tcell.Screen
}

// NewScreenSink wraps screen
func NewScreenSink(screen tcell.Screen) *ScreenSink {
	return &ScreenSink{screen: screen}
}

// Size returns the screen dimensions
func (s *ScreenSink) Size() (int, int) {
	return s.screen.Size()
}

// SetFgOnly merges the glyph into the cell, preserving the screen's background
// tcell screens are not safe for concurrent writes; draw sequentially
func (s *ScreenSink) SetFgOnly(x, y int, r rune, fg terminal.RGB, attrs terminal.Attr) {
	_, _, style, _ := s.screen.GetContent(x, y)
	style = style.Foreground(TcellColor(fg)).Attributes(TcellAttrs(attrs))
	s.screen.SetContent(x, y, r, nil, style)
}

// Blit copies buf onto the screen, clipped to the smaller of the two
// Each cell's background is painted first, then glyphs merge over it through SetFgOnly
func (s *ScreenSink) Blit(buf *RenderBuffer) {
	bw, bh := buf.Bounds()
	sw, sh := s.screen.Size()
	w, h := min(bw, sw), min(bh, sh)
	cells := buf.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := cells[y*bw+x]
			s.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(TcellColor(c.Bg)))
			if c.Rune != 0 {
				s.SetFgOnly(x, y, c.Rune, c.Fg, c.Attrs)
			}
		}
	}
}

// TcellColor converts to a true-color tcell.Color
func TcellColor(c terminal.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// TcellAttrs converts terminal.Attr to tcell.AttrMask
func TcellAttrs(a terminal.Attr) tcell.AttrMask {
	mask := tcell.AttrNone
	if a&terminal.AttrBold != 0 {
		mask |= tcell.AttrBold
	}
	if a&terminal.AttrDim != 0 {
		mask |= tcell.AttrDim
	}
	if a&terminal.AttrItalic != 0 {
		mask |= tcell.AttrItalic
	}
	if a&terminal.AttrUnderline != 0 {
		mask |= tcell.AttrUnderline
	}
	if a&terminal.AttrBlink != 0 {
		mask |= tcell.AttrBlink
	}
	if a&terminal.AttrReverse != 0 {
		mask |= tcell.AttrReverse
	}
	return mask
}
