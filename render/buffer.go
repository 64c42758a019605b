package render

import (
	"github.com/lixenwraith/vi-rain/terminal"
)

// RenderBuffer is an off-screen cell grid that rain frames draw into
// Uses []terminal.Cell directly to allow zero-copy export to writers
type RenderBuffer struct {
	cells   []terminal.Cell
	touched []bool // background set by SetBgOnly or SetWithBg since the last Clear
	width   int
	height  int
	bg      terminal.RGB
}

// NewRenderBuffer creates a buffer with the specified dimensions and default background
func NewRenderBuffer(width, height int, bg terminal.RGB) *RenderBuffer {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	b := &RenderBuffer{
		cells:   make([]terminal.Cell, size),
		touched: make([]bool, size),
		width:   width,
		height:  height,
		bg:      bg,
	}
	b.Clear()
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]terminal.Cell, size)
		b.touched = make([]bool, size)
	} else {
		b.cells = b.cells[:size]
		b.touched = b.touched[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to empty using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = terminal.Cell{
		Rune:  0,
		Fg:    b.bg,
		Bg:    b.bg,
		Attrs: terminal.AttrNone,
	}
	b.touched[0] = false
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	for filled := 1; filled < len(b.touched); filled *= 2 {
		copy(b.touched[filled:], b.touched[:filled])
	}
}

// Bounds returns width and height
func (b *RenderBuffer) Bounds() (int, int) {
	return b.width, b.height
}

// inBounds returns true if in buffer bounds
func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at (x, y); out of bounds yields the empty cell
func (b *RenderBuffer) Get(x, y int) terminal.Cell {
	if !b.inBounds(x, y) {
		return terminal.Cell{Fg: b.bg, Bg: b.bg}
	}
	return b.cells[y*b.width+x]
}

// SetFgOnly writes rune, foreground, and attrs while preserving existing background
// Distinct cells may be written concurrently
func (b *RenderBuffer) SetFgOnly(x, y int, r rune, fg terminal.RGB, attrs terminal.Attr) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = fg
	dst.Attrs = attrs
}

// SetBgOnly updates the background color while preserving existing rune/foreground
// Marks cell as touched to prevent default background override
func (b *RenderBuffer) SetBgOnly(x, y int, bg terminal.RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx].Bg = bg
	b.touched[idx] = true
}

// SetWithBg writes a cell with explicit fg and bg colors (opaque replace)
func (b *RenderBuffer) SetWithBg(x, y int, r rune, fg, bg terminal.RGB) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	dst := &b.cells[idx]
	dst.Rune = r
	dst.Fg = fg
	dst.Bg = bg
	dst.Attrs = terminal.AttrNone
	b.touched[idx] = true
}

// Touched reports whether the background at (x, y) was set explicitly
func (b *RenderBuffer) Touched(x, y int) bool {
	return b.inBounds(x, y) && b.touched[y*b.width+x]
}

// Cells returns the row-major cell slice
// The slice aliases the buffer until the next Resize
func (b *RenderBuffer) Cells() []terminal.Cell {
	return b.cells
}
