package rain

import "github.com/lixenwraith/vi-rain/terminal"

// Sink receives covered cells; anything the engine does not cover is never written
// render.RenderBuffer and render.ScreenSink implement it
type Sink interface {
	SetFgOnly(x, y int, r rune, fg terminal.RGB, attrs terminal.Attr)
}

// SinkFunc adapts a function to Sink
type SinkFunc func(x, y int, r rune, fg terminal.RGB, attrs terminal.Attr)

// SetFgOnly calls f
func (f SinkFunc) SetFgOnly(x, y int, r rune, fg terminal.RGB, attrs terminal.Attr) {
	f(x, y, r, fg, attrs)
}
