package main

import (
	"fmt"
	"time"

	"github.com/lixenwraith/vi-rain/parameter"
	"github.com/lixenwraith/vi-rain/parameter/visual"
	"github.com/lixenwraith/vi-rain/render"
)

// statusLine is the bottom-row overlay shown while paused or after a key action
type statusLine struct {
	preset    string
	message   string
	messageAt time.Time
	now       func() time.Time
}

func newStatusLine(preset string) *statusLine {
	return &statusLine{preset: preset, now: time.Now}
}

// flash shows msg for StatusMessageTimeout
func (s *statusLine) flash(msg string) {
	s.message = msg
	s.messageAt = s.now()
}

// text returns the line content, empty when nothing should show
func (s *statusLine) text(elapsed time.Duration, paused bool) string {
	msg := ""
	if s.message != "" && s.now().Sub(s.messageAt) < parameter.StatusMessageTimeout {
		msg = s.message
	}
	if !paused && msg == "" {
		return ""
	}
	line := fmt.Sprintf(" %s %v ", s.preset, elapsed.Truncate(100*time.Millisecond))
	if paused {
		line = parameter.StatusTextPaused + line
	}
	if msg != "" {
		line += "| " + msg + " "
	}
	return line
}

// draw paints the line on the last row over the rain
// Text cells are opaque; the rest of the row is tinted so rain glyphs stay visible under the bar
func (s *statusLine) draw(buf *render.RenderBuffer, elapsed time.Duration, paused bool) {
	line := s.text(elapsed, paused)
	if line == "" {
		return
	}
	w, h := buf.Bounds()
	if h == 0 {
		return
	}
	y := h - 1
	x := 0
	for _, r := range line {
		if x >= w {
			break
		}
		buf.SetWithBg(x, y, r, visual.RgbStatusFg, visual.RgbStatusBg)
		x++
	}
	for ; x < w; x++ {
		buf.SetBgOnly(x, y, visual.RgbStatusBar)
	}
}
