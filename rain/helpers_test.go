package rain

import (
	"sync"
	"time"

	"github.com/lixenwraith/vi-rain/terminal"
)

type cellKey struct{ x, y int }

type cellRecord struct {
	r     rune
	fg    terminal.RGB
	attrs terminal.Attr
}

// recorder is a concurrency-safe Sink capturing every write
type recorder struct {
	mu     sync.Mutex
	cells  map[cellKey]cellRecord
	writes int
}

func newRecorder() *recorder {
	return &recorder{cells: make(map[cellKey]cellRecord)}
}

func (r *recorder) SetFgOnly(x, y int, ch rune, fg terminal.RGB, attrs terminal.Attr) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cells[cellKey{x, y}] = cellRecord{ch, fg, attrs}
	r.writes++
}

func (r *recorder) equal(o *recorder) bool {
	if len(r.cells) != len(o.cells) {
		return false
	}
	for k, v := range r.cells {
		if o.cells[k] != v {
			return false
		}
	}
	return true
}

// render draws r at width x height into a fresh recorder
func render(r Rain, width, height int) (*recorder, error) {
	rec := newRecorder()
	err := r.Render(rec, width, height)
	return rec, err
}

// denseConfig covers a large share of the grid
func denseConfig() Config {
	cfg := DefaultConfig()
	cfg.Density = RelativeDensity(4)
	cfg.Speed = AbsoluteSpeed(3)
	cfg.TailLifespan = 3 * time.Second
	return cfg
}
