package rain

import (
	"sync"
	"time"

	"github.com/lixenwraith/vi-rain/field"
	"github.com/lixenwraith/vi-rain/parameter"
	"github.com/lixenwraith/vi-rain/terminal"
	"github.com/lixenwraith/vi-rain/vmath"
)

// Age band thresholds in Q32.32
var (
	boldBandEnd  = vmath.FromFloat(parameter.BoldBandEnd)
	dimBandStart = vmath.FromFloat(parameter.DimBandStart)
)

// Glyph is the resolved content of one covered cell
type Glyph struct {
	Rune  rune
	Fg    terminal.RGB
	Attrs terminal.Attr
	Slot  int   // winning drop
	Age   int64 // Q32.32 in [0, Scale), 0 at the head
}

// Frame is the composed state of one (elapsed, width, height); immutable
// Every query is a pure function of its fields, safe for concurrent use
type Frame struct {
	cfg     Config
	elapsed time.Duration
	width   int
	height  int
	bucket  int64
	layout  layout
	extents []Extent // parallel to layout.drops
}

func compose(cfg Config, elapsed time.Duration, width, height int) Frame {
	width, height = clampGrid(width, height)
	elapsed = max(elapsed, 0)
	f := Frame{
		cfg:     cfg,
		elapsed: elapsed,
		width:   width,
		height:  height,
	}
	if cfg.NoiseInterval > 0 {
		f.bucket = int64(elapsed / cfg.NoiseInterval)
	}
	if width == 0 || height == 0 {
		return f
	}

	f.layout = buildLayout(cfg, width, height)
	f.extents = make([]Extent, len(f.layout.drops))
	for i, d := range f.layout.drops {
		f.extents[i] = Locate(d, elapsed, height)
	}
	return f
}

// Width returns the clamped grid width
func (f Frame) Width() int { return f.width }

// Height returns the clamped grid height
func (f Frame) Height() int { return f.height }

// Elapsed returns the instant this frame was composed for
func (f Frame) Elapsed() time.Duration { return f.elapsed }

// NoiseBucket returns floor(elapsed / noise interval)
func (f Frame) NoiseBucket() int64 { return f.bucket }

// Drops returns a copy of the frame's drops, ordered by (column, slot)
func (f Frame) Drops() []Drop {
	out := make([]Drop, len(f.layout.drops))
	copy(out, f.layout.drops)
	return out
}

// Extents returns a copy of the drop extents, parallel to Drops
func (f Frame) Extents() []Extent {
	out := make([]Extent, len(f.extents))
	copy(out, f.extents)
	return out
}

// DropCount returns the number of drops in the frame
func (f Frame) DropCount() int { return len(f.layout.drops) }

// Cell resolves (x, y); ok is false for uncovered or out-of-bounds cells
func (f Frame) Cell(x, y int) (g Glyph, ok bool) {
	if y < 0 || y >= f.height {
		return Glyph{}, false
	}
	lo, hi := f.layout.column(x)
	best := int64(-1)
	slot := 0
	for i := lo; i < hi; i++ {
		e := f.extents[i]
		if !e.Covers(y) {
			continue
		}
		age := e.AgeQ(y)
		// Slot-ascending scan with strict less keeps the lowest slot on ties
		if best < 0 || age < best {
			best = age
			slot = f.layout.drops[i].Slot
		}
	}
	if best < 0 {
		return Glyph{}, false
	}
	return f.resolve(x, y, best, slot), true
}

// resolve applies glyph selection and age grading to a covered cell
func (f Frame) resolve(x, y int, age int64, slot int) Glyph {
	fg := f.cfg.Color
	if age == 0 {
		fg = f.cfg.HeadColor
	}
	attrs := terminal.AttrNone
	if f.cfg.BoldDim {
		switch {
		case age < boldBandEnd:
			attrs = terminal.AttrBold
		case age >= dimBandStart:
			attrs = terminal.AttrDim
		}
	}
	// Keyed by cell and bucket only: a cell keeps its glyph when ownership changes
	h := field.Hash(f.cfg.Seed, field.TagGlyph, int64(x), int64(y), f.bucket)
	return Glyph{
		Rune:  f.cfg.Charset.pick(h),
		Fg:    fg,
		Attrs: attrs,
		Slot:  slot,
		Age:   age,
	}
}

// columnScratch holds the per-row winner while one column is composited
type columnScratch struct {
	age  []int64
	slot []int
}

func newColumnScratch(height int) *columnScratch {
	s := &columnScratch{
		age:  make([]int64, height),
		slot: make([]int, height),
	}
	for i := range s.age {
		s.age[i] = -1
	}
	return s
}

// Draw writes every covered cell to sink; uncovered cells are left untouched
func (f Frame) Draw(sink Sink) {
	if f.width == 0 || f.height == 0 || len(f.layout.drops) == 0 {
		return
	}
	s := newColumnScratch(f.height)
	for col := 0; col < f.width; col++ {
		f.drawColumn(sink, col, s)
	}
}

// DrawParallel splits columns across workers; sink must accept concurrent writes to distinct cells
func (f Frame) DrawParallel(sink Sink, workers int) {
	if workers <= 1 || f.width < 2 {
		f.Draw(sink)
		return
	}
	if f.height == 0 || len(f.layout.drops) == 0 {
		return
	}
	workers = min(workers, f.width)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(first int) {
			defer wg.Done()
			s := newColumnScratch(f.height)
			for col := first; col < f.width; col += workers {
				f.drawColumn(sink, col, s)
			}
		}(w)
	}
	wg.Wait()
}

func (f Frame) drawColumn(sink Sink, col int, s *columnScratch) {
	lo, hi := f.layout.column(col)
	if lo == hi {
		return
	}

	minTop, maxBottom := f.height, -1
	for i := lo; i < hi; i++ {
		e := f.extents[i]
		top, bottom, ok := e.Rows()
		if !ok {
			continue
		}
		minTop = min(minTop, top)
		maxBottom = max(maxBottom, bottom)
		slot := f.layout.drops[i].Slot
		for row := top; row <= bottom; row++ {
			age := e.AgeQ(row)
			if s.age[row] < 0 || age < s.age[row] {
				s.age[row] = age
				s.slot[row] = slot
			}
		}
	}

	for row := minTop; row <= maxBottom; row++ {
		age := s.age[row]
		if age < 0 {
			continue
		}
		g := f.resolve(col, row, age, s.slot[row])
		sink.SetFgOnly(col, row, g.Rune, g.Fg, g.Attrs)
		s.age[row] = -1
	}
}
