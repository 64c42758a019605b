package render

import (
	"testing"
	"time"

	"github.com/lixenwraith/vi-rain/rain"
	"github.com/lixenwraith/vi-rain/terminal"
)

var testBg = terminal.RGB{R: 10, G: 10, B: 20}

func TestRenderBufferSetGet(t *testing.T) {
	b := NewRenderBuffer(4, 3, testBg)
	if w, h := b.Bounds(); w != 4 || h != 3 {
		t.Fatalf("Bounds = %dx%d", w, h)
	}

	fg := terminal.RGB{R: 0, G: 255, B: 0}
	b.SetBgOnly(1, 1, terminal.RGB{R: 50, G: 0, B: 0})
	b.SetFgOnly(1, 1, 'x', fg, terminal.AttrBold)

	c := b.Get(1, 1)
	if c.Rune != 'x' || c.Fg != fg || c.Attrs != terminal.AttrBold {
		t.Errorf("cell = %+v", c)
	}
	if c.Bg != (terminal.RGB{R: 50, G: 0, B: 0}) {
		t.Errorf("SetFgOnly replaced background: %v", c.Bg)
	}
	if !b.Touched(1, 1) || b.Touched(0, 0) {
		t.Error("touched tracking wrong")
	}

	// Out of bounds writes are dropped
	b.SetFgOnly(-1, 0, 'y', fg, 0)
	b.SetFgOnly(4, 0, 'y', fg, 0)
	b.SetWithBg(0, 3, 'y', fg, fg)
	for _, cell := range b.Cells() {
		if cell.Rune == 'y' {
			t.Fatal("out of bounds write landed")
		}
	}
	if got := b.Get(9, 9); got.Rune != 0 || got.Bg != testBg {
		t.Errorf("out of bounds Get = %+v", got)
	}
}

func TestRenderBufferClearResize(t *testing.T) {
	b := NewRenderBuffer(5, 5, testBg)
	b.SetWithBg(2, 2, 'a', terminal.RGB{R: 1, G: 2, B: 3}, terminal.RGB{R: 4, G: 5, B: 6})
	b.Clear()
	for i, c := range b.Cells() {
		if c.Rune != 0 || c.Bg != testBg || c.Attrs != terminal.AttrNone {
			t.Fatalf("cell %d not cleared: %+v", i, c)
		}
	}

	b.SetFgOnly(0, 0, 'z', terminal.RGB{}, 0)
	b.Resize(3, 2)
	if w, h := b.Bounds(); w != 3 || h != 2 || len(b.Cells()) != 6 {
		t.Fatalf("after shrink: %dx%d, %d cells", w, h, len(b.Cells()))
	}
	if b.Get(0, 0).Rune != 0 {
		t.Error("Resize kept stale content")
	}
	b.Resize(10, 10)
	if len(b.Cells()) != 100 {
		t.Errorf("after grow: %d cells", len(b.Cells()))
	}
	b.Resize(-1, 4)
	if len(b.Cells()) != 0 {
		t.Errorf("negative width: %d cells", len(b.Cells()))
	}
}

func TestRenderBufferAsSink(t *testing.T) {
	r := rain.NewMatrix(4 * time.Second).WithDensity(rain.RelativeDensity(4))
	frame, err := r.Compose(40, 20)
	if err != nil {
		t.Fatal(err)
	}

	seq := NewRenderBuffer(40, 20, testBg)
	frame.Draw(seq)
	par := NewRenderBuffer(40, 20, testBg)
	frame.DrawParallel(par, 4)

	drawn := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 40; x++ {
			g, ok := frame.Cell(x, y)
			c := seq.Get(x, y)
			if ok != (c.Rune != 0) {
				t.Fatalf("(%d,%d): covered=%v, rune=%q", x, y, ok, c.Rune)
			}
			if ok {
				drawn++
				if c.Rune != g.Rune || c.Fg != g.Fg || c.Attrs != g.Attrs {
					t.Fatalf("(%d,%d): buffer %+v, frame %+v", x, y, c, g)
				}
			}
			if c != par.Get(x, y) {
				t.Fatalf("(%d,%d): parallel draw differs", x, y)
			}
		}
	}
	if drawn == 0 {
		t.Error("nothing drawn")
	}
}
