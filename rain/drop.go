package rain

import (
	"math"
	"time"

	"github.com/lixenwraith/vi-rain/field"
	"github.com/lixenwraith/vi-rain/parameter"
	"github.com/lixenwraith/vi-rain/vmath"
)

// Drop is one virtual streak, derived from (seed, column, slot) on every render
// Nothing about a drop is stored between calls
type Drop struct {
	Slot   int
	Column int
	Phase  int64 // fraction of the wrap period, Q32.32 in [0, Scale)
	Speed  int64 // rows/sec, Q32.32, at least parameter.MinSpeed
	Length int64 // rows, Q32.32, in [MinDropRows, height]
}

// Population returns the target drop count and the candidate slot count for a grid
func Population(d Density, width, height int) (target, candidates int) {
	target = d.Target(width, height)
	return target, 2 * target
}

// Drops returns the drops of a grid ordered by (column, slot)
func Drops(cfg Config, width, height int) []Drop {
	width, height = clampGrid(width, height)
	if width == 0 || height == 0 {
		return nil
	}
	return buildLayout(cfg, width, height).drops
}

// layout groups drops by column
type layout struct {
	drops  []Drop // ordered by (column, slot)
	starts []int  // column c owns drops[starts[c]:starts[c+1]]
}

// column returns the index span of column c
func (l layout) column(c int) (lo, hi int) {
	if c < 0 || c+1 >= len(l.starts) {
		return 0, 0
	}
	return l.starts[c], l.starts[c+1]
}

func buildLayout(cfg Config, width, height int) layout {
	p := cfg.params()
	_, candidates := Population(cfg.Density, width, height)

	// Existence and column depend on the slot alone, so a resize keeps every
	// surviving slot in place
	type placed struct{ slot, column int }
	live := make([]placed, 0, candidates/2+1)
	counts := make([]int, width+1)
	for slot := 0; slot < candidates; slot++ {
		if !field.Bool(p.seed, field.TagExistence, int64(slot)) {
			continue
		}
		col := field.IntN(width, p.seed, field.TagColumn, int64(slot))
		live = append(live, placed{slot, col})
		counts[col+1]++
	}

	starts := counts
	for c := 1; c <= width; c++ {
		starts[c] += starts[c-1]
	}

	drops := make([]Drop, len(live))
	next := make([]int, width)
	copy(next, starts[:width])
	// live is slot-ascending, so each column stays slot-ascending
	for _, pl := range live {
		drops[next[pl.column]] = newDrop(p, pl.slot, pl.column, height)
		next[pl.column]++
	}

	return layout{drops: drops, starts: starts}
}

func newDrop(p params, slot, column, height int) Drop {
	c, s := int64(column), int64(slot)

	u := field.Signed(p.seed, field.TagSpeed, c, s)
	speed := vmath.Mul(p.baseSpeed, addSat(vmath.Scale, vmath.Mul(p.variance, u)))
	if speed < p.minSpeed {
		speed = p.minSpeed
	}

	return Drop{
		Slot:   slot,
		Column: column,
		Phase:  field.Unit(p.seed, field.TagPhase, c, s),
		Speed:  speed,
		Length: dropLength(speed, p.lifespan, height),
	}
}

// dropLength is min(lifespan*speed, height), re-derived for the current height
func dropLength(speed int64, lifespan time.Duration, height int) int64 {
	l := vmath.MulDuration(speed, lifespan)
	return vmath.Clamp(l, vmath.FromInt(parameter.MinDropRows), vmath.FromInt(height))
}

func addSat(a, b int64) int64 {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64
	}
	if b < 0 && a < math.MinInt64-b {
		return math.MinInt64
	}
	return a + b
}

func clampGrid(width, height int) (int, int) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	return min(width, parameter.MaxGridDim), min(height, parameter.MaxGridDim)
}
