package rain

import (
	"time"

	"github.com/lixenwraith/vi-rain/vmath"
)

// Extent is where a drop is at one instant
// The head is the leading (lowest, newest) row; the tail trails above it
type Extent struct {
	Position int64 // Q32.32 rows in [0, height+length)
	Head     int   // floor(Position); at or past height while the tail drains out
	Length   int64 // Q32.32 rows
	height   int
}

// Locate evaluates position = (phase + speed*elapsed) mod (height + length)
// Exact integer arithmetic: any elapsed value, no drift, identical on every platform
// Negative elapsed is treated as zero
func Locate(d Drop, elapsed time.Duration, height int) Extent {
	period := vmath.FromInt(height) + d.Length
	// Both terms are in [0, period), so the sum cannot overflow
	pos := vmath.Mod(vmath.Mul(d.Phase, period)+vmath.MulDurationMod(d.Speed, elapsed, period), period)
	return Extent{
		Position: pos,
		Head:     vmath.ToInt(pos),
		Length:   d.Length,
		height:   height,
	}
}

// Period returns the wrap period in Q32.32 rows
func (e Extent) Period() int64 {
	return vmath.FromInt(e.height) + e.Length
}

// Rows returns the on-screen covered range [top, bottom]; ok is false when fully off-screen
func (e Extent) Rows() (top, bottom int, ok bool) {
	if e.height <= 0 {
		return 0, 0, false
	}
	span := vmath.CeilInt(e.Length) // rows r with (head - r) < length
	top = max(e.Head-span+1, 0)
	bottom = min(e.Head, e.height-1)
	return top, bottom, top <= bottom
}

// Visible reports whether any covered row is on-screen
func (e Extent) Visible() bool {
	_, _, ok := e.Rows()
	return ok
}

// Covers reports whether row is part of the drop and on-screen
func (e Extent) Covers(row int) bool {
	if row < 0 || row >= e.height {
		return false
	}
	dist := e.Head - row
	return dist >= 0 && vmath.FromInt(dist) < e.Length
}

// AgeQ returns (head - row) / length in Q32.32, [0, Scale) for covered rows
// 0 is the head; values near Scale are the oldest tail segment
func (e Extent) AgeQ(row int) int64 {
	return vmath.Div(vmath.FromInt(e.Head-row), e.Length)
}

// Age returns AgeQ as a float in [0, 1)
func (e Extent) Age(row int) float64 {
	return vmath.ToFloat(e.AgeQ(row))
}
