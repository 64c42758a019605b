package vmath

import (
	"math"
	"math/bits"
)

// Q32.32 Fixed Point constants
const (
	Shift = 32
	Scale = 1 << Shift
	Mask  = Scale - 1
	Half  = 1 << (Shift - 1)
)

// maxWhole is the largest float magnitude representable in Q32.32
const maxWhole = float64(math.MaxInt64) / Scale

// --- Arithmetic ---

func FromInt(i int) int64     { return int64(i) << Shift }
func ToInt(f int64) int       { return int(f >> Shift) }
func ToFloat(f int64) float64 { return float64(f) / Scale }

// FromFloat converts with truncation toward zero, saturating out-of-range input
// NaN maps to zero
func FromFloat(f float64) int64 {
	switch {
	case f != f:
		return 0
	case f >= maxWhole:
		return math.MaxInt64
	case f <= -maxWhole:
		return math.MinInt64
	}
	return int64(f * Scale)
}

// Mul multiplies two Q32.32 values, saturating on overflow
func Mul(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	negative := (a < 0) != (b < 0)
	ua, ub := uint64(a), uint64(b)
	if a < 0 {
		ua = uint64(-a)
	}
	if b < 0 {
		ub = uint64(-b)
	}

	hi, lo := bits.Mul64(ua, ub)
	// Q32.32 * Q32.32 = Q64.64, shift right 32 for Q32.32
	if hi>>31 != 0 {
		if negative {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	result := int64((hi << 32) | (lo >> 32))

	if negative {
		return -result
	}
	return result
}

// Div divides two Q32.32 values, saturating on overflow; division by zero yields 0
func Div(a, b int64) int64 {
	if b == 0 {
		return 0
	}
	negative := (a < 0) != (b < 0)
	ua, ub := uint64(a), uint64(b)
	if a < 0 {
		ua = uint64(-a)
	}
	if b < 0 {
		ub = uint64(-b)
	}

	// a << 32 as 128-bit: hi = a >> 32, lo = a << 32
	hi := ua >> 32
	lo := ua << 32

	// Quotient would not fit in 64 bits
	if hi >= ub {
		if negative {
			return math.MinInt64
		}
		return math.MaxInt64
	}

	quo, _ := bits.Div64(hi, lo, ub)

	if quo > math.MaxInt64 {
		if negative {
			return math.MinInt64
		}
		return math.MaxInt64
	}

	if negative {
		return -int64(quo)
	}
	return int64(quo)
}

// CeilInt returns the smallest integer not less than x
func CeilInt(x int64) int {
	return int((x + Mask) >> Shift)
}

// Mod returns x modulo m in [0, m) for m > 0
func Mod(x, m int64) int64 {
	if m <= 0 {
		return 0
	}
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}

// Clamp limits x to [lo, hi]
func Clamp(x, lo, hi int64) int64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
