package vmath

import (
	"math"
	"math/bits"
	"time"
)

const nanosPerSecond = uint64(time.Second)

// splitDuration separates whole seconds from the sub-second remainder
func splitDuration(d time.Duration) (secs, nanos uint64) {
	u := uint64(d)
	return u / nanosPerSecond, u % nanosPerSecond
}

// subSecond returns floor(rate * nanos / 1e9) for nanos < 1e9
// rate*nanos < 2^63 * 1e9, so the high word stays below the divisor
func subSecond(rate, nanos uint64) uint64 {
	hi, lo := bits.Mul64(rate, nanos)
	q, _ := bits.Div64(hi, lo, nanosPerSecond)
	return q
}

// MulDuration returns rate (Q32.32 per second) accumulated over d, saturating
// Non-positive rate or duration yields zero
func MulDuration(rate int64, d time.Duration) int64 {
	if rate <= 0 || d <= 0 {
		return 0
	}
	secs, nanos := splitDuration(d)

	hi, whole := bits.Mul64(uint64(rate), secs)
	if hi != 0 || whole > math.MaxInt64 {
		return math.MaxInt64
	}
	total, carry := bits.Add64(whole, subSecond(uint64(rate), nanos), 0)
	if carry != 0 || total > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(total)
}

// MulDurationMod returns (rate * d) mod period in Q32.32 without overflow for any duration
// Exact: equals floor(rate*d/1e9) reduced modulo period, never accumulating error
// Non-positive rate or duration yields zero; non-positive period yields zero
func MulDurationMod(rate int64, d time.Duration, period int64) int64 {
	if rate <= 0 || d <= 0 || period <= 0 {
		return 0
	}
	p := uint64(period)
	secs, nanos := splitDuration(d)

	hi, lo := bits.Mul64(uint64(rate), secs)
	whole := bits.Rem64(hi, lo, p)
	frac := subSecond(uint64(rate), nanos) % p

	// Both terms < p < 2^63, sum cannot wrap uint64
	sum := whole + frac
	if sum >= p {
		sum -= p
	}
	return int64(sum)
}
