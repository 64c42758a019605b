// Package field is a keyed pseudo-random field: every value is a pure function of
// (seed, tag, key), with no generator state between calls.
//
// All derivation is integer mixing (vmath.Mix64), so output is bit-identical on every
// platform. Keys are absorbed in order together with their count, so
// (1) and (1, 0) are distinct queries.
package field

import (
	"github.com/lixenwraith/vi-rain/vmath"
)

// Tag separates independent streams drawn from the same key
// Any value is accepted; unknown tags are simply more hash input
type Tag uint64

const (
	TagExistence Tag = iota + 1
	TagColumn
	TagPhase
	TagSpeed
	TagGlyph
)

// absorb folds one word into the running state
func absorb(h, v uint64) uint64 {
	return vmath.Mix64(h ^ vmath.Mix64(v+vmath.Golden))
}

// Hash returns the raw 64-bit field value for (seed, tag, key)
func Hash(seed uint64, tag Tag, key ...int64) uint64 {
	h := vmath.Mix64(seed + vmath.Golden)
	h = absorb(h, uint64(tag))
	for _, k := range key {
		h = absorb(h, uint64(k))
	}
	return absorb(h, uint64(len(key)))
}

// Sample returns a uniform value in [0, 1) built from the top 53 bits
func Sample(seed uint64, tag Tag, key ...int64) float64 {
	return float64(Hash(seed, tag, key...)>>11) / (1 << 53)
}

// Unit returns a uniform Q32.32 value in [0, vmath.Scale)
func Unit(seed uint64, tag Tag, key ...int64) int64 {
	return int64(Hash(seed, tag, key...) >> 32)
}

// Signed returns a uniform Q32.32 value in [-vmath.Scale, vmath.Scale)
func Signed(seed uint64, tag Tag, key ...int64) int64 {
	return int64(Hash(seed, tag, key...)>>31) - vmath.Scale
}

// Bool returns true with probability 0.5
func Bool(seed uint64, tag Tag, key ...int64) bool {
	return Hash(seed, tag, key...)>>63 == 1
}

// IntN returns a value in [0, n) by modulo reduction; n <= 0 yields 0
func IntN(n int, seed uint64, tag Tag, key ...int64) int {
	if n <= 0 {
		return 0
	}
	return int(Hash(seed, tag, key...) % uint64(n))
}

// Vector fills dst with independent uniform values in [0, 1) drawn from one key
// Lane i equals the key extended by i, so a longer vector is a prefix-stable extension
func Vector(dst []float64, seed uint64, tag Tag, key ...int64) {
	h := vmath.Mix64(seed + vmath.Golden)
	h = absorb(h, uint64(tag))
	for _, k := range key {
		h = absorb(h, uint64(k))
	}
	n := uint64(len(key)) + 1
	for i := range dst {
		v := absorb(absorb(h, uint64(i)), n)
		dst[i] = float64(v>>11) / (1 << 53)
	}
}
