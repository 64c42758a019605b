package vmath

// Golden is the 64-bit golden ratio increment used by SplitMix64
const Golden uint64 = 0x9e3779b97f4a7c15

// Mix64 is the SplitMix64 finalizer: a fixed-round bijective avalanche over uint64
// Replaces a stateful generator wherever output must be keyed instead of sequenced
func Mix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
