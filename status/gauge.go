package status

import (
	"math"
	"sync/atomic"
)

// Gauge is an atomic float64; the zero value reads 0
type Gauge struct {
	bits atomic.Uint64
}

// Store sets the value
func (g *Gauge) Store(v float64) {
	g.bits.Store(math.Float64bits(v))
}

// Load returns the value
func (g *Gauge) Load() float64 {
	return math.Float64frombits(g.bits.Load())
}

// StoreMax raises the value to v if v is larger
func (g *Gauge) StoreMax(v float64) {
	for {
		old := g.bits.Load()
		if math.Float64frombits(old) >= v {
			return
		}
		if g.bits.CompareAndSwap(old, math.Float64bits(v)) {
			return
		}
	}
}
