package status

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
)

// Registry holds named counters and gauges for the render loop
// Lookup takes a lock; callers cache the returned pointer and update it lock-free
type Registry struct {
	mu       sync.RWMutex
	counters map[string]*atomic.Int64
	gauges   map[string]*Gauge
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		counters: make(map[string]*atomic.Int64),
		gauges:   make(map[string]*Gauge),
	}
}

// Counter returns the counter for name, creating it on first use
func (r *Registry) Counter(name string) *atomic.Int64 {
	return getOrCreate(&r.mu, r.counters, name)
}

// Gauge returns the gauge for name, creating it on first use
func (r *Registry) Gauge(name string) *Gauge {
	return getOrCreate(&r.mu, r.gauges, name)
}

func getOrCreate[T any](mu *sync.RWMutex, m map[string]*T, name string) *T {
	mu.RLock()
	ptr, ok := m[name]
	mu.RUnlock()
	if ok {
		return ptr
	}

	mu.Lock()
	defer mu.Unlock()
	// Double-check after acquiring write lock
	if ptr, ok := m[name]; ok {
		return ptr
	}
	ptr = new(T)
	m[name] = ptr
	return ptr
}

// Summary formats every metric as name=value in sorted name order
func (r *Registry) Summary() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	parts := make([]string, 0, len(r.counters)+len(r.gauges))
	for name, c := range r.counters {
		parts = append(parts, fmt.Sprintf("%s=%d", name, c.Load()))
	}
	for name, g := range r.gauges {
		parts = append(parts, fmt.Sprintf("%s=%.3g", name, g.Load()))
	}
	slices.Sort(parts)
	return strings.Join(parts, " ")
}
