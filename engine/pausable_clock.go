package engine

import (
	"sync"
	"time"
)

// PausableClock turns wall time into the elapsed value a rain frame is composed for
// Pausing freezes elapsed; Seek shifts it; neither disturbs the rendered state beyond the new instant
type PausableClock struct {
	mu sync.RWMutex

	provider  TimeProvider
	realStart time.Time     // when the clock was created
	offset    time.Duration // initial elapsed plus cumulative seeks

	paused          bool
	pauseStart      time.Time     // when the current pause started
	totalPausedTime time.Duration // cumulative completed pauses
}

// NewPausableClock creates a running clock starting at elapsed = start
// A nil provider uses the monotonic system clock
func NewPausableClock(provider TimeProvider, start time.Duration) *PausableClock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &PausableClock{
		provider:  provider,
		realStart: provider.Now(),
		offset:    start,
	}
}

// Elapsed returns the current elapsed time, never negative
func (pc *PausableClock) Elapsed() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	now := pc.provider.Now()
	if pc.paused {
		now = pc.pauseStart
	}
	return max(now.Sub(pc.realStart)-pc.totalPausedTime+pc.offset, 0)
}

// Pause stops elapsed advancement; no-op when already paused
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStart = pc.provider.Now()
}

// Resume continues elapsed advancement; no-op when running
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if !pc.paused {
		return
	}
	pc.totalPausedTime += pc.provider.Now().Sub(pc.pauseStart)
	pc.paused = false
	pc.pauseStart = time.Time{}
}

// Toggle flips the pause state and returns true when now paused
func (pc *PausableClock) Toggle() bool {
	if pc.IsPaused() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.paused
}

// Seek shifts elapsed by d, clamping the result at zero
func (pc *PausableClock) Seek(d time.Duration) {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	now := pc.provider.Now()
	if pc.paused {
		now = pc.pauseStart
	}
	current := now.Sub(pc.realStart) - pc.totalPausedTime + pc.offset
	if current+d < 0 {
		d = -current
	}
	pc.offset += d
}

// TotalPauseDuration returns cumulative pause time including the current pause
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.paused {
		total += pc.provider.Now().Sub(pc.pauseStart)
	}
	return total
}
