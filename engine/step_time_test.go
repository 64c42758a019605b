package engine

import (
	"sync"
	"time"
)

// stepTime is a TimeProvider moved only by the test, one frame or pause at a time
type stepTime struct {
	mu  sync.Mutex
	now time.Time
}

func newStepTime() *stepTime {
	return &stepTime{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (s *stepTime) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Advance moves wall time forward by d
func (s *stepTime) Advance(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = s.now.Add(d)
}

// Frames advances n frames at fps and returns the total wall time moved
func (s *stepTime) Frames(n, fps int) time.Duration {
	step := time.Second / time.Duration(fps)
	for range n {
		s.Advance(step)
	}
	return time.Duration(n) * step
}
