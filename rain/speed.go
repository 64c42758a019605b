package rain

import (
	"fmt"
	"math"

	"github.com/lixenwraith/vi-rain/parameter"
)

// Speed is the base fall rate in rows per second
type Speed struct {
	rowsPerSecond float64
}

// AbsoluteSpeed falls at v rows per second; v must be positive and finite
func AbsoluteSpeed(v float64) Speed {
	return Speed{rowsPerSecond: v}
}

// Speed presets
var (
	SpeedSlow   = AbsoluteSpeed(parameter.SpeedSlow)
	SpeedNormal = AbsoluteSpeed(parameter.SpeedNormal)
	SpeedFast   = AbsoluteSpeed(parameter.SpeedFast)
)

// RowsPerSecond returns the configured base speed
func (s Speed) RowsPerSecond() float64 {
	return s.rowsPerSecond
}

func (s Speed) validate() error {
	v := s.rowsPerSecond
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%w: %v rows/sec", ErrInvalidSpeed, v)
	}
	return nil
}

// String describes the speed
func (s Speed) String() string {
	return fmt.Sprintf("%g rows/sec", s.rowsPerSecond)
}
