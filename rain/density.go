package rain

import (
	"fmt"

	"github.com/lixenwraith/vi-rain/parameter"
)

type densityKind uint8

const (
	densityAbsolute densityKind = iota
	densityRelative
)

// Density sets the target drop population T
// Actual population per render is Binomial(2T, 0.5), so it ranges over [0, 2T]
type Density struct {
	kind       densityKind
	count      int
	sparseness int
}

// AbsoluteDensity targets count drops regardless of grid size
// Negative counts are rejected; zero renders nothing; counts above
// parameter.MaxTargetDrops are clamped
func AbsoluteDensity(count int) Density {
	return Density{kind: densityAbsolute, count: count}
}

// RelativeDensity targets one drop per sparseness grid cells, rounded
// Lower is denser; sparseness <= 0 is rejected
func RelativeDensity(sparseness int) Density {
	return Density{kind: densityRelative, sparseness: sparseness}
}

// Density presets
var (
	DensitySparse = RelativeDensity(parameter.SparsenessSparse)
	DensityNormal = RelativeDensity(parameter.SparsenessNormal)
	DensityDense  = RelativeDensity(parameter.SparsenessDense)
)

// Target resolves the target drop count for a grid
func (d Density) Target(width, height int) int {
	var t int64
	switch d.kind {
	case densityAbsolute:
		t = int64(d.count)
	case densityRelative:
		if d.sparseness <= 0 || width <= 0 || height <= 0 {
			return 0
		}
		cells := int64(width) * int64(height)
		s := int64(d.sparseness)
		t = (cells + s/2) / s
	}
	return int(min(max(t, 0), parameter.MaxTargetDrops))
}

func (d Density) validate() error {
	switch d.kind {
	case densityAbsolute:
		if d.count < 0 {
			return fmt.Errorf("%w: count %d", ErrInvalidDensity, d.count)
		}
	case densityRelative:
		if d.sparseness <= 0 {
			return fmt.Errorf("%w: sparseness %d", ErrInvalidDensity, d.sparseness)
		}
	}
	return nil
}

// String describes the density
func (d Density) String() string {
	if d.kind == densityRelative {
		return fmt.Sprintf("relative(%d)", d.sparseness)
	}
	return fmt.Sprintf("absolute(%d)", d.count)
}
