package parameter

import "time"

// Status line
const (
	// StatusTextPaused is shown while elapsed time is frozen
	StatusTextPaused = " PAUSED "

	// StatusMessageTimeout is how long a transient status message stays visible
	StatusMessageTimeout = 2 * time.Second

	// LegendGradientSteps is the width of the head-to-body color swatch in the snapshot caption
	LegendGradientSteps = 12
)
