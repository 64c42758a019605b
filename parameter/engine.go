package parameter

import "time"

// Demo loop timing
const (
	// DefaultFPS is the frame rate of the interactive demo
	DefaultFPS = 30

	// MaxFPS caps the -fps flag
	MaxFPS = 240

	// SeekStep is how far the arrow keys move elapsed time
	SeekStep = 1 * time.Second

	// EventQueueSize is the capacity of the terminal event channel
	EventQueueSize = 256

	// SlowFrameThreshold logs frames whose compose+draw exceeds it
	SlowFrameThreshold = 50 * time.Millisecond
)

// Debug logging
const (
	LogDir      = "logs"
	LogFileName = "vi-rain.log"

	// MaxLogSize rotates the log file on startup once it grows past 10 MiB
	MaxLogSize = 10 * 1024 * 1024
)
