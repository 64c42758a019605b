package parameter

import "time"

// Engine defaults
const (
	// DefaultSeed is the seed every preset starts from
	DefaultSeed uint64 = 1234

	// MinSpeed is the floor for a drop's effective speed after variance (rows/sec)
	MinSpeed = 0.001

	// MinDropRows is the shortest drop length; a drop always shows its head
	MinDropRows = 1

	// MaxTargetDrops clamps the target population; candidate slots are twice this
	MaxTargetDrops = 1 << 20

	// MaxGridDim clamps either grid dimension; cells beyond are never drawn
	MaxGridDim = 1 << 16
)

// Density presets, expressed as sparseness (grid cells per target drop)
const (
	SparsenessSparse = 100
	SparsenessNormal = 50
	SparsenessDense  = 20
)

// Speed presets (rows/sec)
const (
	SpeedSlow   = 5.0
	SpeedNormal = 10.0
	SpeedFast   = 20.0
)

// Compositor age bands for the bold/dim grading
const (
	// BoldBandEnd is the age below which cells render bold
	BoldBandEnd = 1.0 / 3.0
	// DimBandStart is the age from which cells render dim
	DimBandStart = 2.0 / 3.0
)

// Matrix preset
const (
	MatrixVariance      = 0.5
	MatrixTailLifespan  = 1 * time.Second
	MatrixNoiseInterval = 5 * time.Second
)

// Rain preset
const (
	RainGlyph         = '|'
	RainVariance      = 0.5
	RainTailLifespan  = 250 * time.Millisecond
	RainNoiseInterval = 1 * time.Second
)

// Snow preset
const (
	SnowGlyph         = '*'
	SnowVariance      = 0.1
	SnowTailLifespan  = 2 * time.Second
	SnowNoiseInterval = 1 * time.Second
)

// Emoji soup preset
const (
	// EmojiStart is U+1F600, the first emoticon
	EmojiStart         = 0x1F600
	EmojiCount         = 80
	EmojiVariance      = 0.1
	EmojiTailLifespan  = 2 * time.Second
	EmojiNoiseInterval = 1 * time.Second
)

// Character set preset ranges (start code point, count)
const (
	HalfKanaStart  = 0xFF66
	HalfKanaCount  = 56
	KatakanaStart  = 0x30A1
	KatakanaCount  = 90
	LowercaseStart = 'a'
	LowercaseCount = 26
	DigitsStart    = '0'
	DigitsCount    = 10
	BrailleStart   = 0x2801
	BrailleCount   = 255
	GreekStart     = 0x03B1
	GreekCount     = 25
)
