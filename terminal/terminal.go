package terminal

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrItalic    Attr = 1 << 2
	AttrUnderline Attr = 1 << 3
	AttrBlink     Attr = 1 << 4
	AttrReverse   Attr = 1 << 5
)

// AttrStyle masks the style bits
const AttrStyle Attr = AttrBold | AttrDim | AttrItalic | AttrUnderline | AttrBlink | AttrReverse

// Cell represents a single terminal cell
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs Attr
}

// String names the set attribute bits, "none" when empty
func (a Attr) String() string {
	if a&AttrStyle == 0 {
		return "none"
	}
	names := [...]string{"bold", "dim", "italic", "underline", "blink", "reverse"}
	s := ""
	for i, n := range names {
		if a&(1<<i) == 0 {
			continue
		}
		if s != "" {
			s += "|"
		}
		s += n
	}
	return s
}
