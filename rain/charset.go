package rain

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/lixenwraith/vi-rain/parameter"
)

type charsetKind uint8

const (
	charsetExplicit charsetKind = iota
	charsetRange
)

// CharacterSet selects the glyphs drawn in covered cells
// The zero value is an empty explicit set and fails validation
type CharacterSet struct {
	kind  charsetKind
	name  string
	runes []rune // explicit; never mutated after construction
	start rune   // range
	count int    // range
}

// Explicit returns a set indexing the given runes directly
// An empty list is rejected at validation (ErrEmptyCharset)
func Explicit(runes ...rune) CharacterSet {
	own := make([]rune, len(runes))
	copy(own, runes)
	return CharacterSet{kind: charsetExplicit, runes: own}
}

// ExplicitString returns an explicit set of the runes of s, in order, duplicates kept
func ExplicitString(s string) CharacterSet {
	return CharacterSet{kind: charsetExplicit, runes: []rune(s)}
}

// UnicodeRange returns the code points [start, start+count)
// Rejected at validation when count <= 0, start < 0, the range passes U+10FFFF,
// or it overlaps the surrogate block
func UnicodeRange(start rune, count int) CharacterSet {
	return CharacterSet{kind: charsetRange, start: start, count: count}
}

func namedRange(name string, start rune, count int) CharacterSet {
	cs := UnicodeRange(start, count)
	cs.name = name
	return cs
}

// Character set presets
var (
	CharsetHalfKana  = namedRange("half-kana", parameter.HalfKanaStart, parameter.HalfKanaCount)
	CharsetKatakana  = namedRange("katakana", parameter.KatakanaStart, parameter.KatakanaCount)
	CharsetLowercase = namedRange("lowercase", parameter.LowercaseStart, parameter.LowercaseCount)
	CharsetDigits    = namedRange("digits", parameter.DigitsStart, parameter.DigitsCount)
	CharsetBinary    = namedRange("binary", parameter.DigitsStart, 2)
	CharsetBraille   = namedRange("braille", parameter.BrailleStart, parameter.BrailleCount)
	CharsetGreek     = namedRange("greek", parameter.GreekStart, parameter.GreekCount)
)

var charsetPresets = []CharacterSet{
	CharsetHalfKana,
	CharsetKatakana,
	CharsetLowercase,
	CharsetDigits,
	CharsetBinary,
	CharsetBraille,
	CharsetGreek,
}

// CharacterSetByName looks up a preset by name, case-insensitive
func CharacterSetByName(name string) (CharacterSet, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, cs := range charsetPresets {
		if cs.name == name {
			return cs, true
		}
	}
	return CharacterSet{}, false
}

// CharacterSetNames lists preset names in declaration order
func CharacterSetNames() []string {
	names := make([]string, len(charsetPresets))
	for i, cs := range charsetPresets {
		names[i] = cs.name
	}
	return names
}

// Len returns the number of selectable glyphs
func (c CharacterSet) Len() int {
	if c.kind == charsetRange {
		return max(c.count, 0)
	}
	return len(c.runes)
}

// At returns glyph i modulo Len; an empty set yields 0
func (c CharacterSet) At(i int) rune {
	n := c.Len()
	if n == 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	if c.kind == charsetRange {
		return c.start + rune(i)
	}
	return c.runes[i]
}

// pick selects a glyph from a raw field value
func (c CharacterSet) pick(h uint64) rune {
	n := c.Len()
	if n == 0 {
		return 0
	}
	idx := int(h % uint64(n))
	if c.kind == charsetRange {
		return c.start + rune(idx)
	}
	return c.runes[idx]
}

func (c CharacterSet) validate() error {
	if c.kind == charsetExplicit {
		if len(c.runes) == 0 {
			return ErrEmptyCharset
		}
		return nil
	}
	if c.count <= 0 {
		return fmt.Errorf("%w: length %d", ErrInvalidRange, c.count)
	}
	last := int64(c.start) + int64(c.count) - 1
	if c.start < 0 || last > utf8.MaxRune {
		return fmt.Errorf("%w: U+%04X+%d outside unicode", ErrInvalidRange, c.start, c.count)
	}
	// Surrogates are not encodable runes
	if int64(c.start) <= 0xDFFF && last >= 0xD800 {
		return fmt.Errorf("%w: U+%04X+%d overlaps surrogates", ErrInvalidRange, c.start, c.count)
	}
	return nil
}

// String describes the set
func (c CharacterSet) String() string {
	switch {
	case c.name != "":
		return c.name
	case c.kind == charsetRange:
		return fmt.Sprintf("range(U+%04X, %d)", c.start, c.count)
	default:
		return fmt.Sprintf("explicit(%q)", string(c.runes))
	}
}
