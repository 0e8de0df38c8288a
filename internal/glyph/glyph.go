// Package glyph produces the random characters that streams draw.
//
// Two alphabets are available:
//
//   - [ASCII]: printable ASCII without space and DEL (0x21-0x7E)
//   - [Kana]: half-width katakana block (0xFF62-0xFF9D)
package glyph

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// Mode selects the alphabet glyphs are drawn from.
type Mode int

const (
	Kana Mode = iota
	ASCII
)

const (
	ASCIIFirst rune = 0x21
	ASCIILast  rune = 0x7E
	KanaFirst  rune = 0xFF62
	KanaLast   rune = 0xFF9D
)

func (m Mode) String() string {
	switch m {
	case ASCII:
		return "ascii"
	case Kana:
		return "kana"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode maps a config or flag value to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ascii":
		return ASCII, nil
	case "kana", "":
		return Kana, nil
	default:
		return Kana, fmt.Errorf("unknown glyph mode: %s", s)
	}
}

// Range returns the inclusive code point bounds of the mode's alphabet.
func (m Mode) Range() (first, last rune) {
	if m == ASCII {
		return ASCIIFirst, ASCIILast
	}
	return KanaFirst, KanaLast
}

// DecodeError reports a code unit that did not decode to a displayable rune.
type DecodeError struct {
	CodeUnit uint16
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("glyph: code unit %#04x does not decode to a valid rune", e.CodeUnit)
}

// Next returns one uniformly random glyph for mode.
func Next(rng *rand.Rand, mode Mode) (rune, error) {
	first, last := mode.Range()
	n := first + rune(rng.IntN(int(last-first)+1))
	if mode == ASCII {
		return n, nil
	}
	return decode(uint16(n))
}

func decode(unit uint16) (rune, error) {
	runes := utf16.Decode([]uint16{unit})
	if len(runes) != 1 || runes[0] == utf8.RuneError || !utf8.ValidRune(runes[0]) {
		return utf8.RuneError, &DecodeError{CodeUnit: unit}
	}
	return runes[0], nil
}
