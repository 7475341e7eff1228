package build

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Charset restricts a build to a subset of characters.
type Charset int

const (
	// CharsetAll keeps every source glyph.
	CharsetAll Charset = iota
	// CharsetASCII keeps glyphs made of printable ASCII characters and
	// requires all of U+0020..U+007E to be present.
	CharsetASCII
)

var printableASCII = func() *unicode.RangeTable {
	runes := make([]rune, 0, 0x7F-0x20)
	for r := rune(0x20); r <= 0x7E; r++ {
		runes = append(runes, r)
	}
	return rangetable.New(runes...)
}()

// String returns the string representation of the charset.
func (c Charset) String() string {
	switch c {
	case CharsetAll:
		return "all"
	case CharsetASCII:
		return "ascii"
	default:
		return "unknown"
	}
}

// ParseCharset returns the charset named by s, as printed by String.
func ParseCharset(s string) (Charset, bool) {
	switch s {
	case "all", "":
		return CharsetAll, true
	case "ascii":
		return CharsetASCII, true
	}
	return CharsetAll, false
}

func (c Charset) table() *unicode.RangeTable {
	if c == CharsetASCII {
		return printableASCII
	}
	return nil
}

// Contains reports whether every character of id belongs to the charset.
func (c Charset) Contains(id Identity) bool {
	t := c.table()
	if t == nil {
		return true
	}
	for _, r := range string(id) {
		if !unicode.Is(t, r) {
			return false
		}
	}
	return true
}

// Required returns the characters a build with this charset must cover.
func (c Charset) Required() []rune {
	t := c.table()
	if t == nil {
		return nil
	}
	var runes []rune
	rangetable.Visit(t, func(r rune) {
		runes = append(runes, r)
	})
	return runes
}
