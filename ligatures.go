package pixfont

import (
	"iter"
	"strings"
	"unicode/utf8"
)

// Ligatures matches multi-character sequences against an encoded
// ligature list: RangeMarker separated tokens in priority order.
// The n-th token is the glyph at index offset+n.
//
// Tokens are tried in encoded order and the first prefix match wins.
// Builders encode longer ligatures first, which makes first-match
// equivalent to longest-match.
type Ligatures struct {
	data   string
	offset GlyphIndex
}

// NewLigatures wraps an encoded ligature list whose first glyph is at offset.
func NewLigatures(data string, offset GlyphIndex) Ligatures {
	return Ligatures{data: data, offset: offset}
}

// Offset returns the glyph index of the first ligature.
func (l Ligatures) Offset() GlyphIndex {
	return l.offset
}

// Data returns the encoded ligature list.
func (l Ligatures) Data() string {
	return l.data
}

// Substitute returns the ligature glyph text starts with and the number of
// characters it consumes. ok is false when no ligature matches.
func (l Ligatures) Substitute(text string) (g GlyphIndex, chars int, ok bool) {
	g, n, ok := l.match(text)
	if !ok {
		return 0, 0, false
	}
	return g, utf8.RuneCountInString(text[:n]), true
}

// match is Substitute returning the matched length in bytes.
func (l Ligatures) match(text string) (GlyphIndex, int, bool) {
	g := l.offset
	for token := range l.tokens() {
		if strings.HasPrefix(text, token) {
			return g, len(token), true
		}
		g++
	}
	return 0, 0, false
}

// tokens yields the non-empty tokens of the list in order.
func (l Ligatures) tokens() iter.Seq[string] {
	return func(yield func(string) bool) {
		s := l.data
		for len(s) > 0 {
			var token string
			if i := strings.IndexByte(s, RangeMarker); i >= 0 {
				token, s = s[:i], s[i+1:]
			} else {
				token, s = s, ""
			}
			if token == "" {
				continue
			}
			if !yield(token) {
				return
			}
		}
	}
}

// count returns the number of ligature tokens.
func (l Ligatures) count() int {
	n := 0
	for range l.tokens() {
		n++
	}
	return n
}
