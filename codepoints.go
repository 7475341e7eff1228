package pixfont

import "unicode/utf8"

// RangeMarker introduces a (start, end) run in an encoded codepoint index
// and separates tokens in an encoded ligature list.
const RangeMarker = '\x00'

// CodepointIndex maps characters to glyph indices using a compact token
// string. A token is either a single scalar value, occupying one glyph
// index, or RangeMarker followed by the first and last scalar value of a
// contiguous run, occupying one index per scalar in the run.
//
// For example "\x00 _\x00a~" covers U+0020..U+005F at indices 0..63 and
// U+0061..U+007E at indices 64..93.
//
// Lookups scan the token string linearly. The representation trades speed
// for size; character sets of small fonts have only a handful of runs.
type CodepointIndex struct {
	data       string
	substitute GlyphIndex
}

// NewCodepointIndex wraps an encoded token string. Characters not covered
// by data resolve to substitute.
func NewCodepointIndex(data string, substitute GlyphIndex) CodepointIndex {
	return CodepointIndex{data: data, substitute: substitute}
}

// Index returns the glyph index of r, or the substitute index when r is
// not covered. Index never fails.
func (m CodepointIndex) Index(r rune) GlyphIndex {
	var next GlyphIndex
	s := m.data
	for len(s) > 0 {
		c, n := utf8.DecodeRuneInString(s)
		s = s[n:]
		if c != RangeMarker {
			if c == r {
				return next
			}
			next++
			continue
		}
		start, n := utf8.DecodeRuneInString(s)
		s = s[n:]
		end, n := utf8.DecodeRuneInString(s)
		s = s[n:]
		if r >= start && r <= end {
			return next + GlyphIndex(r-start)
		}
		next += GlyphIndex(end - start + 1)
	}
	return m.substitute
}

// Substitute returns the index used for characters the font does not cover.
func (m CodepointIndex) Substitute() GlyphIndex {
	return m.substitute
}

// Data returns the encoded token string.
func (m CodepointIndex) Data() string {
	return m.data
}

// count returns the number of glyph indices the token string covers.
func (m CodepointIndex) count() (int, error) {
	if !utf8.ValidString(m.data) {
		return 0, malformed("codepoints", "invalid UTF-8")
	}
	n := 0
	runes := []rune(m.data)
	for i := 0; i < len(runes); i++ {
		if runes[i] != RangeMarker {
			n++
			continue
		}
		if i+2 >= len(runes) {
			return 0, malformed("codepoints", "truncated range token")
		}
		start, end := runes[i+1], runes[i+2]
		if end < start {
			return 0, malformed("codepoints", "range end before start")
		}
		n += int(end-start) + 1
		i += 2
	}
	return n, nil
}
