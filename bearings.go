package pixfont

import (
	"cmp"
	"slices"
)

// Bearings is a pair of side bearings: extra pixels before (Left) and
// after (Right) a glyph. Either may be negative.
type Bearings struct {
	Left, Right int32
}

// SideBearing overrides the default bearings of one glyph.
type SideBearing struct {
	Glyph uint32
	Bearings
}

// SideBearings resolves per-glyph bearings from a table sorted by glyph
// index, falling back to a default pair.
type SideBearings struct {
	table    []SideBearing
	defaults Bearings
}

// NewSideBearings wraps a sorted bearing table. The slice is not copied.
func NewSideBearings(table []SideBearing, defaults Bearings) SideBearings {
	return SideBearings{table: table, defaults: defaults}
}

// Left returns the left bearing of g.
func (s SideBearings) Left(g GlyphIndex) int {
	return int(s.lookup(g).Left)
}

// Right returns the right bearing of g.
func (s SideBearings) Right(g GlyphIndex) int {
	return int(s.lookup(g).Right)
}

// Defaults returns the bearings of glyphs without an override.
func (s SideBearings) Defaults() Bearings { return s.defaults }

// Table returns the override table.
func (s SideBearings) Table() []SideBearing { return s.table }

func (s SideBearings) lookup(g GlyphIndex) Bearings {
	if g < 0 {
		return s.defaults
	}
	i, ok := slices.BinarySearchFunc(s.table, uint32(g), func(b SideBearing, key uint32) int {
		return cmp.Compare(b.Glyph, key)
	})
	if !ok {
		return s.defaults
	}
	return s.table[i].Bearings
}
