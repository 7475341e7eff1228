package pixfont

import (
	"cmp"
	"slices"
)

// KerningPair is the spacing adjustment between a glyph whose
// LeftKerningClass is Left, placed on the left, and a glyph whose
// RightKerningClass is Right, placed on the right. Class 0 means unclassified.
type KerningPair struct {
	Left, Right uint8
	Delta       int32
}

// KerningOverride adjusts the spacing of one specific glyph pair and takes
// precedence over any class pair.
type KerningOverride struct {
	Left, Right uint32
	Delta       int32
}

// Kerning holds the class pair and override tables, both sorted ascending
// by (Left, Right) for binary search.
type Kerning struct {
	pairs     []KerningPair
	overrides []KerningOverride
}

// NewKerning wraps sorted kerning tables. The slices are not copied.
func NewKerning(pairs []KerningPair, overrides []KerningOverride) Kerning {
	return Kerning{pairs: pairs, overrides: overrides}
}

// Pair returns the adjustment for a class pair.
func (k Kerning) Pair(left, right uint8) (int, bool) {
	i, ok := slices.BinarySearchFunc(k.pairs, [2]uint8{left, right}, func(p KerningPair, key [2]uint8) int {
		if c := cmp.Compare(p.Left, key[0]); c != 0 {
			return c
		}
		return cmp.Compare(p.Right, key[1])
	})
	if !ok {
		return 0, false
	}
	return int(k.pairs[i].Delta), true
}

// Override returns the adjustment for a specific glyph pair.
func (k Kerning) Override(left, right GlyphIndex) (int, bool) {
	if left < 0 || right < 0 {
		return 0, false
	}
	i, ok := slices.BinarySearchFunc(k.overrides, [2]uint32{uint32(left), uint32(right)}, func(o KerningOverride, key [2]uint32) int {
		if c := cmp.Compare(o.Left, key[0]); c != 0 {
			return c
		}
		return cmp.Compare(o.Right, key[1])
	})
	if !ok {
		return 0, false
	}
	return int(k.overrides[i].Delta), true
}

// Pairs returns the class pair table.
func (k Kerning) Pairs() []KerningPair { return k.pairs }

// Overrides returns the override table.
func (k Kerning) Overrides() []KerningOverride { return k.overrides }

// CompareKerningPairs orders class pairs by (Left, Right).
func CompareKerningPairs(a, b KerningPair) int {
	if c := cmp.Compare(a.Left, b.Left); c != 0 {
		return c
	}
	return cmp.Compare(a.Right, b.Right)
}

// CompareKerningOverrides orders overrides by (Left, Right).
func CompareKerningOverrides(a, b KerningOverride) int {
	if c := cmp.Compare(a.Left, b.Left); c != 0 {
		return c
	}
	return cmp.Compare(a.Right, b.Right)
}
