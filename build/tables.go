package build

import (
	"cmp"
	"slices"
	"strings"

	"github.com/gogpu/pixfont"
)

// EncodeCodepoints encodes ascending, unique scalar values as a codepoint
// index string. A run of consecutive values becomes RangeMarker, first,
// last; an isolated value is written as itself.
func EncodeCodepoints(runes []rune) string {
	var sb strings.Builder
	for i := 0; i < len(runes); {
		j := i
		for j+1 < len(runes) && runes[j+1] == runes[j]+1 {
			j++
		}
		if j == i {
			sb.WriteRune(runes[i])
		} else {
			sb.WriteRune(pixfont.RangeMarker)
			sb.WriteRune(runes[i])
			sb.WriteRune(runes[j])
		}
		i = j + 1
	}
	return sb.String()
}

// EncodeLigatures encodes ligature identities, already in canonical order,
// as a ligature list: each identity preceded by RangeMarker.
func EncodeLigatures(ligatures []Identity) string {
	var sb strings.Builder
	for _, id := range ligatures {
		sb.WriteRune(pixfont.RangeMarker)
		sb.WriteString(string(id))
	}
	return sb.String()
}

// substituteIndex returns the glyph shown for uncovered characters: '?',
// or the space glyph when the font has no '?'.
func (s *glyphSet) substituteIndex() pixfont.GlyphIndex {
	if g, ok := s.index[Single('?')]; ok {
		return g
	}
	g, ok := s.index[Single(' ')]
	if !ok {
		g = 0
	}
	pixfont.Logger().Warn("build: no '?' glyph, substituting", "glyph", s.glyphs[g].Identity.String())
	return g
}

// codepoints returns the encoded index of all single characters.
func (s *glyphSet) codepoints() string {
	runes := make([]rune, s.singles)
	for i, g := range s.glyphs[:s.singles] {
		runes[i] = g.Identity.Rune()
	}
	return EncodeCodepoints(runes)
}

// ligatures returns the encoded ligature list.
func (s *glyphSet) ligatures() string {
	return EncodeLigatures(s.identities()[s.singles:])
}

// kerningPairs returns the class pair table sorted for binary search.
// For duplicate class pairs the first entry wins.
func (s *glyphSet) kerningPairs() []pixfont.KerningPair {
	pairs := slices.Clone(s.desc.KerningPairs)
	slices.SortStableFunc(pairs, pixfont.CompareKerningPairs)
	n := len(pairs)
	pairs = slices.CompactFunc(pairs, func(a, b pixfont.KerningPair) bool {
		return pixfont.CompareKerningPairs(a, b) == 0
	})
	if n != len(pairs) {
		pixfont.Logger().Warn("build: duplicate kerning pairs ignored", "count", n-len(pairs))
	}
	return pairs
}

// kerningOverrides resolves override identities to glyph indices and
// sorts the result for binary search.
func (s *glyphSet) kerningOverrides() ([]pixfont.KerningOverride, error) {
	out := make([]pixfont.KerningOverride, 0, len(s.desc.KerningOverrides))
	for _, o := range s.desc.KerningOverrides {
		left, ok := s.index[o.Left]
		if !ok {
			return nil, &UnresolvedKerningIdentityError{Identity: o.Left, Left: o.Left, Right: o.Right}
		}
		right, ok := s.index[o.Right]
		if !ok {
			return nil, &UnresolvedKerningIdentityError{Identity: o.Right, Left: o.Left, Right: o.Right}
		}
		out = append(out, pixfont.KerningOverride{Left: uint32(left), Right: uint32(right), Delta: o.Delta})
	}
	slices.SortStableFunc(out, pixfont.CompareKerningOverrides)
	n := len(out)
	out = slices.CompactFunc(out, func(a, b pixfont.KerningOverride) bool {
		return pixfont.CompareKerningOverrides(a, b) == 0
	})
	if n != len(out) {
		pixfont.Logger().Warn("build: duplicate kerning overrides ignored", "count", n-len(out))
	}
	return out, nil
}

// sideBearings returns the bearing overrides sorted by glyph index.
func (s *glyphSet) sideBearings() []pixfont.SideBearing {
	out := make([]pixfont.SideBearing, 0, len(s.desc.Bearings))
	for id, b := range s.desc.Bearings {
		g, ok := s.index[id]
		if !ok {
			pixfont.Logger().Warn("build: bearings for unknown glyph ignored", "glyph", id.String())
			continue
		}
		out = append(out, pixfont.SideBearing{Glyph: uint32(g), Bearings: b})
	}
	slices.SortFunc(out, func(a, b pixfont.SideBearing) int {
		return cmp.Compare(a.Glyph, b.Glyph)
	})
	return out
}

// kerningClasses returns the left and right edge class of glyph i.
func (s *glyphSet) kerningClasses(i int) (left, right uint8) {
	id := s.glyphs[i].Identity
	return s.desc.LeftKerningClass[id], s.desc.RightKerningClass[id]
}

// warnUnknownClasses logs class assignments for identities not in the set.
func (s *glyphSet) warnUnknownClasses() {
	for _, m := range []map[Identity]uint8{s.desc.LeftKerningClass, s.desc.RightKerningClass} {
		for id := range m {
			if _, ok := s.index[id]; !ok {
				pixfont.Logger().Warn("build: kerning class for unknown glyph ignored", "glyph", id.String())
			}
		}
	}
}
