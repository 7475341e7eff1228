package build

import (
	"image"
	"maps"
	"slices"

	"github.com/gogpu/pixfont"
)

// Description carries the metrics and spacing rules of a font. Entries are
// keyed by glyph identity; entries for identities that are not in the
// glyph set are ignored, except kerning overrides which must resolve.
type Description struct {
	// LineHeight is the height of a text line and of every atlas row.
	LineHeight int

	// SpaceWidth is the width of the synthesized blank space glyph.
	SpaceWidth int

	// Baseline is the distance from the top of a line to the alphabetic baseline.
	Baseline int

	// DefaultBearings apply to glyphs without an entry in Bearings.
	DefaultBearings pixfont.Bearings
	Bearings        map[Identity]pixfont.Bearings

	// LeftKerningClass and RightKerningClass assign the edge classes used
	// to look up KerningPairs. Class 0 is unclassified.
	LeftKerningClass  map[Identity]uint8
	RightKerningClass map[Identity]uint8

	KerningPairs     []pixfont.KerningPair
	KerningOverrides []KerningOverride
}

// KerningOverride adjusts the spacing between two specific glyphs.
type KerningOverride struct {
	Left, Right Identity
	Delta       int32
}

// SourceGlyph is a glyph bitmap with the identity it renders.
// Pixels whose luma is 0 are ink; transparent pixels never are.
type SourceGlyph struct {
	Identity Identity
	Image    image.Image
}

// glyphSet is the canonical, ordered glyph sequence of a build.
type glyphSet struct {
	glyphs  []SourceGlyph
	index   map[Identity]pixfont.GlyphIndex
	singles int
	desc    Description
}

// newGlyphSet filters sources and description to the charset, adds the
// space glyph, orders everything canonically and checks coverage.
func newGlyphSet(desc Description, sources []SourceGlyph, o options) (*glyphSet, error) {
	log := pixfont.Logger()

	glyphs := make([]SourceGlyph, 0, len(sources)+1)
	for _, g := range sources {
		if err := g.Identity.validate(); err != nil {
			return nil, err
		}
		if !o.charset.Contains(g.Identity) {
			continue
		}
		glyphs = append(glyphs, g)
	}
	if dropped := len(sources) - len(glyphs); dropped > 0 {
		log.Debug("build: glyphs outside charset dropped", "charset", o.charset, "count", dropped)
	}
	if o.spaceGlyph {
		glyphs = append(glyphs, SourceGlyph{
			Identity: Single(' '),
			Image:    blankImage(desc.SpaceWidth, desc.LineHeight),
		})
	}

	index := make(map[Identity]pixfont.GlyphIndex, len(glyphs))
	for _, g := range glyphs {
		if _, dup := index[g.Identity]; dup {
			return nil, &DuplicateIdentityError{Identity: g.Identity}
		}
		index[g.Identity] = 0
	}

	slices.SortFunc(glyphs, func(a, b SourceGlyph) int {
		return Compare(a.Identity, b.Identity)
	})
	singles := 0
	for i, g := range glyphs {
		index[g.Identity] = pixfont.GlyphIndex(i)
		if !g.Identity.IsLigature() {
			singles++
		}
	}

	var missing []rune
	for _, r := range o.charset.Required() {
		if _, ok := index[Single(r)]; !ok {
			missing = append(missing, r)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingGlyphError{Missing: missing}
	}

	return &glyphSet{
		glyphs:  glyphs,
		index:   index,
		singles: singles,
		desc:    filterDescription(desc, o.charset),
	}, nil
}

// filterDescription drops identity keyed entries outside the charset.
// Class pairs are not keyed by identity and are kept.
func filterDescription(desc Description, cs Charset) Description {
	outside := func(id Identity, _ pixfont.Bearings) bool { return !cs.Contains(id) }
	outsideClass := func(id Identity, _ uint8) bool { return !cs.Contains(id) }

	out := desc
	out.Bearings = maps.Clone(desc.Bearings)
	maps.DeleteFunc(out.Bearings, outside)
	out.LeftKerningClass = maps.Clone(desc.LeftKerningClass)
	maps.DeleteFunc(out.LeftKerningClass, outsideClass)
	out.RightKerningClass = maps.Clone(desc.RightKerningClass)
	maps.DeleteFunc(out.RightKerningClass, outsideClass)
	out.KerningOverrides = slices.DeleteFunc(slices.Clone(desc.KerningOverrides), func(o KerningOverride) bool {
		return !cs.Contains(o.Left) || !cs.Contains(o.Right)
	})
	return out
}

// identities returns the identities in canonical order.
func (s *glyphSet) identities() []Identity {
	ids := make([]Identity, len(s.glyphs))
	for i, g := range s.glyphs {
		ids[i] = g.Identity
	}
	return ids
}

// blankImage returns a white image without ink.
func blankImage(w, h int) image.Image {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}
	return img
}
