package pixfont

import (
	"fmt"
	"image"
	"slices"
)

// FontData is the raw, serializable form of a font: the atlas bitmap and
// every encoded table. Builders produce it; NewFont validates it.
type FontData struct {
	// Atlas is the 1bpp atlas bitmap, AtlasStride bytes per row.
	Atlas       []byte
	AtlasHeight int

	// Glyphs holds GlyphRecordSize bytes per glyph in canonical order.
	Glyphs []byte

	Codepoints      string
	SubstituteIndex int

	Ligatures      string
	LigatureOffset int

	KerningPairs     []KerningPair
	KerningOverrides []KerningOverride

	SideBearings    []SideBearing
	DefaultBearings Bearings

	LineHeight int
	Baseline   int
}

// Font is an immutable pixel font. A Font is safe for concurrent use by
// any number of readers; nothing is mutated after NewFont returns.
type Font struct {
	atlas      *Atlas
	records    []byte
	codepoints CodepointIndex
	ligatures  Ligatures
	kerning    Kerning
	bearings   SideBearings
	lineHeight int
	baseline   int
}

// NewFont validates data and returns a font backed by it.
// The slices in data are retained, not copied, and must not be modified.
// Inconsistent tables yield an error wrapping ErrMalformedAsset.
func NewFont(data FontData) (*Font, error) {
	if err := data.validate(); err != nil {
		return nil, err
	}
	return &Font{
		atlas:      &Atlas{Pix: data.Atlas, Height: data.AtlasHeight},
		records:    data.Glyphs,
		codepoints: NewCodepointIndex(data.Codepoints, GlyphIndex(data.SubstituteIndex)),
		ligatures:  NewLigatures(data.Ligatures, GlyphIndex(data.LigatureOffset)),
		kerning:    NewKerning(data.KerningPairs, data.KerningOverrides),
		bearings:   NewSideBearings(data.SideBearings, data.DefaultBearings),
		lineHeight: data.LineHeight,
		baseline:   data.Baseline,
	}, nil
}

func (d *FontData) validate() error {
	if d.AtlasHeight < 0 || len(d.Atlas) != AtlasStride*d.AtlasHeight {
		return malformed("atlas", fmt.Sprintf("%d bytes for height %d", len(d.Atlas), d.AtlasHeight))
	}
	if len(d.Glyphs) == 0 || len(d.Glyphs)%GlyphRecordSize != 0 {
		return malformed("glyphs", fmt.Sprintf("record table length %d is not a positive multiple of %d", len(d.Glyphs), GlyphRecordSize))
	}
	n := len(d.Glyphs) / GlyphRecordSize
	for i := range n {
		area := decodeRecord(d.Glyphs, i).Area()
		if area.Max.X > AtlasWidth || area.Max.Y > d.AtlasHeight {
			return malformed("glyphs", fmt.Sprintf("glyph %d at %v lies outside the atlas", i, area))
		}
	}
	if d.LineHeight < 0 || d.Baseline < 0 {
		return malformed("metrics", "negative line height or baseline")
	}

	singles, err := NewCodepointIndex(d.Codepoints, 0).count()
	if err != nil {
		return err
	}
	if singles != d.LigatureOffset {
		return malformed("codepoints", fmt.Sprintf("covers %d glyphs, ligature offset is %d", singles, d.LigatureOffset))
	}
	if ligs := NewLigatures(d.Ligatures, 0).count(); d.LigatureOffset+ligs != n {
		return malformed("ligatures", fmt.Sprintf("%d singles and %d ligatures for %d glyphs", d.LigatureOffset, ligs, n))
	}
	if d.SubstituteIndex < 0 || d.SubstituteIndex >= n {
		return malformed("codepoints", fmt.Sprintf("substitute index %d out of range", d.SubstituteIndex))
	}

	if !slices.IsSortedFunc(d.KerningPairs, CompareKerningPairs) {
		return malformed("kerning", "class pairs are not sorted")
	}
	if !slices.IsSortedFunc(d.KerningOverrides, CompareKerningOverrides) {
		return malformed("kerning", "overrides are not sorted")
	}
	for _, o := range d.KerningOverrides {
		if int(o.Left) >= n || int(o.Right) >= n {
			return malformed("kerning", fmt.Sprintf("override (%d, %d) references a missing glyph", o.Left, o.Right))
		}
	}
	for i, b := range d.SideBearings {
		if int(b.Glyph) >= n {
			return malformed("bearings", fmt.Sprintf("glyph %d out of range", b.Glyph))
		}
		if i > 0 && d.SideBearings[i-1].Glyph >= b.Glyph {
			return malformed("bearings", "table is not sorted")
		}
	}
	return nil
}

// Data returns the raw tables of the font. The returned slices are shared
// with the font and must not be modified.
func (f *Font) Data() FontData {
	return FontData{
		Atlas:            f.atlas.Pix,
		AtlasHeight:      f.atlas.Height,
		Glyphs:           f.records,
		Codepoints:       f.codepoints.Data(),
		SubstituteIndex:  int(f.codepoints.Substitute()),
		Ligatures:        f.ligatures.Data(),
		LigatureOffset:   int(f.ligatures.Offset()),
		KerningPairs:     f.kerning.Pairs(),
		KerningOverrides: f.kerning.Overrides(),
		SideBearings:     f.bearings.Table(),
		DefaultBearings:  f.bearings.Defaults(),
		LineHeight:       f.lineHeight,
		Baseline:         f.baseline,
	}
}

// Atlas returns the glyph bitmap.
func (f *Font) Atlas() *Atlas { return f.atlas }

// NumGlyphs returns the number of glyphs, ligatures included.
func (f *Font) NumGlyphs() int { return len(f.records) / GlyphRecordSize }

// LineHeight returns the height of a line of text in pixels.
func (f *Font) LineHeight() int { return f.lineHeight }

// Baseline returns the distance from the top of a line to the alphabetic baseline.
func (f *Font) Baseline() int { return f.baseline }

// Ligatures returns the ligature matcher.
func (f *Font) Ligatures() Ligatures { return f.ligatures }

// Kerning returns the kerning tables.
func (f *Font) Kerning() Kerning { return f.kerning }

// SideBearings returns the side bearing resolver.
func (f *Font) SideBearings() SideBearings { return f.bearings }

// GlyphIndex returns the glyph of a single character, or the substitute glyph.
func (f *Font) GlyphIndex(r rune) GlyphIndex {
	return f.codepoints.Index(r)
}

// Glyph returns the decoded record of g.
func (f *Font) Glyph(g GlyphIndex) GlyphRecord {
	return decodeRecord(f.records, int(g))
}

// GlyphArea returns the rectangle of g in the atlas.
func (f *Font) GlyphArea(g GlyphIndex) image.Rectangle {
	return f.Glyph(g).Area()
}

// GlyphWidth returns the pixel width of g.
func (f *Font) GlyphWidth(g GlyphIndex) int {
	w, _ := UnpackDimensions(f.records[int(g)*GlyphRecordSize+recordDimensions])
	return w
}

// LeftKerningClass returns the class used when g is the left glyph of a pair.
func (f *Font) LeftKerningClass(g GlyphIndex) uint8 {
	return f.records[int(g)*GlyphRecordSize+recordLeftClass]
}

// RightKerningClass returns the class used when g is the right glyph of a pair.
func (f *Font) RightKerningClass(g GlyphIndex) uint8 {
	return f.records[int(g)*GlyphRecordSize+recordRightClass]
}

// KerningBetween returns the kerning adjustment between prev and next.
// An override for the glyph pair wins over the class pair of
// LeftKerningClass(prev) and RightKerningClass(next).
func (f *Font) KerningBetween(prev, next GlyphIndex) (int, bool) {
	if d, ok := f.kerning.Override(prev, next); ok {
		return d, true
	}
	return f.kerning.Pair(f.LeftKerningClass(prev), f.RightKerningClass(next))
}

// Spacing returns the horizontal advance applied before drawing next.
// With prev == NoGlyph it is the left bearing of next alone, which may be
// negative. Otherwise it is the right bearing of prev, plus kerning, plus
// the left bearing of next.
func (f *Font) Spacing(prev, next GlyphIndex) int {
	if prev == NoGlyph {
		return f.bearings.Left(next)
	}
	kern, _ := f.KerningBetween(prev, next)
	return f.bearings.Right(prev) + kern + f.bearings.Left(next)
}
