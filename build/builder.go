package build

import (
	"context"
	"fmt"
	"image"
	"math"

	"github.com/gogpu/pixfont"
)

// Padding is the gap between neighbouring glyphs and between atlas rows.
const Padding = 1

// Placement is where a glyph ended up in the atlas.
type Placement struct {
	Identity Identity
	Glyph    pixfont.GlyphIndex
	Area     image.Rectangle
}

// Result is the output of Build.
type Result struct {
	// Font is the finished, validated font.
	Font *pixfont.Font

	// Placements lists every glyph in index order.
	Placements []Placement

	// Utilization is the fraction of the atlas covered by glyph rectangles.
	Utilization float64
}

// Build packs source glyphs into an atlas and encodes all lookup tables.
//
// Glyphs are ordered canonically (see Compare), which fixes glyph indices
// and ligature priority, then shelf-packed into the 128 pixel wide atlas in
// that order. Any error aborts the build; there is no partial font.
func Build(ctx context.Context, desc Description, sources []SourceGlyph, opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := pixfont.Logger()

	if desc.LineHeight < 1 || desc.LineHeight > pixfont.MaxGlyphDimension || desc.SpaceWidth < 0 || desc.Baseline < 0 || desc.Baseline > desc.LineHeight {
		return nil, fmt.Errorf("%w: line height %d, space width %d, baseline %d",
			ErrInvalidDescription, desc.LineHeight, desc.SpaceWidth, desc.Baseline)
	}

	set, err := newGlyphSet(desc, sources, o)
	if err != nil {
		return nil, err
	}
	if len(set.glyphs) == 0 {
		return nil, fmt.Errorf("%w: no glyphs", ErrInvalidDescription)
	}
	if err := checkSizes(set, desc.LineHeight); err != nil {
		return nil, err
	}
	set.warnUnknownClasses()

	placements, packer, err := pack(set, desc.LineHeight)
	if err != nil {
		return nil, err
	}

	masks, err := rasterize(ctx, set.glyphs, o.workers)
	if err != nil {
		return nil, err
	}
	atlas := pixfont.NewAtlas(packer.Height())
	records := make([]byte, 0, len(set.glyphs)*pixfont.GlyphRecordSize)
	for i, p := range placements {
		blit(atlas, masks[i], p.Area.Min)
		left, right := set.kerningClasses(i)
		records = pixfont.GlyphRecord{
			Left:       uint8(p.Area.Min.X),
			Top:        uint8(p.Area.Min.Y),
			Width:      uint8(p.Area.Dx()),
			Height:     uint8(p.Area.Dy()),
			LeftClass:  left,
			RightClass: right,
		}.AppendTo(records)
	}

	overrides, err := set.kerningOverrides()
	if err != nil {
		return nil, err
	}
	data := pixfont.FontData{
		Atlas:            atlas.Pix,
		AtlasHeight:      atlas.Height,
		Glyphs:           records,
		Codepoints:       set.codepoints(),
		SubstituteIndex:  int(set.substituteIndex()),
		Ligatures:        set.ligatures(),
		LigatureOffset:   set.singles,
		KerningPairs:     set.kerningPairs(),
		KerningOverrides: overrides,
		SideBearings:     set.sideBearings(),
		DefaultBearings:  desc.DefaultBearings,
		LineHeight:       desc.LineHeight,
		Baseline:         desc.Baseline,
	}
	font, err := pixfont.NewFont(data)
	if err != nil {
		return nil, fmt.Errorf("build: encoded font failed validation: %w", err)
	}

	log.Info("build: font built",
		"glyphs", len(set.glyphs),
		"ligatures", len(set.glyphs)-set.singles,
		"atlas_height", atlas.Height,
		"shelves", packer.ShelfCount())
	log.Debug("build: tables encoded",
		"codepoints_bytes", len(data.Codepoints),
		"ligatures_bytes", len(data.Ligatures),
		"kerning_pairs", len(data.KerningPairs),
		"kerning_overrides", len(data.KerningOverrides),
		"side_bearings", len(data.SideBearings),
		"utilization", packer.Utilization())

	return &Result{
		Font:        font,
		Placements:  placements,
		Utilization: packer.Utilization(),
	}, nil
}

// checkSizes rejects glyphs that do not fit a glyph record or an atlas row.
func checkSizes(set *glyphSet, lineHeight int) error {
	maxH := min(pixfont.MaxGlyphDimension, lineHeight)
	for _, g := range set.glyphs {
		b := g.Image.Bounds()
		if b.Dx() > pixfont.MaxGlyphDimension || b.Dy() > maxH {
			return &GlyphTooLargeError{
				Identity:  g.Identity,
				Width:     b.Dx(),
				Height:    b.Dy(),
				MaxWidth:  pixfont.MaxGlyphDimension,
				MaxHeight: maxH,
			}
		}
		if b.Dy() != lineHeight {
			pixfont.Logger().Warn("build: glyph height differs from line height",
				"glyph", g.Identity.String(), "height", b.Dy(), "line_height", lineHeight)
		}
	}
	return nil
}

// pack assigns atlas positions in canonical order.
func pack(set *glyphSet, lineHeight int) ([]Placement, *ShelfPacker, error) {
	packer := NewShelfPacker(pixfont.AtlasWidth, lineHeight, Padding)
	placements := make([]Placement, len(set.glyphs))
	for i, g := range set.glyphs {
		size := g.Image.Bounds().Size()
		x, y, ok := packer.Place(size.X, size.Y)
		if !ok {
			// checkSizes guarantees every glyph fits a shelf.
			panic(fmt.Sprintf("build: glyph %s does not fit a shelf", g.Identity))
		}
		if y > math.MaxUint8 {
			return nil, nil, fmt.Errorf("%w: glyph %s at row %d", ErrAtlasOverflow, g.Identity, y)
		}
		placements[i] = Placement{
			Identity: g.Identity,
			Glyph:    pixfont.GlyphIndex(i),
			Area:     image.Rectangle{Min: image.Pt(x, y), Max: image.Pt(x+size.X, y+size.Y)},
		}
	}
	return placements, packer, nil
}
