package pixfont

import (
	"image"
	"image/color"
	"iter"
	"unicode/utf8"
)

// Baseline selects which horizontal line of the text the vertical
// component of a draw position refers to.
type Baseline int

const (
	// BaselineTop aligns the top of the line with the position.
	BaselineTop Baseline = iota
	// BaselineBottom aligns the last pixel row of the line with the position.
	BaselineBottom
	// BaselineMiddle aligns the middle pixel row of the line with the position.
	BaselineMiddle
	// BaselineAlphabetic aligns the font's baseline with the position.
	BaselineAlphabetic
)

// String returns the string representation of the baseline.
func (b Baseline) String() string {
	switch b {
	case BaselineTop:
		return "Top"
	case BaselineBottom:
		return "Bottom"
	case BaselineMiddle:
		return "Middle"
	case BaselineAlphabetic:
		return "Alphabetic"
	default:
		return "Unknown"
	}
}

// BaselineOffset returns the distance from the top of the line to the
// row selected by b.
func (f *Font) BaselineOffset(b Baseline) int {
	switch b {
	case BaselineBottom:
		return max(f.lineHeight-1, 0)
	case BaselineMiddle:
		return max(f.lineHeight-1, 0) / 2
	case BaselineAlphabetic:
		return f.baseline
	default:
		return 0
	}
}

// GlyphIterator walks a text and yields one glyph per ligature or
// character. At every step the remaining text is first matched against the
// font's ligatures; otherwise the next character is looked up on its own.
//
// The iterator holds only a byte cursor into the text; Reset restarts it.
type GlyphIterator struct {
	font   *Font
	text   string
	cursor int
}

// GlyphIndices returns an iterator over the glyphs of text.
func (f *Font) GlyphIndices(text string) *GlyphIterator {
	return &GlyphIterator{font: f, text: text}
}

// Next returns the next glyph, or false at the end of the text.
func (it *GlyphIterator) Next() (GlyphIndex, bool) {
	if it.cursor >= len(it.text) {
		return 0, false
	}
	rest := it.text[it.cursor:]
	if g, n, ok := it.font.ligatures.match(rest); ok {
		it.cursor += n
		return g, true
	}
	r, n := utf8.DecodeRuneInString(rest)
	it.cursor += n
	return it.font.codepoints.Index(r), true
}

// Reset rewinds the iterator to the start of the text.
func (it *GlyphIterator) Reset() {
	it.cursor = 0
}

// Glyphs returns the glyphs of text as a sequence.
func (f *Font) Glyphs(text string) iter.Seq[GlyphIndex] {
	return func(yield func(GlyphIndex) bool) {
		it := f.GlyphIndices(text)
		for {
			g, ok := it.Next()
			if !ok || !yield(g) {
				return
			}
		}
	}
}

// Layout positions the glyphs of text. pos is the pen origin; its vertical
// component refers to the line selected by baseline. Each yielded point is
// the top-left corner at which the glyph's atlas rectangle is drawn.
func (f *Font) Layout(text string, pos image.Point, baseline Baseline) iter.Seq2[image.Point, GlyphIndex] {
	return func(yield func(image.Point, GlyphIndex) bool) {
		top := pos.Y - f.BaselineOffset(baseline)
		x := pos.X
		prev := NoGlyph
		for g := range f.Glyphs(text) {
			x += f.Spacing(prev, g)
			if !yield(image.Pt(x, top), g) {
				return
			}
			x += f.GlyphWidth(g)
			prev = g
		}
	}
}

// TextMetrics is the result of measuring a text.
type TextMetrics struct {
	// BoundingBox spans from the first glyph's left edge, which lies left
	// of the pen origin when that glyph has a negative left bearing, to the
	// end of the last glyph, over the full line height.
	BoundingBox image.Rectangle

	// NextPosition is where text drawn after this one continues, on the
	// same baseline as the measured position.
	NextPosition image.Point
}

// Measure computes the metrics of text drawn at pos without drawing it.
func (f *Font) Measure(text string, pos image.Point, baseline Baseline) TextMetrics {
	top := pos.Y - f.BaselineOffset(baseline)
	start, end := pos.X, pos.X
	first := true
	for at, g := range f.Layout(text, pos, baseline) {
		if first {
			start = at.X
			first = false
		}
		end = at.X + f.GlyphWidth(g)
	}
	box := image.Rectangle{Min: image.Pt(start, top), Max: image.Pt(end, top)}
	if !first {
		box.Max.Y = top + f.lineHeight
	}
	return TextMetrics{
		BoundingBox:  box,
		NextPosition: image.Pt(end, pos.Y),
	}
}

// TextStyle controls how text is drawn.
type TextStyle struct {
	// Color is the ink color.
	Color color.Color

	// Background fills the text's bounding box before drawing, if set.
	Background color.Color

	// Baseline selects the line the draw position refers to.
	Baseline Baseline
}

// Draw renders text onto target at pos and returns the next pen position.
// The target receives one FillRect call for the background, if any, and
// one DrawSubregion call per glyph; nothing is read back from it.
func (f *Font) Draw(target Target, text string, pos image.Point, style TextStyle) image.Point {
	if style.Background != nil {
		m := f.Measure(text, pos, style.Baseline)
		if !m.BoundingBox.Empty() {
			target.FillRect(m.BoundingBox, style.Background)
		}
	}
	ink := style.Color
	if ink == nil {
		ink = color.Black
	}
	next := pos
	for at, g := range f.Layout(text, pos, style.Baseline) {
		area := f.GlyphArea(g)
		if !area.Empty() {
			target.DrawSubregion(f.atlas, area, at, ink)
		}
		next.X = at.X + area.Dx()
	}
	return next
}
