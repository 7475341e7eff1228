package pixfont

import (
	"image"
	"image/color"
	"slices"
	"testing"
)

// --- Baseline Tests ---

func TestFont_BaselineOffset(t *testing.T) {
	f := newTestFont(t)
	tests := []struct {
		b    Baseline
		want int
	}{
		{BaselineTop, 0},
		{BaselineBottom, 3},
		{BaselineMiddle, 1},
		{BaselineAlphabetic, 3},
	}
	for _, tt := range tests {
		if got := f.BaselineOffset(tt.b); got != tt.want {
			t.Errorf("BaselineOffset(%v) = %d, want %d", tt.b, got, tt.want)
		}
	}
}

func TestBaseline_String(t *testing.T) {
	if s := BaselineAlphabetic.String(); s != "Alphabetic" {
		t.Errorf("String() = %q, want %q", s, "Alphabetic")
	}
	if s := Baseline(99).String(); s != "Unknown" {
		t.Errorf("String() = %q, want %q", s, "Unknown")
	}
}

// --- GlyphIterator Tests ---

func TestGlyphIterator_Ligatures(t *testing.T) {
	f := newTestFont(t)

	tests := []struct {
		text string
		want []GlyphIndex
	}{
		{"", nil},
		{"o", []GlyphIndex{testO}},
		{"oo", []GlyphIndex{testOO}},
		{"ooo", []GlyphIndex{testOO, testO}},
		{"oooo", []GlyphIndex{testOO, testOO}},
		{"jo, x", []GlyphIndex{testJ, testO, testComma, testSpace, testQuestion}},
		{"熊oo", []GlyphIndex{testQuestion, testOO}},
	}
	for _, tt := range tests {
		got := slices.Collect(f.Glyphs(tt.text))
		if !slices.Equal(got, tt.want) {
			t.Errorf("Glyphs(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestGlyphIterator_Reset(t *testing.T) {
	f := newTestFont(t)
	it := f.GlyphIndices("jo")

	first, _ := it.Next()
	it.Next()
	if _, ok := it.Next(); ok {
		t.Fatal("Next() past end returned a glyph")
	}
	it.Reset()
	if g, ok := it.Next(); !ok || g != first {
		t.Errorf("Next() after Reset = (%d, %v), want (%d, true)", g, ok, first)
	}
}

func TestGlyphs_StopEarly(t *testing.T) {
	f := newTestFont(t)
	n := 0
	for range f.Glyphs("jjjj") {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("iterations = %d, want 2", n)
	}
}

// --- Layout Tests ---

func TestFont_Layout(t *testing.T) {
	f := newTestFont(t)

	type placed struct {
		at image.Point
		g  GlyphIndex
	}
	var got []placed
	for at, g := range f.Layout("jo,", image.Pt(10, 5), BaselineAlphabetic) {
		got = append(got, placed{at, g})
	}
	// j starts 2px left of the pen, o follows after bearing 1 and
	// override 1, and the class pair pulls the comma back by one.
	want := []placed{
		{image.Pt(8, 2), testJ},
		{image.Pt(12, 2), testO},
		{image.Pt(15, 2), testComma},
	}
	if !slices.Equal(got, want) {
		t.Errorf("Layout() = %v, want %v", got, want)
	}
}

// --- Measure Tests ---

func TestFont_Measure(t *testing.T) {
	f := newTestFont(t)

	tests := []struct {
		name     string
		text     string
		pos      image.Point
		baseline Baseline
		wantBox  image.Rectangle
		wantNext image.Point
	}{
		{"empty", "", image.Pt(3, 7), BaselineTop, image.Rect(3, 7, 3, 7), image.Pt(3, 7)},
		{"negative left bearing", "j", image.Pt(4, 6), BaselineTop, image.Rect(2, 6, 4, 10), image.Pt(4, 6)},
		{"kerned", "o,", image.Pt(0, 0), BaselineTop, image.Rect(0, 0, 4, 4), image.Pt(4, 0)},
		{"ligature", "ooo", image.Pt(0, 0), BaselineTop, image.Rect(0, 0, 9, 4), image.Pt(9, 0)},
		{"bottom baseline", "o", image.Pt(0, 10), BaselineBottom, image.Rect(0, 7, 3, 11), image.Pt(3, 10)},
		{"alphabetic baseline", "o", image.Pt(1, 10), BaselineAlphabetic, image.Rect(1, 7, 4, 11), image.Pt(4, 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := f.Measure(tt.text, tt.pos, tt.baseline)
			if m.BoundingBox != tt.wantBox {
				t.Errorf("BoundingBox = %v, want %v", m.BoundingBox, tt.wantBox)
			}
			if m.NextPosition != tt.wantNext {
				t.Errorf("NextPosition = %v, want %v", m.NextPosition, tt.wantNext)
			}
		})
	}
}

// --- Draw Tests ---

type subregionCall struct {
	src image.Rectangle
	dst image.Point
	c   color.Color
}

type fillCall struct {
	r image.Rectangle
	c color.Color
}

// recordingTarget records draw calls without rendering.
type recordingTarget struct {
	subregions []subregionCall
	fills      []fillCall
}

func (r *recordingTarget) DrawSubregion(_ *Atlas, src image.Rectangle, dst image.Point, c color.Color) {
	r.subregions = append(r.subregions, subregionCall{src, dst, c})
}

func (r *recordingTarget) FillRect(rect image.Rectangle, c color.Color) {
	r.fills = append(r.fills, fillCall{rect, c})
}

func TestFont_Draw(t *testing.T) {
	f := newTestFont(t)
	target := &recordingTarget{}
	red := color.RGBA{R: 0xFF, A: 0xFF}

	next := f.Draw(target, "jo", image.Pt(4, 6), TextStyle{Color: red, Background: color.White})

	if next != image.Pt(9, 6) {
		t.Errorf("Draw() = %v, want (9,6)", next)
	}
	if len(target.fills) != 1 || target.fills[0].r != image.Rect(2, 6, 9, 10) {
		t.Errorf("fills = %v, want one fill of (2,6)-(9,10)", target.fills)
	}
	want := []subregionCall{
		{image.Rect(9, 0, 11, 4), image.Pt(2, 6), red},
		{image.Rect(12, 0, 15, 4), image.Pt(6, 6), red},
	}
	if !slices.Equal(target.subregions, want) {
		t.Errorf("subregions = %v, want %v", target.subregions, want)
	}
}

func TestFont_DrawDefaults(t *testing.T) {
	f := newTestFont(t)
	target := &recordingTarget{}

	f.Draw(target, "o", image.Pt(0, 0), TextStyle{})

	if len(target.fills) != 0 {
		t.Errorf("fills = %v, want none without background", target.fills)
	}
	if len(target.subregions) != 1 || target.subregions[0].c != color.Black {
		t.Errorf("subregions = %v, want one black draw", target.subregions)
	}
}

func TestFont_DrawMatchesMeasure(t *testing.T) {
	f := newTestFont(t)
	for _, text := range []string{"", "j", "jo, oo", "x?o"} {
		pos := image.Pt(5, 5)
		next := f.Draw(&recordingTarget{}, text, pos, TextStyle{})
		if m := f.Measure(text, pos, BaselineTop); m.NextPosition != next {
			t.Errorf("%q: Draw() = %v, Measure().NextPosition = %v", text, next, m.NextPosition)
		}
	}
}

// --- ImageTarget Tests ---

func TestImageTarget_Draw(t *testing.T) {
	f := newTestFont(t)
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	target := NewImageTarget(img)
	target.FillRect(img.Bounds(), color.White)

	f.Draw(target, "j", image.Pt(4, 6), TextStyle{Color: color.Black})

	black := color.RGBA{A: 0xFF}
	white := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{3, 6, black}, // atlas (10,0)
		{2, 6, white}, // atlas (9,0)
		{3, 8, black}, // atlas (10,2)
		{2, 9, black}, // atlas (9,3)
		{3, 9, white},
	}
	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestImageTarget_Clips(t *testing.T) {
	f := newTestFont(t)
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))

	// Partly outside the image; must not panic.
	f.Draw(NewImageTarget(img), "jo", image.Pt(-1, -2), TextStyle{Background: color.White})
}
