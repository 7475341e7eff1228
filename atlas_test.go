package pixfont

import (
	"image/color"
	"testing"
)

// --- Atlas Tests ---

func TestAtlas_BitOrder(t *testing.T) {
	a := NewAtlas(2)
	if len(a.Pix) != 2*AtlasStride {
		t.Fatalf("len(Pix) = %d, want %d", len(a.Pix), 2*AtlasStride)
	}

	a.SetInk(0, 0)
	a.SetInk(9, 1)
	a.SetInk(127, 1)

	if a.Pix[0] != 0x80 {
		t.Errorf("Pix[0] = %#x, want 0x80", a.Pix[0])
	}
	if a.Pix[AtlasStride+1] != 0x40 {
		t.Errorf("Pix[17] = %#x, want 0x40", a.Pix[AtlasStride+1])
	}
	if a.Pix[2*AtlasStride-1] != 0x01 {
		t.Errorf("Pix[31] = %#x, want 0x01", a.Pix[2*AtlasStride-1])
	}
	if !a.Ink(9, 1) || a.Ink(8, 1) {
		t.Error("Ink() does not match SetInk()")
	}
}

func TestAtlas_OutOfRange(t *testing.T) {
	a := NewAtlas(1)
	a.SetInk(-1, 0)
	a.SetInk(128, 0)
	a.SetInk(0, 1)
	for i, b := range a.Pix {
		if b != 0 {
			t.Errorf("Pix[%d] = %#x, want 0", i, b)
		}
	}
	if a.Ink(200, 0) {
		t.Error("Ink() outside atlas = true")
	}
}

func TestAtlas_Image(t *testing.T) {
	a := NewAtlas(3)
	a.SetInk(1, 2)

	if b := a.Bounds(); b.Dx() != 128 || b.Dy() != 3 {
		t.Errorf("Bounds() = %v, want 128x3", b)
	}
	if c := a.At(1, 2); c != (color.Alpha{A: 0xFF}) {
		t.Errorf("At(1,2) = %v, want opaque", c)
	}
	if c := a.At(0, 0); c != (color.Alpha{}) {
		t.Errorf("At(0,0) = %v, want transparent", c)
	}

	p := a.Preview()
	if p.GrayAt(1, 2).Y != 0 || p.GrayAt(0, 0).Y != 0xFF {
		t.Errorf("Preview() = ink %d, background %d, want 0, 255", p.GrayAt(1, 2).Y, p.GrayAt(0, 0).Y)
	}
}

// --- GlyphRecord Tests ---

func TestPackDimensions(t *testing.T) {
	b := PackDimensions(3, 11)
	if b != 0xB3 {
		t.Errorf("PackDimensions(3, 11) = %#x, want 0xb3", b)
	}
	if w, h := UnpackDimensions(b); w != 3 || h != 11 {
		t.Errorf("UnpackDimensions(%#x) = %d, %d, want 3, 11", b, w, h)
	}
	if w, h := UnpackDimensions(PackDimensions(15, 15)); w != 15 || h != 15 {
		t.Errorf("UnpackDimensions(max) = %d, %d, want 15, 15", w, h)
	}
}

func TestPackDimensions_PanicsAboveMax(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("PackDimensions(16, 1) did not panic")
		}
	}()
	PackDimensions(16, 1)
}

func TestGlyphRecord_Encoding(t *testing.T) {
	r := GlyphRecord{Left: 58, Top: 24, Width: 3, Height: 11, LeftClass: 4, RightClass: 7}
	b := r.AppendTo(nil)
	want := []byte{58, 24, 0xB3, 4, 7}
	if string(b) != string(want) {
		t.Errorf("AppendTo() = %v, want %v", b, want)
	}
	if got := decodeRecord(b, 0); got != r {
		t.Errorf("decodeRecord() = %+v, want %+v", got, r)
	}
	if a := r.Area(); a.Min.X != 58 || a.Min.Y != 24 || a.Dx() != 3 || a.Dy() != 11 {
		t.Errorf("Area() = %v", a)
	}
}
