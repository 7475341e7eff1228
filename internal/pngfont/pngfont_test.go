package pngfont

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"testing"

	"github.com/gogpu/pixfont"
	"github.com/gogpu/pixfont/build"
)

func testFont(t *testing.T) *pixfont.Font {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, 2, 3))
	img.Pix = []byte{0, 0xFF, 0xFF, 0, 0, 0}
	res, err := build.Build(context.Background(),
		build.Description{LineHeight: 3, SpaceWidth: 2, Baseline: 2},
		[]build.SourceGlyph{{Identity: "?", Image: img}, {Identity: "ab", Image: img}})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return res.Font
}

// --- PNG Container Tests ---

func TestWriteFont_RoundTrip(t *testing.T) {
	f := testFont(t)

	var buf bytes.Buffer
	if err := WriteFont(&buf, f, 1); err != nil {
		t.Fatalf("WriteFont() error = %v", err)
	}

	got, err := ReadFont(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("ReadFont() error = %v", err)
	}
	if got.NumGlyphs() != f.NumGlyphs() {
		t.Errorf("NumGlyphs() = %d, want %d", got.NumGlyphs(), f.NumGlyphs())
	}
	if !bytes.Equal(got.Atlas().Pix, f.Atlas().Pix) {
		t.Error("atlas differs after round trip")
	}
	want, _ := f.MarshalBinary()
	have, _ := got.MarshalBinary()
	if !bytes.Equal(have, want) {
		t.Error("asset differs after round trip")
	}
}

func TestWriteFont_IsValidPNG(t *testing.T) {
	f := testFont(t)
	var buf bytes.Buffer
	if err := WriteFont(&buf, f, 3); err != nil {
		t.Fatalf("WriteFont() error = %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 3*pixfont.AtlasWidth || b.Dy() != 3*f.Atlas().Height {
		t.Errorf("preview = %dx%d, want %dx%d", b.Dx(), b.Dy(), 3*pixfont.AtlasWidth, 3*f.Atlas().Height)
	}
}

// failWriter accepts n bytes and then fails every write.
type failWriter struct{ n int }

var errDiskFull = errors.New("disk full")

func (w *failWriter) Write(p []byte) (int, error) {
	if len(p) > w.n {
		k := w.n
		w.n = 0
		return k, errDiskFull
	}
	w.n -= len(p)
	return len(p), nil
}

func TestWriteFont_WriterError(t *testing.T) {
	f := testFont(t)
	for _, n := range []int{0, 16, 64} {
		if err := WriteFont(&failWriter{n: n}, f, 4); err == nil {
			t.Errorf("WriteFont() after %d bytes succeeded, want error", n)
		}
	}
}

func TestDecode_NoAsset(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewGray(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatal(err)
	}
	if _, err := Decode(&buf); !errors.Is(err, ErrNoAsset) {
		t.Errorf("Decode() error = %v, want ErrNoAsset", err)
	}
}

func TestDecode_NotPNG(t *testing.T) {
	if _, err := Decode(bytes.NewReader([]byte("PXF1"))); err == nil {
		t.Error("Decode() of non-PNG data succeeded")
	}
}

func TestPreview_Scale(t *testing.T) {
	a := pixfont.NewAtlas(2)
	a.SetInk(1, 1)

	img := Preview(a, 2)
	gray, ok := img.(*image.Gray)
	if !ok {
		t.Fatalf("Preview() type %T, want *image.Gray", img)
	}
	for _, pt := range []image.Point{{2, 2}, {3, 2}, {2, 3}, {3, 3}} {
		if y := gray.GrayAt(pt.X, pt.Y).Y; y != 0 {
			t.Errorf("pixel %v = %d, want ink", pt, y)
		}
	}
	if y := gray.GrayAt(1, 1).Y; y != 0xFF {
		t.Errorf("pixel (1,1) = %d, want background", y)
	}
	if Preview(a, 1).Bounds().Dx() != pixfont.AtlasWidth {
		t.Error("Preview(1) changed size")
	}
}
