package pixfont

import (
	"image"
	"image/color"
)

// AtlasWidth is the fixed width of every font atlas in pixels.
const AtlasWidth = 128

// AtlasStride is the number of bytes per atlas row.
const AtlasStride = (AtlasWidth + 7) / 8

// Atlas is the 1-bit-per-pixel glyph bitmap of a font.
// Rows are AtlasStride bytes long, most significant bit first; a set bit is ink.
//
// Atlas implements image.Image with an alpha color model so it can be used
// directly as a drawing mask: ink is opaque, background is transparent.
type Atlas struct {
	Pix    []byte
	Height int
}

// NewAtlas allocates an empty atlas of the given height.
func NewAtlas(height int) *Atlas {
	return &Atlas{
		Pix:    make([]byte, AtlasStride*height),
		Height: height,
	}
}

// Ink reports whether the pixel at (x, y) is set.
// Pixels outside the atlas are never set.
func (a *Atlas) Ink(x, y int) bool {
	if x < 0 || x >= AtlasWidth || y < 0 || y >= a.Height {
		return false
	}
	return a.Pix[y*AtlasStride+x/8]&(0x80>>(x%8)) != 0
}

// SetInk sets the pixel at (x, y). Out of range coordinates are ignored.
func (a *Atlas) SetInk(x, y int) {
	if x < 0 || x >= AtlasWidth || y < 0 || y >= a.Height {
		return
	}
	a.Pix[y*AtlasStride+x/8] |= 0x80 >> (x % 8)
}

// ColorModel implements image.Image.
func (a *Atlas) ColorModel() color.Model { return color.AlphaModel }

// Bounds implements image.Image.
func (a *Atlas) Bounds() image.Rectangle { return image.Rect(0, 0, AtlasWidth, a.Height) }

// At implements image.Image.
func (a *Atlas) At(x, y int) color.Color {
	if a.Ink(x, y) {
		return color.Alpha{A: 0xFF}
	}
	return color.Alpha{}
}

// Preview renders the atlas as a grayscale image, black ink on white,
// the way glyph sources are drawn.
func (a *Atlas) Preview() *image.Gray {
	img := image.NewGray(a.Bounds())
	for y := 0; y < a.Height; y++ {
		for x := 0; x < AtlasWidth; x++ {
			if a.Ink(x, y) {
				continue
			}
			img.Pix[y*img.Stride+x] = 0xFF
		}
	}
	return img
}
