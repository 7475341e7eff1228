package pixfont

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// Target is a pixel surface text is drawn onto.
type Target interface {
	// DrawSubregion paints the ink pixels of the src rectangle of atlas
	// with color c, placing src.Min at dst. Background pixels of the
	// rectangle are left untouched.
	DrawSubregion(atlas *Atlas, src image.Rectangle, dst image.Point, c color.Color)

	// FillRect paints every pixel of r with color c.
	FillRect(r image.Rectangle, c color.Color)
}

// ImageTarget draws onto a draw.Image, clipping to its bounds.
type ImageTarget struct {
	Dst draw.Image
}

// NewImageTarget returns a target drawing onto dst.
func NewImageTarget(dst draw.Image) *ImageTarget {
	return &ImageTarget{Dst: dst}
}

// DrawSubregion implements Target. The atlas is used as an alpha mask over
// a uniform source, so only ink pixels are painted.
func (t *ImageTarget) DrawSubregion(atlas *Atlas, src image.Rectangle, dst image.Point, c color.Color) {
	r := image.Rectangle{Min: dst, Max: dst.Add(src.Size())}
	xdraw.DrawMask(t.Dst, r, image.NewUniform(c), image.Point{}, atlas, src.Min, xdraw.Over)
}

// FillRect implements Target.
func (t *ImageTarget) FillRect(r image.Rectangle, c color.Color) {
	xdraw.Draw(t.Dst, r, image.NewUniform(c), image.Point{}, xdraw.Src)
}

var _ Target = (*ImageTarget)(nil)
