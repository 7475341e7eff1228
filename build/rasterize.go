package build

import (
	"context"
	"image"
	"image/color"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/pixfont"
)

// inkMask is the 1-bit rasterization of one source glyph.
type inkMask struct {
	width, height int
	ink           []bool
}

// isInk reports whether a source pixel is ink: opaque enough to be seen
// and pure black in luma.
func isInk(c color.Color) bool {
	if _, _, _, a := c.RGBA(); a == 0 {
		return false
	}
	return color.GrayModel.Convert(c).(color.Gray).Y == 0
}

// rasterizeGlyph converts one source bitmap into an ink mask.
func rasterizeGlyph(img image.Image) inkMask {
	b := img.Bounds()
	m := inkMask{width: b.Dx(), height: b.Dy(), ink: make([]bool, b.Dx()*b.Dy())}
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			m.ink[y*m.width+x] = isInk(img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return m
}

// rasterize converts all glyphs into ink masks. Glyphs are independent, so
// they are split into one contiguous chunk per worker.
func rasterize(ctx context.Context, glyphs []SourceGlyph, workers int) ([]inkMask, error) {
	masks := make([]inkMask, len(glyphs))
	if workers < 1 {
		workers = 1
	}
	chunk := (len(glyphs) + workers - 1) / workers
	if chunk == 0 {
		return masks, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	for start := 0; start < len(glyphs); start += chunk {
		end := min(start+chunk, len(glyphs))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				masks[i] = rasterizeGlyph(glyphs[i].Image)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return masks, nil
}

// blit copies a mask into the atlas with its top-left corner at at.
// Blitting is sequential: neighbouring glyphs may share atlas bytes.
func blit(atlas *pixfont.Atlas, m inkMask, at image.Point) {
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.ink[y*m.width+x] {
				atlas.SetInk(at.X+x, at.Y+y)
			}
		}
	}
}
