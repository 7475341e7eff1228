// Package pngfont stores a compiled font inside a PNG file. The image is a
// preview of the atlas and the binary asset travels in a private chunk, so
// the same file can be opened in an image viewer and loaded at run time.
package pngfont

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/nbarena/pngchunks"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/pixfont"
)

// ChunkType is the private, ancillary PNG chunk holding the font asset.
const ChunkType = "pxFt"

// ErrNoAsset is returned by Decode when the PNG carries no font chunk.
var ErrNoAsset = errors.New("pngfont: no font chunk")

// Preview renders the atlas as black ink on white, magnified by scale.
func Preview(atlas *pixfont.Atlas, scale int) image.Image {
	src := atlas.Preview()
	if scale <= 1 {
		return src
	}
	b := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}

// Encode writes img as a PNG with asset stored before the first IDAT chunk.
func Encode(w io.Writer, img image.Image, asset []byte) error {
	pipeR, pipeW := io.Pipe()
	defer pipeR.Close()

	var g errgroup.Group
	g.Go(func() error {
		err := png.Encode(pipeW, img)
		pipeW.CloseWithError(err)
		return err
	})

	if err := copyWithAsset(w, pipeR, asset); err != nil {
		pipeR.CloseWithError(err)
		_ = g.Wait()
		return err
	}
	return g.Wait()
}

func copyWithAsset(w io.Writer, r io.Reader, asset []byte) error {
	pngr, err := pngchunks.NewReader(r)
	if err != nil {
		return err
	}
	pngw, err := pngchunks.NewWriter(w)
	if err != nil {
		return err
	}

	var written bool
	for {
		chunk, err := pngr.NextChunk()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}

		if chunk.Type() == "IDAT" && !written {
			if err := pngw.WriteChunk(int32(len(asset)), ChunkType, bytes.NewReader(asset)); err != nil {
				return err
			}
			written = true
		}

		if err := pngw.WriteChunk(chunk.Length(), chunk.Type(), chunk); err != nil {
			return err
		}
		if err := chunk.Close(); err != nil {
			return err
		}
	}
	if !written {
		return errors.New("pngfont: encoder produced no image data")
	}
	return nil
}

// Decode returns the font asset stored in a PNG stream.
func Decode(r io.Reader) ([]byte, error) {
	pngr, err := pngchunks.NewReader(r)
	if err != nil {
		return nil, err
	}
	for {
		chunk, err := pngr.NextChunk()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, ErrNoAsset
			}
			return nil, err
		}
		if chunk.Type() == ChunkType {
			asset, err := io.ReadAll(chunk)
			if err != nil {
				return nil, fmt.Errorf("pngfont: reading %s chunk: %w", ChunkType, err)
			}
			return asset, chunk.Close()
		}
		if err := chunk.Close(); err != nil {
			return nil, err
		}
	}
}

// WriteFont writes f as a PNG preview at the given scale with the asset embedded.
func WriteFont(w io.Writer, f *pixfont.Font, scale int) error {
	asset, err := f.MarshalBinary()
	if err != nil {
		return err
	}
	return Encode(w, Preview(f.Atlas(), scale), asset)
}

// ReadFont loads a font previously written by WriteFont.
func ReadFont(r io.Reader) (*pixfont.Font, error) {
	asset, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return pixfont.ParseFont(asset)
}
