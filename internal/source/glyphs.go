package source

import (
	"fmt"
	"image"
	_ "image/png" // glyph sources
	"os"
	"path/filepath"
	"slices"
	"strings"

	_ "golang.org/x/image/bmp" // glyph sources

	"github.com/gogpu/pixfont/build"
)

// glyphExtensions are the file types accepted as glyph sources.
var glyphExtensions = []string{".png", ".bmp"}

// ListGlyphFiles returns the glyph image files of dir in name order.
// Files with other extensions are skipped.
func ListGlyphFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !slices.Contains(glyphExtensions, strings.ToLower(filepath.Ext(e.Name()))) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	return files, nil
}

// LoadGlyph decodes one glyph file. The file stem names the identity as
// hexadecimal scalar values joined by underscores, e.g. 66_66_69.png.
func LoadGlyph(path string) (build.SourceGlyph, error) {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	id, err := build.ParseIdentityName(stem)
	if err != nil {
		return build.SourceGlyph{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return build.SourceGlyph{}, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return build.SourceGlyph{}, fmt.Errorf("source: decoding %s: %w", path, err)
	}
	return build.SourceGlyph{Identity: id, Image: img}, nil
}
