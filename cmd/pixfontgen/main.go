// Command pixfontgen compiles a directory of glyph bitmaps and a YAML
// description into a pixel font.
//
//	pixfontgen -font-dir glyphs -description font.yaml -output font.png
//
// The output PNG previews the atlas and embeds the font asset. -asset also
// writes the bare asset for embedding with go:embed.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/schollz/progressbar/v3"

	"github.com/gogpu/pixfont"
	"github.com/gogpu/pixfont/build"
	"github.com/gogpu/pixfont/internal/pngfont"
	"github.com/gogpu/pixfont/internal/source"
)

func main() {
	var (
		fontDir     = flag.String("font-dir", "glyphs", "directory of glyph images named by hex codepoints")
		description = flag.String("description", "font.yaml", "font description file")
		output      = flag.String("output", "font.png", "output PNG with embedded font")
		asset       = flag.String("asset", "", "optional raw asset output file")
		charset     = flag.String("charset", "all", "glyphs to include: all or ascii")
		scale       = flag.Int("scale", 1, "preview magnification")
		workers     = flag.Int("workers", 0, "rasterization goroutines (0 = GOMAXPROCS)")
		verbose     = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	pixfont.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cs, ok := build.ParseCharset(*charset)
	if !ok {
		log.Fatalf("Unknown charset %q", *charset)
	}

	desc, err := source.LoadDescription(*description)
	if err != nil {
		log.Fatalf("Failed to load description: %v", err)
	}

	files, err := source.ListGlyphFiles(*fontDir)
	if err != nil {
		log.Fatalf("Failed to list glyphs: %v", err)
	}
	bar := progressbar.Default(int64(len(files)))
	bar.Describe("loading glyphs")
	glyphs := make([]build.SourceGlyph, 0, len(files))
	for _, path := range files {
		g, err := source.LoadGlyph(path)
		if err != nil {
			log.Fatalf("Failed to load glyph: %v", err)
		}
		glyphs = append(glyphs, g)
		bar.Add(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := build.Build(ctx, desc, glyphs, build.WithCharset(cs), build.WithWorkers(*workers))
	if err != nil {
		log.Fatalf("Build failed: %v", err)
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create output: %v", err)
	}
	if err := pngfont.WriteFont(f, res.Font, *scale); err != nil {
		f.Close()
		log.Fatalf("Failed to write font: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to write font: %v", err)
	}

	if *asset != "" {
		data, err := res.Font.MarshalBinary()
		if err != nil {
			log.Fatalf("Failed to encode asset: %v", err)
		}
		if err := os.WriteFile(*asset, data, 0o644); err != nil {
			log.Fatalf("Failed to write asset: %v", err)
		}
	}

	log.Printf("Font saved to %s (%d glyphs, atlas 128x%d, %.0f%% used)\n",
		*output, res.Font.NumGlyphs(), res.Font.Atlas().Height, res.Utilization*100)
}
