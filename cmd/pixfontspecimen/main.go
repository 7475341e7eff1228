// Command pixfontspecimen renders sample text with a compiled pixel font.
//
//	pixfontspecimen -font font.png -text "The quick brown fox" -output specimen.png
package main

import (
	"flag"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"strings"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/pixfont"
	"github.com/gogpu/pixfont/internal/pngfont"
)

var baselines = map[string]pixfont.Baseline{
	"top":        pixfont.BaselineTop,
	"bottom":     pixfont.BaselineBottom,
	"middle":     pixfont.BaselineMiddle,
	"alphabetic": pixfont.BaselineAlphabetic,
}

func main() {
	var (
		fontPath = flag.String("font", "font.png", "font PNG written by pixfontgen")
		text     = flag.String("text", "The quick brown fox jumps over the lazy dog.", "sample text; \\n separates lines")
		output   = flag.String("output", "specimen.png", "output file")
		baseline = flag.String("baseline", "top", "baseline: top, bottom, middle or alphabetic")
		scale    = flag.Int("scale", 4, "magnification")
		margin   = flag.Int("margin", 2, "margin in font pixels")
	)
	flag.Parse()

	bl, ok := baselines[*baseline]
	if !ok {
		log.Fatalf("Unknown baseline %q", *baseline)
	}

	in, err := os.Open(*fontPath)
	if err != nil {
		log.Fatalf("Failed to open font: %v", err)
	}
	font, err := pngfont.ReadFont(in)
	in.Close()
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}

	lines := strings.Split(strings.ReplaceAll(*text, `\n`, "\n"), "\n")
	lh := font.LineHeight()
	origin := image.Pt(*margin, *margin+font.BaselineOffset(bl))

	// Measure first so the canvas fits the text.
	bounds := image.Rect(0, 0, 1, 1)
	for i, line := range lines {
		m := font.Measure(line, origin.Add(image.Pt(0, i*lh)), bl)
		bounds = bounds.Union(m.BoundingBox)
	}
	bounds.Min = image.Point{}
	bounds.Max = bounds.Max.Add(image.Pt(*margin, *margin))

	canvas := image.NewRGBA(bounds)
	xdraw.Draw(canvas, bounds, image.White, image.Point{}, xdraw.Src)
	target := pixfont.NewImageTarget(canvas)
	style := pixfont.TextStyle{Color: color.Black, Baseline: bl}
	for i, line := range lines {
		font.Draw(target, line, origin.Add(image.Pt(0, i*lh)), style)
	}

	var out image.Image = canvas
	if *scale > 1 {
		scaled := image.NewRGBA(image.Rect(0, 0, bounds.Dx()**scale, bounds.Dy()**scale))
		xdraw.NearestNeighbor.Scale(scaled, scaled.Bounds(), canvas, bounds, xdraw.Src, nil)
		out = scaled
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create output: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, out); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Specimen saved to %s (%dx%d)\n", *output, out.Bounds().Dx(), out.Bounds().Dy())
}
