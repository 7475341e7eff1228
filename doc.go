// Package pixfont renders proportional pixel fonts on small 1-bit displays.
//
// A Font is an immutable asset: one 128 pixel wide 1bpp atlas holding every
// glyph bitmap, a 5-byte record per glyph, and a few compact tables. The
// tables are built offline by the build package and are small enough to be
// embedded as constants.
//
// # Tables
//
//   - CodepointIndex: characters to glyph indices, stored as single scalar
//     tokens and (start, end) runs.
//   - Ligatures: multi-character glyphs such as "ffi", matched greedily in
//     encoded order, longest first.
//   - Kerning: adjustments between kerning classes, plus per glyph pair
//     overrides which take precedence.
//   - SideBearings: per glyph left and right bearings over a default pair.
//
// # Drawing
//
// Text is resolved into glyphs left to right: a ligature matching the
// remaining text wins, otherwise the next character is looked up on its
// own, and characters the font does not cover render as the substitute
// glyph. Between glyphs the pen advances by Font.Spacing.
//
//	font, err := pixfont.ParseFont(asset)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	target := pixfont.NewImageTarget(img)
//	next := font.Draw(target, "Hello", image.Pt(4, 6), pixfont.TextStyle{
//	    Color:    color.White,
//	    Baseline: pixfont.BaselineAlphabetic,
//	})
//
// Drawing goes through the Target interface, which only needs to fill
// rectangles and paint atlas subregions; ImageTarget adapts any draw.Image.
//
// # Logging
//
// pixfont is silent by default. Use SetLogger to receive build diagnostics.
package pixfont
