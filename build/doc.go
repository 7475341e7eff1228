// Package build turns a directory's worth of glyph bitmaps and a font
// description into a pixfont.Font.
//
// A build runs in fixed steps:
//
//  1. Sources outside the selected Charset are dropped, a blank space glyph
//     is synthesized and identities are ordered with Compare. Duplicates
//     fail with ErrDuplicateIdentity, uncovered required characters with
//     ErrMissingGlyph.
//  2. Glyphs are shelf-packed into the 128 pixel wide atlas in that order,
//     one shelf per line height with one pixel of padding.
//  3. Bitmaps are rasterized to ink masks in parallel and blitted into the
//     atlas.
//  4. The codepoint index, ligature list, kerning and side bearing tables
//     are encoded and the result is validated by pixfont.NewFont.
//
// # Usage
//
//	res, err := build.Build(ctx, desc, glyphs, build.WithCharset(build.CharsetASCII))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	asset, _ := res.Font.MarshalBinary()
package build
