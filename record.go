package pixfont

import (
	"fmt"
	"image"
)

// GlyphRecordSize is the encoded size of one glyph record in bytes.
const GlyphRecordSize = 5

// MaxGlyphDimension is the largest width or height a glyph can have.
// Both dimensions share one byte, a nibble each.
const MaxGlyphDimension = 15

// Byte offsets inside a glyph record.
const (
	recordLeft = iota
	recordTop
	recordDimensions
	recordLeftClass
	recordRightClass
)

// GlyphIndex is the position of a glyph in a font's canonical glyph order.
// Indices at or above the font's ligature offset denote ligatures.
type GlyphIndex int

// NoGlyph is passed as the previous glyph to Font.Spacing at the start of a text.
const NoGlyph GlyphIndex = -1

// GlyphRecord is the decoded form of a 5-byte glyph record:
//
//	left:u8, top:u8, dims:u8 (height<<4 | width), left class:u8, right class:u8
type GlyphRecord struct {
	Left, Top             uint8
	Width, Height         uint8
	LeftClass, RightClass uint8
}

// Area returns the glyph rectangle in atlas coordinates.
func (r GlyphRecord) Area() image.Rectangle {
	return image.Rect(int(r.Left), int(r.Top), int(r.Left)+int(r.Width), int(r.Top)+int(r.Height))
}

// AppendTo appends the encoded record to b.
// Width and height must not exceed MaxGlyphDimension; callers validate
// source glyphs before encoding, so a violation here is a programming error.
func (r GlyphRecord) AppendTo(b []byte) []byte {
	return append(b, r.Left, r.Top, PackDimensions(int(r.Width), int(r.Height)), r.LeftClass, r.RightClass)
}

// PackDimensions packs width and height into one byte,
// height in the high nibble and width in the low nibble.
func PackDimensions(width, height int) byte {
	if width < 0 || width > MaxGlyphDimension || height < 0 || height > MaxGlyphDimension {
		panic(fmt.Sprintf("pixfont: glyph dimensions %dx%d exceed %d", width, height, MaxGlyphDimension))
	}
	return byte(height)<<4 | byte(width)
}

// UnpackDimensions is the inverse of PackDimensions.
func UnpackDimensions(b byte) (width, height int) {
	return int(b & 0x0F), int(b >> 4)
}

// decodeRecord reads the record of glyph i from a record table.
func decodeRecord(records []byte, i int) GlyphRecord {
	rec := records[i*GlyphRecordSize : (i+1)*GlyphRecordSize]
	w, h := UnpackDimensions(rec[recordDimensions])
	return GlyphRecord{
		Left:       rec[recordLeft],
		Top:        rec[recordTop],
		Width:      uint8(w),
		Height:     uint8(h),
		LeftClass:  rec[recordLeftClass],
		RightClass: rec[recordRightClass],
	}
}
