package pixfont

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// assetMagic starts every serialized font asset.
var assetMagic = [4]byte{'P', 'X', 'F', '1'}

// MarshalBinary encodes the font asset. All integers are little-endian;
// variable-length sections are prefixed with a u32 length or count:
//
//	magic "PXF1"
//	line_height:u32 baseline:u32
//	atlas_height:u32 atlas[AtlasStride*atlas_height]
//	len:u32 glyph records
//	len:u32 codepoint index (UTF-8)  substitute:u32
//	len:u32 ligature list (UTF-8)    ligature_offset:u32
//	default bearings: left:i32 right:i32
//	count:u32 kerning pairs     (left:u8 right:u8 delta:i32)
//	count:u32 kerning overrides (left:u32 right:u32 delta:i32)
//	count:u32 side bearings     (glyph:u32 left:i32 right:i32)
func (f *Font) MarshalBinary() ([]byte, error) {
	d := f.Data()
	var buf bytes.Buffer
	buf.Write(assetMagic[:])
	w := func(v any) {
		// Writes to a bytes.Buffer cannot fail.
		_ = binary.Write(&buf, binary.LittleEndian, v)
	}
	w(uint32(d.LineHeight))
	w(uint32(d.Baseline))
	w(uint32(d.AtlasHeight))
	buf.Write(d.Atlas)
	w(uint32(len(d.Glyphs)))
	buf.Write(d.Glyphs)
	w(uint32(len(d.Codepoints)))
	buf.WriteString(d.Codepoints)
	w(uint32(d.SubstituteIndex))
	w(uint32(len(d.Ligatures)))
	buf.WriteString(d.Ligatures)
	w(uint32(d.LigatureOffset))
	w(d.DefaultBearings)
	w(uint32(len(d.KerningPairs)))
	w(d.KerningPairs)
	w(uint32(len(d.KerningOverrides)))
	w(d.KerningOverrides)
	w(uint32(len(d.SideBearings)))
	w(d.SideBearings)
	return buf.Bytes(), nil
}

// ParseFont decodes an asset written by MarshalBinary and validates it.
func ParseFont(data []byte) (*Font, error) {
	p := assetReader{r: bytes.NewReader(data)}

	var magic [4]byte
	p.read("header", &magic)
	if p.err == nil && magic != assetMagic {
		return nil, malformed("header", fmt.Sprintf("bad magic %q", magic[:]))
	}

	var d FontData
	d.LineHeight = int(p.u32("metrics"))
	d.Baseline = int(p.u32("metrics"))
	d.AtlasHeight = int(p.u32("atlas"))
	d.Atlas = p.bytes("atlas", d.AtlasHeight*AtlasStride)
	d.Glyphs = p.bytes("glyphs", int(p.u32("glyphs")))
	d.Codepoints = string(p.bytes("codepoints", int(p.u32("codepoints"))))
	d.SubstituteIndex = int(p.u32("codepoints"))
	d.Ligatures = string(p.bytes("ligatures", int(p.u32("ligatures"))))
	d.LigatureOffset = int(p.u32("ligatures"))
	p.read("bearings", &d.DefaultBearings)

	if n := p.count("kerning", binary.Size(KerningPair{})); n > 0 {
		d.KerningPairs = make([]KerningPair, n)
		p.read("kerning", d.KerningPairs)
	}
	if n := p.count("kerning", binary.Size(KerningOverride{})); n > 0 {
		d.KerningOverrides = make([]KerningOverride, n)
		p.read("kerning", d.KerningOverrides)
	}
	if n := p.count("bearings", binary.Size(SideBearing{})); n > 0 {
		d.SideBearings = make([]SideBearing, n)
		p.read("bearings", d.SideBearings)
	}
	if p.err != nil {
		return nil, p.err
	}
	if p.r.Len() != 0 {
		return nil, malformed("trailer", fmt.Sprintf("%d unexpected bytes", p.r.Len()))
	}
	return NewFont(d)
}

// UnmarshalBinary is ParseFont into an existing Font value.
func (f *Font) UnmarshalBinary(data []byte) error {
	parsed, err := ParseFont(data)
	if err != nil {
		return err
	}
	*f = *parsed
	return nil
}

// assetReader reads sections sequentially and keeps the first error.
type assetReader struct {
	r   *bytes.Reader
	err error
}

func (p *assetReader) read(section string, v any) {
	if p.err != nil {
		return
	}
	if err := binary.Read(p.r, binary.LittleEndian, v); err != nil {
		p.fail(section, err)
	}
}

func (p *assetReader) u32(section string) uint32 {
	var v uint32
	p.read(section, &v)
	return v
}

func (p *assetReader) bytes(section string, n int) []byte {
	if p.err != nil {
		return nil
	}
	if n < 0 || n > p.r.Len() {
		p.err = malformed(section, fmt.Sprintf("length %d exceeds remaining %d bytes", n, p.r.Len()))
		return nil
	}
	b := make([]byte, n)
	_, _ = io.ReadFull(p.r, b)
	return b
}

// count reads an element count and checks it against the remaining input.
func (p *assetReader) count(section string, elemSize int) int {
	n := int(p.u32(section))
	if p.err != nil {
		return 0
	}
	if n*elemSize > p.r.Len() {
		p.err = malformed(section, fmt.Sprintf("%d entries exceed remaining %d bytes", n, p.r.Len()))
		return 0
	}
	return n
}

func (p *assetReader) fail(section string, err error) {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		p.err = malformed(section, "truncated")
		return
	}
	p.err = fmt.Errorf("pixfont: reading %s: %w", section, err)
}
