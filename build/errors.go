package build

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/runenames"
)

// Sentinel errors for build package.
var (
	// ErrGlyphTooLarge is returned when a source bitmap does not fit a glyph record.
	ErrGlyphTooLarge = errors.New("build: glyph too large")

	// ErrDuplicateIdentity is returned when two sources share one identity.
	ErrDuplicateIdentity = errors.New("build: duplicate glyph identity")

	// ErrMissingGlyph is returned when a charset requires a glyph that has no source.
	ErrMissingGlyph = errors.New("build: missing glyph")

	// ErrUnresolvedKerningIdentity is returned when a kerning override names a glyph that is not in the font.
	ErrUnresolvedKerningIdentity = errors.New("build: kerning override references unknown glyph")

	// ErrAtlasOverflow is returned when a glyph row starts below the last addressable atlas row.
	ErrAtlasOverflow = errors.New("build: atlas exceeds 256 rows")

	// ErrInvalidIdentity is returned for empty, malformed or NUL-containing identities.
	ErrInvalidIdentity = errors.New("build: invalid glyph identity")

	// ErrInvalidDescription is returned when the font description has unusable metrics.
	ErrInvalidDescription = errors.New("build: invalid font description")
)

// GlyphTooLargeError reports a source bitmap exceeding the packable size.
type GlyphTooLargeError struct {
	Identity            Identity
	Width, Height       int
	MaxWidth, MaxHeight int
}

func (e *GlyphTooLargeError) Error() string {
	return fmt.Sprintf("build: glyph %s is %dx%d, limit is %dx%d",
		e.Identity, e.Width, e.Height, e.MaxWidth, e.MaxHeight)
}

func (e *GlyphTooLargeError) Unwrap() error { return ErrGlyphTooLarge }

// DuplicateIdentityError reports an identity supplied more than once.
type DuplicateIdentityError struct {
	Identity Identity
}

func (e *DuplicateIdentityError) Error() string {
	return "build: duplicate glyph " + e.Identity.String()
}

func (e *DuplicateIdentityError) Unwrap() error { return ErrDuplicateIdentity }

// MissingGlyphError lists the codepoints a charset requires but the
// glyph set lacks, in ascending order.
type MissingGlyphError struct {
	Missing []rune
}

func (e *MissingGlyphError) Error() string {
	names := make([]string, len(e.Missing))
	for i, r := range e.Missing {
		names[i] = fmt.Sprintf("U+%04X %s", r, runenames.Name(r))
	}
	return "build: missing glyphs: " + strings.Join(names, ", ")
}

func (e *MissingGlyphError) Unwrap() error { return ErrMissingGlyph }

// UnresolvedKerningIdentityError reports an override side that names no glyph.
type UnresolvedKerningIdentityError struct {
	Identity    Identity
	Left, Right Identity
}

func (e *UnresolvedKerningIdentityError) Error() string {
	return fmt.Sprintf("build: kerning override (%s, %s): no glyph %s", e.Left, e.Right, e.Identity)
}

func (e *UnresolvedKerningIdentityError) Unwrap() error { return ErrUnresolvedKerningIdentity }
