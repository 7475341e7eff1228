package pixfont

import "errors"

// ErrMalformedAsset is returned when a font asset has inconsistent tables,
// for example a glyph record array whose length is not a multiple of
// GlyphRecordSize.
var ErrMalformedAsset = errors.New("pixfont: malformed font asset")

// MalformedAssetError describes which part of an asset failed validation.
type MalformedAssetError struct {
	Section string
	Reason  string
}

func (e *MalformedAssetError) Error() string {
	return "pixfont: malformed font asset: " + e.Section + ": " + e.Reason
}

// Unwrap lets errors.Is match ErrMalformedAsset.
func (e *MalformedAssetError) Unwrap() error {
	return ErrMalformedAsset
}

func malformed(section, reason string) error {
	return &MalformedAssetError{Section: section, Reason: reason}
}
