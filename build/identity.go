package build

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Identity names what a glyph renders: a single character, or a ligature
// of two or more characters rendered as one glyph.
type Identity string

// Single returns the identity of a single character.
func Single(r rune) Identity {
	return Identity(string(r))
}

// NewIdentity validates s as an identity. It must be non-empty valid UTF-8
// without U+0000, which the encoded tables reserve as a marker.
func NewIdentity(s string) (Identity, error) {
	id := Identity(s)
	if err := id.validate(); err != nil {
		return "", err
	}
	return id, nil
}

// ParseIdentityName parses a glyph file name stem: hexadecimal scalar
// values joined by underscores, such as "66_66_69" for "ffi".
func ParseIdentityName(stem string) (Identity, error) {
	var sb strings.Builder
	for _, part := range strings.Split(stem, "_") {
		v, err := strconv.ParseUint(part, 16, 32)
		if err != nil {
			return "", fmt.Errorf("%w: name %q: %w", ErrInvalidIdentity, stem, err)
		}
		if !utf8.ValidRune(rune(v)) {
			return "", fmt.Errorf("%w: name %q: U+%X is not a scalar value", ErrInvalidIdentity, stem, v)
		}
		sb.WriteRune(rune(v))
	}
	return NewIdentity(sb.String())
}

func (id Identity) validate() error {
	switch {
	case id == "":
		return fmt.Errorf("%w: empty", ErrInvalidIdentity)
	case !utf8.ValidString(string(id)):
		return fmt.Errorf("%w: %q is not valid UTF-8", ErrInvalidIdentity, string(id))
	case strings.ContainsRune(string(id), 0):
		return fmt.Errorf("%w: %q contains U+0000", ErrInvalidIdentity, string(id))
	}
	return nil
}

// Runes returns the characters of the identity.
func (id Identity) Runes() []rune {
	return []rune(string(id))
}

// Len returns the number of characters.
func (id Identity) Len() int {
	return utf8.RuneCountInString(string(id))
}

// IsLigature reports whether the identity has more than one character.
func (id Identity) IsLigature() bool {
	return id.Len() > 1
}

// Rune returns the first character.
func (id Identity) Rune() rune {
	r, _ := utf8.DecodeRuneInString(string(id))
	return r
}

// Name returns the file name stem form, the inverse of ParseIdentityName.
func (id Identity) Name() string {
	parts := make([]string, 0, len(id))
	for _, r := range string(id) {
		parts = append(parts, strconv.FormatInt(int64(r), 16))
	}
	return strings.Join(parts, "_")
}

// String returns the quoted characters and their scalar values.
func (id Identity) String() string {
	return fmt.Sprintf("%q (%s)", string(id), id.Name())
}

// Compare orders identities canonically: all single characters first by
// scalar value, then ligatures, longer ones first and equal lengths by
// their scalar sequence. The order assigns glyph indices and makes
// ligature matching longest-first.
func Compare(a, b Identity) int {
	la, lb := a.Len(), b.Len()
	switch {
	case la == 1 && lb == 1:
		return cmp.Compare(a.Rune(), b.Rune())
	case la == 1:
		return -1
	case lb == 1:
		return 1
	case la != lb:
		return cmp.Compare(lb, la)
	}
	return slices.Compare(a.Runes(), b.Runes())
}
