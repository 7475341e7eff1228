package build

import (
	"errors"
	"slices"
	"testing"
)

// --- Identity Tests ---

func TestCompare_CanonicalOrder(t *testing.T) {
	ids := []Identity{"fi", "b", "ffi", "a", "ff", " ", "ё", "fj", "?"}
	slices.SortFunc(ids, Compare)

	want := []Identity{" ", "?", "a", "b", "ё", "ffi", "ff", "fi", "fj"}
	if !slices.Equal(ids, want) {
		t.Errorf("sorted = %q, want %q", ids, want)
	}
}

func TestCompare_Equal(t *testing.T) {
	if c := Compare("ff", "ff"); c != 0 {
		t.Errorf("Compare(ff, ff) = %d, want 0", c)
	}
	if c := Compare("a", "a"); c != 0 {
		t.Errorf("Compare(a, a) = %d, want 0", c)
	}
}

func TestParseIdentityName(t *testing.T) {
	tests := []struct {
		stem    string
		want    Identity
		wantErr bool
	}{
		{"41", "A", false},
		{"66_66_69", "ffi", false},
		{"451", "ё", false},
		{"3F", "?", false},
		{"", "", true},
		{"zz", "", true},
		{"66__69", "", true},
		{"0", "", true},
		{"d800", "", true},
		{"110000", "", true},
	}
	for _, tt := range tests {
		got, err := ParseIdentityName(tt.stem)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidIdentity) {
				t.Errorf("ParseIdentityName(%q) error = %v, want ErrInvalidIdentity", tt.stem, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseIdentityName(%q) error = %v", tt.stem, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseIdentityName(%q) = %q, want %q", tt.stem, got, tt.want)
		}
	}
}

func TestIdentity_Name(t *testing.T) {
	for _, id := range []Identity{"A", "ffi", "ё", "熊"} {
		got, err := ParseIdentityName(id.Name())
		if err != nil {
			t.Fatalf("ParseIdentityName(%q) error = %v", id.Name(), err)
		}
		if got != id {
			t.Errorf("ParseIdentityName(%q.Name()) = %q", id, got)
		}
	}
	if n := Identity("ffi").Name(); n != "66_66_69" {
		t.Errorf("Name() = %q, want 66_66_69", n)
	}
}

func TestNewIdentity_Invalid(t *testing.T) {
	for _, s := range []string{"", "a\x00", "\xff"} {
		if _, err := NewIdentity(s); !errors.Is(err, ErrInvalidIdentity) {
			t.Errorf("NewIdentity(%q) error = %v, want ErrInvalidIdentity", s, err)
		}
	}
}

func TestIdentity_Ligature(t *testing.T) {
	if Identity("a").IsLigature() {
		t.Error("single character reported as ligature")
	}
	if !Identity("ёж").IsLigature() {
		t.Error("two characters not reported as ligature")
	}
	if n := Identity("ёж").Len(); n != 2 {
		t.Errorf("Len() = %d, want 2", n)
	}
}

// --- Charset Tests ---

func TestCharset_ASCII(t *testing.T) {
	tests := []struct {
		id   Identity
		want bool
	}{
		{" ", true},
		{"~", true},
		{"ff", true},
		{"ё", false},
		{"fё", false},
		{"\x7f", false},
	}
	for _, tt := range tests {
		if got := CharsetASCII.Contains(tt.id); got != tt.want {
			t.Errorf("Contains(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
	req := CharsetASCII.Required()
	if len(req) != 95 || req[0] != ' ' || req[94] != '~' {
		t.Errorf("Required() = %d runes from %q to %q, want 95 from ' ' to '~'", len(req), req[0], req[len(req)-1])
	}
	if CharsetAll.Required() != nil || !CharsetAll.Contains("熊") {
		t.Error("CharsetAll restricts glyphs")
	}
}

func TestParseCharset(t *testing.T) {
	for _, c := range []Charset{CharsetAll, CharsetASCII} {
		got, ok := ParseCharset(c.String())
		if !ok || got != c {
			t.Errorf("ParseCharset(%q) = %v, %v", c.String(), got, ok)
		}
	}
	if _, ok := ParseCharset("latin1"); ok {
		t.Error("ParseCharset(latin1) succeeded")
	}
}
