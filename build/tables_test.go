package build

import "testing"

// --- Table Encoding Tests ---

func TestEncodeCodepoints(t *testing.T) {
	tests := []struct {
		name  string
		runes []rune
		want  string
	}{
		{"empty", nil, ""},
		{"single", []rune{'a'}, "a"},
		{"isolated", []rune{' ', '?', 'a'}, " ?a"},
		{"pair becomes range", []rune{'a', 'b'}, "\x00ab"},
		{"range", []rune{'a', 'b', 'c', 'd'}, "\x00ad"},
		{"mixed", []rune{' ', 'a', 'b', 'c', 'x', 'а', 'б', 'в'}, " \x00acx\x00ав"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EncodeCodepoints(tt.runes); got != tt.want {
				t.Errorf("EncodeCodepoints() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodeLigatures(t *testing.T) {
	got := EncodeLigatures([]Identity{"ffi", "ff", "fi"})
	if want := "\x00ffi\x00ff\x00fi"; got != want {
		t.Errorf("EncodeLigatures() = %q, want %q", got, want)
	}
	if got := EncodeLigatures(nil); got != "" {
		t.Errorf("EncodeLigatures(nil) = %q, want empty", got)
	}
}
