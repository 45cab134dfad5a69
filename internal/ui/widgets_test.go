package ui

import (
	"testing"
	"unicode/utf8"
)

func TestTrimLastRune(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"a", ""},
		{"abc", "ab"},
		{"café", "caf"},
		{"日本語", "日本"},
	}
	for _, tt := range tests {
		got := trimLastRune(tt.in)
		if got != tt.want {
			t.Errorf("trimLastRune(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if !utf8.ValidString(got) {
			t.Errorf("trimLastRune(%q) left invalid UTF-8 %q", tt.in, got)
		}
	}
}
