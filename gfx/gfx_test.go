package gfx

import (
	"testing"
)

func TestVersionString(t *testing.T) {
	tests := []struct {
		version Version
		want    string
	}{
		{GFX6, "gfx6.0"},
		{GFX9, "gfx9.0"},
		{Version{Major: 10, Minor: 3}, "gfx10.3"},
	}

	for _, tt := range tests {
		if got := tt.version.String(); got != tt.want {
			t.Errorf("Version%+v.String() = %q, want %q", tt.version, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Version
	}{
		{"9", Version{Major: 9}},
		{"9.0", Version{Major: 9}},
		{"10.3", Version{Major: 10, Minor: 3}},
		{"6.0", GFX6},
	}

	for _, tt := range tests {
		got, err := Parse(tt.input)
		if err != nil {
			t.Errorf("Parse(%q) returned error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, input := range []string{"", "gfx9", "9.", "9.x", "-1"} {
		if _, err := Parse(input); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", input)
		}
	}
}
