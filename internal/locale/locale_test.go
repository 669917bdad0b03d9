package locale

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"ru", "ru"},
		{"RU", "ru"},
		{"rus", "ru"},
		{"russian", "ru"},
		{"eng", "en"},
		{"English", "en"},
		{"fra", "fr"},
		{"fre", "fr"},
		{"deu", "de"},
		{"ger", "de"},
		{"chi", "zh"},
		{"ukrainian", "uk"},
		// Unknown 2-letter passes through
		{"xy", "xy"},
		// Unknown longer forms are rejected
		{"xyz", ""},
		{"klingon", ""},
		{"", ""},
		{"  ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"ru", "Russian"},
		{"rus", "Russian"},
		{"en", "English"},
		{"xy", "XY"},
		{"", "Unknown"},
	}
	for _, tt := range tests {
		if got := DisplayName(tt.input); got != tt.expected {
			t.Errorf("DisplayName(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestNormalizeList(t *testing.T) {
	got := NormalizeList([]string{"RUS", "english", "ru", "", "xyz", "en"})
	want := []string{"ru", "en"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeList = %v, want %v", got, want)
	}

	if NormalizeList(nil) != nil {
		t.Error("expected nil for empty input")
	}
	if NormalizeList([]string{"xyz"}) != nil {
		t.Error("expected nil when nothing normalizes")
	}
}
