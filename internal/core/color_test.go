package core

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name     string
		expected Color
		wantErr  bool
	}{
		{"yellow", ColorYellow, false},
		{"GREEN", ColorGreen, false},
		{" black ", ColorBlack, false},
		{"bright-cyan", ColorBrightCyan, false},
		{"chartreuse", ColorDefault, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseColor(tc.name)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tc.name, err, tc.wantErr)
			}
			if got != tc.expected {
				t.Errorf("ParseColor(%q) = %v, expected %v", tc.name, got, tc.expected)
			}
		})
	}
}

func TestColorRoundTripName(t *testing.T) {
	for c := ColorDefault; c <= ColorGray; c++ {
		parsed, err := ParseColor(c.String())
		if err != nil {
			t.Errorf("ParseColor(%q) failed: %v", c.String(), err)
			continue
		}
		if parsed != c {
			t.Errorf("ParseColor(%q) = %v, expected %v", c.String(), parsed, c)
		}
	}
}

func TestColorRGBA(t *testing.T) {
	if got := ColorYellow.RGBA(); got != (color.RGBA{255, 255, 0, 255}) {
		t.Errorf("ColorYellow.RGBA() = %v, expected pure yellow", got)
	}
	if got := ColorGreen.RGBA(); got != (color.RGBA{0, 255, 0, 255}) {
		t.Errorf("ColorGreen.RGBA() = %v, expected pure green", got)
	}
	if got := Color(200).RGBA(); got != ColorDefault.RGBA() {
		t.Errorf("unknown color should fall back to default, got %v", got)
	}
}
