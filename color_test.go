package glyphpng

import "errors"
import "testing"
import "image/color"

func TestParseColor(t *testing.T) {
	tests := []struct{ in string ; out color.RGBA ; ok bool }{
		{"#FFFFFF", color.RGBA{255, 255, 255, 255}, true},
		{"#ff8000", color.RGBA{255, 128, 0, 255}, true},
		{"000000", color.RGBA{0, 0, 0, 255}, true},
		{"#FFF", color.RGBA{}, false},
		{"#GGGGGG", color.RGBA{}, false},
		{"#FFFFFFFF", color.RGBA{}, false},
		{"", color.RGBA{}, false},
		{"#", color.RGBA{}, false},
	}
	for _, test := range tests {
		rgba, err := ParseColor(test.in)
		if test.ok {
			if err != nil { t.Fatalf("ParseColor(%q): %s", test.in, err) }
			if rgba != test.out { t.Fatalf("ParseColor(%q) = %v, expected %v", test.in, rgba, test.out) }
		} else if !errors.Is(err, ErrColorParse) {
			t.Fatalf("ParseColor(%q): expected ErrColorParse, got %v", test.in, err)
		}
	}
}
