package glyphpng

import "fmt"
import "image/color"
import "encoding/hex"

// Parses a "#RRGGBB" hex color. The leading '#' is optional. The
// returned color is always fully opaque.
func ParseColor(str string) (color.RGBA, error) {
	digits := str
	if digits != "" && digits[0] == '#' { digits = digits[1:] }
	if len(digits) != 6 {
		return color.RGBA{}, fmt.Errorf("%w: expected a hex color string like #RRGGBB, got '%s'", ErrColorParse, str)
	}
	rgb, err := hex.DecodeString(digits)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: expected a hex color string like #RRGGBB, got '%s'", ErrColorParse, str)
	}
	return color.RGBA{ rgb[0], rgb[1], rgb[2], 255 }, nil
}
