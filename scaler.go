package glyphpng

import "fmt"
import "math"

import "github.com/tinne26/glyphpng/font"

// Computes the uniform scale (in pixels per em) that fits the glyph's
// largest dimension into imgSize pixels.
//
// The unit scale bounding box of the glyph is measured and the scale
// is floor(imgSize / max(|height|, |width|)). Flooring guarantees that
// the scaled glyph never exceeds the pixel budget, but it also means
// that a big glyph and a small imgSize can result in a zero scale,
// reported as [ErrInvalidScale] instead of being clamped.
//
// Glyphs without contours or with zero or non finite sizes fail
// with [ErrGlyphGeometry].
func ComputeScale(glyph font.Glyph, imgSize int) (float64, error) {
	bounds, found, err := glyph.BoundsAt(1.0)
	if err != nil { return 0, fmt.Errorf("%w: %w", ErrGlyphGeometry, err) }
	if !found {
		return 0, fmt.Errorf("%w: no bounding box at unit scale", ErrGlyphGeometry)
	}

	maxDimension := math.Max(math.Abs(bounds.Height()), math.Abs(bounds.Width()))
	if maxDimension == 0 || math.IsNaN(maxDimension) || math.IsInf(maxDimension, 0) {
		return 0, fmt.Errorf("%w: degenerate glyph size %v", ErrGlyphGeometry, maxDimension)
	}

	scale := math.Floor(float64(imgSize)/maxDimension)
	if !(scale > 0) { // also catches NaN
		return 0, fmt.Errorf("%w: floor(%d / %v) = %v", ErrInvalidScale, imgSize, maxDimension, scale)
	}
	return scale, nil
}
