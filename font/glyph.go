package font

import "math"

import "golang.org/x/image/math/fixed"
import "golang.org/x/image/font/sfnt"

// A handle to the glyph that a [Face] associates with a code point.
// Glyph handles are cheap values and hold no state beyond the face
// reference, so they can be created and discarded freely.
type Glyph struct {
	CodePoint rune
	Index GlyphIndex
	face Face
}

// Looks up the glyph for the given code point. Code points without
// a glyph of their own result in a glyph with the [NotDefined] index,
// not an error.
func GlyphFor(face Face, codePoint rune) (Glyph, error) {
	index, err := face.GlyphIndex(codePoint)
	if err != nil { return Glyph{}, err }
	return Glyph{ CodePoint: codePoint, Index: index, face: face }, nil
}

// Returns false if the glyph is the font's "not defined" placeholder.
// Undefined glyphs must never be rasterized.
func (self Glyph) Defined() bool { return self.Index != NotDefined }

// Returns the bounds of the glyph outline at the given scale, in
// pixels per em. The second return value is false when the outline
// has no contours and therefore no bounding box.
//
// The bounds are computed from the outline in exact font units
// and only then scaled, so small scales (like 1.0) don't lose
// precision to 26.6 rounding.
func (self Glyph) BoundsAt(scale float64) (Bounds, bool, error) {
	upem := self.face.UnitsPerEm()
	if upem <= 0 { return Bounds{}, false, nil }
	outline, err := self.face.LoadOutline(self.Index, fixed.I(upem))
	if err != nil { return Bounds{}, false, err }
	if !HasContours(outline) { return Bounds{}, false, nil }

	rect := outline.Bounds()
	factor := scale/(64.0*float64(upem))
	return Bounds{
		MinX: float64(rect.Min.X)*factor,
		MinY: float64(rect.Min.Y)*factor,
		MaxX: float64(rect.Max.X)*factor,
		MaxY: float64(rect.Max.Y)*factor,
	}, true, nil
}

// Returns the glyph outline at the given scale (in pixels per em),
// positioned with its origin at (0, 0). No hinting is applied.
func (self Glyph) Outline(scale float64) (sfnt.Segments, error) {
	ppem := fixed.Int26_6(math.Round(scale*64))
	return self.face.LoadOutline(self.Index, ppem)
}

// An axis-aligned bounding box, y axis pointing down.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Returns MaxX - MinX.
func (self Bounds) Width() float64 { return self.MaxX - self.MinX }

// Returns MaxY - MinY.
func (self Bounds) Height() float64 { return self.MaxY - self.MinY }
