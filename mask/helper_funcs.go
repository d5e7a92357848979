package mask

import "image"

import "golang.org/x/image/math/fixed"

// Given the outline bounds, it returns the bounding integer width and
// height, the normalization offset to be applied to keep the coordinates
// in the positive plane, and the final offset to be applied on the mask
// to align its bounds to the glyph origin.
func figureOutBounds(bounds fixed.Rectangle26_6) (int, int, fixed.Point26_6, image.Point) {
	floorMinX := bounds.Min.X.Floor()
	floorMinY := bounds.Min.Y.Floor()
	maskCorrection := image.Pt(floorMinX, floorMinY)

	normOffset := fixed.Point26_6{ X: -fixed.I(floorMinX), Y: -fixed.I(floorMinY) }
	width  := (bounds.Max.X + normOffset.X).Ceil()
	height := (bounds.Max.Y + normOffset.Y).Ceil()
	return width, height, normOffset, maskCorrection
}

func toFloat32s(point fixed.Point26_6) (float32, float32) {
	return float32(point.X)/64.0, float32(point.Y)/64.0
}
