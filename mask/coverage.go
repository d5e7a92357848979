package mask

import "image"

// The result of rasterizing a glyph: a pixel bounding box and the
// coverage of each pixel inside it.
type Coverage struct {
	mask *image.Alpha
}

// Returns the pixel bounding box of the rasterized glyph, relative
// to the glyph origin.
func (self *Coverage) Bounds() image.Rectangle { return self.mask.Rect }

// Returns the width of the pixel bounding box.
func (self *Coverage) Width() int { return self.mask.Rect.Dx() }

// Returns the height of the pixel bounding box.
func (self *Coverage) Height() int { return self.mask.Rect.Dy() }

// Calls the given function for each covered pixel. Coordinates are
// offsets relative to the bounding box origin (so they are always in
// [0, Width()) and [0, Height())), and coverage values are in (0, 1].
// Pixels with zero coverage are skipped.
func (self *Coverage) Each(fn func(x, y int, coverage float64)) {
	width, height := self.Width(), self.Height()
	for y := 0; y < height; y++ {
		row := self.mask.Pix[y*self.mask.Stride : y*self.mask.Stride + width]
		for x, value := range row {
			if value == 0 { continue }
			fn(x, y, float64(value)/255.0)
		}
	}
}

// Returns the raw alpha mask. The mask must not be modified.
func (self *Coverage) Mask() *image.Alpha { return self.mask }
