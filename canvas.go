package glyphpng

import "os"
import "io"
import "math"
import "image"
import "image/png"
import "image/color"
import "strconv"

import "github.com/tinne26/glyphpng/mask"

// Creates a square canvas for the given glyph coverage and paints the
// glyph centered on it. The canvas side is the largest dimension of the
// coverage bounding box, and pixels take the RGB of the given color with
// alpha = round(coverage*255). Uncovered pixels are fully transparent.
//
// The color alpha is ignored. Non-premultiplied RGBA is used so the
// stored RGB values are exactly the foreground color.
func Compose(coverage *mask.Coverage, fg color.RGBA) *image.NRGBA {
	width, height := coverage.Width(), coverage.Height()
	side := max(width, height)
	canvas := image.NewNRGBA(image.Rect(0, 0, side, side))

	xOffset := (side - width)/2
	yOffset := (side - height)/2
	coverage.Each(func(x, y int, value float64) {
		cx, cy := x + xOffset, y + yOffset
		if cx < 0 || cx >= side || cy < 0 || cy >= side {
			panic("pixel (" + strconv.Itoa(cx) + ", " + strconv.Itoa(cy) + ") outside " +
			      strconv.Itoa(side) + "x" + strconv.Itoa(side) + " canvas")
		}
		alpha := uint8(math.Round(math.Min(value, 1.0)*255))
		offset := canvas.PixOffset(cx, cy)
		canvas.Pix[offset + 0] = fg.R
		canvas.Pix[offset + 1] = fg.G
		canvas.Pix[offset + 2] = fg.B
		canvas.Pix[offset + 3] = alpha
	})
	return canvas
}

// Encodes the image as PNG and writes it to the given path, replacing
// any previous file.
func SavePNG(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil { return err }
	fileCloser := onceCloser{ closer: file }
	defer fileCloser.Close()

	err = png.Encode(file, img)
	if err != nil { return err }
	return fileCloser.Close()
}

// onceCloser makes it easier to both defer closes (to cover for early error
// returns) and check close errors manually when done with other operations.
type onceCloser struct {
	closer io.Closer
	alreadyClosed bool
}

func (self *onceCloser) Close() error {
	if self.alreadyClosed { return nil }
	self.alreadyClosed = true
	return self.closer.Close()
}
