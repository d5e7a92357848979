package mask

import "image"
import "errors"

import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"

// Returned by [Rasterize]() when the outline doesn't produce any pixel
// bounding box (e.g. space glyphs or zero-area outlines).
var ErrNoBoundingBox = errors.New("glyph has no pixel bounding box")

// Rasterizer is an interface for 2D vector graphics rasterization to an
// alpha mask. This interface is offered as an open alternative to the
// concrete [golang.org/x/image/vector.Rasterizer] type, allowing anyone
// to target it and use its own rasterizer for glyphs.
//
// Mask rasterizers can't be used concurrently and must tolerate
// coordinates out of bounds.
type Rasterizer interface {
	// Rasterizes the given outline to an alpha mask. The outline is
	// anchored at (0, 0) and the returned mask bounds must be the pixel
	// bounding box of the outline: the smallest integer rectangle that
	// contains it. The mask can be nil if the bounding box is empty.
	Rasterize(sfnt.Segments) (*image.Alpha, error)
}

// Maybe I could export this, but it doesn't feel that relevant.
type vectorTracer interface {
	// Move to the given coordinate.
	MoveTo(fixed.Point26_6)

	// Create a segment to the given coordinate.
	LineTo(fixed.Point26_6)

	// Conic Bézier curve (also called quadratic). The first parameter
	// is the control coordinate, and the second one the final target.
	QuadTo(fixed.Point26_6, fixed.Point26_6)

	// Cubic Bézier curve. The first two parameters are the control
	// coordinates, and the third one is the final target.
	CubeTo(fixed.Point26_6, fixed.Point26_6, fixed.Point26_6)
}

// Rasterizes the given outline and returns its coverage. The outline
// must already be scaled and positioned (see font.Glyph.Outline).
//
// If the outline doesn't include any active lines or curves, or the
// rasterizer reports an empty mask, [ErrNoBoundingBox] is returned.
func Rasterize(outline sfnt.Segments, rasterizer Rasterizer) (*Coverage, error) {
	for _, segment := range outline {
		if segment.Op == sfnt.SegmentOpMoveTo { continue }
		mask, err := rasterizer.Rasterize(outline)
		if err != nil { return nil, err }
		if mask == nil || mask.Rect.Empty() { return nil, ErrNoBoundingBox }
		return &Coverage{ mask: mask }, nil
	}
	return nil, ErrNoBoundingBox // nothing to draw
}

// Calls MoveTo(), LineTo(), QuadTo() and CubeTo() methods on the
// tracer, as corresponding, for each segment in the glyph outline.
func processOutline(tracer vectorTracer, outline sfnt.Segments) {
	for _, segment := range outline {
		switch segment.Op {
		case sfnt.SegmentOpMoveTo:
			tracer.MoveTo(segment.Args[0])
		case sfnt.SegmentOpLineTo:
			tracer.LineTo(segment.Args[0])
		case sfnt.SegmentOpQuadTo:
			tracer.QuadTo(segment.Args[0], segment.Args[1])
		case sfnt.SegmentOpCubeTo:
			tracer.CubeTo(segment.Args[0], segment.Args[1], segment.Args[2])
		default:
			panic("unexpected segment.Op case")
		}
	}
}
