package font

import "bytes"
import "math"

import "golang.org/x/image/math/fixed"
import "golang.org/x/image/font/sfnt"
import gotext "github.com/go-text/typesetting/font"
import "github.com/go-text/typesetting/font/opentype"

var _ Face = (*goTextFace)(nil)

// Face implementation on top of go-text/typesetting. The parsed
// gotext.Font is read-only and safe for concurrent use, but gotext.Face
// values are not, so a lightweight face is created for each outline
// request.
type goTextFace struct {
	font *gotext.Font
}

func newGoTextFace(fontBytes []byte) (*goTextFace, error) {
	face, err := gotext.ParseTTF(bytes.NewReader(fontBytes))
	if err != nil { return nil, err }
	return &goTextFace{ font: face.Font }, nil
}

// Satisfies the [Face] interface. The go-text backend doesn't
// expose naming table lookups, so the name is always empty.
func (self *goTextFace) Name() string { return "" }

// Satisfies the [Face] interface.
func (self *goTextFace) UnitsPerEm() int { return int(self.font.Upem()) }

// Satisfies the [Face] interface.
func (self *goTextFace) GlyphIndex(codePoint rune) (GlyphIndex, error) {
	gid, found := self.font.NominalGlyph(codePoint)
	if !found { return NotDefined, nil }
	return GlyphIndex(gid), nil
}

// Satisfies the [Face] interface. Bitmap and SVG glyphs have no
// outline and result in an empty segment list.
func (self *goTextFace) LoadOutline(index GlyphIndex, ppem fixed.Int26_6) (sfnt.Segments, error) {
	data := gotext.NewFace(self.font).GlyphData(gotext.GID(index))
	outline, isOutline := data.(gotext.GlyphOutline)
	if !isOutline { return nil, nil }

	// go-text outlines are given in font units with the y axis
	// pointing up, while we want 26.6 pixel coordinates, y down
	factor := float64(ppem)/float64(self.UnitsPerEm())
	segments := make(sfnt.Segments, 0, len(outline.Segments))
	for _, segment := range outline.Segments {
		var converted sfnt.Segment
		var numArgs int
		switch segment.Op {
		case opentype.SegmentOpMoveTo:
			converted.Op, numArgs = sfnt.SegmentOpMoveTo, 1
		case opentype.SegmentOpLineTo:
			converted.Op, numArgs = sfnt.SegmentOpLineTo, 1
		case opentype.SegmentOpQuadTo:
			converted.Op, numArgs = sfnt.SegmentOpQuadTo, 2
		case opentype.SegmentOpCubeTo:
			converted.Op, numArgs = sfnt.SegmentOpCubeTo, 3
		default:
			panic("unexpected segment.Op case")
		}
		for i := 0; i < numArgs; i++ {
			converted.Args[i] = fixed.Point26_6{
				X: fixed.Int26_6(math.Round(+float64(segment.Args[i].X)*factor)),
				Y: fixed.Int26_6(math.Round(-float64(segment.Args[i].Y)*factor)),
			}
		}
		segments = append(segments, converted)
	}
	return segments, nil
}
