package font

import "sync"
import "errors"
import "strconv"

import "golang.org/x/image/math/fixed"
import "golang.org/x/image/font/sfnt"

var _ Face = (*sfntFace)(nil)

// Face implementation on top of [sfnt.Font]. The font itself can be
// used concurrently, but [sfnt.Buffer] values can't, so we keep a
// pool of them and take one for each call.
type sfntFace struct {
	font *sfnt.Font
	name string
	buffers sync.Pool
}

func newSfntFace(fontBytes []byte) (*sfntFace, error) {
	font, err := sfnt.Parse(fontBytes)
	if err != nil { return nil, err }

	face := &sfntFace{ font: font }
	face.buffers.New = func() any { return &sfnt.Buffer{} }
	face.name = face.property(sfnt.NameIDFull)
	if face.name == "" {
		face.name = face.property(sfnt.NameIDFamily)
	}
	return face, nil
}

// Returns the requested name property, or an empty string if
// missing or unreadable.
func (self *sfntFace) property(id sfnt.NameID) string {
	buffer := self.buffers.Get().(*sfnt.Buffer)
	defer self.buffers.Put(buffer)
	str, err := self.font.Name(buffer, id)
	if err != nil { return "" }
	return str
}

// Satisfies the [Face] interface.
func (self *sfntFace) Name() string { return self.name }

// Satisfies the [Face] interface.
func (self *sfntFace) UnitsPerEm() int { return int(self.font.UnitsPerEm()) }

// Satisfies the [Face] interface.
func (self *sfntFace) GlyphIndex(codePoint rune) (GlyphIndex, error) {
	buffer := self.buffers.Get().(*sfnt.Buffer)
	defer self.buffers.Put(buffer)
	index, err := self.font.GlyphIndex(buffer, codePoint)
	if err != nil { return NotDefined, err }
	return GlyphIndex(index), nil
}

// Satisfies the [Face] interface.
func (self *sfntFace) LoadOutline(index GlyphIndex, ppem fixed.Int26_6) (sfnt.Segments, error) {
	if index > 0xFFFF {
		return nil, errors.New("glyph index " + strconv.FormatUint(uint64(index), 10) + " out of range")
	}

	buffer := self.buffers.Get().(*sfnt.Buffer)
	defer self.buffers.Put(buffer)
	segments, err := self.font.LoadGlyph(buffer, sfnt.GlyphIndex(index), ppem, nil)
	if err != nil { return nil, err }

	// segments point into the buffer, which goes back to the pool
	outline := make(sfnt.Segments, len(segments))
	copy(outline, segments)
	return outline, nil
}
