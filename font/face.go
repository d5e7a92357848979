package font

import "errors"
import "strings"

import "golang.org/x/image/math/fixed"
import "golang.org/x/image/font/sfnt"

// Glyph indices identify glyphs within a font. The zero index is
// always reserved for the font's "not defined" placeholder glyph
// (see [NotDefined]).
type GlyphIndex uint32

// The glyph index used by fonts to represent code points that
// have no glyph of their own.
const NotDefined GlyphIndex = 0

// Returned (wrapped) by the parsing functions when the font bytes
// can't be decoded by the selected backend.
var ErrDecode = errors.New("font decode error")

// A Face is a decoded font ready to be queried for glyph data.
//
// Implementations must be safe for concurrent use, as faces are
// shared read-only by all the workers of a batch.
type Face interface {
	// Returns the font's full name. The name might be empty if
	// the backend can't provide it.
	Name() string

	// Returns the number of font units per em.
	UnitsPerEm() int

	// Returns the glyph index for the given code point, or
	// [NotDefined] if the font doesn't map it.
	GlyphIndex(codePoint rune) (GlyphIndex, error)

	// Returns the outline of the given glyph scaled to the given
	// pixels per em. Coordinates are in pixel space, with the y
	// axis pointing down and the glyph origin at (0, 0). The
	// returned segments can be freely retained by the caller.
	LoadOutline(index GlyphIndex, ppem fixed.Int26_6) (sfnt.Segments, error)
}

// Font decoding backends. See [ParseFromBytes]().
type Backend uint8
const (
	BackendSfnt Backend = iota // golang.org/x/image/font/sfnt
	BackendGoText              // github.com/go-text/typesetting/font
)

// Returns the backend name ("sfnt" or "gotext").
func (self Backend) String() string {
	switch self {
	case BackendSfnt:   return "sfnt"
	case BackendGoText: return "gotext"
	default:
		return "UnknownBackend"
	}
}

// Parses a backend name as returned by [Backend.String]().
// The comparison is case insensitive.
func ParseBackend(name string) (Backend, error) {
	switch strings.ToLower(name) {
	case "sfnt", "":  return BackendSfnt, nil
	case "gotext":    return BackendGoText, nil
	default:
		return BackendSfnt, errors.New("unknown font backend '" + name + "'")
	}
}

// Reports whether the outline contains any line or curve. Outlines
// made only of move operations (or no segments at all, as with
// space glyphs) have nothing to draw.
func HasContours(outline sfnt.Segments) bool {
	for _, segment := range outline {
		if segment.Op != sfnt.SegmentOpMoveTo { return true }
	}
	return false
}
