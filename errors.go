package glyphpng

import "fmt"
import "errors"

import "github.com/tinne26/glyphpng/mask"

// Errors returned by the glyph pipeline. Most of them are wrapped,
// so they must be checked with errors.Is().
var (
	// Returned by [ParseColor]() for anything that isn't "#RRGGBB".
	ErrColorParse = errors.New("color parse error")

	// The glyph has no bounding box at unit scale, or its size
	// is zero or not finite.
	ErrGlyphGeometry = errors.New("glyph geometry error")

	// The computed scale is not positive (e.g. the target size is
	// too small for the glyph).
	ErrInvalidScale = errors.New("invalid scale")

	// The scaled glyph doesn't produce any pixel bounding box.
	ErrNoBoundingBox = mask.ErrNoBoundingBox

	// A font base name or output path can't be derived.
	ErrPath = errors.New("path error")

	// Returned by [Config.Validate]().
	ErrInvalidConfig = errors.New("invalid config")
)

// The pipeline stage at which a glyph failed.
type Stage uint8
const (
	StageLookup Stage = iota
	StageScale
	StageRasterize
	StageWrite
)

// Returns the stage name.
func (self Stage) String() string {
	switch self {
	case StageLookup:    return "lookup"
	case StageScale:     return "scale"
	case StageRasterize: return "rasterize"
	case StageWrite:     return "write"
	default:
		return "UnknownStage"
	}
}

// A per glyph failure. Glyph errors never abort a batch.
type GlyphError struct {
	CodePoint rune
	Stage Stage
	Err error
}

func (self *GlyphError) Error() string {
	return fmt.Sprintf("glyph %U failed at %s: %s", self.CodePoint, self.Stage, self.Err)
}

func (self *GlyphError) Unwrap() error { return self.Err }
