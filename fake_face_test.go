package glyphpng

// A synthetic font face with rectangular glyphs of exact sizes,
// useful to test the scaling arithmetic without real font data.

import "errors"

import "golang.org/x/image/math/fixed"
import "golang.org/x/image/font/sfnt"

import "github.com/tinne26/glyphpng/font"

var errFakeOutline = errors.New("fake outline error")

type rectGlyph struct {
	width, height int // in font units
	broken bool // LoadOutline fails
}

type rectFace struct {
	upem int
	codePoints []rune
	glyphs []rectGlyph
}

func newRectFace(upem int) *rectFace { return &rectFace{ upem: upem } }

func (self *rectFace) add(codePoint rune, glyph rectGlyph) *rectFace {
	self.codePoints = append(self.codePoints, codePoint)
	self.glyphs = append(self.glyphs, glyph)
	return self
}

func (self *rectFace) Name() string { return "Rect Fake" }
func (self *rectFace) UnitsPerEm() int { return self.upem }

func (self *rectFace) GlyphIndex(codePoint rune) (font.GlyphIndex, error) {
	for i, candidate := range self.codePoints {
		if candidate == codePoint { return font.GlyphIndex(i + 1), nil }
	}
	return font.NotDefined, nil
}

// Rect from (0, -height) to (width, 0), sitting on the baseline.
func (self *rectFace) LoadOutline(index font.GlyphIndex, ppem fixed.Int26_6) (sfnt.Segments, error) {
	glyph := self.glyphs[index - 1]
	if glyph.broken { return nil, errFakeOutline }
	if glyph.width == 0 && glyph.height == 0 { return nil, nil }

	var scale = func(units int) fixed.Int26_6 {
		return fixed.Int26_6(int64(units)*int64(ppem)/int64(self.upem))
	}
	w, h := scale(glyph.width), scale(glyph.height)
	var point = func(x, y fixed.Int26_6) [3]fixed.Point26_6 {
		return [3]fixed.Point26_6{ { X: x, Y: y } }
	}
	return sfnt.Segments{
		{ Op: sfnt.SegmentOpMoveTo, Args: point(0, -h) },
		{ Op: sfnt.SegmentOpLineTo, Args: point(w, -h) },
		{ Op: sfnt.SegmentOpLineTo, Args: point(w, 0) },
		{ Op: sfnt.SegmentOpLineTo, Args: point(0, 0) },
		{ Op: sfnt.SegmentOpLineTo, Args: point(0, -h) },
	}, nil
}
