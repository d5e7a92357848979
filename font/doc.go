// The font subpackage wraps font decoding behind the [Face] interface
// and offers [Glyph] handles to query glyph outlines and bounds at a
// given scale.
//
// Two decoding backends are available: [BackendSfnt], built on top of
// [golang.org/x/image/font/sfnt], and [BackendGoText], built on top of
// [github.com/go-text/typesetting/font]. Both produce outlines as
// [sfnt.Segments] in pixel space (y axis pointing down, glyph origin at
// (0, 0)), so the rest of the pipeline doesn't care about which one
// was used.
//
// Faces are never modified after parsing and can be shared freely
// between goroutines.
//
// [sfnt.Segments]: https://pkg.go.dev/golang.org/x/image/font/sfnt#Segments
package font
