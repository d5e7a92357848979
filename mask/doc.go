// The mask subpackage turns glyph outlines into coverage masks.
//
// Glyph outlines are sets of lines and curves extracted from font files.
// To get an image out of them, they have to be rasterized into a grid of
// pixels where each pixel holds the fraction of its area covered by the
// outline. That fraction is what this package calls "coverage", and it's
// later used as the alpha channel of the glyph images.
//
// The [Rasterizer] interface allows plugging in different algorithms, but
// the [DefaultRasterizer], a wrapper around [golang.org/x/image/vector], is
// what the glyph pipeline uses.
package mask
