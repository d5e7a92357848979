// glyphpng is a package for rendering the glyphs of a font as
// individual PNG images, one image per code point.
//
// Every glyph is scaled so its largest dimension fits a target pixel
// size, rasterized with a foreground color and centered on a square
// transparent canvas, which makes the results easy to consume later
// (e.g. in thumbnail grids).
//
// Common usage only requires a couple of types. First, parse a font
// and select the code points to render:
//   face, err := font.ParseFromPath("path/to/font.ttf", font.BackendSfnt)
//   if err != nil { ... }
//   candidates := codepoint.Default().Candidates()
//
// Then create a [Runner] and run the batch:
//   runner, err := glyphpng.NewRunner(face, "path/to/font.ttf", glyphpng.DefaultConfig())
//   if err != nil { ... }
//   report, err := runner.Run(candidates)
//
// Glyphs that fail to render don't stop the batch; they are collected
// in the [Report] and logged through [Logger]().
package glyphpng
