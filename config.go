package glyphpng

import "fmt"
import "runtime"
import "image/color"

// Batch configuration. Use [DefaultConfig]() as the starting point.
type Config struct {
	// Base output directory. Images are written to a subdirectory
	// named after the font file.
	OutputDir string

	// Foreground color. The alpha channel is ignored, as alpha is
	// driven by glyph coverage.
	Color color.RGBA

	// Target pixel size for the largest dimension of each glyph.
	Size int

	// Maximum number of glyphs rendered in parallel. Zero means
	// runtime.GOMAXPROCS(0).
	Workers int

	// Output file naming scheme.
	Naming Naming
}

// Returns the default configuration: white glyphs, 128px, written
// to "out" with compatible naming and as many workers as GOMAXPROCS.
func DefaultConfig() Config {
	return Config{
		OutputDir: "out",
		Color: color.RGBA{255, 255, 255, 255},
		Size: 128,
		Naming: NamingCompat,
	}
}

// Returns an error wrapping [ErrInvalidConfig] if any field is out
// of range.
func (self Config) Validate() error {
	if self.OutputDir == "" {
		return fmt.Errorf("%w: empty output directory", ErrInvalidConfig)
	}
	if self.Size <= 0 {
		return fmt.Errorf("%w: size must be positive (got %d)", ErrInvalidConfig, self.Size)
	}
	if self.Workers < 0 {
		return fmt.Errorf("%w: workers can't be negative (got %d)", ErrInvalidConfig, self.Workers)
	}
	if self.Naming != NamingCompat && self.Naming != NamingCodePoint {
		return fmt.Errorf("%w: unknown naming %s", ErrInvalidConfig, self.Naming)
	}
	return nil
}

// Returns the effective number of workers.
func (self Config) workers() int {
	if self.Workers > 0 { return self.Workers }
	return runtime.GOMAXPROCS(0)
}
