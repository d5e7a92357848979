package main

import "os"
import "fmt"
import "flag"
import "log/slog"

import "github.com/tinne26/glyphpng"
import "github.com/tinne26/glyphpng/font"
import "github.com/tinne26/glyphpng/codepoint"

// Renders each glyph of a font into its own square PNG image.
//
// Usage:
//   glyphpng [flags] <font-path>
//
// Images are written to {out}/{font file name}/. With no -range
// or -categories flags, letters, numbers, punctuation and symbols
// are rendered.

func main() {
	var (
		fontPath   = flag.String("font", "", "path to the .ttf/.otf font (may be gzipped); also accepted as the first argument")
		outDir     = flag.String("out", "out", "base output directory")
		hexColor   = flag.String("color", "#FFFFFF", "glyph color as #RRGGBB")
		size       = flag.Int("size", 128, "target size in pixels for the largest glyph dimension")
		workers    = flag.Int("workers", 0, "glyphs rendered in parallel (0 means GOMAXPROCS)")
		rangeStr   = flag.String("range", "", "explicit code point range like U+0041..U+005A")
		categories = flag.String("categories", "", "comma separated Unicode categories or properties like L,Nd,P")
		backend    = flag.String("backend", "sfnt", "font decoding backend: sfnt or gotext")
		naming     = flag.String("naming", "compat", "output file naming: compat or codepoint")
		verbose    = flag.Bool("v", false, "log per glyph details")
	)
	flag.Parse()

	// font path can come from the flag or as a positional argument
	if *fontPath == "" && flag.NArg() > 0 { *fontPath = flag.Arg(0) }
	if *fontPath == "" || flag.NArg() > 1 {
		fmt.Fprint(os.Stderr, "Usage: glyphpng [flags] <font-path>\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	level := slog.LevelInfo
	if *verbose { level = slog.LevelDebug }
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{ Level: level }))
	glyphpng.SetLogger(logger)

	// build configuration
	config := glyphpng.DefaultConfig()
	config.OutputDir = *outDir
	config.Size = *size
	config.Workers = *workers
	var err error
	config.Color, err = glyphpng.ParseColor(*hexColor)
	if err != nil { fatal(logger, "bad -color", err) }
	config.Naming, err = glyphpng.ParseNaming(*naming)
	if err != nil { fatal(logger, "bad -naming", err) }
	fontBackend, err := font.ParseBackend(*backend)
	if err != nil { fatal(logger, "bad -backend", err) }

	// pick candidate code points
	var selector codepoint.Selector = codepoint.Default()
	switch {
	case *rangeStr != "":
		selector, err = codepoint.ParseRange(*rangeStr)
		if err != nil { fatal(logger, "bad -range", err) }
	case *categories != "":
		selector, err = codepoint.ParseCategories(*categories)
		if err != nil { fatal(logger, "bad -categories", err) }
	}

	// load font and run
	face, err := font.ParseFromPath(*fontPath, fontBackend)
	if err != nil { fatal(logger, "can't load font", err) }
	runner, err := glyphpng.NewRunner(face, *fontPath, config)
	if err != nil { fatal(logger, "can't create runner", err) }
	report, err := runner.Run(selector.Candidates())
	if err != nil { fatal(logger, "batch failed", err) }

	fmt.Printf("%s: %s (%s)\n", *fontPath, report, runner.FontDir())
}

func fatal(logger *slog.Logger, msg string, err error) {
	logger.Error(msg, "error", err)
	os.Exit(1)
}
