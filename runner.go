package glyphpng

import "os"
import "fmt"
import "sort"
import "sync"
import "strconv"
import "sync/atomic"
import "path/filepath"

import "golang.org/x/sync/errgroup"

import "github.com/tinne26/glyphpng/font"
import "github.com/tinne26/glyphpng/mask"

// Batch runner states. A runner moves strictly forward through
// them and can't be reused once done.
type State uint32
const (
	StateInit State = iota
	StateDirectoryReady
	StateProcessing
	StateDone
)

// Returns the state name.
func (self State) String() string {
	switch self {
	case StateInit:           return "Init"
	case StateDirectoryReady: return "DirectoryReady"
	case StateProcessing:     return "Processing"
	case StateDone:           return "Done"
	default:
		return "UnknownState"
	}
}

// A successfully written glyph image.
type OutputRecord struct {
	CodePoint rune
	Path string
}

// The outcome of a batch. Records and failures are sorted by code point.
type Report struct {
	Records []OutputRecord
	Failures []*GlyphError
	Skipped int // candidates with undefined glyphs
	Attempted int
}

// Returns a one line summary of the report.
func (self *Report) String() string {
	return strconv.Itoa(self.Attempted) + " candidates: " +
		strconv.Itoa(len(self.Records)) + " written, " +
		strconv.Itoa(len(self.Failures)) + " failed, " +
		strconv.Itoa(self.Skipped) + " undefined"
}

// A Runner drives the glyph pipeline over a set of code points,
// writing one image per defined glyph. The face is shared read-only
// by all the workers.
type Runner struct {
	face font.Face
	config Config
	baseName string
	fontDir string
	state atomic.Uint32
	rasterizers sync.Pool
}

// Creates a runner for the given face. The font path is only used to
// derive the output subdirectory name (see [BaseName]()). Configuration
// and path errors are returned immediately.
func NewRunner(face font.Face, fontPath string, config Config) (*Runner, error) {
	err := config.Validate()
	if err != nil { return nil, err }
	baseName, err := BaseName(fontPath)
	if err != nil { return nil, err }

	runner := &Runner{
		face: face,
		config: config,
		baseName: baseName,
		fontDir: filepath.Join(config.OutputDir, baseName),
	}
	runner.rasterizers.New = func() any { return &mask.DefaultRasterizer{} }
	return runner, nil
}

// Returns the current runner state. Safe for concurrent use.
func (self *Runner) State() State { return State(self.state.Load()) }

// Returns the directory where the glyph images are written.
func (self *Runner) FontDir() string { return self.fontDir }

// Creates the output directory tree, moving the runner from
// [StateInit] to [StateDirectoryReady]. Existing directories are
// not an error. Calling Prepare in any other state is a no-op.
func (self *Runner) Prepare() error {
	if self.State() != StateInit { return nil }
	err := os.MkdirAll(self.fontDir, 0o755)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	self.state.Store(uint32(StateDirectoryReady))
	Logger().Info("output directory ready", "dir", self.fontDir)
	return nil
}

// Renders every given code point, calling [Runner.Prepare]() first if
// necessary. Per glyph failures are collected in the report and don't
// stop the batch; the only errors returned are directory creation
// errors and attempts to run a runner twice.
func (self *Runner) Run(codePoints []rune) (*Report, error) {
	err := self.Prepare()
	if err != nil { return nil, err }
	if !self.state.CompareAndSwap(uint32(StateDirectoryReady), uint32(StateProcessing)) {
		return nil, fmt.Errorf("runner can't run in state %s", self.State())
	}

	workers := self.config.workers()
	Logger().Info("rendering glyphs", "font", self.face.Name(), "candidates", len(codePoints),
		"size", self.config.Size, "workers", workers)

	// each item writes only its own slot
	results := make([]glyphResult, len(codePoints))
	var group errgroup.Group
	group.SetLimit(workers)
	for i, codePoint := range codePoints {
		group.Go(func() error {
			results[i] = self.renderCodePoint(codePoint)
			return nil
		})
	}
	_ = group.Wait() // items never return errors

	report := collectReport(results)
	self.state.Store(uint32(StateDone))
	Logger().Info("rendering done", "written", len(report.Records),
		"failed", len(report.Failures), "undefined", report.Skipped)
	return report, nil
}

type glyphResult struct {
	codePoint rune
	path string
	skipped bool
	err *GlyphError
}

// Runs the whole pipeline for a single code point.
func (self *Runner) renderCodePoint(codePoint rune) glyphResult {
	result := glyphResult{ codePoint: codePoint }
	var fail = func(stage Stage, err error) glyphResult {
		result.err = &GlyphError{ CodePoint: codePoint, Stage: stage, Err: err }
		Logger().Warn("glyph failed", "codepoint", fmt.Sprintf("%U", codePoint),
			"stage", stage.String(), "error", err)
		return result
	}

	glyph, err := font.GlyphFor(self.face, codePoint)
	if err != nil { return fail(StageLookup, err) }
	if !glyph.Defined() {
		result.skipped = true
		Logger().Debug("glyph not defined", "codepoint", fmt.Sprintf("%U", codePoint))
		return result
	}

	scale, err := ComputeScale(glyph, self.config.Size)
	if err != nil { return fail(StageScale, err) }

	outline, err := glyph.Outline(scale)
	if err != nil { return fail(StageRasterize, err) }
	rasterizer := self.rasterizers.Get().(*mask.DefaultRasterizer)
	coverage, err := mask.Rasterize(outline, rasterizer)
	self.rasterizers.Put(rasterizer)
	if err != nil { return fail(StageRasterize, err) }

	canvas := Compose(coverage, self.config.Color)
	path := OutputPath(self.config.OutputDir, self.baseName, codePoint, self.config.Naming)
	err = SavePNG(canvas, path)
	if err != nil { return fail(StageWrite, err) }

	result.path = path
	Logger().Debug("glyph written", "codepoint", fmt.Sprintf("%U", codePoint),
		"scale", scale, "side", canvas.Rect.Dx(), "path", path)
	return result
}

func collectReport(results []glyphResult) *Report {
	report := &Report{ Attempted: len(results) }
	for _, result := range results {
		switch {
		case result.skipped:
			report.Skipped += 1
		case result.err != nil:
			report.Failures = append(report.Failures, result.err)
		default:
			report.Records = append(report.Records, OutputRecord{ CodePoint: result.codePoint, Path: result.path })
		}
	}

	sort.Slice(report.Records, func(i, j int) bool {
		return report.Records[i].CodePoint < report.Records[j].CodePoint
	})
	sort.Slice(report.Failures, func(i, j int) bool {
		return report.Failures[i].CodePoint < report.Failures[j].CodePoint
	})
	return report
}
