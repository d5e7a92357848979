package glyphpng

import "context"
import "log/slog"
import "sync/atomic"

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// Configures the logger used by glyphpng. By default, nothing is
// logged. Passing nil restores the default silent behavior. Safe
// for concurrent use.
//
// Log levels used:
//  - [slog.LevelDebug]: per glyph results and skipped undefined glyphs.
//  - [slog.LevelInfo]: batch lifecycle (start, directory ready, done).
//  - [slog.LevelWarn]: per glyph failures.
func SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(nopHandler{})
	}
	loggerPtr.Store(logger)
}

// Returns the current logger. Safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
