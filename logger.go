package pixfont

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called while fonts are being built or drawn.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for pixfont and its sub-packages.
// By default, pixfont produces no log output. Pass nil to restore the
// silent default.
//
// Log levels used by pixfont:
//   - [slog.LevelDebug]: build statistics (glyph counts, atlas size, table sizes)
//   - [slog.LevelInfo]: build and asset lifecycle events
//   - [slog.LevelWarn]: non-fatal source problems (missing substitute glyph,
//     bearings for unknown glyphs, unexpected glyph heights)
//
// Example:
//
//	pixfont.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by pixfont.
// The build and internal packages call this to share one configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
