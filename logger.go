package gridmesh

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip attribute construction entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with placement from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for gridmesh and its sub-packages.
// By default, gridmesh produces no log output.
//
// SetLogger is safe for concurrent use. Pass nil to restore the silent
// default.
//
// Records emitted by gridmesh:
//   - [slog.LevelDebug] "gridmesh: resized": the new screen_w and screen_h
//     after Builder.Resize
//   - [slog.LevelDebug] "gridmesh: lattices generated": vertex, uv and
//     background lattice lengths from GenerateLattices and NewFrame
//   - [slog.LevelDebug] "gpumesh: packed": mesh, batch and skipped face
//     counts from Pack
//   - [slog.LevelWarn] "gridmesh: glyph skipped": one record per rune that
//     PlaceText or PlaceRunes dropped, carrying the *OverflowError
//   - [slog.LevelWarn] "gridmesh: text skipped": a whole run dropped
//     because its Style layer is invalid
//   - [slog.LevelWarn] "gpumesh: face skipped": a face whose atlas UVs fall
//     outside the mesh, dropped by Pack
//
// Single-glyph placement never logs; its failures are returned as errors.
//
// Example:
//
//	gridmesh.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by gridmesh.
// The gpumesh sub-package calls this to share the same configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
