package shade

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so disabled logging skips message formatting
// entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger for shade and its sub-packages. By
// default shade produces no log output. Pass nil to restore the silent
// default. Safe for concurrent use.
//
// Levels used:
//   - [slog.LevelDebug]: resource lifecycle (buffers, textures, release)
//   - [slog.LevelInfo]: context creation
//   - [slog.LevelWarn]: missing uniforms, skipped frames
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Sub-packages (backend/opengl, term)
// call this to share the same configuration without import cycles.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
