package features

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false so attributes are
// never evaluated.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// current is safe to swap while other goroutines log.
var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(newNopLogger())
}

// SetLogger configures the logger for this package and its sub-packages
// (surface, fonts, header, config). By default nothing is logged.
// Pass nil to restore the silent default.
//
// Log levels:
//   - [slog.LevelDebug]: selection details (target, enabled capabilities)
//   - [slog.LevelInfo]: lifecycle events (backend chosen, header written)
//   - [slog.LevelWarn]: non-fatal issues (unknown platform, skipped font file)
//
// Example:
//
//	features.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	current.Store(l)
}

// Logger returns the current logger. Sub-packages call this to share one
// logger configuration.
func Logger() *slog.Logger {
	return current.Load()
}
