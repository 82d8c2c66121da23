package pinchzoom

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record. Enabled reports false, so the interpreter's
// per-frame Debug calls cost no attribute formatting by default.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (d discard) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discard) WithGroup(string) slog.Handler           { return d }

var (
	silent = slog.New(discard{})
	logger atomic.Pointer[slog.Logger]
)

// SetLogger routes gesture diagnostics to l. Passing nil silences them again,
// which is also the state before the first call. Safe for concurrent use.
//
// Debug records trace the gesture lifecycle (anchor, re-anchor, end with or
// without commit). Warn records mark frames the interpreter had to degrade:
// coincident contacts at gesture start, an unmeasured surface, or a config
// replaced by the defaults.
//
//	pinchzoom.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	logger.Store(l)
}

// Logger returns the logger set by SetLogger, or a silent one.
func Logger() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return silent
}
