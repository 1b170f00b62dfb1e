// Package ftllog provides a component-scoped structured logger for
// diagnostics, as distinct from a script's own `echo` output; callers
// choose the minimum level with SetLevel. The interpreter's packages in
// this module do not log through it. None of the example repos pull in a third-party structured
// logger (zerolog/zap/logrus), so this wraps the standard library's
// log/slog rather than inventing or importing one speculatively — noted
// in DESIGN.md as a deliberate stdlib exception, not an oversight.
package ftllog

import (
	"log/slog"
	"os"
)

var base = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

// SetLevel adjusts the minimum level logged, e.g. LevelDebug for
// verbose output.
func SetLevel(level slog.Level) {
	base = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// For returns a logger scoped to component, e.g. ftllog.For("gc") or
// ftllog.For("rcfile").
func For(component string) *slog.Logger { return base.With("component", component) }
