package ftllog_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ftl-lang/ftl/ftllog"
)

func TestForScopesComponentAttribute(t *testing.T) {
	l := ftllog.For("gc")
	assert.NotNil(t, l)
	// Logging through the scoped logger must not panic even though its
	// handler writes to stderr during tests.
	l.Info("cycle complete", "freed", 3)
}

func TestSetLevelChangesEnabled(t *testing.T) {
	ftllog.SetLevel(slog.LevelInfo)
	l := ftllog.For("test")
	assert.False(t, l.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, l.Enabled(context.Background(), slog.LevelInfo))

	ftllog.SetLevel(slog.LevelDebug)
	l = ftllog.For("test")
	assert.True(t, l.Enabled(context.Background(), slog.LevelDebug))

	// restore the default so other tests in this package see LevelInfo
	ftllog.SetLevel(slog.LevelInfo)
}
