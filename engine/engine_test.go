package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ftl-lang/ftl/charsink"
	"github.com/ftl-lang/ftl/charsource"
	"github.com/ftl-lang/ftl/engine"
	"github.com/ftl-lang/ftl/value"
)

func TestNewInstallsRootWithBuiltins(t *testing.T) {
	rt := engine.New()
	require.NotNil(t, rt.Heap)
	require.NotNil(t, rt.Root)

	v, ok := rt.Root.Lookup("if")
	assert.True(t, ok, "builtins.Install must register the `if` command into the root")
	assert.NotNil(t, v)
}

func TestSpawnedSessionsShareRootDirectory(t *testing.T) {
	rt := engine.New()
	sink := charsink.NewStringSink()
	a := rt.Spawn(sink)
	defer a.End()
	b := rt.Spawn(sink)
	defer b.End()

	_, err := a.EvalString(`set x 1`, "a", 1)
	require.NoError(t, err)

	v, err := b.EvalString(`x`, "b", 1)
	require.NoError(t, err, "a top-level set defines into the shared root, so every session sees it")
	assert.Equal(t, int64(1), v.(*value.Int).Number())
}

func TestRunSourceStopsOnFirstError(t *testing.T) {
	rt := engine.New()
	sink := charsink.NewStringSink()
	sess := rt.Spawn(sink)
	defer sess.End()

	src := charsource.NewStringSource("script", "set a 1\nunboundname\nset b 2\n")
	_, err := sess.RunSource(src, false)
	assert.Error(t, err)

	_, lookupErr := sess.EvalString(`b`, "script", 99)
	assert.Error(t, lookupErr, "execution must have stopped before the `set b 2` line ran")
}

func TestRunSourceAccumulatesMultilineBraceBody(t *testing.T) {
	rt := engine.New()
	sink := charsink.NewStringSink()
	sess := rt.Spawn(sink)
	defer sess.End()

	src := charsource.NewStringSource("script", "set inc [x]:{\n  x+1\n}\nr = inc 41!\n")
	_, err := sess.RunSource(src, false)
	require.NoError(t, err)

	v, err := sess.EvalString(`r`, "script", 99)
	require.NoError(t, err)
	assert.Equal(t, int64(42), v.(*value.Int).Number())
}

func TestRunInteractiveRecoversFromErrorsAndContinues(t *testing.T) {
	rt := engine.New()
	sink := charsink.NewStringSink()
	sess := rt.Spawn(sink)
	defer sess.End()

	src := charsource.NewStringSource("-", "set a 1\nunboundname\nset b 2\n")
	sess.RunInteractive(src, "", false)

	v, err := sess.EvalString(`b`, "-", 99)
	require.NoError(t, err)
	assert.Equal(t, int64(2), v.(*value.Int).Number(), "an error on one line must not stop later lines from running")
	assert.Contains(t, sink.String(), "unboundname")
}

func TestRunSourceEchoesNonNullResults(t *testing.T) {
	rt := engine.New()
	sink := charsink.NewStringSink()
	sess := rt.Spawn(sink)
	defer sess.End()

	src := charsource.NewStringSource("script", "1+1\n")
	_, err := sess.RunSource(src, true)
	require.NoError(t, err)
	assert.Contains(t, sink.String(), "2")
}
