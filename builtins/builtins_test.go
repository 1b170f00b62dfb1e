package builtins_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ftl-lang/ftl/charsink"
	"github.com/ftl-lang/ftl/engine"
	"github.com/ftl-lang/ftl/value"
)

func newSession(t *testing.T) (*engine.Session, *charsink.StringSink) {
	t.Helper()
	rt := engine.New()
	sink := charsink.NewStringSink()
	sess := rt.Spawn(sink)
	t.Cleanup(sess.End)
	return sess, sink
}

func evalInt(t *testing.T, sess *engine.Session, src string) int64 {
	t.Helper()
	v, err := sess.EvalString(src, "test", 1)
	require.NoError(t, err)
	i, ok := v.(*value.Int)
	require.True(t, ok, "expected *value.Int, got %T (%v)", v, v)
	return i.Number()
}

func TestIfTakesTrueBranch(t *testing.T) {
	sess, _ := newSession(t)
	assert.Equal(t, int64(1), evalInt(t, sess, `if 1 {1} {2}`))
	assert.Equal(t, int64(2), evalInt(t, sess, `if 0 {1} {2}`))
}

func TestWhileAccumulates(t *testing.T) {
	sess, _ := newSession(t)
	assert.Equal(t, int64(10), evalInt(t, sess, `set i 0; set acc 0; while {lt i 5} {acc = acc + 2; i = i + 1}; acc`))
}

func TestSetDefinesInCurrentScope(t *testing.T) {
	sess, _ := newSession(t)
	v, err := sess.EvalString(`set x 5; x`, "test", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(5), v.(*value.Int).Number())
}

func TestUnboundReportsMissingName(t *testing.T) {
	sess, _ := newSession(t)
	v, err := sess.EvalString(`unbound "nosuch"`, "test", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.(*value.Int).Number())

	_, err = sess.EvalString(`set nosuch 1`, "test", 2)
	require.NoError(t, err)
	v, err = sess.EvalString(`unbound "nosuch"`, "test", 3)
	require.NoError(t, err)
	assert.Equal(t, int64(0), v.(*value.Int).Number())
}

// TestArithDivisionByZeroReportsError: div/mod by zero report a plain Go
// error through Errorf rather than an FTL throw — this is the process-wide
// error-counter path spec §7 describes, not the value-level throw/catch
// mechanism `catch` guards against, so it propagates out of EvalString
// rather than being interceptable by `catch`.
func TestArithDivisionByZeroReportsError(t *testing.T) {
	sess, _ := newSession(t)
	_, err := sess.EvalString(`div 1 0`, "test", 1)
	assert.Error(t, err)
}

func TestDirOpsLenPushLock(t *testing.T) {
	sess, _ := newSession(t)
	assert.Equal(t, int64(0), evalInt(t, sess, `set v vector!; len v!`))
	assert.Equal(t, int64(0), evalInt(t, sess, `push v 10!`))
	assert.Equal(t, int64(1), evalInt(t, sess, `push v 20!`))
	assert.Equal(t, int64(2), evalInt(t, sess, `len v!`))

	assert.Equal(t, int64(0), evalInt(t, sess, `islocked v!`))
	_, err := sess.EvalString(`lock v!`, "test", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), evalInt(t, sess, `islocked v!`))
}

func TestDictBuiltinBuildsIDDir(t *testing.T) {
	sess, _ := newSession(t)
	v, err := sess.EvalString(`set d dict!; len d!`, "test", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), v.(*value.Int).Number())
}

func TestThrowAndCollectGenericCommands(t *testing.T) {
	sess, _ := newSession(t)
	v, err := sess.EvalString(`catch {throw "boom"} [e]:{e}!`, "test", 1)
	require.NoError(t, err)
	assert.Equal(t, "boom", v.(*value.Str).String(nil))

	_, err = sess.EvalString(`collect`, "test", 2)
	require.NoError(t, err)
}

func TestSelfReturnsCoroutineValue(t *testing.T) {
	sess, _ := newSession(t)
	v, err := sess.EvalString(`self!`, "test", 1)
	require.NoError(t, err)
	_, ok := v.(*value.Coroutine)
	require.True(t, ok, "expected *value.Coroutine, got %T", v)

	// self is stable across two evaluations within the same coroutine.
	v2, err := sess.EvalString(`self!`, "test", 2)
	require.NoError(t, err)
	assert.True(t, value.Equal(v, v2))
}

func TestDumpRestoreRoundTrip(t *testing.T) {
	sess, _ := newSession(t)
	v, err := sess.EvalString(`set d [a=1, b=2]; bytes = dump d!; restore bytes!`, "test", 1)
	require.NoError(t, err)
	d, ok := v.(value.Directory)
	require.True(t, ok, "expected a directory, got %T", v)
	assert.Equal(t, int64(1), d.Get("a").(*value.Int).Number())
	assert.Equal(t, int64(2), d.Get("b").(*value.Int).Number())
}

func TestToJSONFromJSONRoundTrip(t *testing.T) {
	sess, _ := newSession(t)
	v, err := sess.EvalString(`set d [a=1, b="x"]; text = tojson d!; fromjson text!`, "test", 1)
	require.NoError(t, err)
	d, ok := v.(value.Directory)
	require.True(t, ok, "expected a directory, got %T", v)
	assert.Equal(t, int64(1), d.Get("a").(*value.Int).Number())
	assert.Equal(t, "x", d.Get("b").(*value.Str).String(nil))
}

func TestELFInspectOnMissingFileThrows(t *testing.T) {
	sess, _ := newSession(t)
	v, err := sess.EvalString(`catch {elf_inspect "/no/such/file"} [e]:{"caught"}!`, "test", 1)
	require.NoError(t, err)
	assert.Equal(t, "caught", v.(*value.Str).String(nil))
}
