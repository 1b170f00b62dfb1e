package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ftl-lang/ftl/charsink"
	"github.com/ftl-lang/ftl/engine"
	"github.com/ftl-lang/ftl/value"
)

// newSession builds a fresh engine.Runtime + Session, mirroring what
// cmd/ftl does before running a script, for driving spec.md §8's
// end-to-end scenarios one statement sequence at a time.
func newSession(t *testing.T) (*engine.Session, *charsink.StringSink) {
	t.Helper()
	rt := engine.New()
	sink := charsink.NewStringSink()
	sess := rt.Spawn(sink)
	t.Cleanup(sess.End)
	return sess, sink
}

// Scenario 1: set a 3; set b 4; a+b -> 7.
func TestScenarioArithmetic(t *testing.T) {
	sess, _ := newSession(t)
	v, err := sess.EvalString(`set a 3; set b 4; a+b`, "test", 1)
	require.NoError(t, err)
	i, ok := v.(*value.Int)
	require.True(t, ok, "expected *value.Int, got %T", v)
	assert.Equal(t, int64(7), i.Number())
}

// Scenario 2: set inc [x]:{x+1}; inc 41! -> 42.
func TestScenarioClosureForce(t *testing.T) {
	sess, _ := newSession(t)
	v, err := sess.EvalString(`set inc [x]:{x+1}; inc 41!`, "test", 1)
	require.NoError(t, err)
	i, ok := v.(*value.Int)
	require.True(t, ok, "expected *value.Int, got %T", v)
	assert.Equal(t, int64(42), i.Number())
}

// Scenario 3: set d [k=1, l=2]; d.k + d.l -> 3; len d! -> 2.
func TestScenarioIDDirAccess(t *testing.T) {
	sess, _ := newSession(t)
	v, err := sess.EvalString(`set d [k=1, l=2]; d.k + d.l`, "test", 1)
	require.NoError(t, err)
	i, ok := v.(*value.Int)
	require.True(t, ok, "expected *value.Int, got %T", v)
	assert.Equal(t, int64(3), i.Number())

	v, err = sess.EvalString(`len d!`, "test", 2)
	require.NoError(t, err)
	i, ok = v.(*value.Int)
	require.True(t, ok, "expected *value.Int, got %T", v)
	assert.Equal(t, int64(2), i.Number())
}

// Scenario 4: set v <10,20,30>; v.1 -> 20; forall iteration yields
// (0,10),(1,20),(2,30) in order.
func TestScenarioVectorAccessAndIteration(t *testing.T) {
	sess, _ := newSession(t)
	v, err := sess.EvalString(`set v <10,20,30>; v.1`, "test", 1)
	require.NoError(t, err)
	i, ok := v.(*value.Int)
	require.True(t, ok, "expected *value.Int, got %T", v)
	assert.Equal(t, int64(20), i.Number())

	// acc accumulates "" + 10 + 20 + 30 in iteration order: only
	// (0,10),(1,20),(2,30) in that order produces "102030".
	_, err = sess.EvalString(`set acc ""; forall v [k,x]:{acc = acc + x}`, "test", 2)
	require.NoError(t, err)
	v, err = sess.EvalString(`acc`, "test", 3)
	require.NoError(t, err)
	s, ok := v.(*value.Str)
	require.True(t, ok, "expected *value.Str, got %T", v)
	assert.Equal(t, "102030", s.String(nil))
}

// Scenario 5: catch {throw "bad"} [x]:{"caught:"+x}! -> "caught:bad".
func TestScenarioCatchThrow(t *testing.T) {
	sess, _ := newSession(t)
	v, err := sess.EvalString(`catch {throw "bad"} [x]:{"caught:"+x}!`, "test", 1)
	require.NoError(t, err)
	s, ok := v.(*value.Str)
	require.True(t, ok, "expected *value.Str, got %T", v)
	assert.Equal(t, "caught:bad", s.String(nil))
}

// Scenario 6: set s "hello"; collect; s -> still "hello" across a GC
// cycle, since s remains reachable from the current environment.
func TestScenarioSurvivesCollectAcrossStatements(t *testing.T) {
	sess, _ := newSession(t)
	_, err := sess.EvalString(`set s "hello"`, "test", 1)
	require.NoError(t, err)
	_, err = sess.EvalString(`collect`, "test", 2)
	require.NoError(t, err)
	v, err := sess.EvalString(`s`, "test", 3)
	require.NoError(t, err)
	s, ok := v.(*value.Str)
	require.True(t, ok, "expected *value.Str, got %T", v)
	assert.Equal(t, "hello", s.String(nil))
}
