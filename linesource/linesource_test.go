package linesource_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ftl-lang/ftl/charsource"
	"github.com/ftl-lang/ftl/linesource"
)

func newLineSource(text string) *linesource.LineSource {
	stack := &charsource.Stack{}
	stack.Push(charsource.NewStringSource("test", text))
	return linesource.New(stack)
}

func TestReadLineSplitsOnNewlineExcludingIt(t *testing.T) {
	ls := newLineSource("a\nbb\nccc")

	line, ok := ls.ReadLine()
	require.True(t, ok)
	assert.Equal(t, "a", line)

	line, ok = ls.ReadLine()
	require.True(t, ok)
	assert.Equal(t, "bb", line)

	line, ok = ls.ReadLine()
	require.True(t, ok)
	assert.Equal(t, "ccc", line, "a final line with no trailing newline is still returned")

	_, ok = ls.ReadLine()
	assert.False(t, ok)
}

func TestPushlineIsReturnedBeforeFurtherReads(t *testing.T) {
	ls := newLineSource("real")
	ls.Pushline("pushed")

	line, ok := ls.ReadLine()
	require.True(t, ok)
	assert.Equal(t, "pushed", line)

	line, ok = ls.ReadLine()
	require.True(t, ok)
	assert.Equal(t, "real", line)
}

func TestPushlineIsLIFO(t *testing.T) {
	ls := newLineSource("")
	ls.Pushline("first")
	ls.Pushline("second")

	line, _ := ls.ReadLine()
	assert.Equal(t, "second", line, "the most recently pushed line comes back first")
	line, _ = ls.ReadLine()
	assert.Equal(t, "first", line)
}

func TestSaveRestoreUndoesPushline(t *testing.T) {
	ls := newLineSource("tail")
	ls.Pushline("before-mark")
	mark := ls.Save()

	ls.Pushline("after-mark")
	ls.Restore(mark)

	line, ok := ls.ReadLine()
	require.True(t, ok)
	assert.Equal(t, "before-mark", line, "Restore must discard pushes made after the mark")

	line, ok = ls.ReadLine()
	require.True(t, ok)
	assert.Equal(t, "tail", line)
}

func TestNameAndLineReflectUnderlyingStack(t *testing.T) {
	ls := newLineSource("a\nb")
	assert.Equal(t, "test", ls.Name())
	assert.Equal(t, 1, ls.Line())

	ls.ReadLine()
	assert.Equal(t, 2, ls.Line())
}
