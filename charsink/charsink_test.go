package charsink_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ftl-lang/ftl/charsink"
)

func TestStringSinkAccumulates(t *testing.T) {
	s := charsink.NewStringSink()
	require.NoError(t, s.WriteByte('a'))
	n, err := s.WriteString("bc")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "abc", s.String())
}

func TestFixedBufSinkStopsAtCapacity(t *testing.T) {
	buf := make([]byte, 4)
	s := charsink.NewFixedBufSink(buf)

	n, err := s.WriteString("abc")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	require.NoError(t, s.WriteByte('d'))
	assert.Equal(t, []byte("abcd"), s.Bytes())

	_, err = s.WriteString("e")
	assert.ErrorIs(t, err, charsink.ErrFull)
}

func TestFileSinkCreateWriteFlush(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	s, err := charsink.Create(path)
	require.NoError(t, err)

	_, err = s.WriteString("hello")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))
}
