package charsource_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ftl-lang/ftl/charsource"
)

func TestStringSourceReadByteAndLine(t *testing.T) {
	s := charsource.NewStringSource("test", "ab\ncd")
	assert.Equal(t, 1, s.Line())

	b, ok := s.ReadByte()
	require.True(t, ok)
	assert.Equal(t, byte('a'), b)

	b, ok = s.ReadByte()
	require.True(t, ok)
	assert.Equal(t, byte('b'), b)

	b, ok = s.ReadByte()
	require.True(t, ok)
	assert.Equal(t, byte('\n'), b)
	assert.Equal(t, 2, s.Line())

	_, ok = s.ReadByte() // 'c'
	require.True(t, ok)
	_, ok = s.ReadByte() // 'd'
	require.True(t, ok)

	_, ok = s.ReadByte()
	assert.False(t, ok, "EOF past the end of the string")
}

func TestStringSourceUnread(t *testing.T) {
	s := charsource.NewStringSource("test", "ab")
	b, _ := s.ReadByte()
	assert.Equal(t, byte('a'), b)
	s.Unread()
	b, _ = s.ReadByte()
	assert.Equal(t, byte('a'), b, "unread must make the same byte available again")
}

func TestStringSourceName(t *testing.T) {
	s := charsource.NewStringSource("myname", "x")
	assert.Equal(t, "myname", s.Name())
}

func TestReaderSourceReadsThroughIOReader(t *testing.T) {
	s := charsource.NewReaderSource("-", strings.NewReader("xy\nz"))
	var got []byte
	for {
		b, ok := s.ReadByte()
		if !ok {
			break
		}
		got = append(got, b)
	}
	assert.Equal(t, "xy\nz", string(got))
}

func TestStackPopsExhaustedSourceAutomatically(t *testing.T) {
	stack := &charsource.Stack{}
	stack.Push(charsource.NewStringSource("outer", "AB"))
	stack.Push(charsource.NewStringSource("inner", "xy"))
	assert.Equal(t, 2, stack.Depth())

	var got []byte
	for {
		b, ok := stack.ReadByte()
		if !ok {
			break
		}
		got = append(got, b)
	}
	// inner drains first, then the stack transparently falls back to
	// outer (spec §4.2's nested-include behavior).
	assert.Equal(t, "xyAB", string(got))
	assert.Equal(t, 0, stack.Depth())
}

func TestStackNameLineReflectTop(t *testing.T) {
	stack := &charsource.Stack{}
	assert.Equal(t, "", stack.Name())
	assert.Equal(t, 0, stack.Line())

	stack.Push(charsource.NewStringSource("f", "a\nb"))
	assert.Equal(t, "f", stack.Name())
	assert.Equal(t, 1, stack.Line())
}
