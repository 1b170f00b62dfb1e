package coroutine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ftl-lang/ftl/coroutine"
	"github.com/ftl-lang/ftl/dir"
	"github.com/ftl-lang/ftl/value"
)

func TestNewRegistersWithHeapAndSeedsEnv(t *testing.T) {
	heap := value.NewHeap()
	root := dir.NewIDDir(nil)
	heap.SetRoot(root)

	s := coroutine.New(heap, root)
	require.NotEmpty(t, s.ID)
	assert.NotNil(t, s.Locals)

	v, ok := value.Lookup(s.Env, "missing")
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestTwoCoroutinesGetDistinctIDs(t *testing.T) {
	heap := value.NewHeap()
	root := dir.NewIDDir(nil)
	a := coroutine.New(heap, root)
	b := coroutine.New(heap, root)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestMarkRootsWalksLocalsEnvArgsAndCaughtThrows(t *testing.T) {
	heap := value.NewHeap()
	root := dir.NewIDDir(nil)
	heap.SetRoot(root)
	s := coroutine.New(heap, root)

	local := value.NewInt(s.Locals, 7)
	envDir := dir.NewIDDir(s.Locals)
	envDir.Add("x", value.NewInt(s.Locals, 1))
	s.Env = value.Push(s.Env, envDir, false)
	s.Args = []value.Value{value.NewInt(s.Locals, 2)}

	tf := s.PushThrow()
	tf.Hit = true
	tf.Caught = value.NewInt(s.Locals, 3)

	heap.Collect()

	assert.True(t, value.Equal(value.NewInt(nil, 7), local))
	got, ok := envDir.Lookup("x")
	require.True(t, ok)
	assert.True(t, value.Equal(value.NewInt(nil, 1), got))
}

func TestPushThrowPopThrowOrder(t *testing.T) {
	heap := value.NewHeap()
	root := dir.NewIDDir(nil)
	s := coroutine.New(heap, root)

	s.PushThrow()
	s.PushThrow()
	assert.Len(t, s.Throws, 2)

	s.PopThrow()
	assert.Len(t, s.Throws, 1)
	s.PopThrow()
	assert.Len(t, s.Throws, 0)

	// Popping an already-empty chain must not panic.
	s.PopThrow()
	assert.Len(t, s.Throws, 0)
}

func TestEndUnregistersOnce(t *testing.T) {
	heap := value.NewHeap()
	root := dir.NewIDDir(nil)
	heap.SetRoot(root)
	s := coroutine.New(heap, root)

	s.End()
	// A second End must be a no-op, not a double-unregister panic/error.
	s.End()
}

func TestCoroutineIDImplementsValueCoroutineHandle(t *testing.T) {
	heap := value.NewHeap()
	root := dir.NewIDDir(nil)
	s := coroutine.New(heap, root)

	c := value.NewCoroutine(nil, s)
	assert.Contains(t, c.String(nil), s.ID)
}
