package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ftl-lang/ftl/value"
)

// fakeHandle is a minimal value.CoroutineHandle for testing Coroutine's
// print/compare/mark dispatch without depending on the coroutine package
// (which itself depends on value).
type fakeHandle struct {
	id     string
	marked bool
}

func (h *fakeHandle) CoroutineID() string { return h.id }
func (h *fakeHandle) MarkRoots(heap *value.Heap, gen uint64) {
	h.marked = true
}

func TestCoroutineStringIncludesID(t *testing.T) {
	c := value.NewCoroutine(nil, &fakeHandle{id: "co-1"})
	assert.Contains(t, c.String(nil), "co-1")
}

func TestCoroutineCompareByID(t *testing.T) {
	a := value.NewCoroutine(nil, &fakeHandle{id: "co-1"})
	b := value.NewCoroutine(nil, &fakeHandle{id: "co-1"})
	c := value.NewCoroutine(nil, &fakeHandle{id: "co-2"})

	assert.True(t, value.Equal(a, b), "two coroutines wrapping the same ID must compare equal")
	assert.False(t, value.Equal(a, c))
}

func TestCoroutineMarkDelegatesToHandle(t *testing.T) {
	h := &fakeHandle{id: "co-1"}
	c := value.NewCoroutine(nil, h)
	heap := value.NewHeap()

	c.Kind().Mark(heap, 1, c)

	assert.True(t, h.marked, "marking a Coroutine value must delegate to its handle's MarkRoots")
}
