package value

// Locals is a per-coroutine list of freshly allocated values that are not
// yet reachable from any rooted container (spec §3 "Lifecycles", §4.3
// "Locals protocol"). Each coroutine owns exactly one Locals list; the
// coroutine package's State embeds *Locals and registers itself with the
// Heap as a RootSource so collection walks it.
type Locals struct {
	heap *Heap
	head *Header
}

// NewLocals creates an empty locals list bound to heap. heap is used by
// Alloc to track new values on the global heap list as well as this
// locals chain.
func NewLocals(heap *Heap) *Locals {
	return &Locals{heap: heap}
}

// Alloc allocates a new on-heap value, installs it at the head of this
// locals list, and links it onto the global heap list (spec
// value_malloc_newl). The caller is responsible for calling Unlocal once
// the value has been placed in a rooted container.
func Alloc[T Value](l *Locals, v T) T {
	hdr := headerOf(Value(v))
	hdr.localList = l
	hdr.localPrev = nil
	hdr.localNext = l.head
	if l.head != nil {
		l.head.localPrev = hdr
	}
	l.head = hdr
	l.heap.track(Value(v), true)
	return v
}

// AllocStatic installs a static/global value that is never subject to
// sweeping (on_heap flag clear) and is not placed on any locals list —
// used for singletons like Null and the small-int cache.
func AllocStatic(heap *Heap, v Value) {
	heap.track(v, false)
}

// Unlocal removes v from its locals list in O(1); this is the standard
// commitment point after v has been placed into a rooted container. It is
// always safe to call, including on a value that is not (or no longer)
// local — failing to call it merely delays collection.
func Unlocal(v Value) {
	hdr := headerOf(v)
	if hdr.localList == nil {
		return
	}
	l := hdr.localList
	if hdr.localPrev != nil {
		hdr.localPrev.localNext = hdr.localNext
	} else if l.head == hdr {
		l.head = hdr.localNext
	}
	if hdr.localNext != nil {
		hdr.localNext.localPrev = hdr.localPrev
	}
	hdr.localList = nil
	hdr.localPrev = nil
	hdr.localNext = nil
}

// IsLocal reports whether v is still on a locals list.
func IsLocal(v Value) bool { return headerOf(v).localList != nil }

// MarkAll marks every value currently on l, for use by a coroutine's
// RootSource.MarkRoots implementation.
func (l *Locals) MarkAll(h *Heap, gen uint64) {
	for hdr := l.head; hdr != nil; hdr = hdr.localNext {
		h.Mark(gen, hdr.self)
	}
}
