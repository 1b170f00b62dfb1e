package value

import "sync"

// RootSource is implemented by anything the collector must treat as a GC
// root beyond the process root directory — in practice, each coroutine
// (spec §4.3: "For every known coroutine, every value on its locals list
// and its environment stack"). The coroutine package registers its
// *State values with the Heap via Heap.Register so this package need not
// import coroutine (which would create an import cycle).
type RootSource interface {
	// MarkRoots is called once per collection; it must call h.Mark on
	// every value the source holds that should survive.
	MarkRoots(h *Heap, gen uint64)
}

// Heap is the global singly-linked list of all heap-allocated values,
// plus the monotonic generation counter used to mark-and-sweep them
// (spec §4.3).
type Heap struct {
	mu      sync.Mutex
	head    Value
	version uint64
	roots   []RootSource
	pinned  []Value // always-marked singletons (true/false/zero/one, Null)
	root    Value   // the process root directory, always a mark root (spec: "Root")
}

// NewHeap creates an empty heap.
func NewHeap() *Heap {
	return &Heap{}
}

// SetRoot installs the process root directory as a permanent GC root.
func (h *Heap) SetRoot(root Value) { h.root = root }

// Root returns the process root directory, or nil if none has been set.
func (h *Heap) Root() Value { return h.root }

// Pin marks v as always reachable, independent of any container (used for
// singleton values like Null, the small-int cache, and true/false).
func (h *Heap) Pin(v Value) { h.pinned = append(h.pinned, v) }

// Register adds src as an additional GC root source (a coroutine).
func (h *Heap) Register(src RootSource) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.roots = append(h.roots, src)
}

// Unregister removes src from the root-source list (a coroutine that has
// been freed no longer needs its locals/env walked).
func (h *Heap) Unregister(src RootSource) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i, r := range h.roots {
		if r == src {
			h.roots = append(h.roots[:i], h.roots[i+1:]...)
			return
		}
	}
}

// track links a freshly allocated value onto the heap list. Called once,
// by Alloc, at allocation time.
func (h *Heap) track(v Value, onHeap bool) {
	hdr := headerOf(v)
	hdr.self = v
	hdr.onHeap = onHeap
	h.mu.Lock()
	hdr.heapNext = h.head
	h.head = v
	h.mu.Unlock()
}

// headerOf extracts the embedded *Header from any Value. All concrete
// variants embed Header directly, so this type assertion never fails for
// values produced by this package.
func headerOf(v Value) *Header {
	type hasHeader interface{ header() *Header }
	if hh, ok := v.(hasHeader); ok {
		return hh.header()
	}
	panic("value: type does not embed Header")
}

func (h *Header) header() *Header { return h }

// Mark stamps v (and, transitively, everything v's type's Mark function
// reaches) with the current generation. Safe to call multiple times per
// generation; a value already stamped with gen is not re-walked.
func (h *Heap) Mark(gen uint64, v Value) {
	if v == nil {
		return
	}
	hdr := headerOf(v)
	if hdr.heapVer == gen {
		return
	}
	hdr.heapVer = gen
	if k := v.Kind(); k != nil && k.Mark != nil {
		k.Mark(h, gen, v)
	}
}

// Collect runs one mark-sweep cycle (spec §4.3). It marks from the
// process root, every pinned singleton, and every registered coroutine's
// roots, then sweeps the heap list, deleting (via each value's onDelete
// hook, see deleteValue) any on-heap value not marked this generation.
func (h *Heap) Collect() {
	h.mu.Lock()
	h.version++
	gen := h.version
	roots := append([]RootSource(nil), h.roots...)
	pinned := append([]Value(nil), h.pinned...)
	root := h.root
	h.mu.Unlock()

	h.Mark(gen, root)
	for _, p := range pinned {
		h.Mark(gen, p)
	}
	for _, rs := range roots {
		rs.MarkRoots(h, gen)
	}

	h.sweep(gen)
}

// sweep unlinks and deletes every on-heap value not stamped with gen.
func (h *Heap) sweep(gen uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	var newHead Value
	var tail *Header
	for cur := h.head; cur != nil; {
		hdr := headerOf(cur)
		next := hdr.heapNext
		if hdr.onHeap && hdr.heapVer != gen {
			deleteValue(cur)
		} else {
			hdr.heapNext = nil
			if tail == nil {
				newHead = cur
			} else {
				tail.heapNext = cur
			}
			tail = hdr
		}
		cur = next
	}
	h.head = newHead
}

// deleteValue invokes the type-specific delete hook, if any, via a small
// interface so individual variants can release non-GC resources (closing
// a stream's underlying fd, for instance).
type deletable interface{ onDelete() }

func deleteValue(v Value) {
	if d, ok := v.(deletable); ok {
		d.onDelete()
	}
}

// Generation returns the current mark-version counter, mainly useful for
// tests asserting a collection actually ran.
func (h *Heap) Generation() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.version
}
