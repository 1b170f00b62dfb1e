package value

// CoroutineHandle is the slice of coroutine.State behavior needed to make
// a coroutine reachable as an ordinary first-class Value (spec §4.8: "a
// coroutine is itself a value of kind coroutine, referenceable like any
// other"). It embeds RootSource since a live coroutine is always a GC
// root in its own right; CoroutineID gives the wrapping Coroutine value
// something stable to print and compare on. Defined here, rather than
// holding a *coroutine.State directly, so this package has no dependency
// on the coroutine package (which itself depends on value).
type CoroutineHandle interface {
	RootSource
	CoroutineID() string
}

// Coroutine is a first-class handle to a running (or finished) coroutine,
// letting script code pass a coroutine around, compare it for identity,
// and print it — spec §4.8's "coroutine" kind. It carries no scheduling
// logic of its own; it only wraps the CoroutineHandle the coroutine
// package constructs.
type Coroutine struct {
	Header
	Handle CoroutineHandle
}

// NewCoroutine wraps h as a first-class Value. l may be nil for a
// process-lifetime coroutine handle (the root coroutine), matching the
// nil-Locals convention every other NewXxx constructor follows.
func NewCoroutine(l *Locals, h CoroutineHandle) *Coroutine {
	c := &Coroutine{Handle: h}
	c.setKind(TCoroutine)
	if l != nil {
		return Alloc(l, c)
	}
	return c
}

func (c *Coroutine) String(root Value) string {
	return "<coroutine " + c.Handle.CoroutineID() + ">"
}

func printCoroutine(root, v Value) string { return v.(*Coroutine).String(root) }

// compareCoroutine orders two coroutines by ID, matching spec §3's
// "compared for equality by identity" for reference kinds: two Coroutine
// values are equal only when they wrap the same underlying handle's ID.
func compareCoroutine(a, b Value) int {
	ac, bc := a.(*Coroutine), b.(*Coroutine)
	switch {
	case ac.Handle.CoroutineID() == bc.Handle.CoroutineID():
		return 0
	case ac.Handle.CoroutineID() < bc.Handle.CoroutineID():
		return -1
	default:
		return 1
	}
}

// markCoroutine delegates to the wrapped handle's own MarkRoots, so a
// coroutine reached as an ordinary value (stored in a directory, bound as
// a closure argument, etc.) keeps its own locals and environment stack
// alive exactly as it would if only reachable via Heap.Register.
func markCoroutine(h *Heap, gen uint64, v Value) {
	c := v.(*Coroutine)
	c.Handle.MarkRoots(h, gen)
}

func init() {
	TCoroutine.Print = printCoroutine
	TCoroutine.Compare = compareCoroutine
	TCoroutine.Mark = markCoroutine
}
