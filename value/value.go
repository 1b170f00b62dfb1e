// Package value implements FTL's universal value representation: the
// tagged variants (null, int, string, code, closure, environment, stream,
// command, function, handle, memory, type, IP/MAC address) and the
// mark-sweep heap that owns them.
//
// Every concrete variant embeds Header, which carries the bookkeeping the
// garbage collector needs (heap link, mark stamp, locals-list link) and the
// type descriptor used for printing, parsing, comparison and deletion.
package value

// Value is the universal datum. Identity is by address; equality is by
// type-specific Compare.
type Value interface {
	// Kind returns the value's type descriptor.
	Kind() *Type
	// String renders the value for display, consulting root for any
	// directory-relative formatting (e.g. closures printing their
	// captured environment relative to the process root).
	String(root Value) string
}

// Header is embedded by every heap-allocated value. It is not itself a
// Value; concrete variants embed it and implement Kind/String themselves.
type Header struct {
	kind *Type

	// heap bookkeeping
	self      Value // back-pointer set at allocation, used to re-enter
	                  // Mark/Kind dispatch when only the Header is at hand
	                  // (e.g. walking a locals list)
	heapNext  Value
	heapVer   uint64
	onHeap    bool

	// locals-list bookkeeping (see Locals)
	localPrev *Header
	localNext *Header
	localList *Locals
}

func (h *Header) setKind(t *Type) { h.kind = t }

// SetKind installs t as h's type descriptor. Exported for directory
// shapes defined outside this package (see package dir) that embed
// Header directly; code within this package should prefer setKind.
func (h *Header) SetKind(t *Type) { h.kind = t }

// Kind returns the value's type descriptor. Concrete types that embed
// Header and don't need custom behavior can promote this method.
func (h *Header) Kind() *Type { return h.kind }

// OnHeap reports whether this value is eligible for sweeping. Static
// singletons (Null, small int cache, true/false) are allocated with
// onHeap=false and are never freed.
func (h *Header) OnHeap() bool { return h.onHeap }

// CompareValues compares two values using their type's registered
// comparator when available, falling back to identity.
func CompareValues(a, b Value) int {
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	ka, kb := a.Kind(), b.Kind()
	if ka != kb {
		if ka.ID < kb.ID {
			return -1
		}
		return 1
	}
	if ka.Compare != nil {
		return ka.Compare(a, b)
	}
	if a == b {
		return 0
	}
	return 1
}

// Equal reports whether two values compare equal (type-first, then
// content).
func Equal(a, b Value) bool { return CompareValues(a, b) == 0 }
