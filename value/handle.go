package value

import "fmt"

// HandleType describes a family of opaque host handles (spec §3
// "handle"), grounded on the teacher's `core/sdk/secret/handle.go`
// pattern of a typed, closeable opaque reference with a registry of
// known handle kinds.
type HandleType struct {
	Name  string
	Close func(ptr any) error
}

// Handle is an opaque pointer with a close function, typed by a
// registered HandleType — used to model host resources (file
// descriptors, ELF images, SSH sessions) the script can hold and
// explicitly release but never dereference directly.
type Handle struct {
	Header
	typ    *HandleType
	ptr    any
	closed bool
}

// NewHandle wraps ptr as a handle of the given type.
func NewHandle(l *Locals, typ *HandleType, ptr any) *Handle {
	h := &Handle{typ: typ, ptr: ptr}
	h.setKind(THandle)
	if l != nil {
		return Alloc(l, h)
	}
	return h
}

// Ptr returns the wrapped opaque pointer, or nil if the handle has been
// closed.
func (h *Handle) Ptr() any {
	if h.closed {
		return nil
	}
	return h.ptr
}

// Close releases the handle's underlying resource via its type's Close
// hook. Close is idempotent.
func (h *Handle) Close() error {
	if h.closed {
		return nil
	}
	h.closed = true
	if h.typ != nil && h.typ.Close != nil {
		return h.typ.Close(h.ptr)
	}
	return nil
}

// onDelete lets the GC release the underlying resource if the script
// never explicitly closed the handle.
func (h *Handle) onDelete() { _ = h.Close() }

func (h *Handle) String(root Value) string {
	name := "handle"
	if h.typ != nil {
		name = h.typ.Name
	}
	if h.closed {
		return fmt.Sprintf("<%s:closed>", name)
	}
	return fmt.Sprintf("<%s:%p>", name, h.ptr)
}

func printHandle(root, v Value) string { return v.(*Handle).String(root) }

func init() { THandle.Print = printHandle }
