package value

import "sync"

// TypeID uniquely identifies a registered type. IDs are assigned in
// registration order starting at 1; 0 means "no type" / unset.
type TypeID int

// PrintFn renders a value for display.
type PrintFn func(root, v Value) string

// ParseFn parses a value of this type from the front of *line, returning
// the parsed value and advancing *line past it, or (nil, false) if the
// input does not start with a value of this type.
type ParseFn func(line *string) (Value, bool)

// CompareFn compares two values already known to share this type.
type CompareFn func(a, b Value) int

// MarkFn is invoked by the collector on every value reached during a mark
// pass; it must call Heap.Mark on every Value this value references
// (directory entries, closure code/env/unbound list, a stream's
// underlying source/sink, etc).
type MarkFn func(h *Heap, gen uint64, v Value)

// Type is itself a Value: type descriptors are registered with a
// process-wide registry and may be cloned with overridden behavior (spec
// §3 "Type descriptor").
type Type struct {
	Header
	ID      TypeID
	Name    string
	Print   PrintFn
	Parse   ParseFn
	Compare CompareFn
	Mark    MarkFn
}

func (t *Type) String(root Value) string { return "<type " + t.Name + ">" }

// Registry is a process-wide table of registered types, mirroring the
// decorator registry pattern the teacher uses for its command/value
// decorators (mutex-guarded map, register-by-name, lookup-by-name).
type Registry struct {
	mu    sync.RWMutex
	byID  map[TypeID]*Type
	byName map[string]*Type
	next  TypeID
}

// globalTypes is the process-wide type registry; spec §3 describes types
// as registered with a "process-wide registry".
var globalTypes = &Registry{
	byID:   make(map[TypeID]*Type),
	byName: make(map[string]*Type),
}

// TType is the type-of-types: every *Type's own Kind() is TType. It is
// built by hand, ahead of Register, since Register stamps new types with
// a kind that must already exist.
var TType = func() *Type {
	t := &Type{ID: 0, Name: "type"}
	t.setKind(t)
	globalTypes.byID[0] = t
	globalTypes.byName["type"] = t
	return t
}()

// Register installs a new type descriptor, assigning it the next TypeID.
// name must be unique; Register panics on a duplicate, since duplicate
// built-in type names indicate a programming error, not a runtime
// condition a host or script can recover from.
func Register(name string, print PrintFn, parse ParseFn, cmp CompareFn, mark MarkFn) *Type {
	globalTypes.mu.Lock()
	defer globalTypes.mu.Unlock()
	if _, exists := globalTypes.byName[name]; exists {
		panic("value: duplicate type name " + name)
	}
	globalTypes.next++
	t := &Type{ID: globalTypes.next, Name: name, Print: print, Parse: parse, Compare: cmp, Mark: mark}
	t.setKind(TType)
	t.onHeap = false
	globalTypes.byID[t.ID] = t
	globalTypes.byName[name] = t
	return t
}

// Clone registers a new type that behaves like base except where overridden
// (spec §3: "new types may be cloned with overridden behavior").
func Clone(base *Type, name string, print PrintFn, parse ParseFn, cmp CompareFn, mark MarkFn) *Type {
	if print == nil {
		print = base.Print
	}
	if parse == nil {
		parse = base.Parse
	}
	if cmp == nil {
		cmp = base.Compare
	}
	if mark == nil {
		mark = base.Mark
	}
	return Register(name, print, parse, cmp, mark)
}

// LookupType finds a registered type by name.
func LookupType(name string) (*Type, bool) {
	globalTypes.mu.RLock()
	defer globalTypes.mu.RUnlock()
	t, ok := globalTypes.byName[name]
	return t, ok
}

// Built-in type descriptors. Declared as package-level vars (not inside an
// init func) so the Go compiler's dependency-based initialization order
// guarantees they exist before any variant file's own init() runs to fill
// in Print/Parse/Compare/Mark, regardless of file name ordering.
var (
	TNull      = Register("null", nil, nil, nil, nil)
	TInt       = Register("int", nil, nil, nil, nil)
	TReal      = Register("real", nil, nil, nil, nil)
	TString    = Register("string", nil, nil, nil, nil)
	TCode      = Register("code", nil, nil, nil, nil)
	TClosure   = Register("closure", nil, nil, nil, nil)
	TEnv       = Register("env", nil, nil, nil, nil)
	TStream    = Register("stream", nil, nil, nil, nil)
	TCommand   = Register("command", nil, nil, nil, nil)
	TFunction  = Register("function", nil, nil, nil, nil)
	TCoroutine = Register("coroutine", nil, nil, nil, nil)
	THandle    = Register("handle", nil, nil, nil, nil)
	TMemory    = Register("memory", nil, nil, nil, nil)
	TIPAddr    = Register("ipaddr", nil, nil, nil, nil)
	TMACAddr   = Register("macaddr", nil, nil, nil, nil)
	TDir       = Register("directory", nil, nil, nil, nil)
)
