package dir

import "github.com/ftl-lang/ftl/value"

// DynDir is a directory whose entries are computed by invoking
// user-level getter/setter callables rather than stored (spec §5 "dyn
// directory": "lookups and assignments run a bound closure instead of
// reading/writing storage"). Invoking a callable needs a value.Frame
// (heap, environment, evaluator) that the plain value.Directory
// interface has no way to supply, so the generic Lookup/Add here never
// run user code — only the frame-aware entry points Resolve and Assign
// do, and a caller has to call them explicitly; the parser's name
// resolution uses the generic Directory methods for every shape,
// *DynDir included.
//
// Per the decision recorded for this directory shape: looking up a name
// through the plain Directory interface (as Forall/Count, or any caller
// without a Frame, must) always misses, since there is no storage to
// enumerate; a DynDir with no Getter supports neither. Setting through
// Add without a Setter configured silently reports failure rather than
// erroring, matching how every other directory shape reports a rejected
// write (Add returning false), so callers don't need a special case for
// this one shape.
type DynDir struct {
	value.Header
	value.BaseDir
	Getter value.Value // *value.Closure or *value.Function, arity 1 (name)
	Setter value.Value // arity 2 (name, value), or nil if read-only
}

// NewDynDir builds a dyn directory from a getter and optional setter
// callable.
func NewDynDir(l *value.Locals, getter, setter value.Value) *DynDir {
	d := &DynDir{Getter: getter, Setter: setter}
	d.SetKind(value.TDir)
	if l != nil {
		return value.Alloc(l, d)
	}
	return d
}

func (d *DynDir) String(root value.Value) string { return "<dyn-dir>" }

// Resolve invokes Getter(name) through f, reporting whether the getter
// produced a non-null result.
func (d *DynDir) Resolve(f value.Frame, name string) (value.Value, bool) {
	if d.Getter == nil {
		return nil, false
	}
	v, ok, err := invokeWith(f, d.Getter, value.NewFromString(f.Locals(), name))
	if err != nil || !ok || value.IsNull(v) {
		return nil, false
	}
	return v, true
}

// Assign invokes Setter(name, v) through f, reporting whether it ran
// and returned non-null (spec's convention for a dyn-dir write
// succeeding).
func (d *DynDir) Assign(f value.Frame, name string, v value.Value) bool {
	if d.Setter == nil {
		return false
	}
	result, ok, err := invokeWith(f, d.Setter, value.NewFromString(f.Locals(), name), v)
	return err == nil && ok && !value.IsNull(result)
}

// invokeWith binds args onto callable in order via f.Bind, then invokes
// the fully-bound result via f.Invoke.
func invokeWith(f value.Frame, callable value.Value, args ...value.Value) (value.Value, bool, error) {
	cur := callable
	var err error
	for _, a := range args {
		cur, err = f.Bind(cur, a)
		if err != nil {
			return nil, false, err
		}
	}
	return f.Invoke(cur)
}

// The plain Directory interface never sees a live entry: Lookup always
// misses and Add always reports rejection, so a DynDir used by code that
// doesn't know about Resolve/Assign degrades to an always-empty,
// always-locked directory instead of silently doing the wrong thing.
func (d *DynDir) Add(name string, v value.Value) bool          { return false }
func (d *DynDir) Lookup(name string) (value.Value, bool)       { return nil, false }
func (d *DynDir) Get(name string) value.Value                  { return value.TheNull }
func (d *DynDir) Forall(fn func(name string, v value.Value) bool) {}
func (d *DynDir) Count() int                                    { return 0 }
func (d *DynDir) Delete(name string) bool                       { return false }
