package value

// NativeFunc is a host-implemented function body: given the frame it's
// running in and its fully-bound arguments in declaration order, it
// returns a result or an error (spec §3 "function": "a native,
// host-implemented callable with fixed arity, bound and invoked the same
// way a closure is"). Grounded on the teacher's core/sdk registry of
// Go-native command handlers (cobra.Command.RunE), generalized here to
// fixed-arity expression-level functions rather than CLI subcommands.
type NativeFunc func(f Frame, args []Value) (Value, error)

// Function is a fixed-arity native callable. Like Closure it carries an
// ordered list of still-unbound parameter names so the same bind/invoke
// protocol (and hence the same `!` and partial application rules) apply
// to both user closures and builtins. They differ on autorun: a Function
// runs as soon as its last argument is bound, while a Closure runs then
// only if its Autorun flag is set.
type Function struct {
	Header
	Name    string
	Unbound []string
	Bound   []Value
	Native  NativeFunc
}

// NewFunction registers a native function value named name, taking
// params (in order) before Native can run.
func NewFunction(l *Locals, name string, params []string, fn NativeFunc) *Function {
	f := &Function{Name: name, Unbound: params, Native: fn}
	f.setKind(TFunction)
	if l != nil {
		return Alloc(l, f)
	}
	return f
}

// Arity returns the number of arguments still unbound.
func (f *Function) Arity() int { return len(f.Unbound) }

// IsDiscard reports whether the head unbound name is "_".
func (f *Function) IsDiscard() bool {
	return len(f.Unbound) > 0 && f.Unbound[0] == "_"
}

// BindOne returns a new Function with arg appended to Bound and the head
// parameter name consumed from Unbound. When the result's Arity is 0,
// the coroutine/parser Frame.Bind implementation invokes Native
// immediately with Bound.
func (f *Function) BindOne(l *Locals, arg Value) *Function {
	bound := append(append([]Value{}, f.Bound...), arg)
	nf := &Function{Name: f.Name, Unbound: f.Unbound[1:], Bound: bound, Native: f.Native}
	nf.setKind(TFunction)
	if l != nil {
		return Alloc(l, nf)
	}
	return nf
}

func (f *Function) String(root Value) string {
	s := "<function " + f.Name
	for _, n := range f.Unbound {
		s += " " + n
	}
	return s + ">"
}

func printFunction(root, v Value) string { return v.(*Function).String(root) }

func markFunction(h *Heap, gen uint64, v Value) {
	f := v.(*Function)
	for _, b := range f.Bound {
		h.Mark(gen, b)
	}
}

func init() {
	TFunction.Print = printFunction
	TFunction.Mark = markFunction
}
