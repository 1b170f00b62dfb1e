package value

// Closure pairs a code body with a captured environment and an ordered
// list of argument names still awaiting a binding (spec §3 "closure",
// §4.6). Binding the head of Unbound produces a new Closure that shares
// Code and the rest of Unbound but extends Env by one frame — sharing
// structure is what keeps bind O(1) regardless of how many arguments a
// closure takes.
//
// Autorun marks a closure that, once its last argument is bound, runs
// itself instead of waiting for an explicit `!`. Closure literals parsed
// from source are created with Autorun false; a brace-delimited block
// (`{ ... }`) is a Code value, not a Closure.
type Closure struct {
	Header
	Code    *Code
	Env     EnvPos
	Unbound []string
	Autorun bool
}

// NewClosure allocates a closure over code, capturing env and the given
// unbound argument names in order.
func NewClosure(l *Locals, code *Code, env EnvPos, unbound []string, autorun bool) *Closure {
	cl := &Closure{Code: code, Env: env, Unbound: unbound, Autorun: autorun}
	cl.setKind(TClosure)
	if l != nil {
		return Alloc(l, cl)
	}
	return cl
}

// Arity returns the number of arguments still unbound.
func (cl *Closure) Arity() int { return len(cl.Unbound) }

// bindOne extends cl's environment with a single new frame binding the
// head unbound name to arg, returning the resulting closure. Exported
// via the Frame.Bind method, which also handles Autorun dispatch; kept
// unexported here because binding alone, without the coroutine's
// Invoke/Eval machinery to drive autorun, isn't a complete spec
// operation.
func (cl *Closure) bindOne(l *Locals, arg Value) *Closure {
	name := cl.Unbound[0]
	rest := cl.Unbound[1:]
	frame := newIDFrameDir(name, arg)
	env := Push(cl.Env, frame, false)
	return NewClosure(l, cl.Code, env, rest, cl.Autorun)
}

// IsDiscard reports whether the head unbound name is "_", the
// conventional discard name: bind still evaluates the argument for
// side effects but establishes no binding for it.
func (cl *Closure) IsDiscard() bool {
	return len(cl.Unbound) > 0 && cl.Unbound[0] == "_"
}

// BindOne extends cl's environment with a single new frame binding the
// head unbound name to arg, returning the resulting closure. The
// coroutine/parser packages call this from their Frame.Bind
// implementation, which additionally drives autorun dispatch once a
// closure's last argument is bound — binding alone is not a complete
// spec operation without that.
func (cl *Closure) BindOne(l *Locals, arg Value) *Closure {
	return cl.bindOne(l, arg)
}

func (cl *Closure) String(root Value) string {
	if len(cl.Unbound) == 0 {
		return "<closure>"
	}
	s := "<closure"
	for _, n := range cl.Unbound {
		s += " " + n
	}
	return s + ">"
}

func printClosure(root, v Value) string { return v.(*Closure).String(root) }

// markClosure marks a closure's code body and every directory frame in
// its captured environment chain, so names a closure might still
// resolve stay reachable even after the frame that originally pushed
// them returns (spec §4.3's coroutine-root-walk only reaches live
// frames; closures escaping their defining call need their captured
// chain marked independently).
func markClosure(h *Heap, gen uint64, v Value) {
	cl := v.(*Closure)
	if cl.Code != nil {
		h.Mark(gen, cl.Code)
	}
	for n := cl.Env; n != nil; n = n.Next {
		if n.Dir != nil {
			h.Mark(gen, n.Dir)
		}
	}
}

func init() {
	TClosure.Print = printClosure
	TClosure.Mark = markClosure
}

// idFrameDir is the single-binding directory a bind operation pushes
// onto the environment chain: a minimal Directory holding exactly one
// name, so that closures with many curried arguments don't pay for a
// full hash-map frame per argument (grounded on the spec's O(1)-bind
// requirement, §4.6 invariants).
type idFrameDir struct {
	Header
	BaseDir
	name  string
	value Value
}

func newIDFrameDir(name string, value Value) *idFrameDir {
	d := &idFrameDir{name: name, value: value}
	d.setKind(TDir)
	return d
}

func (d *idFrameDir) String(root Value) string { return "<env:" + d.name + ">" }

func (d *idFrameDir) Add(name string, v Value) bool {
	if name != d.name {
		return false
	}
	d.value = v
	return true
}

func (d *idFrameDir) Lookup(name string) (Value, bool) {
	if name == d.name {
		return d.value, true
	}
	return nil, false
}

func (d *idFrameDir) Get(name string) Value {
	if v, ok := d.Lookup(name); ok {
		return v
	}
	return TheNull
}

func (d *idFrameDir) Forall(fn func(name string, v Value) bool) {
	fn(d.name, d.value)
}

func (d *idFrameDir) Count() int { return 1 }

func (d *idFrameDir) Delete(name string) bool { return false }
