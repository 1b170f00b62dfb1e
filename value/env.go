package value

// EnvValue exposes a coroutine's current environment stack as an
// ordinary directory value (spec §3 "environment": "the env stack
// itself is addressable as a directory, e.g. for introspection/`env`").
// Unlike Lookup/Assign used for normal name resolution, EnvValue's
// Forall/Lookup see every frame in the chain, ignoring EnvEnd stops —
// it's a read-mostly debugging and introspection view, not the
// resolution path closures use.
type EnvValue struct {
	Header
	BaseDir
	Chain EnvPos
}

// NewEnvValue wraps chain as a directory value.
func NewEnvValue(l *Locals, chain EnvPos) *EnvValue {
	e := &EnvValue{Chain: chain}
	e.setKind(TEnv)
	if l != nil {
		return Alloc(l, e)
	}
	return e
}

func (e *EnvValue) Add(name string, v Value) bool {
	return Define(e.Chain, name, v)
}

func (e *EnvValue) Lookup(name string) (Value, bool) {
	for n := e.Chain; n != nil; n = n.Next {
		if v, ok := n.Dir.Lookup(name); ok {
			return v, true
		}
	}
	return nil, false
}

func (e *EnvValue) Get(name string) Value {
	if v, ok := e.Lookup(name); ok {
		return v
	}
	return TheNull
}

func (e *EnvValue) Forall(fn func(name string, v Value) bool) {
	seen := map[string]bool{}
	for n := e.Chain; n != nil; n = n.Next {
		stop := false
		n.Dir.Forall(func(name string, v Value) bool {
			if seen[name] {
				return true
			}
			seen[name] = true
			if !fn(name, v) {
				stop = true
				return false
			}
			return true
		})
		if stop {
			return
		}
	}
}

func (e *EnvValue) Count() int {
	n := 0
	e.Forall(func(string, Value) bool { n++; return true })
	return n
}

func (e *EnvValue) Delete(name string) bool {
	for n := e.Chain; n != nil; n = n.Next {
		if d, ok := n.Dir.(interface{ Delete(string) bool }); ok {
			if _, found := n.Dir.Lookup(name); found {
				return d.Delete(name)
			}
		}
	}
	return false
}

func (e *EnvValue) String(root Value) string { return "<environment>" }

func printEnvValue(root, v Value) string { return v.(*EnvValue).String(root) }

func init() {
	TEnv.Print = printEnvValue
	TEnv.Mark = markDirectory
}
