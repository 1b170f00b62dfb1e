package value

// EnvNode is one frame of a lexical environment stack (spec §4.5/§4.6): a
// directory plus a flag marking whether lookups must stop before
// searching past it (closures capture the chain up to and including
// their defining env-end frame, so a name free in the closure's body
// never accidentally resolves in the caller's environment). EnvNode
// values are immutable once linked — binding a new name extends the
// chain with a new node rather than mutating an existing one, which is
// what makes Bind O(1) and safe to share across closures (spec §4.6).
type EnvNode struct {
	Dir    Directory
	EnvEnd bool
	Next   *EnvNode
}

// EnvPos is an opaque position token returned by PushEnv, used to unwind
// an environment stack back to a prior point (spec: env_return) without
// the caller needing to know the chain's shape.
type EnvPos = *EnvNode

// Push extends the chain headed by top with a new frame, returning the
// new head.
func Push(top *EnvNode, dir Directory, envEnd bool) *EnvNode {
	return &EnvNode{Dir: dir, EnvEnd: envEnd, Next: top}
}

// Lookup searches the chain headed by n for name, stopping after the
// first env-end frame it has already searched (a closure's free
// variables resolve only within its own captured environment, never in
// whatever environment it's later invoked from).
func Lookup(n *EnvNode, name string) (Value, bool) {
	for cur := n; cur != nil; cur = cur.Next {
		if v, ok := cur.Dir.Lookup(name); ok {
			return v, true
		}
		if cur.EnvEnd {
			break
		}
	}
	return nil, false
}

// Define binds name in the top-most directory of the chain headed by n.
// It returns false if n is nil (no directory to bind into) or the top
// directory rejects the binding (e.g. locked).
func Define(n *EnvNode, name string, v Value) bool {
	if n == nil {
		return false
	}
	return n.Dir.Add(name, v)
}

// Assign updates the first existing binding for name found while walking
// the chain headed by n, honoring env-end stops the same way Lookup
// does. It reports whether an existing binding was found and updated.
func Assign(n *EnvNode, name string, v Value) bool {
	for cur := n; cur != nil; cur = cur.Next {
		if _, ok := cur.Dir.Lookup(name); ok {
			return cur.Dir.Add(name, v)
		}
		if cur.EnvEnd {
			break
		}
	}
	return false
}
