package builtins

import "github.com/ftl-lang/ftl/value"

// installCoroutine registers self, the one generic command touching
// spec §4.8's coroutine kind directly: scripts that want to compare,
// print, or pass around a reference to the coroutine they're running in
// (e.g. to recognize a recursive re-entry, or log which coroutine
// produced a given echo) force it with `!` like any other zero-arity
// Function.
func installCoroutine(l *value.Locals, root value.Directory) {
	regFunction(l, root, "self", nil, fnSelf)
}

func fnSelf(f value.Frame, args []value.Value) (value.Value, error) {
	return f.Self(), nil
}
