package builtins

import "github.com/ftl-lang/ftl/value"

// installErrors registers throw and collect (spec §4.9 "throw/catch",
// §4.3 "Collection"). throw is a Function (its argument is evaluated
// normally — it's the unwind that's special, not the argument), unlike
// catch in control.go which must control whether its body even runs.
func installErrors(l *value.Locals, root value.Directory) {
	regFunction(l, root, "throw", []string{"v"}, fnThrow)
	regFunction(l, root, "collect", nil, fnCollect)
}

func fnThrow(f value.Frame, args []value.Value) (value.Value, error) {
	return nil, f.Throw(args[0])
}

func fnCollect(f value.Frame, args []value.Value) (value.Value, error) {
	f.Collect()
	return value.TheNull, nil
}
