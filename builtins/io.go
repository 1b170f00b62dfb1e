package builtins

import "github.com/ftl-lang/ftl/value"

// installIO registers echo/print, the two generic output commands (spec
// §6 "I/O commands"): echo writes its argument's display form plus a
// newline, print writes it with no trailing newline.
func installIO(l *value.Locals, root value.Directory) {
	regFunction(l, root, "echo", []string{"v"}, fnEcho)
	regFunction(l, root, "print", []string{"v"}, fnPrint)
}

func fnEcho(f value.Frame, args []value.Value) (value.Value, error) {
	v := args[0]
	f.Echo(v.String(f.Root()) + "\n")
	return v, nil
}

func fnPrint(f value.Frame, args []value.Value) (value.Value, error) {
	v := args[0]
	f.Echo(v.String(f.Root()))
	return v, nil
}
