package builtins

import "github.com/ftl-lang/ftl/value"

// installVars registers set and unbound. set always defines name in the
// current directory (spec §6: "set name val — define in current
// directory"); it never walks up the environment stack to rebind an
// outer name the way a bare `name = expr` assignment does.
func installVars(l *value.Locals, root value.Directory) {
	regCommand(l, root, "set", "set name value: define name in the current scope", cmdSet)
	regFunction(l, root, "unbound", []string{"name"}, fnUnbound)
}

func cmdSet(f value.Frame, line *string) (value.Value, error) {
	name, ok := f.ScanName(line)
	if !ok {
		return nil, f.Errorf("set: expected a name")
	}
	v, err := f.ParseArg(line)
	if err != nil {
		return nil, err
	}
	f.Define(name, v)
	return v, nil
}

// fnUnbound reports whether name (a string) has no binding anywhere on
// the current environment stack, for scripts that want to branch on a
// variable's presence before touching it.
func fnUnbound(f value.Frame, args []value.Value) (value.Value, error) {
	s, ok := args[0].(*value.Str)
	if !ok {
		return nil, f.Errorf("unbound: expected a string")
	}
	_, found := value.Lookup(f.Env(), s.String(nil))
	return boolInt(f.Locals(), !found), nil
}
