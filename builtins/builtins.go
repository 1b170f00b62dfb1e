// Package builtins implements FTL's generic command and function set —
// the commands and functions every FTL environment installs into its
// root directory before any script or interactive input runs (spec §6
// "Generic commands"). Grounded on the teacher's command-dispatch
// package (cli's command table registered by name with help text),
// generalized here from the teacher's fixed host-tool vocabulary to
// FTL's language-level primitives.
package builtins

import (
	"github.com/ftl-lang/ftl/value"
)

// Install registers every generic command and function into root,
// allocating their Command/Function values with l. Called once per
// Runtime at startup (spec §6: generic commands "are installed into the
// root directory ahead of any user code").
func Install(l *value.Locals, root value.Directory) {
	installControl(l, root)
	installVars(l, root)
	installArith(l, root)
	installIO(l, root)
	installDirOps(l, root)
	installErrors(l, root)
	installCoroutine(l, root)
	installSerialize(l, root)
}

func reg(root value.Directory, name string, v value.Value) {
	value.Unlocal(v)
	root.Add(name, v)
}

func regCommand(l *value.Locals, root value.Directory, name, help string, fn value.CommandFunc) {
	reg(root, name, value.NewCommand(l, name, help, fn))
}

func regFunction(l *value.Locals, root value.Directory, name string, params []string, fn value.NativeFunc) {
	reg(root, name, value.NewFunction(l, name, params, fn))
}

// truthy reports whether v counts as "true" in a condition: null and
// integer zero are false, everything else (including an empty string)
// is true (spec §4.4 "For integers": "zero is false, any other value is
// true").
func truthy(v value.Value) bool {
	if value.IsNull(v) {
		return false
	}
	if n, ok := v.(*value.Int); ok {
		return n.Number() != 0
	}
	return true
}

func boolInt(l *value.Locals, b bool) *value.Int {
	if b {
		return value.NewInt(l, 1)
	}
	return value.NewInt(l, 0)
}

// asDir reports whether v is a value.Directory, covering both
// dir-package shapes and the internal env/bind-frame directories.
func asDir(v value.Value) (value.Directory, bool) {
	d, ok := v.(value.Directory)
	return d, ok
}
