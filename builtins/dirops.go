package builtins

import (
	"github.com/ftl-lang/ftl/dir"
	"github.com/ftl-lang/ftl/value"
)

// installDirOps registers the directory-manipulation functions (spec §5
// "Directory operations"): len, push, delete, lock, islocked.
func installDirOps(l *value.Locals, root value.Directory) {
	regFunction(l, root, "len", []string{"d"}, fnLen)
	regFunction(l, root, "push", []string{"d", "v"}, fnPush)
	regFunction(l, root, "delete", []string{"d", "name"}, fnDelete)
	regFunction(l, root, "lock", []string{"d"}, fnLock)
	regFunction(l, root, "islocked", []string{"d"}, fnIsLocked)
	regFunction(l, root, "vector", nil, fnVector)
	regFunction(l, root, "dict", nil, fnDict)
}

func fnLen(f value.Frame, args []value.Value) (value.Value, error) {
	d, ok := asDir(args[0])
	if !ok {
		return nil, f.Errorf("len: expected a directory")
	}
	return value.NewInt(f.Locals(), int64(d.Count())), nil
}

func fnPush(f value.Frame, args []value.Value) (value.Value, error) {
	vd, ok := args[0].(*dir.VecDir)
	if !ok {
		return nil, f.Errorf("push: expected a vector directory")
	}
	idx := vd.Push(args[1])
	return value.NewInt(f.Locals(), int64(idx)), nil
}

func fnDelete(f value.Frame, args []value.Value) (value.Value, error) {
	d, ok := asDir(args[0])
	if !ok {
		return nil, f.Errorf("delete: expected a directory")
	}
	name, ok := args[1].(*value.Str)
	if !ok {
		return nil, f.Errorf("delete: expected a string name")
	}
	return boolInt(f.Locals(), d.Delete(name.String(nil))), nil
}

func fnLock(f value.Frame, args []value.Value) (value.Value, error) {
	d, ok := asDir(args[0])
	if !ok {
		return nil, f.Errorf("lock: expected a directory")
	}
	d.Lock(true)
	return args[0], nil
}

func fnIsLocked(f value.Frame, args []value.Value) (value.Value, error) {
	d, ok := asDir(args[0])
	if !ok {
		return nil, f.Errorf("islocked: expected a directory")
	}
	return boolInt(f.Locals(), d.Locked()), nil
}

// fnVector and fnDict give scripts a way to construct an empty directory
// of the common shapes without the literal syntax, for building one up
// programmatically (e.g. inside a loop).
func fnVector(f value.Frame, args []value.Value) (value.Value, error) {
	return dir.NewVecDir(f.Locals()), nil
}

func fnDict(f value.Frame, args []value.Value) (value.Value, error) {
	return dir.NewIDDir(f.Locals()), nil
}
