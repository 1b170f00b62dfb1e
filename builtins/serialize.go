package builtins

import (
	"github.com/ftl-lang/ftl/modules/cbor"
	"github.com/ftl-lang/ftl/modules/elf"
	"github.com/ftl-lang/ftl/modules/json"
	"github.com/ftl-lang/ftl/value"
)

// installSerialize registers the binary/text serialization commands
// built on modules/cbor, modules/json and modules/elf: dump/restore are
// this module's counterpart to spec's textual auxiliary modules, letting
// a value tree cross a process boundary as CBOR bytes; tojson/fromjson
// do the same in JSON text; elf_inspect exposes the ELF-lite inspection
// module as a generic command (SPEC_FULL.md §E).
func installSerialize(l *value.Locals, root value.Directory) {
	regFunction(l, root, "dump", []string{"v"}, fnDump)
	regFunction(l, root, "restore", []string{"bytes"}, fnRestore)
	regFunction(l, root, "tojson", []string{"v"}, fnToJSON)
	regFunction(l, root, "fromjson", []string{"text"}, fnFromJSON)
	regFunction(l, root, "elf_inspect", []string{"path"}, fnELFInspect)
}

func fnDump(f value.Frame, args []value.Value) (value.Value, error) {
	b, err := cbor.Dump(args[0])
	if err != nil {
		return nil, f.Throw(value.NewFromString(f.Locals(), err.Error()))
	}
	return value.NewCopy(f.Locals(), b), nil
}

func fnRestore(f value.Frame, args []value.Value) (value.Value, error) {
	s, ok := args[0].(*value.Str)
	if !ok {
		return nil, f.Throw(value.NewFromString(f.Locals(), "restore: argument must be a string"))
	}
	v, err := cbor.Restore(f.Locals(), s.Get())
	if err != nil {
		return nil, f.Throw(value.NewFromString(f.Locals(), err.Error()))
	}
	return v, nil
}

func fnToJSON(f value.Frame, args []value.Value) (value.Value, error) {
	text, err := json.Compact(args[0])
	if err != nil {
		return nil, f.Throw(value.NewFromString(f.Locals(), err.Error()))
	}
	return value.NewFromString(f.Locals(), text), nil
}

func fnFromJSON(f value.Frame, args []value.Value) (value.Value, error) {
	s, ok := args[0].(*value.Str)
	if !ok {
		return nil, f.Throw(value.NewFromString(f.Locals(), "fromjson: argument must be a string"))
	}
	v, err := json.Decode(f.Locals(), s.Get())
	if err != nil {
		return nil, f.Throw(value.NewFromString(f.Locals(), err.Error()))
	}
	return v, nil
}

func fnELFInspect(f value.Frame, args []value.Value) (value.Value, error) {
	s, ok := args[0].(*value.Str)
	if !ok {
		return nil, f.Throw(value.NewFromString(f.Locals(), "elf_inspect: argument must be a string"))
	}
	v, err := elf.Inspect(f.Locals(), string(s.Get()))
	if err != nil {
		return nil, f.Throw(value.NewFromString(f.Locals(), err.Error()))
	}
	return v, nil
}
