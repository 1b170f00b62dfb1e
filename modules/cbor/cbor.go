// Package cbor implements FTL's binary dump/restore module: the same
// tree-shaped encode/decode modules/json performs, but to CBOR rather
// than text — the natural binary counterpart to the source's
// libftl_json.c/libftl_xml.c text modules (SPEC_FULL.md §B). Wired to
// the `dump`/`restore` generic commands (builtins/serialize.go), which
// extends spec §4.10's commands-vs-functions model to a binary
// serialization pair.
package cbor

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/ftl-lang/ftl/dir"
	"github.com/ftl-lang/ftl/value"
)

// Dump serializes v into CBOR bytes via this package's own
// toPlain/dirToPlain walk, which mirrors the plain-Go-value-tree
// conversion modules/json.Encode performs for text; the two differ in
// the encoding library at the end.
func Dump(v value.Value) ([]byte, error) {
	plain, err := toPlain(v)
	if err != nil {
		return nil, err
	}
	return cbor.Marshal(plain)
}

func toPlain(v value.Value) (any, error) {
	switch t := v.(type) {
	case *value.Null:
		return nil, nil
	case *value.Int:
		return t.Number(), nil
	case *value.Real:
		return t.Number(), nil
	case *value.Str:
		return t.String(nil), nil
	case value.Directory:
		return dirToPlain(t)
	default:
		return nil, fmt.Errorf("modules/cbor: cannot dump a %s value", v.Kind().Name)
	}
}

func dirToPlain(d value.Directory) (any, error) {
	if _, ok := d.(*dir.VecDir); ok {
		arr := []any{}
		var err error
		d.Forall(func(_ string, v value.Value) bool {
			var e any
			if e, err = toPlain(v); err != nil {
				return false
			}
			arr = append(arr, e)
			return true
		})
		if err != nil {
			return nil, err
		}
		return arr, nil
	}
	obj := map[string]any{}
	var err error
	d.Forall(func(name string, v value.Value) bool {
		var e any
		if e, err = toPlain(v); err != nil {
			return false
		}
		obj[name] = e
		return true
	})
	if err != nil {
		return nil, err
	}
	return obj, nil
}

// Restore parses CBOR-encoded data back into a value tree — the
// counterpart a `restore` builtin calls on bytes a prior `dump` produced
// (round-trippable per spec §8's "parse(print(v))=v" family of
// properties, applied to this module's own wire format).
func Restore(l *value.Locals, data []byte) (value.Value, error) {
	var raw any
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return fromPlain(l, raw), nil
}

func fromPlain(l *value.Locals, raw any) value.Value {
	switch t := raw.(type) {
	case nil:
		return value.TheNull
	case int64:
		return value.NewInt(l, t)
	case uint64:
		return value.NewInt(l, int64(t))
	case float64:
		return value.NewReal(l, t)
	case string:
		return value.NewFromString(l, t)
	case []byte:
		return value.NewCopy(l, t)
	case []any:
		vd := dir.NewVecDir(l)
		for _, e := range t {
			vd.Push(fromPlain(l, e))
		}
		return vd
	case map[any]any:
		idd := dir.NewIDDir(l)
		for k, v := range t {
			if ks, ok := k.(string); ok {
				idd.Add(ks, fromPlain(l, v))
			}
		}
		return idd
	case map[string]any:
		idd := dir.NewIDDir(l)
		for k, v := range t {
			idd.Add(k, fromPlain(l, v))
		}
		return idd
	default:
		return value.TheNull
	}
}
