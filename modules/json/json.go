// Package json implements FTL's JSON auxiliary module: encoding a value
// tree to JSON text and decoding JSON text back into one (spec §1's
// auxiliary "libftl_json.c" module), plus the %j/%J printf verbs
// (spec §4.11's worked example of a module-registered formatter).
// Grounded on the teacher's planfmt package, which performs the same
// "walk a tree of interpreter values, produce a generic Go value tree,
// hand it to encoding/json" shape for its own IR, generalized here from
// Opal's plan/IR nodes to FTL's value.Value kinds.
package json

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/ftl-lang/ftl/dir"
	"github.com/ftl-lang/ftl/printf"
	"github.com/ftl-lang/ftl/value"
)

// Encode converts v into a plain Go value tree (map[string]any, []any,
// string, int64, float64, nil) that encoding/json can marshal directly.
// Directories are the only composite shape: a *dir.VecDir becomes a JSON
// array, every other Directory becomes a JSON object keyed by its field
// names. A value with no sensible JSON representation (a closure, a
// stream, a type descriptor) is an error rather than a silent fallback
// to its display string, so a round-trip failure is visible immediately.
func Encode(v value.Value) (any, error) {
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
		return encodeDir(t)
	default:
		return nil, fmt.Errorf("modules/json: cannot encode a %s value", v.Kind().Name)
	}
}

func encodeDir(d value.Directory) (any, error) {
	if _, ok := d.(*dir.VecDir); ok {
		arr := []any{}
		var err error
		d.Forall(func(_ string, v value.Value) bool {
			var e any
			if e, err = Encode(v); err != nil {
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
		if e, err = Encode(v); err != nil {
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

// Decode parses JSON text into a value tree rooted at either a
// dir.VecDir (JSON array), a dir.IDDir (JSON object), or a scalar
// (spec's counterpart operation to Encode: a module's decode side is
// implied by the source's bidirectional libftl_json.c).
func Decode(l *value.Locals, data []byte) (value.Value, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return decodeValue(l, raw), nil
}

func decodeValue(l *value.Locals, raw any) value.Value {
	switch t := raw.(type) {
	case nil:
		return value.TheNull
	case bool:
		if t {
			return value.NewInt(l, 1)
		}
		return value.NewInt(l, 0)
	case float64:
		if i := int64(t); float64(i) == t {
			return value.NewInt(l, i)
		}
		return value.NewReal(l, t)
	case string:
		return value.NewFromString(l, t)
	case []any:
		vd := dir.NewVecDir(l)
		for _, e := range t {
			vd.Push(decodeValue(l, e))
		}
		return vd
	case map[string]any:
		idd := dir.NewIDDir(l)
		for k, v := range t {
			idd.Add(k, decodeValue(l, v))
		}
		return idd
	default:
		return value.TheNull
	}
}

// Compact renders v as single-line JSON — the %j printf verb.
func Compact(v value.Value) (string, error) {
	e, err := Encode(v)
	if err != nil {
		return "", err
	}
	b, err := json.Marshal(e)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Pretty renders v as two-space-indented JSON — the %J printf verb.
func Pretty(v value.Value) (string, error) {
	e, err := Encode(v)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(e); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

func init() {
	printf.Register(printf.Verb{
		Letter: 'j',
		Help:   "compact JSON encoding of a value",
		Format: func(root, v value.Value) (string, error) { return Compact(v) },
	})
	printf.Register(printf.Verb{
		Letter: 'J',
		Help:   "pretty-printed JSON encoding of a value",
		Format: func(root, v value.Value) (string, error) { return Pretty(v) },
	})
}
