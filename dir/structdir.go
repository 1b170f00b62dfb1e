package dir

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/ftl-lang/ftl/value"
)

// Field describes one named field of a struct view over host memory:
// its byte offset, width, and numeric interpretation (spec §5 "struct
// directory": "names are field names; fields are typed views over a
// host memory region at fixed offsets").
type Field struct {
	Name   string
	Offset uint64
	Size   int // 1, 2, 4 or 8 bytes
	Signed bool
}

// StructDir is a read/write directory over a value.Memory region, with
// a fixed, host-declared field layout validated against a JSON Schema
// document (grounded on the teacher's core/types jsonschema.go pattern
// of describing a typed layout as a schema document, generalized here
// from decorator parameter schemas to struct field schemas). Validating
// the field list once at construction time — rather than re-checking
// every read/write — keeps per-access cost to a plain byte-order decode.
type StructDir struct {
	value.Header
	value.BaseDir
	l      *value.Locals
	mem    *value.Memory
	fields map[string]Field
	order  []string
}

// fieldSchemaDoc is the JSON Schema shape a field-layout document must
// match: an object whose properties are field names, each itself an
// object with integer offset/size and a boolean signed flag.
const fieldSchemaDoc = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"additionalProperties": {
		"type": "object",
		"properties": {
			"offset": {"type": "integer", "minimum": 0},
			"size": {"type": "integer", "enum": [1, 2, 4, 8]},
			"signed": {"type": "boolean"}
		},
		"required": ["offset", "size"]
	}
}`

var compiledFieldSchema *jsonschema.Schema

func init() {
	c := jsonschema.NewCompiler()
	if err := c.AddResource("ftl://struct-fields.json", bytes.NewReader([]byte(fieldSchemaDoc))); err != nil {
		panic("dir: invalid struct field schema: " + err.Error())
	}
	s, err := c.Compile("ftl://struct-fields.json")
	if err != nil {
		panic("dir: struct field schema compile: " + err.Error())
	}
	compiledFieldSchema = s
}

// NewStructDir validates layout against the struct field schema, then
// builds a StructDir over mem. layout is the raw decoded JSON document
// (map[string]any) describing each field, as a host supplies it after
// parsing a type description; NewStructDirFromJSON is the convenience entry point for
// hosts that still have the raw bytes.
func NewStructDir(l *value.Locals, mem *value.Memory, layout map[string]any) (*StructDir, error) {
	if err := compiledFieldSchema.Validate(layout); err != nil {
		return nil, fmt.Errorf("dir: struct layout: %w", err)
	}
	d := &StructDir{l: l, mem: mem, fields: make(map[string]Field)}
	for name, raw := range layout {
		fm := raw.(map[string]any)
		f := Field{
			Name:   name,
			Offset: uint64(fm["offset"].(float64)),
			Size:   int(fm["size"].(float64)),
		}
		if signed, ok := fm["signed"].(bool); ok {
			f.Signed = signed
		}
		d.fields[name] = f
		d.order = append(d.order, name)
	}
	d.SetKind(value.TDir)
	if l != nil {
		return value.Alloc(l, d), nil
	}
	return d, nil
}

// NewStructDirFromJSON decodes raw as a field-layout document and builds
// a StructDir over mem.
func NewStructDirFromJSON(l *value.Locals, mem *value.Memory, raw []byte) (*StructDir, error) {
	var layout map[string]any
	if err := json.Unmarshal(raw, &layout); err != nil {
		return nil, fmt.Errorf("dir: struct layout json: %w", err)
	}
	return NewStructDir(l, mem, layout)
}

func (d *StructDir) String(root value.Value) string { return "<struct-dir>" }

func (d *StructDir) readField(f Field) (value.Value, error) {
	b, err := d.mem.ReadAt(d.mem.Base()+f.Offset, f.Size)
	if err != nil {
		return nil, err
	}
	var n int64
	switch f.Size {
	case 1:
		n = int64(b[0])
		if f.Signed && b[0]&0x80 != 0 {
			n -= 256
		}
	case 2:
		u := binary.LittleEndian.Uint16(b)
		n = int64(u)
		if f.Signed && u&0x8000 != 0 {
			n -= 1 << 16
		}
	case 4:
		u := binary.LittleEndian.Uint32(b)
		n = int64(u)
		if f.Signed && u&0x80000000 != 0 {
			n -= 1 << 32
		}
	case 8:
		n = int64(binary.LittleEndian.Uint64(b))
	}
	return value.NewInt(d.l, n), nil
}

func (d *StructDir) writeField(f Field, v value.Value) error {
	iv, ok := v.(*value.Int)
	if !ok {
		return fmt.Errorf("dir: field %s: expected int", f.Name)
	}
	n := iv.Number()
	b := make([]byte, f.Size)
	switch f.Size {
	case 1:
		b[0] = byte(n)
	case 2:
		binary.LittleEndian.PutUint16(b, uint16(n))
	case 4:
		binary.LittleEndian.PutUint32(b, uint32(n))
	case 8:
		binary.LittleEndian.PutUint64(b, uint64(n))
	}
	return d.mem.WriteAt(d.mem.Base()+f.Offset, b)
}

func (d *StructDir) Add(name string, v value.Value) bool {
	if d.Locked() {
		return false
	}
	f, ok := d.fields[name]
	if !ok {
		return false
	}
	return d.writeField(f, v) == nil
}

func (d *StructDir) Lookup(name string) (value.Value, bool) {
	f, ok := d.fields[name]
	if !ok {
		return nil, false
	}
	v, err := d.readField(f)
	if err != nil {
		return nil, false
	}
	return v, true
}

func (d *StructDir) Get(name string) value.Value {
	if v, ok := d.Lookup(name); ok {
		return v
	}
	return value.TheNull
}

func (d *StructDir) Forall(fn func(name string, v value.Value) bool) {
	for _, name := range d.order {
		v, ok := d.Lookup(name)
		if !ok {
			continue
		}
		if !fn(name, v) {
			return
		}
	}
}

func (d *StructDir) Count() int { return len(d.fields) }

// Delete never applies to a struct view: fields are fixed by the host
// layout, not added or removed by scripts.
func (d *StructDir) Delete(name string) bool { return false }
