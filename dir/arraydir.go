package dir

import (
	"strconv"

	"github.com/ftl-lang/ftl/value"
)

// ArrayDir is a fixed-length, fixed-stride directory over a
// value.Memory region: names are decimal indices, and each element is
// an ElemSize-byte integer at Offset + index*ElemSize (spec §5 "array
// directory": "a struct directory specialized to a single repeated
// element type, addressed by index instead of field name").
type ArrayDir struct {
	value.Header
	value.BaseDir
	l        *value.Locals
	mem      *value.Memory
	offset   uint64
	elemSize int
	signed   bool
	count    int
}

// NewArrayDir builds a directory over count elements of elemSize bytes
// (1, 2, 4 or 8) starting at offset within mem.
func NewArrayDir(l *value.Locals, mem *value.Memory, offset uint64, elemSize int, signed bool, count int) *ArrayDir {
	d := &ArrayDir{l: l, mem: mem, offset: offset, elemSize: elemSize, signed: signed, count: count}
	d.SetKind(value.TDir)
	if l != nil {
		return value.Alloc(l, d)
	}
	return d
}

func (d *ArrayDir) String(root value.Value) string { return "<array-dir>" }

func (d *ArrayDir) elemField(idx int) Field {
	return Field{Offset: d.offset + uint64(idx*d.elemSize), Size: d.elemSize, Signed: d.signed}
}

func (d *ArrayDir) Add(name string, v value.Value) bool {
	idx, ok := parseIndex(name)
	if !ok || idx >= d.count || d.Locked() {
		return false
	}
	sd := &StructDir{l: d.l, mem: d.mem}
	return sd.writeField(d.elemField(idx), v) == nil
}

func (d *ArrayDir) Lookup(name string) (value.Value, bool) {
	idx, ok := parseIndex(name)
	if !ok || idx >= d.count {
		return nil, false
	}
	sd := &StructDir{l: d.l, mem: d.mem}
	v, err := sd.readField(d.elemField(idx))
	if err != nil {
		return nil, false
	}
	return v, true
}

func (d *ArrayDir) Get(name string) value.Value {
	if v, ok := d.Lookup(name); ok {
		return v
	}
	return value.TheNull
}

func (d *ArrayDir) Forall(fn func(name string, v value.Value) bool) {
	for i := 0; i < d.count; i++ {
		name := strconv.Itoa(i)
		v, ok := d.Lookup(name)
		if !ok {
			continue
		}
		if !fn(name, v) {
			return
		}
	}
}

func (d *ArrayDir) Count() int { return d.count }

func (d *ArrayDir) Delete(name string) bool { return false }
