package value

import "fmt"

// MemoryOps is the capability set a host provides for a Memory region:
// read/write byte access plus ability probes (spec §3 "memory":
// "addressable byte region with read/write/ability probes; used for
// modeling target memory").
type MemoryOps interface {
	ReadAt(addr uint64, n int) ([]byte, error)
	WriteAt(addr uint64, data []byte) error
	Readable(addr uint64, n int) bool
	Writable(addr uint64, n int) bool
}

// Memory is a value wrapping a host-supplied addressable region, used by
// struct/array directories (see package dir) to model host data
// structures and, via modules/elf, target process images.
type Memory struct {
	Header
	base uint64
	size uint64
	ops  MemoryOps
	name string
}

// NewMemory wraps ops as a Memory value spanning [base, base+size).
func NewMemory(l *Locals, name string, base, size uint64, ops MemoryOps) *Memory {
	m := &Memory{base: base, size: size, ops: ops, name: name}
	m.setKind(TMemory)
	if l != nil {
		return Alloc(l, m)
	}
	return m
}

func (m *Memory) Base() uint64 { return m.base }
func (m *Memory) Size() uint64 { return m.size }

func (m *Memory) ReadAt(addr uint64, n int) ([]byte, error)  { return m.ops.ReadAt(addr, n) }
func (m *Memory) WriteAt(addr uint64, data []byte) error     { return m.ops.WriteAt(addr, data) }
func (m *Memory) Readable(addr uint64, n int) bool           { return m.ops.Readable(addr, n) }
func (m *Memory) Writable(addr uint64, n int) bool           { return m.ops.Writable(addr, n) }

func (m *Memory) String(root Value) string {
	return fmt.Sprintf("<memory %s @0x%x+0x%x>", m.name, m.base, m.size)
}

func printMemory(root, v Value) string { return v.(*Memory).String(root) }

func init() { TMemory.Print = printMemory }
