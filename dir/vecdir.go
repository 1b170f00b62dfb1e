package dir

import (
	"strconv"
	"sync"

	"github.com/ftl-lang/ftl/value"
)

// VecDir is a zero-indexed, growable vector directory: names must parse
// as non-negative decimal integers. Add at an index equal to the current
// length appends; Add at any larger index is rejected (returns false)
// and the vector does not grow.
type VecDir struct {
	value.Header
	value.BaseDir
	mu   sync.RWMutex
	elts []value.Value
}

// NewVecDir allocates an empty vector directory.
func NewVecDir(l *value.Locals) *VecDir {
	d := &VecDir{}
	d.SetKind(value.TDir)
	if l != nil {
		return value.Alloc(l, d)
	}
	return d
}

func (d *VecDir) String(root value.Value) string { return "<vector-dir>" }

func parseIndex(name string) (int, bool) {
	n, err := strconv.Atoi(name)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func (d *VecDir) Add(name string, v value.Value) bool {
	idx, ok := parseIndex(name)
	if !ok {
		return false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.Locked() {
		return false
	}
	switch {
	case idx < len(d.elts):
		d.elts[idx] = v
	case idx == len(d.elts):
		d.elts = append(d.elts, v)
	default:
		return false
	}
	return true
}

// Push appends v at the end, returning its new index — the vector
// equivalent of an id directory's free-form Add, used by the `push`
// generic command (spec §5's "appending" case without a caller-supplied
// index).
func (d *VecDir) Push(v value.Value) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.elts = append(d.elts, v)
	return len(d.elts) - 1
}

func (d *VecDir) Lookup(name string) (value.Value, bool) {
	idx, ok := parseIndex(name)
	if !ok {
		return nil, false
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	if idx < 0 || idx >= len(d.elts) {
		return nil, false
	}
	return d.elts[idx], true
}

func (d *VecDir) Get(name string) value.Value {
	if v, ok := d.Lookup(name); ok {
		return v
	}
	return value.TheNull
}

func (d *VecDir) Forall(fn func(name string, v value.Value) bool) {
	d.mu.RLock()
	elts := append([]value.Value(nil), d.elts...)
	d.mu.RUnlock()
	for i, v := range elts {
		if !fn(strconv.Itoa(i), v) {
			return
		}
	}
}

func (d *VecDir) Count() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.elts)
}

// Delete on a vector directory only ever succeeds for the last element
// (removing a middle element would renumber everything after it, which
// spec §5 does not define); callers wanting arbitrary removal should use
// an id directory instead.
func (d *VecDir) Delete(name string) bool {
	idx, ok := parseIndex(name)
	if !ok {
		return false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.Locked() || idx != len(d.elts)-1 {
		return false
	}
	d.elts = d.elts[:idx]
	return true
}
