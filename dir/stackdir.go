package dir

import (
	"strconv"
	"sync"

	"github.com/ftl-lang/ftl/value"
)

// StackDir is a LIFO value stack exposed as a directory: Add always
// pushes, ignoring name; names used with Lookup/Get/Delete are decimal
// depths counted from the top, 0 being the most recently pushed entry
// (spec §5 "stack directory": "a push-only-by-Add directory addressed by
// depth from the top"). Distinct from value.EnvNode/EnvPos, which models
// the interpreter's own lexical environment chain — this is a
// user-visible value a script can hold, push to and pop from directly.
type StackDir struct {
	value.Header
	value.BaseDir
	mu   sync.RWMutex
	elts []value.Value // elts[len-1] is the top
}

// NewStackDir allocates an empty stack directory.
func NewStackDir(l *value.Locals) *StackDir {
	d := &StackDir{}
	d.SetKind(value.TDir)
	if l != nil {
		return value.Alloc(l, d)
	}
	return d
}

func (d *StackDir) String(root value.Value) string { return "<stack-dir>" }

// Add pushes v regardless of name (the name parameter is accepted for
// uniformity with other directory shapes but has no effect here).
func (d *StackDir) Add(name string, v value.Value) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.Locked() {
		return false
	}
	d.elts = append(d.elts, v)
	return true
}

// Pop removes and returns the top entry, reporting whether the stack
// was non-empty.
func (d *StackDir) Pop() (value.Value, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.Locked() || len(d.elts) == 0 {
		return nil, false
	}
	v := d.elts[len(d.elts)-1]
	d.elts = d.elts[:len(d.elts)-1]
	return v, true
}

// Top returns the top entry without removing it.
func (d *StackDir) Top() (value.Value, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if len(d.elts) == 0 {
		return nil, false
	}
	return d.elts[len(d.elts)-1], true
}

func (d *StackDir) Lookup(name string) (value.Value, bool) {
	depth, ok := parseIndex(name)
	if !ok {
		return nil, false
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	idx := len(d.elts) - 1 - depth
	if idx < 0 || idx >= len(d.elts) {
		return nil, false
	}
	return d.elts[idx], true
}

func (d *StackDir) Get(name string) value.Value {
	if v, ok := d.Lookup(name); ok {
		return v
	}
	return value.TheNull
}

func (d *StackDir) Forall(fn func(name string, v value.Value) bool) {
	d.mu.RLock()
	elts := append([]value.Value(nil), d.elts...)
	d.mu.RUnlock()
	for depth := 0; depth < len(elts); depth++ {
		v := elts[len(elts)-1-depth]
		if !fn(strconv.Itoa(depth), v) {
			return
		}
	}
}

func (d *StackDir) Count() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.elts)
}

// Delete only supports removing the top entry (depth 0), mirroring Pop;
// removing from the middle of a stack isn't a meaningful operation.
func (d *StackDir) Delete(name string) bool {
	if name != "0" {
		return false
	}
	_, ok := d.Pop()
	return ok
}
