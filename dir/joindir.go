package dir

import "github.com/ftl-lang/ftl/value"

// JoinDir overlays a list of directories as one: Lookup/Get try each
// member in order and return the first hit; Add always writes through
// to the first member (spec §5 "join directory": "presents several
// directories as one; lookups search members in order, writes go to the
// first"). Forall/Count see the union of member entries, a later
// member's entry for a name already seen in an earlier member being
// skipped so duplicates aren't double-counted.
type JoinDir struct {
	value.Header
	value.BaseDir
	members []value.Directory
}

// NewJoinDir overlays members in search order.
func NewJoinDir(l *value.Locals, members ...value.Directory) *JoinDir {
	d := &JoinDir{members: members}
	d.SetKind(value.TDir)
	if l != nil {
		return value.Alloc(l, d)
	}
	return d
}

func (d *JoinDir) String(root value.Value) string { return "<join-dir>" }

func (d *JoinDir) Add(name string, v value.Value) bool {
	if d.Locked() || len(d.members) == 0 {
		return false
	}
	return d.members[0].Add(name, v)
}

func (d *JoinDir) Lookup(name string) (value.Value, bool) {
	for _, m := range d.members {
		if v, ok := m.Lookup(name); ok {
			return v, true
		}
	}
	return nil, false
}

func (d *JoinDir) Get(name string) value.Value {
	if v, ok := d.Lookup(name); ok {
		return v
	}
	return value.TheNull
}

func (d *JoinDir) Forall(fn func(name string, v value.Value) bool) {
	seen := map[string]bool{}
	for _, m := range d.members {
		stop := false
		m.Forall(func(name string, v value.Value) bool {
			if seen[name] {
				return true
			}
			seen[name] = true
			if !fn(name, v) {
				stop = true
				return false
			}
			return true
		})
		if stop {
			return
		}
	}
}

func (d *JoinDir) Count() int {
	n := 0
	d.Forall(func(string, value.Value) bool { n++; return true })
	return n
}

func (d *JoinDir) Delete(name string) bool {
	if d.Locked() {
		return false
	}
	for _, m := range d.members {
		if _, ok := m.Lookup(name); ok {
			return m.Delete(name)
		}
	}
	return false
}
