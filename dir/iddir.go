// Package dir implements FTL's concrete directory shapes: the id-map
// (this file), vector, series, host-environment, struct/array-over-memory,
// join and dynamic variants, all satisfying value.Directory (spec §3
// "directory", §5). Package value itself holds only the two directory
// shapes the core interpreter needs internally (the per-argument bind
// frame and the environment-stack view); every directory a script can
// construct or a host can install lives here.
package dir

import (
	"sort"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/ftl-lang/ftl/value"
)

// IDDir is a general-purpose name-to-value directory backed by a hash
// map (spec §5 "id directory": "the default directory shape; any string
// is a valid name"). Grounded on the teacher's core/types Registry
// pattern (mutex-guarded map, register/lookup by string key).
type IDDir struct {
	value.Header
	value.BaseDir
	mu      sync.RWMutex
	entries map[string]value.Value
	order   []string
}

// NewIDDir allocates an empty id directory.
func NewIDDir(l *value.Locals) *IDDir {
	d := &IDDir{entries: make(map[string]value.Value)}
	d.SetKind(value.TDir)
	if l != nil {
		return value.Alloc(l, d)
	}
	return d
}

func (d *IDDir) String(root value.Value) string { return "<id-dir>" }

func (d *IDDir) Add(name string, v value.Value) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.Locked() {
		return false
	}
	if _, exists := d.entries[name]; !exists {
		d.order = append(d.order, name)
	}
	d.entries[name] = v
	return true
}

func (d *IDDir) Lookup(name string) (value.Value, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	v, ok := d.entries[name]
	return v, ok
}

func (d *IDDir) Get(name string) value.Value {
	if v, ok := d.Lookup(name); ok {
		return v
	}
	return value.TheNull
}

func (d *IDDir) Forall(fn func(name string, v value.Value) bool) {
	d.mu.RLock()
	order := append([]string(nil), d.order...)
	d.mu.RUnlock()
	for _, name := range order {
		d.mu.RLock()
		v, ok := d.entries[name]
		d.mu.RUnlock()
		if !ok {
			continue
		}
		if !fn(name, v) {
			return
		}
	}
}

func (d *IDDir) Count() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.entries)
}

func (d *IDDir) Delete(name string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.Locked() {
		return false
	}
	if _, ok := d.entries[name]; !ok {
		return false
	}
	delete(d.entries, name)
	for i, n := range d.order {
		if n == name {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	return true
}

// Suggest returns the closest known name to name, for "did you mean"
// diagnostics on a failed lookup (the parser's unbound-name error), using fuzzy
// string ranking rather than a flat edit-distance cutoff so near-miss
// typos on long identifiers still match. Returns "" if nothing is close
// enough to be worth suggesting.
func (d *IDDir) Suggest(name string) string {
	d.mu.RLock()
	candidates := append([]string(nil), d.order...)
	d.mu.RUnlock()
	ranks := fuzzy.RankFindNormalizedFold(name, candidates)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}
