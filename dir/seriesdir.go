package dir

import (
	"strconv"

	"github.com/ftl-lang/ftl/value"
)

// SeriesDir is a read-only directory whose entries are computed on
// lookup from an arithmetic series start + step*index, rather than
// stored (spec §5 "series directory": "names are indices into an
// arithmetic sequence; entries are generated, not stored"). Count is -1
// for an unbounded series; Forall on an unbounded series stops only when
// fn returns false, so callers must bound the traversal themselves.
type SeriesDir struct {
	value.Header
	value.BaseDir
	l     *value.Locals
	start int64
	step  int64
	count int64 // -1 means unbounded
}

// NewSeriesDir allocates a series directory yielding start, start+step,
// start+2*step, ... for count entries (or forever if count < 0).
func NewSeriesDir(l *value.Locals, start, step, count int64) *SeriesDir {
	d := &SeriesDir{l: l, start: start, step: step, count: count}
	d.SetKind(value.TDir)
	d.Lock(true) // series entries are generated; Add/Delete never apply
	if l != nil {
		return value.Alloc(l, d)
	}
	return d
}

func (d *SeriesDir) String(root value.Value) string { return "<series-dir>" }

func (d *SeriesDir) Add(name string, v value.Value) bool    { return false }
func (d *SeriesDir) Delete(name string) bool                { return false }

func (d *SeriesDir) Lookup(name string) (value.Value, bool) {
	idx, ok := parseIndex(name)
	if !ok {
		return nil, false
	}
	if d.count >= 0 && int64(idx) >= d.count {
		return nil, false
	}
	n := d.start + int64(idx)*d.step
	return value.NewInt(d.l, n), true
}

func (d *SeriesDir) Get(name string) value.Value {
	if v, ok := d.Lookup(name); ok {
		return v
	}
	return value.TheNull
}

func (d *SeriesDir) Forall(fn func(name string, v value.Value) bool) {
	for i := int64(0); d.count < 0 || i < d.count; i++ {
		n := d.start + i*d.step
		if !fn(strconv.FormatInt(i, 10), value.NewInt(d.l, n)) {
			return
		}
	}
}

func (d *SeriesDir) Count() int {
	if d.count < 0 {
		return -1
	}
	return int(d.count)
}
