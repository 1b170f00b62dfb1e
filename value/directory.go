package value

// Directory is the uniform associative-container interface every FTL
// "directory" shape implements (spec §3 "directory", §5): id-maps,
// vectors, series, host-memory struct/array views, joins, stacks and the
// dynamic environment-lookup directory all satisfy it, so generic
// commands (set/get/forall/count/...) never need to know which concrete
// shape they're operating on. Concrete shapes live in package dir; the
// interface lives here because EnvValue (env.go) is a directory itself
// and is needed by the core value/coroutine layer.
type Directory interface {
	Value

	// Add binds name to v, returning false if the directory is locked or
	// name is not a shape it accepts (e.g. a vector directory rejects
	// non-numeric names).
	Add(name string, v Value) bool
	// Lookup resolves name, reporting whether it was found.
	Lookup(name string) (Value, bool)
	// Get is Lookup without the found flag; unbound names yield Null.
	Get(name string) Value
	// Forall calls fn once per entry in directory-defined order, halting
	// early if fn returns false.
	Forall(fn func(name string, v Value) bool)
	// Count returns the number of entries.
	Count() int

	// Locked reports whether Add/Delete are currently rejected.
	Locked() bool
	// Lock sets or clears the directory's locked flag and returns the
	// previous value.
	Lock(locked bool) bool

	// Delete removes name, reporting whether it was present. Directories
	// that don't support deletion (e.g. a struct view over fixed host
	// fields) always return false.
	Delete(name string) bool
}

// BaseDir implements the Locked/Lock bookkeeping shared by every
// directory shape, so concrete shapes only need to embed it.
type BaseDir struct {
	locked bool
}

func (d *BaseDir) Locked() bool { return d.locked }

func (d *BaseDir) Lock(locked bool) bool {
	prev := d.locked
	d.locked = locked
	return prev
}

// markDirectory is TDir's Mark function: every concrete directory shape
// (package dir's id-map, vector, series, ... plus this package's
// idFrameDir and EnvValue) shares TDir as its Kind, so one Forall-based
// walk covers all of them without a type switch per shape.
func markDirectory(h *Heap, gen uint64, v Value) {
	d := v.(Directory)
	d.Forall(func(_ string, entry Value) bool {
		h.Mark(gen, entry)
		return true
	})
}

func init() { TDir.Mark = markDirectory }
