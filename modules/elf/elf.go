// Package elf implements FTL's ELF-inspection auxiliary module as the
// thin wrapper over the standard library's debug/elf that spec.md's
// Non-goals call for (SPEC_FULL.md §E: "libftl_elf.c/ftl_elf.c ...
// implemented only as a minimal thin layer") — a read-only summary
// directory, not a reimplementation of the source's own ELF parser.
package elf

import (
	stdelf "debug/elf"

	"github.com/ftl-lang/ftl/dir"
	"github.com/ftl-lang/ftl/value"
)

// Inspect opens path and returns a locked id-directory summarizing its
// ELF header and section table: class, machine, type, entry point, and
// a `sections` vector of per-section name/addr/size id-dirs.
func Inspect(l *value.Locals, path string) (value.Value, error) {
	f, err := stdelf.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	root := dir.NewIDDir(l)
	root.Add("class", value.NewFromString(l, f.Class.String()))
	root.Add("machine", value.NewFromString(l, f.Machine.String()))
	root.Add("type", value.NewFromString(l, f.Type.String()))
	root.Add("entry", value.NewInt(l, int64(f.Entry)))

	sections := dir.NewVecDir(l)
	for _, s := range f.Sections {
		sd := dir.NewIDDir(l)
		sd.Add("name", value.NewFromString(l, s.Name))
		sd.Add("addr", value.NewInt(l, int64(s.Addr)))
		sd.Add("size", value.NewInt(l, int64(s.Size)))
		sd.Lock(true)
		sections.Push(sd)
	}
	root.Add("sections", sections)
	root.Lock(true)
	return root, nil
}
