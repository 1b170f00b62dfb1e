package dir

import (
	"os"
	"strings"

	"github.com/ftl-lang/ftl/value"
)

// SysEnvDir exposes the host process environment as a directory (spec
// §5 "system environment directory": "names are OS environment variable
// names; Add sets the process environment for the lifetime of the
// interpreter"). There is exactly one process environment, so unlike the
// other shapes this one has no backing storage of its own — every
// operation delegates straight to os.Getenv/Setenv/Unsetenv.
type SysEnvDir struct {
	value.Header
	value.BaseDir
	l *value.Locals
}

// NewSysEnvDir wraps the process environment as a directory value.
func NewSysEnvDir(l *value.Locals) *SysEnvDir {
	d := &SysEnvDir{l: l}
	d.SetKind(value.TDir)
	if l != nil {
		return value.Alloc(l, d)
	}
	return d
}

func (d *SysEnvDir) String(root value.Value) string { return "<sysenv-dir>" }

func (d *SysEnvDir) Add(name string, v value.Value) bool {
	if d.Locked() {
		return false
	}
	s, ok := asString(v)
	if !ok {
		return false
	}
	return os.Setenv(name, s) == nil
}

func (d *SysEnvDir) Lookup(name string) (value.Value, bool) {
	s, ok := os.LookupEnv(name)
	if !ok {
		return nil, false
	}
	return value.NewFromString(d.l, s), true
}

func (d *SysEnvDir) Get(name string) value.Value {
	if v, ok := d.Lookup(name); ok {
		return v
	}
	return value.TheNull
}

func (d *SysEnvDir) Forall(fn func(name string, v value.Value) bool) {
	for _, kv := range os.Environ() {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		if !fn(parts[0], value.NewFromString(d.l, parts[1])) {
			return
		}
	}
}

func (d *SysEnvDir) Count() int { return len(os.Environ()) }

func (d *SysEnvDir) Delete(name string) bool {
	if d.Locked() {
		return false
	}
	if _, ok := os.LookupEnv(name); !ok {
		return false
	}
	return os.Unsetenv(name) == nil
}

func asString(v value.Value) (string, bool) {
	s, ok := v.(*value.Str)
	if !ok {
		return "", false
	}
	return s.String(nil), true
}
