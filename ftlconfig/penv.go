package ftlconfig

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// maxEnvLineLen mirrors penv.c's fixed-size line buffer (spec §6
// "Persistent env file format": "lines exceeding an implementation
// limit (~256 bytes) are rejected").
const maxEnvLineLen = 256

// EnvFile is the penv front end's persisted environment file — one
// binding per line as `key value\n` (spec §6: "key SP value NL"; keys
// and values forbid newline, keys forbid space) — guarded by a sibling
// ".lock" file so two penv invocations never interleave writes. There is
// no flock wrapper anywhere in the example pack, so the lock is the same
// mkdir/O_EXCL-style advisory lock the teacher's registry code uses in
// memory (BaseDir.Lock), reapplied here at the filesystem level with
// os.OpenFile(O_CREATE|O_EXCL) standing in for the mutex.
type EnvFile struct {
	Path     string
	lockPath string
}

// Open returns an EnvFile handle for path without touching the file.
func Open(path string) *EnvFile {
	return &EnvFile{Path: path, lockPath: path + ".lock"}
}

// Lock acquires the exclusive lock file, failing fast if another penv
// process already holds it rather than blocking — a stuck lock should
// surface immediately, not hang the invoking shell.
func (ef *EnvFile) Lock() error {
	f, err := os.OpenFile(ef.lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("ftlconfig: %s is locked by another penv process", ef.Path)
		}
		return err
	}
	return f.Close()
}

// Unlock releases a lock previously taken with Lock.
func (ef *EnvFile) Unlock() error {
	err := os.Remove(ef.lockPath)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Load parses the env file's `key value` lines into a map. A missing
// file is treated as empty, matching Config.Load's rc-file behavior. A
// line longer than maxEnvLineLen is rejected, matching penv.c's
// fixed-size read buffer.
func (ef *EnvFile) Load() (map[string]string, error) {
	b, err := os.ReadFile(ef.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	vars := make(map[string]string)
	for _, line := range strings.Split(string(b), "\n") {
		if line == "" {
			continue
		}
		if len(line) > maxEnvLineLen {
			return nil, fmt.Errorf("ftlconfig: %s: line exceeds %d bytes", ef.Path, maxEnvLineLen)
		}
		k, v, ok := strings.Cut(line, " ")
		if !ok {
			continue
		}
		vars[k] = v
	}
	return vars, nil
}

// Save writes vars back to the env file as `key value` lines, one per
// binding, sorted for a stable diff between runs.
func (ef *EnvFile) Save(vars map[string]string) error {
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		line := fmt.Sprintf("%s %s\n", k, vars[k])
		if len(line) > maxEnvLineLen+1 {
			return fmt.Errorf("ftlconfig: %s: %q exceeds %d bytes", ef.Path, k, maxEnvLineLen)
		}
		b.WriteString(line)
	}
	return os.WriteFile(ef.Path, []byte(b.String()), 0o644)
}

// Set acquires the lock, loads, applies fn, saves, and unlocks — the
// single read-modify-write cycle every penv mutating subcommand (set,
// unset) performs.
func (ef *EnvFile) Set(fn func(vars map[string]string)) error {
	if err := ef.Lock(); err != nil {
		return err
	}
	defer ef.Unlock()

	vars, err := ef.Load()
	if err != nil {
		return err
	}
	fn(vars)
	return ef.Save(vars)
}
