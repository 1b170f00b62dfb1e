// Package ftlconfig resolves FTL's startup configuration: rc-file
// search order, environment-variable overrides, and the penv front
// end's lock-file protected environment file. Config documents are
// TOML, via the pelletier/go-toml/v2 dependency the pack's runsys-core
// example already carries for its own config loading — generalized here
// from that example's host-tooling config to FTL's rc-file format.
package ftlconfig

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/ftl-lang/ftl/charsource"
)

// Config is FTL's resolved startup configuration.
type Config struct {
	// Rcfiles lists the rc-file paths that were actually found and
	// loaded, in load order (later entries override earlier ones).
	Rcfiles []string

	// Env holds key/value pairs the rc-file(s) requested be set in the
	// process environment before any script runs.
	Env map[string]string

	// Autoload is carried for embedders; nothing in this module sets or
	// reads it, and Load's rc-file search does not depend on it.
	Autoload bool
}

type rcDocument struct {
	Env map[string]string `toml:"env"`
}

// DefaultSearchPath returns the rc-file locations cmd/ftl loads at
// startup, in search order: $FTL_RC if set, then ~/.ftlrc, then
// ./.ftlrc.
func DefaultSearchPath() []string {
	var paths []string
	if p := os.Getenv("FTL_RC"); p != "" {
		paths = append(paths, p)
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".ftlrc"))
	}
	paths = append(paths, ".ftlrc")
	return paths
}

// Load reads and merges the rc-files at paths, skipping any that don't
// exist (a missing optional rc-file is not an error; a present-but-
// malformed one is). Later paths take precedence for duplicate keys,
// matching the -r/-c command-line ordering: each flag occurrence is
// layered on top of what came before it.
func Load(paths []string) (*Config, error) {
	cfg := &Config{Env: make(map[string]string)}
	for _, raw := range paths {
		p := charsource.ExpandPath(raw)
		b, err := os.ReadFile(p)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		var doc rcDocument
		if err := toml.Unmarshal(b, &doc); err != nil {
			return nil, err
		}
		cfg.Rcfiles = append(cfg.Rcfiles, p)
		for k, v := range doc.Env {
			cfg.Env[k] = v
		}
	}
	return cfg, nil
}

// Apply sets every entry of cfg.Env into the process environment,
// without overwriting a variable the shell already set — rc-file
// defaults yield to whatever the invoking environment already
// specified.
func (cfg *Config) Apply() error {
	for k, v := range cfg.Env {
		if _, set := os.LookupEnv(k); set {
			continue
		}
		if err := os.Setenv(k, v); err != nil {
			return err
		}
	}
	return nil
}
