// Command ftl is FTL's primary front end: a REPL and script runner over
// the engine/parser/value machinery (spec §6 "CLI surface"). Grounded on
// the teacher's cli/main.go — one cobra root command, persistent flags,
// a deferred exit-code decision so no defer is skipped by an early
// os.Exit — generalized from Opal's plan/resolve/dry-run surface to
// FTL's `-c/-f/-r/-e/-q/--` surface.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ftl-lang/ftl/charsink"
	"github.com/ftl-lang/ftl/charsource"
	"github.com/ftl-lang/ftl/dir"
	"github.com/ftl-lang/ftl/engine"
	"github.com/ftl-lang/ftl/ftlconfig"
	"github.com/ftl-lang/ftl/value"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	var (
		cmds   string
		file   string
		seed   string
		echo   bool
		noEcho bool
		quiet  bool
	)

	root := &cobra.Command{
		Use:           "ftl [-- script args...]",
		Short:         "Run FTL scripts, or start an interactive session",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, scriptArgs []string) error {
			want := echo
			if noEcho {
				want = false
			}
			return runFTL(cmds, file, seed, want, quiet, scriptArgs)
		},
	}
	root.Flags().StringVarP(&cmds, "command", "c", "", "run CMDS, then exit")
	root.Flags().StringVarP(&file, "file", "f", "", "run FILE, then exit")
	root.Flags().StringVarP(&seed, "rcfile", "r", "", "run SEED first, as initialization commands")
	root.Flags().BoolVarP(&echo, "echo", "e", true, "echo each statement's result")
	root.Flags().BoolVar(&noEcho, "ne", false, "suppress echoing statement results")
	root.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress the interactive prompt")
	root.SetArgs(argv)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ftl:", err)
		return 1
	}
	return 0
}

// runFTL drives one session through the fixed resolution order
// SPEC_FULL.md §D fixes from the original's collapsed ordering: -r seed,
// then -c commands, then -f file, then (if neither -c nor -f was given)
// the REPL.
func runFTL(cmds, file, seed string, echo, quiet bool, scriptArgs []string) error {
	rt := engine.New()
	rcfg, err := ftlconfig.Load(ftlconfig.DefaultSearchPath())
	if err != nil {
		return fmt.Errorf("loading rc config: %w", err)
	}
	if err := rcfg.Apply(); err != nil {
		return fmt.Errorf("applying rc config: %w", err)
	}

	installArgs(rt, scriptArgs)

	sess := rt.Spawn(charsink.Wrap(os.Stdout))
	defer sess.End()

	if seed != "" {
		src, err := charsource.Open(seed)
		if err != nil {
			return fmt.Errorf("opening -r seed %q: %w", seed, err)
		}
		if _, err := sess.RunSource(src, echo); err != nil {
			return err
		}
	}

	ranExplicit := false
	if cmds != "" {
		if _, err := sess.RunSource(charsource.NewStringSource("-c", cmds), echo); err != nil {
			return err
		}
		ranExplicit = true
	}
	if file != "" {
		src, err := charsource.Open(file)
		if err != nil {
			return fmt.Errorf("opening %q: %w", file, err)
		}
		if _, err := sess.RunSource(src, echo); err != nil {
			return err
		}
		ranExplicit = true
	}
	if !ranExplicit {
		prompt := ""
		if !quiet {
			prompt = "ftl> "
		}
		sess.RunInteractive(charsource.NewReaderSource("-", os.Stdin), prompt, echo)
	}
	return nil
}

// installArgs exposes scriptArgs (everything after `--`) to the script
// as the root-level `args` vector (spec §6: "Script arguments follow --
// and are exposed to the script as a vector").
func installArgs(rt *engine.Runtime, scriptArgs []string) {
	vec := dir.NewVecDir(nil)
	for _, a := range scriptArgs {
		vec.Push(value.NewFromString(nil, a))
	}
	value.Unlocal(vec)
	rt.Root.Add("args", vec)
}
