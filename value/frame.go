package value

// Frame is the slice of coroutine/parser-state behavior (spec §4.8) that
// native Command and Function implementations, and the generic commands
// package, need. It is defined here — rather than passing a concrete
// *coroutine.State or *parser.Parser — so this package has no dependency
// on the coroutine or parser packages, which both depend on value.
// coroutine.State is a pure data holder (environment stack, locals,
// throw-frame chain); parser.Parser embeds it and is the sole
// implementer of Frame, since only the parser package needs both value
// and coroutine and can supply the grammar-driven Eval/Bind/Invoke/Catch
// logic itself. This indirection is the Go translation of the spec's
// tightly coupled "Parser" and "Parser state" components, which in the C
// original share a translation unit and can call each other directly.
type Frame interface {
	// Locals returns the coroutine's locals list, for allocating values
	// that will be rooted through this frame's environment or return
	// value.
	Locals() *Locals

	// Root returns the process root directory.
	Root() Value

	// Arg returns the n-th argument currently bound for the running
	// native function (builtin_arg).
	Arg(n int) Value
	// ArgCount returns how many arguments are bound for the running
	// native function.
	ArgCount() int

	// Lookup resolves name against the current environment stack,
	// returning Null if unbound (spec §7 kind 3).
	Lookup(name string) Value
	// Define binds name to v in the top-most directory of the current
	// environment stack ("set").
	Define(name string, v Value)
	// Assign updates an existing binding for name, searching the
	// environment stack top to bottom; it is a no-op if name is unbound
	// or bound in a locked directory.
	Assign(name string, v Value) bool

	// PushEnv prepends dir as a new frame on the environment stack,
	// returning the stack's new head as a position token usable with
	// ReturnEnv.
	PushEnv(dir Directory, envEnd bool) EnvPos
	// ReturnEnv restores the environment stack to the state recorded by
	// pos (spec: env_return).
	ReturnEnv(pos EnvPos)
	// Env returns the current environment stack head.
	Env() EnvPos

	// Bind consumes one unbound argument slot of callable (a *Closure or
	// *Function) and returns the resulting, still-possibly-partial
	// callable (spec §4.6). If binding the last argument of an autorun
	// closure, Bind also runs it and returns its result instead of a
	// closure.
	Bind(callable Value, arg Value) (Value, error)
	// Invoke runs a fully-bound (zero unbound-argument) *Closure or
	// *Function and returns its result, or the thrown value with
	// ok=false if a throw unwound out of it uncaught by any frame it
	// established.
	Invoke(callable Value) (result Value, ok bool, err error)
	// Eval parses and evaluates code's body as a sequence of statements
	// in the current environment, returning the last statement's value.
	Eval(code *Code) (Value, error)
	// EvalString is Eval over a bare, unparsed statement sequence not
	// already wrapped as a Code value (used by commands like `if`/`while`
	// that receive raw trailing line text).
	EvalString(src, source string, line int) (Value, error)

	// Throw records v as the pending exception and unwinds to the
	// nearest Catch frame (spec §4.9). The returned error wraps v (see
	// ThrownError) so the unwind can propagate through normal Go error
	// returns up to the frame Catch established.
	Throw(v Value) error
	// Catch establishes a frame, evaluates code, and returns either the
	// normal result (ok=true) or the thrown value (ok=false).
	Catch(code *Code) (Value, bool, error)

	// Collect forces a garbage-collection cycle.
	Collect()

	// Self returns a first-class Coroutine value referencing the
	// coroutine this frame is running in (spec §4.8).
	Self() Value

	// ParseArg parses one primary expression (a literal, name lookup, or
	// compound literal) from the front of *line, advancing it past what
	// was consumed. Generic commands that read their own trailing input
	// (if/while/forall/def/catch) use this to parse each of their
	// argument slots the same way the statement bind loop parses a
	// callable's arguments (spec §4.7 "primary").
	ParseArg(line *string) (Value, error)
	// ScanName consumes a bare identifier from the front of *line without
	// resolving it, for commands like `def` that bind a name rather than
	// looking one up.
	ScanName(line *string) (string, bool)

	// Echo writes s to the coroutine's echo sink, if one is configured.
	Echo(s string)
	// Errorf reports a non-fatal error through the coroutine's error
	// counter and echo sink, returning a Go error the caller may also
	// propagate.
	Errorf(format string, args ...any) error
}
