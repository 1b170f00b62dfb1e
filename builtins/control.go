package builtins

import (
	"strconv"

	"github.com/ftl-lang/ftl/dir"
	"github.com/ftl-lang/ftl/value"
)

// installControl registers the control-flow commands: if, while, forall,
// def, catch (spec §6 "Control commands"). Each reads its own trailing
// input directly via CommandFunc rather than being a Function, since
// their branch/body arguments must not be evaluated before the
// condition decides whether to run them at all — every branch is parsed
// as a single primary (typically a `{ ... }` code literal) and run by
// runBranch only when the control flow actually reaches it.
func installControl(l *value.Locals, root value.Directory) {
	regCommand(l, root, "if", "if cond then [else]: run then if cond is true, else otherwise", cmdIf)
	regCommand(l, root, "while", "while cond body: run body as long as cond is true", cmdWhile)
	regCommand(l, root, "forall", "forall dir body: run body once per entry of dir, binding the entry's key then its value as the closure's two arguments", cmdForall)
	regCommand(l, root, "def", "def name value: bind name in the current scope", cmdDef)
	regCommand(l, root, "catch", "catch body handler: run body; if it throws, bind the thrown value into handler instead of propagating it", cmdCatch)
}

func cmdIf(f value.Frame, line *string) (value.Value, error) {
	cond, err := f.ParseArg(line)
	if err != nil {
		return nil, err
	}
	thenBranch, err := f.ParseArg(line)
	if err != nil {
		return nil, err
	}
	var elseBranch value.Value
	if hasMoreArgs(line) {
		elseBranch, err = f.ParseArg(line)
		if err != nil {
			return nil, err
		}
	}
	if truthy(cond) {
		return runBranch(f, thenBranch)
	}
	if elseBranch != nil {
		return runBranch(f, elseBranch)
	}
	return value.TheNull, nil
}

func cmdWhile(f value.Frame, line *string) (value.Value, error) {
	condBranch, err := f.ParseArg(line)
	if err != nil {
		return nil, err
	}
	bodyBranch, err := f.ParseArg(line)
	if err != nil {
		return nil, err
	}
	var result value.Value = value.TheNull
	for {
		cv, err := runBranch(f, condBranch)
		if err != nil {
			return nil, err
		}
		if !truthy(cv) {
			return result, nil
		}
		result, err = runBranch(f, bodyBranch)
		if err != nil {
			return nil, err
		}
	}
}

// cmdForall runs body once per entry of dir, binding the entry's key then
// its value as the body closure's two arguments — a vector yields its
// index as an Int then its element (spec §8 scenario 4's iteration order:
// (0,10), (1,20), (2,30)); any other directory yields its field name as a
// string then its value.
func cmdForall(f value.Frame, line *string) (value.Value, error) {
	dv, err := f.ParseArg(line)
	if err != nil {
		return nil, err
	}
	d, ok := asDir(dv)
	if !ok {
		return nil, f.Errorf("forall: first argument must be a directory")
	}
	_, isVec := d.(*dir.VecDir)
	bodyCl, err := f.ParseArg(line)
	if err != nil {
		return nil, err
	}
	var result value.Value = value.TheNull
	var forallErr error
	d.Forall(func(name string, v value.Value) bool {
		var key value.Value
		if isVec {
			n, _ := strconv.Atoi(name)
			key = value.NewInt(f.Locals(), int64(n))
		} else {
			key = value.NewFromString(f.Locals(), name)
		}
		bound, err := f.Bind(bodyCl, key)
		if err != nil {
			forallErr = err
			return false
		}
		bound, err = f.Bind(bound, v)
		if err != nil {
			forallErr = err
			return false
		}
		r, err := runBranch(f, bound)
		if err != nil {
			forallErr = err
			return false
		}
		result = r
		return true
	})
	if forallErr != nil {
		return nil, forallErr
	}
	return result, nil
}

func cmdDef(f value.Frame, line *string) (value.Value, error) {
	name, ok := f.ScanName(line)
	if !ok {
		return nil, f.Errorf("def: expected a name")
	}
	v, err := f.ParseArg(line)
	if err != nil {
		return nil, err
	}
	f.Define(name, v)
	return v, nil
}

// cmdCatch runs body; if it throws, the thrown value is bound as the
// handler's one argument and the (now fully-bound, but not yet invoked —
// literal closures are never Autorun) handler is returned for the
// statement's trailing `!` to force (spec §8 scenario 5:
// `catch {throw "bad"} [x]:{"caught:"+x}!`). If body completes normally,
// its result is returned directly and handler is never applied.
func cmdCatch(f value.Frame, line *string) (value.Value, error) {
	branch, err := f.ParseArg(line)
	if err != nil {
		return nil, err
	}
	code, ok := branch.(*value.Code)
	if !ok {
		return nil, f.Errorf("catch: expected a code body ({ ... })")
	}
	handler, err := f.ParseArg(line)
	if err != nil {
		return nil, err
	}
	result, ok, err := f.Catch(code)
	if err != nil {
		return nil, err
	}
	if ok {
		return result, nil
	}
	return f.Bind(handler, result)
}

func hasMoreArgs(line *string) bool {
	s := *line
	for len(s) > 0 && (s[0] == ' ' || s[0] == '\t') {
		s = s[1:]
	}
	return len(s) > 0 && s[0] != ';' && s[0] != '\n'
}

// runBranch executes a branch value: a `{ ... }` code body runs via Eval;
// an unbound, zero-argument closure or function runs via Invoke; anything
// else (a plain value used directly as the "then"/"else" result, or a
// closure still awaiting arguments) is returned unchanged.
func runBranch(f value.Frame, v value.Value) (value.Value, error) {
	if code, ok := v.(*value.Code); ok {
		return f.Eval(code)
	}
	switch c := v.(type) {
	case *value.Closure:
		if c.Arity() != 0 {
			return v, nil
		}
	case *value.Function:
		if c.Arity() != 0 {
			return v, nil
		}
	default:
		return v, nil
	}
	result, ok, err := f.Invoke(v)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, f.Throw(result)
	}
	return result, nil
}
