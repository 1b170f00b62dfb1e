// Package parser implements FTL's recursive-descent reader/evaluator:
// each grammar primitive either consumes the front of the current line
// and returns true, or leaves the cursor untouched and returns false
// (spec §6). Parser embeds a *coroutine.State (environment stack,
// locals, throw frames, I/O) and a *linesource.LineSource (statement-at-
// a-time input), and is the sole implementation of value.Frame: keeping
// Eval/Bind/Invoke here, rather than on coroutine.State, is what lets
// package value define the Frame interface and package coroutine define
// State without either depending on this package's grammar.
package parser

import (
	"fmt"

	"github.com/ftl-lang/ftl/coroutine"
	"github.com/ftl-lang/ftl/linesource"
	"github.com/ftl-lang/ftl/value"
)

// Parser is one coroutine's grammar/evaluation engine.
type Parser struct {
	*coroutine.State
	LS *linesource.LineSource
}

// New creates a parser reading from ls, sharing state's environment and
// heap.
func New(state *coroutine.State, ls *linesource.LineSource) *Parser {
	return &Parser{State: state, LS: ls}
}

var _ value.Frame = (*Parser)(nil)

// --- value.Frame: direct accessors -----------------------------------

func (p *Parser) Locals() *value.Locals { return p.State.Locals }
func (p *Parser) Root() value.Value     { return p.State.Root }

// Self returns a Coroutine value wrapping this parser's own State, freshly
// allocated on each call and rooted through the caller's locals list like
// any other value.NewXxx result (spec §4.8).
func (p *Parser) Self() value.Value {
	return value.NewCoroutine(p.State.Locals, p.State)
}

func (p *Parser) Arg(n int) value.Value {
	if n < 0 || n >= len(p.State.Args) {
		return value.TheNull
	}
	return p.State.Args[n]
}

func (p *Parser) ArgCount() int { return len(p.State.Args) }

func (p *Parser) Lookup(name string) value.Value {
	if v, ok := value.Lookup(p.State.Env, name); ok {
		return v
	}
	return value.TheNull
}

func (p *Parser) Define(name string, v value.Value) {
	if !value.Define(p.State.Env, name, v) {
		if rd, ok := p.State.Root.(value.Directory); ok {
			rd.Add(name, v)
		}
	}
}

func (p *Parser) Assign(name string, v value.Value) bool {
	return value.Assign(p.State.Env, name, v)
}

func (p *Parser) PushEnv(dir value.Directory, envEnd bool) value.EnvPos {
	p.State.Env = value.Push(p.State.Env, dir, envEnd)
	return p.State.Env
}

func (p *Parser) ReturnEnv(pos value.EnvPos) { p.State.Env = pos }

func (p *Parser) Env() value.EnvPos { return p.State.Env }

func (p *Parser) Collect() { p.State.Heap.Collect() }

func (p *Parser) ParseArg(line *string) (value.Value, error) { return p.parsePrimary(line) }

func (p *Parser) ScanName(line *string) (string, bool) {
	skipSpace(line)
	return scanIdent(line)
}

func (p *Parser) Echo(s string) {
	if p.State.Echo != nil {
		_, _ = p.State.Echo.WriteString(s)
	}
}

func (p *Parser) Errorf(format string, args ...any) error {
	p.State.ErrCount++
	msg := fmt.Sprintf(format, args...)
	p.Echo(fmt.Sprintf("%s:%d: %s\n", p.LS.Name(), p.LS.Line(), msg))
	return fmt.Errorf("%s", msg)
}

// --- value.Frame: throw/catch -----------------------------------------

func (p *Parser) Throw(v value.Value) error {
	for i := len(p.State.Throws) - 1; i >= 0; i-- {
		tf := p.State.Throws[i]
		if !tf.Hit {
			tf.Hit = true
			tf.Caught = v
			break
		}
	}
	return &value.ThrownError{Value: v}
}

func (p *Parser) Catch(code *value.Code) (value.Value, bool, error) {
	tf := p.State.PushThrow()
	defer p.State.PopThrow()
	result, err := p.Eval(code)
	if tf.Hit {
		return tf.Caught, false, nil
	}
	if err != nil {
		if v, ok := value.AsThrown(err); ok {
			return v, false, nil
		}
		return nil, false, err
	}
	return result, true, nil
}
