package parser

import "github.com/ftl-lang/ftl/value"

// Bind consumes one unbound argument slot of callable — a *value.Closure
// or *value.Function — and returns the resulting value (spec §4.6). A
// native Function auto-invokes as soon as its last argument is bound,
// since a builtin like `+` is meaningless as a deferred, unapplied
// value. A user closure only auto-invokes once fully bound if it was
// created as an autorun (`{ ... }`) block; a named-argument closure
// literal, once fully applied, is left as an ordinary first-class value
// until forced with `!` — this is what lets a fully-applied closure be
// stored, returned or passed on without running.
func (p *Parser) Bind(callable value.Value, arg value.Value) (value.Value, error) {
	switch c := callable.(type) {
	case *value.Closure:
		if c.Arity() == 0 {
			return nil, p.Errorf("bind: closure takes no more arguments")
		}
		discard := c.IsDiscard()
		next := c.BindOne(p.State.Locals, arg)
		if discard {
			// The argument is still evaluated for side effects by the
			// caller before Bind runs; "_" just means don't keep it
			// addressable under a name.
		}
		if next.Arity() == 0 && next.Autorun {
			return p.invokeBound(next)
		}
		return next, nil
	case *value.Function:
		if c.Arity() == 0 {
			return nil, p.Errorf("bind: function %s takes no more arguments", c.Name)
		}
		next := c.BindOne(p.State.Locals, arg)
		if next.Arity() == 0 {
			return p.invokeBound(next)
		}
		return next, nil
	default:
		return nil, p.Errorf("bind: value is not callable")
	}
}

// invokeBound runs a callable Bind has just completed, turning a throw
// that escaped it back into a ThrownError for the caller to propagate.
func (p *Parser) invokeBound(callable value.Value) (value.Value, error) {
	result, ok, err := p.Invoke(callable)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, p.Throw(result)
	}
	return result, nil
}

// Invoke runs a fully-bound closure or function (spec §4.6/§4.8).
func (p *Parser) Invoke(callable value.Value) (value.Value, bool, error) {
	switch c := callable.(type) {
	case *value.Closure:
		if c.Arity() != 0 {
			return nil, false, p.Errorf("invoke: closure still has %d unbound argument(s)", c.Arity())
		}
		pos := p.Env()
		p.ReturnEnv(c.Env)
		result, err := p.Eval(c.Code)
		p.ReturnEnv(pos)
		if err != nil {
			if v, ok := value.AsThrown(err); ok {
				return v, false, nil
			}
			return nil, false, err
		}
		return result, true, nil
	case *value.Function:
		if c.Arity() != 0 {
			return nil, false, p.Errorf("invoke: function %s still has %d unbound argument(s)", c.Name, c.Arity())
		}
		savedArgs := p.State.Args
		p.State.Args = c.Bound
		result, err := c.Native(p, c.Bound)
		p.State.Args = savedArgs
		if err != nil {
			if v, ok := value.AsThrown(err); ok {
				return v, false, nil
			}
			return nil, false, err
		}
		return result, true, nil
	default:
		return nil, false, p.Errorf("invoke: value is not callable")
	}
}
