package parser

import "github.com/ftl-lang/ftl/value"

// Eval parses and evaluates code's body as a sequence of statements,
// returning the last statement's value (spec §4.4 "For code": "a code
// value's body is a sequence of statements; evaluating it runs each in
// turn").
func (p *Parser) Eval(code *value.Code) (value.Value, error) {
	body, _ := code.Buf()
	return p.EvalString(body, code.Source(), code.Line())
}

// EvalString evaluates src as a bare statement sequence not already
// wrapped in a Code value, tagged with source/line for diagnostics —
// used by commands like `if`/`while` that receive raw trailing line
// text rather than a parsed Code literal.
func (p *Parser) EvalString(src, source string, line int) (value.Value, error) {
	var result value.Value = value.TheNull
	s := src
	for {
		skipStatementSeparators(&s)
		if len(s) == 0 {
			return result, nil
		}
		v, err := p.parseStatement(&s)
		if err != nil {
			return nil, err
		}
		result = v
	}
}

func skipStatementSeparators(s *string) {
	i := 0
	for i < len(*s) {
		c := (*s)[i]
		if c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == ';' {
			i++
			continue
		}
		break
	}
	*s = (*s)[i:]
}

func skipSpace(s *string) {
	i := 0
	for i < len(*s) && ((*s)[i] == ' ' || (*s)[i] == '\t') {
		i++
	}
	*s = (*s)[i:]
}

// parseStatement parses one full statement: either a `name = expr`
// assignment (spec §6 "name = expr — assignment") or a bare expression,
// in both cases followed by an optional trailing `!` forcing an
// otherwise-inert fully-bound closure to run (spec §4.7's `!` operator).
func (p *Parser) parseStatement(line *string) (value.Value, error) {
	if name, ok := tryAssignmentTarget(line); ok {
		v, err := p.parseExprBang(line)
		if err != nil {
			return nil, err
		}
		if !p.Assign(name, v) {
			p.Define(name, v)
		}
		return v, nil
	}
	return p.parseExprBang(line)
}

// tryAssignmentTarget peeks for a bare `name =` prefix (not `==`),
// consuming it from *line only when matched; any other lookahead failure
// leaves *line untouched so the caller can fall back to expression
// parsing.
func tryAssignmentTarget(line *string) (string, bool) {
	s := *line
	skipSpace(&s)
	name, ok := scanIdent(&s)
	if !ok {
		return "", false
	}
	skipSpace(&s)
	if len(s) == 0 || s[0] != '=' || (len(s) > 1 && s[1] == '=') {
		return "", false
	}
	*line = s[1:]
	return name, true
}

// parseExprBang parses a full expression, then applies a trailing `!`
// (or an Autorun closure left with no unbound arguments) to force
// invocation (spec §4.7's `!` operator). A callable with unbound
// arguments remaining still fails: `!` forces a completed value, it
// doesn't auto-apply missing arguments. A `!` following a value that is
// already fully evaluated (e.g. a Function, which always auto-invokes as
// soon as its last argument is bound) is a no-op — spec §8 scenario 3's
// `len d!` relies on this, since `len d` has already run by the time `!`
// is reached.
func (p *Parser) parseExprBang(line *string) (value.Value, error) {
	v, err := p.parseExpr(line)
	if err != nil {
		return nil, err
	}
	skipSpace(line)
	if len(*line) > 0 && (*line)[0] == '!' {
		*line = (*line)[1:]
		if !isCallable(v) {
			return v, nil
		}
		result, ok, err := p.Invoke(v)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, p.Throw(result)
		}
		return result, nil
	}
	if cl, ok := v.(*value.Closure); ok && cl.Arity() == 0 && cl.Autorun {
		result, ok, err := p.Invoke(cl)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, p.Throw(result)
		}
		return result, nil
	}
	return v, nil
}

func isCallable(v value.Value) bool {
	switch v.(type) {
	case *value.Closure, *value.Function:
		return true
	}
	return false
}
