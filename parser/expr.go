package parser

import (
	"strings"

	"github.com/ftl-lang/ftl/value"
)

// opFuncName maps an infix operator token to the generic function name
// that implements it (spec §6's "comparison, logical and arithmetic
// operators"; §4.8 describes an "op-defs" table of parser-known operator
// names — this is that table, resolved through the environment rather
// than a separate symbol table so a script can shadow `+` by rebinding
// `add`). builtins.Install registers each of these names at startup;
// without it, using an infix operator reports an ordinary unbound-name
// error.
var opFuncName = map[string]string{
	"+": "add", "-": "sub", "*": "mul", "/": "div", "%": "mod",
	"==": "eq", "!=": "ne", "<": "lt", "<=": "le", ">": "gt", ">=": "ge",
	"&&": "and", "||": "or",
}

// parseExpr parses a full expression: comparison/logical/arithmetic
// operators over call-chains, by standard precedence climbing (spec
// §4.7: "precedence encoded by the recursion structure").
func (p *Parser) parseExpr(line *string) (value.Value, error) {
	return p.parseLevel(line, exprLevels)
}

// exprLevels lists operator tokens from lowest to highest precedence;
// longer tokens are listed before any single-character prefix of them
// so e.g. "==" is matched before "=" would be (no level here contains a
// bare "=", which is reserved for assignment).
var exprLevels = [][]string{
	{"||"},
	{"&&"},
	{"==", "!=", "<=", ">=", "<", ">"},
	{"+", "-"},
	{"*", "/", "%"},
}

func (p *Parser) parseLevel(line *string, levels [][]string) (value.Value, error) {
	if len(levels) == 0 {
		return p.parseCallChain(line)
	}
	lhs, err := p.parseLevel(line, levels[1:])
	if err != nil {
		return nil, err
	}
	for {
		skipSpace(line)
		op, ok := matchOp(*line, levels[0])
		if !ok {
			return lhs, nil
		}
		*line = (*line)[len(op):]
		rhs, err := p.parseLevel(line, levels[1:])
		if err != nil {
			return nil, err
		}
		lhs, err = p.applyOp(op, lhs, rhs)
		if err != nil {
			return nil, err
		}
	}
}

func matchOp(s string, ops []string) (string, bool) {
	for _, op := range ops {
		if strings.HasPrefix(s, op) {
			return op, true
		}
	}
	return "", false
}

// applyOp resolves op's implementing function by name in the current
// environment and applies it to lhs/rhs via the ordinary Bind protocol,
// so infix operators obey the same partial-application and auto-invoke
// rules as an explicit call would.
func (p *Parser) applyOp(op string, lhs, rhs value.Value) (value.Value, error) {
	name := opFuncName[op]
	fn, ok := value.Lookup(p.State.Env, name)
	if !ok {
		return nil, p.Errorf("operator %q: %q is not bound", op, name)
	}
	v, err := p.Bind(fn, lhs)
	if err != nil {
		return nil, err
	}
	v, err = p.Bind(v, rhs)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// parseCallChain parses one primary, then as many further primaries as
// the callable-in-progress still has unbound slots for and the line
// still has tokens for (spec §4.6's bind loop) — juxtaposition-applies a
// closure or function to its arguments one at a time.
func (p *Parser) parseCallChain(line *string) (value.Value, error) {
	v, err := p.parsePrimary(line)
	if err != nil {
		return nil, err
	}
	for isCallableWithArity(v) {
		skipSpace(line)
		if atExprEnd(*line) {
			break
		}
		arg, err := p.parsePrimary(line)
		if err != nil {
			return nil, err
		}
		v, err = p.Bind(v, arg)
		if err != nil {
			return nil, err
		}
	}
	return v, nil
}

// atExprEnd reports whether the cursor sits at a token that can never
// start a further call-chain argument: end of input, a statement
// separator, an enclosing literal's closing delimiter, or an infix
// operator.
func atExprEnd(s string) bool {
	skipSpace(&s)
	if len(s) == 0 {
		return true
	}
	switch s[0] {
	case ';', '\n', ')', ']', '}', '>', ',', '!', '=':
		return true
	}
	for _, level := range exprLevels {
		if _, ok := matchOp(s, level); ok {
			return true
		}
	}
	return false
}

func isCallableWithArity(v value.Value) bool {
	switch c := v.(type) {
	case *value.Closure:
		return c.Arity() > 0
	case *value.Function:
		return c.Arity() > 0
	}
	return false
}
