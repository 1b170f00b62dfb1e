package parser

import "github.com/ftl-lang/ftl/value"

// parsePrimary parses one primary expression: a literal, a `@name`
// delay-binding reference, a bare identifier lookup, or a compound
// literal (`<vector>`, `[closure-or-id-dir]`, `{code}`), then applies any
// trailing `.name` / `.(expr)` field-access chain (spec §4.7, §6 "Source
// text grammar": "dir.name — field; dir.(expr) — indexed field").
func (p *Parser) parsePrimary(line *string) (value.Value, error) {
	v, err := p.parseAtom(line)
	if err != nil {
		return nil, err
	}
	return p.parsePostfix(v, line)
}

func (p *Parser) parseAtom(line *string) (value.Value, error) {
	skipSpace(line)
	if len(*line) == 0 {
		return nil, p.Errorf("unexpected end of input")
	}

	if (*line)[0] == '@' {
		rest := (*line)[1:]
		name, ok := scanIdent(&rest)
		if !ok {
			return nil, p.Errorf("'@' must be followed by a name")
		}
		*line = rest
		return p.lookupNoAuto(name)
	}

	switch (*line)[0] {
	case '{':
		return p.parseCodeLiteral(line)
	case '<':
		return p.parseVectorLiteral(line)
	case '[':
		return p.parseBracketLiteral(line)
	}

	// Literal types that could be confused with a plain integer (IP/MAC
	// addresses, both dot/colon-delimited digit runs) are tried before
	// int/real, which would otherwise greedily consume a leading numeric
	// prefix and leave the rest of the literal as syntax garbage.
	for _, t := range []*value.Type{value.TMACAddr, value.TIPAddr, value.TReal, value.TInt, value.TString, value.TNull} {
		if t.Parse == nil {
			continue
		}
		if v, ok := t.Parse(line); ok {
			return v, nil
		}
	}

	name, ok := scanIdent(line)
	if !ok {
		return nil, p.Errorf("syntax error near %q", preview(*line))
	}
	return p.lookupAuto(name, line)
}

// parsePostfix applies zero or more trailing `.name` / `.(expr)` field
// accesses to v, each reading through the current value.Directory via
// Get (spec §5's "get" operation).
func (p *Parser) parsePostfix(v value.Value, line *string) (value.Value, error) {
	for {
		s := *line
		if len(s) == 0 || s[0] != '.' {
			return v, nil
		}
		s = s[1:]
		var key string
		if len(s) > 0 && s[0] == '(' {
			inner := s[1:]
			depth := 1
			i := 0
			for i < len(inner) && depth > 0 {
				switch inner[i] {
				case '(':
					depth++
				case ')':
					depth--
				}
				if depth == 0 {
					break
				}
				i++
			}
			if depth != 0 {
				return nil, p.Errorf("unterminated indexed field expression")
			}
			exprSrc := inner[:i]
			kv, err := p.parseExpr(&exprSrc)
			if err != nil {
				return nil, err
			}
			key = keyString(kv)
			s = inner[i+1:]
		} else if len(s) > 0 && s[0] >= '0' && s[0] <= '9' {
			i := 0
			for i < len(s) && s[i] >= '0' && s[i] <= '9' {
				i++
			}
			key = s[:i]
			s = s[i:]
		} else {
			name, ok := scanIdent(&s)
			if !ok {
				return nil, p.Errorf("expected field name after '.'")
			}
			key = name
		}
		*line = s
		d, ok := v.(value.Directory)
		if !ok {
			return nil, p.Errorf("'.%s': value is not a directory", key)
		}
		v = d.Get(key)
	}
}

// keyString renders a value as a directory key: a string's own content,
// or an integer's decimal form (vec-dir indices are matched this way).
func keyString(v value.Value) string {
	if s, ok := v.(*value.Str); ok {
		return s.String(nil)
	}
	return v.String(nil)
}

func preview(s string) string {
	if len(s) > 24 {
		return s[:24] + "..."
	}
	return s
}

// scanIdent consumes a bare identifier: letters, digits, '_' or '-', not
// starting with a digit.
func scanIdent(line *string) (string, bool) {
	s := *line
	if len(s) == 0 || !identStart(s[0]) {
		return "", false
	}
	i := 1
	for i < len(s) && identCont(s[i]) {
		i++
	}
	*line = s[i:]
	return s[:i], true
}

func identStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func identCont(c byte) bool {
	return identStart(c) || (c >= '0' && c <= '9') || c == '-' || c == '?'
}

// lookupAuto resolves name and applies the "bare name auto-runs"
// convention: a Command always runs immediately, consuming its own
// trailing input directly from line; a Function or autorun Closure with
// no unbound arguments left runs immediately too. Anything else — a
// value, or a callable still awaiting arguments — is returned as-is for
// the statement's bind loop to pick up.
func (p *Parser) lookupAuto(name string, line *string) (value.Value, error) {
	v, err := p.resolveOrThrow(name)
	if err != nil {
		return nil, err
	}
	if cmd, ok := v.(*value.Command); ok {
		return cmd.Fn(p, line)
	}
	if fn, ok := v.(*value.Function); ok && fn.Arity() == 0 {
		result, ok, err := p.Invoke(fn)
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

// lookupNoAuto resolves name without ever invoking it, for `@name`.
func (p *Parser) lookupNoAuto(name string) (value.Value, error) {
	return p.resolveOrThrow(name)
}

func (p *Parser) resolveOrThrow(name string) (value.Value, error) {
	if v, ok := value.Lookup(p.State.Env, name); ok {
		return v, nil
	}
	return nil, p.Errorf("unbound name %q%s", name, p.suggestHint(name))
}

// suggester is implemented by directory shapes (dir.IDDir) that can
// propose a close match for a failed lookup.
type suggester interface {
	Suggest(name string) string
}

// suggestHint walks the environment chain looking for a directory that
// can suggest a near-miss for name, formatting it as a parenthetical
// hint appended to the unbound-name error.
func (p *Parser) suggestHint(name string) string {
	for n := p.State.Env; n != nil; n = n.Next {
		if s, ok := n.Dir.(suggester); ok {
			if guess := s.Suggest(name); guess != "" {
				return " (did you mean " + guess + "?)"
			}
		}
	}
	return ""
}
