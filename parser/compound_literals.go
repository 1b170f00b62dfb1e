package parser

import (
	"github.com/ftl-lang/ftl/dir"
	"github.com/ftl-lang/ftl/value"
)

// parseCodeLiteral parses `{ ... }` as a deferred Code value — never a
// closure (spec §3 "code", §6: "{ ... } — code body (deferred)"). A
// closure requires the explicit `[args]:{ ... }` form (parseClosureLiteral
// below).
func (p *Parser) parseCodeLiteral(line *string) (value.Value, error) {
	body, err := scanBraced(p, line, '{', '}')
	if err != nil {
		return nil, err
	}
	code := value.NewCode(p.State.Locals, body, p.LS.Name(), p.LS.Line())
	value.Unlocal(code)
	return code, nil
}

// scanBraced consumes a balanced open/close-delimited span (depth-aware,
// so nested literals of the same delimiter don't prematurely close it)
// and returns its interior text, leaving *line positioned just past the
// closing delimiter.
func scanBraced(p *Parser, line *string, open, close byte) (string, error) {
	s := *line
	if len(s) == 0 || s[0] != open {
		return "", p.Errorf("expected %q", string(open))
	}
	s = s[1:]
	depth := 1
	i := 0
	for i < len(s) && depth > 0 {
		switch s[i] {
		case open:
			depth++
		case close:
			depth--
		}
		if depth == 0 {
			break
		}
		i++
	}
	if depth != 0 {
		return "", p.Errorf("unterminated %q ... %q", string(open), string(close))
	}
	body := s[:i]
	*line = s[i+1:]
	return body, nil
}

// parseBracketLiteral disambiguates the two `[...]`-delimited literals
// (spec §6): `[args]:{ body }` (closure, a colon-brace immediately
// follows the closing bracket) versus `[k=v, ...]` (id directory,
// otherwise).
func (p *Parser) parseBracketLiteral(line *string) (value.Value, error) {
	inner, err := scanBraced(p, line, '[', ']')
	if err != nil {
		return nil, err
	}
	rest := *line
	skipSpace(&rest)
	if len(rest) > 0 && rest[0] == ':' {
		afterColon := rest[1:]
		skipSpace(&afterColon)
		if len(afterColon) > 0 && afterColon[0] == '{' {
			*line = afterColon
			return p.parseClosureLiteral(inner, line)
		}
	}
	return p.parseIDDirLiteral(inner)
}

// parseClosureLiteral builds a closure from an already-scanned `[args]`
// name list plus the `{ body }` text still in *line (spec §4.6
// "closure"). Literal closures are never autorun (spec's end-to-end
// scenarios all force them explicitly with `!`); Autorun is reserved for
// closures a host constructs directly.
func (p *Parser) parseClosureLiteral(argList string, line *string) (value.Value, error) {
	var params []string
	s := argList
	for {
		skipStatementSeparators(&s)
		skipSpace(&s)
		if len(s) > 0 && s[0] == ',' {
			s = s[1:]
			continue
		}
		name, ok := scanIdent(&s)
		if !ok {
			break
		}
		params = append(params, name)
	}
	body, err := scanBraced(p, line, '{', '}')
	if err != nil {
		return nil, err
	}
	code := value.NewCode(p.State.Locals, body, p.LS.Name(), p.LS.Line())
	value.Unlocal(code)
	cl := value.NewClosure(p.State.Locals, code, p.State.Env, params, false)
	return cl, nil
}

// parseVectorLiteral parses `<e1, e2, ...>`, evaluating each element as a
// full expression (spec §6: "<expr,...> — vector literal").
func (p *Parser) parseVectorLiteral(line *string) (value.Value, error) {
	inner, err := scanBraced(p, line, '<', '>')
	if err != nil {
		return nil, err
	}
	vd := dir.NewVecDir(p.State.Locals)
	s := inner
	for {
		skipStatementSeparators(&s)
		skipSpace(&s)
		if len(s) == 0 {
			break
		}
		v, err := p.parseExpr(&s)
		if err != nil {
			return nil, err
		}
		vd.Push(v)
		skipSpace(&s)
		if len(s) > 0 && s[0] == ',' {
			s = s[1:]
		}
	}
	return vd, nil
}

// parseIDDirLiteral parses the interior of a `[k=v, k2=v2, ...]` id-dir
// literal (spec §6: "[k=v, ...] — id-dir literal").
func (p *Parser) parseIDDirLiteral(inner string) (value.Value, error) {
	idd := dir.NewIDDir(p.State.Locals)
	s := inner
	for {
		skipStatementSeparators(&s)
		skipSpace(&s)
		if len(s) == 0 {
			break
		}
		name, ok := scanIdent(&s)
		if !ok {
			return nil, p.Errorf("expected field name in id-dir literal near %q", preview(s))
		}
		skipSpace(&s)
		if len(s) == 0 || s[0] != '=' {
			return nil, p.Errorf("expected '=' after field name %q", name)
		}
		s = s[1:]
		v, err := p.parseExpr(&s)
		if err != nil {
			return nil, err
		}
		idd.Add(name, v)
		skipSpace(&s)
		if len(s) > 0 && s[0] == ',' {
			s = s[1:]
		}
	}
	return idd, nil
}
