package builtins

import "github.com/ftl-lang/ftl/value"

// installArith registers the arithmetic and comparison functions (spec
// §6 "Arithmetic commands"): add/sub/mul/div/mod for Int and Real, plus
// the relational/equality operators and the boolean connectives. All are
// ordinary Functions (always-evaluate-then-invoke), unlike the
// short-circuiting control commands in control.go.
func installArith(l *value.Locals, root value.Directory) {
	regFunction(l, root, "add", []string{"a", "b"}, fnAdd)
	regFunction(l, root, "sub", []string{"a", "b"}, arithFn(func(a, b int64) int64 { return a - b }, func(a, b float64) float64 { return a - b }))
	regFunction(l, root, "mul", []string{"a", "b"}, arithFn(func(a, b int64) int64 { return a * b }, func(a, b float64) float64 { return a * b }))
	regFunction(l, root, "div", []string{"a", "b"}, fnDiv)
	regFunction(l, root, "mod", []string{"a", "b"}, fnMod)

	regFunction(l, root, "eq", []string{"a", "b"}, fnEq)
	regFunction(l, root, "ne", []string{"a", "b"}, fnNe)
	regFunction(l, root, "lt", []string{"a", "b"}, cmpFn(func(c int) bool { return c < 0 }))
	regFunction(l, root, "le", []string{"a", "b"}, cmpFn(func(c int) bool { return c <= 0 }))
	regFunction(l, root, "gt", []string{"a", "b"}, cmpFn(func(c int) bool { return c > 0 }))
	regFunction(l, root, "ge", []string{"a", "b"}, cmpFn(func(c int) bool { return c >= 0 }))

	regFunction(l, root, "not", []string{"a"}, fnNot)
	regFunction(l, root, "and", []string{"a", "b"}, fnAnd)
	regFunction(l, root, "or", []string{"a", "b"}, fnOr)
}

func numOf(v value.Value) (f float64, isReal bool, ok bool) {
	switch n := v.(type) {
	case *value.Int:
		return float64(n.Number()), false, true
	case *value.Real:
		return n.Number(), true, true
	default:
		return 0, false, false
	}
}

// fnAdd is "+": numeric addition between Int/Real, or concatenation
// whenever either operand is a string (spec §8 scenario 5 builds an
// error message this way: `"caught:"+x`).
func fnAdd(f value.Frame, args []value.Value) (value.Value, error) {
	a, b := args[0], args[1]
	_, aIsStr := a.(*value.Str)
	_, bIsStr := b.(*value.Str)
	if aIsStr || bIsStr {
		return value.NewFromString(f.Locals(), a.String(nil)+b.String(nil)), nil
	}
	ai, aIsInt := a.(*value.Int)
	bi, bIsInt := b.(*value.Int)
	if aIsInt && bIsInt {
		return value.NewInt(f.Locals(), ai.Number()+bi.Number()), nil
	}
	af, _, aok := numOf(a)
	bf, _, bok := numOf(b)
	if !aok || !bok {
		return nil, f.Errorf("add: expected numbers or strings")
	}
	return value.NewReal(f.Locals(), af+bf), nil
}

func arithFn(intOp func(a, b int64) int64, realOp func(a, b float64) float64) value.NativeFunc {
	return func(f value.Frame, args []value.Value) (value.Value, error) {
		a, b := args[0], args[1]
		ai, aIsInt := a.(*value.Int)
		bi, bIsInt := b.(*value.Int)
		if aIsInt && bIsInt {
			return value.NewInt(f.Locals(), intOp(ai.Number(), bi.Number())), nil
		}
		af, _, aok := numOf(a)
		bf, _, bok := numOf(b)
		if !aok || !bok {
			return nil, f.Errorf("arithmetic: expected numbers")
		}
		return value.NewReal(f.Locals(), realOp(af, bf)), nil
	}
}

func fnDiv(f value.Frame, args []value.Value) (value.Value, error) {
	ai, aIsInt := args[0].(*value.Int)
	bi, bIsInt := args[1].(*value.Int)
	if aIsInt && bIsInt {
		if bi.Number() == 0 {
			return nil, f.Errorf("div: division by zero")
		}
		return value.NewInt(f.Locals(), ai.Number()/bi.Number()), nil
	}
	af, _, aok := numOf(args[0])
	bf, _, bok := numOf(args[1])
	if !aok || !bok {
		return nil, f.Errorf("div: expected numbers")
	}
	if bf == 0 {
		return nil, f.Errorf("div: division by zero")
	}
	return value.NewReal(f.Locals(), af/bf), nil
}

func fnMod(f value.Frame, args []value.Value) (value.Value, error) {
	ai, aok := args[0].(*value.Int)
	bi, bok := args[1].(*value.Int)
	if !aok || !bok {
		return nil, f.Errorf("mod: expected integers")
	}
	if bi.Number() == 0 {
		return nil, f.Errorf("mod: division by zero")
	}
	return value.NewInt(f.Locals(), ai.Number()%bi.Number()), nil
}

// sameKindCompare reports whether a and b share a comparable type,
// returning their Compare result if so. Values of different kinds are
// never equal and have no defined order.
func sameKindCompare(a, b value.Value) (c int, comparable bool) {
	if a.Kind() != b.Kind() {
		return 0, false
	}
	cmp := a.Kind().Compare
	if cmp == nil {
		return 0, false
	}
	return cmp(a, b), true
}

// cmpFn builds an ordering predicate (lt/le/gt/ge): only defined between
// values of the same, ordered kind.
func cmpFn(pred func(c int) bool) value.NativeFunc {
	return func(f value.Frame, args []value.Value) (value.Value, error) {
		c, ok := sameKindCompare(args[0], args[1])
		if !ok {
			return nil, f.Errorf("comparison: %s and %s are not comparable", args[0].Kind().Name, args[1].Kind().Name)
		}
		return boolInt(f.Locals(), pred(c)), nil
	}
}

func fnEq(f value.Frame, args []value.Value) (value.Value, error) {
	c, ok := sameKindCompare(args[0], args[1])
	return boolInt(f.Locals(), ok && c == 0), nil
}

func fnNe(f value.Frame, args []value.Value) (value.Value, error) {
	c, ok := sameKindCompare(args[0], args[1])
	return boolInt(f.Locals(), !ok || c != 0), nil
}

func fnNot(f value.Frame, args []value.Value) (value.Value, error) {
	return boolInt(f.Locals(), !truthy(args[0])), nil
}

func fnAnd(f value.Frame, args []value.Value) (value.Value, error) {
	return boolInt(f.Locals(), truthy(args[0]) && truthy(args[1])), nil
}

func fnOr(f value.Frame, args []value.Value) (value.Value, error) {
	return boolInt(f.Locals(), truthy(args[0]) || truthy(args[1])), nil
}
