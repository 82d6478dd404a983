package eval

import (
	"strconv"

	"github.com/acarlson99/risp/internal/value"
)

// registerBuiltins populates the evaluator with risp's entire builtin
// library: arithmetic, bitwise, comparison, and logic operators; type
// predicates and conversions; list/vector/map primitives; and the I/O
// trio (read/write/load) bound to this evaluator's streams.
//
// Builtins are organized into categories:
//   - Arithmetic: + - * / % & | ^ ~ << >> floor
//   - Comparison: < <= > >= = !=
//   - Logic: and/&& or/|| not/!
//   - Type predicates: err? str? sym? nil? bool? flt? int? lst? vec? map? fn?
//   - Conversions: str int flt
//   - Sequence/map ops: len list vec map keys has
//   - I/O: read write load
func (e *Evaluator) registerBuiltins() {
	e.registerArith()
	e.registerCompareAndLogic()
	e.registerPredicatesAndConversions()
	e.registerSeqAndMapOps()
	e.registerIO()
}

func (e *Evaluator) reg(name string, fn value.BuiltinFn) {
	e.builtins[name] = value.NewBfn(name, fn)
}

func (e *Evaluator) registerArith() {
	e.reg("+", variadicSeeded(value.Int(0), value.Add))
	e.reg("*", variadicSeeded(value.Int(1), value.Mul))
	e.reg("-", variadicFold("-", value.Sub))
	e.reg("/", variadicFold("/", value.Div))
	e.reg("%", variadicFold("%", value.Mod))
	e.reg("&", variadicFold("&", value.BitAnd))
	e.reg("|", variadicFold("|", value.BitOr))
	e.reg("^", variadicFold("^", value.BitXor))
	e.reg("~", mapVariadic("~", value.BitNot))
	e.reg("<<", variadicFold("<<", value.Shl))
	e.reg(">>", variadicFold(">>", value.Shr))
	e.reg("floor", mapVariadic("floor", value.Floor))
}

func (e *Evaluator) registerCompareAndLogic() {
	e.reg("<", chainCompare("<", func(c int) bool { return c < 0 }))
	e.reg("<=", chainCompare("<=", func(c int) bool { return c <= 0 }))
	e.reg(">", chainCompare(">", func(c int) bool { return c > 0 }))
	e.reg(">=", chainCompare(">=", func(c int) bool { return c >= 0 }))
	e.reg("=", chainEq(false))
	e.reg("!=", chainEq(true))
	e.reg("and", chainLogic("and", false))
	e.reg("&&", chainLogic("and", false))
	e.reg("or", chainLogic("or", true))
	e.reg("||", chainLogic("or", true))
	e.reg("not", notFn)
	e.reg("!", notFn)
}

func (e *Evaluator) registerPredicatesAndConversions() {
	e.reg("err?", typePredicate(value.KindErr))
	e.reg("str?", typePredicate(value.KindStr))
	e.reg("sym?", typePredicate(value.KindSym))
	e.reg("nil?", typePredicate(value.KindNil))
	e.reg("bool?", typePredicate(value.KindBool))
	e.reg("flt?", typePredicate(value.KindFlt))
	e.reg("int?", typePredicate(value.KindInt))
	e.reg("lst?", typePredicate(value.KindLst))
	e.reg("vec?", typePredicate(value.KindVec))
	e.reg("map?", typePredicate(value.KindMap))
	e.reg("fn?", fnPredicate)

	e.reg("str", unaryFn("str", func(v value.Value) value.Value {
		if s, ok := v.(value.Str); ok {
			return s
		}

		return value.Str(v.String())
	}))
	e.reg("int", unaryFn("int", toInt))
	e.reg("flt", unaryFn("flt", toFlt))
}

func typePredicate(k value.Kind) value.BuiltinFn {
	return func(args []value.Value, env value.Environment, eval value.EvalFunc) value.Value {
		if len(args) != 1 {
			return value.Errf("type predicate requires exactly 1 argument, received %d", len(args))
		}
		v := eval(args[0], env)
		if v.Kind() == value.KindErr && k != value.KindErr {
			return v
		}

		return value.Bool(v.Kind() == k)
	}
}

func fnPredicate(args []value.Value, env value.Environment, eval value.EvalFunc) value.Value {
	if len(args) != 1 {
		return value.Errf("fn? requires exactly 1 argument, received %d", len(args))
	}
	v := eval(args[0], env)
	if v.Kind() == value.KindErr {
		return v
	}

	return value.Bool(v.Kind() == value.KindBfn || v.Kind() == value.KindLfn)
}

func toInt(v value.Value) value.Value {
	switch vv := v.(type) {
	case value.Int:
		return vv
	case value.Flt:
		return value.Int(int64(vv))
	case value.Str:
		n, err := strconv.ParseInt(string(vv), 10, 64)
		if err != nil {
			return value.Errf("cannot convert %s to Int", vv)
		}

		return value.Int(n)
	default:
		return value.ErrExpected("(Num|Str)", "("+v.Tag()+")")
	}
}

func toFlt(v value.Value) value.Value {
	switch vv := v.(type) {
	case value.Flt:
		return vv
	case value.Int:
		return value.Flt(float64(vv))
	case value.Str:
		f, err := strconv.ParseFloat(string(vv), 64)
		if err != nil {
			return value.Errf("cannot convert %s to Flt", vv)
		}

		return value.Flt(f)
	default:
		return value.ErrExpected("(Num|Str)", "("+v.Tag()+")")
	}
}

func (e *Evaluator) registerSeqAndMapOps() {
	e.reg("len", unaryFn("len", func(v value.Value) value.Value {
		switch vv := v.(type) {
		case *value.Lst:
			return value.Int(vv.Len())
		case *value.Vec:
			return value.Int(vv.Len())
		case *value.Map:
			return value.Int(vv.Len())
		case value.Str:
			return value.Int(len(vv))
		default:
			return value.ErrExpected("(Lst|Vec|Map|Str)", "("+v.Tag()+")")
		}
	}))

	e.reg("list", func(args []value.Value, env value.Environment, eval value.EvalFunc) value.Value {
		vals, err := evalArgs(args, env, eval)
		if err != nil {
			return err
		}

		return value.NewLst(vals...)
	})

	e.reg("vec", func(args []value.Value, env value.Environment, eval value.EvalFunc) value.Value {
		vals, err := evalArgs(args, env, eval)
		if err != nil {
			return err
		}

		return value.NewVec(vals...)
	})

	e.reg("map", func(args []value.Value, env value.Environment, eval value.EvalFunc) value.Value {
		vals, err := evalArgs(args, env, eval)
		if err != nil {
			return err
		}

		return value.NewMap(vals...)
	})

	e.reg("keys", unaryFn("keys", func(v value.Value) value.Value {
		m, ok := v.(*value.Map)
		if !ok {
			return value.ErrExpected("Map", v.Tag())
		}

		return value.NewLst(m.Keys()...)
	}))

	e.reg("has", binaryFn("has", func(key, m value.Value) value.Value {
		mm, ok := m.(*value.Map)
		if !ok {
			return value.ErrExpected("Map", m.Tag())
		}
		_, found := mm.Get(key)

		return value.Bool(found)
	}))
}
