package eval

import "github.com/acarlson99/risp/internal/value"

// evalArgs evaluates every raw argument left to right, short-circuiting on
// the first Err.
func evalArgs(args []value.Value, env value.Environment, eval value.EvalFunc) ([]value.Value, value.Value) {
	out := make([]value.Value, len(args))
	for i, a := range args {
		v := eval(a, env)
		if v.Kind() == value.KindErr {
			return nil, v
		}
		out[i] = v
	}

	return out, nil
}

// variadicSeeded implements `+`/`*`: evaluates every argument, then folds
// pairwise left to right starting from seed. Zero or one argument is
// valid (the fold simply degenerates to the seed, or the seed combined
// with one operand) — `+`/`*` have an algebraic identity and spec.md §4.5
// exploits it, unlike `-`/`/`/`%` below which require at least 2 operands.
func variadicSeeded(seed value.Value, op func(a, b value.Value) value.Value) value.BuiltinFn {
	return func(args []value.Value, env value.Environment, eval value.EvalFunc) value.Value {
		acc := seed
		for _, raw := range args {
			v := eval(raw, env)
			if v.Kind() == value.KindErr {
				return v
			}
			acc = op(acc, v)
			if acc.Kind() == value.KindErr {
				return acc
			}
		}

		return acc
	}
}

// variadicFold implements `-`/`/`/`%` and the bitwise ops: requires at
// least 2 arguments, seeds from the first (evaluated), and folds the rest
// pairwise left to right.
func variadicFold(name string, op func(a, b value.Value) value.Value) value.BuiltinFn {
	return func(args []value.Value, env value.Environment, eval value.EvalFunc) value.Value {
		if len(args) < 2 {
			return value.Errf("%s requires at least 2 arguments", name)
		}
		vals, err := evalArgs(args, env, eval)
		if err != nil {
			return err
		}
		acc := vals[0]
		for _, v := range vals[1:] {
			acc = op(acc, v)
			if acc.Kind() == value.KindErr {
				return acc
			}
		}

		return acc
	}
}

// mapVariadic implements `~`/`floor`: maps op over every evaluated argument
// and collects the results into a Lst, rather than folding them together.
// Grounded on original_source/src/risp/arithmetic.rs's `not`/`floor`
// functions, which build an RLst of per-argument results. At least 1
// argument is required.
func mapVariadic(name string, op func(v value.Value) value.Value) value.BuiltinFn {
	return func(args []value.Value, env value.Environment, eval value.EvalFunc) value.Value {
		if len(args) < 1 {
			return value.Errf("%s requires at least 1 argument", name)
		}
		out := make([]value.Value, len(args))
		for i, raw := range args {
			v := eval(raw, env)
			if v.Kind() == value.KindErr {
				return v
			}
			r := op(v)
			if r.Kind() == value.KindErr {
				return r
			}
			out[i] = r
		}

		return value.NewLst(out...)
	}
}

// unaryFn wraps a fixed-arity one-argument primitive.
func unaryFn(name string, op func(a value.Value) value.Value) value.BuiltinFn {
	return func(args []value.Value, env value.Environment, eval value.EvalFunc) value.Value {
		if len(args) != 1 {
			return value.Errf("%s requires exactly 1 argument, received %d", name, len(args))
		}
		vals, err := evalArgs(args, env, eval)
		if err != nil {
			return err
		}

		return op(vals[0])
	}
}

// binaryFn wraps a fixed-arity two-argument primitive.
func binaryFn(name string, op func(a, b value.Value) value.Value) value.BuiltinFn {
	return func(args []value.Value, env value.Environment, eval value.EvalFunc) value.Value {
		if len(args) != 2 {
			return value.Errf("%s requires exactly 2 arguments, received %d", name, len(args))
		}
		vals, err := evalArgs(args, env, eval)
		if err != nil {
			return err
		}

		return op(vals[0], vals[1])
	}
}

// chainCompare reduces a chain of 2+ raw arguments via a Compare predicate,
// Lisp-style: (< a b c) is (a < b) && (b < c). Arguments are evaluated
// lazily, one at a time, and evaluation itself stops as soon as an earlier
// pair fails — matching spec.md §4.5's "left-to-right and short-circuits
// on false". An unordered pair (any comparison touching a NaN Flt) is a
// type-mismatch Err rather than a silent false.
func chainCompare(name string, accept func(c int) bool) value.BuiltinFn {
	return func(args []value.Value, env value.Environment, eval value.EvalFunc) value.Value {
		if len(args) < 2 {
			return value.Errf("%s requires at least 2 arguments", name)
		}
		prev := eval(args[0], env)
		if prev.Kind() == value.KindErr {
			return prev
		}
		for i := 1; i < len(args); i++ {
			cur := eval(args[i], env)
			if cur.Kind() == value.KindErr {
				return cur
			}
			c, ok := value.Compare(prev, cur)
			if !ok {
				return value.ErrExpected("(Num Num)", "("+prev.Tag()+" "+cur.Tag()+")")
			}
			if !accept(c) {
				return value.Bool(false)
			}
			prev = cur
		}

		return value.Bool(true)
	}
}

// chainEq implements `=`/`!=` the same adjacent-pair-chained way as the
// ordering comparisons, using Equals rather than Compare so it applies to
// every value, not just the ordered ones.
func chainEq(negate bool) value.BuiltinFn {
	return func(args []value.Value, env value.Environment, eval value.EvalFunc) value.Value {
		if len(args) < 2 {
			return value.Errf("eq requires at least 2 arguments")
		}
		prev := eval(args[0], env)
		if prev.Kind() == value.KindErr {
			return prev
		}
		for i := 1; i < len(args); i++ {
			cur := eval(args[i], env)
			if cur.Kind() == value.KindErr {
				return cur
			}
			eq := prev.Equals(cur)
			if negate {
				eq = !eq
			}
			if !eq {
				return value.Bool(false)
			}
			prev = cur
		}

		return value.Bool(true)
	}
}

// chainLogic implements short-circuiting variadic `and`/`or`: each argument
// is evaluated in turn, stopping as soon as the outcome is decided.
func chainLogic(name string, stopOn value.Bool) value.BuiltinFn {
	return func(args []value.Value, env value.Environment, eval value.EvalFunc) value.Value {
		if len(args) == 0 {
			return value.Bool(!bool(stopOn))
		}
		var last value.Value = value.Bool(!bool(stopOn))
		for _, a := range args {
			v := eval(a, env)
			if v.Kind() == value.KindErr {
				return v
			}
			b, ok := v.(value.Bool)
			if !ok {
				return value.ErrExpected("Bool", v.Tag())
			}
			if b == stopOn {
				return b
			}
			last = b
		}

		return last
	}
}

func notFn(args []value.Value, env value.Environment, eval value.EvalFunc) value.Value {
	if len(args) != 1 {
		return value.Errf("not requires exactly 1 argument, received %d", len(args))
	}
	v := eval(args[0], env)
	if v.Kind() == value.KindErr {
		return v
	}
	b, ok := v.(value.Bool)
	if !ok {
		return value.ErrExpected("Bool", v.Tag())
	}

	return value.Bool(!bool(b))
}
