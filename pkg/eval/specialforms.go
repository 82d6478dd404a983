package eval

import (
	"github.com/acarlson99/risp/internal/value"
	"github.com/acarlson99/risp/pkg/lexer"
	"github.com/acarlson99/risp/pkg/reader"
)

// specialForm implements a form whose head symbol is recognized before any
// attempt is made to resolve it as a bound value — it receives the raw,
// unevaluated argument subtrees, exactly like a Bfn would.
type specialForm func(e *Evaluator, args []value.Value, env value.Environment) value.Value

// specialForms is filled in init: the handlers call back into Eval, which
// reads this table, so a package-level initializer would be a cycle.
var specialForms map[string]specialForm

func init() {
	specialForms = map[string]specialForm{
		"let":   sfLet,
		"fn":    sfFn,
		"if":    sfIf,
		"cond":  sfCond,
		"for":   sfFor,
		"while": sfWhile,
		"do":    sfDo,
		"quote": sfQuote,
		"eval":  sfEval,
		"at":    sfAt,
		"head":  sfHead,
		"rest":  sfRest,
		"cons":  sfCons,
		"get":   sfGet,
	}
}

// sfLet evaluates (let <sym> <expr>), binding the result to sym in env
// directly — no child frame is created, so a let inside a lambda body
// mutates that call's own frame and a top-level let mutates the session's
// root environment, letting later top-level forms see it.
func sfLet(e *Evaluator, args []value.Value, env value.Environment) value.Value {
	if len(args) != 2 {
		return value.Errf("let requires exactly 2 arguments, received %d", len(args))
	}
	name, ok := args[0].(value.Sym)
	if !ok {
		return value.ErrExpected("Sym", args[0].Tag())
	}
	v := e.Eval(args[1], env)
	if v.Kind() == value.KindErr {
		return v
	}
	env.Define(string(name), v)

	return v
}

// sfFn evaluates (fn (params...) body) into an Lfn closing over env.
func sfFn(e *Evaluator, args []value.Value, env value.Environment) value.Value {
	if len(args) != 2 {
		return value.Errf("fn requires exactly 2 arguments, received %d", len(args))
	}
	params, ok := args[0].(*value.Lst)
	if !ok {
		return value.ErrExpected("Lst", args[0].Tag())
	}

	return value.NewLfn(params, args[1], env)
}

// sfIf evaluates (if cond then [else]). A missing else yields an empty Lst.
func sfIf(e *Evaluator, args []value.Value, env value.Environment) value.Value {
	if len(args) < 2 || len(args) > 3 {
		return value.Errf("if requires 2 or 3 arguments, received %d", len(args))
	}
	cond := e.Eval(args[0], env)
	if cond.Kind() == value.KindErr {
		return cond
	}
	b, ok := cond.(value.Bool)
	if !ok {
		return value.ErrExpected("Bool", cond.Tag())
	}
	if b {
		return e.Eval(args[1], env)
	}
	if len(args) == 3 {
		return e.Eval(args[2], env)
	}

	return value.NewLst()
}

// sfCond evaluates (cond (test1 expr1) (test2 expr2) ...): each argument is
// itself a 2-element Lst. Returns the expr paired with the first truthy
// test, or an empty Lst if none match.
func sfCond(e *Evaluator, args []value.Value, env value.Environment) value.Value {
	if len(args) < 1 {
		return value.Errf("cond requires at least 1 argument")
	}
	for _, clause := range args {
		pair, ok := clause.(*value.Lst)
		if !ok || pair.Len() != 2 {
			return value.ErrExpected("(Any Any)", clause.Tag())
		}
		elems := pair.Elements()
		test := e.Eval(elems[0], env)
		if test.Kind() == value.KindErr {
			return test
		}
		b, ok := test.(value.Bool)
		if !ok {
			return value.ErrExpected("Bool", test.Tag())
		}
		if b {
			return e.Eval(elems[1], env)
		}
	}

	return value.NewLst()
}

// sfFor evaluates (for sym from to body): from/to evaluate to Int, the loop
// ranges over the half-open interval [min(from,to), max(from,to)), shadowing
// sym in env with each value in turn and evaluating body once per iteration.
// Returns the last body result, or an empty Lst for zero iterations; sym's
// prior binding (including none) is restored on exit.
func sfFor(e *Evaluator, args []value.Value, env value.Environment) value.Value {
	if len(args) != 4 {
		return value.Errf("for requires exactly 4 arguments, received %d", len(args))
	}
	name, ok := args[0].(value.Sym)
	if !ok {
		return value.ErrExpected("Sym", args[0].Tag())
	}
	fromVal := e.Eval(args[1], env)
	if fromVal.Kind() == value.KindErr {
		return fromVal
	}
	from, ok := fromVal.(value.Int)
	if !ok {
		return value.ErrExpected("Int", fromVal.Tag())
	}
	toVal := e.Eval(args[2], env)
	if toVal.Kind() == value.KindErr {
		return toVal
	}
	to, ok := toVal.(value.Int)
	if !ok {
		return value.ErrExpected("Int", toVal.Tag())
	}

	lo, hi := int64(from), int64(to)
	if lo > hi {
		lo, hi = hi, lo
	}

	prev, hadPrev := env.Shadow(string(name))
	defer env.Restore(string(name), prev, hadPrev)

	var result value.Value = value.NewLst()
	for i := lo; i < hi; i++ {
		env.Define(string(name), value.Int(i))
		result = e.Eval(args[3], env)
		if result.Kind() == value.KindErr {
			return result
		}
	}

	return result
}

// sfWhile evaluates (while cond body), re-evaluating cond before each
// iteration and stopping the first time it is false. Returns the last body
// result, or an empty Lst for zero iterations.
func sfWhile(e *Evaluator, args []value.Value, env value.Environment) value.Value {
	if len(args) != 2 {
		return value.Errf("while requires exactly 2 arguments, received %d", len(args))
	}
	var result value.Value = value.NewLst()
	for {
		cond := e.Eval(args[0], env)
		if cond.Kind() == value.KindErr {
			return cond
		}
		b, ok := cond.(value.Bool)
		if !ok {
			return value.ErrExpected("Bool", cond.Tag())
		}
		if !b {
			return result
		}
		result = e.Eval(args[1], env)
		if result.Kind() == value.KindErr {
			return result
		}
	}
}

// sfDo evaluates each form in sequence, returning the last (Nil if none).
func sfDo(e *Evaluator, args []value.Value, env value.Environment) value.Value {
	return evalBody(e, args, env)
}

// sfQuote returns its single argument unevaluated.
func sfQuote(e *Evaluator, args []value.Value, env value.Environment) value.Value {
	if len(args) != 1 {
		return value.Errf("quote requires exactly 1 argument, received %d", len(args))
	}

	return args[0]
}

// sfEval evaluates (eval expr). How many times expr is evaluated depends
// on its raw syntactic shape: a literal Str is read as source and the
// resulting form evaluated; a literal Lst is evaluated once to produce
// code, then evaluated again to run it; anything else is evaluated once.
func sfEval(e *Evaluator, args []value.Value, env value.Environment) value.Value {
	if len(args) != 1 {
		return value.Errf("eval requires exactly 1 argument, received %d", len(args))
	}

	switch form := args[0].(type) {
	case value.Str:
		return evalStringSource(e, form, env)
	case *value.Lst:
		code := e.Eval(args[0], env)
		if code.Kind() == value.KindErr {
			return code
		}

		return e.Eval(code, env)
	default:
		return e.Eval(args[0], env)
	}
}

// sfAt evaluates (at idx vec), indexing into a Vec. Out-of-range indices
// (including negative ones) yield Err("index out of bounds").
func sfAt(e *Evaluator, args []value.Value, env value.Environment) value.Value {
	if len(args) != 2 {
		return value.Errf("at requires exactly 2 arguments, received %d", len(args))
	}
	idxVal := e.Eval(args[0], env)
	if idxVal.Kind() == value.KindErr {
		return idxVal
	}
	idx, ok := idxVal.(value.Int)
	if !ok {
		return value.ErrExpected("Int", idxVal.Tag())
	}
	seqVal := e.Eval(args[1], env)
	if seqVal.Kind() == value.KindErr {
		return seqVal
	}
	vec, ok := seqVal.(*value.Vec)
	if !ok {
		return value.ErrExpected("Vec", seqVal.Tag())
	}
	v, ok := vec.At(int(idx))
	if !ok {
		return value.Errf("index out of bounds")
	}

	return v
}

// sfHead evaluates its argument once and returns the first element of the
// resulting Lst/Vec, or an empty Lst if it is empty.
func sfHead(e *Evaluator, args []value.Value, env value.Environment) value.Value {
	if len(args) != 1 {
		return value.Errf("head requires exactly 1 argument, received %d", len(args))
	}
	seqVal := e.Eval(args[0], env)
	if seqVal.Kind() == value.KindErr {
		return seqVal
	}
	elems, err := sequenceElements(seqVal)
	if err != nil {
		return err
	}
	if len(elems) == 0 {
		return value.NewLst()
	}

	return elems[0]
}

// sfRest evaluates its argument once and returns every element after the
// first, without further evaluation; empty input yields an empty Lst.
func sfRest(e *Evaluator, args []value.Value, env value.Environment) value.Value {
	if len(args) != 1 {
		return value.Errf("rest requires exactly 1 argument, received %d", len(args))
	}
	seqVal := e.Eval(args[0], env)
	if seqVal.Kind() == value.KindErr {
		return seqVal
	}
	elems, err := sequenceElements(seqVal)
	if err != nil {
		return err
	}
	if len(elems) == 0 {
		return value.NewLst()
	}

	return value.NewLst(elems[1:]...)
}

// sfCons evaluates (cons a b), constructing the literal two-element
// Lst(a, b) — a pair, not a prepend onto b's own elements. Grounded on
// original_source/stdlib/list.rs's own `list` helper, whose comment notes
// this cons "does not work with multiple elements": b is taken whole as
// the pair's second member, whatever kind of value it is.
func sfCons(e *Evaluator, args []value.Value, env value.Environment) value.Value {
	if len(args) != 2 {
		return value.Errf("cons requires exactly 2 arguments, received %d", len(args))
	}
	a := e.Eval(args[0], env)
	if a.Kind() == value.KindErr {
		return a
	}
	b := e.Eval(args[1], env)
	if b.Kind() == value.KindErr {
		return b
	}

	return value.NewLst(a, b)
}

// sfGet evaluates (get key map), returning an empty Lst on a missing key.
func sfGet(e *Evaluator, args []value.Value, env value.Environment) value.Value {
	if len(args) != 2 {
		return value.Errf("get requires exactly 2 arguments, received %d", len(args))
	}
	key := e.Eval(args[0], env)
	if key.Kind() == value.KindErr {
		return key
	}
	mapVal := e.Eval(args[1], env)
	if mapVal.Kind() == value.KindErr {
		return mapVal
	}
	m, ok := mapVal.(*value.Map)
	if !ok {
		return value.ErrExpected("Map", mapVal.Tag())
	}
	if v, found := m.Get(key); found {
		return v
	}

	return value.NewLst()
}

// evalBody evaluates forms in sequence and returns the last result, or Nil
// for an empty body.
func evalBody(e *Evaluator, forms []value.Value, env value.Environment) value.Value {
	var result value.Value = value.Nil{}
	for _, f := range forms {
		result = e.Eval(f, env)
		if result.Kind() == value.KindErr {
			return result
		}
	}

	return result
}

// evalStringSource reads s as risp source and evaluates the single
// top-level form it contains.
func evalStringSource(e *Evaluator, s value.Str, env value.Environment) value.Value {
	r := reader.New(lexer.New(string(s)))
	if r.AtEOF() {
		return value.Nil{}
	}
	form := r.Read()
	if form.Kind() == value.KindErr {
		return form
	}

	return e.Eval(form, env)
}

// sequenceElements extracts the elements of a Lst or Vec, or an Err for
// anything else.
func sequenceElements(v value.Value) ([]value.Value, value.Value) {
	switch s := v.(type) {
	case *value.Lst:
		return s.Elements(), nil
	case *value.Vec:
		return s.Elements(), nil
	default:
		return nil, value.ErrExpected("(Lst|Vec)", "("+v.Tag()+")")
	}
}
