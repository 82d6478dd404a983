package eval

import (
	"bufio"
	"io"

	"github.com/acarlson99/risp/internal/risplog"
	"github.com/acarlson99/risp/internal/value"
)

// Evaluator holds the builtin registry and the I/O streams `read`/`write`
// operate against. It carries no other state: everything else a running
// program needs lives in the value.Environment threaded through Eval.
type Evaluator struct {
	builtins map[string]value.Value
	in       io.Reader
	out      io.Writer
	inReader *bufio.Reader
}

// New creates an Evaluator whose `read`/`write` builtins operate against
// in/out, populated with every builtin risp ships.
func New(in io.Reader, out io.Writer) *Evaluator {
	e := &Evaluator{
		builtins: make(map[string]value.Value),
		in:       in,
		out:      out,
	}
	e.registerBuiltins()

	return e
}

// NewEnv builds a root environment pre-populated with every builtin.
func (e *Evaluator) NewEnv() value.Environment {
	env := value.NewEnv()
	for name, b := range e.builtins {
		env.Define(name, b)
	}

	return env
}

// Eval evaluates v in env and returns its result. It never returns nil;
// failures are Err values like any other result.
func (e *Evaluator) Eval(v value.Value, env value.Environment) value.Value {
	switch vv := v.(type) {
	case value.Sym:
		return e.evalSym(vv, env)
	case *value.Lst:
		return e.evalList(vv, env)
	case *value.Vec:
		return e.evalVec(vv, env)
	case *value.Map:
		return e.evalMap(vv, env)
	default:
		// Err, Str, Nil, Bool, Flt, Int, *Bfn, *Lfn are self-evaluating.
		return v
	}
}

func (e *Evaluator) evalSym(s value.Sym, env value.Environment) value.Value {
	if s.IsKeyword() {
		return s
	}
	if v, ok := env.Lookup(string(s)); ok {
		return v
	}

	return value.ErrUnboundSymbol(string(s))
}

// evalVec evaluates a Vec as data: each element evaluated left to right,
// the first Err encountered short-circuits the rest.
func (e *Evaluator) evalVec(v *value.Vec, env value.Environment) value.Value {
	elems := make([]value.Value, v.Len())
	for i, el := range v.Elements() {
		r := e.Eval(el, env)
		if r.Kind() == value.KindErr {
			return r
		}
		elems[i] = r
	}

	return value.NewVec(elems...)
}

// evalMap evaluates a Map literal by evaluating every key and value,
// then re-pairing them through NewMap (which re-checks hashability of the
// now-evaluated keys).
func (e *Evaluator) evalMap(m *value.Map, env value.Environment) value.Value {
	elems := make([]value.Value, 0, m.Len()*2)
	for _, k := range m.Keys() {
		v, _ := m.Get(k)
		ek := e.Eval(k, env)
		if ek.Kind() == value.KindErr {
			return ek
		}
		ev := e.Eval(v, env)
		if ev.Kind() == value.KindErr {
			return ev
		}
		elems = append(elems, ek, ev)
	}

	return value.NewMap(elems...)
}

// evalList is the heart of the evaluator: an empty list self-evaluates, a
// symbol head names either a special form or a function to resolve and
// apply, otherwise the head is evaluated and must itself be callable.
func (e *Evaluator) evalList(l *value.Lst, env value.Environment) value.Value {
	if l.Len() == 0 {
		return l
	}

	head := l.Elements()[0]
	rest := l.Elements()[1:]

	if sym, ok := head.(value.Sym); ok {
		if sf, ok := specialForms[string(sym)]; ok {
			risplog.Debug("special form", "name", string(sym))

			return sf(e, rest, env)
		}
	}

	fn := e.Eval(head, env)
	if fn.Kind() == value.KindErr {
		return fn
	}

	return e.applyRaw(fn, rest, env)
}

// applyRaw dispatches a call by the callee's kind. Bfn receives the raw
// argument subtrees and decides for itself what to evaluate; Lfn always
// evaluates every argument first (applicative order) before binding.
func (e *Evaluator) applyRaw(fn value.Value, rawArgs []value.Value, env value.Environment) value.Value {
	switch f := fn.(type) {
	case *value.Bfn:
		risplog.Debug("builtin call", "name", f.Name())

		return f.Call(rawArgs, env, e.Eval)
	case *value.Lfn:
		args := make([]value.Value, len(rawArgs))
		for i, a := range rawArgs {
			v := e.Eval(a, env)
			if v.Kind() == value.KindErr {
				return v
			}
			args[i] = v
		}

		return e.applyLfn(f, args)
	default:
		return value.ErrExpected("Fn", fn.Tag())
	}
}

func (e *Evaluator) applyLfn(f *value.Lfn, args []value.Value) value.Value {
	params := f.ParamNames()
	if len(args) != len(params) {
		return value.Errf("expected %d argument(s), received %d", len(params), len(args))
	}

	callEnv := f.Env.Clone()
	for i, name := range params {
		callEnv.Define(name, args[i])
	}

	return e.Eval(f.Body, callEnv)
}
