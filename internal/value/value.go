package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies which of the twelve value variants a Value carries.
type Kind byte

const (
	KindErr Kind = iota
	KindStr
	KindSym
	KindNil
	KindBool
	KindFlt
	KindInt
	KindLst
	KindVec
	KindMap
	KindBfn
	KindLfn
)

func (k Kind) String() string {
	switch k {
	case KindErr:
		return "Err"
	case KindStr:
		return "Str"
	case KindSym:
		return "Sym"
	case KindNil:
		return "Nil"
	case KindBool:
		return "Bool"
	case KindFlt:
		return "Flt"
	case KindInt:
		return "Int"
	case KindLst:
		return "Lst"
	case KindVec:
		return "Vec"
	case KindMap:
		return "Map"
	case KindBfn:
		return "Bfn"
	case KindLfn:
		return "Lfn"
	default:
		return "?"
	}
}

// Value is implemented by every risp runtime value.
type Value interface {
	Kind() Kind
	// String returns the display form, as printed by write and the REPL.
	String() string
	// Tag returns the variant() form used inside error messages.
	Tag() string
	Equals(Value) bool
}

// Err is produced by failing operations. Its tag IS its message, so nested
// errors surface the original failure rather than just "Err".
type Err string

func (Err) Kind() Kind       { return KindErr }
func (e Err) String() string { return fmt.Sprintf("(Err: %s)", string(e)) }
func (e Err) Tag() string    { return string(e) }
func (e Err) Equals(v Value) bool {
	other, ok := v.(Err)

	return ok && e == other
}

// Errf builds an Err from a format string, mirroring the RErr family of
// constructors in the original implementation.
func Errf(format string, args ...any) Err {
	return Err(fmt.Sprintf(format, args...))
}

// ErrExpected reports a type or arity mismatch: "expected X, received Y".
func ErrExpected(expected, received string) Err {
	return Errf("expected %s, received %s", expected, received)
}

// ErrUnexpected reports an unexpected token or value: "unexpected X".
func ErrUnexpected(what string) Err {
	return Errf("unexpected %s", what)
}

// ErrUnboundSymbol reports a lookup miss: "unbound symbol 'name'".
func ErrUnboundSymbol(name string) Err {
	return Errf("unbound symbol '%s'", name)
}

// Str is literal text.
type Str string

func (Str) Kind() Kind       { return KindStr }
func (s Str) String() string { return fmt.Sprintf("%q", string(s)) }
func (Str) Tag() string      { return "Str" }
func (s Str) Equals(v Value) bool {
	other, ok := v.(Str)

	return ok && s == other
}

// Sym is an identifier. A symbol whose text begins with ':' is a
// self-evaluating keyword (see the evaluator's Sym dispatch).
type Sym string

func (Sym) Kind() Kind        { return KindSym }
func (s Sym) String() string  { return string(s) }
func (Sym) Tag() string       { return "Sym" }
func (s Sym) IsKeyword() bool { return strings.HasPrefix(string(s), ":") }
func (s Sym) Equals(v Value) bool {
	other, ok := v.(Sym)

	return ok && s == other
}

// Nil is the empty/unit sentinel. It equals only itself.
type Nil struct{}

func (Nil) Kind() Kind     { return KindNil }
func (Nil) String() string { return "nil" }
func (Nil) Tag() string    { return "Nil" }
func (Nil) Equals(v Value) bool {
	_, ok := v.(Nil)

	return ok
}

// Bool is true or false.
type Bool bool

func (Bool) Kind() Kind       { return KindBool }
func (b Bool) String() string { return strconv.FormatBool(bool(b)) }
func (Bool) Tag() string      { return "Bool" }
func (b Bool) Equals(v Value) bool {
	other, ok := v.(Bool)

	return ok && b == other
}

// Flt is a 64-bit float.
type Flt float64

func (Flt) Kind() Kind       { return KindFlt }
func (f Flt) String() string { return strconv.FormatFloat(float64(f), 'g', -1, 64) }
func (Flt) Tag() string      { return "Flt" }
func (f Flt) Equals(v Value) bool {
	switch other := v.(type) {
	case Flt:
		return f == other
	case Int:
		return float64(f) == float64(other)
	default:
		return false
	}
}

// Int is a 64-bit signed integer.
type Int int64

func (Int) Kind() Kind       { return KindInt }
func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }
func (Int) Tag() string      { return "Int" }
func (i Int) Equals(v Value) bool {
	switch other := v.(type) {
	case Int:
		return i == other
	case Flt:
		return float64(i) == float64(other)
	default:
		return false
	}
}

// Lst is an ordered sequence that acts as an application form whenever the
// evaluator evaluates it; as data it is read by head/rest like Vec, but `at`
// accepts only Vec. Its payload is shared by pointer and never mutated
// after New.
type Lst struct {
	elems []Value
}

// NewLst builds a Lst sharing the given slice; callers must not mutate
// elems after passing it in.
func NewLst(elems ...Value) *Lst {
	return &Lst{elems: elems}
}

func (l *Lst) Kind() Kind        { return KindLst }
func (l *Lst) Len() int          { return len(l.elems) }
func (l *Lst) Elements() []Value { return l.elems }
func (l *Lst) At(i int) (Value, bool) {
	if i < 0 || i >= len(l.elems) {
		return nil, false
	}

	return l.elems[i], true
}

func (l *Lst) String() string { return "(" + joinValues(l.elems) + ")" }
func (l *Lst) Tag() string    { return "(" + joinTags(l.elems) + ")" }
func (l *Lst) Equals(v Value) bool {
	other, ok := v.(*Lst)

	return ok && elemsEqual(l.elems, other.elems)
}

// Vec is a data-only ordered sequence, indexable by integer via `at`.
type Vec struct {
	elems []Value
}

// NewVec builds a Vec sharing the given slice; callers must not mutate
// elems after passing it in.
func NewVec(elems ...Value) *Vec {
	return &Vec{elems: elems}
}

func (v *Vec) Kind() Kind        { return KindVec }
func (v *Vec) Len() int          { return len(v.elems) }
func (v *Vec) Elements() []Value { return v.elems }
func (v *Vec) At(i int) (Value, bool) {
	if i < 0 || i >= len(v.elems) {
		return nil, false
	}

	return v.elems[i], true
}

func (v *Vec) String() string { return "[" + joinValues(v.elems) + "]" }
func (v *Vec) Tag() string    { return "(" + joinTags(v.elems) + ")" }
func (v *Vec) Equals(other Value) bool {
	o, ok := other.(*Vec)

	return ok && elemsEqual(v.elems, o.elems)
}

func joinValues(vs []Value) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.String()
	}

	return strings.Join(parts, " ")
}

func joinTags(vs []Value) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.Tag()
	}

	return strings.Join(parts, " ")
}

func elemsEqual(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equals(b[i]) {
			return false
		}
	}

	return true
}

// Map is a mapping from hashable values to values. Keys are restricted to
// Err, Str, Sym, Bool, and Int; NewMap rejects everything else.
type Map struct {
	keys   []Value
	values map[hashKey]Value
}

// NewMap pairs up elems (key, value, key, value, ...) into a Map. An odd
// number of elements or a non-hashable key produces an Err instead.
func NewMap(elems ...Value) Value {
	if len(elems)%2 != 0 {
		return Errf("uneven number of elements in hash map")
	}
	m := &Map{values: make(map[hashKey]Value, len(elems)/2)}
	for i := 0; i < len(elems); i += 2 {
		k, v := elems[i], elems[i+1]
		hk, ok := hashOf(k)
		if !ok {
			return Errf("%s is not hashable", k.Tag())
		}
		if _, exists := m.values[hk]; !exists {
			m.keys = append(m.keys, k)
		}
		m.values[hk] = v
	}

	return m
}

func (m *Map) Kind() Kind { return KindMap }
func (m *Map) Len() int   { return len(m.keys) }

// Keys returns the keys in insertion order.
func (m *Map) Keys() []Value { return m.keys }

// Get looks up the value bound to key, reporting whether it was found.
func (m *Map) Get(key Value) (Value, bool) {
	hk, ok := hashOf(key)
	if !ok {
		return nil, false
	}
	v, ok := m.values[hk]

	return v, ok
}

func (m *Map) String() string {
	parts := make([]string, 0, len(m.keys)*2)
	for _, k := range m.keys {
		v, _ := m.Get(k)
		parts = append(parts, k.String(), v.String())
	}

	return "{" + strings.Join(parts, " ") + "}"
}

func (m *Map) Tag() string {
	parts := make([]string, 0, len(m.keys)*2)
	for _, k := range m.keys {
		v, _ := m.Get(k)
		parts = append(parts, k.Tag(), v.Tag())
	}

	return "(" + strings.Join(parts, " ") + ")"
}

func (m *Map) Equals(other Value) bool {
	o, ok := other.(*Map)
	if !ok || len(m.keys) != len(o.keys) {
		return false
	}
	for _, k := range m.keys {
		v, _ := m.Get(k)
		ov, found := o.Get(k)
		if !found || !v.Equals(ov) {
			return false
		}
	}

	return true
}

// EvalFunc evaluates a single value tree in env. A Bfn receives one of
// these alongside its raw arguments so it can decide for itself what (and
// how many times) to evaluate, without this package depending on the
// evaluator that implements it.
type EvalFunc func(v Value, env Environment) Value

// BuiltinFn is the signature every Bfn payload carries: it receives the
// raw, unevaluated argument subtrees, the environment they should be
// evaluated in, and the evaluator callback to do so with.
type BuiltinFn func(args []Value, env Environment, eval EvalFunc) Value

// Bfn is a native function. Two Bfn values are equal iff they share a name.
type Bfn struct {
	name string
	fn   BuiltinFn
}

// NewBfn wraps fn as a named builtin.
func NewBfn(name string, fn BuiltinFn) *Bfn {
	return &Bfn{name: name, fn: fn}
}

func (b *Bfn) Kind() Kind   { return KindBfn }
func (b *Bfn) Name() string { return b.name }
func (b *Bfn) String() string { return "Builtin-Fn" }
func (b *Bfn) Tag() string    { return "Bfn" }
func (b *Bfn) Call(args []Value, env Environment, eval EvalFunc) Value {
	return b.fn(args, env, eval)
}
func (b *Bfn) Equals(v Value) bool {
	other, ok := v.(*Bfn)

	return ok && b.name == other.name
}

// Lfn is a user-defined lambda: params must be a Lst of Sym, body is an
// unevaluated value tree, closed over the environment active at the `fn`
// special form's evaluation.
type Lfn struct {
	Params *Lst
	Body   Value
	Env    Environment
}

// NewLfn validates params (every element must be a Sym) and builds a
// closure over env. On a non-symbol parameter it returns an Err instead.
func NewLfn(params *Lst, body Value, env Environment) Value {
	for _, p := range params.Elements() {
		if _, ok := p.(Sym); !ok {
			return Errf("parameters must be symbols")
		}
	}

	return &Lfn{Params: params, Body: body, Env: env}
}

func (f *Lfn) Kind() Kind     { return KindLfn }
func (f *Lfn) String() string { return fmt.Sprintf("(Fn %s %s)", f.Params.String(), f.Body.String()) }
func (f *Lfn) Tag() string    { return "Lfn" }
func (f *Lfn) Equals(Value) bool { return false }

// ParamNames returns the lambda's parameter symbols as plain strings.
func (f *Lfn) ParamNames() []string {
	names := make([]string, f.Params.Len())
	for i, p := range f.Params.Elements() {
		names[i] = string(p.(Sym))
	}

	return names
}
