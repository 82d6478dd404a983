// Package value provides the runtime value system for the risp interpreter.
//
// risp values are a closed, tagged sum type: every expression the reader
// produces and every result the evaluator computes is one of the twelve
// variants defined in this package (Err, Str, Sym, Nil, Bool, Flt, Int,
// Lst, Vec, Map, Bfn, Lfn). The reader and the evaluator share this single
// tree type — there is no separate AST — so quoting and re-evaluating code
// as data (the `quote`/`eval` special forms) require no conversion step.
//
// Core Design Principles:
//
// Shared-ownership immutability:
//
//	Compound values (Lst, Vec, Map, Lfn) are pointers to structs wrapping a
//	Go slice or map. Once built they are never mutated in place; any
//	operation that would change one builds a fresh payload instead. Cloning
//	a value is therefore always cheap: atoms copy by value, compounds copy
//	a pointer.
//
// Errors are values:
//
//	Err is not a Go error, it is an ordinary variant. Evaluation never
//	panics or returns a second error value for anything reachable from
//	interpreted code; a failing operation simply returns an Err, and
//	callers decide whether to propagate it (most do, via the short-circuit
//	rules described on the evaluator and builtins).
//
// Mixed-precision numerics:
//
//	Int and Flt compare and order against each other by promoting the Int
//	side to float64. No other pair of distinct variants compares equal.
//
// Hashability:
//
//	Only Err, Str, Sym, Bool, and Int may be used as Map keys. hashOf folds a
//	value down to a comparable Go key; non-hashable variants report no key
//	at all so a Map construction can reject them.
package value
