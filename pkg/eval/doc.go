// Package eval implements risp's tree-walking evaluator.
//
// There is one calling convention throughout: every special form and every
// Bfn receives the raw, unevaluated argument subtrees plus the environment
// they should run in, and decides for itself what (and how many times) to
// evaluate. The evaluator's job is just to recognize the three shapes a
// list's head can take — a special form name, a value that evaluates to a
// Bfn, or a value that evaluates to an Lfn — and dispatch accordingly.
// Lfn application is the one place arguments are evaluated uniformly,
// applicative-order, before binding.
//
// Special Forms:
//
//	let fn if cond for while do quote eval at head rest cons get
//
// Errors never leave this package as Go errors: every failure, from a
// wrong-arity call to an unbound symbol, is an Err value returned like any
// other result.
//
// Usage Example:
//
//	ev := eval.New(os.Stdin, os.Stdout)
//	env := ev.NewEnv()
//	v := ev.Eval(reader.New(lexer.New(`(+ 1 2)`)).Read(), env)
//	fmt.Println(v) // 3
package eval
