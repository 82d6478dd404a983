// Package reader turns a token stream into value.Value trees.
//
// There is no separate AST: risp is homoiconic, so reading a program and
// reading data are the same operation, and `quote`/`eval` rely on exactly
// that. A read failure (unmatched bracket, malformed number, unterminated
// string) is not reported out-of-band — it is folded into the tree as an
// Err value at the point the failure was found, the same way a failed
// builtin call is.
//
// Atom Classification:
//
// An ATOM token is classified in this order: nil/true/false, an integer
// (overflow -> Err), a float, otherwise a symbol. A STRING token is never
// reclassified — the lexer already stripped its quotes and escapes.
//
// Usage Example:
//
//	r := reader.New(lexer.New(`(+ 1 2)`))
//	v := r.Read() // *value.Lst{Sym("+"), Int(1), Int(2)}
package reader
