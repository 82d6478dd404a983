// Package lexer provides lexical analysis for risp source text.
//
// Unlike a lexer for a language with keywords and infix operators, risp's
// token grammar is almost flat: brackets delimit compound forms, a quoted
// run is a string, and everything else is one ATOM token. Classifying an
// atom as nil/true/false, a number, or a symbol is deferred to the reader's
// atom-parsing step, not decided here.
//
// Comment Handling:
//   - `;` begins a line comment that runs to end-of-line; dropped entirely.
//
// Position Tracking:
//   - Line/column are recorded on every token; the reader's Err values do
//     not include them.
//
// String Processing:
//   - Double-quoted, with \\, \", \n escapes; an unterminated string
//     produces an ILLEGAL token rather than running off the end of input.
//
// Usage Example:
//
//	l := lexer.New(`(+ 1 2)`)
//	for {
//	    tok := l.NextToken()
//	    if tok.Type == lexer.TOKEN_EOF {
//	        break
//	    }
//	    fmt.Printf("%s: %s\n", tok.Type, tok.Literal)
//	}
package lexer
