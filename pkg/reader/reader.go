package reader

import (
	"regexp"
	"strconv"

	"github.com/acarlson99/risp/internal/value"
	"github.com/acarlson99/risp/pkg/lexer"
)

var (
	intRe   = regexp.MustCompile(`^[+-]?\d+$`)
	floatRe = regexp.MustCompile(`^[+-]?(\d+\.\d*|\.\d+)([eE][+-]?\d+)?$|^[+-]?\d+[eE][+-]?\d+$`)
)

// compoundKind selects the Value constructor a bracket pair builds.
type compoundKind int

const (
	compoundLst compoundKind = iota
	compoundVec
	compoundMap
)

// Reader turns a token stream into value.Value trees, one top-level
// expression per Read call. It never panics: any malformed input becomes
// an Err value at the point the malformation was found.
type Reader struct {
	l    *lexer.Lexer
	cur  lexer.Token
	peek lexer.Token
}

// New creates a Reader over l, primed to return the first token.
func New(l *lexer.Lexer) *Reader {
	r := &Reader{l: l}
	r.advance()
	r.advance()

	return r
}

func (r *Reader) advance() {
	r.cur = r.peek
	r.peek = r.l.NextToken()
}

// AtEOF reports whether the reader has consumed the entire token stream.
func (r *Reader) AtEOF() bool {
	return r.cur.Type == lexer.TOKEN_EOF
}

// Read parses and returns the next top-level expression. Calling Read past
// end-of-input repeatedly returns the same EOF Err without advancing
// further.
func (r *Reader) Read() value.Value {
	switch r.cur.Type {
	case lexer.TOKEN_EOF:
		return value.ErrExpected("expression", "EOF")
	case lexer.TOKEN_ILLEGAL:
		r.advance()

		return value.ErrExpected(`"`, "EOF")
	case lexer.TOKEN_LPAREN:
		return r.readCompound(lexer.TOKEN_RPAREN, ")", compoundLst)
	case lexer.TOKEN_LBRACKET:
		return r.readCompound(lexer.TOKEN_RBRACKET, "]", compoundVec)
	case lexer.TOKEN_LBRACE:
		return r.readCompound(lexer.TOKEN_RBRACE, "}", compoundMap)
	case lexer.TOKEN_RPAREN, lexer.TOKEN_RBRACKET, lexer.TOKEN_RBRACE:
		lit := r.cur.Literal
		r.advance()

		return value.ErrUnexpected(lit)
	case lexer.TOKEN_STRING:
		s := r.cur.Literal
		r.advance()

		return value.Str(s)
	default: // TOKEN_ATOM
		s := r.cur.Literal
		r.advance()

		return parseAtom(s)
	}
}

// readCompound consumes tokens until close, one Read per element, and
// builds the compound that kind names. The opening bracket has already
// been seen; it is consumed here.
func (r *Reader) readCompound(close lexer.TokenType, closeLit string, kind compoundKind) value.Value {
	r.advance() // consume opening bracket

	var elems []value.Value
	for {
		switch r.cur.Type {
		case close:
			r.advance()

			return buildCompound(kind, elems)
		case lexer.TOKEN_EOF:
			return value.ErrExpected(closeLit, "EOF")
		default:
			elems = append(elems, r.Read())
		}
	}
}

func buildCompound(kind compoundKind, elems []value.Value) value.Value {
	switch kind {
	case compoundVec:
		return value.NewVec(elems...)
	case compoundMap:
		return value.NewMap(elems...)
	default:
		return value.NewLst(elems...)
	}
}

// parseAtom classifies a raw ATOM token's text: nil/true/false, an
// integer (overflow -> Err), a float, otherwise a symbol.
func parseAtom(s string) value.Value {
	switch s {
	case "nil":
		return value.Nil{}
	case "true":
		return value.Bool(true)
	case "false":
		return value.Bool(false)
	}

	if intRe.MatchString(s) {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return value.Errf("integer overflow")
		}

		return value.Int(n)
	}

	if floatRe.MatchString(s) {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return value.Errf("malformed float %q", s)
		}

		return value.Flt(f)
	}

	return value.Sym(s)
}
