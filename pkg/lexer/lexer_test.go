package lexer

import "testing"

func TestNextTokenBrackets(t *testing.T) {
	input := `(+ 1 [2 3] {:a 1})`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{TOKEN_LPAREN, "("},
		{TOKEN_ATOM, "+"},
		{TOKEN_ATOM, "1"},
		{TOKEN_LBRACKET, "["},
		{TOKEN_ATOM, "2"},
		{TOKEN_ATOM, "3"},
		{TOKEN_RBRACKET, "]"},
		{TOKEN_LBRACE, "{"},
		{TOKEN_ATOM, ":a"},
		{TOKEN_ATOM, "1"},
		{TOKEN_RBRACE, "}"},
		{TOKEN_RPAREN, ")"},
		{TOKEN_EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%s, got=%s", i, tt.expectedType, tok.Type)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestNextTokenStrings(t *testing.T) {
	input := `"hello world" "escaped \"quote\"" "line\nbreak"`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{TOKEN_STRING, "hello world"},
		{TOKEN_STRING, `escaped "quote"`},
		{TOKEN_STRING, "line\nbreak"},
		{TOKEN_EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%s, got=%s", i, tt.expectedType, tok.Type)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestNextTokenUnterminatedString(t *testing.T) {
	l := New(`"no closing quote`)
	tok := l.NextToken()
	if tok.Type != TOKEN_ILLEGAL {
		t.Fatalf("expected TOKEN_ILLEGAL, got %s", tok.Type)
	}
}

func TestNextTokenComments(t *testing.T) {
	input := "; a comment\n(+ 1 2) ; trailing"

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{TOKEN_LPAREN, "("},
		{TOKEN_ATOM, "+"},
		{TOKEN_ATOM, "1"},
		{TOKEN_ATOM, "2"},
		{TOKEN_RPAREN, ")"},
		{TOKEN_EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%s, got=%s", i, tt.expectedType, tok.Type)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestNextTokenQuoteAndQuasiquoteChars(t *testing.T) {
	input := "' ` ,@ , ^ @"

	tests := []string{"'", "`", ",@", ",", "^", "@"}

	l := New(input)
	for i, expected := range tests {
		tok := l.NextToken()
		if tok.Type != TOKEN_ATOM {
			t.Fatalf("tests[%d] - expected TOKEN_ATOM, got %s", i, tok.Type)
		}
		if tok.Literal != expected {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q", i, expected, tok.Literal)
		}
	}
}
