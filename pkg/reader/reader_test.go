package reader

import (
	"testing"

	"github.com/acarlson99/risp/internal/value"
	"github.com/acarlson99/risp/pkg/lexer"
)

func read(t *testing.T, input string) value.Value {
	t.Helper()
	r := New(lexer.New(input))

	return r.Read()
}

func TestReadAtoms(t *testing.T) {
	tests := []struct {
		input string
		want  value.Value
	}{
		{"nil", value.Nil{}},
		{"true", value.Bool(true)},
		{"false", value.Bool(false)},
		{"42", value.Int(42)},
		{"-7", value.Int(-7)},
		{"3.14", value.Flt(3.14)},
		{".5", value.Flt(.5)},
		{"foo", value.Sym("foo")},
		{":kw", value.Sym(":kw")},
	}

	for _, tt := range tests {
		got := read(t, tt.input)
		if !got.Equals(tt.want) {
			t.Errorf("read(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}
}

func TestReadIntegerOverflow(t *testing.T) {
	got := read(t, "99999999999999999999999999")
	if got.Kind() != value.KindErr {
		t.Fatalf("expected Err, got %s", got.Kind())
	}
}

func TestReadString(t *testing.T) {
	got := read(t, `"hello"`)
	want := value.Str("hello")
	if !got.Equals(want) {
		t.Fatalf("read string: got %s, want %s", got, want)
	}
}

func TestReadUnterminatedString(t *testing.T) {
	got := read(t, `"hello`)
	if got.Kind() != value.KindErr {
		t.Fatalf("expected Err, got %s", got.Kind())
	}
}

func TestReadList(t *testing.T) {
	got := read(t, "(+ 1 2)")
	want := value.NewLst(value.Sym("+"), value.Int(1), value.Int(2))
	if !got.Equals(want) {
		t.Fatalf("read list: got %s, want %s", got, want)
	}
}

func TestReadNestedCompounds(t *testing.T) {
	got := read(t, "[1 (2 3) {:a 1}]")
	want := value.NewVec(
		value.Int(1),
		value.NewLst(value.Int(2), value.Int(3)),
		value.NewMap(value.Sym(":a"), value.Int(1)),
	)
	if !got.Equals(want) {
		t.Fatalf("read nested: got %s, want %s", got, want)
	}
}

func TestReadUnclosedList(t *testing.T) {
	got := read(t, "(+ 1 2")
	if got.Kind() != value.KindErr {
		t.Fatalf("expected Err for unclosed list, got %s", got.Kind())
	}
}

func TestReadUnmatchedCloseBracket(t *testing.T) {
	got := read(t, ")")
	if got.Kind() != value.KindErr {
		t.Fatalf("expected Err for stray ')', got %s", got.Kind())
	}
}

func TestReadMultipleTopLevelForms(t *testing.T) {
	r := New(lexer.New("1 2 3"))

	var got []value.Value
	for !r.AtEOF() {
		got = append(got, r.Read())
	}

	want := []value.Value{value.Int(1), value.Int(2), value.Int(3)}
	for i := range want {
		if !got[i].Equals(want[i]) {
			t.Fatalf("form %d: got %s, want %s", i, got[i], want[i])
		}
	}
}
