package eval

import (
	"strings"
	"testing"

	"github.com/acarlson99/risp/internal/value"
	"github.com/acarlson99/risp/pkg/lexer"
	"github.com/acarlson99/risp/pkg/reader"
)

func testEval(t *testing.T, input string) value.Value {
	t.Helper()
	r := reader.New(lexer.New(input))
	form := r.Read()
	e := New(strings.NewReader(""), &strings.Builder{})

	return e.Eval(form, e.NewEnv())
}

func testInt(t *testing.T, v value.Value, want int64) {
	t.Helper()
	i, ok := v.(value.Int)
	if !ok {
		t.Fatalf("not an Int: %s", v)
	}
	if int64(i) != want {
		t.Fatalf("got %d, want %d", i, want)
	}
}

func testBool(t *testing.T, v value.Value, want bool) {
	t.Helper()
	b, ok := v.(value.Bool)
	if !ok {
		t.Fatalf("not a Bool: %s", v)
	}
	if bool(b) != want {
		t.Fatalf("got %t, want %t", b, want)
	}
}

func testErr(t *testing.T, v value.Value) {
	t.Helper()
	if v.Kind() != value.KindErr {
		t.Fatalf("expected Err, got %s (%s)", v.Kind(), v)
	}
}

func testEmptyLst(t *testing.T, v value.Value) {
	t.Helper()
	if !v.Equals(value.NewLst()) {
		t.Fatalf("expected empty Lst, got %s", v)
	}
}

func TestEvalArithmetic(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"(+ 1 2)", 3},
		{"(+ 1 2 3 4)", 10},
		{"(- 10 3)", 7},
		{"(- 10 3 2)", 5},
		{"(* 2 3 4)", 24},
		{"(% 10 3)", 1},
	}
	for _, tt := range tests {
		testInt(t, testEval(t, tt.input), tt.want)
	}
}

// + and * seed from an algebraic identity (0 and 1 respectively) and fold
// over however many arguments they are given, including zero or one.
func TestEvalArithmeticIdentitySeed(t *testing.T) {
	testInt(t, testEval(t, "(+)"), 0)
	testInt(t, testEval(t, "(+ 5)"), 5)
	testInt(t, testEval(t, "(*)"), 1)
	testInt(t, testEval(t, "(* 5)"), 5)
}

func TestEvalArithmeticOverflow(t *testing.T) {
	testErr(t, testEval(t, "(+ 9223372036854775807 1)"))
}

// - / % have no identity to seed from and require at least 2 arguments.
func TestEvalArithmeticArityError(t *testing.T) {
	testErr(t, testEval(t, "(- 1)"))
	testErr(t, testEval(t, "(/ 1)"))
}

func TestEvalBitwiseNotAndFloorMapToLst(t *testing.T) {
	got := testEval(t, "(~ 0)")
	want := value.NewLst(value.Int(-1))
	if !got.Equals(want) {
		t.Fatalf("~: got %s, want %s", got, want)
	}

	got = testEval(t, "(floor 1.9 2.1 3)")
	want = value.NewLst(value.Int(1), value.Int(2), value.Int(3))
	if !got.Equals(want) {
		t.Fatalf("floor: got %s, want %s", got, want)
	}
}

func TestEvalComparison(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"(< 1 2 3)", true},
		{"(< 1 3 2)", false},
		{"(<= 1 1 2)", true},
		{"(> 3 2 1)", true},
		{"(= 1 1 1)", true},
		{"(!= 1 2)", true},
	}
	for _, tt := range tests {
		testBool(t, testEval(t, tt.input), tt.want)
	}
}

func TestEvalLogic(t *testing.T) {
	testBool(t, testEval(t, "(and true true)"), true)
	testBool(t, testEval(t, "(and true false)"), false)
	testBool(t, testEval(t, "(or false true)"), true)
	testBool(t, testEval(t, "(not false)"), true)
	testBool(t, testEval(t, "(&& true true)"), true)
	testBool(t, testEval(t, "(|| false false)"), false)
	testBool(t, testEval(t, "(! true)"), false)
}

func TestEvalIf(t *testing.T) {
	testInt(t, testEval(t, "(if true 1 2)"), 1)
	testInt(t, testEval(t, "(if false 1 2)"), 2)
	testEmptyLst(t, testEval(t, "(if false 1)"))
}

func TestEvalCond(t *testing.T) {
	testInt(t, testEval(t, "(cond (false 1) (true 2))"), 2)
	testEmptyLst(t, testEval(t, "(cond (false 1) (false 2))"))
}

func TestEvalLet(t *testing.T) {
	got := testEval(t, "(do (let x 1) (let y 2) (+ x y))")
	testInt(t, got, 3)
}

func TestEvalLetReturnsBoundValue(t *testing.T) {
	testInt(t, testEval(t, "(let x 5)"), 5)
}

func TestEvalFnAndApply(t *testing.T) {
	got := testEval(t, "(do (let f (fn (a b) (+ a b))) (f 3 4))")
	testInt(t, got, 7)
}

func TestEvalFnArityError(t *testing.T) {
	got := testEval(t, "(do (let f (fn (a b) (+ a b))) (f 3))")
	testErr(t, got)
}

func TestEvalWhileFalseConditionNeverRuns(t *testing.T) {
	testEmptyLst(t, testEval(t, "(while false (at 99 (vec)))"))
}

func TestEvalWhileRuns(t *testing.T) {
	got := testEval(t, "(do (let i 0) (let acc 0) (while (< i 3) (do (let acc (+ acc i)) (let i (+ i 1)))) acc)")
	testInt(t, got, 3)
}

func TestEvalQuoteAndEval(t *testing.T) {
	got := testEval(t, "(quote (+ 1 2))")
	want := value.NewLst(value.Sym("+"), value.Int(1), value.Int(2))
	if !got.Equals(want) {
		t.Fatalf("quote: got %s, want %s", got, want)
	}

	testInt(t, testEval(t, "(eval (quote (+ 1 2)))"), 3)
	testInt(t, testEval(t, `(eval "(+ 1 2)")`), 3)
}

func TestEvalHeadRestCons(t *testing.T) {
	testInt(t, testEval(t, "(head (list 1 2 3))"), 1)

	got := testEval(t, "(rest (list 1 2 3))")
	want := value.NewLst(value.Int(2), value.Int(3))
	if !got.Equals(want) {
		t.Fatalf("rest: got %s, want %s", got, want)
	}

	testEmptyLst(t, testEval(t, "(head (list))"))

	// cons builds a literal two-element pair, not a prepend onto an
	// existing list's own elements.
	gotCons := testEval(t, "(cons 1 (list 2 3))")
	wantCons := value.NewLst(value.Int(1), value.NewLst(value.Int(2), value.Int(3)))
	if !gotCons.Equals(wantCons) {
		t.Fatalf("cons: got %s, want %s", gotCons, wantCons)
	}
}

func TestEvalAtAndGet(t *testing.T) {
	testInt(t, testEval(t, "(at 1 (vec 10 20 30))"), 20)
	testErr(t, testEval(t, "(at 9 (vec 10 20))"))
	testInt(t, testEval(t, "(get :a (map :a 1 :b 2))"), 1)
	testEmptyLst(t, testEval(t, "(get :z (map :a 1))"))
}

func TestEvalAtRejectsLst(t *testing.T) {
	testErr(t, testEval(t, "(at 0 (list 1 2))"))
}

func TestEvalMapHashabilityError(t *testing.T) {
	testErr(t, testEval(t, "(map (vec) 1)"))
}

func TestEvalUnboundSymbol(t *testing.T) {
	testErr(t, testEval(t, "nosuchvar"))
}

func TestEvalForLoop(t *testing.T) {
	got := testEval(t, "(for i 0 3 (+ i 1))")
	testInt(t, got, 3)
}

func TestEvalForEmptyRange(t *testing.T) {
	testEmptyLst(t, testEval(t, "(for i 3 3 i)"))
}

func TestEvalForRestoresShadowedBinding(t *testing.T) {
	got := testEval(t, "(do (let i 99) (for i 0 2 i) i)")
	testInt(t, got, 99)
}
