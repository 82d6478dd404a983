package value

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// valueCmp compares two Value trees via Equals rather than struct field
// reflection — compound values embed unexported slices/maps that go-cmp
// cannot see into on its own, and Equals is already the authoritative
// notion of sameness for every variant (see Map's insertion-order-blind
// Equals below).
var valueCmp = cmp.Comparer(func(a, b Value) bool { return a.Equals(b) })

func TestLstEquals(t *testing.T) {
	a := NewLst(Int(1), Str("x"), Bool(true))
	b := NewLst(Int(1), Str("x"), Bool(true))
	if diff := cmp.Diff(a, b, valueCmp); diff != "" {
		t.Fatalf("Lst mismatch (-got +want):\n%s", diff)
	}

	c := NewLst(Int(1), Str("y"))
	if cmp.Equal(a, c, valueCmp) {
		t.Fatalf("expected %s != %s", a, c)
	}
}

func TestIntFltCrossEquals(t *testing.T) {
	if !Int(2).Equals(Flt(2.0)) {
		t.Fatalf("Int(2) should equal Flt(2.0)")
	}
	if !Flt(2.0).Equals(Int(2)) {
		t.Fatalf("Flt(2.0) should equal Int(2)")
	}
	if Int(2).Equals(Flt(2.5)) {
		t.Fatalf("Int(2) should not equal Flt(2.5)")
	}
}

func TestMapEqualsIgnoresInsertionOrder(t *testing.T) {
	a := NewMap(Sym(":a"), Int(1), Sym(":b"), Int(2))
	b := NewMap(Sym(":b"), Int(2), Sym(":a"), Int(1))
	if diff := cmp.Diff(a, b, valueCmp); diff != "" {
		t.Fatalf("Map mismatch (-got +want):\n%s", diff)
	}
}

func TestMapRejectsUnhashableKey(t *testing.T) {
	got := NewMap(NewVec(Int(1)), Int(1))
	if got.Kind() != KindErr {
		t.Fatalf("expected Err for unhashable key, got %s", got)
	}
}

func TestMapRejectsOddElementCount(t *testing.T) {
	got := NewMap(Sym(":a"), Int(1), Sym(":b"))
	if got.Kind() != KindErr {
		t.Fatalf("expected Err for uneven elements, got %s", got)
	}
}

func TestMapGetMissingKey(t *testing.T) {
	m := NewMap(Sym(":a"), Int(1)).(*Map)
	if _, ok := m.Get(Sym(":z")); ok {
		t.Fatalf("expected miss on :z")
	}
}

func TestSymIsKeyword(t *testing.T) {
	if !Sym(":foo").IsKeyword() {
		t.Fatalf(": prefixed symbol should be a keyword")
	}
	if Sym("foo").IsKeyword() {
		t.Fatalf("bare symbol should not be a keyword")
	}
}

func TestNewLfnRejectsNonSymbolParam(t *testing.T) {
	got := NewLfn(NewLst(Int(1)), Nil{}, NewEnv())
	if got.Kind() != KindErr {
		t.Fatalf("expected Err for non-symbol parameter, got %s", got)
	}
}
