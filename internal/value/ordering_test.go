package value

import (
	"math"
	"testing"
)

func TestCompareMixedNumeric(t *testing.T) {
	c, ok := Compare(Int(1), Flt(2.0))
	if !ok || c >= 0 {
		t.Fatalf("got c=%d ok=%t, want c<0 ok=true", c, ok)
	}
}

func TestCompareNaNUnordered(t *testing.T) {
	_, ok := Compare(Flt(math.NaN()), Flt(1))
	if ok {
		t.Fatalf("comparison against NaN should be unordered")
	}
}

func TestCompareSequences(t *testing.T) {
	c, ok := Compare(NewLst(Int(1), Int(2)), NewLst(Int(1), Int(3)))
	if !ok || c >= 0 {
		t.Fatalf("got c=%d ok=%t, want c<0 ok=true", c, ok)
	}

	c, ok = Compare(NewVec(Int(1)), NewVec(Int(1), Int(2)))
	if !ok || c >= 0 {
		t.Fatalf("shorter prefix-equal sequence should order before longer, got c=%d ok=%t", c, ok)
	}
}

func TestCompareUnorderedKinds(t *testing.T) {
	_, ok := Compare(Str("a"), Int(1))
	if ok {
		t.Fatalf("Str vs Int should be unordered")
	}
}
