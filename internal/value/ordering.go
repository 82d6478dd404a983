package value

// Compare orders a against b, reporting -1/0/1 and whether the pair is
// ordered at all. Ordering is defined for Str/Str, Int/Int, Flt/Flt, mixed
// Int/Flt, Lst/Lst, and Vec/Vec (elementwise, lexicographic); every other
// pair — including any comparison involving a NaN Flt — is unordered.
func Compare(a, b Value) (int, bool) {
	switch av := a.(type) {
	case Str:
		if bv, ok := b.(Str); ok {
			return cmpString(string(av), string(bv)), true
		}
	case Int:
		switch bv := b.(type) {
		case Int:
			return cmpInt(int64(av), int64(bv)), true
		case Flt:
			return cmpFloat(float64(av), float64(bv))
		}
	case Flt:
		switch bv := b.(type) {
		case Flt:
			return cmpFloat(float64(av), float64(bv))
		case Int:
			return cmpFloat(float64(av), float64(bv))
		}
	case *Lst:
		if bv, ok := b.(*Lst); ok {
			return cmpSeq(av.elems, bv.elems)
		}
	case *Vec:
		if bv, ok := b.(*Vec); ok {
			return cmpSeq(av.elems, bv.elems)
		}
	}

	return 0, false
}

func cmpString(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func cmpInt(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// cmpFloat reports ok=false when either operand is NaN, so comparison
// builtins can surface that as an Err instead of a silent false.
func cmpFloat(a, b float64) (int, bool) {
	if a != a || b != b { // NaN check without importing math
		return 0, false
	}
	switch {
	case a < b:
		return -1, true
	case a > b:
		return 1, true
	default:
		return 0, true
	}
}

func cmpSeq(a, b []Value) (int, bool) {
	for i := 0; i < len(a) && i < len(b); i++ {
		c, ok := Compare(a[i], b[i])
		if !ok {
			return 0, false
		}
		if c != 0 {
			return c, true
		}
	}

	return cmpInt(int64(len(a)), int64(len(b))), true
}
