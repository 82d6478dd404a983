package value

import "strconv"

// hashKey is the comparable Go key a hashable Value folds down to, so it
// can be used as a Go map key inside Map. Two values that Equals() agree on
// must produce the same hashKey.
type hashKey struct {
	kind Kind
	repr string
}

// hashOf reports the hashKey for v and whether v is hashable at all. Only
// Err, Str, Sym, Bool, and Int are hashable; everything else (Nil, Flt, and
// every compound variant) reports ok=false so Map construction can reject
// it as a key.
func hashOf(v Value) (hashKey, bool) {
	switch vv := v.(type) {
	case Err:
		return hashKey{KindErr, string(vv)}, true
	case Str:
		return hashKey{KindStr, string(vv)}, true
	case Sym:
		return hashKey{KindSym, string(vv)}, true
	case Bool:
		return hashKey{KindBool, strconv.FormatBool(bool(vv))}, true
	case Int:
		return hashKey{KindInt, strconv.FormatInt(int64(vv), 10)}, true
	default:
		return hashKey{}, false
	}
}

// Hashable reports whether v may be used as a Map key.
func Hashable(v Value) bool {
	_, ok := hashOf(v)

	return ok
}
