package value

import "math"

// Add implements `+`. Accepts (Int,Int)|(Int,Flt)|(Flt,Int)|(Flt,Flt); Int
// overflow yields Err("arithmetic overflow"); anything else yields the
// (Num Num) type-mismatch Err.
func Add(left, right Value) Value {
	switch l := left.(type) {
	case Int:
		switch r := right.(type) {
		case Int:
			sum := int64(l) + int64(r)
			if overflowsAdd(int64(l), int64(r), sum) {
				return Errf("arithmetic overflow")
			}

			return Int(sum)
		case Flt:
			return Flt(float64(l) + float64(r))
		}
	case Flt:
		switch r := right.(type) {
		case Int:
			return Flt(float64(l) + float64(r))
		case Flt:
			return Flt(float64(l) + float64(r))
		}
	}

	return numMismatch(left, right)
}

// Sub implements `-`.
func Sub(left, right Value) Value {
	switch l := left.(type) {
	case Int:
		switch r := right.(type) {
		case Int:
			diff := int64(l) - int64(r)
			if overflowsSub(int64(l), int64(r), diff) {
				return Errf("arithmetic overflow")
			}

			return Int(diff)
		case Flt:
			return Flt(float64(l) - float64(r))
		}
	case Flt:
		switch r := right.(type) {
		case Int:
			return Flt(float64(l) - float64(r))
		case Flt:
			return Flt(float64(l) - float64(r))
		}
	}

	return numMismatch(left, right)
}

// Mul implements `*`.
func Mul(left, right Value) Value {
	switch l := left.(type) {
	case Int:
		switch r := right.(type) {
		case Int:
			prod := int64(l) * int64(r)
			if overflowsMul(int64(l), int64(r), prod) {
				return Errf("arithmetic overflow")
			}

			return Int(prod)
		case Flt:
			return Flt(float64(l) * float64(r))
		}
	case Flt:
		switch r := right.(type) {
		case Int:
			return Flt(float64(l) * float64(r))
		case Flt:
			return Flt(float64(l) * float64(r))
		}
	}

	return numMismatch(left, right)
}

// Div implements `/`. Int division by zero, and the MinInt64/-1 overflow
// case, both yield Err("division by zero or arithmetic overflow").
func Div(left, right Value) Value {
	switch l := left.(type) {
	case Int:
		switch r := right.(type) {
		case Int:
			if r == 0 || (l == math.MinInt64 && r == -1) {
				return Errf("division by zero or arithmetic overflow")
			}

			return Int(int64(l) / int64(r))
		case Flt:
			return Flt(float64(l) / float64(r))
		}
	case Flt:
		switch r := right.(type) {
		case Int:
			return Flt(float64(l) / float64(r))
		case Flt:
			return Flt(float64(l) / float64(r))
		}
	}

	return numMismatch(left, right)
}

// Mod implements `%`, Int-only.
func Mod(left, right Value) Value {
	l, lok := left.(Int)
	r, rok := right.(Int)
	if !lok || !rok {
		return intMismatch(left, right)
	}
	if r == 0 || (l == math.MinInt64 && r == -1) {
		return Errf("division by zero or arithmetic overflow")
	}

	return Int(int64(l) % int64(r))
}

// BitAnd, BitOr, BitXor implement `&`, `|`, `^` via unsigned reinterpretation
// of Int operands, then signed cast back.
func BitAnd(left, right Value) Value { return bitwise2(left, right, func(a, b uint64) uint64 { return a & b }) }
func BitOr(left, right Value) Value  { return bitwise2(left, right, func(a, b uint64) uint64 { return a | b }) }
func BitXor(left, right Value) Value { return bitwise2(left, right, func(a, b uint64) uint64 { return a ^ b }) }

func bitwise2(left, right Value, op func(a, b uint64) uint64) Value {
	l, lok := left.(Int)
	r, rok := right.(Int)
	if !lok || !rok {
		return intMismatch(left, right)
	}

	return Int(op(uint64(int64(l)), uint64(int64(r))))
}

// BitNot implements unary `~`.
func BitNot(v Value) Value {
	i, ok := v.(Int)
	if !ok {
		return ErrExpected("(Int)", "("+v.Tag()+")")
	}

	return Int(^uint64(int64(i)))
}

// Shl, Shr implement `<<`, `>>`: the right operand is treated as an
// unsigned 32-bit shift amount, range-checked against the Int's width.
func Shl(left, right Value) Value { return shift(left, right, false) }
func Shr(left, right Value) Value { return shift(left, right, true) }

func shift(left, right Value, arith bool) Value {
	l, lok := left.(Int)
	r, rok := right.(Int)
	if !lok || !rok {
		return intMismatch(left, right)
	}
	if r < 0 || r > 63 {
		return Errf("shift amount out of range")
	}
	n := uint32(r)
	if arith {
		return Int(int64(l) >> n)
	}

	return Int(int64(uint64(int64(l)) << n))
}

// Floor maps Flt to its floor as an Int, and is the identity on Int.
func Floor(v Value) Value {
	switch vv := v.(type) {
	case Int:
		return vv
	case Flt:
		return Int(int64(math.Floor(float64(vv))))
	default:
		return ErrExpected("(Num)", "("+v.Tag()+")")
	}
}

func overflowsAdd(a, b, sum int64) bool {
	return (b > 0 && sum < a) || (b < 0 && sum > a)
}

func overflowsSub(a, b, diff int64) bool {
	return (b < 0 && diff < a) || (b > 0 && diff > a)
}

func overflowsMul(a, b, prod int64) bool {
	if a == 0 || b == 0 {
		return false
	}
	if a == -1 && b == math.MinInt64 {
		return true
	}
	if b == -1 && a == math.MinInt64 {
		return true
	}

	return prod/b != a
}

func numMismatch(left, right Value) Value {
	return ErrExpected("(Num Num)", "("+left.Tag()+" "+right.Tag()+")")
}

func intMismatch(left, right Value) Value {
	return ErrExpected("(Int Int)", "("+left.Tag()+" "+right.Tag()+")")
}
