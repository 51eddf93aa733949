package quat

import (
	"math"

	"github.com/katalvlaran/hamilton/vec"
)

// PowInt raises q to an integer power by recursive repeated squaring,
// O(log n) Hamilton products.
//
// PowInt(0) is ID; negative exponents invert first, so q.PowInt(-n) ==
// q.Inv().PowInt(n) and inherits Inv's zero-divisor edge case.
func (q Quat[T]) PowInt(n int) Quat[T] {
	switch {
	case n == 0:
		return ID[T]()
	case n < 0:
		return q.Inv().PowInt(-n)
	case n == 1:
		return q
	}
	half := q.PowInt(n / 2)
	if n%2 == 0 {
		return half.Mul(half)
	}
	return q.Mul(half).Mul(half)
}

// PowReal raises q to an arbitrary real exponent p through the polar
// (exponential) form: q = |q| * (cos(θ/2) + axis·sin(θ/2)) is mapped to
// |q|^p with the angle scaled to θ·p.
//
// The zero quaternion is returned unchanged (no finite polar form). A pure
// real quaternion degenerates to the scalar power |q|^p with a zero vector
// part.
func (q Quat[T]) PowReal(p T) Quat[T] {
	mag := q.Magnitude()
	if mag == T(0) {
		return q
	}

	unit := q.Normalize()
	vn := math.Sqrt(float64(unit.V.Dot(unit.V)))
	newLen := math.Pow(float64(mag), float64(p))
	if vn == 0 {
		return Quat[T]{R: T(newLen)}
	}

	theta := 2 * math.Asin(vn)
	newAngle := theta * float64(p)
	s := math.Sin(newAngle/2) * newLen
	return Quat[T]{
		R: T(math.Cos(newAngle/2) * newLen),
		V: vec.Map(unit.V, func(c T) T { return T(float64(c) / vn * s) }),
	}
}
