package quat

import (
	"math"

	"github.com/katalvlaran/hamilton/vec"
)

// Dot returns the 4D scalar product across all four components:
// q.R*o.R + q.V·o.V.
func (q Quat[T]) Dot(o Quat[T]) T {
	return q.R*o.R + q.V.Dot(o.V)
}

// SquareLen returns r² + x² + y² + z², the squared 4D length.
// Always defined; involves no division or square root.
func (q Quat[T]) SquareLen() T {
	return q.Dot(q)
}

// Magnitude returns the 4D Euclidean length of q. The square root is taken
// in float64 and converted back to T, truncating for integer scalars.
func (q Quat[T]) Magnitude() T {
	return T(math.Sqrt(float64(q.SquareLen())))
}

// Scale multiplies the real component and every vector component by s.
func (q Quat[T]) Scale(s T) Quat[T] {
	return Quat[T]{R: q.R * s, V: q.V.Scale(s)}
}

// Add returns the component-wise sum q + o.
func (q Quat[T]) Add(o Quat[T]) Quat[T] {
	return Quat[T]{R: q.R + o.R, V: q.V.Add(o.V)}
}

// Neg negates all four components.
func (q Quat[T]) Neg() Quat[T] {
	return Quat[T]{R: -q.R, V: q.V.Neg()}
}

// Sub returns q - o, defined as q + (-o).
func (q Quat[T]) Sub(o Quat[T]) Quat[T] {
	return q.Add(o.Neg())
}

// Conj returns the conjugate {r, -v}: the vector part is negated, the real
// part kept. For unit quaternions the conjugate is the inverse rotation.
func (q Quat[T]) Conj() Quat[T] {
	return Quat[T]{R: q.R, V: q.V.Neg()}
}

// Mul returns the Hamilton product q ⊗ o:
//
//	r = q.R*o.R − q.V·o.V
//	v = q.V × o.V + o.V*q.R + q.V*o.R
//
// Quaternion multiplication is non-commutative; the operand order of the
// cross product and of the scaled terms is load-bearing.
func (q Quat[T]) Mul(o Quat[T]) Quat[T] {
	return Quat[T]{
		R: q.R*o.R - q.V.Dot(o.V),
		V: q.V.Cross(o.V).Add(o.V.Scale(q.R)).Add(q.V.Scale(o.R)),
	}
}

// Inv returns the multiplicative inverse conj(q) / SquareLen(q), so that
// q.Mul(q.Inv()) ≈ ID for any nonzero q.
//
// A zero SquareLen is not guarded: over floats the result is non-finite,
// over integers the division panics. Callers must avoid inverting the zero
// quaternion.
func (q Quat[T]) Inv() Quat[T] {
	return q.Conj().Scale(T(1) / q.SquareLen())
}

// Div returns q / o, the product q ⊗ o⁻¹ expanded in closed form over the
// shared denominator d = o.SquareLen().
//
// Division by a zero-SquareLen o is unguarded, like Inv.
func (q Quat[T]) Div(o Quat[T]) Quat[T] {
	d := o.SquareLen()
	return Quat[T]{
		R: (q.R*o.R + q.V.Dot(o.V)) / d,
		V: vec.Vec3[T]{
			X: (q.V.X*o.R - o.V.X*q.R - o.V.Y*q.V.Z + o.V.Z*q.V.Y) / d,
			Y: (q.V.Y*o.R + o.V.X*q.V.Z - o.V.Y*q.R - o.V.Z*q.V.X) / d,
			Z: (q.V.Z*o.R - o.V.X*q.V.Y + o.V.Y*q.V.X - o.V.Z*q.R) / d,
		},
	}
}
