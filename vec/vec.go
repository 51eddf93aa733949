package vec

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar is the set of scalar types vectors and quaternions may be built
// over: every built-in integer and floating-point type, plus any defined
// type whose underlying type is one of them.
//
// The constraint doubles as the library's numeric capability set: ring and
// field operators come from the type set itself, the additive and
// multiplicative identities are reachable as T(0) and T(1), and the
// float64(v) / T(x) conversions bridge into double precision for the
// transcendental functions (sqrt, sin, cos, asin, acos, atan2, pow).
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Vec3 is an immutable 3-component vector of T. Components are the i, j, k
// coefficients when a Vec3 serves as the imaginary part of a quaternion.
type Vec3[T Scalar] struct {
	X, Y, Z T
}

// Add returns the component-wise sum v + o.
func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Neg returns the component-wise negation of v.
func (v Vec3[T]) Neg() Vec3[T] {
	return Vec3[T]{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Sub returns the component-wise difference v - o.
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] {
	return v.Add(o.Neg())
}

// Scale returns v with every component multiplied by s.
func (v Vec3[T]) Scale(s T) Vec3[T] {
	return Vec3[T]{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Dot returns the scalar product v · o.
func (v Vec3[T]) Dot(o Vec3[T]) T {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the right-handed cross product v × o.
// Note the operand order: Cross is anti-commutative, v × o == -(o × v).
func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// SquareLen returns v · v, the squared Euclidean length.
// Always non-negative and free of any division or square root.
func (v Vec3[T]) SquareLen() T {
	return v.Dot(v)
}

// Len returns the Euclidean length of v. The square root is taken in
// float64 and converted back to T, truncating for integer scalars.
func (v Vec3[T]) Len() T {
	return T(math.Sqrt(float64(v.SquareLen())))
}

// Map applies f to each component of v, producing a Vec3 of a possibly
// different scalar type. It is a free function because Go methods cannot
// introduce the extra type parameter U.
func Map[T, U Scalar](v Vec3[T], f func(T) U) Vec3[U] {
	return Vec3[U]{X: f(v.X), Y: f(v.Y), Z: f(v.Z)}
}

// String renders v as "(x, y, z)".
func (v Vec3[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z)
}
