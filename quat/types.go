package quat

import (
	"fmt"

	"github.com/katalvlaran/hamilton/vec"
)

// Quat is an immutable quaternion r + xi + yj + zk over the scalar type T.
// R holds the real component; V holds the imaginary i, j, k coefficients.
//
// Quat is comparable: == and map-key hashing compare all four components
// structurally. The zero value is the zero quaternion, which is not a valid
// rotation; use ID for the identity orientation.
type Quat[T vec.Scalar] struct {
	R T
	V vec.Vec3[T]
}

// ID returns the multiplicative identity {1, (0,0,0)}.
func ID[T vec.Scalar]() Quat[T] {
	return Quat[T]{R: T(1)}
}

// New builds a quaternion from its four scalar components, real first.
func New[T vec.Scalar](r, x, y, z T) Quat[T] {
	return Quat[T]{R: r, V: vec.Vec3[T]{X: x, Y: y, Z: z}}
}

// Map applies f to the real component and to each vector component,
// producing a quaternion over a possibly different scalar type.
func Map[T, U vec.Scalar](q Quat[T], f func(T) U) Quat[U] {
	return Quat[U]{R: f(q.R), V: vec.Map(q.V, f)}
}

// String renders q as "(r, x, y, z)".
func (q Quat[T]) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", q.R, q.V.X, q.V.Y, q.V.Z)
}
