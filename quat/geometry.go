package quat

import (
	"math"

	"github.com/katalvlaran/hamilton/vec"
)

// clamp constrains v to [lo, hi]; used to keep round-off from pushing
// asin/acos arguments outside their domain.
func clamp(v, lo, hi float64) float64 {
	return min(hi, max(lo, v))
}

// Normalize returns q scaled to unit length. The zero quaternion is
// returned unchanged (exact zero-magnitude compare) instead of dividing
// by zero.
func (q Quat[T]) Normalize() Quat[T] {
	mag := q.Magnitude()
	if mag == T(0) {
		return q
	}
	return q.Scale(T(1) / mag)
}

// Rotate rotates v by the unit quaternion q using the doubled-cross
// identity:
//
//	t = 2 * (q.V × v)
//	v' = v + t*q.R + q.V × t
//
// which is cheaper than the sandwich product q ⊗ (0,v) ⊗ conj(q).
// The receiver must be (approximately) unit length; Rotate performs no
// normalization or validation of its own.
func (q Quat[T]) Rotate(v vec.Vec3[T]) vec.Vec3[T] {
	t := q.V.Cross(v).Scale(T(2))
	return v.Add(t.Scale(q.R)).Add(q.V.Cross(t))
}

// FromAxisAngle builds the unit quaternion rotating by angle radians about
// axis. The axis is normalized internally, so any nonzero length works; a
// zero-length axis has no direction to rotate about, and ID is returned.
//
//	r = cos(angle/2)
//	v = sin(angle/2) * axis/|axis|
func FromAxisAngle[T vec.Scalar](axis vec.Vec3[T], angle T) Quat[T] {
	n := math.Sqrt(float64(axis.Dot(axis)))
	if n == 0 {
		return ID[T]()
	}
	half := float64(angle) / 2
	s := math.Sin(half)
	return Quat[T]{
		R: T(math.Cos(half)),
		V: vec.Map(axis, func(c T) T { return T(float64(c) / n * s) }),
	}
}

// ToAxisAngle decomposes a unit quaternion into its rotation axis and
// angle, the inverse of FromAxisAngle.
//
// When the rotation is (numerically) the identity, the axis is degenerate;
// the fixed axis (1,0,0) is returned with the near-zero angle.
func (q Quat[T]) ToAxisAngle() (vec.Vec3[T], T) {
	w := clamp(float64(q.R), -1, 1)
	angle := 2 * math.Acos(w)
	s := math.Sqrt(1 - w*w)
	if s < degenerateAxisSin {
		return vec.Vec3[T]{X: T(1)}, T(angle)
	}
	return vec.Map(q.V, func(c T) T { return T(float64(c) / s) }), T(angle)
}

// degenerateAxisSin is the sin(angle/2) threshold below which the rotation
// axis of a unit quaternion is numerically unrecoverable.
const degenerateAxisSin = 1e-9

// FromEuler builds a quaternion from roll, pitch, and yaw (radians),
// composing the three axis rotations in XYZ order on half-angle sines and
// cosines:
//
//	r = cr·cp·cy − sr·sp·sy
//	x = sr·cp·cy + cr·sp·sy
//	y = cr·sp·cy − sr·cp·sy
//	z = cr·cp·sy + sr·sp·cy
//
// FromEuler and ToEuler use differing composition conventions and are not
// exact mutual inverses; see the package documentation.
func FromEuler[T vec.Scalar](roll, pitch, yaw T) Quat[T] {
	sr, cr := math.Sincos(float64(roll) / 2)
	sp, cp := math.Sincos(float64(pitch) / 2)
	sy, cy := math.Sincos(float64(yaw) / 2)
	return New(
		T(cr*cp*cy-sr*sp*sy),
		T(sr*cp*cy+cr*sp*sy),
		T(cr*sp*cy-sr*cp*sy),
		T(cr*cp*sy+sr*sp*cy),
	)
}

// ToEuler decomposes q into (roll, pitch, yaw) radians in ZYX order: roll
// and yaw via atan2, pitch via asin. The asin argument is clamped to
// [-1, 1], so at gimbal lock pitch saturates at ±π/2 instead of going NaN.
func (q Quat[T]) ToEuler() (roll, pitch, yaw T) {
	w, x, y, z := float64(q.R), float64(q.V.X), float64(q.V.Y), float64(q.V.Z)

	roll = T(math.Atan2(2*(w*x+y*z), 1-2*(x*x+y*y)))
	pitch = T(math.Asin(clamp(2*(w*y-z*x), -1, 1)))
	yaw = T(math.Atan2(2*(w*z+x*y), 1-2*(y*y+z*z)))
	return roll, pitch, yaw
}
