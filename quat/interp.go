package quat

import (
	"math"

	"github.com/katalvlaran/hamilton/vec"
)

// nearlyParallelDot is the dot-product threshold above which two unit
// quaternions are treated as parallel and Slerp falls back to Lerp: the
// general formula divides by sin(theta), which loses precision as theta
// approaches zero.
const nearlyParallelDot = 0.9995

// dotF64 is the 4D dot product of q and o taken in double precision.
func dotF64[T vec.Scalar](q, o Quat[T]) float64 {
	return float64(q.R)*float64(o.R) +
		float64(q.V.X)*float64(o.V.X) +
		float64(q.V.Y)*float64(o.V.Y) +
		float64(q.V.Z)*float64(o.V.Z)
}

// Lerp linearly interpolates each component from q to o by t and
// renormalizes the result. Unlike Slerp it does not sweep at constant
// angular velocity, but it is cheap and stable for small separations.
func (q Quat[T]) Lerp(o Quat[T], t T) Quat[T] {
	return q.Add(o.Sub(q).Scale(t)).Normalize()
}

// Slerp spherically interpolates from q to o by t ∈ [0, 1] (the domain is
// not enforced) along the shorter great-circle arc of the unit hypersphere.
//
// Both inputs are normalized first. Because q and -q encode the same
// rotation, o is negated when the quaternions point into opposite
// half-spaces, which selects the shorter arc. Nearly parallel inputs fall
// back to Lerp to avoid dividing by a vanishing sin(theta).
func (q Quat[T]) Slerp(o Quat[T], t T) Quat[T] {
	a := q.Normalize()
	b := o.Normalize()

	if dotF64(a, b) < 0 {
		b = b.Neg()
	}
	d := clamp(dotF64(a, b), -1, 1)
	if d > nearlyParallelDot {
		return a.Lerp(b, t)
	}

	theta := math.Acos(d)
	sinTheta := math.Sin(theta)
	tf := float64(t)
	w1 := math.Sin((1-tf)*theta) / sinTheta
	w2 := math.Sin(tf*theta) / sinTheta
	return a.Scale(T(w1)).Add(b.Scale(T(w2)))
}
