// Package hamilton is a generic, allocation-free quaternion arithmetic
// library — hypercomplex numbers for 3D rotation, interpolation and
// exponentiation, parameterized over the underlying scalar type.
//
// 🚀 What is hamilton?
//
//	A small, pure-Go value-type library that brings together:
//		• Core algebra: add, subtract, Hamilton product, closed-form division,
//		  conjugate, inverse, dot products and magnitudes
//		• Geometry: axis-angle and Euler-angle conversions (both directions),
//		  unit-quaternion vector rotation, normalization
//		• Interpolation: shortest-arc spherical linear interpolation (slerp)
//		  with a stable near-parallel fallback
//		• Exponentiation: integer powers by repeated squaring, real powers
//		  via the polar (exponential) form
//
// ✨ Why choose hamilton?
//
//   - Generic over scalars – one Quat[T] works for float64, float32, every
//     integer type, and your own defined numeric types
//   - Pure values – immutable structs, structural equality, safe to share
//     between goroutines without any locking
//   - No hidden deps – no cgo, nothing beyond the Go standard math library
//     at runtime
//   - Predictable numerics – documented IEEE-754 edge-case behavior instead
//     of panics or error plumbing
//
// Everything is organized under two subpackages:
//
//	vec/  — Vec3[T], the 3-component vector helpers (cross, dot, scale, map)
//	quat/ — Quat[T], the quaternion type and all of its operations
//
// Quick taste:
//
//	axis := vec.Vec3[float64]{X: 0, Y: 0, Z: 1}
//	q := quat.FromAxisAngle(axis, math.Pi/2) // 90° about Z
//	v := q.Rotate(vec.Vec3[float64]{X: 1})   // ≈ (0, 1, 0)
//
// Dive into the quat package docs for the full operation surface and the
// numeric contracts of each conversion.
//
//	go get github.com/katalvlaran/hamilton
package hamilton
