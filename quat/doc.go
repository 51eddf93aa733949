// Package quat implements a generic quaternion value type Quat[T] — a
// hypercomplex number r + xi + yj + zk with one real and three imaginary
// components — together with the full algebra used for 3D rotation:
// Hamilton product, closed-form division, conjugate and inverse, axis-angle
// and Euler conversions, vector rotation, spherical linear interpolation,
// and integer/real exponentiation.
//
// Why quaternions?
//
//   - Gimbal-lock-free rotation composition (unlike Euler angles).
//   - Cheap, drift-correctable interpolation between orientations (slerp).
//   - Four scalars instead of a nine-component rotation matrix.
//
// Value semantics:
//
//   - Quat[T] is a plain immutable struct. Every operation returns a new
//     value; a receiver is never mutated, so shared read-only values are
//     safe across goroutines without locks.
//   - Equality and map-key hashing are Go's structural, component-wise
//     semantics. There is no epsilon-tolerant Equal; use your own tolerance
//     for comparing results of floating computations.
//   - ID() is the multiplicative identity {1, (0,0,0)} and the natural
//     "default" orientation.
//
// Scalar genericity:
//
//	T ranges over vec.Scalar (all built-in integer and float types).
//	Pure ring operations (Add, Sub, Mul, Conj, Dot, SquareLen, PowInt)
//	stay entirely in T. Operations defined through transcendental
//	functions (Magnitude, Normalize, FromAxisAngle, Euler conversions,
//	Slerp, PowReal) bridge each component through float64, apply the
//	hardware function, and convert back — so over integer scalars their
//	results truncate.
//
// Operation surface:
//
//	// Construction
//	ID[T]()                              // multiplicative identity
//	New[T](r, x, y, z)                   // from four components
//	FromAxisAngle(axis, angle)           // unit rotation quaternion
//	FromEuler(roll, pitch, yaw)          // XYZ half-angle composition
//
//	// Algebra
//	Add, Sub, Neg, Mul, Div, Scale, Map
//	Conj, Inv, Dot, SquareLen, Magnitude
//
//	// Geometry
//	Normalize()                          // zero-safe unit scaling
//	Rotate(v)                            // rotate a Vec3 by a unit quaternion
//	ToEuler()                            // ZYX decomposition, clamped pitch
//	ToAxisAngle()                        // axis + angle, degenerate-safe
//
//	// Interpolation & powers
//	Lerp(o, t), Slerp(o, t)              // normalized / shortest-arc
//	PowInt(n), PowReal(p)                // squaring ladder / polar form
//
// Numeric edge cases (deliberate, IEEE-754 style — no error returns):
//
//   - Inv and Div of a quaternion with zero SquareLen divide by zero:
//     non-finite components over floats, a runtime panic over integers.
//     Callers must avoid zero divisors.
//   - Normalize and PowReal short-circuit on exactly zero magnitude and
//     return the receiver unchanged.
//   - FromAxisAngle of a zero-length axis returns ID() rather than
//     dividing by a zero norm.
//   - ToEuler clamps the asin argument to [-1, 1], so pitch saturates at
//     ±π/2 at gimbal lock instead of going NaN.
//   - Rotate assumes an (approximately) unit receiver and performs no
//     validation; normalize first if in doubt.
//
// All operations are O(1) except PowInt, which is O(log n).
package quat
