// Package vec provides the 3-component vector primitive Vec3[T] and the
// small set of helpers the quaternion algebra is built from: cross product,
// component-wise addition, scalar scaling, dot product, and an element-wise
// map between scalar types.
//
// Scalar constraint:
//
//	Vec3 is generic over Scalar — any built-in integer or floating-point
//	type (golang.org/x/exp/constraints.Integer | constraints.Float) or a
//	type defined on one of them. All arithmetic happens in T; only Len
//	bridges through float64 to reach the hardware square root.
//
// Semantics:
//
//   - Pure values. Every method returns a fresh Vec3; receivers are never
//     mutated. Vec3 is comparable, so == and map-key hashing are the
//     structural, component-wise operations.
//   - No error surface. All helpers are total functions of their inputs;
//     the only numeric caveat is Len on integer scalars, which truncates
//     the float64 square root on conversion back to T.
//
// Core helpers:
//
//	Cross(o)     // right-handed 3D cross product           O(1)
//	Add(o)       // component-wise sum                      O(1)
//	Sub(o)       // component-wise difference (Add of Neg)  O(1)
//	Neg()        // component-wise negation                 O(1)
//	Scale(s)     // multiply each component by scalar s     O(1)
//	Dot(o)       // X·X' + Y·Y' + Z·Z'                      O(1)
//	SquareLen()  // Dot with itself, always ≥ 0             O(1)
//	Len()        // √SquareLen via float64 bridge           O(1)
//	Map(v, f)    // element-wise map, may change T → U      O(1)
//
// Vec3 carries no rotation logic of its own; see the quat package for
// quaternion construction and vector rotation.
package vec
