package quat_test

import (
	"testing"

	"github.com/katalvlaran/hamilton/quat"
	"github.com/katalvlaran/hamilton/vec"
)

var (
	benchA = quat.New(0.9238795325112867, 0.2209423826903946, 0.2209423826903946, 0.2209423826903946)
	benchB = quat.New(0.7071067811865476, 0, 0.7071067811865475, 0)
	sink   quat.Quat[float64]
)

// BenchmarkQuat_Mul measures a single Hamilton product.
func BenchmarkQuat_Mul(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = benchA.Mul(benchB)
	}
}

// BenchmarkQuat_Rotate measures rotating one vector by a unit quaternion.
func BenchmarkQuat_Rotate(b *testing.B) {
	v := vec.Vec3[float64]{X: 1, Y: 2, Z: 3}
	var out vec.Vec3[float64]

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out = benchA.Rotate(v)
	}
	_ = out
}

// BenchmarkQuat_Slerp measures a mid-arc interpolation sample, the general
// (non-fallback) branch.
func BenchmarkQuat_Slerp(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = benchA.Slerp(benchB, 0.5)
	}
}

// BenchmarkQuat_PowInt measures the O(log n) squaring ladder at n=64.
func BenchmarkQuat_PowInt(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = benchA.PowInt(64)
	}
}

// BenchmarkQuat_PowReal measures the polar-form real power.
func BenchmarkQuat_PowReal(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink = benchA.PowReal(2.5)
	}
}
