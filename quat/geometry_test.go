package quat_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hamilton/quat"
	"github.com/katalvlaran/hamilton/vec"
)

// TestQuat_Normalize pins the reference unit quaternion and the zero-input
// short circuit.
func TestQuat_Normalize(t *testing.T) {
	q := quat.New(1.0, 2, 3, 4)
	n := q.Normalize()

	want := quat.New(0.18257418583505536, 0.3651483716701107, 0.5477225575051661, 0.7302967433402214)
	assertQuatInDelta(t, want, n, floatTol, "q/|q|")
	assert.InDelta(t, 1.0, n.Magnitude(), floatTol, "normalized magnitude must be 1")
	assertQuatInDelta(t, n, n.Normalize(), floatTol, "normalization must be idempotent")

	zero := quat.Quat[float64]{}
	assert.Equal(t, zero, zero.Normalize(), "the zero quaternion must pass through unchanged")
}

// TestQuat_Rotate verifies the doubled-cross rotation formula on known
// rotations and the length-preservation contract.
func TestQuat_Rotate(t *testing.T) {
	ez := vec.Vec3[float64]{Z: 1}
	q := quat.FromAxisAngle(ez, math.Pi/2)

	got := q.Rotate(vec.Vec3[float64]{X: 1})
	assert.InDelta(t, 0, got.X, floatTol, "90° about Z sends x̂ toward ŷ: x")
	assert.InDelta(t, 1, got.Y, floatTol, "90° about Z sends x̂ toward ŷ: y")
	assert.InDelta(t, 0, got.Z, floatTol, "90° about Z sends x̂ toward ŷ: z")

	// The identity quaternion must rotate nothing, exactly.
	v := vec.Vec3[float64]{X: 3, Y: -4, Z: 12}
	assert.Equal(t, v, quat.ID[float64]().Rotate(v), "identity rotation is exact")

	// Unit rotation preserves Euclidean length.
	r := quat.FromAxisAngle(vec.Vec3[float64]{X: 1, Y: 2, Z: -0.5}, 1.2)
	rotated := r.Rotate(v)
	assert.InDelta(t, v.Len(), rotated.Len(), 1e-9, "rotation must preserve |v|")
}

// TestFromAxisAngle pins the reference axis-angle quaternion, the internal
// axis normalization, and the zero-axis guard.
func TestFromAxisAngle(t *testing.T) {
	q := quat.FromAxisAngle(vec.Vec3[float64]{X: 1, Y: 1, Z: 1}, math.Pi/4)

	want := quat.New(0.9238795325112867, 0.2209423826903946, 0.2209423826903946, 0.2209423826903946)
	assertQuatInDelta(t, want, q, floatTol, "axis (1,1,1), angle π/4")
	assert.InDelta(t, 1.0, q.Magnitude(), floatTol, "axis-angle quaternions are unit")

	// The axis is normalized internally: scaling it must not change the result.
	scaled := quat.FromAxisAngle(vec.Vec3[float64]{X: 10, Y: 10, Z: 10}, math.Pi/4)
	assertQuatInDelta(t, q, scaled, floatTol, "axis length must not matter")

	// A zero-length axis has no rotation direction.
	assert.Equal(t, quat.ID[float64](), quat.FromAxisAngle(vec.Vec3[float64]{}, 1.5),
		"zero axis must yield the identity")
}

// TestQuat_ToAxisAngle round-trips FromAxisAngle and covers the degenerate
// near-identity rotation.
func TestQuat_ToAxisAngle(t *testing.T) {
	angle := 1.1
	q := quat.FromAxisAngle(vec.Vec3[float64]{X: 0, Y: 0, Z: 2}, angle)

	axis, gotAngle := q.ToAxisAngle()
	assert.InDelta(t, angle, gotAngle, 1e-9, "angle must round-trip")
	assert.InDelta(t, 0, axis.X, 1e-9, "axis x")
	assert.InDelta(t, 0, axis.Y, 1e-9, "axis y")
	assert.InDelta(t, 1, axis.Z, 1e-9, "axis must round-trip normalized")

	idAxis, idAngle := quat.ID[float64]().ToAxisAngle()
	assert.Equal(t, vec.Vec3[float64]{X: 1}, idAxis, "degenerate rotation reports the fixed x axis")
	assert.InDelta(t, 0, idAngle, floatTol, "identity rotation has zero angle")
}

// TestFromEuler pins the half-angle composition formula on single-axis
// rotations and the identity.
func TestFromEuler(t *testing.T) {
	assert.Equal(t, quat.ID[float64](), quat.FromEuler(0.0, 0, 0), "zero angles give the identity")

	half := math.Pi / 4 // half of a 90° roll
	q := quat.FromEuler(math.Pi/2, 0, 0)
	assertQuatInDelta(t, quat.New(math.Cos(half), math.Sin(half), 0, 0), q, floatTol,
		"pure roll populates r and i only")
	assert.InDelta(t, 1.0, q.Magnitude(), floatTol, "Euler quaternions are unit")

	q = quat.FromEuler(0.0, 0, math.Pi/2)
	assertQuatInDelta(t, quat.New(math.Cos(half), 0, 0, math.Sin(half)), q, floatTol,
		"pure yaw populates r and k only")
}

// TestQuat_ToEuler covers the identity decomposition, a single-axis
// round-trip, and the clamped gimbal-lock pitch.
func TestQuat_ToEuler(t *testing.T) {
	roll, pitch, yaw := quat.ID[float64]().ToEuler()
	assert.Zero(t, roll, "identity roll")
	assert.Zero(t, pitch, "identity pitch")
	assert.Zero(t, yaw, "identity yaw")

	// Single-axis rotations survive the differing composition conventions.
	r, p, y := quat.FromEuler(0.4, 0, 0).ToEuler()
	assert.InDelta(t, 0.4, r, 1e-12, "pure roll round-trips")
	assert.InDelta(t, 0, p, 1e-12)
	assert.InDelta(t, 0, y, 1e-12)

	r, p, y = quat.FromEuler(0.0, 0, -0.7).ToEuler()
	assert.InDelta(t, 0, r, 1e-12)
	assert.InDelta(t, 0, p, 1e-12)
	assert.InDelta(t, -0.7, y, 1e-12, "pure yaw round-trips")

	// At gimbal lock 2(w·y − z·x) lands just above 1 in float64; the clamp
	// must saturate pitch at π/2 instead of returning NaN.
	s := math.Sqrt(0.5)
	lock := quat.New(s, 0, s, 0)
	_, p, _ = lock.ToEuler()
	require.False(t, math.IsNaN(p), "gimbal-lock pitch must not be NaN")
	assert.InDelta(t, math.Pi/2, p, 1e-9, "pitch saturates at +π/2")

	_, p, _ = quat.New(s, 0, -s, 0).ToEuler()
	assert.InDelta(t, -math.Pi/2, p, 1e-9, "pitch saturates at -π/2")
}
