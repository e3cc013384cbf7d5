package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"scene-renderer/math"
)

func TestTransformIdentity(t *testing.T) {
	tr := Transform{
		Scale:    math.Vec3One,
		Rotation: math.Vec3Zero,
		Position: math.Vec3Zero,
	}
	assert.Equal(t, math.Mat4Identity(), tr.Matrix())
}

func TestTransformCompositionOrder(t *testing.T) {
	pos := math.NewVec3(2, 3, 4)
	rz := math.Mat4RotationZ(math.Radians(90))
	translation := math.Mat4Translation(pos)

	tr := Transform{
		Scale:    math.Vec3One,
		Rotation: math.NewVec3(0, 0, 90),
		Position: pos,
	}
	m := tr.Matrix()

	// Rotation is applied before translation: rotate-then-translate, never
	// translate-then-rotate.
	assert.Equal(t, rz.Mul(translation), m)
	assert.NotEqual(t, translation.Mul(rz), m)

	// Behavioral check: the X unit vector rotates onto Y, then translates.
	got := math.NewVec4(1, 0, 0, 1).MulMat(m)
	assert.InDelta(t, pos.X, got.X, 0.0001)
	assert.InDelta(t, pos.Y+1, got.Y, 0.0001)
	assert.InDelta(t, pos.Z, got.Z, 0.0001)
}

func TestTransformScaleBeforeRotation(t *testing.T) {
	// Scaling along X then rotating 90 degrees about Z moves the stretch
	// onto the Y axis.
	tr := Transform{
		Scale:    math.NewVec3(2, 1, 1),
		Rotation: math.NewVec3(0, 0, 90),
		Position: math.Vec3Zero,
	}
	got := math.NewVec4(1, 0, 0, 1).MulMat(tr.Matrix())

	assert.InDelta(t, 0, got.X, 0.0001)
	assert.InDelta(t, 2, got.Y, 0.0001)
}

func TestTransformDegenerateScale(t *testing.T) {
	// Zero and negative scales pass through unvalidated.
	tr := Transform{
		Scale:    math.NewVec3(0, -1, 1),
		Rotation: math.Vec3Zero,
		Position: math.NewVec3(1, 1, 1),
	}
	m := tr.Matrix()

	assert.Equal(t, float32(0), m[0][0])
	assert.Equal(t, float32(-1), m[1][1])
	assert.Equal(t, float32(1), m[3][0])
}
