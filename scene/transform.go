package scene

import "scene-renderer/math"

// Transform describes the placement of a single object: scale factors,
// rotation in degrees about the X, Y and Z axes, and position.
// Transforms are not stored anywhere; they are composed into a model matrix
// and consumed per draw call.
type Transform struct {
	Scale    math.Vec3
	Rotation math.Vec3
	Position math.Vec3
}

// Matrix composes the model matrix: scale first, then the X, Y and Z
// rotations, then the translation. The order is load-bearing; reordering
// changes the result for any object rotated about more than one axis.
// Inputs are not validated; a zero or negative scale collapses or inverts
// the mesh, which is a scene-authoring outcome rather than an error.
func (t Transform) Matrix() math.Mat4 {
	scale := math.Mat4Scale(t.Scale)
	rx := math.Mat4RotationX(math.Radians(t.Rotation.X))
	ry := math.Mat4RotationY(math.Radians(t.Rotation.Y))
	rz := math.Mat4RotationZ(math.Radians(t.Rotation.Z))
	translation := math.Mat4Translation(t.Position)

	return scale.Mul(rx).Mul(ry).Mul(rz).Mul(translation)
}
