package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-renderer/math"
)

func TestMaterialRegistryDefineAndFind(t *testing.T) {
	reg := NewMaterialRegistry()
	reg.Define("matteblack", math.NewVec3(0.1, 0.1, 0.1), math.NewVec3(0.1, 0.1, 0.1), 8)
	reg.Define("polishwhite", math.NewVec3(0.95, 0.95, 0.95), math.NewVec3(0.5, 0.5, 0.5), 32)

	mat, ok := reg.Find("polishwhite")
	require.True(t, ok)
	assert.Equal(t, "polishwhite", mat.Tag)
	assert.Equal(t, float32(32), mat.Shininess)
	assert.Equal(t, math.NewVec3(0.95, 0.95, 0.95), mat.DiffuseColor)

	assert.Equal(t, 2, reg.Len())
}

func TestMaterialRegistryMiss(t *testing.T) {
	reg := NewMaterialRegistry()
	reg.Define("plastic", math.NewVec3(0.15, 0.15, 0.15), math.NewVec3(0.3, 0.3, 0.3), 16)

	_, ok := reg.Find("chrome")
	assert.False(t, ok)
}

func TestMaterialRegistryFirstMatchWins(t *testing.T) {
	reg := NewMaterialRegistry()
	reg.Define("dup", math.NewVec3(1, 0, 0), math.Vec3Zero, 1)
	reg.Define("dup", math.NewVec3(0, 1, 0), math.Vec3Zero, 2)

	mat, ok := reg.Find("dup")
	require.True(t, ok)
	assert.Equal(t, math.NewVec3(1, 0, 0), mat.DiffuseColor)
	assert.Equal(t, 2, reg.Len())
}
