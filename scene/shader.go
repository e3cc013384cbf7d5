package scene

import "scene-renderer/math"

// Uniform identifies a shader input by role rather than by name, keeping
// GLSL identifier strings out of the scene core.
type Uniform int

const (
	UniformModel Uniform = iota
	UniformColor
	UniformTexture
	UniformUseTexture
	UniformUseLighting
	UniformUVScale
	UniformMaterialDiffuse
	UniformMaterialSpecular
	UniformMaterialShininess
	UniformDirLightDirection
	UniformDirLightAmbient
	UniformDirLightDiffuse
	UniformDirLightSpecular
	UniformDirLightActive
	UniformPointLightPosition
	UniformPointLightAmbient
	UniformPointLightDiffuse
	UniformPointLightSpecular
	UniformPointLightActive

	UniformCount // number of uniform roles; keep last
)

// Program is the shader collaborator. Setters write to the uniform slot for
// the given role of the currently active program. Active reports whether a
// program is in use; every ShaderState push is a no-op while it is false.
type Program interface {
	Active() bool
	SetMat4(u Uniform, m math.Mat4)
	SetVec2(u Uniform, v math.Vec2)
	SetVec3(u Uniform, v math.Vec3)
	SetVec4(u Uniform, v math.Vec4)
	SetFloat(u Uniform, f float32)
	SetInt(u Uniform, i int32)
	SetBool(u Uniform, b bool)
}

// DirectionalLight is a light with a direction but no position, shading the
// whole scene evenly (a sun).
type DirectionalLight struct {
	Direction math.Vec3
	Ambient   math.Vec3
	Diffuse   math.Vec3
	Specular  math.Vec3
	Active    bool
}

// PointLight radiates from a position.
type PointLight struct {
	Position math.Vec3
	Ambient  math.Vec3
	Diffuse  math.Vec3
	Specular math.Vec3
	Active   bool
}

// Lighting is the static light configuration pushed once during scene
// preparation.
type Lighting struct {
	Directional DirectionalLight
	Point       PointLight
}

// ShaderState pushes per-draw and per-scene state into the active shader
// program, resolving texture and material tags through the registries.
type ShaderState struct {
	program   Program
	textures  *TextureRegistry
	materials *MaterialRegistry
}

func NewShaderState(program Program, textures *TextureRegistry, materials *MaterialRegistry) *ShaderState {
	return &ShaderState{
		program:   program,
		textures:  textures,
		materials: materials,
	}
}

func (s *ShaderState) active() bool {
	return s.program != nil && s.program.Active()
}

// SetTransform writes the composed model matrix.
func (s *ShaderState) SetTransform(m math.Mat4) {
	if !s.active() {
		return
	}
	s.program.SetMat4(UniformModel, m)
}

// SetColor writes a flat color for the next draw and disables texture
// sampling. Color and texture are mutually exclusive per draw call.
func (s *ShaderState) SetColor(r, g, b, a float32) {
	if !s.active() {
		return
	}
	s.program.SetBool(UniformUseTexture, false)
	s.program.SetVec4(UniformColor, math.NewVec4(r, g, b, a))
}

// SetTexture resolves tag to a texture unit slot and enables texture
// sampling for the next draw. An unresolved tag writes slot -1: the draw
// samples nothing useful but does not crash.
func (s *ShaderState) SetTexture(tag string) {
	if !s.active() {
		return
	}
	s.program.SetBool(UniformUseTexture, true)
	slot, ok := s.textures.FindSlot(tag)
	if !ok {
		slot = -1
	}
	s.program.SetInt(UniformTexture, int32(slot))
}

// SetUVScale writes the texture coordinate scale. Only meaningful when a
// texture is active for the draw.
func (s *ShaderState) SetUVScale(u, v float32) {
	if !s.active() {
		return
	}
	s.program.SetVec2(UniformUVScale, math.NewVec2(u, v))
}

// SetMaterial resolves tag and writes the material parameters. A miss
// leaves the previously set material untouched.
func (s *ShaderState) SetMaterial(tag string) {
	if !s.active() {
		return
	}
	mat, ok := s.materials.Find(tag)
	if !ok {
		return
	}
	s.program.SetVec3(UniformMaterialDiffuse, mat.DiffuseColor)
	s.program.SetVec3(UniformMaterialSpecular, mat.SpecularColor)
	s.program.SetFloat(UniformMaterialShininess, mat.Shininess)
}

// ConfigureLighting pushes the static light configuration. Called once
// during scene preparation, not per frame.
func (s *ShaderState) ConfigureLighting(cfg Lighting) {
	if !s.active() {
		return
	}
	s.program.SetBool(UniformUseLighting, true)

	s.program.SetVec3(UniformDirLightDirection, cfg.Directional.Direction)
	s.program.SetVec3(UniformDirLightAmbient, cfg.Directional.Ambient)
	s.program.SetVec3(UniformDirLightDiffuse, cfg.Directional.Diffuse)
	s.program.SetVec3(UniformDirLightSpecular, cfg.Directional.Specular)
	s.program.SetBool(UniformDirLightActive, cfg.Directional.Active)

	s.program.SetVec3(UniformPointLightPosition, cfg.Point.Position)
	s.program.SetVec3(UniformPointLightAmbient, cfg.Point.Ambient)
	s.program.SetVec3(UniformPointLightDiffuse, cfg.Point.Diffuse)
	s.program.SetVec3(UniformPointLightSpecular, cfg.Point.Specular)
	s.program.SetBool(UniformPointLightActive, cfg.Point.Active)
}
