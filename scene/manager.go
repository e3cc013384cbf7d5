package scene

import (
	"scene-renderer/core"
	"scene-renderer/math"

	"github.com/rs/zerolog/log"
)

// Surface is what covers an object: either a registered texture or a flat
// color, never both.
type Surface interface {
	surface()
}

// Textured samples the texture registered under Tag, with texture
// coordinates scaled by UVScale. A zero UVScale means 1:1.
type Textured struct {
	Tag     string
	UVScale math.Vec2
}

// Flat paints the object a single color, with lighting still applied.
type Flat struct {
	Color core.Color
}

func (Textured) surface() {}
func (Flat) surface()     {}

// Object is one hand-authored entry of the scene: a primitive mesh placed
// by a transform, shaded by a material tag and covered by a surface.
// Material and texture tags are weak references; a dangling tag degrades to
// a visually wrong object, not a failed frame.
type Object struct {
	Name      string
	Mesh      MeshKind
	Transform Transform
	Material  string
	Surface   Surface
}

// MaterialDef is a hand-authored material entry consumed by Prepare.
type MaterialDef struct {
	Tag       string
	Diffuse   math.Vec3
	Specular  math.Vec3
	Shininess float32
}

// TextureFile is a hand-authored texture entry consumed by Prepare.
type TextureFile struct {
	Path string
	Tag  string
}

// Scene is the full declarative description of what to prepare and draw.
type Scene struct {
	Materials []MaterialDef
	Textures  []TextureFile
	Lighting  Lighting
	Objects   []Object
}

// Manager owns the registries and drives scene preparation and per-frame
// rendering. Prepare runs once before the first frame; RenderFrame may then
// be called any number of times and only reads state.
type Manager struct {
	scene     Scene
	shader    *ShaderState
	textures  *TextureRegistry
	materials *MaterialRegistry
	meshes    MeshProvider
	prepared  bool
}

func NewManager(program Program, backend TextureBackend, meshes MeshProvider, s Scene) *Manager {
	textures := NewTextureRegistry(backend)
	materials := NewMaterialRegistry()
	return &Manager{
		scene:     s,
		shader:    NewShaderState(program, textures, materials),
		textures:  textures,
		materials: materials,
		meshes:    meshes,
	}
}

// Textures exposes the texture registry for tag lookups.
func (m *Manager) Textures() *TextureRegistry {
	return m.textures
}

// Materials exposes the material registry for tag lookups.
func (m *Manager) Materials() *MaterialRegistry {
	return m.materials
}

// Shader exposes the shader state setter.
func (m *Manager) Shader() *ShaderState {
	return m.shader
}

// Prepare populates the material and texture registries, binds all texture
// units, pushes the lighting configuration and uploads every mesh kind the
// object list references. Resource failures are logged and skipped; the
// rest of the preparation proceeds. Calling Prepare again is a no-op.
func (m *Manager) Prepare() {
	if m.prepared {
		return
	}

	for _, def := range m.scene.Materials {
		m.materials.Define(def.Tag, def.Diffuse, def.Specular, def.Shininess)
	}

	for _, tf := range m.scene.Textures {
		if err := m.textures.Load(tf.Path, tf.Tag); err != nil {
			log.Warn().Err(err).Str("tag", tf.Tag).Msg("texture load failed")
		}
	}
	m.textures.BindAll()

	m.shader.ConfigureLighting(m.scene.Lighting)

	for _, kind := range m.meshKinds() {
		if err := m.meshes.LoadMesh(kind); err != nil {
			log.Warn().Err(err).Stringer("mesh", kind).Msg("mesh load failed")
		}
	}

	m.prepared = true
}

// meshKinds returns each mesh kind referenced by the object list once, in
// first-reference order.
func (m *Manager) meshKinds() []MeshKind {
	seen := make(map[MeshKind]bool)
	var kinds []MeshKind
	for _, obj := range m.scene.Objects {
		if !seen[obj.Mesh] {
			seen[obj.Mesh] = true
			kinds = append(kinds, obj.Mesh)
		}
	}
	return kinds
}

// RenderFrame draws the object list in order. For each object it pushes the
// composed transform, the material, then the surface (texture plus UV scale,
// or flat color), and issues the draw call for the object's mesh kind. The
// registries are only read; two consecutive calls produce identical state
// pushes and draws.
func (m *Manager) RenderFrame() {
	for i := range m.scene.Objects {
		obj := &m.scene.Objects[i]

		m.shader.SetTransform(obj.Transform.Matrix())
		m.shader.SetMaterial(obj.Material)

		switch s := obj.Surface.(type) {
		case Textured:
			m.shader.SetTexture(s.Tag)
			uv := s.UVScale
			if uv == (math.Vec2{}) {
				uv = math.NewVec2(1, 1)
			}
			m.shader.SetUVScale(uv.X, uv.Y)
		case Flat:
			m.shader.SetColor(s.Color.R, s.Color.G, s.Color.B, s.Color.A)
		}

		m.meshes.DrawMesh(obj.Mesh)
	}
}

// Release frees every GPU texture held by the registry. Idempotent.
func (m *Manager) Release() {
	m.textures.ReleaseAll()
}
