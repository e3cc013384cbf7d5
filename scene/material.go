package scene

import "scene-renderer/math"

// Material bundles the Phong surface parameters pushed into the shader
// when an object names it by tag.
type Material struct {
	Tag           string
	DiffuseColor  math.Vec3
	SpecularColor math.Vec3
	Shininess     float32
}

// MaterialRegistry stores named materials. It is populated once during scene
// preparation and read-only afterwards. Tags are not deduplicated; Find
// resolves the first match.
type MaterialRegistry struct {
	entries []Material
}

func NewMaterialRegistry() *MaterialRegistry {
	return &MaterialRegistry{}
}

// Define appends a material under tag.
func (r *MaterialRegistry) Define(tag string, diffuse, specular math.Vec3, shininess float32) {
	r.entries = append(r.entries, Material{
		Tag:           tag,
		DiffuseColor:  diffuse,
		SpecularColor: specular,
		Shininess:     shininess,
	})
}

// Find returns the first material registered under tag. A miss is not an
// error: callers leave the shader's previous material state untouched.
func (r *MaterialRegistry) Find(tag string) (Material, bool) {
	for _, m := range r.entries {
		if m.Tag == tag {
			return m, true
		}
	}
	return Material{}, false
}

// Len returns the number of registered materials.
func (r *MaterialRegistry) Len() int {
	return len(r.entries)
}
