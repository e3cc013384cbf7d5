package opengl

import (
	stdmath "math"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"scene-renderer/core"
	"scene-renderer/math"
	"scene-renderer/scene"
)

const (
	cylinderSegments   = 36
	torusMajorSegments = 36
	torusMinorSegments = 18
	torusMinorRadius   = 0.25
)

// gpuMesh holds the OpenGL buffer objects for an uploaded primitive.
type gpuMesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// LoadMesh generates and uploads the geometry for kind. Idempotent: a kind
// already uploaded is left untouched.
func (r *Renderer) LoadMesh(kind scene.MeshKind) error {
	if _, ok := r.meshes[kind]; ok {
		return nil
	}

	var vertices []core.Vertex
	var indices []uint32
	switch kind {
	case scene.MeshBox:
		vertices, indices = buildBox()
	case scene.MeshPlane:
		vertices, indices = buildPlane()
	case scene.MeshCylinder:
		vertices, indices = buildCylinder()
	case scene.MeshTorus:
		vertices, indices = buildTorus()
	default:
		return nil
	}

	r.meshes[kind] = uploadMesh(vertices, indices)
	return nil
}

// DrawMesh issues the draw call for a previously loaded kind. Drawing a
// kind that was never loaded does nothing.
func (r *Renderer) DrawMesh(kind scene.MeshKind) {
	mesh, ok := r.meshes[kind]
	if !ok {
		return
	}
	gl.BindVertexArray(mesh.vao)
	gl.DrawElements(gl.TRIANGLES, mesh.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

func uploadMesh(vertices []core.Vertex, indices []uint32) *gpuMesh {
	stride := int32(unsafe.Sizeof(core.Vertex{}))

	mesh := &gpuMesh{indexCount: int32(len(indices))}

	gl.GenVertexArrays(1, &mesh.vao)
	gl.GenBuffers(1, &mesh.vbo)
	gl.BindVertexArray(mesh.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, mesh.vbo)
	gl.BufferData(gl.ARRAY_BUFFER,
		len(vertices)*int(stride),
		gl.Ptr(vertices),
		gl.STATIC_DRAW)

	var v core.Vertex
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(int(unsafe.Offsetof(v.Position))))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(int(unsafe.Offsetof(v.Normal))))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(int(unsafe.Offsetof(v.UV))))

	gl.GenBuffers(1, &mesh.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, mesh.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER,
		len(indices)*4,
		gl.Ptr(indices),
		gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return mesh
}

func (m *gpuMesh) release() {
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ebo)
	gl.DeleteVertexArrays(1, &m.vao)
}

// buildBox generates a unit cube centered on the origin, one quad per face
// so each face gets flat normals and full UVs.
func buildBox() ([]core.Vertex, []uint32) {
	type face struct {
		normal math.Vec3
		// corners in counter-clockwise order seen from outside
		corners [4]math.Vec3
	}

	h := float32(0.5)
	faces := []face{
		{ // front (+Z)
			normal: math.NewVec3(0, 0, 1),
			corners: [4]math.Vec3{
				{X: -h, Y: -h, Z: h}, {X: h, Y: -h, Z: h},
				{X: h, Y: h, Z: h}, {X: -h, Y: h, Z: h},
			},
		},
		{ // back (-Z)
			normal: math.NewVec3(0, 0, -1),
			corners: [4]math.Vec3{
				{X: h, Y: -h, Z: -h}, {X: -h, Y: -h, Z: -h},
				{X: -h, Y: h, Z: -h}, {X: h, Y: h, Z: -h},
			},
		},
		{ // right (+X)
			normal: math.NewVec3(1, 0, 0),
			corners: [4]math.Vec3{
				{X: h, Y: -h, Z: h}, {X: h, Y: -h, Z: -h},
				{X: h, Y: h, Z: -h}, {X: h, Y: h, Z: h},
			},
		},
		{ // left (-X)
			normal: math.NewVec3(-1, 0, 0),
			corners: [4]math.Vec3{
				{X: -h, Y: -h, Z: -h}, {X: -h, Y: -h, Z: h},
				{X: -h, Y: h, Z: h}, {X: -h, Y: h, Z: -h},
			},
		},
		{ // top (+Y)
			normal: math.NewVec3(0, 1, 0),
			corners: [4]math.Vec3{
				{X: -h, Y: h, Z: h}, {X: h, Y: h, Z: h},
				{X: h, Y: h, Z: -h}, {X: -h, Y: h, Z: -h},
			},
		},
		{ // bottom (-Y)
			normal: math.NewVec3(0, -1, 0),
			corners: [4]math.Vec3{
				{X: -h, Y: -h, Z: -h}, {X: h, Y: -h, Z: -h},
				{X: h, Y: -h, Z: h}, {X: -h, Y: -h, Z: h},
			},
		},
	}

	uvs := [4]math.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

	var vertices []core.Vertex
	var indices []uint32
	for _, f := range faces {
		base := uint32(len(vertices))
		for i, corner := range f.corners {
			vertices = append(vertices, core.Vertex{
				Position: corner,
				Normal:   f.normal,
				UV:       uvs[i],
			})
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	return vertices, indices
}

// buildPlane generates a 2x2 quad in the XZ plane facing up.
func buildPlane() ([]core.Vertex, []uint32) {
	vertices := []core.Vertex{
		{Position: math.NewVec3(-1, 0, 1), Normal: math.Vec3Up, UV: math.NewVec2(0, 0)},
		{Position: math.NewVec3(1, 0, 1), Normal: math.Vec3Up, UV: math.NewVec2(1, 0)},
		{Position: math.NewVec3(1, 0, -1), Normal: math.Vec3Up, UV: math.NewVec2(1, 1)},
		{Position: math.NewVec3(-1, 0, -1), Normal: math.Vec3Up, UV: math.NewVec2(0, 1)},
	}
	indices := []uint32{0, 1, 2, 0, 2, 3}
	return vertices, indices
}

// buildCylinder generates a cylinder of radius 1 from y=0 to y=1 with top
// and bottom caps.
func buildCylinder() ([]core.Vertex, []uint32) {
	var vertices []core.Vertex
	var indices []uint32

	// side wall
	for i := 0; i <= cylinderSegments; i++ {
		theta := float64(i) * 2.0 * stdmath.Pi / float64(cylinderSegments)
		cosT := float32(stdmath.Cos(theta))
		sinT := float32(stdmath.Sin(theta))
		normal := math.Vec3{X: cosT, Y: 0, Z: sinT}
		u := float32(i) / float32(cylinderSegments)

		vertices = append(vertices, core.Vertex{
			Position: math.Vec3{X: cosT, Y: 0, Z: sinT},
			Normal:   normal,
			UV:       math.Vec2{X: u, Y: 0},
		})
		vertices = append(vertices, core.Vertex{
			Position: math.Vec3{X: cosT, Y: 1, Z: sinT},
			Normal:   normal,
			UV:       math.Vec2{X: u, Y: 1},
		})
	}
	for i := 0; i < cylinderSegments; i++ {
		base := uint32(i * 2)
		indices = append(indices, base, base+1, base+2)
		indices = append(indices, base+2, base+1, base+3)
	}

	// caps
	for _, lid := range []struct {
		y      float32
		normal math.Vec3
	}{
		{y: 1, normal: math.Vec3Up},
		{y: 0, normal: math.Vec3{X: 0, Y: -1, Z: 0}},
	} {
		center := uint32(len(vertices))
		vertices = append(vertices, core.Vertex{
			Position: math.Vec3{X: 0, Y: lid.y, Z: 0},
			Normal:   lid.normal,
			UV:       math.Vec2{X: 0.5, Y: 0.5},
		})
		for i := 0; i <= cylinderSegments; i++ {
			theta := float64(i) * 2.0 * stdmath.Pi / float64(cylinderSegments)
			cosT := float32(stdmath.Cos(theta))
			sinT := float32(stdmath.Sin(theta))
			vertices = append(vertices, core.Vertex{
				Position: math.Vec3{X: cosT, Y: lid.y, Z: sinT},
				Normal:   lid.normal,
				UV:       math.Vec2{X: cosT*0.5 + 0.5, Y: sinT*0.5 + 0.5},
			})
		}
		for i := 0; i < cylinderSegments; i++ {
			rim := center + 1 + uint32(i)
			if lid.normal.Y > 0 {
				indices = append(indices, center, rim+1, rim)
			} else {
				indices = append(indices, center, rim, rim+1)
			}
		}
	}

	return vertices, indices
}

// buildTorus generates a torus in the XY plane (ring axis along Z) with
// major radius 1, so a thin Z scale flattens it into a wheel facing the
// viewer.
func buildTorus() ([]core.Vertex, []uint32) {
	var vertices []core.Vertex
	var indices []uint32

	for i := 0; i <= torusMajorSegments; i++ {
		theta := float64(i) * 2.0 * stdmath.Pi / float64(torusMajorSegments)
		cosTheta := float32(stdmath.Cos(theta))
		sinTheta := float32(stdmath.Sin(theta))

		for j := 0; j <= torusMinorSegments; j++ {
			phi := float64(j) * 2.0 * stdmath.Pi / float64(torusMinorSegments)
			cosPhi := float32(stdmath.Cos(phi))
			sinPhi := float32(stdmath.Sin(phi))

			ring := float32(1.0) + torusMinorRadius*cosPhi

			vertices = append(vertices, core.Vertex{
				Position: math.Vec3{
					X: ring * cosTheta,
					Y: ring * sinTheta,
					Z: torusMinorRadius * sinPhi,
				},
				Normal: math.Vec3{
					X: cosPhi * cosTheta,
					Y: cosPhi * sinTheta,
					Z: sinPhi,
				}.Normalize(),
				UV: math.Vec2{
					X: float32(i) / float32(torusMajorSegments),
					Y: float32(j) / float32(torusMinorSegments),
				},
			})
		}
	}

	for i := 0; i < torusMajorSegments; i++ {
		for j := 0; j < torusMinorSegments; j++ {
			current := uint32(i*(torusMinorSegments+1) + j)
			next := uint32((i+1)*(torusMinorSegments+1) + j)

			indices = append(indices, current, next, current+1)
			indices = append(indices, current+1, next, next+1)
		}
	}

	return vertices, indices
}
