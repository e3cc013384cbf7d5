package scene

// MeshKind identifies one of the pre-built primitive geometries.
type MeshKind int

const (
	MeshBox MeshKind = iota
	MeshPlane
	MeshCylinder
	MeshTorus
)

func (k MeshKind) String() string {
	switch k {
	case MeshBox:
		return "box"
	case MeshPlane:
		return "plane"
	case MeshCylinder:
		return "cylinder"
	case MeshTorus:
		return "torus"
	}
	return "unknown"
}

// MeshProvider is the geometry collaborator. LoadMesh uploads the geometry
// for a kind to the GPU and must be idempotent: a kind is uploaded at most
// once no matter how many objects reference it. DrawMesh issues the draw
// call for a previously loaded kind.
type MeshProvider interface {
	LoadMesh(kind MeshKind) error
	DrawMesh(kind MeshKind)
}
