package components

// MeshHandle and MaterialHandle identify GPU resources owned by the
// (out-of-scope) rendering backend; the core only ever stores and forwards
// them (spec.md §1, §6.2).
type MeshHandle uint32
type MaterialHandle uint32

// InvalidMeshHandle and InvalidMaterialHandle are the sentinel values
// spec.md §3 allows ("handles valid or sentinel").
const (
	InvalidMeshHandle     MeshHandle     = 0
	InvalidMaterialHandle MaterialHandle = 0
)

// Renderable is the rendering boundary's per-entity payload (spec.md §3,
// §6.2).
type Renderable struct {
	Mesh     MeshHandle
	Material MaterialHandle
	Visible  bool
}

// DefaultRenderable returns an invisible Renderable with sentinel handles.
func DefaultRenderable() Renderable {
	return Renderable{Mesh: InvalidMeshHandle, Material: InvalidMaterialHandle}
}
