package scene

import (
	"fmt"

	"github.com/ansys/ansys-tools-visualization-interface/pkg/mesh"
)

// Named is implemented by consumer objects that expose a display name.
type Named interface {
	Name() string
}

// Identified is implemented by consumer objects that expose an ID
// instead of a name.
type Identified interface {
	ID() string
}

// UnknownName is the fallback name for objects that implement neither
// [Named] nor [Identified].
const UnknownName = "Unknown"

// MeshObject relates an arbitrary consumer object to the geometry that
// represents it on screen. The zero Custom value is fine: plain meshes
// plot as anonymous objects.
type MeshObject struct {
	// Custom is the consumer object this geometry stands for. It is
	// never inspected beyond the Named/Identified interfaces, so
	// consumers keep full ownership of their types.
	Custom any

	// ActorID is the scene actor this object is bound to, set when the
	// object is added to a Scene.
	ActorID string

	// Edges holds the object's edge geometry, when the consumer
	// provides it.
	Edges []*Edge

	dataset mesh.Dataset
}

// NewMeshObject pairs a consumer object with its renderable dataset.
func NewMeshObject(custom any, ds mesh.Dataset) *MeshObject {
	return &MeshObject{Custom: custom, dataset: ds}
}

// Name resolves the display name of the underlying object: Named wins
// over Identified, and objects with neither are "Unknown".
func (mo *MeshObject) Name() string {
	switch v := mo.Custom.(type) {
	case Named:
		return v.Name()
	case Identified:
		return v.ID()
	default:
		return UnknownName
	}
}

// Dataset returns the renderable geometry.
func (mo *MeshObject) Dataset() mesh.Dataset {
	return mo.dataset
}

// SetDataset swaps the renderable geometry, e.g. after clipping.
func (mo *MeshObject) SetDataset(ds mesh.Dataset) {
	mo.dataset = ds
}

// Mesh flattens the dataset to a single mesh. Multi-block datasets are
// combined; nil datasets return nil.
func (mo *MeshObject) Mesh() *mesh.Mesh {
	if mo.dataset == nil {
		return nil
	}
	return mesh.AsMesh(mo.dataset)
}

// AddEdge attaches edge geometry to the object and links the edge back
// to its parent.
func (mo *MeshObject) AddEdge(edgeID string, geometry *mesh.Mesh) *Edge {
	e := &Edge{EdgeID: edgeID, Parent: mo, geometry: geometry}
	mo.Edges = append(mo.Edges, e)
	return e
}

// Edge relates one edge of a consumer object to its line geometry.
// Edges are picked and colored independently of their parent body.
type Edge struct {
	// EdgeID identifies the edge within its parent object.
	EdgeID string

	// Parent is the object the edge belongs to.
	Parent *MeshObject

	// ActorID is the scene actor the edge is bound to.
	ActorID string

	geometry *mesh.Mesh
}

// Name returns the edge display name, "parent-edgeID".
func (e *Edge) Name() string {
	parent := UnknownName
	if e.Parent != nil {
		parent = e.Parent.Name()
	}
	return fmt.Sprintf("%s-%s", parent, e.EdgeID)
}

// Geometry returns the edge line mesh.
func (e *Edge) Geometry() *mesh.Mesh {
	return e.geometry
}
