package halfedge

import "github.com/gogpu/geovol/geovolmath"

// IndexedVertex is one entry of an [IndexedMesh]'s flat vertex array.
type IndexedVertex[T geovolmath.Float] struct {
	Position geovolmath.Vec3[T]
}

// Corner is one ordered corner of an [IndexedFace]: the vertex it
// references plus its per-corner attributes.
type Corner[T geovolmath.Float] struct {
	VertexIndex uint32
	UV          geovolmath.Vec2[T]
	Normal      geovolmath.Vec3[T]
	Tangent     geovolmath.Vec3[T]
}

// IndexedFace is an ordered corner list; winding defines the outward
// normal.
type IndexedFace[T geovolmath.Float] struct {
	Corners []Corner[T]
}

// Degree returns the number of corners in the face.
func (f IndexedFace[T]) Degree() int { return len(f.Corners) }

// IndexedMesh is the flat polygonal mesh exchange format §6 describes:
// a vertex array and a face array of ordered corners referencing it by
// 0-based index.
type IndexedMesh[T geovolmath.Float] struct {
	Vertices []IndexedVertex[T]
	Faces    []IndexedFace[T]
}
