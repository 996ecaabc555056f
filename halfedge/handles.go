package halfedge

import "github.com/gogpu/geovol/geovolmath"

// VertexHandle is a stable reference to a vertex slot: an arena reference
// (the owning mesh) and an index. The zero value is the "unset" handle.
// Two handles compare equal (via ==) iff they reference the same mesh and
// the same index.
type VertexHandle[T geovolmath.Float] struct {
	mesh  *Mesh[T]
	index uint32
}

// IsSet reports whether h was produced by the mesh rather than being the
// zero value.
func (h VertexHandle[T]) IsSet() bool { return h.mesh != nil }

// Valid reports whether h references a live (non-tombstoned) vertex.
func (h VertexHandle[T]) Valid() bool {
	return h.mesh != nil && h.mesh.vertices.valid(h.index)
}

// Removed reports whether h's slot has been tombstoned.
func (h VertexHandle[T]) Removed() bool { return h.mesh.vertices.removed(h.index) }

// ID returns the globally unique identifier assigned to this vertex at
// creation. Stable across garbage collection.
func (h VertexHandle[T]) ID() uint64 { return h.mesh.vertices.id(h.index) }

// Position returns the vertex's 3D position.
func (h VertexHandle[T]) Position() geovolmath.Vec3[T] { return h.mesh.vertices.get(h.index).position }

// SetPosition overwrites the vertex's 3D position.
func (h VertexHandle[T]) SetPosition(p geovolmath.Vec3[T]) { h.mesh.vertices.get(h.index).position = p }

// Halfedge returns one outgoing halfedge of this vertex, or the unset
// handle if the vertex has no outgoing halfedge.
func (h VertexHandle[T]) Halfedge() HalfedgeHandle[T] { return h.mesh.vertices.get(h.index).halfedge }

func (h VertexHandle[T]) setHalfedge(he HalfedgeHandle[T]) { h.mesh.vertices.get(h.index).halfedge = he }

// Degree returns the number of halfedges outgoing from this vertex, by
// walking the cycle h.Halfedge(), h.Halfedge().Twin().Next(), ... back to
// the start.
func (h VertexHandle[T]) Degree() int {
	start := h.Halfedge()
	if !start.IsSet() {
		return 0
	}
	n := 0
	cur := start
	for {
		n++
		cur = cur.Twin().Next()
		if cur == start {
			break
		}
	}
	return n
}

// OnBoundary reports whether any halfedge in this vertex's outgoing cycle
// belongs to a boundary face.
func (h VertexHandle[T]) OnBoundary() bool {
	start := h.Halfedge()
	if !start.IsSet() {
		return false
	}
	cur := start
	for {
		if cur.Face().IsBoundary() {
			return true
		}
		cur = cur.Twin().Next()
		if cur == start {
			break
		}
	}
	return false
}

// HalfedgeHandle is a stable reference to a halfedge slot.
type HalfedgeHandle[T geovolmath.Float] struct {
	mesh  *Mesh[T]
	index uint32
}

func (h HalfedgeHandle[T]) IsSet() bool { return h.mesh != nil }

func (h HalfedgeHandle[T]) Valid() bool {
	return h.mesh != nil && h.mesh.halfedges.valid(h.index)
}

func (h HalfedgeHandle[T]) Removed() bool { return h.mesh.halfedges.removed(h.index) }

func (h HalfedgeHandle[T]) ID() uint64 { return h.mesh.halfedges.id(h.index) }

func (h HalfedgeHandle[T]) data() *halfedgeData[T] { return h.mesh.halfedges.get(h.index) }

func (h HalfedgeHandle[T]) Next() HalfedgeHandle[T] { return h.data().next }
func (h HalfedgeHandle[T]) Prev() HalfedgeHandle[T] { return h.data().prev }
func (h HalfedgeHandle[T]) Twin() HalfedgeHandle[T] { return h.data().twin }
func (h HalfedgeHandle[T]) Source() VertexHandle[T] { return h.data().source }
func (h HalfedgeHandle[T]) Edge() EdgeHandle[T]     { return h.data().edge }
func (h HalfedgeHandle[T]) Face() FaceHandle[T]      { return h.data().face }
func (h HalfedgeHandle[T]) UV() geovolmath.Vec2[T]   { return h.data().uv }
func (h HalfedgeHandle[T]) Normal() geovolmath.Vec3[T]  { return h.data().normal }
func (h HalfedgeHandle[T]) Tangent() geovolmath.Vec3[T] { return h.data().tangent }

func (h HalfedgeHandle[T]) SetNext(n HalfedgeHandle[T])    { h.data().next = n }
func (h HalfedgeHandle[T]) SetPrev(p HalfedgeHandle[T])    { h.data().prev = p }
func (h HalfedgeHandle[T]) SetTwin(w HalfedgeHandle[T])    { h.data().twin = w }
func (h HalfedgeHandle[T]) setSource(v VertexHandle[T])    { h.data().source = v }
func (h HalfedgeHandle[T]) setEdge(e EdgeHandle[T])        { h.data().edge = e }
func (h HalfedgeHandle[T]) setFace(f FaceHandle[T])        { h.data().face = f }
func (h HalfedgeHandle[T]) SetUV(uv geovolmath.Vec2[T])    { h.data().uv = uv }
func (h HalfedgeHandle[T]) SetNormal(n geovolmath.Vec3[T]) { h.data().normal = n }
func (h HalfedgeHandle[T]) SetTangent(t geovolmath.Vec3[T]) { h.data().tangent = t }

// Vector returns the displacement from this halfedge's source vertex to
// its twin's source vertex (i.e. this halfedge's destination).
func (h HalfedgeHandle[T]) Vector() geovolmath.Vec3[T] {
	return h.Twin().Source().Position().Sub(h.Source().Position())
}

// FaceHandle is a stable reference to a face slot. A face with its
// boundary flag set is the synthetic face filling a topological hole.
type FaceHandle[T geovolmath.Float] struct {
	mesh  *Mesh[T]
	index uint32
}

func (f FaceHandle[T]) IsSet() bool { return f.mesh != nil }

func (f FaceHandle[T]) Valid() bool {
	return f.mesh != nil && f.mesh.faces.valid(f.index)
}

func (f FaceHandle[T]) Removed() bool { return f.mesh.faces.removed(f.index) }

func (f FaceHandle[T]) ID() uint64 { return f.mesh.faces.id(f.index) }

// Halfedge returns one halfedge incident to this face.
func (f FaceHandle[T]) Halfedge() HalfedgeHandle[T] { return f.mesh.faces.get(f.index).halfedge }

func (f FaceHandle[T]) setHalfedge(h HalfedgeHandle[T]) { f.mesh.faces.get(f.index).halfedge = h }

// IsBoundary reports whether f is a synthetic boundary face. The unset
// face handle (mesh == nil) is never a boundary face.
func (f FaceHandle[T]) IsBoundary() bool {
	return f.mesh != nil && f.mesh.faces.get(f.index).boundary
}

// Degree returns the number of halfedges in this face's cycle.
func (f FaceHandle[T]) Degree() int {
	start := f.Halfedge()
	if !start.IsSet() {
		return 0
	}
	n := 0
	cur := start
	for {
		n++
		cur = cur.Next()
		if cur == start {
			break
		}
	}
	return n
}

// EdgeHandle is a stable reference to an edge slot.
type EdgeHandle[T geovolmath.Float] struct {
	mesh  *Mesh[T]
	index uint32
}

func (e EdgeHandle[T]) IsSet() bool { return e.mesh != nil }

func (e EdgeHandle[T]) Valid() bool {
	return e.mesh != nil && e.mesh.edges.valid(e.index)
}

func (e EdgeHandle[T]) Removed() bool { return e.mesh.edges.removed(e.index) }

func (e EdgeHandle[T]) ID() uint64 { return e.mesh.edges.id(e.index) }

// Halfedge returns one of this edge's two halfedges.
func (e EdgeHandle[T]) Halfedge() HalfedgeHandle[T] { return e.mesh.edges.get(e.index).halfedge }

func (e EdgeHandle[T]) setHalfedge(h HalfedgeHandle[T]) { e.mesh.edges.get(e.index).halfedge = h }
