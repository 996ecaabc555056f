// Package halfedge implements a doubly-connected edge list (halfedge mesh)
// over vertices, halfedges, edges, and faces, with lazy tombstone deletion,
// garbage collection, indexed-mesh conversion with manifold validation, and
// a structural validator.
//
// Every cross-reference between entities is an (arena, index) pair —
// a [VertexHandle], [HalfedgeHandle], [FaceHandle], or [EdgeHandle] — never
// a pointer cycle. This is the arena-and-index design: handles are plain
// values carrying a back-reference to the owning [Mesh] and a slot index,
// so navigation is constant-time while arenas own storage exclusively.
package halfedge

import "github.com/gogpu/geovol/geovolmath"

type vertexData[T geovolmath.Float] struct {
	position geovolmath.Vec3[T]
	halfedge HalfedgeHandle[T]
}

type halfedgeData[T geovolmath.Float] struct {
	next, prev, twin HalfedgeHandle[T]
	source           VertexHandle[T]
	edge             EdgeHandle[T]
	face             FaceHandle[T]
	uv               geovolmath.Vec2[T]
	normal, tangent  geovolmath.Vec3[T]
}

type faceData[T geovolmath.Float] struct {
	halfedge HalfedgeHandle[T]
	boundary bool
}

type edgeData[T geovolmath.Float] struct {
	halfedge HalfedgeHandle[T]
}

// Mesh is a halfedge mesh over a scalar type T. The zero value is an empty
// mesh; [New] returns a pointer to one.
type Mesh[T geovolmath.Float] struct {
	vertices  arena[vertexData[T]]
	halfedges arena[halfedgeData[T]]
	faces     arena[faceData[T]]
	edges     arena[edgeData[T]]
	nextID    uint64
}

// New returns an empty mesh.
func New[T geovolmath.Float]() *Mesh[T] {
	return &Mesh[T]{}
}

func (m *Mesh[T]) freshID() uint64 {
	m.nextID++
	return m.nextID
}

// NumVertices returns the live vertex count.
func (m *Mesh[T]) NumVertices() int { return m.vertices.len() }

// NumHalfedges returns the live halfedge count.
func (m *Mesh[T]) NumHalfedges() int { return m.halfedges.len() }

// NumFaces returns the live face count, including boundary faces.
func (m *Mesh[T]) NumFaces() int { return m.faces.len() }

// NumEdges returns the live edge count.
func (m *Mesh[T]) NumEdges() int { return m.edges.len() }

// AddVertex creates a new vertex at position, reusing a freed slot if one
// is available.
func (m *Mesh[T]) AddVertex(position geovolmath.Vec3[T]) VertexHandle[T] {
	index := m.vertices.createReuse(m.freshID())
	m.vertices.get(index).position = position
	return VertexHandle[T]{mesh: m, index: index}
}

// RemoveVertex tombstones v. Reports false (InvalidHandle) if v does not
// reference a live vertex in this mesh.
func (m *Mesh[T]) RemoveVertex(v VertexHandle[T]) bool {
	if v.mesh != m {
		return false
	}
	return m.vertices.remove(v.index)
}

// RemoveHalfedge tombstones h. Reports false (InvalidHandle) if h does not
// reference a live halfedge in this mesh.
func (m *Mesh[T]) RemoveHalfedge(h HalfedgeHandle[T]) bool {
	if h.mesh != m {
		return false
	}
	return m.halfedges.remove(h.index)
}

// RemoveFace tombstones f. Reports false (InvalidHandle) if f does not
// reference a live face in this mesh.
func (m *Mesh[T]) RemoveFace(f FaceHandle[T]) bool {
	if f.mesh != m {
		return false
	}
	return m.faces.remove(f.index)
}

// RemoveEdge tombstones e. Reports false (InvalidHandle) if e does not
// reference a live edge in this mesh.
func (m *Mesh[T]) RemoveEdge(e EdgeHandle[T]) bool {
	if e.mesh != m {
		return false
	}
	return m.edges.remove(e.index)
}

func (m *Mesh[T]) addHalfedge() HalfedgeHandle[T] {
	index := m.halfedges.createReuse(m.freshID())
	return HalfedgeHandle[T]{mesh: m, index: index}
}

func (m *Mesh[T]) addFace(boundary bool) FaceHandle[T] {
	index := m.faces.createReuse(m.freshID())
	m.faces.get(index).boundary = boundary
	return FaceHandle[T]{mesh: m, index: index}
}

func (m *Mesh[T]) addEdge() EdgeHandle[T] {
	index := m.edges.createReuse(m.freshID())
	return EdgeHandle[T]{mesh: m, index: index}
}

func (m *Mesh[T]) clear() {
	m.vertices.reset()
	m.halfedges.reset()
	m.faces.reset()
	m.edges.reset()
}
