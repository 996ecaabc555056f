package halfedge

import "github.com/gogpu/geovol"

type directedPair struct {
	src, dst uint32
}

// fail clears the receiver and logs ce at Warn level before returning the
// (false, err) conversion result — every FromIndexedMesh failure path
// funnels through here so the failure kind always reaches the log.
func (m *Mesh[T]) fail(ce *ConversionError) (bool, error) {
	m.clear()
	geovol.Logger().Warn("halfedge conversion failed",
		"kind", ce.Kind.String(), "face", ce.FaceIndex, "vertex", ce.VertexIndex)
	return false, ce
}

// FromIndexedMesh builds a manifold halfedge mesh from in, replacing the
// receiver's contents. On success it returns (true, nil). On any
// structural failure it clears the receiver and returns (false, err): the
// conversion is atomic, so the boolean alone is authoritative and err
// exists only for diagnostics.
//
// Grounded on jjyouLib's HalfedgeMesh_Impl.hpp fromIndexedMesh: faces are
// emplaced first, wiring halfedges around each face and detecting
// non-manifold edges via a (src,dst)→halfedge map; any halfedge left
// without a face after that pass is a boundary halfedge, and boundary
// loops are synthesized from those by walking the map keyed by source
// vertex.
func (m *Mesh[T]) FromIndexedMesh(in IndexedMesh[T]) (bool, error) {
	m.clear()

	numVertices := len(in.Vertices)
	numFaces := len(in.Faces)
	// Euler's relation: V - E + F = 2 ⇒ E ≈ F + V - 2.
	estimatedEdges := numFaces + numVertices - 2
	if estimatedEdges < 0 {
		estimatedEdges = 0
	}
	m.vertices.reserve(numVertices)
	m.edges.reserve(estimatedEdges)
	m.halfedges.reserve(estimatedEdges * 2)
	m.faces.reserve(numFaces)

	vertexHandles := make([]VertexHandle[T], numVertices)
	for i, v := range in.Vertices {
		vertexHandles[i] = m.AddVertex(v.Position)
	}

	directed := make(map[directedPair]HalfedgeHandle[T])

	for faceIdx, face := range in.Faces {
		k := face.Degree()
		if k == 0 {
			continue
		}
		f := m.addFace(false)
		faceHalfedges := make([]HalfedgeHandle[T], k)

		for i := 0; i < k; i++ {
			corner := face.Corners[i]
			next := face.Corners[(i+1)%k]
			a, b := corner.VertexIndex, next.VertexIndex

			if int(a) >= numVertices || int(b) >= numVertices {
				return m.fail(&ConversionError{Kind: OutOfRangeVertexIndex, FaceIndex: faceIdx, VertexIndex: int(a)})
			}
			if a == b {
				return m.fail(&ConversionError{Kind: DegenerateFace, FaceIndex: faceIdx, VertexIndex: int(a)})
			}

			key := directedPair{a, b}
			h, ok := directed[key]
			if !ok {
				e := m.addEdge()
				h = m.addHalfedge()
				hTwin := m.addHalfedge()
				h.setSource(vertexHandles[a])
				hTwin.setSource(vertexHandles[b])
				h.SetTwin(hTwin)
				hTwin.SetTwin(h)
				h.setEdge(e)
				hTwin.setEdge(e)
				e.setHalfedge(h)
				directed[directedPair{a, b}] = h
				directed[directedPair{b, a}] = hTwin
			}

			if h.Face().IsSet() {
				return m.fail(&ConversionError{Kind: NonManifoldEdge, FaceIndex: faceIdx, VertexIndex: int(a)})
			}
			h.setFace(f)
			h.SetUV(corner.UV)
			h.SetNormal(corner.Normal)
			h.SetTangent(corner.Tangent)

			if !vertexHandles[a].Halfedge().IsSet() {
				vertexHandles[a].setHalfedge(h)
			}

			faceHalfedges[i] = h
		}

		for i := 0; i < k; i++ {
			faceHalfedges[i].SetNext(faceHalfedges[(i+1)%k])
			faceHalfedges[i].SetPrev(faceHalfedges[(i-1+k)%k])
		}
		f.setHalfedge(faceHalfedges[0])
	}

	// Boundary synthesis: every halfedge still without a face is on the
	// boundary of a hole.
	boundaryBySource := make(map[VertexHandle[T]]HalfedgeHandle[T])
	var boundaryOrder []HalfedgeHandle[T]
	for h := range m.Halfedges() {
		if h.Face().IsSet() {
			continue
		}
		src := h.Source()
		if _, dup := boundaryBySource[src]; dup {
			return m.fail(&ConversionError{Kind: NonManifoldVertex, VertexIndex: int(src.index)})
		}
		boundaryBySource[src] = h
		boundaryOrder = append(boundaryOrder, h)
	}

	processed := make(map[HalfedgeHandle[T]]bool)
	for _, h := range boundaryOrder {
		if processed[h] {
			continue
		}
		start := h.Source()
		seq := []HalfedgeHandle[T]{h}
		processed[h] = true
		cur := h
		for {
			dest := cur.Twin().Source()
			if dest == start {
				break
			}
			next, ok := boundaryBySource[dest]
			if !ok || processed[next] {
				return m.fail(&ConversionError{Kind: BoundaryLoopNotClosed})
			}
			processed[next] = true
			seq = append(seq, next)
			cur = next
		}

		n := len(seq)
		bf := m.addFace(true)
		for i, he := range seq {
			he.setFace(bf)
			he.SetNext(seq[(i+1)%n])
			he.SetPrev(seq[(i-1+n)%n])
		}
		bf.setHalfedge(seq[0])
	}

	return true, nil
}

// ToIndexedMesh emits the mesh's non-boundary faces, in live-iteration
// order, as an [IndexedMesh]. Vertex indices are assigned by live-iteration
// order of the vertex arena.
func (m *Mesh[T]) ToIndexedMesh() IndexedMesh[T] {
	vertexIndex := make(map[VertexHandle[T]]uint32)
	var out IndexedMesh[T]
	for v := range m.Vertices() {
		vertexIndex[v] = uint32(len(out.Vertices))
		out.Vertices = append(out.Vertices, IndexedVertex[T]{Position: v.Position()})
	}

	for f := range m.Faces() {
		if f.IsBoundary() {
			continue
		}
		start := f.Halfedge()
		if !start.IsSet() {
			continue
		}
		var face IndexedFace[T]
		cur := start
		for {
			face.Corners = append(face.Corners, Corner[T]{
				VertexIndex: vertexIndex[cur.Source()],
				UV:          cur.UV(),
				Normal:      cur.Normal(),
				Tangent:     cur.Tangent(),
			})
			cur = cur.Next()
			if cur == start {
				break
			}
		}
		out.Faces = append(out.Faces, face)
	}
	return out
}
