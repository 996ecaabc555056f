package halfedge

import "fmt"

// faceHalfedgeCounts and vertexHalfedgeCounts tally, for every live
// halfedge, how many halfedges reference each face/vertex — used to check
// that a cycle walk enumerates *exactly* the halfedges with that
// face/source, not merely a subset.
func (m *Mesh[T]) faceHalfedgeCounts() map[FaceHandle[T]]int {
	counts := make(map[FaceHandle[T]]int)
	for h := range m.Halfedges() {
		counts[h.Face()]++
	}
	return counts
}

func (m *Mesh[T]) vertexHalfedgeCounts() map[VertexHandle[T]]int {
	counts := make(map[VertexHandle[T]]int)
	for h := range m.Halfedges() {
		counts[h.Source()]++
	}
	return counts
}

// Validate walks all four arenas and checks invariants I1–I6, plus the
// additional constraints that every face has degree ≥3 and every vertex
// cycle has length ≥2. It returns the empty string on success, or a short
// diagnostic naming the first offending element.
func (m *Mesh[T]) Validate() string {
	// I1, I2, I3: per-halfedge checks.
	for h := range m.Halfedges() {
		if h.Next().Prev() != h {
			return fmt.Sprintf("halfedge %d: I1 violated (next.prev != self)", h.ID())
		}
		if h.Prev().Next() != h {
			return fmt.Sprintf("halfedge %d: I1 violated (prev.next != self)", h.ID())
		}
		twin := h.Twin()
		if !twin.IsSet() {
			return fmt.Sprintf("halfedge %d: I2 violated (twin unset)", h.ID())
		}
		if twin.Twin() != h {
			return fmt.Sprintf("halfedge %d: I2 violated (twin.twin != self)", h.ID())
		}
		if twin == h {
			return fmt.Sprintf("halfedge %d: I2 violated (twin == self)", h.ID())
		}
		edge := h.Edge()
		if !edge.IsSet() {
			return fmt.Sprintf("halfedge %d: I3 violated (edge unset)", h.ID())
		}
		edgeHalfedge := edge.Halfedge()
		if edgeHalfedge != h && edgeHalfedge != twin {
			return fmt.Sprintf("halfedge %d: I3 violated (edge.halfedge is neither self nor twin)", h.ID())
		}
		if h.Edge() != twin.Edge() {
			return fmt.Sprintf("halfedge %d: I3 violated (self and twin reference different edges)", h.ID())
		}
	}

	faceCounts := m.faceHalfedgeCounts()
	vertexCounts := m.vertexHalfedgeCounts()

	// I4: face cycles.
	for f := range m.Faces() {
		start := f.Halfedge()
		if !start.IsSet() {
			return fmt.Sprintf("face %d: missing halfedge", f.ID())
		}
		visited := make(map[HalfedgeHandle[T]]bool)
		cur := start
		steps := 0
		for {
			if cur.Face() != f {
				return fmt.Sprintf("face %d: halfedge %d has a different face", f.ID(), cur.ID())
			}
			if visited[cur] {
				return fmt.Sprintf("face %d: cycle revisits halfedge %d before closing", f.ID(), cur.ID())
			}
			visited[cur] = true
			steps++
			cur = cur.Next()
			if cur == start {
				break
			}
			if steps > faceCounts[f]+1 {
				return fmt.Sprintf("face %d: cycle does not close", f.ID())
			}
		}
		if steps < 3 {
			return fmt.Sprintf("face %d: I4 violated (degree %d < 3)", f.ID(), steps)
		}
		if steps != faceCounts[f] {
			return fmt.Sprintf("face %d: I4 violated (cycle of length %d does not match %d halfedges referencing this face)", f.ID(), steps, faceCounts[f])
		}
	}

	// I5: vertex cycles.
	for v := range m.Vertices() {
		start := v.Halfedge()
		if !start.IsSet() {
			return fmt.Sprintf("vertex %d: missing outgoing halfedge", v.ID())
		}
		visited := make(map[HalfedgeHandle[T]]bool)
		cur := start
		steps := 0
		for {
			if cur.Source() != v {
				return fmt.Sprintf("vertex %d: halfedge %d has a different source", v.ID(), cur.ID())
			}
			if visited[cur] {
				return fmt.Sprintf("vertex %d: cycle revisits halfedge %d before closing", v.ID(), cur.ID())
			}
			visited[cur] = true
			steps++
			cur = cur.Twin().Next()
			if cur == start {
				break
			}
			if steps > vertexCounts[v]+1 {
				return fmt.Sprintf("vertex %d: cycle does not close", v.ID())
			}
		}
		if steps < 2 {
			return fmt.Sprintf("vertex %d: I5 violated (cycle length %d < 2)", v.ID(), steps)
		}
		if steps != vertexCounts[v] {
			return fmt.Sprintf("vertex %d: I5 violated (cycle of length %d does not match %d halfedges with this source)", v.ID(), steps, vertexCounts[v])
		}
	}

	// I6: at most one boundary face per vertex.
	for v := range m.Vertices() {
		start := v.Halfedge()
		if !start.IsSet() {
			continue
		}
		boundaryFaces := make(map[FaceHandle[T]]bool)
		cur := start
		for {
			if cur.Face().IsBoundary() {
				boundaryFaces[cur.Face()] = true
			}
			cur = cur.Twin().Next()
			if cur == start {
				break
			}
		}
		if len(boundaryFaces) > 1 {
			return fmt.Sprintf("vertex %d: I6 violated (belongs to %d boundary faces)", v.ID(), len(boundaryFaces))
		}
	}

	return ""
}
