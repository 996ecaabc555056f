package halfedge

import "iter"

// Vertices returns a range view over live vertices in slot order, skipping
// tombstoned slots transparently.
func (m *Mesh[T]) Vertices() iter.Seq[VertexHandle[T]] {
	return func(yield func(VertexHandle[T]) bool) {
		for i := range m.vertices.slots {
			if m.vertices.slots[i].tomb {
				continue
			}
			if !yield(VertexHandle[T]{mesh: m, index: uint32(i)}) {
				return
			}
		}
	}
}

// VerticesBackward is [Mesh.Vertices] in reverse slot order.
func (m *Mesh[T]) VerticesBackward() iter.Seq[VertexHandle[T]] {
	return func(yield func(VertexHandle[T]) bool) {
		for i := len(m.vertices.slots) - 1; i >= 0; i-- {
			if m.vertices.slots[i].tomb {
				continue
			}
			if !yield(VertexHandle[T]{mesh: m, index: uint32(i)}) {
				return
			}
		}
	}
}

// Halfedges returns a range view over live halfedges in slot order.
func (m *Mesh[T]) Halfedges() iter.Seq[HalfedgeHandle[T]] {
	return func(yield func(HalfedgeHandle[T]) bool) {
		for i := range m.halfedges.slots {
			if m.halfedges.slots[i].tomb {
				continue
			}
			if !yield(HalfedgeHandle[T]{mesh: m, index: uint32(i)}) {
				return
			}
		}
	}
}

// Faces returns a range view over live faces (boundary and non-boundary)
// in slot order.
func (m *Mesh[T]) Faces() iter.Seq[FaceHandle[T]] {
	return func(yield func(FaceHandle[T]) bool) {
		for i := range m.faces.slots {
			if m.faces.slots[i].tomb {
				continue
			}
			if !yield(FaceHandle[T]{mesh: m, index: uint32(i)}) {
				return
			}
		}
	}
}

// Edges returns a range view over live edges in slot order.
func (m *Mesh[T]) Edges() iter.Seq[EdgeHandle[T]] {
	return func(yield func(EdgeHandle[T]) bool) {
		for i := range m.edges.slots {
			if m.edges.slots[i].tomb {
				continue
			}
			if !yield(EdgeHandle[T]{mesh: m, index: uint32(i)}) {
				return
			}
		}
	}
}
