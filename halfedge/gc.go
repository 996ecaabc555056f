package halfedge

import "github.com/gogpu/geovol"

// collect prefix-sums the live bit to build an offset-remap array, compacts
// live slots toward the front in index order, truncates to the live count,
// and clears the free list. The returned slice maps every old index to its
// new index; entries for tombstoned slots are 0, so a live reference to a
// tombstoned slot is remapped to index 0.
func (a *arena[V]) collect() []uint32 {
	remap := make([]uint32, len(a.slots))
	write := uint32(0)
	for i := range a.slots {
		if a.slots[i].tomb {
			continue
		}
		remap[i] = write
		if write != uint32(i) {
			a.slots[write] = a.slots[i]
		}
		write++
	}
	a.slots = a.slots[:write]
	a.free = a.free[:0]
	return remap
}

// CollectGarbage compacts all four arenas, remapping every interior handle
// reference to its post-compaction index, and clears every free list.
// Identifiers are preserved; only slot indices change. Every handle held
// by the caller before this call is invalidated.
func (m *Mesh[T]) CollectGarbage() {
	before := [4]int{m.vertices.len(), m.halfedges.len(), m.faces.len(), m.edges.len()}

	vRemap := m.vertices.collect()
	hRemap := m.halfedges.collect()
	fRemap := m.faces.collect()
	eRemap := m.edges.collect()

	for i := range m.vertices.slots {
		v := &m.vertices.slots[i].value
		if v.halfedge.IsSet() {
			v.halfedge.index = hRemap[v.halfedge.index]
		}
	}
	for i := range m.halfedges.slots {
		h := &m.halfedges.slots[i].value
		if h.next.IsSet() {
			h.next.index = hRemap[h.next.index]
		}
		if h.prev.IsSet() {
			h.prev.index = hRemap[h.prev.index]
		}
		if h.twin.IsSet() {
			h.twin.index = hRemap[h.twin.index]
		}
		if h.source.IsSet() {
			h.source.index = vRemap[h.source.index]
		}
		if h.edge.IsSet() {
			h.edge.index = eRemap[h.edge.index]
		}
		if h.face.IsSet() {
			h.face.index = fRemap[h.face.index]
		}
	}
	for i := range m.faces.slots {
		f := &m.faces.slots[i].value
		if f.halfedge.IsSet() {
			f.halfedge.index = hRemap[f.halfedge.index]
		}
	}
	for i := range m.edges.slots {
		e := &m.edges.slots[i].value
		if e.halfedge.IsSet() {
			e.halfedge.index = hRemap[e.halfedge.index]
		}
	}

	geovol.Logger().Debug("halfedge garbage collected",
		"verticesBefore", before[0], "verticesAfter", m.vertices.len(),
		"halfedgesBefore", before[1], "halfedgesAfter", m.halfedges.len(),
		"facesBefore", before[2], "facesAfter", m.faces.len(),
		"edgesBefore", before[3], "edgesAfter", m.edges.len())
}
