package halfedge

import "github.com/gogpu/geovol/geovolmath"

// ComputeFaceNormals computes, for every non-boundary face f with
// h = f.Halfedge(), n = normalize(h.Vector() × h.Prev().Twin().Vector()),
// and writes n to every halfedge in f's cycle. Boundary faces are
// skipped — they have no well-defined normal.
func (m *Mesh[T]) ComputeFaceNormals() {
	for f := range m.Faces() {
		if f.IsBoundary() {
			continue
		}
		h := f.Halfedge()
		if !h.IsSet() {
			continue
		}
		n := h.Vector().Cross(h.Prev().Twin().Vector()).Normalize()
		cur := h
		for {
			cur.SetNormal(n)
			cur = cur.Next()
			if cur == h {
				break
			}
		}
	}
}

// ComputeVertexNormals recomputes face normals, then for every vertex sums
// the normals of its incident non-boundary halfedges — walking the
// outgoing cycle h, h.Twin().Next(), ... — normalizes the sum, and writes
// it back to every non-boundary outgoing halfedge of that vertex.
func (m *Mesh[T]) ComputeVertexNormals() {
	m.ComputeFaceNormals()
	for v := range m.Vertices() {
		start := v.Halfedge()
		if !start.IsSet() {
			continue
		}
		var sum geovolmath.Vec3[T]
		cur := start
		for {
			if !cur.Face().IsBoundary() {
				sum = sum.Add(cur.Normal())
			}
			cur = cur.Twin().Next()
			if cur == start {
				break
			}
		}
		n := sum.Normalize()
		cur = start
		for {
			if !cur.Face().IsBoundary() {
				cur.SetNormal(n)
			}
			cur = cur.Twin().Next()
			if cur == start {
				break
			}
		}
	}
}

// ComputeTangents computes, for every non-boundary face with corners
// h, h.Next(), h.Prev() forming the spanning triangle, the tangent
// t = normalize(first column of E·ΔUV⁻¹) where E = [h.Vector(),
// h.Prev().Twin().Vector()] and ΔUV = [h.Next().UV()-h.UV(),
// h.Prev().UV()-h.UV()], and writes t to every halfedge in the face.
// Faces whose ΔUV matrix is singular (degenerate or duplicate UV
// coordinates) are left unmodified.
func (m *Mesh[T]) ComputeTangents() {
	for f := range m.Faces() {
		if f.IsBoundary() {
			continue
		}
		h := f.Halfedge()
		if !h.IsSet() {
			continue
		}
		e1 := h.Vector()
		e2 := h.Prev().Twin().Vector()
		u1 := h.Next().UV().Sub(h.UV())
		u2 := h.Prev().UV().Sub(h.UV())
		det := u1.X*u2.Y - u2.X*u1.Y
		if det == 0 {
			continue
		}
		tangent := e1.Mul(u2.Y / det).Sub(e2.Mul(u1.Y / det)).Normalize()
		cur := h
		for {
			cur.SetTangent(tangent)
			cur = cur.Next()
			if cur == h {
				break
			}
		}
	}
}
