package halfedge

import (
	"testing"

	"github.com/gogpu/geovol/geovolmath"
)

func triangleCorners(verts ...uint32) IndexedFace[float64] {
	corners := make([]Corner[float64], len(verts))
	for i, v := range verts {
		corners[i] = Corner[float64]{VertexIndex: v}
	}
	return IndexedFace[float64]{Corners: corners}
}

func tetrahedron() IndexedMesh[float64] {
	return IndexedMesh[float64]{
		Vertices: []IndexedVertex[float64]{
			{Position: geovolmath.V3(0.0, 0.0, 0.0)},
			{Position: geovolmath.V3(1.0, 0.0, 0.0)},
			{Position: geovolmath.V3(0.0, 1.0, 0.0)},
			{Position: geovolmath.V3(0.0, 0.0, 1.0)},
		},
		Faces: []IndexedFace[float64]{
			triangleCorners(0, 1, 2),
			triangleCorners(0, 3, 1),
			triangleCorners(0, 2, 3),
			triangleCorners(1, 3, 2),
		},
	}
}

func TestFromIndexedMeshTetrahedron(t *testing.T) {
	m := New[float64]()
	ok, err := m.FromIndexedMesh(tetrahedron())
	if !ok {
		t.Fatalf("FromIndexedMesh() = false, err=%v, want true", err)
	}

	if got := m.NumVertices(); got != 4 {
		t.Errorf("NumVertices() = %d, want 4", got)
	}
	if got := m.NumEdges(); got != 6 {
		t.Errorf("NumEdges() = %d, want 6", got)
	}
	if got := m.NumHalfedges(); got != 12 {
		t.Errorf("NumHalfedges() = %d, want 12", got)
	}

	nonBoundary, boundary := 0, 0
	for f := range m.Faces() {
		if f.IsBoundary() {
			boundary++
		} else {
			nonBoundary++
		}
	}
	if nonBoundary != 4 || boundary != 0 {
		t.Errorf("faces = %d non-boundary, %d boundary, want 4, 0", nonBoundary, boundary)
	}

	if diag := m.Validate(); diag != "" {
		t.Errorf("Validate() = %q, want empty", diag)
	}

	for v := range m.Vertices() {
		if got := v.Degree(); got != 3 {
			t.Errorf("vertex %d degree = %d, want 3", v.ID(), got)
		}
	}
}

func openSquare() IndexedMesh[float64] {
	return IndexedMesh[float64]{
		Vertices: []IndexedVertex[float64]{
			{Position: geovolmath.V3(0.0, 0.0, 0.0)},
			{Position: geovolmath.V3(1.0, 0.0, 0.0)},
			{Position: geovolmath.V3(1.0, 1.0, 0.0)},
			{Position: geovolmath.V3(0.0, 1.0, 0.0)},
		},
		Faces: []IndexedFace[float64]{
			triangleCorners(0, 1, 2, 3),
		},
	}
}

func TestFromIndexedMeshOpenSquare(t *testing.T) {
	m := New[float64]()
	ok, err := m.FromIndexedMesh(openSquare())
	if !ok {
		t.Fatalf("FromIndexedMesh() = false, err=%v, want true", err)
	}

	nonBoundary, boundary := 0, 0
	for f := range m.Faces() {
		if f.IsBoundary() {
			boundary++
			if got := f.Degree(); got != 4 {
				t.Errorf("boundary face degree = %d, want 4", got)
			}
		} else {
			nonBoundary++
			if got := f.Degree(); got != 4 {
				t.Errorf("non-boundary face degree = %d, want 4", got)
			}
		}
	}
	if nonBoundary != 1 || boundary != 1 {
		t.Errorf("faces = %d non-boundary, %d boundary, want 1, 1", nonBoundary, boundary)
	}
	if got := m.NumEdges(); got != 4 {
		t.Errorf("NumEdges() = %d, want 4", got)
	}
	if got := m.NumHalfedges(); got != 8 {
		t.Errorf("NumHalfedges() = %d, want 8", got)
	}
	for v := range m.Vertices() {
		if !v.OnBoundary() {
			t.Errorf("vertex %d OnBoundary() = false, want true", v.ID())
		}
	}
	if diag := m.Validate(); diag != "" {
		t.Errorf("Validate() = %q, want empty", diag)
	}
}

func TestFromIndexedMeshNonManifoldEdge(t *testing.T) {
	in := IndexedMesh[float64]{
		Vertices: []IndexedVertex[float64]{
			{Position: geovolmath.V3(0.0, 0.0, 0.0)},
			{Position: geovolmath.V3(1.0, 0.0, 0.0)},
			{Position: geovolmath.V3(0.0, 1.0, 0.0)},
			{Position: geovolmath.V3(-1.0, 0.0, 0.0)},
			{Position: geovolmath.V3(0.0, -1.0, 0.0)},
		},
		Faces: []IndexedFace[float64]{
			triangleCorners(0, 1, 2),
			triangleCorners(1, 0, 3),
			triangleCorners(0, 1, 4),
		},
	}

	m := New[float64]()
	ok, err := m.FromIndexedMesh(in)
	if ok {
		t.Fatal("FromIndexedMesh() = true, want false for an edge shared by three faces")
	}
	var convErr *ConversionError
	if err == nil {
		t.Fatal("FromIndexedMesh() returned nil error on failure")
	} else if ce, isCE := err.(*ConversionError); !isCE {
		t.Errorf("error type = %T, want *ConversionError", err)
	} else {
		convErr = ce
	}
	if convErr != nil && convErr.Kind != NonManifoldEdge {
		t.Errorf("error kind = %v, want NonManifoldEdge", convErr.Kind)
	}
	if m.NumVertices() != 0 || m.NumFaces() != 0 || m.NumEdges() != 0 || m.NumHalfedges() != 0 {
		t.Error("mesh not cleared after failed conversion")
	}
}

func TestFromIndexedMeshNonManifoldVertex(t *testing.T) {
	in := IndexedMesh[float64]{
		Vertices: []IndexedVertex[float64]{
			{Position: geovolmath.V3(0.0, 0.0, 0.0)},  // 0: shared apex
			{Position: geovolmath.V3(1.0, 0.0, 0.0)},  // 1
			{Position: geovolmath.V3(0.0, 1.0, 0.0)},  // 2
			{Position: geovolmath.V3(-1.0, 0.0, 0.0)}, // 3
			{Position: geovolmath.V3(0.0, -1.0, 0.0)}, // 4
		},
		Faces: []IndexedFace[float64]{
			triangleCorners(0, 1, 2),
			triangleCorners(0, 3, 4),
		},
	}

	m := New[float64]()
	ok, err := m.FromIndexedMesh(in)
	if ok {
		t.Fatal("FromIndexedMesh() = true, want false for two fans sharing only an apex vertex")
	}
	if ce, isCE := err.(*ConversionError); isCE && ce.Kind != NonManifoldVertex {
		t.Errorf("error kind = %v, want NonManifoldVertex", ce.Kind)
	}
	if m.NumVertices() != 0 {
		t.Error("mesh not cleared after failed conversion")
	}
}

func TestFromIndexedMeshOutOfRangeVertex(t *testing.T) {
	in := IndexedMesh[float64]{
		Vertices: []IndexedVertex[float64]{
			{Position: geovolmath.V3(0.0, 0.0, 0.0)},
			{Position: geovolmath.V3(1.0, 0.0, 0.0)},
			{Position: geovolmath.V3(0.0, 1.0, 0.0)},
		},
		Faces: []IndexedFace[float64]{
			triangleCorners(0, 1, 5),
		},
	}
	m := New[float64]()
	ok, err := m.FromIndexedMesh(in)
	if ok {
		t.Fatal("FromIndexedMesh() = true, want false for an out-of-range vertex index")
	}
	if ce, isCE := err.(*ConversionError); isCE && ce.Kind != OutOfRangeVertexIndex {
		t.Errorf("error kind = %v, want OutOfRangeVertexIndex", ce.Kind)
	}
}

func TestFromIndexedMeshDegenerateFace(t *testing.T) {
	in := IndexedMesh[float64]{
		Vertices: []IndexedVertex[float64]{
			{Position: geovolmath.V3(0.0, 0.0, 0.0)},
			{Position: geovolmath.V3(1.0, 0.0, 0.0)},
			{Position: geovolmath.V3(0.0, 1.0, 0.0)},
		},
		Faces: []IndexedFace[float64]{
			triangleCorners(0, 0, 2),
		},
	}
	m := New[float64]()
	ok, err := m.FromIndexedMesh(in)
	if ok {
		t.Fatal("FromIndexedMesh() = true, want false for a duplicate consecutive vertex")
	}
	if ce, isCE := err.(*ConversionError); isCE && ce.Kind != DegenerateFace {
		t.Errorf("error kind = %v, want DegenerateFace", ce.Kind)
	}
}

func TestRoundTripToIndexedMesh(t *testing.T) {
	m := New[float64]()
	ok, _ := m.FromIndexedMesh(tetrahedron())
	if !ok {
		t.Fatal("FromIndexedMesh() failed")
	}
	out := m.ToIndexedMesh()
	if len(out.Vertices) != 4 {
		t.Errorf("len(out.Vertices) = %d, want 4", len(out.Vertices))
	}
	if len(out.Faces) != 4 {
		t.Errorf("len(out.Faces) = %d, want 4", len(out.Faces))
	}
	for _, f := range out.Faces {
		if f.Degree() != 3 {
			t.Errorf("face degree = %d, want 3", f.Degree())
		}
	}
}
