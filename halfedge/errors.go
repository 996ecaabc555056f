package halfedge

import "fmt"

// ErrorKind names the structural reason [Mesh.FromIndexedMesh] failed.
type ErrorKind int

const (
	// OutOfRangeVertexIndex: a face corner referenced a vertex index
	// outside the input vertex array.
	OutOfRangeVertexIndex ErrorKind = iota
	// DegenerateFace: a face had two consecutive corners on the same
	// vertex.
	DegenerateFace
	// NonManifoldEdge: an edge was referenced by more than two face
	// corners.
	NonManifoldEdge
	// NonManifoldVertex: a vertex had more than one boundary loop.
	NonManifoldVertex
	// BoundaryLoopNotClosed: a boundary halfedge chain could not be
	// walked back to its starting vertex.
	BoundaryLoopNotClosed
)

func (k ErrorKind) String() string {
	switch k {
	case OutOfRangeVertexIndex:
		return "out-of-range vertex index"
	case DegenerateFace:
		return "degenerate face"
	case NonManifoldEdge:
		return "non-manifold edge"
	case NonManifoldVertex:
		return "non-manifold vertex"
	case BoundaryLoopNotClosed:
		return "boundary loop not closed"
	default:
		return "unknown conversion error"
	}
}

// ConversionError reports why [Mesh.FromIndexedMesh] failed. The bool
// result of FromIndexedMesh is the authoritative success/failure signal;
// ConversionError only adds diagnostic context for logging.
type ConversionError struct {
	Kind        ErrorKind
	FaceIndex   int
	VertexIndex int
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("halfedge: %s (face %d, vertex %d)", e.Kind, e.FaceIndex, e.VertexIndex)
}
