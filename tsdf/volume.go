// Package tsdf provides a read-only view over a truncated signed distance
// field: a regular 3-D grid of packed voxel words addressed by world-space
// position. It performs no fusion/integration of new data — only the
// read-side traversal the raycaster needs.
package tsdf

import (
	"math"

	"github.com/gogpu/geovol/geovolmath"
)

// VoxelReader is the seam between a TSDF [Volume] and its backing storage.
// An out-of-scope device-memory array wrapper would implement this
// interface; [ArrayVoxelReader] is the in-memory reference implementation.
type VoxelReader interface {
	// ReadVoxel returns the packed (distance, weight) word and the packed
	// RGBA word for the voxel at (i,j,k). Indices are assumed in range.
	ReadVoxel(i, j, k int) (distanceWeightWord uint64, colorWord uint32)
}

// ArrayVoxelReader is a slice-backed [VoxelReader] over two parallel,
// row-major 3-D arrays, addressed with caller-supplied j and k pitches.
type ArrayVoxelReader struct {
	DistanceWeight []uint64
	Color          []uint32
	PitchJ, PitchK int
}

func (a ArrayVoxelReader) index(i, j, k int) int {
	return i + j*a.PitchJ + k*a.PitchK
}

// ReadVoxel implements [VoxelReader].
func (a ArrayVoxelReader) ReadVoxel(i, j, k int) (uint64, uint32) {
	idx := a.index(i, j, k)
	return a.DistanceWeight[idx], a.Color[idx]
}

// Volume is a read-only view over a TSDF grid: a world-space corner, an
// isotropic voxel side length, an integer resolution, and a truncation
// distance used by the raycaster as the step-size ceiling near unobserved
// regions.
type Volume[T geovolmath.Float] struct {
	Reader             VoxelReader
	Corner             geovolmath.Vec3[T]
	Size               T
	Resolution         [3]int
	TruncationDistance T
}

// BaseIndex clamps floor((p-corner)/size) into [0, resolution-1]^3 on each
// axis, selecting the base voxel cell for trilinear interpolation.
func (v Volume[T]) BaseIndex(p geovolmath.Vec3[T]) [3]int {
	rel := p.Sub(v.Corner).Div(v.Size)
	return [3]int{
		clampIndex(int(math.Floor(float64(rel.X))), v.Resolution[0]),
		clampIndex(int(math.Floor(float64(rel.Y))), v.Resolution[1]),
		clampIndex(int(math.Floor(float64(rel.Z))), v.Resolution[2]),
	}
}

func clampIndex(i, resolution int) int {
	if i < 0 {
		return 0
	}
	if i > resolution-1 {
		return resolution - 1
	}
	return i
}

// LocalCoords returns (p-corner)/size - base, the unit-cube-local
// coordinates of p within the base cell. Components may fall outside
// [0,1] when p lies outside the base cell due to index clamping at the
// grid boundary.
func (v Volume[T]) LocalCoords(p geovolmath.Vec3[T], base [3]int) geovolmath.Vec3[T] {
	rel := p.Sub(v.Corner).Div(v.Size)
	return geovolmath.Vec3[T]{
		X: rel.X - T(base[0]),
		Y: rel.Y - T(base[1]),
		Z: rel.Z - T(base[2]),
	}
}

// Read reads the packed voxel at (i,j,k); indices are assumed in range.
func (v Volume[T]) Read(i, j, k int) (distanceWeightWord uint64, colorWord uint32) {
	return v.Reader.ReadVoxel(i, j, k)
}
