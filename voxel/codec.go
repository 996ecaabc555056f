// Package voxel packs and unpacks the two fixed-width words a TSDF volume
// stores per voxel cell: a (distance, weight) word and an RGBA color word.
// Pack format is opaque to every caller except the codec itself — the
// raycaster only ever calls [UnpackDistanceWeight] and [UnpackColor].
package voxel

import (
	"math"

	"github.com/gogpu/geovol/internal/color"
)

// PackDistanceWeight packs a signed distance and an observation weight into
// a single word: the low 32 bits hold the distance as an IEEE-754 float32
// bit pattern, the high 32 bits hold the raw weight. A weight of 0 marks an
// unobserved voxel.
func PackDistanceWeight(distance float64, weight uint32) uint64 {
	bits := uint64(math.Float32bits(float32(distance)))
	return bits | uint64(weight)<<32
}

// UnpackDistanceWeight is the inverse of [PackDistanceWeight].
func UnpackDistanceWeight(word uint64) (distance float64, weight uint32) {
	bits := uint32(word & 0xFFFFFFFF)
	weight = uint32(word >> 32)
	distance = float64(math.Float32frombits(bits))
	return distance, weight
}

// PackColor packs an RGBA color with components in [0,1] into one word, one
// byte per channel in R,G,B,A order from the low byte up.
func PackColor(r, g, b, a float64) uint32 {
	c := color.F32ToU8(color.ColorF32{
		R: float32(r), G: float32(g), B: float32(b), A: float32(a),
	})
	return uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16 | uint32(c.A)<<24
}

// UnpackColor is the inverse of [PackColor]; each returned component lies
// in [0,1].
func UnpackColor(word uint32) (r, g, b, a float64) {
	c := color.U8ToF32(color.ColorU8{
		R: uint8(word & 0xFF),
		G: uint8((word >> 8) & 0xFF),
		B: uint8((word >> 16) & 0xFF),
		A: uint8((word >> 24) & 0xFF),
	})
	return float64(c.R), float64(c.G), float64(c.B), float64(c.A)
}
