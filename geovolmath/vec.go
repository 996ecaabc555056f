// Package geovolmath provides the generic vector and scalar types shared by
// geovol's mesh and raycasting packages. Every type here is parameterized
// over a scalar [Float] so a single definition serves both float32 and
// float64 callers, rather than duplicating the type per precision.
package geovolmath

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Float is the scalar constraint used throughout geovol. Any floating-point
// type may instantiate [Vec2] and [Vec3].
type Float interface {
	constraints.Float
}

// Vec3 represents a 3D displacement: a direction and magnitude, or a point
// in space depending on context (geovol does not distinguish the two, since
// mesh vertex positions and halfedge direction vectors share the same type).
type Vec3[T Float] struct {
	X, Y, Z T
}

// V3 is a convenience constructor for Vec3.
func V3[T Float](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

func (v Vec3[T]) Add(w Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

func (v Vec3[T]) Sub(w Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

func (v Vec3[T]) Mul(s T) Vec3[T] {
	return Vec3[T]{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

func (v Vec3[T]) Div(s T) Vec3[T] {
	return Vec3[T]{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

func (v Vec3[T]) Neg() Vec3[T] {
	return Vec3[T]{X: -v.X, Y: -v.Y, Z: -v.Z}
}

func (v Vec3[T]) Dot(w Vec3[T]) T {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the 3D cross product v×w.
func (v Vec3[T]) Cross(w Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

func (v Vec3[T]) LengthSq() T {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Vec3[T]) Length() T {
	return T(math.Sqrt(float64(v.LengthSq())))
}

// Normalize returns a unit vector in the same direction, or the zero vector
// if v has zero length.
func (v Vec3[T]) Normalize() Vec3[T] {
	length := v.Length()
	if length == 0 {
		return Vec3[T]{}
	}
	return v.Div(length)
}

func (v Vec3[T]) Lerp(w Vec3[T], t T) Vec3[T] {
	return Vec3[T]{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
		Z: v.Z + (w.Z-v.Z)*t,
	}
}

func (v Vec3[T]) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Approx reports whether v and w are equal within epsilon on every axis.
func (v Vec3[T]) Approx(w Vec3[T], epsilon T) bool {
	return absT(v.X-w.X) < epsilon && absT(v.Y-w.Y) < epsilon && absT(v.Z-w.Z) < epsilon
}

// Vec2 represents a 2D displacement, used for UV coordinates.
type Vec2[T Float] struct {
	X, Y T
}

// V2 is a convenience constructor for Vec2.
func V2[T Float](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

func (v Vec2[T]) Add(w Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X + w.X, Y: v.Y + w.Y}
}

func (v Vec2[T]) Sub(w Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X - w.X, Y: v.Y - w.Y}
}

func (v Vec2[T]) Mul(s T) Vec2[T] {
	return Vec2[T]{X: v.X * s, Y: v.Y * s}
}

// Cross returns the 2D cross product (the z-component of the 3D cross
// product with z=0).
func (v Vec2[T]) Cross(w Vec2[T]) T {
	return v.X*w.Y - v.Y*w.X
}

func (v Vec2[T]) Dot(w Vec2[T]) T {
	return v.X*w.X + v.Y*w.Y
}

func (v Vec2[T]) Approx(w Vec2[T], epsilon T) bool {
	return absT(v.X-w.X) < epsilon && absT(v.Y-w.Y) < epsilon
}

func absT[T Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Clamp restricts v to [lo, hi].
func Clamp[T Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
