package raycast

import (
	"github.com/gogpu/geovol/geovolmath"
	"github.com/gogpu/geovol/tsdf"
	"github.com/gogpu/geovol/voxel"
)

// coefficients is the closed-form expansion of trilinear interpolation on
// the unit cube, computed from eight corner samples f[dz][dy][dx] indexed
// by δ ∈ {0,1}^3 (f[0][0][0] = f000, f[1][1][1] = f111, ...).
type coefficients[T geovolmath.Float] [8]T

const (
	c0 = iota
	c1
	c2
	c3
	c4
	c5
	c6
	c7
)

func computeCoefficients[T geovolmath.Float](f [2][2][2]T) coefficients[T] {
	f000, f100, f010, f001 := f[0][0][0], f[0][0][1], f[0][1][0], f[1][0][0]
	f110, f101, f011, f111 := f[0][1][1], f[1][0][1], f[1][1][0], f[1][1][1]

	var c coefficients[T]
	c[c0] = f000
	c[c1] = f100 - f000
	c[c2] = f010 - f000
	c[c3] = f001 - f000
	c[c4] = f000 - f010 - f100 + f110
	c[c5] = f000 - f001 - f100 + f101
	c[c6] = f000 - f001 - f010 + f011
	c[c7] = -f000 + f001 + f010 - f011 + f100 - f101 - f110 + f111
	return c
}

// eval returns F(u,v,w).
func (c coefficients[T]) eval(u, v, w T) T {
	return c[c0] + c[c1]*u + c[c2]*v + c[c3]*w + c[c4]*u*v + c[c5]*u*w + c[c6]*v*w + c[c7]*u*v*w
}

// gradient returns (∂F/∂u, ∂F/∂v, ∂F/∂w).
func (c coefficients[T]) gradient(u, v, w T) geovolmath.Vec3[T] {
	return geovolmath.Vec3[T]{
		X: c[c1] + c[c4]*v + c[c5]*w + c[c7]*v*w,
		Y: c[c2] + c[c4]*u + c[c6]*w + c[c7]*u*w,
		Z: c[c3] + c[c5]*u + c[c6]*v + c[c7]*u*v,
	}
}

// neighborIndex clamps i+delta into [0, resolution-1], matching the
// clamped base-cell selection of [tsdf.Volume.BaseIndex] so samples taken
// at the grid boundary reuse the edge voxel instead of reading out of range.
func neighborIndex(i, delta, resolution int) int {
	v := i + delta
	if v < 0 {
		return 0
	}
	if v > resolution-1 {
		return resolution - 1
	}
	return v
}

// sampleDistance reads the eight neighbor voxels around p's base cell and
// returns the trilinear interpolation of their distance field together
// with its validity (false iff any neighbor has weight 0), the local
// coordinates and the coefficients, which [computeNormal] uses to evaluate
// the gradient.
func sampleDistance[T geovolmath.Float](v tsdf.Volume[T], p geovolmath.Vec3[T]) (dist T, u, v2, w T, c coefficients[T], valid bool) {
	base := v.BaseIndex(p)
	local := v.LocalCoords(p, base)
	u, v2, w = local.X, local.Y, local.Z

	valid = true
	var f [2][2][2]T
	for dz := 0; dz < 2; dz++ {
		for dy := 0; dy < 2; dy++ {
			for dx := 0; dx < 2; dx++ {
				i := neighborIndex(base[0], dx, v.Resolution[0])
				j := neighborIndex(base[1], dy, v.Resolution[1])
				k := neighborIndex(base[2], dz, v.Resolution[2])
				dwWord, _ := v.Read(i, j, k)
				d, weight := voxel.UnpackDistanceWeight(dwWord)
				if weight == 0 {
					valid = false
				}
				f[dz][dy][dx] = T(d)
			}
		}
	}

	c = computeCoefficients(f)
	dist = c.eval(u, v2, w)
	return dist, u, v2, w, c, valid
}

// sampleColor reads the eight neighbor voxels and returns the trilinear
// interpolation of their color field together with validity. A color
// sample is valid only when the distance-side validity check at the same
// position also passes — a color has no meaning where the underlying
// distance is unobserved.
func sampleColor[T geovolmath.Float](v tsdf.Volume[T], p geovolmath.Vec3[T]) (r, g, b, a float64, valid bool) {
	base := v.BaseIndex(p)
	local := v.LocalCoords(p, base)
	u, v2, w := local.X, local.Y, local.Z

	valid = true
	var fr, fg, fb, fa [2][2][2]T
	for dz := 0; dz < 2; dz++ {
		for dy := 0; dy < 2; dy++ {
			for dx := 0; dx < 2; dx++ {
				i := neighborIndex(base[0], dx, v.Resolution[0])
				j := neighborIndex(base[1], dy, v.Resolution[1])
				k := neighborIndex(base[2], dz, v.Resolution[2])
				dwWord, colorWord := v.Read(i, j, k)
				_, weight := voxel.UnpackDistanceWeight(dwWord)
				if weight == 0 {
					valid = false
				}
				cr, cg, cb, ca := voxel.UnpackColor(colorWord)
				fr[dz][dy][dx], fg[dz][dy][dx], fb[dz][dy][dx], fa[dz][dy][dx] = T(cr), T(cg), T(cb), T(ca)
			}
		}
	}

	r = float64(computeCoefficients(fr).eval(u, v2, w))
	g = float64(computeCoefficients(fg).eval(u, v2, w))
	b = float64(computeCoefficients(fb).eval(u, v2, w))
	a = float64(computeCoefficients(fa).eval(u, v2, w))
	return r, g, b, a, valid
}

// computeNormal returns the normalized gradient of the distance interpolant
// at p. The gradient is taken with respect to the unit-cube local
// coordinates; since those coordinates are an isotropic scaling of world
// space (local = (world-corner)/size), the gradient direction coincides
// with the world-space gradient direction after normalization.
func computeNormal[T geovolmath.Float](v tsdf.Volume[T], p geovolmath.Vec3[T]) geovolmath.Vec3[T] {
	_, u, v2, w, c, _ := sampleDistance(v, p)
	return c.gradient(u, v2, w).Normalize()
}
