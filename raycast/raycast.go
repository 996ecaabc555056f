// Package raycast implements the volumetric TSDF raycaster: slab AABB
// intersection, trilinear interpolation of a packed distance/weight/RGBA
// voxel grid, analytic gradient/normal, and adaptive-step ray marching to
// the first surface crossing.
//
// Cast is a pure function of its arguments — no allocation, no shared
// mutable state — so it is trivially safe to invoke across many rays
// concurrently; [CastBatch] does exactly that.
package raycast

import (
	"math"

	"github.com/gogpu/geovol/geovolmath"
	"github.com/gogpu/geovol/tsdf"
)

// degenerateEpsilon is the minimum magnitude assigned to a ray direction
// component before slab intersection, preventing division by (near) zero
// while preserving the component's sign.
const degenerateEpsilon = 1e-5

// tieBand is the |D| threshold treated as an exact zero-crossing during the
// march.
const tieBand = 1e-5

// Ray is a view ray in world space.
type Ray[T geovolmath.Float] struct {
	Origin, Direction geovolmath.Vec3[T]
}

// Params bounds the valid hit range along the ray and floors the march
// step length.
type Params[T geovolmath.Float] struct {
	MinLength, MaxLength T
	MarchingStep         T
}

// Hit describes a surface crossing found by [Cast].
type Hit[T geovolmath.Float] struct {
	T        T
	Position geovolmath.Vec3[T]
	Normal   geovolmath.Vec3[T]
}

// slabIntersect returns the entry and exit ray parameters against the
// volume's axis-aligned bounding box, with ray-direction components
// smaller than [degenerateEpsilon] in magnitude substituted before use.
func slabIntersect[T geovolmath.Float](v tsdf.Volume[T], r Ray[T]) (tEnter, tMax T) {
	cornerMin := v.Corner
	cornerMax := geovolmath.Vec3[T]{
		X: v.Corner.X + T(v.Resolution[0])*v.Size,
		Y: v.Corner.Y + T(v.Resolution[1])*v.Size,
		Z: v.Corner.Z + T(v.Resolution[2])*v.Size,
	}

	d := [3]T{r.Direction.X, r.Direction.Y, r.Direction.Z}
	for a := range d {
		if d[a] > 0 && d[a] < degenerateEpsilon {
			d[a] = degenerateEpsilon
		} else if d[a] < 0 && d[a] > -degenerateEpsilon {
			d[a] = -degenerateEpsilon
		} else if d[a] == 0 {
			d[a] = degenerateEpsilon
		}
	}
	o := [3]T{r.Origin.X, r.Origin.Y, r.Origin.Z}
	lo := [3]T{cornerMin.X, cornerMin.Y, cornerMin.Z}
	hi := [3]T{cornerMax.X, cornerMax.Y, cornerMax.Z}

	tEnter = T(math.Inf(-1))
	tExit := T(math.Inf(1))
	for a := 0; a < 3; a++ {
		var near, far T
		if d[a] > 0 {
			near, far = lo[a], hi[a]
		} else {
			near, far = hi[a], lo[a]
		}
		tn := (near - o[a]) / d[a]
		tf := (far - o[a]) / d[a]
		if tn > tEnter {
			tEnter = tn
		}
		if tf < tExit {
			tExit = tf
		}
	}
	return tEnter, tExit
}

// Cast marches the ray through the volume and returns the first surface
// crossing in [params.MinLength, params.MaxLength], following the
// five-branch adaptive-step state machine: invalid samples skip ahead by
// 0.95·truncationDistance, samples outside the surface advance by the
// truncation-scaled step, samples inside bracket the zero-crossing
// linearly against the previous outside sample, and samples within the
// tie-band return immediately.
func Cast[T geovolmath.Float](v tsdf.Volume[T], r Ray[T], params Params[T]) (Hit[T], bool) {
	tEnter, tExit := slabIntersect(v, r)
	tMin := tEnter
	if params.MinLength > tMin {
		tMin = params.MinLength
	}
	tMax := tExit
	if params.MaxLength < tMax {
		tMax = params.MaxLength
	}
	if tMin >= tMax {
		return Hit[T]{}, false
	}

	var lastT, lastD T
	haveLast := false
	t := tMin + T(1e-5)

	for t < tMax {
		p := r.Origin.Add(r.Direction.Mul(t))
		d, _, _, _, _, valid := sampleDistance(v, p)

		switch {
		case !valid:
			t += T(0.95) * v.TruncationDistance
			haveLast = false

		case d > T(tieBand):
			step := T(0.95) * v.TruncationDistance * d
			if params.MarchingStep > step {
				step = params.MarchingStep
			}
			lastT, lastD = t, d
			haveLast = true
			t += step

		case d < -T(tieBand):
			if haveLast && lastD > 0 {
				tHit := lastT + (t-lastT)*lastD/(lastD-d)
				pos := r.Origin.Add(r.Direction.Mul(tHit))
				return Hit[T]{T: tHit, Position: pos, Normal: computeNormal(v, pos)}, true
			}
			return Hit[T]{}, false

		default:
			pos := p
			return Hit[T]{T: t, Position: pos, Normal: computeNormal(v, pos)}, true
		}
	}

	return Hit[T]{}, false
}

// SampleColor returns the trilinearly interpolated color at a world
// position and whether the sample is valid. It is valid only when the
// co-located distance sample is also valid.
func SampleColor[T geovolmath.Float](v tsdf.Volume[T], p geovolmath.Vec3[T]) (r, g, b, a float64, valid bool) {
	return sampleColor(v, p)
}
