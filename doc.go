// Package geovol provides a pure Go halfedge mesh kernel and a volumetric
// TSDF raycaster for geometry-processing pipelines.
//
// # Overview
//
// geovol has two independent cores:
//
//   - [github.com/gogpu/geovol/halfedge]: an arena-backed halfedge mesh with
//     lazy tombstone deletion, garbage collection, indexed-mesh conversion
//     with manifold validation, and a structural validator.
//   - [github.com/gogpu/geovol/raycast]: a volumetric raycaster that marches
//     rays through a truncated signed distance field, sampled via trilinear
//     interpolation, to find surface hits and analytic normals.
//
// The package itself only carries ambient concerns shared by every
// sub-package: logging configuration. It exports no mesh or raycasting
// types of its own.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/geovol/halfedge"
//	    "github.com/gogpu/geovol/raycast"
//	)
//
//	mesh := halfedge.New[float64]()
//	ok, err := mesh.FromIndexedMesh(indexed)
//
//	hit, ok := raycast.Cast(volume, ray, params)
//
// # Logging
//
// geovol produces no log output by default. Call [SetLogger] to enable
// diagnostics from any sub-package:
//
//	geovol.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
//
// # Scope
//
// geovol deliberately does not wrap GPU device buffers, windowing, camera
// or view matrices, or Vulkan/CUDA resources. Those concerns belong to a
// caller-supplied implementation of [github.com/gogpu/geovol/tsdf.VoxelReader]
// or an indexed-mesh producer; geovol only consumes the narrow read
// interfaces those collaborators would satisfy.
package geovol
