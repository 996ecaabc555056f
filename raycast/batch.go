package raycast

import (
	"github.com/gogpu/geovol"
	"github.com/gogpu/geovol/geovolmath"
	"github.com/gogpu/geovol/internal/parallel"
	"github.com/gogpu/geovol/tsdf"
)

// CastResult pairs a [Hit] with whether the ray actually hit the surface,
// matching [Cast]'s (Hit, bool) contract for each element of a batch.
type CastResult[T geovolmath.Float] struct {
	Hit Hit[T]
	Ok  bool
}

// CastBatch casts every ray in rays against v and params concurrently.
// Each ray is independent and stateless, so a worker writes only to its
// own result slot and no synchronization beyond the dispatch barrier is
// needed.
func CastBatch[T geovolmath.Float](v tsdf.Volume[T], rays []Ray[T], params Params[T], opts ...BatchOption) []CastResult[T] {
	o := defaultBatchOptions()
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.logger
	if logger == nil {
		logger = geovol.Logger()
	}

	results := make([]CastResult[T], len(rays))
	if len(rays) == 0 {
		return results
	}

	pool := parallel.NewWorkerPool(o.workers)
	defer pool.Close()

	logger.Debug("raycast batch dispatch", "rays", len(rays), "workers", pool.Workers())

	work := make([]func(), len(rays))
	for i := range rays {
		i := i
		work[i] = func() {
			hit, ok := Cast(v, rays[i], params)
			results[i] = CastResult[T]{Hit: hit, Ok: ok}
		}
	}
	pool.ExecuteAll(work)

	return results
}
