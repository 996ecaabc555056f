package raycast

import (
	"log/slog"
)

// BatchOption configures [CastBatch].
//
// Example:
//
//	results := raycast.CastBatch(volume, rays, params, raycast.WithWorkers(8))
type BatchOption func(*batchOptions)

type batchOptions struct {
	workers int
	logger  *slog.Logger
}

func defaultBatchOptions() batchOptions {
	return batchOptions{workers: 0, logger: nil}
}

// WithWorkers sets the number of worker goroutines used by [CastBatch].
// A value ≤0 defaults to GOMAXPROCS, matching [parallel.NewWorkerPool].
func WithWorkers(n int) BatchOption {
	return func(o *batchOptions) {
		o.workers = n
	}
}

// WithLogger overrides the logger [CastBatch] uses for its dispatch
// diagnostics. Defaults to geovol's package-level logger.
func WithLogger(l *slog.Logger) BatchOption {
	return func(o *batchOptions) {
		o.logger = l
	}
}
