// SPDX-License-Identifier: MIT

// Package blocks: functional options shared by every operation.
//
// Notes:
//   - WithTotalSize applies to all eight operations: it pins the full
//     dimension n the caller expects.
//   - WithWorkers and WithMinParallelBatch only affect the batched
//     operations; results are identical for every worker count.
package blocks

import "runtime"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers selects runtime.GOMAXPROCS(0) workers for batched kernels.
	DefaultWorkers = 0

	// DefaultMinParallelBatch is the smallest batch fanned out to workers;
	// smaller batches run on the calling goroutine.
	DefaultMinParallelBatch = 4

	// unsetTotalSize marks "infer n from the inputs".
	unsetTotalSize = -1
)

const (
	panicWorkersInvalid     = "blocks: WithWorkers: n must be >= 1"
	panicTotalSizeInvalid   = "blocks: WithTotalSize: n must be >= 0"
	panicMinParallelInvalid = "blocks: WithMinParallelBatch: n must be >= 1"
)

// Option mutates internal options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options is the effective configuration after applying Option setters.
type Options struct {
	workers     int // >= 1 after gatherOptions
	minParallel int // >= 1
	totalSize   int // unsetTotalSize or >= 0
}

// WithWorkers bounds the number of goroutines a batched operation uses.
// WithWorkers(1) forces serial execution.
//
// Errors:
//   - Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithMinParallelBatch sets the smallest batch size that is fanned out.
//
// Errors:
//   - Panics when n < 1.
func WithMinParallelBatch(n int) Option {
	if n < 1 {
		panic(panicMinParallelInvalid)
	}

	return func(o *Options) { o.minParallel = n }
}

// WithTotalSize declares the full dimension n. Partition operations then
// require the input dimension to equal n; reassemble operations require
// rows(A) + len(idx) == n. Violations return ErrDimensionMismatch.
//
// Errors:
//   - Panics when n < 0.
func WithTotalSize(n int) Option {
	if n < 0 {
		panic(panicTotalSizeInvalid)
	}

	return func(o *Options) { o.totalSize = n }
}

// gatherOptions applies opts over the defaults and resolves DefaultWorkers.
func gatherOptions(opts ...Option) Options {
	o := Options{
		workers:     DefaultWorkers,
		minParallel: DefaultMinParallelBatch,
		totalSize:   unsetTotalSize,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.workers == DefaultWorkers {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}
