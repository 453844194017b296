// SPDX-License-Identifier: MIT

package blocks

import "golang.org/x/sync/errgroup"

// forEachSlice runs fn(w) for every w in [0, n).
// Batches shorter than o.minParallel, or o.workers == 1, run serially on the
// calling goroutine; otherwise slices fan out over at most o.workers
// goroutines. fn must only touch state owned by slice w, so output order is
// the batch order regardless of scheduling. The first error wins.
func forEachSlice(n int, o Options, fn func(w int) error) error {
	if o.workers == 1 || n < o.minParallel {
		for w := 0; w < n; w++ {
			if err := fn(w); err != nil {
				return err
			}
		}

		return nil
	}

	var g errgroup.Group
	g.SetLimit(o.workers)
	for w := 0; w < n; w++ {
		w := w
		g.Go(func() error { return fn(w) })
	}

	return g.Wait()
}
