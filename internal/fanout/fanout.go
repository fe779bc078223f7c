package fanout

import (
	"context"
	"errors"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// pool caps the number of fanout worker goroutines actually running at
// once across the whole process at GOMAXPROCS, regardless of how many
// concurrent Range/Dynamic calls are in flight. A caller requesting more
// workers than the pool holds just queues rather than oversubscribing
// the CPUs every other concurrent call is also competing for.
var pool = semaphore.NewWeighted(int64(runtime.GOMAXPROCS(0)))

// acquire blocks until a pool slot is free. Acquire on
// context.Background() never errors; Weighted.Acquire only returns an
// error when its context is cancelled.
func acquire() func() {
	_ = pool.Acquire(context.Background(), 1)
	return func() { pool.Release(1) }
}

// Workers resolves a worker count for a problem of the given size: never
// more goroutines than GOMAXPROCS logical CPUs (spec: "a work-stealing
// pool sized to logical CPU count"), and never more than the problem has
// elements.
func Workers(problemSize int) int {
	n := runtime.GOMAXPROCS(0)
	if problemSize < n {
		n = problemSize
	}
	if n < 1 {
		n = 1
	}

	return n
}

// Range splits [0,n) into contiguous chunks of ceil(n/workers) elements
// (the last one takes the remainder, so there can be fewer than workers
// chunks when n does not divide evenly) and runs fn over each chunk
// concurrently, waiting for all of them before returning. Used where chunk
// identity matters, such as the prefix-sum primitive's per-chunk partial
// sums.
//
// Each worker's error lands in its own slot; the barrier joins every
// non-nil slot with errors.Join, matching the "shared error slot reduced
// at the barrier" propagation policy.
func Range(n, workers int, fn func(start, end int) error) error {
	if n <= 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}

	errs := make([]error, workers)
	chunk := (n + workers - 1) / workers

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		start := w * chunk
		if start >= n {
			break
		}
		end := start + chunk
		if end > n {
			end = n
		}

		g.Go(func() error {
			release := acquire()
			defer release()
			errs[w] = fn(start, end)
			return nil
		})
	}
	_ = g.Wait()

	return joinNonNil(errs)
}

// Dynamic runs fn over [0,n) using chunkSize-sized blocks claimed by
// workers goroutines via a shared atomic cursor (a work-stealing queue of
// one). This is the pattern the CSR builder's histogram and scatter, WCC,
// and triangle counting use: a
// static partition would let a handful of skewed chunks (a high-degree
// hub node, say) straggle while idle workers wait, so chunks are claimed
// on demand instead.
func Dynamic(n, chunkSize, workers int, fn func(start, end int) error) error {
	if n <= 0 {
		return nil
	}
	if chunkSize < 1 {
		chunkSize = 1
	}
	if workers < 1 {
		workers = 1
	}

	var cursor atomic.Int64
	errs := make([]error, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			release := acquire()
			defer release()
			for {
				start := int(cursor.Add(int64(chunkSize))) - chunkSize
				if start >= n {
					return nil
				}
				end := start + chunkSize
				if end > n {
					end = n
				}
				if err := fn(start, end); err != nil {
					errs[w] = err
					return nil
				}
			}
		})
	}
	_ = g.Wait()

	return joinNonNil(errs)
}

// ChunkIndex recovers which of Range's contiguous chunks a given start
// index belongs to, so a caller that needs one accumulator slot per
// chunk (a partial sum, a partial delta) can index into it from inside
// the callback Range passes start/end to. Range partitions [0,n) into
// workers chunks of ceil(n/workers) elements each; this is its inverse.
func ChunkIndex(n, workers, start int) int {
	chunk := (n + workers - 1) / workers
	w := start / chunk
	if w >= workers {
		w = workers - 1
	}
	return w
}

func joinNonNil(errs []error) error {
	return errors.Join(errs...)
}
