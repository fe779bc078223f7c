package prefixsum

import (
	"github.com/katalvlaran/graphcsr/internal/fanout"
	"github.com/katalvlaran/graphcsr/nodeid"
)

// Exclusive rewrites counts in place as its own exclusive prefix sum and
// returns the total of the original values. workers<=0 auto-selects a
// worker count from the problem size. The result is identical no matter
// what worker count is chosen.
func Exclusive[N nodeid.ID](counts []N, workers int) N {
	n := len(counts)
	if n == 0 {
		return 0
	}
	workers = resolveWorkers(n, workers)
	chunkOffsets, total := chunkOffsets(counts, workers)

	_ = fanout.Range(n, workers, func(start, end int) error {
		run := chunkOffsets[fanout.ChunkIndex(n, workers, start)]
		for i := start; i < end; i++ {
			orig := counts[i]
			counts[i] = run
			run += orig
		}
		return nil
	})

	return total
}

// ExclusiveInto computes the exclusive prefix sum of counts without
// mutating it, writing len(counts)+1 entries into out (out[len(counts)]
// receives the total). Used where the source histogram must survive the
// scan, such as rebuilding offsets after deduplication.
func ExclusiveInto[N nodeid.ID](counts []N, out []N, workers int) N {
	n := len(counts)
	if len(out) != n+1 {
		panic("prefixsum: out must have length len(counts)+1")
	}
	if n == 0 {
		out[0] = 0
		return 0
	}
	workers = resolveWorkers(n, workers)
	chunkOffsets, total := chunkOffsets(counts, workers)

	_ = fanout.Range(n, workers, func(start, end int) error {
		run := chunkOffsets[fanout.ChunkIndex(n, workers, start)]
		for i := start; i < end; i++ {
			out[i] = run
			run += counts[i]
		}
		return nil
	})
	out[n] = total

	return total
}

// chunkOffsets sums each of the workers chunks fanout.Range would create
// over counts, then serially scans those chunk sums into per-chunk base
// offsets. Returns the offsets and the grand total.
func chunkOffsets[N nodeid.ID](counts []N, workers int) ([]N, N) {
	n := len(counts)
	sums := make([]N, workers)
	_ = fanout.Range(n, workers, func(start, end int) error {
		var sum N
		for i := start; i < end; i++ {
			sum += counts[i]
		}
		sums[fanout.ChunkIndex(n, workers, start)] = sum
		return nil
	})

	offsets := make([]N, workers)
	var running N
	for w := 0; w < workers; w++ {
		offsets[w] = running
		running += sums[w]
	}

	return offsets, running
}

// resolveWorkers mirrors the capping fanout.Range performs internally
// (never more workers than elements) so fanout.ChunkIndex's boundary math stays
// in lock-step with the chunks Range actually creates.
func resolveWorkers(n, workers int) int {
	if workers <= 0 {
		workers = fanout.Workers(n)
	}
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}
