package wcc

import (
	"math/rand/v2"
	"time"

	"github.com/katalvlaran/graphcsr/csr"
	"github.com/katalvlaran/graphcsr/internal/fanout"
	"github.com/katalvlaran/graphcsr/nodeid"
)

// Run computes weakly connected components of g via Afforest. g's
// outgoing adjacency is treated as undirected for connectivity: an edge
// u->v links u and v into the same component regardless of direction.
//
// Five phases, exactly per the Afforest heuristic:
//  1. Link subgraph — for each node, union its first NeighborRounds
//     outgoing neighbors. Cheap, catches most of the graph's structure.
//  2. Sample compress — full find on every node to shrink trees built so
//     far.
//  3. Find dominant component — sample SamplingSize parent slots
//     uniformly and take the most frequent root as a guess at the
//     largest component, R.
//  4. Link remaining — for every node not already rooted at R, union its
//     remaining outgoing neighbors (those beyond NeighborRounds) and all
//     of its in-neighbors. The in-neighbor pass is load-bearing, not an
//     extra safety net: phase 1 only ever walked out-neighbors, so an
//     out-edge u->w that skipped w because w sits outside u's first
//     NeighborRounds is only recoverable from w's side, via w's
//     in-neighbors, once u is itself skipped in phase 4 for already
//     sitting at R.
//  5. Final compress — full find on every node so Components holds
//     fully-resolved roots.
//
// Skipping phase 4's out-neighbor linking for nodes already rooted at R
// is a pruning optimization, not a correctness relaxation: the mandatory
// invariant — find(u)==find(v) iff u and v share a weakly connected
// component — holds regardless of which component turns out to be R,
// precisely because the in-neighbor pass below still runs unconditionally.
func Run[N nodeid.ID](g *csr.DirectedGraph[N], opts ...Option) (Result[N], error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return Result[N]{}, err
	}

	start := time.Now()
	n := int(g.NodeCount())
	workers := cfg.Workers
	if workers <= 0 {
		workers = fanout.Workers(n)
	}

	parent := make([]N, n)
	for i := range parent {
		parent[i] = N(i)
	}

	// Phase 1: link subgraph.
	_ = fanout.Dynamic(n, cfg.ChunkSize, workers, func(from, to int) error {
		for u := from; u < to; u++ {
			b := g.OutNeighbors(N(u))
			rounds := cfg.NeighborRounds
			if rounds > len(b.Neighbors) {
				rounds = len(b.Neighbors)
			}
			for i := 0; i < rounds; i++ {
				union(parent, N(u), b.Neighbors[i])
			}
			b.Close()
		}
		return nil
	})

	// Phase 2: sample compress.
	compressAll(parent, n, cfg.ChunkSize, workers)

	// Phase 3: find dominant component.
	dominant := sampleDominantRoot(parent, cfg.SamplingSize)

	// Phase 4: link remaining.
	_ = fanout.Dynamic(n, cfg.ChunkSize, workers, func(from, to int) error {
		for u := from; u < to; u++ {
			if find(parent, N(u)) != dominant {
				b := g.OutNeighbors(N(u))
				for i := cfg.NeighborRounds; i < len(b.Neighbors); i++ {
					union(parent, N(u), b.Neighbors[i])
				}
				b.Close()
			}

			ib := g.InNeighbors(N(u))
			for _, v := range ib.Neighbors {
				union(parent, N(u), v)
			}
			ib.Close()
		}
		return nil
	})

	// Phase 5: final compress.
	compressAll(parent, n, cfg.ChunkSize, workers)

	return Result[N]{Components: parent, Duration: time.Since(start)}, nil
}

func compressAll[N nodeid.ID](parent []N, n, chunkSize, workers int) {
	_ = fanout.Dynamic(n, chunkSize, workers, func(from, to int) error {
		for u := from; u < to; u++ {
			find(parent, N(u))
		}
		return nil
	})
}

// sampleDominantRoot samples up to sampleSize parent slots uniformly at
// random and returns the most frequent fully-resolved root — a cheap
// guess at which component is largest, not a guarantee.
func sampleDominantRoot[N nodeid.ID](parent []N, sampleSize int) N {
	n := len(parent)
	if n == 0 {
		return 0
	}
	if sampleSize > n {
		sampleSize = n
	}

	counts := make(map[N]int, sampleSize)
	for i := 0; i < sampleSize; i++ {
		u := N(rand.IntN(n))
		counts[find(parent, u)]++
	}

	var best N
	bestCount := -1
	for root, count := range counts {
		if count > bestCount {
			best, bestCount = root, count
		}
	}
	return best
}
