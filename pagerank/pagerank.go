package pagerank

import (
	"math"
	"time"

	"github.com/katalvlaran/graphcsr/csr"
	"github.com/katalvlaran/graphcsr/internal/fanout"
	"github.com/katalvlaran/graphcsr/nodeid"
)

// Run computes PageRank over g, pull-style: each target node sums its
// in-neighbors' current scores divided by their out-degree. Dangling
// nodes (out-degree 0) are handled via max(out_degree(u),1), so they
// never contribute directly — their mass is redistributed only through
// the teleport term, not an explicit dangling-mass pass.
func Run[N nodeid.ID](g *csr.DirectedGraph[N], opts ...Option) (Result, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return Result{}, err
	}

	n := int(g.NodeCount())
	if n == 0 {
		return Result{}, ErrEmptyGraph
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = fanout.Workers(n)
	}

	scores := make([]float32, n)
	next := make([]float32, n)
	init := float32(1) / float32(n)
	for i := range scores {
		scores[i] = init
	}

	base := (1 - cfg.DampingFactor) / float32(n)

	start := time.Now()
	iterationsRun := 0
	var lastDelta float64

	for iter := 0; iter < cfg.MaxIterations; iter++ {
		partials := make([]float64, workers)

		_ = fanout.Range(n, workers, func(from, to int) error {
			w := fanout.ChunkIndex(n, workers, from)
			var partial float64
			for v := from; v < to; v++ {
				var s float32
				b := g.InNeighbors(N(v))
				for _, u := range b.Neighbors {
					denom := g.OutDegree(u)
					if denom == 0 {
						denom = 1
					}
					s += scores[u] / float32(denom)
				}
				b.Close()

				nv := base + cfg.DampingFactor*s
				next[v] = nv
				partial += math.Abs(float64(nv) - float64(scores[v]))
			}
			partials[w] = partial
			return nil
		})

		var delta float64
		for _, p := range partials {
			delta += p
		}

		scores, next = next, scores
		iterationsRun++
		lastDelta = delta

		if delta <= cfg.Tolerance || iter == cfg.MaxIterations-1 {
			break
		}
	}

	return Result{
		Scores:        scores,
		IterationsRun: iterationsRun,
		FinalDelta:    lastDelta,
		Duration:      time.Since(start),
	}, nil
}
