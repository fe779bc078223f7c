package pagerank

import (
	"math"
	"sync/atomic"
	"time"
	"unsafe"

	"github.com/katalvlaran/graphcsr/csr"
	"github.com/katalvlaran/graphcsr/internal/fanout"
	"github.com/katalvlaran/graphcsr/nodeid"
)

// RunPush is the push-style alternative to Run: each iteration walks
// source nodes in parallel and adds each one's distributed share into
// every out-neighbor's accumulator. Unlike the pull-style default,
// multiple source nodes can target the same node concurrently, so the
// accumulator needs atomic float addition — there is no atomic float32
// add in sync/atomic, so atomicAddFloat32 spins a CompareAndSwap over
// the bit pattern, the same technique other graph engines in the wild
// use for this exact problem.
//
// Kept for completeness; Run is the default because the pull-style
// iteration needs no atomics at all.
func RunPush[N nodeid.ID](g *csr.DirectedGraph[N], opts ...Option) (Result, error) {
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
		for i := range next {
			next[i] = base
		}

		_ = fanout.Range(n, workers, func(from, to int) error {
			for u := from; u < to; u++ {
				degree := g.OutDegree(N(u))
				if degree == 0 {
					continue
				}
				share := cfg.DampingFactor * scores[u] / float32(degree)

				b := g.OutNeighbors(N(u))
				for _, v := range b.Neighbors {
					atomicAddFloat32(&next[v], share)
				}
				b.Close()
			}
			return nil
		})

		partials := make([]float64, workers)
		_ = fanout.Range(n, workers, func(from, to int) error {
			w := fanout.ChunkIndex(n, workers, from)
			var partial float64
			for v := from; v < to; v++ {
				partial += math.Abs(float64(next[v]) - float64(scores[v]))
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

// atomicAddFloat32 adds delta to *addr atomically by spinning a
// compare-and-swap over the IEEE-754 bit pattern.
func atomicAddFloat32(addr *float32, delta float32) {
	bits := (*uint32)(unsafe.Pointer(addr))
	for {
		old := atomic.LoadUint32(bits)
		newVal := math.Float32bits(math.Float32frombits(old) + delta)
		if atomic.CompareAndSwapUint32(bits, old, newVal) {
			return
		}
	}
}
