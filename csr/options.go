package csr

import (
	"runtime"

	"github.com/katalvlaran/graphcsr/nodeid"
)

// buildConfig collects optional knobs resolved from a caller's Option
// list before construction begins.
type buildConfig[N nodeid.ID] struct {
	workers int
	weights []float32
}

func newBuildConfig[N nodeid.ID](opts ...Option[N]) buildConfig[N] {
	cfg := buildConfig[N]{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Option customizes a BuildDirected or BuildUndirected call.
type Option[N nodeid.ID] func(*buildConfig[N])

// WithWorkers overrides the number of goroutines the build pipeline uses.
// n<=0 falls back to GOMAXPROCS.
func WithWorkers[N nodeid.ID](n int) Option[N] {
	return func(c *buildConfig[N]) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithWeights attaches a parallel per-edge weight array, one entry per
// edge in the order the EdgeSource yields them. The builder reorders
// weights in lockstep with targets through scatter, sort, and dedup, but
// no algorithm in this module reads them; they are carried purely as a
// companion array for callers that need weighted output alongside
// topology (len(weights) must equal the number of edges the source
// yields, checked at build time).
func WithWeights[N nodeid.ID](weights []float32) Option[N] {
	return func(c *buildConfig[N]) {
		c.weights = weights
	}
}
