package wcc

import (
	"errors"
	"time"

	"github.com/katalvlaran/graphcsr/nodeid"
)

// ErrInvalidConfig is returned when a Config field is out of range.
var ErrInvalidConfig = errors.New("wcc: invalid configuration")

// Config tunes the Afforest heuristic.
//
// NeighborRounds — outgoing neighbors per node linked in the first pass, >= 1. Default 2.
// SamplingSize — parent slots sampled to guess the dominant component, >= 1. Default 1024.
// ChunkSize — work-stealing claim size for the parallel phases, >= 1. Default 64.
type Config struct {
	NeighborRounds int
	SamplingSize   int
	ChunkSize      int
	Workers        int
}

// DefaultConfig returns the spec-mandated defaults: 2 neighbor rounds,
// a sample of 1024, chunks of 64.
func DefaultConfig() Config {
	return Config{NeighborRounds: 2, SamplingSize: 1024, ChunkSize: 64}
}

// Option customizes a Run call.
type Option func(*Config)

// WithNeighborRounds overrides how many outgoing neighbors the first
// linking pass visits per node.
func WithNeighborRounds(k int) Option {
	return func(c *Config) { c.NeighborRounds = k }
}

// WithSamplingSize overrides how many parent slots the dominant-component
// guess samples.
func WithSamplingSize(s int) Option {
	return func(c *Config) { c.SamplingSize = s }
}

// WithChunkSize overrides the work-stealing claim size.
func WithChunkSize(c int) Option {
	return func(cfg *Config) { cfg.ChunkSize = c }
}

// WithWorkers overrides the number of goroutines used per phase. n<=0
// falls back to GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(c *Config) { c.Workers = n }
}

func (c Config) validate() error {
	if c.NeighborRounds < 1 || c.SamplingSize < 1 || c.ChunkSize < 1 {
		return ErrInvalidConfig
	}
	return nil
}

// Result is the outcome of a Run.
type Result[N nodeid.ID] struct {
	// Components holds, for every node, the representative root of the
	// weakly connected component it belongs to. Two nodes are in the same
	// component iff Components[u] == Components[v].
	Components []N

	// Duration is wall-clock time spent in Run.
	Duration time.Duration
}
