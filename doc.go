// Package graphcsr is an in-memory library for large-scale graph analytics.
//
// It builds a compact, immutable Compressed-Sparse-Row (CSR) topology from
// an edge stream or a binary edge file, then runs a small set of
// cache-sensitive, memory-bandwidth-bound algorithms over it in parallel
// across every available core:
//
//   - PageRank: iterative rank computation with damping and tolerance.
//   - WCC (Afforest): parallel weakly-connected-components via sampled
//     union-find.
//   - Global Triangle Count: exact undirected triangle count over a
//     degree-ordered graph.
//
// The module is organized under focused subpackages:
//
//	nodeid/          — generic node identifier type and atomic helpers
//	internal/fanout/ — shared data-parallel execution helper
//	prefixsum/       — parallel exclusive prefix sum
//	csr/             — CSR construction and the read-only graph view
//	relabel/         — in-place descending-degree relabeling
//	pagerank/        — PageRank
//	wcc/             — weakly connected components (Afforest)
//	triangle/        — global triangle count
//	input/           — optional edge-stream producers (Graph500, edgelist)
//
// A built CSR is immutable: all mutation happens during construction or
// during an explicit, exclusive relabeling step. Once built, any number of
// goroutines may read a graph concurrently; no algorithm in this module
// blocks on I/O or accepts cancellation — each runs to completion or
// convergence and reports how long it took and, where relevant, how close
// it got.
package graphcsr
