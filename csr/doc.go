// Package csr builds and serves the Compressed-Sparse-Row graph
// representation at the center of this module.
//
// A CSR graph is two flat arrays. For a graph with n nodes and m edges,
// offsets has n+1 entries and targets has m entries: offsets[u] is the
// start of u's neighbor list in targets, and offsets[u+1]-offsets[u] is
// u's degree. There is no per-node allocation, no pointer chasing, and no
// mutation once built other than an explicit ApplyPermutation (which
// refuses to run while neighbor slices are borrowed) — every algorithm in
// this module reads a CSR graph concurrently without locking.
//
// DirectedGraph holds two such arrays, one for outgoing and one for
// incoming edges. UndirectedGraph holds one, with every edge present at
// both endpoints. Both are built from an EdgeSource — anything able to
// enumerate (u,v) pairs — via BuildDirected/BuildUndirected, which run a
// four-phase parallel pipeline: histogram, prefix sum, scatter, and an
// optional sort/deduplicate finalize pass selected by Layout.
//
// Unlike a core+builder split with many hand-authored topology
// constructors assembling a mutable graph, there is exactly one
// construction pipeline here and one data structure it produces, so both
// live in a single package.
package csr
