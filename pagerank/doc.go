// Package pagerank computes PageRank over a directed CSR graph.
//
// Run is pull-style: each iteration, every node's new score is computed
// by summing its in-neighbors' current scores divided by their
// out-degree, scaled by the damping factor, plus a teleport term. This
// keeps the iteration embarrassingly parallel over target nodes with no
// shared mutable state beyond the output array each goroutine writes
// into exclusively — unlike a push-style iteration, which would need
// atomic float accumulation since multiple source nodes can target the
// same node concurrently.
//
// RunPush is kept alongside Run as the documented alternative: a
// push-style iteration over source nodes, which does need atomic
// accumulation (see the atomicAddFloat32 helper in this package), useful
// mainly as a reference for why the pull-style default was chosen.
//
// All score arithmetic is single-precision (float32); the convergence
// delta is summed in float64.
package pagerank
