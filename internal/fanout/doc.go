// Package fanout is the shared data-parallel execution helper used by every
// CSR-building phase and every algorithm in graphcsr.
//
// All parallel loops in this module are data-parallel over disjoint index
// ranges: a histogram pass, a scatter pass, a sort pass, a PageRank
// iteration, a WCC phase, a triangle-counting sweep. fanout.Range captures
// that one shape once, on top of golang.org/x/sync/errgroup, so the rest of
// the module never hand-rolls a worker pool.
package fanout
