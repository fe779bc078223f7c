package triangle

import (
	"sync/atomic"
	"time"

	"github.com/katalvlaran/graphcsr/csr"
	"github.com/katalvlaran/graphcsr/internal/fanout"
	"github.com/katalvlaran/graphcsr/nodeid"
)

// defaultChunkSize is the work-stealing claim size for the outer node
// loop; small enough that a handful of high-degree nodes don't starve
// idle workers.
const defaultChunkSize = 64

// Count returns the number of distinct undirected triangles in g: the
// number of unordered triples {u,v,w} with edges {u,v}, {u,w}, {v,w}
// all present.
//
// g must have been built (or relabeled) with Layout Sorted or
// Deduplicated; otherwise Count returns csr.ErrUnsortedAdjacency rather
// than silently undercounting against an adjacency order the merge
// below assumes.
//
// Algorithm (node-iterator with orientation trick): for each node u in
// parallel, for each neighbor v > u, compute the sorted-merge
// intersection of neighbors(u) and neighbors(v) restricted to entries
// greater than v, and add its size to the running total. Orienting
// every pair from its lower-ID endpoint visits each triangle exactly
// once, without needing degree relabeling as a hard precondition — it
// is merely what makes the work per node roughly degree-balanced.
func Count[N nodeid.ID](g *csr.UndirectedGraph[N]) (uint64, time.Duration, error) {
	if g.Layout() == csr.Unsorted {
		return 0, 0, csr.ErrUnsortedAdjacency
	}

	start := time.Now()
	n := int(g.NodeCount())
	workers := fanout.Workers(n)

	// A chunk's local count is folded into total with one atomic add per
	// chunk (not per triangle), so work-stealing granularity doesn't cost
	// a CAS storm the way per-match atomics would.
	var total atomic.Uint64
	err := fanout.Dynamic(n, defaultChunkSize, workers, func(from, to int) error {
		var local uint64
		for ui := from; ui < to; ui++ {
			u := N(ui)
			bu := g.Neighbors(u)
			nu := bu.Neighbors
			for _, v := range nu {
				if v <= u {
					continue
				}
				bv := g.Neighbors(v)
				local += uint64(countGreaterIntersection(nu, bv.Neighbors, v))
				bv.Close()
			}
			bu.Close()
		}
		total.Add(local)
		return nil
	})
	if err != nil {
		return 0, time.Since(start), err
	}

	return total.Load(), time.Since(start), nil
}

// countGreaterIntersection counts elements present in both sorted
// slices a and b that are strictly greater than floor, via a two-pointer
// merge. Both slices must be sorted ascending.
func countGreaterIntersection[N nodeid.ID](a, b []N, floor N) int {
	i, j := 0, 0
	for i < len(a) && a[i] <= floor {
		i++
	}
	for j < len(b) && b[j] <= floor {
		j++
	}

	count := 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			count++
			i++
			j++
		}
	}

	return count
}
