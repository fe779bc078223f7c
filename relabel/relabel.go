package relabel

import (
	"sort"

	"github.com/katalvlaran/graphcsr/csr"
	"github.com/katalvlaran/graphcsr/nodeid"
)

// degreeNode pairs an original node id with the degree it should be
// ranked by, for the descending-degree sort.
type degreeNode[N nodeid.ID] struct {
	id     N
	degree N
}

// permutation sorts nodes by descending degree (ties broken by ascending
// original id) and returns newID such that newID[old] is old's rank in
// that order — the highest-degree node gets id 0.
func permutation[N nodeid.ID](degrees []degreeNode[N]) []N {
	sort.Slice(degrees, func(i, j int) bool {
		if degrees[i].degree != degrees[j].degree {
			return degrees[i].degree > degrees[j].degree
		}
		return degrees[i].id < degrees[j].id
	})

	newID := make([]N, len(degrees))
	for rank, dn := range degrees {
		newID[dn.id] = N(rank)
	}
	return newID
}

// Directed relabels g in place by descending out-degree, applies layout
// to the rebuilt arrays, and returns csr.ErrGraphBorrowed unchanged if
// any neighbor slice is currently borrowed.
func Directed[N nodeid.ID](g *csr.DirectedGraph[N], layout csr.Layout) error {
	n := int(g.NodeCount())
	degrees := make([]degreeNode[N], n)
	for u := 0; u < n; u++ {
		degrees[u] = degreeNode[N]{id: N(u), degree: g.OutDegree(N(u))}
	}

	newID := permutation(degrees)
	return g.ApplyPermutation(newID, layout)
}

// Undirected relabels g in place by descending degree, applies layout to
// the rebuilt arrays, and returns csr.ErrGraphBorrowed unchanged if any
// neighbor slice is currently borrowed.
func Undirected[N nodeid.ID](g *csr.UndirectedGraph[N], layout csr.Layout) error {
	n := int(g.NodeCount())
	degrees := make([]degreeNode[N], n)
	for u := 0; u < n; u++ {
		degrees[u] = degreeNode[N]{id: N(u), degree: g.Degree(N(u))}
	}

	newID := permutation(degrees)
	return g.ApplyPermutation(newID, layout)
}
