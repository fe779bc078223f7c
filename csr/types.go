package csr

import (
	"sync/atomic"

	"github.com/katalvlaran/graphcsr/nodeid"
)

// Layout describes how each node's neighbor list is organized within the
// shared targets array.
type Layout int

const (
	// Unsorted leaves neighbor lists in whatever order the scatter phase
	// happened to write them in. Cheapest to build, no ordering guarantee.
	Unsorted Layout = iota

	// Sorted neighbor lists are ascending by target id but may repeat a
	// target (parallel edges survive).
	Sorted

	// Deduplicated neighbor lists are ascending and duplicate-free, with
	// self-loops removed. Triangle counting accepts this layout or Sorted.
	Deduplicated
)

// String renders a Layout the way it would appear in a log line.
func (l Layout) String() string {
	switch l {
	case Unsorted:
		return "unsorted"
	case Sorted:
		return "sorted"
	case Deduplicated:
		return "deduplicated"
	default:
		return "unknown"
	}
}

// orientation selects which endpoint of an edge a build pass indexes by.
// It is an internal construction detail, not part of the built graph's
// shape: DirectedGraph always carries an out-oriented and an in-oriented
// matrix, and UndirectedGraph always carries one undirected matrix.
type orientation int

const (
	directedOut orientation = iota
	directedIn
	undirected
)

// matrix is the raw offsets/targets pair, plus an optional parallel
// weights array aligned to targets by index. It has no notion of
// direction; DirectedGraph and UndirectedGraph give it meaning.
type matrix[N nodeid.ID] struct {
	offsets []N
	targets []N
	weights []float32 // nil unless built with WithWeights
	layout  Layout
}

func (m *matrix[N]) nodeCount() N {
	return N(len(m.offsets) - 1)
}

func (m *matrix[N]) edgeCount() N {
	return N(len(m.targets))
}

func (m *matrix[N]) degree(u N) N {
	return m.offsets[u+1] - m.offsets[u]
}

func (m *matrix[N]) neighbors(u N) []N {
	return m.targets[m.offsets[u]:m.offsets[u+1]]
}

// DirectedGraph is an immutable CSR graph queryable in both directions:
// out-neighbors via the out matrix, in-neighbors via the in matrix. Both
// matrices share the same node count by construction.
type DirectedGraph[N nodeid.ID] struct {
	out    matrix[N]
	in     matrix[N]
	layout Layout
	borrow atomic.Int64
}

// UndirectedGraph is an immutable CSR graph where every edge {u,v} is
// materialized at both u's and v's neighbor lists. EdgeCount reports the
// number of distinct edges, half the length of the shared targets array.
type UndirectedGraph[N nodeid.ID] struct {
	edges  matrix[N]
	layout Layout
	borrow atomic.Int64
}

// Layout reports the neighbor-list organization this graph was built or
// last relabeled with.
func (g *DirectedGraph[N]) Layout() Layout { return g.layout }

// Layout reports the neighbor-list organization this graph was built or
// last relabeled with.
func (g *UndirectedGraph[N]) Layout() Layout { return g.layout }
