package csr

import "github.com/katalvlaran/graphcsr/nodeid"

// BorrowedNeighbors wraps a neighbor slice together with the release
// obligation the borrow placed on its graph. Callers that hold one
// across a longer scope should `defer b.Close()`; short-lived reads can
// call Close immediately after copying what they need.
//
// This is a dynamic stand-in for a compile-time borrow checker: an
// atomic counter plus an explicit release, applied the way a mutex's
// RLock/RUnlock pair guards a read.
type BorrowedNeighbors[N nodeid.ID] struct {
	Neighbors []N
	release   func()
	closed    bool
}

// Close releases the borrow. Calling it more than once is a no-op.
func (b *BorrowedNeighbors[N]) Close() {
	if b.closed {
		return
	}
	b.closed = true
	b.release()
}

// NodeCount returns the number of nodes g was built or relabeled with.
func (g *DirectedGraph[N]) NodeCount() N { return g.out.nodeCount() }

// EdgeCount returns the number of directed edges g holds.
func (g *DirectedGraph[N]) EdgeCount() N { return g.out.edgeCount() }

// OutDegree returns u's outgoing degree.
func (g *DirectedGraph[N]) OutDegree(u N) N { return g.out.degree(u) }

// InDegree returns u's incoming degree.
func (g *DirectedGraph[N]) InDegree(u N) N { return g.in.degree(u) }

// OutNeighbors borrows u's outgoing neighbor slice. The caller must
// Close() the returned handle before any relabeling call on g.
func (g *DirectedGraph[N]) OutNeighbors(u N) BorrowedNeighbors[N] {
	g.borrow.Add(1)
	return BorrowedNeighbors[N]{Neighbors: g.out.neighbors(u), release: func() { g.borrow.Add(-1) }}
}

// InNeighbors borrows u's incoming neighbor slice. The caller must
// Close() the returned handle before any relabeling call on g.
func (g *DirectedGraph[N]) InNeighbors(u N) BorrowedNeighbors[N] {
	g.borrow.Add(1)
	return BorrowedNeighbors[N]{Neighbors: g.in.neighbors(u), release: func() { g.borrow.Add(-1) }}
}

// CloneOutNeighbors returns a freshly allocated copy of u's outgoing
// neighbors, placing no borrow obligation on the caller.
func (g *DirectedGraph[N]) CloneOutNeighbors(u N) []N {
	return append([]N(nil), g.out.neighbors(u)...)
}

// CloneInNeighbors returns a freshly allocated copy of u's incoming
// neighbors, placing no borrow obligation on the caller.
func (g *DirectedGraph[N]) CloneInNeighbors(u N) []N {
	return append([]N(nil), g.in.neighbors(u)...)
}

// outstandingBorrows reports whether any BorrowedNeighbors handle is
// currently unreleased. relabel uses this to refuse mutation.
func (g *DirectedGraph[N]) outstandingBorrows() bool { return g.borrow.Load() != 0 }

// NodeCount returns the number of nodes g was built or relabeled with.
func (g *UndirectedGraph[N]) NodeCount() N { return g.edges.nodeCount() }

// EdgeCount returns the number of distinct undirected edges g holds
// (half the length of the underlying shared targets array).
func (g *UndirectedGraph[N]) EdgeCount() N { return g.edges.edgeCount() / 2 }

// Degree returns u's degree.
func (g *UndirectedGraph[N]) Degree(u N) N { return g.edges.degree(u) }

// Neighbors borrows u's neighbor slice. The caller must Close() the
// returned handle before any relabeling call on g.
func (g *UndirectedGraph[N]) Neighbors(u N) BorrowedNeighbors[N] {
	g.borrow.Add(1)
	return BorrowedNeighbors[N]{Neighbors: g.edges.neighbors(u), release: func() { g.borrow.Add(-1) }}
}

// CloneNeighbors returns a freshly allocated copy of u's neighbors,
// placing no borrow obligation on the caller.
func (g *UndirectedGraph[N]) CloneNeighbors(u N) []N {
	return append([]N(nil), g.edges.neighbors(u)...)
}

func (g *UndirectedGraph[N]) outstandingBorrows() bool { return g.borrow.Load() != 0 }

// OutWeights returns the weights of u's outgoing edges, aligned index by
// index with OutNeighbors(u), or nil if the graph was built without
// WithWeights.
func (g *DirectedGraph[N]) OutWeights(u N) []float32 {
	return sliceWeights(g.out, u)
}

// Weights returns the weights of u's edges, aligned index by index with
// Neighbors(u), or nil if the graph was built without WithWeights.
func (g *UndirectedGraph[N]) Weights(u N) []float32 {
	return sliceWeights(g.edges, u)
}

func sliceWeights[N nodeid.ID](m matrix[N], u N) []float32 {
	if m.weights == nil {
		return nil
	}
	return m.weights[m.offsets[u]:m.offsets[u+1]]
}
