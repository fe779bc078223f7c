package csr

// ApplyPermutation rebuilds g in place under a new node numbering, where
// newID[u] is the id node u should have afterward. newID must be a
// bijection on [0,NodeCount()). Returns ErrGraphBorrowed if any
// BorrowedNeighbors handle is currently outstanding — the package
// `relabel` is the intended caller; it computes newID (typically a
// descending-degree sort) and leaves the rebuild mechanics to the owner
// of the underlying arrays. Weights attached via WithWeights at build
// time are not carried through the rebuild and are dropped.
func (g *DirectedGraph[N]) ApplyPermutation(newID []N, layout Layout) error {
	if g.outstandingBorrows() {
		return ErrGraphBorrowed
	}

	cfg := newBuildConfig[N]()

	n := int(g.out.nodeCount())
	pairs := make([]edgePair[N], 0, g.out.edgeCount())
	for u := 0; u < n; u++ {
		for _, v := range g.out.neighbors(N(u)) {
			pairs = append(pairs, edgePair[N]{u: newID[u], v: newID[v]})
		}
	}

	out, err := buildMatrix(pairs, N(n), layout, directedOut, cfg)
	if err != nil {
		return err
	}
	in, err := buildMatrix(pairs, N(n), layout, directedIn, cfg)
	if err != nil {
		return err
	}

	g.out, g.in, g.layout = out, in, layout
	return nil
}

// ApplyPermutation rebuilds g in place under a new node numbering, where
// newID[u] is the id node u should have afterward. See DirectedGraph's
// ApplyPermutation for the contract, including that attached weights are
// dropped; this variant extracts each distinct edge once (old u<=v)
// before relabeling so buildMatrix's undirected path doesn't double it
// twice over.
func (g *UndirectedGraph[N]) ApplyPermutation(newID []N, layout Layout) error {
	if g.outstandingBorrows() {
		return ErrGraphBorrowed
	}

	cfg := newBuildConfig[N]()

	n := int(g.edges.nodeCount())
	pairs := make([]edgePair[N], 0, g.edges.edgeCount()/2+1)
	for u := 0; u < n; u++ {
		selfSeen := false
		for _, v := range g.edges.neighbors(N(u)) {
			if N(u) == v {
				// a self-loop sits twice in u's own list; keep every other copy
				selfSeen = !selfSeen
				if !selfSeen {
					continue
				}
			}
			if N(u) <= v {
				pairs = append(pairs, edgePair[N]{u: newID[u], v: newID[v]})
			}
		}
	}

	m, err := buildMatrix(pairs, N(n), layout, undirected, cfg)
	if err != nil {
		return err
	}

	g.edges, g.layout = m, layout
	return nil
}
