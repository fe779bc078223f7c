package csr

import (
	"math"
	"sort"

	"github.com/katalvlaran/graphcsr/internal/fanout"
	"github.com/katalvlaran/graphcsr/nodeid"
	"github.com/katalvlaran/graphcsr/prefixsum"
)

// scatterChunkSize bounds how many edges a single dynamic work-stealing
// claim covers during histogram and scatter. Small enough that a
// high-degree hub doesn't starve other workers, large enough to keep
// atomic-cursor contention off the hot path.
const scatterChunkSize = 4096

// BuildDirected constructs a DirectedGraph from edges, with nodeCount
// nodes (node ids must be in [0,nodeCount)). Both the out-oriented and
// in-oriented matrices are built from the same materialized edge list.
func BuildDirected[N nodeid.ID](edges EdgeSource[N], nodeCount N, layout Layout, opts ...Option[N]) (*DirectedGraph[N], error) {
	cfg := newBuildConfig(opts...)

	pairs, err := materialize(edges, nodeCount, cfg)
	if err != nil {
		return nil, err
	}

	out, err := buildMatrix(pairs, nodeCount, layout, directedOut, cfg)
	if err != nil {
		return nil, err
	}
	in, err := buildMatrix(pairs, nodeCount, layout, directedIn, cfg)
	if err != nil {
		return nil, err
	}

	g := &DirectedGraph[N]{out: out, in: in, layout: layout}

	return g, nil
}

// BuildUndirected constructs an UndirectedGraph from edges, with
// nodeCount nodes. Every edge (u,v) is materialized at both u's and v's
// neighbor lists.
func BuildUndirected[N nodeid.ID](edges EdgeSource[N], nodeCount N, layout Layout, opts ...Option[N]) (*UndirectedGraph[N], error) {
	cfg := newBuildConfig(opts...)

	pairs, err := materialize(edges, nodeCount, cfg)
	if err != nil {
		return nil, err
	}

	if err := checkOverflow[N](nodeCount, uint64(len(pairs))*2); err != nil {
		return nil, err
	}

	m, err := buildMatrix(pairs, nodeCount, layout, undirected, cfg)
	if err != nil {
		return nil, err
	}

	g := &UndirectedGraph[N]{edges: m, layout: layout}

	return g, nil
}

// edgePair is a single (u,v) edge drained from an EdgeSource. Its index
// in the materialized slice is its position in the source, which is what
// keeps weights aligned after materialization.
type edgePair[N nodeid.ID] struct {
	u, v N
}

// materialize drains edges once into a plain slice so the remaining
// phases can address it by index from many goroutines at once. Producer
// interfaces (files, streams) are inherently sequential; everything
// downstream of this point is data-parallel.
func materialize[N nodeid.ID](src EdgeSource[N], nodeCount N, cfg buildConfig[N]) ([]edgePair[N], error) {
	pairs := make([]edgePair[N], 0, 1024)
	for u, v := range src.Edges() {
		if u >= nodeCount || v >= nodeCount {
			return nil, ErrNodeIDOutOfRange
		}
		pairs = append(pairs, edgePair[N]{u: u, v: v})
	}

	if cfg.weights != nil && len(cfg.weights) != len(pairs) {
		return nil, ErrAllocation
	}
	if err := checkOverflow[N](nodeCount, uint64(len(pairs))); err != nil {
		return nil, err
	}

	return pairs, nil
}

// buildMatrix runs the four-phase construction pipeline: histogram,
// prefix sum, scatter, finalize.
func buildMatrix[N nodeid.ID](pairs []edgePair[N], nodeCount N, layout Layout, dir orientation, cfg buildConfig[N]) (matrix[N], error) {
	n := int(nodeCount)
	workers := cfg.workers

	// Phase 1: degree histogram, one relaxed atomic add per edge endpoint
	// this orientation touches.
	hist := make([]N, n)
	_ = fanout.Dynamic(len(pairs), scatterChunkSize, workers, func(start, end int) error {
		for i := start; i < end; i++ {
			p := pairs[i]
			switch dir {
			case directedOut:
				nodeid.AtomicAdd(&hist[p.u], 1)
			case directedIn:
				nodeid.AtomicAdd(&hist[p.v], 1)
			case undirected:
				nodeid.AtomicAdd(&hist[p.u], 1)
				nodeid.AtomicAdd(&hist[p.v], 1)
			}
		}
		return nil
	})

	// Phase 2: exclusive prefix sum turns the histogram into offsets and a
	// matching write-cursor base per node.
	offsets := make([]N, n+1)
	edgeCount := prefixsum.ExclusiveInto(hist, offsets, workers)
	cursor := append([]N(nil), offsets[:n]...)

	// Phase 3: scatter. Each edge claims a unique slot per endpoint it
	// touches via a fetch-and-add on that endpoint's cursor; offsets never
	// move during this phase, so every claim lands in the node's own
	// reserved span.
	targets := make([]N, edgeCount)
	var weights []float32
	if cfg.weights != nil {
		weights = make([]float32, edgeCount)
	}
	_ = fanout.Dynamic(len(pairs), scatterChunkSize, workers, func(start, end int) error {
		for i := start; i < end; i++ {
			p := pairs[i]
			switch dir {
			case directedOut:
				slot := nodeid.AtomicAdd(&cursor[p.u], 1) - 1
				targets[slot] = p.v
				if weights != nil {
					weights[slot] = cfg.weights[i]
				}
			case directedIn:
				slot := nodeid.AtomicAdd(&cursor[p.v], 1) - 1
				targets[slot] = p.u
				if weights != nil {
					weights[slot] = cfg.weights[i]
				}
			case undirected:
				slotU := nodeid.AtomicAdd(&cursor[p.u], 1) - 1
				targets[slotU] = p.v
				slotV := nodeid.AtomicAdd(&cursor[p.v], 1) - 1
				targets[slotV] = p.u
				if weights != nil {
					weights[slotU] = cfg.weights[i]
					weights[slotV] = cfg.weights[i]
				}
			}
		}
		return nil
	})

	m := matrix[N]{offsets: offsets, targets: targets, weights: weights, layout: Unsorted}

	// Phase 4: finalize per the requested layout.
	switch layout {
	case Unsorted:
		return m, nil
	case Sorted:
		sortNeighbors(&m, workers)
		return m, nil
	case Deduplicated:
		return deduplicate(m, workers), nil
	default:
		return m, nil
	}
}

// sortNeighbors sorts every node's neighbor slice ascending, in place,
// one node per unit of parallel work. Weights (if present) are permuted
// alongside targets so the two arrays stay aligned by index.
func sortNeighbors[N nodeid.ID](m *matrix[N], workers int) {
	n := int(m.nodeCount())
	_ = fanout.Range(n, workers, func(start, end int) error {
		for u := start; u < end; u++ {
			from, to := m.offsets[u], m.offsets[u+1]
			slice := m.targets[from:to]
			if m.weights == nil {
				sort.Slice(slice, func(i, j int) bool { return slice[i] < slice[j] })
				continue
			}
			wslice := m.weights[from:to]
			sortParallelWeighted(slice, wslice)
		}
		return nil
	})
	m.layout = Sorted
}

// sortParallelWeighted sorts targets ascending while permuting weights
// the same way, via an index-sort-then-gather (sort.Slice's swap callback
// can't move two unrelated slices atomically).
func sortParallelWeighted[N nodeid.ID](targets []N, weights []float32) {
	idx := make([]int, len(targets))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return targets[idx[i]] < targets[idx[j]] })

	newTargets := make([]N, len(targets))
	newWeights := make([]float32, len(weights))
	for pos, original := range idx {
		newTargets[pos] = targets[original]
		newWeights[pos] = weights[original]
	}
	copy(targets, newTargets)
	copy(weights, newWeights)
}

// deduplicate sorts, removes duplicate targets and self-loops per node,
// then rebuilds offsets/targets around the (generally smaller) resulting
// degrees. Mirrors the original CSR builder's sort-dedup-rebuild shape:
// compute new per-node degrees first, prefix-sum them, then copy the
// surviving prefix of each old (sorted) neighbor slice into its new slot.
func deduplicate[N nodeid.ID](m matrix[N], workers int) matrix[N] {
	n := int(m.nodeCount())
	newDegrees := make([]N, n)

	_ = fanout.Range(n, workers, func(start, end int) error {
		for u := start; u < end; u++ {
			from, to := m.offsets[u], m.offsets[u+1]
			slice := m.targets[from:to]
			if m.weights == nil {
				sort.Slice(slice, func(i, j int) bool { return slice[i] < slice[j] })
				kept := dedupInPlace(slice, nil, N(u))
				newDegrees[u] = N(kept)
				continue
			}

			wslice := m.weights[from:to]
			sortParallelWeighted(slice, wslice)
			kept := dedupInPlace(slice, wslice, N(u))
			newDegrees[u] = N(kept)
		}
		return nil
	})

	newOffsets := make([]N, n+1)
	newEdgeCount := prefixsum.ExclusiveInto(newDegrees, newOffsets, workers)

	newTargets := make([]N, newEdgeCount)
	var newWeights []float32
	if m.weights != nil {
		newWeights = make([]float32, newEdgeCount)
	}

	_ = fanout.Range(n, workers, func(start, end int) error {
		for u := start; u < end; u++ {
			oldFrom := m.offsets[u]
			newFrom, newTo := newOffsets[u], newOffsets[u+1]
			copy(newTargets[newFrom:newTo], m.targets[oldFrom:oldFrom+(newTo-newFrom)])
			if newWeights != nil {
				copy(newWeights[newFrom:newTo], m.weights[oldFrom:oldFrom+(newTo-newFrom)])
			}
		}
		return nil
	})

	return matrix[N]{offsets: newOffsets, targets: newTargets, weights: newWeights, layout: Deduplicated}
}

// dedupInPlace compacts a sorted slice to its unique values, additionally
// dropping a self-loop (a value equal to self) if present, and returns
// the surviving length. The slice itself is left with valid data only in
// its first returned-length entries; the caller reads no further. When
// weights is non-nil it is compacted in lockstep with sorted so the two
// stay aligned by index.
func dedupInPlace[N nodeid.ID](sorted []N, weights []float32, self N) int {
	if len(sorted) == 0 {
		return 0
	}

	write := 0
	for read := 0; read < len(sorted); read++ {
		if sorted[read] == self {
			continue
		}
		if write > 0 && sorted[write-1] == sorted[read] {
			continue
		}
		sorted[write] = sorted[read]
		if weights != nil {
			weights[write] = weights[read]
		}
		write++
	}

	return write
}

// checkOverflow reports ErrNodeIDOverflow if nodeCount or edgeCount
// cannot be represented exactly by N.
func checkOverflow[N nodeid.ID](nodeCount N, edgeCount uint64) error {
	max := maxForN[N]()
	if uint64(nodeCount) > max || edgeCount > max {
		return ErrNodeIDOverflow
	}
	return nil
}

func maxForN[N nodeid.ID]() uint64 {
	var sample N
	switch any(sample).(type) {
	case uint32:
		return math.MaxUint32
	case uint64:
		return math.MaxUint64
	default:
		panic("csr: unsupported id width")
	}
}
