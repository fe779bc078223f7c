package pagerank_test

import (
	"testing"

	"github.com/katalvlaran/graphcsr/csr"
	"github.com/katalvlaran/graphcsr/pagerank"
	"github.com/stretchr/testify/require"
)

func buildDirected(t *testing.T, n uint32, pairs [][2]uint32) *csr.DirectedGraph[uint32] {
	g, err := csr.BuildDirected[uint32](csr.FromSlice(pairs), n, csr.Sorted)
	require.NoError(t, err)
	return g
}

func TestRun_SymmetricTwoCycle_ConvergesImmediately(t *testing.T) {
	g := buildDirected(t, 2, [][2]uint32{{0, 1}, {1, 0}})

	res, err := pagerank.Run[uint32](g, pagerank.WithMaxIterations(10), pagerank.WithTolerance(1e-4))
	require.NoError(t, err)

	require.Equal(t, 1, res.IterationsRun, "a perfectly symmetric 2-cycle is already a fixed point")
	require.InDelta(t, 0.5, res.Scores[0], 1e-6)
	require.InDelta(t, 0.5, res.Scores[1], 1e-6)
}

func TestRun_DanglingNodeSingleIteration(t *testing.T) {
	// node 0 -> node 1, node 1 is dangling (out-degree 0).
	g := buildDirected(t, 2, [][2]uint32{{0, 1}})

	res, err := pagerank.Run[uint32](g, pagerank.WithMaxIterations(1), pagerank.WithDampingFactor(0.85))
	require.NoError(t, err)

	require.Equal(t, 1, res.IterationsRun)
	// base = (1-0.85)/2 = 0.075; next[0] has no in-neighbors so stays at base.
	require.InDelta(t, 0.075, res.Scores[0], 1e-5)
	// next[1] = base + 0.85*(scores[0]/outdeg(0)) = 0.075 + 0.85*0.5 = 0.5
	require.InDelta(t, 0.5, res.Scores[1], 1e-5)
}

func TestRun_StopsAtMaxIterationsEvenWithoutConvergence(t *testing.T) {
	// Uneven out-degrees keep scores moving for several iterations (a plain
	// 3-cycle is already a fixed point and stops after one).
	g := buildDirected(t, 3, [][2]uint32{{0, 1}, {0, 2}, {1, 2}, {2, 0}})

	res, err := pagerank.Run[uint32](g, pagerank.WithMaxIterations(3), pagerank.WithTolerance(0))
	require.NoError(t, err)
	require.Equal(t, 3, res.IterationsRun)
}

func TestRun_EmptyGraph(t *testing.T) {
	g := buildDirected(t, 0, nil)
	_, err := pagerank.Run[uint32](g)
	require.ErrorIs(t, err, pagerank.ErrEmptyGraph)
}

func TestRun_RejectsInvalidConfig(t *testing.T) {
	g := buildDirected(t, 2, [][2]uint32{{0, 1}})

	_, err := pagerank.Run[uint32](g, pagerank.WithDampingFactor(1.5))
	require.ErrorIs(t, err, pagerank.ErrInvalidDamping)

	_, err = pagerank.Run[uint32](g, pagerank.WithMaxIterations(0))
	require.ErrorIs(t, err, pagerank.ErrInvalidMaxIterations)

	_, err = pagerank.Run[uint32](g, pagerank.WithTolerance(-1))
	require.ErrorIs(t, err, pagerank.ErrInvalidTolerance)
}

func TestRunPush_MatchesRunOnThreeCycle(t *testing.T) {
	// every node has exactly one in-neighbor, so pull and push sum terms in
	// the same order and should match to the bit.
	g := buildDirected(t, 3, [][2]uint32{{0, 1}, {1, 2}, {2, 0}})

	pull, err := pagerank.Run[uint32](g, pagerank.WithMaxIterations(5), pagerank.WithTolerance(0))
	require.NoError(t, err)

	push, err := pagerank.RunPush[uint32](g, pagerank.WithMaxIterations(5), pagerank.WithTolerance(0))
	require.NoError(t, err)

	require.Equal(t, pull.IterationsRun, push.IterationsRun)
	for i := range pull.Scores {
		require.InDelta(t, pull.Scores[i], push.Scores[i], 1e-6)
	}
}
