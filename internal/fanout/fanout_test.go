package fanout

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWorkers_NeverExceedsProblemSize(t *testing.T) {
	require.LessOrEqual(t, Workers(3), 3)
	require.GreaterOrEqual(t, Workers(3), 1)
}

func TestRange_CoversEveryIndexExactlyOnce(t *testing.T) {
	const n = 997 // prime, exercises an uneven remainder chunk
	var hits [n]int32

	err := Range(n, 8, func(start, end int) error {
		for i := start; i < end; i++ {
			atomic.AddInt32(&hits[i], 1)
		}
		return nil
	})
	require.NoError(t, err)

	for i, h := range hits {
		require.Equal(t, int32(1), h, "index %d covered %d times", i, h)
	}
}

func TestRange_JoinsWorkerErrors(t *testing.T) {
	sentinel := errors.New("boom")
	err := Range(10, 4, func(start, end int) error {
		if start == 0 {
			return sentinel
		}
		return nil
	})
	require.ErrorIs(t, err, sentinel)
}

func TestDynamic_CoversEveryIndexExactlyOnce(t *testing.T) {
	const n = 1009
	var hits [n]int32

	err := Dynamic(n, 7, 5, func(start, end int) error {
		for i := start; i < end; i++ {
			atomic.AddInt32(&hits[i], 1)
		}
		return nil
	})
	require.NoError(t, err)

	for i, h := range hits {
		require.Equal(t, int32(1), h, "index %d covered %d times", i, h)
	}
}

func TestDynamic_StopsOnFirstWorkerError(t *testing.T) {
	sentinel := errors.New("boom")
	err := Dynamic(100, 3, 4, func(start, end int) error {
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)
}

func TestChunkIndex_MatchesRangesActualPartitioning(t *testing.T) {
	const n, workers = 997, 8
	seen := make(map[int]bool)

	err := Range(n, workers, func(start, end int) error {
		w := ChunkIndex(n, workers, start)
		require.False(t, seen[w], "chunk index %d claimed by more than one call", w)
		seen[w] = true
		return nil
	})
	require.NoError(t, err)
	require.Len(t, seen, workers)
}
