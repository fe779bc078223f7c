package prefixsum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExclusive_MatchesFixture(t *testing.T) {
	counts := []uint32{42, 0, 1337, 4, 2, 0}
	total := Exclusive(counts, 0)

	require.Equal(t, uint32(1385), total)
	require.Equal(t, []uint32{0, 42, 42, 1379, 1383, 1385}, counts)
}

func TestExclusive_DeterministicAcrossWorkerCounts(t *testing.T) {
	source := make([]uint32, 613) // prime length, uneven remainder chunks
	for i := range source {
		source[i] = uint32(i%7 + 1)
	}

	var want []uint32
	var wantTotal uint32
	for _, workers := range []int{0, 1, 2, 3, 4, 16, 1000} {
		counts := append([]uint32(nil), source...)
		total := Exclusive(counts, workers)

		if want == nil {
			want, wantTotal = counts, total
			continue
		}
		require.Equal(t, want, counts, "workers=%d produced a different result", workers)
		require.Equal(t, wantTotal, total, "workers=%d produced a different total", workers)
	}
}

func TestExclusive_EmptyInput(t *testing.T) {
	var counts []uint64
	total := Exclusive(counts, 4)
	require.Equal(t, uint64(0), total)
}

func TestExclusive_SingleElement(t *testing.T) {
	counts := []uint32{5}
	total := Exclusive(counts, 8)
	require.Equal(t, uint32(5), total)
	require.Equal(t, []uint32{0}, counts)
}

func TestExclusiveInto_LeavesSourceUntouched(t *testing.T) {
	counts := []uint32{42, 0, 1337, 4, 2, 0}
	original := append([]uint32(nil), counts...)
	out := make([]uint32, len(counts)+1)

	total := ExclusiveInto(counts, out, 3)

	require.Equal(t, uint32(1385), total)
	require.Equal(t, original, counts)
	require.Equal(t, []uint32{0, 42, 42, 1379, 1383, 1385, 1385}, out)
}

func TestExclusiveInto_EmptyInput(t *testing.T) {
	var counts []uint32
	out := make([]uint32, 1)
	total := ExclusiveInto(counts, out, 4)

	require.Equal(t, uint32(0), total)
	require.Equal(t, []uint32{0}, out)
}

func TestExclusiveInto_WrongLengthOutPanics(t *testing.T) {
	counts := []uint32{1, 2, 3}
	out := make([]uint32, 3) // must be len(counts)+1

	require.Panics(t, func() {
		ExclusiveInto(counts, out, 2)
	})
}

func TestExclusiveInto_MatchesExclusive(t *testing.T) {
	source := []uint32{3, 0, 9, 1, 1, 1, 0, 12, 5}

	inPlace := append([]uint32(nil), source...)
	total := Exclusive(inPlace, 3)

	forInto := append([]uint32(nil), source...)
	out := make([]uint32, len(source)+1)
	totalInto := ExclusiveInto(forInto, out, 3)

	require.Equal(t, total, totalInto)
	require.Equal(t, inPlace, out[:len(out)-1])
	require.Equal(t, total, out[len(out)-1])
}
