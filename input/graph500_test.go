package input_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/katalvlaran/graphcsr/input"
	"github.com/stretchr/testify/require"
)

func packGraph500(pairs [][2]uint64) []byte {
	buf := make([]byte, 0, len(pairs)*16)
	for _, p := range pairs {
		var rec [16]byte
		binary.LittleEndian.PutUint64(rec[0:8], p[0])
		binary.LittleEndian.PutUint64(rec[8:16], p[1])
		buf = append(buf, rec[:]...)
	}
	return buf
}

func TestGraph500_ParsesFlatRecordStream(t *testing.T) {
	raw := packGraph500([][2]uint64{{0, 1}, {1, 2}, {2, 0}})

	src, err := input.Graph500[uint32](bytes.NewReader(raw))
	require.NoError(t, err)

	var got [][2]uint32
	for u, v := range src.Edges() {
		got = append(got, [2]uint32{u, v})
	}
	require.Equal(t, [][2]uint32{{0, 1}, {1, 2}, {2, 0}}, got)
}

func TestGraph500_RejectsTruncatedLength(t *testing.T) {
	_, err := input.Graph500[uint32](bytes.NewReader(make([]byte, 17)))
	require.ErrorIs(t, err, input.ErrTruncatedRecord)
}

func TestGraph500_RejectsOverflowingNodeID(t *testing.T) {
	raw := packGraph500([][2]uint64{{0, 1 << 40}})
	_, err := input.Graph500[uint32](bytes.NewReader(raw))
	require.Error(t, err)
}

func TestGraph500_EmptyStream(t *testing.T) {
	src, err := input.Graph500[uint32](bytes.NewReader(nil))
	require.NoError(t, err)

	var got [][2]uint32
	for u, v := range src.Edges() {
		got = append(got, [2]uint32{u, v})
	}
	require.Empty(t, got)
}
