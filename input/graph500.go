package input

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/graphcsr/csr"
	"github.com/katalvlaran/graphcsr/nodeid"
)

// graph500RecordSize is the byte width of one (src, dst) edge record: two
// little-endian uint64 endpoints, per spec's documented Graph500 binary
// layout — a flat sequence of such records with no header.
const graph500RecordSize = 16

// Graph500 reads every (src, dst) edge record from r — a flat, headerless
// sequence of 16-byte records, each two little-endian uint64 node ids —
// and returns a csr.EdgeSource over them. r's length must be an exact
// multiple of 16 bytes; anything else is ErrTruncatedRecord.
func Graph500[N nodeid.ID](r io.Reader) (csr.EdgeSource[N], error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("input: reading graph500 stream: %w", err)
	}
	if len(raw)%graph500RecordSize != 0 {
		return nil, ErrTruncatedRecord
	}

	count := len(raw) / graph500RecordSize
	pairs := make([][2]N, count)
	for i := 0; i < count; i++ {
		rec := raw[i*graph500RecordSize : (i+1)*graph500RecordSize]
		src := binary.LittleEndian.Uint64(rec[0:8])
		dst := binary.LittleEndian.Uint64(rec[8:16])

		u, err := nodeid.Cast[uint64, N](src)
		if err != nil {
			return nil, fmt.Errorf("input: graph500 record %d source: %w", i, err)
		}
		v, err := nodeid.Cast[uint64, N](dst)
		if err != nil {
			return nil, fmt.Errorf("input: graph500 record %d target: %w", i, err)
		}
		pairs[i] = [2]N{u, v}
	}

	return csr.FromSlice(pairs), nil
}

// Graph500File opens path and delegates to Graph500.
func Graph500File[N nodeid.ID](path string) (csr.EdgeSource[N], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: opening graph500 file: %w", err)
	}
	defer f.Close()

	return Graph500[N](f)
}
