package csr

import (
	"iter"

	"github.com/katalvlaran/graphcsr/nodeid"
)

// EdgeSource is anything able to enumerate a finite sequence of directed
// (u,v) edge pairs once. The builder never looks past what Edges yields,
// so a source may read from memory, a file, or a network stream — the
// core has no dependency on where edges come from.
type EdgeSource[N nodeid.ID] interface {
	Edges() iter.Seq2[N, N]
}

// FromSlice adapts an in-memory [][2]N edge list into an EdgeSource. This
// is what the builder's own tests use and covers the common case of
// edges already held in memory.
func FromSlice[N nodeid.ID](edges [][2]N) EdgeSource[N] {
	return sliceSource[N]{edges: edges}
}

type sliceSource[N nodeid.ID] struct {
	edges [][2]N
}

func (s sliceSource[N]) Edges() iter.Seq2[N, N] {
	return func(yield func(N, N) bool) {
		for _, e := range s.edges {
			if !yield(e[0], e[1]) {
				return
			}
		}
	}
}
