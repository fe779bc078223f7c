package csr_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/graphcsr/csr"
)

var benchSizes = []int{1_000, 10_000, 100_000}

// sinks to defeat dead-code elimination
var (
	sinkGraph *csr.DirectedGraph[uint32]
	sinkNbrs  []uint32
)

func randomPairs(n int, seed int64) [][2]uint32 {
	r := rand.New(rand.NewSource(seed))
	pairs := make([][2]uint32, n*4)
	for i := range pairs {
		pairs[i] = [2]uint32{uint32(r.Intn(n)), uint32(r.Intn(n))}
	}
	return pairs
}

func BenchmarkBuildDirected(b *testing.B) {
	for _, n := range benchSizes {
		pairs := randomPairs(n, 1337)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				g, err := csr.BuildDirected[uint32](csr.FromSlice(pairs), uint32(n), csr.Sorted)
				if err != nil {
					b.Fatal(err)
				}
				sinkGraph = g
			}
		})
	}
}

func BenchmarkBuildDirected_Deduplicated(b *testing.B) {
	for _, n := range benchSizes {
		pairs := randomPairs(n, 4242)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				g, err := csr.BuildDirected[uint32](csr.FromSlice(pairs), uint32(n), csr.Deduplicated)
				if err != nil {
					b.Fatal(err)
				}
				sinkGraph = g
			}
		})
	}
}

func BenchmarkOutNeighbors(b *testing.B) {
	n := 100_000
	pairs := randomPairs(n, 99)
	g, err := csr.BuildDirected[uint32](csr.FromSlice(pairs), uint32(n), csr.Sorted)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bw := g.OutNeighbors(uint32(i % n))
		sinkNbrs = bw.Neighbors
		bw.Close()
	}
}
