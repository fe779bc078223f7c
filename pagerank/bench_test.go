package pagerank_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/graphcsr/csr"
	"github.com/katalvlaran/graphcsr/pagerank"
)

var benchSizes = []int{1_000, 10_000, 100_000}

// sink to defeat dead-code elimination
var sinkResult pagerank.Result

func buildBenchGraph(b *testing.B, n int, seed int64) *csr.DirectedGraph[uint32] {
	r := rand.New(rand.NewSource(seed))
	pairs := make([][2]uint32, n*4)
	for i := range pairs {
		pairs[i] = [2]uint32{uint32(r.Intn(n)), uint32(r.Intn(n))}
	}
	g, err := csr.BuildDirected[uint32](csr.FromSlice(pairs), uint32(n), csr.Sorted)
	if err != nil {
		b.Fatal(err)
	}
	return g
}

func BenchmarkRun(b *testing.B) {
	for _, n := range benchSizes {
		g := buildBenchGraph(b, n, 1337)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				res, err := pagerank.Run[uint32](g, pagerank.WithMaxIterations(20), pagerank.WithTolerance(1e-6))
				if err != nil {
					b.Fatal(err)
				}
				sinkResult = res
			}
		})
	}
}

func BenchmarkRunPush(b *testing.B) {
	for _, n := range benchSizes {
		g := buildBenchGraph(b, n, 4242)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				res, err := pagerank.RunPush[uint32](g, pagerank.WithMaxIterations(20), pagerank.WithTolerance(1e-6))
				if err != nil {
					b.Fatal(err)
				}
				sinkResult = res
			}
		})
	}
}
