package graphcsr

import "github.com/katalvlaran/graphcsr/csr"

// Graph32 is a directed CSR graph addressed with 32-bit node ids, the
// public surface's default width.
type Graph32 = csr.DirectedGraph[uint32]

// Graph64 is a directed CSR graph addressed with 64-bit node ids, for
// graphs that outgrow 2^32 nodes.
type Graph64 = csr.DirectedGraph[uint64]

// UndirectedGraph32 is an undirected CSR graph addressed with 32-bit
// node ids.
type UndirectedGraph32 = csr.UndirectedGraph[uint32]

// UndirectedGraph64 is an undirected CSR graph addressed with 64-bit
// node ids.
type UndirectedGraph64 = csr.UndirectedGraph[uint64]
