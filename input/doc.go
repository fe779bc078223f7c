// Package input provides concrete csr.EdgeSource implementations that
// read edges from outside the process: a Graph500 binary edge file and
// a plain-text edgelist.
//
// Neither the csr, pagerank, wcc, nor triangle packages import this
// one — they depend only on the EdgeSource interface. input exists so
// a caller doesn't have to hand-write a file reader to exercise the
// core against real data.
package input
