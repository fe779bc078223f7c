// Package nodeid defines the generic node identifier used across graphcsr
// and a small set of atomic helpers for it.
//
// Nodes are dense: for a graph with N nodes, every valid identifier lies in
// [0, N). No explicit node list is ever stored; the identifier doubles as
// an index into every per-node array the rest of the module allocates.
package nodeid
