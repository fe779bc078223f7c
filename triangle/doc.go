// Package triangle computes the global triangle count of an undirected
// CSR graph: the number of unordered node triples {u,v,w} that are
// pairwise adjacent.
//
// Counting requires each node's neighbor list to be sorted so that two
// lists can be intersected by a linear merge instead of a hash lookup;
// Count refuses graphs built with an Unsorted Layout rather than
// silently undercounting.
package triangle
