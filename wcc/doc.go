// Package wcc computes weakly connected components of a directed CSR
// graph via Afforest: a sampled, parallel union-find that treats edges
// as undirected for connectivity purposes.
//
// Union and Find are lock-free: Find does atomic-load-then-CAS path
// halving, Union links by CAS'ing the higher-valued root onto the
// lower-valued one. A handful of passes amortize most of the linking
// work over a small sample before spending the remaining budget on the
// nodes not already attached to the graph's largest component — the
// phases described in Run's doc comment.
package wcc
