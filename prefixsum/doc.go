// Package prefixsum computes the exclusive prefix sum of a large integer
// array in parallel.
//
// Given a length-n array A of non-negative counts, the exclusive prefix
// sum is the array A' with A'[0]=0 and A'[i] = sum(A[0:i]); the total sum
// is returned separately. The CSR builder uses this to turn a per-node
// degree histogram into per-node write-cursor bases; degree relabeling
// uses it again to turn a permuted degree array into the new offsets.
//
// The algorithm is a deterministic two-pass parallel scan: partition the
// array into chunks, sum each chunk independently, scan the (small) list
// of chunk sums serially to get per-chunk base offsets, then write each
// chunk's running sum plus its base in a second parallel pass. The result
// does not depend on how many workers ran it.
package prefixsum
