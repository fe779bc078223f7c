// Package relabel reorders a built CSR graph's node numbering by
// descending degree, in place.
//
// Nodes are renumbered so that the highest-degree node becomes id 0, the
// next-highest becomes id 1, and so on (ties broken by ascending original
// id, so the result is deterministic). This improves cache locality for
// later scans and balances the per-node work of triangle counting's
// orientation trick; triangle.Count returns the same count with or
// without it.
//
// Relabeling requires exclusive access to the graph: if any
// csr.BorrowedNeighbors handle is outstanding, it fails with
// csr.ErrGraphBorrowed and leaves the graph unchanged.
package relabel
