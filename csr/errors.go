package csr

import "errors"

// Sentinel errors for CSR construction and mutation. Every message is
// prefixed "csr: ..." for consistent grepping; wrap with fmt.Errorf("%w")
// at call-site boundaries that need extra context, but match with
// errors.Is against these values directly.
var (
	// ErrNodeIDOverflow is returned when a node count or resulting edge
	// count cannot be represented by the chosen node ID width (N).
	ErrNodeIDOverflow = errors.New("csr: node or edge count overflows id width")

	// ErrAllocation is returned when a caller-supplied auxiliary array
	// (currently only edge weights) does not match the shape construction
	// requires.
	ErrAllocation = errors.New("csr: allocation shape mismatch")

	// ErrGraphBorrowed is returned by any mutation (relabeling) attempted
	// while one or more BorrowedNeighbors handles are still outstanding.
	ErrGraphBorrowed = errors.New("csr: graph has outstanding neighbor borrows")

	// ErrUnsortedAdjacency is returned by algorithms with a sorted-adjacency
	// precondition (triangle counting) when the graph's recorded Layout is
	// Unsorted.
	ErrUnsortedAdjacency = errors.New("csr: adjacency is not sorted")

	// ErrNodeIDOutOfRange is returned when an edge references a node id
	// that is >= the declared node count.
	ErrNodeIDOutOfRange = errors.New("csr: edge references a node id out of range")
)
