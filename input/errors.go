package input

import "errors"

var (
	// ErrTruncatedRecord is returned by Graph500/Graph500File when the
	// input length is not a multiple of 16 bytes (two uint64 endpoints
	// per edge).
	ErrTruncatedRecord = errors.New("input: graph500 file length is not a multiple of 16 bytes")

	// ErrMalformedLine is returned by Edgelist/EdgelistFile when a
	// non-blank line does not parse as "<src> <dst>".
	ErrMalformedLine = errors.New("input: edgelist line is not two whitespace-separated node ids")
)
