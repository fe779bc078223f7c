package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/graphcsr/csr"
	"github.com/katalvlaran/graphcsr/nodeid"
)

// Edgelist reads one edge per non-blank line of r — a source node id and
// a target node id separated by whitespace — and returns a
// csr.EdgeSource over them. Lines that fail to parse as two
// whitespace-separated node ids produce ErrMalformedLine.
func Edgelist[N nodeid.ID](r io.Reader) (csr.EdgeSource[N], error) {
	var pairs [][2]N

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("input: line %d: %w", lineNo, ErrMalformedLine)
		}

		u, err := parseNode[N](fields[0])
		if err != nil {
			return nil, fmt.Errorf("input: line %d source: %w", lineNo, err)
		}
		v, err := parseNode[N](fields[1])
		if err != nil {
			return nil, fmt.Errorf("input: line %d target: %w", lineNo, err)
		}

		pairs = append(pairs, [2]N{u, v})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("input: reading edgelist stream: %w", err)
	}

	return csr.FromSlice(pairs), nil
}

// EdgelistFile opens path and delegates to Edgelist.
func EdgelistFile[N nodeid.ID](path string) (csr.EdgeSource[N], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: opening edgelist file: %w", err)
	}
	defer f.Close()

	return Edgelist[N](f)
}

func parseNode[N nodeid.ID](field string) (N, error) {
	v, err := strconv.ParseUint(field, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedLine, err)
	}

	return nodeid.Cast[uint64, N](v)
}
