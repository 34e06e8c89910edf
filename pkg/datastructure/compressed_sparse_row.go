package datastructure

import (
	"fmt"
	"strconv"
)

/*
CSRRecord is one graph of a csr graph file. a record has five lines:

	max number of nodes
	column indices (col_ind)
	row pointers (row_ptr), n = len(row_ptr) - 1
	group list
	group pointers

vertex i is connected to col_ind[k] for row_ptr[i] <= k < row_ptr[i+1].
the group lines are carried along but the adjacency structure does not depend on them.
Instead of storing O(n^2) elements the record needs only O(nnz+n+1) integers.
*/
type CSRRecord struct {
	MaxNodes      int
	ColIndices    []int
	RowPtr        []int
	Groups        []int
	GroupPointers []int
}

// DecodeWarning describes an entry skipped while decoding a record.
type DecodeWarning struct {
	Row    int
	Column int
	Reason string
}

func (w DecodeWarning) String() string {
	return fmt.Sprintf("row %d column %d: %s", w.Row, w.Column, w.Reason)
}

func (r *CSRRecord) NumberOfVertices() int {
	if len(r.RowPtr) == 0 {
		return 0
	}
	return len(r.RowPtr) - 1
}

func (r *CSRRecord) validate() error {
	n := r.NumberOfVertices()
	for i := 0; i < n; i++ {
		start, end := r.RowPtr[i], r.RowPtr[i+1]
		if start < 0 || end < start {
			return fmt.Errorf("row pointers %d..%d of row %d are not monotonic: %w", start, end, i, ErrMalformedRecord)
		}
		if end > len(r.ColIndices) {
			return fmt.Errorf("row %d ends at %d but there are %d column indices: %w", i, end, len(r.ColIndices), ErrMalformedRecord)
		}
	}
	return nil
}

// ToGraph expands the record into a symmetric adjacency structure.
// column indices outside [0, n) and self-loops are skipped and reported as warnings.
func (r *CSRRecord) ToGraph() (*Graph, []DecodeWarning, error) {
	if err := r.validate(); err != nil {
		return nil, nil, err
	}

	n := r.NumberOfVertices()
	g := newGraph(n)
	warnings := make([]DecodeWarning, 0)
	for i := 0; i < n; i++ {
		for k := r.RowPtr[i]; k < r.RowPtr[i+1]; k++ {
			col := r.ColIndices[k]
			if col < 0 || col >= n {
				warnings = append(warnings, DecodeWarning{Row: i, Column: col,
					Reason: fmt.Sprintf("column index out of range (n=%d)", n)})
				continue
			}
			if col == i {
				warnings = append(warnings, DecodeWarning{Row: i, Column: col, Reason: "self-loop dropped"})
				continue
			}
			g.addEdge(Index(i), Index(col))
		}
	}
	return g.finalize(), warnings, nil
}

// NewCSRRecord encodes g with every edge listed in both rows.
func NewCSRRecord(g *Graph) *CSRRecord {
	n := g.NumberOfVertices()
	rowPtr := make([]int, n+1)
	colIndices := make([]int, 0)
	for v := 0; v < n; v++ {
		g.ForEachNeighbor(Index(v), func(u Index) {
			colIndices = append(colIndices, int(u))
		})
		rowPtr[v+1] = len(colIndices)
	}

	groups := make([]int, n)
	for v := range groups {
		groups[v] = v
	}

	return &CSRRecord{
		MaxNodes:      n,
		ColIndices:    colIndices,
		RowPtr:        rowPtr,
		Groups:        groups,
		GroupPointers: []int{0, n},
	}
}

func parseInts(tokens []string, line int) ([]int, error) {
	vals := make([]int, len(tokens))
	for i, token := range tokens {
		val, err := strconv.Atoi(token)
		if err != nil {
			return nil, fmt.Errorf("line %d token %q: %w", line, token, ErrMalformedRecord)
		}
		vals[i] = val
	}
	return vals, nil
}
