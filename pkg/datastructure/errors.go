package datastructure

import "errors"

var (
	ErrIndexOutOfRange  = errors.New("datastructure: vertex index out of range")
	ErrNegativeVertices = errors.New("datastructure: number of vertices must be non-negative")
	ErrNotSquareMatrix  = errors.New("datastructure: adjacency matrix is not square")
	ErrMalformedRecord  = errors.New("datastructure: malformed csr record")
)
