package partitioner

import "errors"

var (
	// ErrInsufficientVertices is returned for graphs with fewer than three vertices,
	// a three-way split is not meaningful there.
	ErrInsufficientVertices = errors.New("partitioner: graph needs at least 3 vertices")
	ErrInvalidConfig        = errors.New("partitioner: invalid config")
	ErrUnbalancedPartition  = errors.New("partitioner: assignment violates the balance constraint")
	ErrInvalidAssignment    = errors.New("partitioner: assignment does not cover every vertex with a valid group")
)
