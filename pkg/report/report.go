package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	da "github.com/lintang-b-s/tripartition/pkg/datastructure"
	"github.com/lintang-b-s/tripartition/pkg/partitioner"
)

const separator = "--------------------------------"

// Writer writes numbered graph reports: adjacency matrix, edge list and partition.
type Writer struct {
	w          *bufio.Writer
	graphCount int
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

func (rw *Writer) GraphCount() int {
	return rw.graphCount
}

// WriteGraph appends the report of one graph. result may be nil when partitioning failed,
// partitionErr then says why.
func (rw *Writer) WriteGraph(g *da.Graph, result *partitioner.Result, partitionErr error) error {
	rw.graphCount++
	fmt.Fprintf(rw.w, "Graph %d:\n", rw.graphCount)
	WriteStructure(rw.w, g)
	fmt.Fprintf(rw.w, "\n")
	writePartition(rw.w, result, partitionErr)
	fmt.Fprintf(rw.w, "\n%s\n\n", separator)
	return rw.w.Flush()
}

func (rw *Writer) Flush() error {
	return rw.w.Flush()
}

// WriteStructure prints the adjacency matrix and the edge list separated by a blank line.
func WriteStructure(w io.Writer, g *da.Graph) {
	WriteAdjacencyMatrix(w, g)
	fmt.Fprintf(w, "\n")
	WriteEdgeList(w, g)
}

// WriteAdjacencyMatrix prints every row as "[0. 1. 0.]".
func WriteAdjacencyMatrix(w io.Writer, g *da.Graph) {
	n := g.NumberOfVertices()
	fmt.Fprintf(w, "Adjacency matrix:\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(w, "[")
		for j := 0; j < n; j++ {
			val := 0
			if g.IsAdjacent(da.Index(i), da.Index(j)) {
				val = 1
			}
			fmt.Fprintf(w, "%d.", val)
			if j < n-1 {
				fmt.Fprintf(w, " ")
			}
		}
		fmt.Fprintf(w, "]\n")
	}
}

// WriteEdgeList prints every edge once as "i - j" with i < j.
func WriteEdgeList(w io.Writer, g *da.Graph) {
	fmt.Fprintf(w, "Edge list:\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(w, "%d - %d\n", e.U, e.V)
	}
}

func writePartition(w io.Writer, result *partitioner.Result, partitionErr error) {
	switch {
	case errors.Is(partitionErr, partitioner.ErrInsufficientVertices):
		fmt.Fprintf(w, "Partition: not applicable (fewer than %d vertices)\n", partitioner.NUM_GROUPS)
		return
	case partitionErr != nil:
		fmt.Fprintf(w, "Partition: failed: %v\n", partitionErr)
		return
	case result == nil:
		fmt.Fprintf(w, "Partition: not computed\n")
		return
	}

	fmt.Fprintf(w, "Partition (%d groups):\n", partitioner.NUM_GROUPS)
	for g := partitioner.GroupID(0); g < partitioner.NUM_GROUPS; g++ {
		fmt.Fprintf(w, "Group %d:", g)
		for _, v := range result.Members(g) {
			fmt.Fprintf(w, " %d", v)
		}
		fmt.Fprintf(w, "\n")
	}
	fmt.Fprintf(w, "Group sizes: %d %d %d\n", result.GroupSizes[0], result.GroupSizes[1], result.GroupSizes[2])
	fmt.Fprintf(w, "Crossing edges: %d\n", result.CrossingCount)
}
