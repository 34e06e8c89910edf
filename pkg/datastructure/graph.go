package datastructure

import (
	"fmt"
	"sort"
)

type Index uint32

// Edge is an undirected edge, U < V after NewEdge.
type Edge struct {
	U Index
	V Index
}

func NewEdge(u, v Index) Edge {
	if u > v {
		u, v = v, u
	}
	return Edge{U: u, V: v}
}

/*
Graph is an undirected, loop-free graph over vertices 0..n-1.
adjacency is the row-major n*n matrix (adjacency[i*n+j]) used for O(1) edge lookups,
neighbors holds the same relation as sorted adjacency lists so that local search can visit
only the edges incident to a vertex.
a Graph is never mutated after construction.
*/
type Graph struct {
	n         int
	adjacency []bool
	neighbors [][]Index
}

func newGraph(n int) *Graph {
	return &Graph{
		n:         n,
		adjacency: make([]bool, n*n),
		neighbors: make([][]Index, n),
	}
}

// addEdge symmetrizes (u,v), self-loops are dropped. returns false when nothing was added.
func (g *Graph) addEdge(u, v Index) bool {
	if u == v {
		return false
	}
	if g.adjacency[int(u)*g.n+int(v)] {
		return false
	}
	g.adjacency[int(u)*g.n+int(v)] = true
	g.adjacency[int(v)*g.n+int(u)] = true
	g.neighbors[u] = append(g.neighbors[u], v)
	g.neighbors[v] = append(g.neighbors[v], u)
	return true
}

func (g *Graph) finalize() *Graph {
	for v := range g.neighbors {
		nbs := g.neighbors[v]
		sort.Slice(nbs, func(i, j int) bool {
			return nbs[i] < nbs[j]
		})
	}
	return g
}

// NewGraphFromMatrix builds a graph from a square boolean matrix. an edge present in only one
// direction is treated as present in both, diagonal entries are ignored.
func NewGraphFromMatrix(matrix [][]bool) (*Graph, error) {
	n := len(matrix)
	for i, row := range matrix {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), n, ErrNotSquareMatrix)
		}
	}

	g := newGraph(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if matrix[i][j] {
				g.addEdge(Index(i), Index(j))
			}
		}
	}
	return g.finalize(), nil
}

// NewGraphFromAdjacency is NewGraphFromMatrix for 0/1 integer matrices, any non-zero entry is an edge.
func NewGraphFromAdjacency(matrix [][]int) (*Graph, error) {
	boolMatrix := make([][]bool, len(matrix))
	for i, row := range matrix {
		boolMatrix[i] = make([]bool, len(row))
		for j, val := range row {
			boolMatrix[i][j] = val != 0
		}
	}
	return NewGraphFromMatrix(boolMatrix)
}

// NewGraphFromEdges builds a graph with n vertices. duplicate edges collapse, self-loops are dropped.
func NewGraphFromEdges(n int, edges []Edge) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeVertices
	}
	g := newGraph(n)
	for _, e := range edges {
		if int(e.U) >= n || int(e.V) >= n {
			return nil, fmt.Errorf("edge (%d,%d) with %d vertices: %w", e.U, e.V, n, ErrIndexOutOfRange)
		}
		g.addEdge(e.U, e.V)
	}
	return g.finalize(), nil
}

func (g *Graph) NumberOfVertices() int {
	return g.n
}

// NumberOfEdges scans the upper triangle of the adjacency matrix.
func (g *Graph) NumberOfEdges() int {
	count := 0
	for i := 0; i < g.n; i++ {
		row := g.adjacency[i*g.n : (i+1)*g.n]
		for j := i + 1; j < g.n; j++ {
			if row[j] {
				count++
			}
		}
	}
	return count
}

// EdgeExists reports whether u and v are connected.
func (g *Graph) EdgeExists(u, v Index) (bool, error) {
	if int(u) >= g.n || int(v) >= g.n {
		return false, fmt.Errorf("edge (%d,%d) with %d vertices: %w", u, v, g.n, ErrIndexOutOfRange)
	}
	return g.adjacency[int(u)*g.n+int(v)], nil
}

// IsAdjacent is EdgeExists without the range check, callers must pass valid indices.
func (g *Graph) IsAdjacent(u, v Index) bool {
	return g.adjacency[int(u)*g.n+int(v)]
}

func (g *Graph) Degree(v Index) int {
	return len(g.neighbors[v])
}

func (g *Graph) ForEachNeighbor(v Index, handle func(u Index)) {
	for _, u := range g.neighbors[v] {
		handle(u)
	}
}

// Edges returns every edge once, ordered by (U, V).
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0)
	for u := 0; u < g.n; u++ {
		for _, v := range g.neighbors[u] {
			if Index(u) < v {
				edges = append(edges, Edge{U: Index(u), V: v})
			}
		}
	}
	return edges
}

// AdjacencyMatrix returns a fresh copy of the adjacency matrix.
func (g *Graph) AdjacencyMatrix() [][]bool {
	matrix := make([][]bool, g.n)
	for i := 0; i < g.n; i++ {
		matrix[i] = make([]bool, g.n)
		copy(matrix[i], g.adjacency[i*g.n:(i+1)*g.n])
	}
	return matrix
}
