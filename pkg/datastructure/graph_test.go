package datastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGraphFromMatrixSymmetrizes(t *testing.T) {
	matrix := [][]bool{
		{false, true, false, false},
		{false, false, false, false},
		{false, true, true, false},
		{true, false, false, false},
	}

	g, err := NewGraphFromMatrix(matrix)
	require.NoError(t, err)

	assert.Equal(t, 4, g.NumberOfVertices())
	assert.Equal(t, 3, g.NumberOfEdges())
	assert.Equal(t, []Edge{{0, 1}, {0, 3}, {1, 2}}, g.Edges())

	for i := 0; i < 4; i++ {
		assert.False(t, g.IsAdjacent(Index(i), Index(i)), "self-loop on %d", i)
		for j := 0; j < 4; j++ {
			assert.Equal(t, g.IsAdjacent(Index(i), Index(j)), g.IsAdjacent(Index(j), Index(i)))
		}
	}

	adj := g.AdjacencyMatrix()
	assert.True(t, adj[1][0])
	adj[1][0] = false
	assert.True(t, g.IsAdjacent(1, 0), "AdjacencyMatrix must return a copy")
}

func TestNewGraphFromMatrixNotSquare(t *testing.T) {
	_, err := NewGraphFromMatrix([][]bool{{false, true}, {true}})
	require.ErrorIs(t, err, ErrNotSquareMatrix)
}

func TestNewGraphFromAdjacency(t *testing.T) {
	g, err := NewGraphFromAdjacency([][]int{
		{0, 1, 1},
		{1, 0, 0},
		{1, 0, 0},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, g.NumberOfEdges())
	assert.Equal(t, 2, g.Degree(0))
	assert.Equal(t, 1, g.Degree(2))
}

func TestNewGraphFromEdges(t *testing.T) {
	testCases := []struct {
		name      string
		n         int
		edges     []Edge
		wantErr   error
		wantEdges int
	}{
		{name: "empty graph", n: 0, wantEdges: 0},
		{name: "duplicates collapse", n: 3, edges: []Edge{{0, 1}, {1, 0}, {0, 1}}, wantEdges: 1},
		{name: "self-loop dropped", n: 3, edges: []Edge{{2, 2}, {0, 2}}, wantEdges: 1},
		{name: "out of range", n: 3, edges: []Edge{{0, 3}}, wantErr: ErrIndexOutOfRange},
		{name: "negative vertex count", n: -1, wantErr: ErrNegativeVertices},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGraphFromEdges(tt.n, tt.edges)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantEdges, g.NumberOfEdges())
			assert.Len(t, g.Edges(), tt.wantEdges)
		})
	}
}

func TestEdgeExists(t *testing.T) {
	g, err := NewGraphFromEdges(3, []Edge{NewEdge(2, 0)})
	require.NoError(t, err)

	ok, err := g.EdgeExists(0, 2)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = g.EdgeExists(1, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = g.EdgeExists(0, 3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = g.EdgeExists(7, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestForEachNeighborIsSorted(t *testing.T) {
	g, err := NewGraphFromEdges(5, []Edge{{0, 4}, {0, 2}, {0, 1}, {3, 0}})
	require.NoError(t, err)

	got := make([]Index, 0)
	g.ForEachNeighbor(0, func(u Index) {
		got = append(got, u)
	})
	assert.Equal(t, []Index{1, 2, 3, 4}, got)
}
