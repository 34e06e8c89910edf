package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestRandomGraphBounds(t *testing.T) {
	rd := rand.New(rand.NewSource(1))

	testCases := []struct {
		name    string
		n       int
		p       float64
		wantErr error
	}{
		{name: "zero vertices", n: 0, p: 0.5, wantErr: ErrInvalidVertexCount},
		{name: "negative probability", n: 4, p: -0.1, wantErr: ErrInvalidProbability},
		{name: "probability above one", n: 4, p: 1.1, wantErr: ErrInvalidProbability},
		{name: "valid", n: 4, p: 0.5},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			g, err := RandomGraph(tt.n, tt.p, rd)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.n, g.NumberOfVertices())
		})
	}
}

func TestRandomGraphExtremes(t *testing.T) {
	rd := rand.New(rand.NewSource(2))

	empty, err := RandomGraph(8, 0.0, rd)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.NumberOfEdges())

	complete, err := RandomGraph(8, 1.0, rd)
	require.NoError(t, err)
	assert.Equal(t, 8*7/2, complete.NumberOfEdges())
}

func TestRandomGraphIsDeterministic(t *testing.T) {
	a, err := RandomGraph(20, 0.3, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	b, err := RandomGraph(20, 0.3, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	assert.Equal(t, a.Edges(), b.Edges())
}

func TestPlantedPartition(t *testing.T) {
	rd := rand.New(rand.NewSource(3))
	g, err := PlantedPartition(12, 1.0, 0.0, rd)
	require.NoError(t, err)

	// three disjoint cliques of four vertices.
	assert.Equal(t, 3*6, g.NumberOfEdges())
	for _, e := range g.Edges() {
		assert.Equal(t, e.U%3, e.V%3, "edge %d - %d crosses blocks", e.U, e.V)
	}

	_, err = PlantedPartition(12, 0.5, 2.0, rd)
	require.ErrorIs(t, err, ErrInvalidProbability)
}
