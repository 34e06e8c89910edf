package partitioner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrossingCount(t *testing.T) {
	triangle := buildGraph(t, 3, [][2]int{{0, 1}, {1, 2}, {0, 2}})
	square := buildGraph(t, 4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})

	testCases := []struct {
		name   string
		edges  int
		groups []GroupID
		want   int
	}{
		{name: "triangle split three ways counts each edge once", edges: 3, groups: []GroupID{0, 1, 2}, want: 3},
		{name: "triangle in one group", edges: 3, groups: []GroupID{1, 1, 1}, want: 0},
		{name: "triangle two and one", edges: 3, groups: []GroupID{0, 0, 2}, want: 2},
		{name: "square halves", edges: 4, groups: []GroupID{0, 0, 1, 1}, want: 2},
		{name: "square alternating", edges: 4, groups: []GroupID{0, 1, 0, 1}, want: 4},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			g := triangle
			if tt.edges == 4 {
				g = square
			}
			got := CrossingCount(g, tt.groups)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, CrossingCount(g, tt.groups), "cost function must not keep state")
			assert.Equal(t, countCrossingEdges(g, tt.groups), got)
		})
	}
}

func TestBalanceBounds(t *testing.T) {
	testCases := []struct {
		n, min, max int
	}{
		{3, 1, 1}, {4, 1, 2}, {5, 1, 2}, {6, 2, 2}, {7, 2, 3}, {100, 33, 34},
	}
	for _, tt := range testCases {
		minSize, maxSize := BalanceBounds(tt.n)
		assert.Equal(t, tt.min, minSize, "n=%d", tt.n)
		assert.Equal(t, tt.max, maxSize, "n=%d", tt.n)
	}

	assert.Equal(t, [NUM_GROUPS]int{2, 2, 3}, balancedTargetSizes(7))
	assert.Equal(t, [NUM_GROUPS]int{2, 3, 3}, balancedTargetSizes(8))
	assert.Equal(t, [NUM_GROUPS]int{3, 3, 3}, balancedTargetSizes(9))
}

func TestValidateAssignment(t *testing.T) {
	g := buildGraph(t, 5, [][2]int{{0, 1}})

	require.NoError(t, ValidateAssignment(g, []GroupID{0, 1, 2, 0, 1}))
	assert.ErrorIs(t, ValidateAssignment(g, []GroupID{0, 1, 2}), ErrInvalidAssignment)
	assert.ErrorIs(t, ValidateAssignment(g, []GroupID{0, 1, 2, 3, 1}), ErrInvalidAssignment)
	assert.ErrorIs(t, ValidateAssignment(g, []GroupID{0, 0, 0, 1, 2}), ErrUnbalancedPartition)
	assert.ErrorIs(t, ValidateAssignment(g, []GroupID{0, 0, 1, 1, 1}), ErrUnbalancedPartition)
}
