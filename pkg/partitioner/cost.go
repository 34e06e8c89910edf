package partitioner

import (
	"fmt"

	da "github.com/lintang-b-s/tripartition/pkg/datastructure"
)

// CrossingCount counts the edges whose endpoints are in different groups.
// every unordered pair {i,j} is visited once (j > i), a full matrix scan would count each edge twice.
func CrossingCount(graph *da.Graph, groups []GroupID) int {
	n := graph.NumberOfVertices()
	crossing := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if groups[i] != groups[j] && graph.IsAdjacent(da.Index(i), da.Index(j)) {
				crossing++
			}
		}
	}
	return crossing
}

// BalanceBounds returns floor(n/3) and ceil(n/3).
func BalanceBounds(n int) (int, int) {
	return n / NUM_GROUPS, (n + NUM_GROUPS - 1) / NUM_GROUPS
}

func ComputeGroupSizes(groups []GroupID) [NUM_GROUPS]int {
	var sizes [NUM_GROUPS]int
	for _, g := range groups {
		sizes[g]++
	}
	return sizes
}

func IsBalanced(n int, sizes [NUM_GROUPS]int) bool {
	minSize, maxSize := BalanceBounds(n)
	total := 0
	for _, size := range sizes {
		if size < minSize || size > maxSize {
			return false
		}
		total += size
	}
	return total == n
}

// ValidateAssignment checks that groups assigns every vertex of the graph to a valid group
// and that the group sizes respect the balance bounds.
func ValidateAssignment(graph *da.Graph, groups []GroupID) error {
	n := graph.NumberOfVertices()
	if len(groups) != n {
		return fmt.Errorf("%d groups for %d vertices: %w", len(groups), n, ErrInvalidAssignment)
	}
	for v, g := range groups {
		if g >= NUM_GROUPS {
			return fmt.Errorf("vertex %d has group %d: %w", v, g, ErrInvalidAssignment)
		}
	}
	sizes := ComputeGroupSizes(groups)
	if !IsBalanced(n, sizes) {
		return fmt.Errorf("group sizes %v: %w", sizes, ErrUnbalancedPartition)
	}
	return nil
}

// balancedTargetSizes is the size of every group in a fresh balanced assignment:
// floor(n/3) each, the remainder goes to the last groups.
func balancedTargetSizes(n int) [NUM_GROUPS]int {
	var sizes [NUM_GROUPS]int
	for g := 0; g < NUM_GROUPS; g++ {
		sizes[g] = n / NUM_GROUPS
	}
	for r := 0; r < n%NUM_GROUPS; r++ {
		sizes[NUM_GROUPS-1-r]++
	}
	return sizes
}
