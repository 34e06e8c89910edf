package generator

import (
	"errors"
	"fmt"

	da "github.com/lintang-b-s/tripartition/pkg/datastructure"
	"golang.org/x/exp/rand"
)

var (
	ErrInvalidVertexCount = errors.New("generator: number of vertices must be positive")
	ErrInvalidProbability = errors.New("generator: edge probability must be within [0.0, 1.0]")
)

// RandomGraph draws an Erdos-Renyi G(n, p) graph: every pair i < j is connected independently
// with probability p.
func RandomGraph(n int, p float64, rd *rand.Rand) (*da.Graph, error) {
	if n <= 0 {
		return nil, fmt.Errorf("n=%d: %w", n, ErrInvalidVertexCount)
	}
	if p < 0.0 || p > 1.0 {
		return nil, fmt.Errorf("p=%v: %w", p, ErrInvalidProbability)
	}

	edges := make([]da.Edge, 0)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rd.Float64() < p {
				edges = append(edges, da.NewEdge(da.Index(i), da.Index(j)))
			}
		}
	}
	return da.NewGraphFromEdges(n, edges)
}

// PlantedPartition draws a graph whose vertices are split round-robin into three blocks, pairs
// inside a block are connected with probability pIn and pairs across blocks with pOut.
// with pIn much larger than pOut the round-robin blocks are a good balanced 3-partition.
func PlantedPartition(n int, pIn, pOut float64, rd *rand.Rand) (*da.Graph, error) {
	if n <= 0 {
		return nil, fmt.Errorf("n=%d: %w", n, ErrInvalidVertexCount)
	}
	for _, p := range []float64{pIn, pOut} {
		if p < 0.0 || p > 1.0 {
			return nil, fmt.Errorf("p=%v: %w", p, ErrInvalidProbability)
		}
	}

	edges := make([]da.Edge, 0)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			p := pOut
			if i%3 == j%3 {
				p = pIn
			}
			if rd.Float64() < p {
				edges = append(edges, da.NewEdge(da.Index(i), da.Index(j)))
			}
		}
	}
	return da.NewGraphFromEdges(n, edges)
}
