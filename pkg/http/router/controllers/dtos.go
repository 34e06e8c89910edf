package controllers

import (
	"fmt"
	"math"

	"github.com/lintang-b-s/tripartition/pkg/datastructure"
	"github.com/lintang-b-s/tripartition/pkg/partitioner"
)

type csrRequest struct {
	ColIndices []int `json:"col_indices"`
	RowPtr     []int `json:"row_ptr" validate:"required,min=1"`
}

type partitionRequest struct {
	NumVertices        int         `json:"num_vertices" validate:"gte=0"`
	Edges              [][2]int    `json:"edges" validate:"omitempty,dive,dive,gte=0"`
	CSR                *csrRequest `json:"csr" validate:"omitempty"`
	Attempts           *int        `json:"attempts" validate:"omitempty,gt=0,lte=1000"`
	InitialTemperature *float64    `json:"initial_temperature" validate:"omitempty,gt=0"`
	CoolingRate        *float64    `json:"cooling_rate" validate:"omitempty,gt=0,lt=1"`
	MinTemperature     *float64    `json:"min_temperature" validate:"omitempty,gt=0"`
	Seed               *uint64     `json:"seed"`
}

func (r partitionRequest) overrides() partitioner.ConfigOverrides {
	return partitioner.ConfigOverrides{
		Attempts:           r.Attempts,
		InitialTemperature: r.InitialTemperature,
		CoolingRate:        r.CoolingRate,
		MinTemperature:     r.MinTemperature,
		Seed:               r.Seed,
	}
}

// edges checks the endpoints against num_vertices before narrowing them to datastructure.Index.
func (r partitionRequest) edges() ([]datastructure.Edge, error) {
	edges := make([]datastructure.Edge, len(r.Edges))
	for i, e := range r.Edges {
		if e[0] < 0 || e[1] < 0 || e[0] >= r.NumVertices || e[1] >= r.NumVertices || int64(r.NumVertices) > math.MaxUint32 {
			return nil, fmt.Errorf("edge %d (%d,%d) with %d vertices: %w", i, e[0], e[1], r.NumVertices,
				datastructure.ErrIndexOutOfRange)
		}
		edges[i] = datastructure.NewEdge(datastructure.Index(e[0]), datastructure.Index(e[1]))
	}
	return edges, nil
}

func (r partitionRequest) csrRecord() *datastructure.CSRRecord {
	return &datastructure.CSRRecord{
		MaxNodes:   len(r.CSR.RowPtr) - 1,
		ColIndices: r.CSR.ColIndices,
		RowPtr:     r.CSR.RowPtr,
	}
}

type attemptResponse struct {
	Attempt     int  `json:"attempt"`
	InitialCost int  `json:"initial_cost"`
	BestCost    int  `json:"best_cost"`
	Sweeps      int  `json:"sweeps"`
	Truncated   bool `json:"truncated"`
}

type partitionResponse struct {
	Assignment    []int             `json:"assignment"`
	Groups        [][]int           `json:"groups"`
	GroupSizes    []int             `json:"group_sizes"`
	CrossingCount int               `json:"crossing_count"`
	BestAttempt   int               `json:"best_attempt"`
	Truncated     bool              `json:"truncated"`
	Attempts      []attemptResponse `json:"attempts"`
	Warnings      []string          `json:"warnings,omitempty"`
}

func NewPartitionResponse(result *partitioner.Result, warnings []datastructure.DecodeWarning) partitionResponse {
	assignment := make([]int, len(result.Assignment))
	for v, g := range result.Assignment {
		assignment[v] = int(g)
	}

	groups := make([][]int, partitioner.NUM_GROUPS)
	for g := partitioner.GroupID(0); g < partitioner.NUM_GROUPS; g++ {
		members := result.Members(g)
		groups[g] = make([]int, len(members))
		for i, v := range members {
			groups[g][i] = int(v)
		}
	}

	attempts := make([]attemptResponse, len(result.Attempts))
	for i, a := range result.Attempts {
		attempts[i] = attemptResponse{
			Attempt:     a.Attempt,
			InitialCost: a.InitialCost,
			BestCost:    a.BestCost,
			Sweeps:      a.Sweeps,
			Truncated:   a.Truncated,
		}
	}

	warningMsgs := make([]string, 0, len(warnings))
	for _, w := range warnings {
		warningMsgs = append(warningMsgs, w.String())
	}

	return partitionResponse{
		Assignment:    assignment,
		Groups:        groups,
		GroupSizes:    result.GroupSizes[:],
		CrossingCount: result.CrossingCount,
		BestAttempt:   result.BestAttempt,
		Truncated:     result.Truncated,
		Attempts:      attempts,
		Warnings:      warningMsgs,
	}
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
