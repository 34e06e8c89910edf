package controllers

import (
	"context"

	"github.com/lintang-b-s/tripartition/pkg/datastructure"
	"github.com/lintang-b-s/tripartition/pkg/partitioner"
)

type PartitionService interface {
	PartitionEdges(ctx context.Context, numVertices int, edges []datastructure.Edge,
		overrides partitioner.ConfigOverrides) (*partitioner.Result, error)
	PartitionCSR(ctx context.Context, record *datastructure.CSRRecord,
		overrides partitioner.ConfigOverrides) (*partitioner.Result, []datastructure.DecodeWarning, error)
}
