package usecases

import (
	"context"

	"github.com/lintang-b-s/tripartition/pkg/datastructure"
	"github.com/lintang-b-s/tripartition/pkg/partitioner"
)

type PartitionEngine interface {
	Partition(ctx context.Context, graph *datastructure.Graph, config partitioner.Config) (*partitioner.Result, error)
}
