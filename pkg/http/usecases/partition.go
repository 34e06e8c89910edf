package usecases

import (
	"context"
	"errors"

	"github.com/lintang-b-s/tripartition/pkg/datastructure"
	"github.com/lintang-b-s/tripartition/pkg/partitioner"
	"github.com/lintang-b-s/tripartition/pkg/util"
	"go.uber.org/zap"
)

// annealingEngine adapts partitioner.Partition to PartitionEngine.
type annealingEngine struct {
	log *zap.Logger
}

func NewAnnealingEngine(log *zap.Logger) PartitionEngine {
	return &annealingEngine{log: log}
}

func (ae *annealingEngine) Partition(ctx context.Context, graph *datastructure.Graph, config partitioner.Config) (*partitioner.Result, error) {
	return partitioner.Partition(ctx, graph, config, ae.log)
}

type PartitionService struct {
	log         *zap.Logger
	engine      PartitionEngine
	config      partitioner.Config
	maxVertices int
}

func NewPartitionService(log *zap.Logger, engine PartitionEngine, config partitioner.Config, maxVertices int) *PartitionService {
	return &PartitionService{
		log:         log,
		engine:      engine,
		config:      config,
		maxVertices: maxVertices,
	}
}

func (ps *PartitionService) PartitionEdges(ctx context.Context, numVertices int, edges []datastructure.Edge,
	overrides partitioner.ConfigOverrides) (*partitioner.Result, error) {
	if numVertices > ps.maxVertices {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "graph has %d vertices, at most %d are accepted", numVertices, ps.maxVertices)
	}
	graph, err := datastructure.NewGraphFromEdges(numVertices, edges)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "invalid edge list")
	}
	return ps.partition(ctx, graph, overrides)
}

func (ps *PartitionService) PartitionCSR(ctx context.Context, record *datastructure.CSRRecord,
	overrides partitioner.ConfigOverrides) (*partitioner.Result, []datastructure.DecodeWarning, error) {
	if n := record.NumberOfVertices(); n > ps.maxVertices {
		return nil, nil, util.WrapErrorf(nil, util.ErrBadParamInput, "graph has %d vertices, at most %d are accepted", n, ps.maxVertices)
	}
	graph, warnings, err := record.ToGraph()
	if err != nil {
		return nil, nil, util.WrapErrorf(err, util.ErrBadParamInput, "invalid csr graph")
	}
	result, err := ps.partition(ctx, graph, overrides)
	return result, warnings, err
}

func (ps *PartitionService) partition(ctx context.Context, graph *datastructure.Graph,
	overrides partitioner.ConfigOverrides) (*partitioner.Result, error) {
	config := ps.config.Apply(overrides)
	result, err := ps.engine.Partition(ctx, graph, config)
	switch {
	case errors.Is(err, partitioner.ErrInsufficientVertices):
		return nil, util.WrapErrorf(err, util.ErrUnprocessable, "partition not applicable")
	case errors.Is(err, partitioner.ErrInvalidConfig):
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "invalid partitioner parameters")
	case err != nil:
		ps.log.Error("partitioning failed", zap.Error(err))
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "partitioning failed")
	}
	return result, nil
}

