package partitioner

import (
	"context"
	"fmt"
	"time"

	"github.com/lintang-b-s/tripartition/pkg/concurrent"
	da "github.com/lintang-b-s/tripartition/pkg/datastructure"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

type attemptJob struct {
	attempt int
	seed    uint64
}

type attemptResult struct {
	stats      AttemptStats
	assignment []GroupID
}

// BalancedPartitioner splits a graph into three groups of near-equal size with few crossing
// edges using multi-restart simulated annealing.
type BalancedPartitioner struct {
	graph  *da.Graph
	config Config
	logger *zap.Logger
	source rand.Source
}

type Option func(*BalancedPartitioner)

// WithRandSource injects the random source that per-attempt seeds are drawn from. it takes
// precedence over Config.Seed.
func WithRandSource(source rand.Source) Option {
	return func(bp *BalancedPartitioner) {
		bp.source = source
	}
}

func NewBalancedPartitioner(graph *da.Graph, config Config, logger *zap.Logger, opts ...Option) *BalancedPartitioner {
	if logger == nil {
		logger = zap.NewNop()
	}
	bp := &BalancedPartitioner{
		graph:  graph,
		config: config,
		logger: logger,
	}
	for _, opt := range opts {
		opt(bp)
	}
	return bp
}

// Partition is a shorthand for NewBalancedPartitioner(graph, config, logger).Partition(ctx).
func Partition(ctx context.Context, graph *da.Graph, config Config, logger *zap.Logger) (*Result, error) {
	return NewBalancedPartitioner(graph, config, logger).Partition(ctx)
}

func (bp *BalancedPartitioner) randomSource() rand.Source {
	switch {
	case bp.source != nil:
		return bp.source
	case bp.config.Seed != nil:
		return rand.NewSource(*bp.config.Seed)
	default:
		return rand.NewSource(uint64(time.Now().UnixNano()))
	}
}

/*
Partition runs Config.Attempts independent annealing attempts and returns the assignment with
the fewest crossing edges, ties go to the lowest attempt index. attempt 0 starts from the
round-robin assignment, the others from random balanced assignments.

seeds of all attempts are drawn up front from one random source, so a fixed seed gives the
same result for any number of workers.

the search stops early when ctx is done or Config.TimeBudget elapses, the best assignment
found so far is still returned with Truncated set.
*/
func (bp *BalancedPartitioner) Partition(ctx context.Context) (*Result, error) {
	n := bp.graph.NumberOfVertices()
	if n < NUM_GROUPS {
		return nil, fmt.Errorf("graph has %d vertices: %w", n, ErrInsufficientVertices)
	}
	if err := bp.config.Validate(); err != nil {
		return nil, err
	}

	if bp.config.TimeBudget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, bp.config.TimeBudget)
		defer cancel()
	}

	rd := rand.New(bp.randomSource())
	jobs := make([]attemptJob, bp.config.Attempts)
	for i := range jobs {
		jobs[i] = attemptJob{attempt: i, seed: rd.Uint64()}
	}

	start := time.Now()
	results := concurrent.Run[attemptJob, attemptResult](ctx, bp.config.Workers, jobs, bp.runAttempt)

	best := results[0]
	stats := make([]AttemptStats, len(results))
	truncated := false
	for _, res := range results {
		stats[res.stats.Attempt] = res.stats
		truncated = truncated || res.stats.Truncated
		if res.stats.BestCost < best.stats.BestCost ||
			(res.stats.BestCost == best.stats.BestCost && res.stats.Attempt < best.stats.Attempt) {
			best = res
		}
	}

	if err := ValidateAssignment(bp.graph, best.assignment); err != nil {
		return nil, err
	}

	result := &Result{
		Assignment:    best.assignment,
		CrossingCount: CrossingCount(bp.graph, best.assignment),
		GroupSizes:    ComputeGroupSizes(best.assignment),
		BestAttempt:   best.stats.Attempt,
		Truncated:     truncated,
		Attempts:      stats,
	}

	bp.logger.Info("balanced 3-partition finished",
		zap.Int("vertices", n),
		zap.Int("attempts", len(results)),
		zap.Int("best_attempt", result.BestAttempt),
		zap.Int("crossing_count", result.CrossingCount),
		zap.Ints("group_sizes", result.GroupSizes[:]),
		zap.Bool("truncated", truncated),
		zap.Duration("elapsed", time.Since(start)))

	return result, nil
}

func (bp *BalancedPartitioner) runAttempt(ctx context.Context, job attemptJob) attemptResult {
	n := bp.graph.NumberOfVertices()
	rd := rand.New(rand.NewSource(job.seed))

	var initial []GroupID
	if job.attempt == 0 {
		initial = roundRobinAssignment(n)
	} else {
		initial = randomBalancedAssignment(n, rd)
	}

	an := newAnnealer(bp.graph, bp.config, initial, rd, bp.logger)
	an.stats.Attempt = job.attempt
	an.stats.Seed = job.seed
	an.run(ctx)

	bp.logger.Debug("annealing attempt finished",
		zap.Int("attempt", job.attempt),
		zap.Int("initial_cost", an.stats.InitialCost),
		zap.Int("best_cost", an.stats.BestCost),
		zap.Int("sweeps", an.stats.Sweeps),
		zap.Int("accepted_moves", an.stats.AcceptedMoves),
		zap.Int("accepted_swaps", an.stats.AcceptedSwaps))

	return attemptResult{stats: an.stats, assignment: an.bestGroups}
}
