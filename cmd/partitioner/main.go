package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lintang-b-s/tripartition/pkg/datastructure"
	"github.com/lintang-b-s/tripartition/pkg/logger"
	"github.com/lintang-b-s/tripartition/pkg/partitioner"
	"github.com/lintang-b-s/tripartition/pkg/report"
	"github.com/lintang-b-s/tripartition/pkg/util"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	inputFile    = flag.String("input", "./data/graphs.csrrg", "csr graph file (.bz2 is decompressed)")
	outputFile   = flag.String("output", "./data/partition_report.txt", "report output file")
	configFile   = flag.String("config", "", "config file, default ./data/config.yaml when present")
	attempts     = flag.Int("attempts", partitioner.DEFAULT_ATTEMPTS, "annealing attempts per graph")
	seed         = flag.Uint64("seed", 0, "random seed, only used when the flag is set")
	workers      = flag.Int("workers", partitioner.DEFAULT_WORKERS, "attempts running concurrently")
	timeBudget   = flag.Duration("time_budget", 0, "time budget per graph, 0 means unbounded")
	graphWorkers = flag.Int("graph_workers", 2, "graphs partitioned concurrently")
)

type graphJob struct {
	graph  *datastructure.Graph
	result *partitioner.Result
	err    error
}

func main() {
	flag.Parse()
	log, err := logger.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := util.ReadConfig(*configFile); err != nil {
		if *configFile != "" {
			log.Fatal("failed to read config", zap.Error(err))
		}
		log.Debug("no config file, using defaults", zap.Error(err))
	}

	config := applyFlags(partitioner.ConfigFromViper())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, config, log); err != nil {
		log.Fatal("partitioning failed", zap.Error(err))
	}
}

// applyFlags overrides config values with the flags given on the command line.
func applyFlags(config partitioner.Config) partitioner.Config {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "attempts":
			config.Attempts = *attempts
		case "seed":
			config = config.WithSeed(*seed)
		case "workers":
			config.Workers = *workers
		case "time_budget":
			config.TimeBudget = *timeBudget
		}
	})
	return config
}

func run(ctx context.Context, config partitioner.Config, log *zap.Logger) error {
	if err := config.Validate(); err != nil {
		return err
	}

	records, err := datastructure.ReadCSRFile(*inputFile)
	if err != nil {
		return err
	}

	jobs := make([]graphJob, len(records))
	for i, record := range records {
		graph, warnings, err := record.ToGraph()
		if err != nil {
			return err
		}
		for _, w := range warnings {
			log.Warn("skipped csr entry", zap.Int("graph", i+1), zap.String("entry", w.String()))
		}
		jobs[i].graph = graph
	}

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(util.Max(*graphWorkers, 1))
	for i := range jobs {
		job := &jobs[i]
		graphNumber := i + 1
		g.Go(func() error {
			job.result, job.err = partitioner.Partition(gctx, job.graph, config, log.With(zap.Int("graph", graphNumber)))
			if errors.Is(job.err, partitioner.ErrInsufficientVertices) {
				log.Info("partition not applicable", zap.Int("graph", graphNumber),
					zap.Int("vertices", job.graph.NumberOfVertices()))
				return nil
			}
			return job.err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	f, err := os.Create(*outputFile)
	if err != nil {
		return err
	}
	defer f.Close()

	rw := report.NewWriter(f)
	for _, job := range jobs {
		if err := rw.WriteGraph(job.graph, job.result, job.err); err != nil {
			return err
		}
	}

	log.Info("conversion finished",
		zap.Int("graphs", rw.GraphCount()),
		zap.String("output", *outputFile),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}
