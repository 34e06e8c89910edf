package main

import (
	"context"
	"errors"
	"flag"

	"github.com/lintang-b-s/tripartition/pkg/http"
	"github.com/lintang-b-s/tripartition/pkg/http/usecases"
	"github.com/lintang-b-s/tripartition/pkg/logger"
	"github.com/lintang-b-s/tripartition/pkg/partitioner"
	"github.com/lintang-b-s/tripartition/pkg/util"
	"go.uber.org/zap"
)

var (
	configFile   = flag.String("config", "", "config file, default ./data/config.yaml when present")
	useRateLimit = flag.Bool("rate_limit", true, "enable the global request rate limiter")
	maxVertices  = flag.Int("max_vertices", 2000, "largest graph accepted by the api")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := util.ReadConfig(*configFile); err != nil {
		logger.Warn("config file not loaded, using defaults", zap.Error(err))
	}

	config := partitioner.ConfigFromViper()
	if err := config.Validate(); err != nil {
		logger.Fatal("invalid partitioner config", zap.Error(err))
	}

	partitionService := usecases.NewPartitionService(logger, usecases.NewAnnealingEngine(logger), config, *maxVertices)

	api := http.NewServer(logger)

	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}
	api.Use(ctx,
		logger, *useRateLimit, partitionService)

	signal := http.GracefulShutdown()

	logger.Info("Tripartition Server Stopped", zap.String("signal", signal.String()))
	cleanup()
	if err := api.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("server stopped with error", zap.Error(err))
	}
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
