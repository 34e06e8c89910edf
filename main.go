package main

import (
	"context"
	"os"

	"github.com/lintang-b-s/tripartition/pkg/datastructure"
	"github.com/lintang-b-s/tripartition/pkg/logger"
	"github.com/lintang-b-s/tripartition/pkg/partitioner"
	"github.com/lintang-b-s/tripartition/pkg/report"
)

func main() {
	log, err := logger.NewDevelopment()
	if err != nil {
		panic(err)
	}
	records, err := datastructure.ReadCSRFile("./data/graphs.csrrg")
	if err != nil {
		panic(err)
	}

	rw := report.NewWriter(os.Stdout)
	for _, record := range records {
		graph, _, err := record.ToGraph()
		if err != nil {
			panic(err)
		}
		result, partitionErr := partitioner.Partition(context.Background(), graph, partitioner.DefaultConfig().WithSeed(1), log)
		if err := rw.WriteGraph(graph, result, partitionErr); err != nil {
			panic(err)
		}
	}
}
