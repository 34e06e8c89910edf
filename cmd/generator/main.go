package main

import (
	"flag"
	"os"
	"time"

	"github.com/lintang-b-s/tripartition/pkg/datastructure"
	"github.com/lintang-b-s/tripartition/pkg/generator"
	"github.com/lintang-b-s/tripartition/pkg/logger"
	"github.com/lintang-b-s/tripartition/pkg/report"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

var (
	numVertices = flag.Int("n", 10, "number of vertices")
	edgeProb    = flag.Float64("p", 0.3, "edge probability")
	seed        = flag.Uint64("seed", 0, "random seed, 0 seeds from the clock")
	outputFile  = flag.String("output", "./data/random_graph.csrrg", "csr output file (.bz2 is compressed)")
	reportFile  = flag.String("report", "", "optional adjacency matrix / edge list report")
)

func main() {
	flag.Parse()
	log, err := logger.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	s := *seed
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}
	rd := rand.New(rand.NewSource(s))

	graph, err := generator.RandomGraph(*numVertices, *edgeProb, rd)
	if err != nil {
		log.Fatal("failed to generate graph", zap.Error(err))
	}

	err = datastructure.WriteCSRFile(*outputFile, []*datastructure.CSRRecord{datastructure.NewCSRRecord(graph)})
	if err != nil {
		log.Fatal("failed to write graph", zap.Error(err))
	}

	if *reportFile != "" {
		f, err := os.Create(*reportFile)
		if err != nil {
			log.Fatal("failed to create report", zap.Error(err))
		}
		defer f.Close()
		report.WriteStructure(f, graph)
	}

	log.Info("random graph generated",
		zap.Int("vertices", graph.NumberOfVertices()),
		zap.Int("edges", graph.NumberOfEdges()),
		zap.Float64("p", *edgeProb),
		zap.Uint64("seed", s),
		zap.String("output", *outputFile))
}
