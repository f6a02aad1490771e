package main

import (
	"fmt"
	"os"

	"lintang/ridecost/pkg/dataset"
	"lintang/ridecost/pkg/datastructure"
	"lintang/ridecost/pkg/engine/routingalgorithm"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *zap.Logger

	datasetFile string
	debug       bool
	numWorkers  int
)

var rootCmd = &cobra.Command{
	Use:   "ridecost",
	Short: "Stakeholder-aware shortest path routing on a small city network",
	Long: `ridecost computes minimum cost routes between cities where the cost of a road
depends on whose money is on the line: the ride hailing company, the driver,
or an ethically adjusted variant (rural fairness, weather safety, driver fatigue).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if debug {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&datasetFile, "dataset", "", "yaml road network file (default: built-in Minnesota network)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().IntVar(&numWorkers, "workers", routingalgorithm.DefaultWorkers, "worker pool size for batch queries")

	rootCmd.AddCommand(serveCmd, routeCmd, compareCmd, subsidyCmd, reportCmd)
}

func loadGraph() (*datastructure.Graph, error) {
	graph, err := dataset.Load(datasetFile)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	logger.Info("road network loaded", zap.String("dataset", datasetName()),
		zap.Int("cities", graph.NumCities()), zap.Int("edges", len(graph.Edges())))
	return graph, nil
}

func datasetName() string {
	if datasetFile == "" {
		return "minnesota (built-in)"
	}
	return datasetFile
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
