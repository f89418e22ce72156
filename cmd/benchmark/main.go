// Command benchmark drives the disjoint set with synthetic workloads and
// writes a JSON metrics report.
//
// Settings come from BENCH_* variables (optionally in a .env file) and can be
// overridden with flags.
package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	cfg, err := LoadConfigFromEnv()
	if err != nil {
		log.Fatal(err)
	}

	flag.StringVar(&cfg.Workload, "workload", cfg.Workload, "workload to run: random, chain or kruskal")
	flag.IntVar(&cfg.Elements, "elements", cfg.Elements, "initial elements per worker")
	flag.IntVar(&cfg.Operations, "operations", cfg.Operations, "operations (or edges) per worker")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "independent workers, one DSU each")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed")
	flag.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "directory for the metrics report")
	flag.BoolVar(&cfg.NoReport, "no-report", cfg.NoReport, "do not write a metrics report")
	flag.Parse()

	metrics, err := Run(cfg, log.Printf)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("done in %v: %d unions, %d finds, %.0f ops/s",
		metrics.TotalDuration, metrics.TotalUnions, metrics.TotalFinds, metrics.OpsPerSecond)

	if cfg.NoReport {
		return
	}
	cfg.applyDefaults()
	path, err := saveMetricsToFile(cfg.OutputDir, metrics)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("metrics written to %s", path)
}
