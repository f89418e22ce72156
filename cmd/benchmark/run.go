package main

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Logger defines a function for logging benchmark progress
type Logger func(message string, args ...interface{})

type BenchmarkMetrics struct {
	RunID     string
	StartedAt time.Time

	// Configuration the run used, after defaults
	Workload   string
	Elements   int
	Operations int
	Workers    int
	Seed       int64

	// Overall metrics
	TotalDuration time.Duration
	TotalUnions   int
	TotalFinds    int
	OpsPerSecond  float64

	// Per-worker metrics, indexed by worker
	Results []WorkerResult
}

// Run executes cfg.Workload once per worker. Each worker owns its own DSU, so
// no structure is ever shared between goroutines.
func Run(cfg Config, logger Logger) (BenchmarkMetrics, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return BenchmarkMetrics{}, fmt.Errorf("invalid benchmark config: %w", err)
	}
	workload := workloads[cfg.Workload]

	metrics := BenchmarkMetrics{
		RunID:      uuid.New().String(),
		StartedAt:  time.Now(),
		Workload:   cfg.Workload,
		Elements:   cfg.Elements,
		Operations: cfg.Operations,
		Workers:    cfg.Workers,
		Seed:       cfg.Seed,
		Results:    make([]WorkerResult, cfg.Workers),
	}
	if cfg.Workload == WorkloadChain {
		metrics.Operations = 0
	}
	if logger != nil {
		logger("run %s: %s workload, %d elements, %d operations, %d workers",
			metrics.RunID, cfg.Workload, cfg.Elements, metrics.Operations, cfg.Workers)
	}

	var wg sync.WaitGroup
	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			r := rand.New(rand.NewSource(cfg.Seed + int64(worker)))
			metrics.Results[worker] = workload(r, cfg)
		}(i)
	}
	wg.Wait()
	metrics.TotalDuration = time.Since(metrics.StartedAt)

	var busy time.Duration
	for i, res := range metrics.Results {
		metrics.TotalUnions += res.Unions
		metrics.TotalFinds += res.Finds
		busy += res.Duration
		if logger != nil {
			logger("worker %d: %v, %d unions, %d finds, %d sets, max rank %d",
				i, res.Duration, res.Unions, res.Finds, res.Sets, res.MaxRank)
		}
	}
	if busy > 0 {
		metrics.OpsPerSecond = float64(metrics.TotalUnions+metrics.TotalFinds) / busy.Seconds()
	}

	return metrics, nil
}
