package main

import (
	"fmt"
	"os"
	"strconv"
)

const (
	// DefaultElements is the number of elements each worker's DSU starts with
	DefaultElements = 100_000

	// DefaultOperations is the number of operations each worker performs
	DefaultOperations = 1_000_000

	// DefaultWorkers is the number of independent DSUs driven in parallel
	DefaultWorkers = 1

	// DefaultWorkload is the workload run when none is configured
	DefaultWorkload = WorkloadRandom

	// DefaultOutputDir is where metrics reports are written
	DefaultOutputDir = "."
)

// Config holds configuration for a benchmark run
type Config struct {
	// Workload selects the operation mix: random, chain or kruskal.
	Workload string

	// Elements is the initial element count per DSU. If 0, uses DefaultElements.
	Elements int

	// Operations is the number of unions/finds (or graph edges for kruskal). If 0, uses DefaultOperations.
	Operations int

	// Workers is the number of goroutines, each owning its own DSU. If 0, uses DefaultWorkers.
	Workers int

	// Seed drives every random choice. Worker i uses Seed+i.
	Seed int64

	// OutputDir is where the metrics report is saved. If empty, uses DefaultOutputDir.
	OutputDir string

	// NoReport skips writing the metrics report.
	NoReport bool
}

// LoadConfigFromEnv reads BENCH_* variables. Unset variables keep the zero value.
func LoadConfigFromEnv() (Config, error) {
	cfg := Config{
		Workload:  os.Getenv("BENCH_WORKLOAD"),
		OutputDir: os.Getenv("BENCH_OUTPUT_DIR"),
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"BENCH_ELEMENTS", &cfg.Elements},
		{"BENCH_OPERATIONS", &cfg.Operations},
		{"BENCH_WORKERS", &cfg.Workers},
	}
	for _, v := range ints {
		raw := os.Getenv(v.key)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", v.key, raw, err)
		}
		*v.dst = n
	}

	if raw := os.Getenv("BENCH_SEED"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid BENCH_SEED %q: %w", raw, err)
		}
		cfg.Seed = seed
	}

	return cfg, nil
}

// applyDefaults fills in default values for unset config fields
func (c *Config) applyDefaults() {
	if c.Workload == "" {
		c.Workload = DefaultWorkload
	}
	if c.Elements == 0 {
		c.Elements = DefaultElements
	}
	if c.Operations == 0 {
		c.Operations = DefaultOperations
	}
	if c.Workers == 0 {
		c.Workers = DefaultWorkers
	}
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
}

// validate rejects configurations no workload can run
func (c *Config) validate() error {
	if _, ok := workloads[c.Workload]; !ok {
		return fmt.Errorf("unknown workload %q", c.Workload)
	}
	if c.Elements < 0 {
		return fmt.Errorf("elements must not be negative, got %d", c.Elements)
	}
	if c.Operations < 0 {
		return fmt.Errorf("operations must not be negative, got %d", c.Operations)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	return nil
}
