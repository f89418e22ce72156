package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// saveMetricsToFile saves the metrics to a JSON file in dir and returns its path
func saveMetricsToFile(dir string, metrics BenchmarkMetrics) (string, error) {
	timestamp := metrics.StartedAt.Format("20060102_150405")
	random := metrics.RunID
	if len(random) > 8 {
		random = random[:8]
	}
	filename := filepath.Join(dir, fmt.Sprintf("metrics_%s_%s_%s.json", metrics.Workload, timestamp, random))

	jsonData, err := json.MarshalIndent(metrics, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal metrics: %w", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output dir %s: %w", dir, err)
	}

	if err := os.WriteFile(filename, jsonData, 0644); err != nil {
		return "", fmt.Errorf("failed to write metrics to file %s: %w", filename, err)
	}

	return filename, nil
}
