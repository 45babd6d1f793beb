package iocache

import (
	"errors"
	"fmt"

	"github.com/teampulse/teampulse/internal/parquet"
)

// ExecuteRunExport performs the actual export of run data to Parquet files.
func ExecuteRunExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the run store
	store := Manager.GetRunStore()

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get run status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no run data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total analysis runs: %d\n", status.TotalRuns)
	fmt.Printf("Total node records: %d\n", status.TotalNodeRecords)

	// Retrieve all analysis runs
	runs, err := store.GetRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve analysis runs: %w", err)
	}

	// Retrieve all node metrics
	nodeMetrics, err := store.GetNodeMetrics()
	if err != nil {
		return fmt.Errorf("failed to retrieve node metrics: %w", err)
	}

	// Convert to Parquet format
	parquetRuns := parquet.ConvertAnalysisRunRecords(runs)
	parquetNodeMetrics := parquet.ConvertNodeMetricsRecords(nodeMetrics)

	// Write analysis runs to Parquet
	runsFile := outputFile + ".analysis_runs.parquet"
	if err := parquet.WriteAnalysisRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write analysis runs: %w", err)
	}
	fmt.Printf("Exported %d analysis runs to: %s\n", len(parquetRuns), runsFile)

	// Write node metrics to Parquet
	nodeMetricsFile := outputFile + ".node_metrics.parquet"
	if err := parquet.WriteNodeMetricsParquet(parquetNodeMetrics, nodeMetricsFile); err != nil {
		return fmt.Errorf("failed to write node metrics: %w", err)
	}
	fmt.Printf("Exported %d node metric records to: %s\n", len(parquetNodeMetrics), nodeMetricsFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
