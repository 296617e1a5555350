package archive

import (
	"errors"
	"fmt"

	"github.com/entolab/bugtally/internal/parquet"
)

// ExecuteArchiveExport performs the actual export of archived runs to Parquet files.
func ExecuteArchiveExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the run store
	store := Manager.GetRunStore()
	if store == nil {
		return errors.New("run archive is not configured; set --archive-backend")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get archive status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no archived runs found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total runs: %d\n", status.TotalRuns)
	fmt.Printf("Total stat records: %d\n", status.TableSizes[runStatsTable])

	// Retrieve all runs
	runs, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve runs: %w", err)
	}

	// Retrieve all run stats
	runStats, err := store.GetAllRunStats()
	if err != nil {
		return fmt.Errorf("failed to retrieve run stats: %w", err)
	}

	// Convert to Parquet format
	parquetRuns := parquet.ConvertRunRecords(runs)
	parquetRunStats := parquet.ConvertRunStatRecords(runStats)

	// Write runs to Parquet
	runsFile := outputFile + ".runs.parquet"
	if err := parquet.WriteRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write runs: %w", err)
	}
	fmt.Printf("Exported %d runs to: %s\n", len(parquetRuns), runsFile)

	// Write run stats to Parquet
	runStatsFile := outputFile + ".run_stats.parquet"
	if err := parquet.WriteRunStatsParquet(parquetRunStats, runStatsFile); err != nil {
		return fmt.Errorf("failed to write run stats: %w", err)
	}
	fmt.Printf("Exported %d run stat records to: %s\n", len(parquetRunStats), runStatsFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
