// Package parquet provides data structures and functions for exporting
// archived bugtally runs to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/entolab/bugtally/schema"
	"github.com/parquet-go/parquet-go"
)

// Run represents a single command run with metadata.
// This struct maps to the bugtally_runs database table.
type Run struct {
	// RunID is the unique identifier for this run
	RunID int64 `parquet:"run_id,snappy"`

	// Command is the subcommand that produced this run (import, alter, count, analyze)
	Command string `parquet:"command,snappy"`

	// Source is the primary input of the run, a record directory or a table file
	Source string `parquet:"source,snappy"`

	// StartTime is when the run began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the run completed (nullable, stored as TIMESTAMP with nanosecond precision)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the run in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// ResultRows is the number of rows the run produced
	ResultRows int32 `parquet:"result_rows,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// RunStat represents one aggregated key and value from a run.
// This struct maps to the bugtally_run_stats database table.
type RunStat struct {
	// RunID references the parent run
	RunID int64 `parquet:"run_id,snappy"`

	// StatKey is the aggregation key, a region for count or a bug name for analyze
	StatKey string `parquet:"stat_key,snappy"`

	// StatValue is the aggregated value for the key
	StatValue int64 `parquet:"stat_value,snappy"`
}

// WriteRunsParquet writes a slice of Run structs to a Parquet file.
func WriteRunsParquet(data []Run, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the Run struct tags
	writer := parquet.NewGenericWriter[Run](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	// The Write method accepts a variadic slice
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteRunStatsParquet writes a slice of RunStat structs to a Parquet file.
func WriteRunStatsParquet(data []RunStat, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the RunStat struct tags
	writer := parquet.NewGenericWriter[RunStat](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	// The Write method accepts a variadic slice
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// MockFetchRuns generates sample Run data for demonstration.
func MockFetchRuns() []Run {
	now := time.Now()
	startTime1 := now.Add(-2 * time.Hour)
	endTime1 := startTime1.Add(420 * time.Millisecond)
	durationMs1 := int32(endTime1.Sub(startTime1).Milliseconds())
	configParams1 := `{"delimiter":";","ext":".dat","output":"csv","precision":1}`

	startTime2 := now.Add(-24 * time.Hour)
	endTime2 := startTime2.Add(980 * time.Millisecond)
	durationMs2 := int32(endTime2.Sub(startTime2).Milliseconds())
	configParams2 := `{"delimiter":";","ext":".dat","output":"table","precision":2}`

	startTime3 := now.Add(-10 * time.Minute)
	// Note: endTime3, durationMs3, configParams3 are nil to demonstrate nullable fields

	return []Run{
		{
			RunID:         1,
			Command:       "import",
			Source:        "./observations",
			StartTime:     startTime1,
			EndTime:       &endTime1,
			RunDurationMs: &durationMs1,
			ResultRows:    12,
			ConfigParams:  &configParams1,
		},
		{
			RunID:         2,
			Command:       "count",
			Source:        "bugs.csv",
			StartTime:     startTime2,
			EndTime:       &endTime2,
			RunDurationMs: &durationMs2,
			ResultRows:    5,
			ConfigParams:  &configParams2,
		},
		{
			RunID:         3,
			Command:       "analyze",
			Source:        "bugs.csv",
			StartTime:     startTime3,
			EndTime:       nil, // Still running - nullable field
			RunDurationMs: nil, // Not yet calculated - nullable field
			ResultRows:    0,
			ConfigParams:  nil, // No config stored - nullable field
		},
	}
}

// MockFetchRunStats generates sample RunStat data for demonstration.
func MockFetchRunStats() []RunStat {
	return []RunStat{
		{RunID: 2, StatKey: "France", StatValue: 7},
		{RunID: 2, StatKey: "Italy", StatValue: 3},
		{RunID: 2, StatKey: "Spain", StatValue: 11},
	}
}

// ConvertRunRecords converts schema.RunRecord to Run for Parquet export.
func ConvertRunRecords(records []schema.RunRecord) []Run {
	result := make([]Run, len(records))
	for i, record := range records {
		result[i] = Run{
			RunID:         record.RunID,
			Command:       record.Command,
			Source:        record.Source,
			StartTime:     record.StartTime,
			EndTime:       record.EndTime,
			RunDurationMs: record.RunDurationMs,
			ResultRows:    record.ResultRows,
			ConfigParams:  record.ConfigParams,
		}
	}
	return result
}

// ConvertRunStatRecords converts schema.RunStatRecord to RunStat for Parquet export.
func ConvertRunStatRecords(records []schema.RunStatRecord) []RunStat {
	result := make([]RunStat, len(records))
	for i, record := range records {
		result[i] = RunStat{
			RunID:     record.RunID,
			StatKey:   record.StatKey,
			StatValue: record.StatValue,
		}
	}
	return result
}
