package schema

import "time"

// RunRecord represents a row from the bugtally_runs table.
type RunRecord struct {
	RunID         int64
	Command       string
	Source        string
	StartTime     time.Time
	EndTime       *time.Time
	RunDurationMs *int32
	ResultRows    int32
	ConfigParams  *string
}

// RunStatRecord represents a row from the bugtally_run_stats table.
type RunStatRecord struct {
	RunID     int64
	StatKey   string
	StatValue int64
}

// ArchiveStatus represents the status of the run archive store.
type ArchiveStatus struct {
	Backend         string           `json:"backend"`
	Connected       bool             `json:"connected"`
	TotalRuns       int              `json:"total_runs"`
	LastRunID       int64            `json:"last_run_id"`
	LastRunCommand  string           `json:"last_run_command"`
	LastRunTime     time.Time        `json:"last_run_time"`
	OldestRunTime   time.Time        `json:"oldest_run_time"`
	TotalResultRows int              `json:"total_result_rows"`
	TableSizes      map[string]int64 `json:"table_sizes"`
}
