// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"time"

	"github.com/entolab/bugtally/schema"
)

// RunStore defines the interface for tracking command runs and their statistics.
// This allows mocking the store for testing.
type RunStore interface {
	// BeginRun creates a new run record and returns its unique ID
	BeginRun(command, source string, startTime time.Time, configParams map[string]any) (int64, error)

	// EndRun updates the run record with completion data
	EndRun(runID int64, endTime time.Time, resultRows int) error

	// RecordStat stores one aggregated key and its value for a run
	RecordStat(runID int64, key string, value int64) error

	// GetStatus returns status information about the archive store
	GetStatus() (schema.ArchiveStatus, error)

	// GetAllRuns retrieves all run records from the store
	GetAllRuns() ([]schema.RunRecord, error)

	// GetAllRunStats retrieves all stat rows from the store
	GetAllRunStats() ([]schema.RunStatRecord, error)

	// Close closes the underlying connection
	Close() error
}

// ArchiveManager defines the interface for managing the run archive.
// This allows the archive layer to be mocked for testing.
type ArchiveManager interface {
	GetRunStore() RunStore
}
