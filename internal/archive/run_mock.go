package archive

import (
	"time"

	"github.com/entolab/bugtally/internal/contract"
	"github.com/entolab/bugtally/schema"
	"github.com/stretchr/testify/mock"
)

// MockArchiveManager is a mock implementation of ArchiveManager for testing.
type MockArchiveManager struct {
	mock.Mock
}

var _ contract.ArchiveManager = &MockArchiveManager{} // Compile-time check

// GetRunStore implements the ArchiveManager interface.
func (m *MockArchiveManager) GetRunStore() contract.RunStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.RunStore)
	return store
}

// MockRunStore is a mock implementation of RunStore for testing.
type MockRunStore struct {
	mock.Mock
}

var _ contract.RunStore = &MockRunStore{} // Compile-time check

// BeginRun implements the RunStore interface.
func (m *MockRunStore) BeginRun(command, source string, startTime time.Time, configParams map[string]any) (int64, error) {
	args := m.Called(command, source, startTime, configParams)
	return args.Get(0).(int64), args.Error(1)
}

// EndRun implements the RunStore interface.
func (m *MockRunStore) EndRun(runID int64, endTime time.Time, resultRows int) error {
	args := m.Called(runID, endTime, resultRows)
	return args.Error(0)
}

// RecordStat implements the RunStore interface.
func (m *MockRunStore) RecordStat(runID int64, key string, value int64) error {
	args := m.Called(runID, key, value)
	return args.Error(0)
}

// GetStatus implements the RunStore interface.
func (m *MockRunStore) GetStatus() (schema.ArchiveStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.ArchiveStatus), args.Error(1)
}

// GetAllRuns implements the RunStore interface.
func (m *MockRunStore) GetAllRuns() ([]schema.RunRecord, error) {
	args := m.Called()
	runs, _ := args.Get(0).([]schema.RunRecord)
	return runs, args.Error(1)
}

// GetAllRunStats implements the RunStore interface.
func (m *MockRunStore) GetAllRunStats() ([]schema.RunStatRecord, error) {
	args := m.Called()
	stats, _ := args.Get(0).([]schema.RunStatRecord)
	return stats, args.Error(1)
}

// Close implements the RunStore interface.
func (m *MockRunStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
