package iocache

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/teampulse/teampulse/internal/contract"
	"github.com/teampulse/teampulse/schema"
)

// MockStoreManager is a mock implementation of StoreManager for testing.
type MockStoreManager struct {
	mock.Mock
}

var _ contract.StoreManager = &MockStoreManager{} // Compile-time check

// GetRunStore implements the StoreManager interface.
func (m *MockStoreManager) GetRunStore() contract.RunStore {
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
func (m *MockRunStore) BeginRun(startTime time.Time, configParams map[string]any) (int64, error) {
	args := m.Called(startTime, configParams)
	return args.Get(0).(int64), args.Error(1)
}

// EndRun implements the RunStore interface.
func (m *MockRunStore) EndRun(runID int64, endTime time.Time, numMembers, numInteractions int) error {
	args := m.Called(runID, endTime, numMembers, numInteractions)
	return args.Error(0)
}

// RecordNodeMetrics implements the RunStore interface.
func (m *MockRunStore) RecordNodeMetrics(runID int64, role schema.Role, metrics schema.NodeMetrics) error {
	args := m.Called(runID, role, metrics)
	return args.Error(0)
}

// GetStatus implements the RunStore interface.
func (m *MockRunStore) GetStatus() (schema.RunStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.RunStatus), args.Error(1)
}

// GetRuns implements the RunStore interface.
func (m *MockRunStore) GetRuns() ([]schema.AnalysisRunRecord, error) {
	args := m.Called()
	records, _ := args.Get(0).([]schema.AnalysisRunRecord)
	return records, args.Error(1)
}

// GetNodeMetrics implements the RunStore interface.
func (m *MockRunStore) GetNodeMetrics() ([]schema.NodeMetricsRecord, error) {
	args := m.Called()
	records, _ := args.Get(0).([]schema.NodeMetricsRecord)
	return records, args.Error(1)
}

// Clear implements the RunStore interface.
func (m *MockRunStore) Clear() error {
	args := m.Called()
	return args.Error(0)
}

// Close implements the RunStore interface.
func (m *MockRunStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
