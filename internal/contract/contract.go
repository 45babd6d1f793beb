// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"time"

	"github.com/teampulse/teampulse/schema"
)

// StoreManager defines the interface for managing persistent stores.
// This allows the storage layer to be mocked for testing.
type StoreManager interface {
	GetRunStore() RunStore
}

// RunStore defines the interface for tracking analysis runs and storing metrics.
type RunStore interface {
	// BeginRun creates a new analysis run and returns its unique ID
	BeginRun(startTime time.Time, configParams map[string]any) (int64, error)

	// EndRun updates the analysis run with completion data
	EndRun(runID int64, endTime time.Time, numMembers, numInteractions int) error

	// RecordNodeMetrics stores computed per-member metrics for a run
	RecordNodeMetrics(runID int64, role schema.Role, metrics schema.NodeMetrics) error

	// GetStatus returns status information about the run store
	GetStatus() (schema.RunStatus, error)

	// GetRuns returns all recorded analysis runs in start order
	GetRuns() ([]schema.AnalysisRunRecord, error)

	// GetNodeMetrics returns all recorded node metrics in run order
	GetNodeMetrics() ([]schema.NodeMetricsRecord, error)

	// Clear removes all recorded runs and metrics
	Clear() error

	// Close closes the underlying connection
	Close() error
}
