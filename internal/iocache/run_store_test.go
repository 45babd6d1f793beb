package iocache

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teampulse/teampulse/schema"
)

// newTestStore opens a SQLite run store backed by a temp file.
func newTestStore(t *testing.T) *RunStoreImpl {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "runs.db")
	store, err := NewRunStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store.(*RunStoreImpl)
}

// sampleMetrics returns one node metrics row for store tests.
func sampleMetrics(id string) schema.NodeMetrics {
	return schema.NodeMetrics{
		MemberID:              id,
		TotalSent:             12,
		TotalReceived:         8,
		WeightedSent:          14.5,
		WeightedReceived:      9.25,
		DegreeCentrality:      0.75,
		ClosenessCentrality:   0.5,
		BetweennessCentrality: 0.1,
		ActivityScore:         12.2,
		InfluenceScore:        0.81,
	}
}

// TestRunStoreLifecycle tests the full begin/record/end cycle against a
// real SQLite database.
func TestRunStoreLifecycle(t *testing.T) {
	store := newTestStore(t)
	start := time.Now().Add(-time.Minute)

	runID, err := store.BeginRun(start, map[string]any{"data_dir": "data/raw", "result_limit": 25})
	require.NoError(t, err)
	require.Positive(t, runID)

	require.NoError(t, store.RecordNodeMetrics(runID, schema.RoleLeader, sampleMetrics("M001")))
	require.NoError(t, store.RecordNodeMetrics(runID, schema.RoleActive, sampleMetrics("M002")))
	require.NoError(t, store.EndRun(runID, time.Now(), 5, 7000))

	t.Run("status reflects the run", func(t *testing.T) {
		status, err := store.GetStatus()
		require.NoError(t, err)
		assert.True(t, status.Connected)
		assert.Equal(t, string(schema.SQLiteBackend), status.Backend)
		assert.Equal(t, 1, status.TotalRuns)
		assert.Equal(t, runID, status.LastRunID)
		assert.Equal(t, 2, status.TotalNodeRecords)
	})

	t.Run("run record round trips", func(t *testing.T) {
		runs, err := store.GetRuns()
		require.NoError(t, err)
		require.Len(t, runs, 1)
		run := runs[0]
		assert.Equal(t, runID, run.RunID)
		assert.Equal(t, int32(5), run.NumMembers)
		assert.Equal(t, int32(7000), run.NumInteractions)
		require.NotNil(t, run.EndTime)
		require.NotNil(t, run.RunDurationMs)
		assert.Positive(t, *run.RunDurationMs)
		require.NotNil(t, run.ConfigParams)
		assert.Contains(t, *run.ConfigParams, "data_dir")
	})

	t.Run("node metrics round trip", func(t *testing.T) {
		rows, err := store.GetNodeMetrics()
		require.NoError(t, err)
		require.Len(t, rows, 2)
		byID := make(map[string]schema.NodeMetricsRecord)
		for _, r := range rows {
			byID[r.MemberID] = r
		}
		leader := byID["M001"]
		assert.Equal(t, string(schema.RoleLeader), leader.Role)
		assert.Equal(t, int32(12), leader.TotalSent)
		assert.InDelta(t, 0.81, leader.InfluenceScore, 1e-9)
	})

	t.Run("clear removes everything", func(t *testing.T) {
		require.NoError(t, store.Clear())
		status, err := store.GetStatus()
		require.NoError(t, err)
		assert.Zero(t, status.TotalRuns)
		assert.Zero(t, status.TotalNodeRecords)
	})
}

// TestRunStoreNoneBackend verifies the disabled store accepts calls without
// touching a database.
func TestRunStoreNoneBackend(t *testing.T) {
	store, err := NewRunStore(schema.NoneBackend, "")
	require.NoError(t, err)

	runID, err := store.BeginRun(time.Now(), nil)
	assert.NoError(t, err)
	assert.Zero(t, runID)

	assert.NoError(t, store.RecordNodeMetrics(1, schema.RoleRegular, sampleMetrics("M001")))
	assert.NoError(t, store.EndRun(1, time.Now(), 0, 0))
	assert.NoError(t, store.Clear())
	assert.NoError(t, store.Close())

	status, err := store.GetStatus()
	assert.NoError(t, err)
	assert.False(t, status.Connected)
}

// TestInitStore tests the global store setup paths.
func TestInitStore(t *testing.T) {
	t.Run("sqlite setup is idempotent", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "global.db")
		initOnce = sync.Once{}  // Reset for test
		closeOnce = sync.Once{} // Reset for test

		require.NoError(t, InitStore(schema.SQLiteBackend, dbPath))
		require.NoError(t, InitStore(schema.SQLiteBackend, dbPath))
		assert.NotNil(t, Manager.GetRunStore())

		CloseStore()
		CloseStore()

		_, err := os.Stat(dbPath)
		assert.NoError(t, err, "database file should exist")
	})

	t.Run("empty backend disables tracking", func(t *testing.T) {
		initOnce = sync.Once{}  // Reset for test
		closeOnce = sync.Once{} // Reset for test

		require.NoError(t, InitStore("", ""))
		assert.Nil(t, Manager.GetRunStore())
		CloseStore()
	})
}

// TestClearRuns tests the backend-specific clearing behavior.
func TestClearRuns(t *testing.T) {
	t.Run("sqlite deletes the database file", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "clear.db")
		store, err := NewRunStore(schema.SQLiteBackend, dbPath)
		require.NoError(t, err)
		require.NoError(t, store.Close())

		require.NoError(t, ClearRuns(schema.SQLiteBackend, dbPath, nil))
		_, err = os.Stat(dbPath)
		assert.True(t, os.IsNotExist(err))

		// Clearing again is fine: the file is already gone.
		assert.NoError(t, ClearRuns(schema.SQLiteBackend, dbPath, nil))
	})

	t.Run("none backend is a no-op", func(t *testing.T) {
		assert.NoError(t, ClearRuns(schema.NoneBackend, "", nil))
	})

	t.Run("server backends need an open store", func(t *testing.T) {
		assert.Error(t, ClearRuns(schema.MySQLBackend, "", nil))
	})
}
