package core

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/teampulse/teampulse/internal/contract"
	"github.com/teampulse/teampulse/internal/iocache"
	"github.com/teampulse/teampulse/internal/loader"
	"github.com/teampulse/teampulse/schema"
)

// testConfig returns a config pointed at a temp data directory with small
// generator parameters so tests stay fast.
func testConfig(t *testing.T) *contract.Config {
	t.Helper()
	return &contract.Config{
		DataDir:     t.TempDir(),
		ResultLimit: contract.DefaultResultLimit,
		Precision:   contract.DefaultPrecision,
		Seed:        99,
		Days:        5,
		Target:      400,
		MinMembers:  5,
		MaxMembers:  6,
		PeakHour:    15,
	}
}

// TestGenerateThenAnalyze runs the full pipeline: generate a dataset, load
// it back, and compute member rankings.
func TestGenerateThenAnalyze(t *testing.T) {
	cfg := testConfig(t)

	ds, err := GenerateDataset(cfg)
	require.NoError(t, err)
	require.NotEmpty(t, ds.Members)
	require.GreaterOrEqual(t, len(ds.Interactions), cfg.Target)

	// The CSV files must round-trip through the loader.
	loaded, err := loader.LoadDataset(cfg.DataDir)
	require.NoError(t, err)
	assert.Len(t, loaded.Members, len(ds.Members))
	assert.Len(t, loaded.Interactions, len(ds.Interactions))

	ranked, err := GetNodeMetricsResults(cfg, nil)
	require.NoError(t, err)
	require.Len(t, ranked, len(ds.Members))

	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].InfluenceScore, ranked[i].InfluenceScore)
	}

	team, err := GetTeamMetricsResults(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, len(ds.Members), team.NumNodes)
	assert.Greater(t, team.Density, 0.0)

	patterns, err := GetPatternResults(cfg, nil)
	require.NoError(t, err)
	assert.NotNil(t, patterns.Subgroups)
}

// TestRunAnalysisCoreTracking verifies every analysis records a run when a
// store is configured, and that store failures never fail the analysis.
func TestRunAnalysisCoreTracking(t *testing.T) {
	cfg := testConfig(t)
	_, err := GenerateDataset(cfg)
	require.NoError(t, err)

	t.Run("successful tracking", func(t *testing.T) {
		store := &iocache.MockRunStore{}
		store.On("BeginRun", mock.Anything, mock.Anything).Return(int64(1), nil)
		store.On("RecordNodeMetrics", int64(1), mock.Anything, mock.Anything).Return(nil)
		store.On("EndRun", int64(1), mock.Anything, mock.Anything, mock.Anything).Return(nil)

		mgr := &iocache.MockStoreManager{}
		mgr.On("GetRunStore").Return(store)

		_, err := GetTeamMetricsResults(cfg, mgr)
		require.NoError(t, err)
		store.AssertExpectations(t)
		mgr.AssertExpectations(t)
	})

	t.Run("store failure is non-fatal", func(t *testing.T) {
		store := &iocache.MockRunStore{}
		store.On("BeginRun", mock.Anything, mock.Anything).Return(int64(0), assert.AnError)

		mgr := &iocache.MockStoreManager{}
		mgr.On("GetRunStore").Return(store)

		_, err := GetTeamMetricsResults(cfg, mgr)
		require.NoError(t, err)
		store.AssertNotCalled(t, "EndRun", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("nil store disables tracking", func(t *testing.T) {
		mgr := &iocache.MockStoreManager{}
		mgr.On("GetRunStore").Return(nil)

		_, err := GetTeamMetricsResults(cfg, mgr)
		require.NoError(t, err)
	})
}

// TestRunAnalysisCoreMissingData verifies an unreadable data directory is a
// hard error.
func TestRunAnalysisCoreMissingData(t *testing.T) {
	cfg := testConfig(t)
	cfg.DataDir = filepath.Join(cfg.DataDir, "does-not-exist")

	_, err := GetNodeMetricsResults(cfg, nil)
	assert.Error(t, err)
}

// TestRankNodes tests influence ranking order and tie-breaking.
func TestRankNodes(t *testing.T) {
	nodes := []schema.NodeMetrics{
		{MemberID: "M003", InfluenceScore: 0.2},
		{MemberID: "M001", InfluenceScore: 0.9},
		{MemberID: "M004", InfluenceScore: 0.2},
		{MemberID: "M002", InfluenceScore: 0.5},
	}
	ranked := rankNodes(nodes)

	assert.Equal(t, "M001", ranked[0].MemberID)
	assert.Equal(t, "M002", ranked[1].MemberID)
	// Equal scores fall back to member id order.
	assert.Equal(t, "M003", ranked[2].MemberID)
	assert.Equal(t, "M004", ranked[3].MemberID)

	// The input slice is left untouched.
	assert.Equal(t, "M003", nodes[0].MemberID)
}

// TestRankEdges tests weight ranking order.
func TestRankEdges(t *testing.T) {
	edges := []schema.EdgeMetrics{
		{Source: "A", Target: "B", Weight: 1},
		{Source: "C", Target: "A", Weight: 5},
		{Source: "B", Target: "A", Weight: 5},
	}
	ranked := rankEdges(edges)

	assert.Equal(t, 5.0, ranked[0].Weight)
	// Ties order by source then target.
	assert.Equal(t, "B", ranked[0].Source)
	assert.Equal(t, "C", ranked[1].Source)
	assert.Equal(t, "A", ranked[2].Source)
}
