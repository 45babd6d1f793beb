// Package core contains graph construction, metrics, pattern detection, and
// the orchestration entry points behind each CLI command.
package core

import (
	"context"
	"time"

	"github.com/teampulse/teampulse/gen"
	"github.com/teampulse/teampulse/internal/contract"
	"github.com/teampulse/teampulse/internal/loader"
	"github.com/teampulse/teampulse/internal/outwriter"
	"github.com/teampulse/teampulse/schema"
)

// ExecutorFunc defines the function signature for executing different analysis commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error

// analysisOutput bundles everything one analysis pass produces.
type analysisOutput struct {
	dataset *schema.Dataset
	graph   *Graph
	metrics schema.MetricsResult
}

// runAnalysisCore performs the common load, build, and compute steps, and
// records the run in the configured store.
func runAnalysisCore(cfg *contract.Config, mgr contract.StoreManager) (*analysisOutput, error) {
	// --- 0. Begin Run Tracking (if configured) ---
	var runID int64
	var runStore contract.RunStore
	if mgr != nil {
		runStore = mgr.GetRunStore()
	}
	if runStore != nil {
		startTime := time.Now()
		configParams := map[string]any{
			"data_dir":     cfg.DataDir,
			"result_limit": cfg.ResultLimit,
			"precision":    cfg.Precision,
			"output":       string(cfg.Output),
		}
		var err error
		runID, err = runStore.BeginRun(startTime, configParams)
		if err != nil {
			contract.LogWarn("Run tracking initialization failed", err)
		}
	}

	// --- 1. Load and clean the dataset ---
	ds, err := loader.LoadDataset(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	// --- 2. Build the directed graph ---
	g := BuildGraph(ds.Members, ds.Interactions)

	// --- 3. Compute metrics ---
	metrics := ComputeMetrics(ds.Members, ds.Interactions, g)

	// --- 4. Finalize Run Tracking ---
	if runStore != nil && runID > 0 {
		roles := schema.RolesByID(ds.Members)
		for _, n := range metrics.Nodes {
			if err := runStore.RecordNodeMetrics(runID, roles[n.MemberID], n); err != nil {
				contract.LogWarn("Failed to record node metrics", err)
				break
			}
		}
		if err := runStore.EndRun(runID, time.Now(), len(ds.Members), len(ds.Interactions)); err != nil {
			contract.LogWarn("Failed to finalize run tracking", err)
		}
	}

	return &analysisOutput{dataset: ds, graph: g, metrics: metrics}, nil
}

// GenerateDataset runs the synthetic simulation and writes the resulting
// CSV files to the configured data directory.
func GenerateDataset(cfg *contract.Config) (*schema.Dataset, error) {
	gcfg := gen.DefaultConfig()
	gcfg.Seed = cfg.Seed
	gcfg.Days = cfg.Days
	gcfg.Target = cfg.Target
	gcfg.MinMembers = cfg.MinMembers
	gcfg.MaxMembers = cfg.MaxMembers
	gcfg.PeakHour = cfg.PeakHour

	ds, err := gen.New(gcfg).Generate()
	if err != nil {
		return nil, err
	}

	if err := loader.WriteDataset(cfg.DataDir, gen.DefaultTeamID, ds); err != nil {
		return nil, err
	}
	return ds, nil
}

// GetNodeMetricsResults returns members ranked by influence score.
// This is the data half of the 'nodes' command, exposed for MCP tools.
func GetNodeMetricsResults(cfg *contract.Config, mgr contract.StoreManager) ([]schema.NodeMetrics, error) {
	output, err := runAnalysisCore(cfg, mgr)
	if err != nil {
		return nil, err
	}
	return rankNodes(output.metrics.Nodes), nil
}

// GetTeamMetricsResults returns the team-level aggregates.
// This is the data half of the 'team' command, exposed for MCP tools.
func GetTeamMetricsResults(cfg *contract.Config, mgr contract.StoreManager) (schema.TeamMetrics, error) {
	output, err := runAnalysisCore(cfg, mgr)
	if err != nil {
		return schema.TeamMetrics{}, err
	}
	return output.metrics.Team, nil
}

// GetPatternResults returns the detected collaboration patterns.
// This is the data half of the 'patterns' command, exposed for MCP tools.
func GetPatternResults(cfg *contract.Config, mgr contract.StoreManager) (schema.Patterns, error) {
	output, err := runAnalysisCore(cfg, mgr)
	if err != nil {
		return schema.Patterns{}, err
	}
	return DetectPatterns(&output.metrics, output.dataset.Members, output.graph), nil
}

// ExecuteTeamPulseGenerate produces a synthetic dataset and writes it to the
// data directory. It serves as the main entry point for the 'generate' command.
func ExecuteTeamPulseGenerate(_ context.Context, cfg *contract.Config, _ contract.StoreManager) error {
	start := time.Now()
	ds, err := GenerateDataset(cfg)
	if err != nil {
		return err
	}
	ow := outwriter.NewOutWriter()
	return ow.WriteGenerateSummary(ds, cfg.DataDir, cfg.Seed, time.Since(start))
}

// ExecuteTeamPulseNodes runs the per-member analysis and prints results.
// It serves as the main entry point for the 'nodes' command.
func ExecuteTeamPulseNodes(_ context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	output, err := runAnalysisCore(cfg, mgr)
	if err != nil {
		return err
	}
	ranked := output.metrics
	ranked.Nodes = rankNodes(output.metrics.Nodes)
	duration := time.Since(start)
	ow := outwriter.NewOutWriter()
	return ow.WriteNodes(&ranked, schema.RolesByID(output.dataset.Members), cfg, duration)
}

// ExecuteTeamPulseEdges runs the edge-level analysis and prints results.
// It serves as the main entry point for the 'edges' command.
func ExecuteTeamPulseEdges(_ context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	output, err := runAnalysisCore(cfg, mgr)
	if err != nil {
		return err
	}
	ranked := output.metrics
	ranked.Edges = rankEdges(output.metrics.Edges)
	duration := time.Since(start)
	ow := outwriter.NewOutWriter()
	return ow.WriteEdges(&ranked, cfg, duration)
}

// ExecuteTeamPulseTeam runs the team-level analysis and prints results.
// It serves as the main entry point for the 'team' command.
func ExecuteTeamPulseTeam(_ context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	output, err := runAnalysisCore(cfg, mgr)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	ow := outwriter.NewOutWriter()
	return ow.WriteTeam(&output.metrics, cfg, duration)
}

// ExecuteTeamPulsePatterns runs pattern detection and prints results.
// It serves as the main entry point for the 'patterns' command.
func ExecuteTeamPulsePatterns(_ context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	output, err := runAnalysisCore(cfg, mgr)
	if err != nil {
		return err
	}
	patterns := DetectPatterns(&output.metrics, output.dataset.Members, output.graph)
	duration := time.Since(start)
	ow := outwriter.NewOutWriter()
	return ow.WritePatterns(&patterns, cfg, duration)
}
