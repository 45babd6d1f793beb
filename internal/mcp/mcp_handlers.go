package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/teampulse/teampulse/core"
	"github.com/teampulse/teampulse/internal/contract"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
}

func (h *toolHandler) handleGetNodeMetrics(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if d := request.GetString("data_dir", ""); d != "" {
		cfg.DataDir = d
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	ranked, err := core.GetNodeMetricsResults(cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}
	if cfg.ResultLimit > 0 && cfg.ResultLimit < len(ranked) {
		ranked = ranked[:cfg.ResultLimit]
	}

	jsonData, _ := json.MarshalIndent(ranked, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetTeamMetrics(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if d := request.GetString("data_dir", ""); d != "" {
		cfg.DataDir = d
	}

	team, err := core.GetTeamMetricsResults(cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(team, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleDetectPatterns(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if d := request.GetString("data_dir", ""); d != "" {
		cfg.DataDir = d
	}

	patterns, err := core.GetPatternResults(cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("pattern detection failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(patterns, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

// generateSummary is the JSON payload returned by the generate_dataset tool.
type generateSummary struct {
	DataDir         string `json:"data_dir"`
	Seed            int64  `json:"seed"`
	NumMembers      int    `json:"num_members"`
	NumInteractions int    `json:"num_interactions"`
	NumTasks        int    `json:"num_tasks"`
}

func (h *toolHandler) handleGenerateDataset(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if d := request.GetString("data_dir", ""); d != "" {
		cfg.DataDir = d
	}
	if s := request.GetInt("seed", 0); s > 0 {
		cfg.Seed = int64(s)
	}
	if d := request.GetInt("days", 0); d > 0 {
		cfg.Days = d
	}
	if t := request.GetInt("target", 0); t > 0 {
		cfg.Target = t
	}

	ds, err := core.GenerateDataset(cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("generation failed: %v", err)), nil
	}

	summary := generateSummary{
		DataDir:         cfg.DataDir,
		Seed:            cfg.Seed,
		NumMembers:      len(ds.Members),
		NumInteractions: len(ds.Interactions),
		NumTasks:        len(ds.Tasks),
	}
	jsonData, _ := json.MarshalIndent(summary, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
