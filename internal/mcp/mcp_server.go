// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/teampulse/teampulse/internal/contract"
)

// NewMCPServer initializes and configures the TeamPulse MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"TeamPulse Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: get_node_metrics ---
	s.AddTool(mcp.NewTool("get_node_metrics",
		mcp.WithDescription("Analyze team interaction logs and rank members by influence score."),
		mcp.WithString("data_dir", mcp.Description("Directory holding the interaction dataset (defaults to the configured data directory).")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
	), h.handleGetNodeMetrics)

	// --- 2. Tool: get_team_metrics ---
	s.AddTool(mcp.NewTool("get_team_metrics",
		mcp.WithDescription("Compute team-level collaboration health metrics (density, reciprocity, clustering)."),
		mcp.WithString("data_dir", mcp.Description("Directory holding the interaction dataset.")),
	), h.handleGetTeamMetrics)

	// --- 3. Tool: detect_patterns ---
	s.AddTool(mcp.NewTool("detect_patterns",
		mcp.WithDescription("Detect collaboration patterns: isolated or passive members, dominant members, strong and weak pairs, subgroups, and role mismatches."),
		mcp.WithString("data_dir", mcp.Description("Directory holding the interaction dataset.")),
	), h.handleDetectPatterns)

	// --- 4. Tool: generate_dataset ---
	s.AddTool(mcp.NewTool("generate_dataset",
		mcp.WithDescription("Generate a synthetic team interaction dataset as CSV files. Reproducible from the seed."),
		mcp.WithString("data_dir", mcp.Description("Directory to write the dataset into.")),
		mcp.WithNumber("seed", mcp.Description("Random seed for reproducible output.")),
		mcp.WithNumber("days", mcp.Description("Number of days to simulate.")),
		mcp.WithNumber("target", mcp.Description("Approximate number of interactions to produce.")),
	), h.handleGenerateDataset)

	return s
}

// StartMCPServer starts the TeamPulse MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
