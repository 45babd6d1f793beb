// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/teampulse/teampulse/internal/contract"
	"github.com/teampulse/teampulse/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteNodes prints per-member metrics using the configured output format.
func (ow *OutWriter) WriteNodes(result *schema.MetricsResult, roles map[string]schema.Role, cfg *contract.Config, duration time.Duration) error {
	return WriteNodeResults(result, roles, cfg, duration)
}

// WriteEdges prints aggregated edge metrics using the configured output format.
func (ow *OutWriter) WriteEdges(result *schema.MetricsResult, cfg *contract.Config, duration time.Duration) error {
	return WriteEdgeResults(result, cfg, duration)
}

// WriteTeam prints team-level metrics using the configured output format.
func (ow *OutWriter) WriteTeam(result *schema.MetricsResult, cfg *contract.Config, duration time.Duration) error {
	return WriteTeamResults(result, cfg, duration)
}

// WritePatterns prints detected patterns using the configured output format.
func (ow *OutWriter) WritePatterns(patterns *schema.Patterns, cfg *contract.Config, duration time.Duration) error {
	return WritePatternResults(patterns, cfg, duration)
}

// WriteGenerateSummary prints a summary of a dataset-generation run.
func (ow *OutWriter) WriteGenerateSummary(ds *schema.Dataset, dataDir string, seed int64, duration time.Duration) error {
	return WriteGenerateResults(ds, dataDir, seed, duration)
}
