package cmd

import (
	"github.com/spf13/cobra"
	"github.com/teampulse/teampulse/core"
	"github.com/teampulse/teampulse/internal/contract"
)

// nodesCmd performs member-level collaboration analysis.
var nodesCmd = &cobra.Command{
	Use:   "nodes [data-dir]",
	Short: "Show team members ranked by influence score.",
	Long: `Build the collaboration graph and rank individual members by influence.

Computes per-member network metrics, helping you:
- Identify who actually drives communication on the team
- Spot members on the shortest paths between everyone else
- Compare raw activity (messages sent) against structural position
- Find members whose centrality does not match their nominal role

Each member gets degree, closeness and betweenness centrality plus an
activity score, combined into a single influence score between 0 and 1.

Examples:
  # Rank members in the default dataset
  teampulse nodes

  # Top five members only
  teampulse nodes --limit 5

  # Export all member metrics to CSV for tracking
  teampulse nodes --output csv --output-file members.csv

  # Export to Parquet for analytics tools
  teampulse nodes --output parquet --output-file members.parquet`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTeamPulseNodes(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run nodes analysis", err)
		}
	},
}
