package cmd

import (
	"github.com/spf13/cobra"
	"github.com/teampulse/teampulse/core"
	"github.com/teampulse/teampulse/internal/contract"
)

// edgesCmd performs edge-level collaboration analysis.
var edgesCmd = &cobra.Command{
	Use:   "edges [data-dir]",
	Short: "Show directed communication channels ranked by weight.",
	Long: `List every directed communication channel in the collaboration graph.

Each edge aggregates all interactions from one member to another:
- Total weight (sum of per-interaction weights)
- Interaction count
- Weight normalized against the strongest edge in the graph

Use this to see which pairs carry the team's communication and which
channels barely exist.

Examples:
  # Strongest channels first
  teampulse edges

  # Full edge list as JSON
  teampulse edges --limit 1000 --output json

  # Export for spreadsheet review
  teampulse edges --output csv --output-file edges.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTeamPulseEdges(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run edges analysis", err)
		}
	},
}
