package cmd

import (
	"github.com/spf13/cobra"
	"github.com/teampulse/teampulse/core"
	"github.com/teampulse/teampulse/internal/contract"
)

// patternsCmd detects notable collaboration patterns.
var patternsCmd = &cobra.Command{
	Use:   "patterns [data-dir]",
	Short: "Detect notable collaboration patterns and anomalies.",
	Long: `Run heuristics over the collaboration graph to flag situations worth
a closer look.

Detects:
- Isolated members with almost no connections
- Passive members who receive far more than they send
- Dominant members responsible for an outsized share of traffic
- Unusually strong pairs and one-sided weak pairs
- Subgroups (cliques) via community detection
- Role mismatches, e.g. a leader who is not central to communication

Each finding comes with the evidence behind it, so reports can be read
without re-running the analysis.

Examples:
  # Pattern report for the default dataset
  teampulse patterns

  # Machine-readable findings
  teampulse patterns --output json --output-file findings.json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTeamPulsePatterns(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run patterns analysis", err)
		}
	},
}
