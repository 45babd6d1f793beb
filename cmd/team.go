package cmd

import (
	"github.com/spf13/cobra"
	"github.com/teampulse/teampulse/core"
	"github.com/teampulse/teampulse/internal/contract"
)

// teamCmd performs team-level collaboration analysis.
var teamCmd = &cobra.Command{
	Use:   "team [data-dir]",
	Short: "Show team-level collaboration health metrics.",
	Long: `Summarize the collaboration graph as a handful of team-level numbers.

Reports:
- Density: how many of the possible communication channels exist
- Reciprocity: how often communication flows both ways
- Average clustering: how much members' contacts also talk to each other
- Node and edge counts

A dense, reciprocal, well-clustered graph usually means a healthy team;
low values point at silos and one-way broadcasting.

Examples:
  # Team summary for the default dataset
  teampulse team

  # Machine-readable summary
  teampulse team --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTeamPulseTeam(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run team analysis", err)
		}
	},
}
