package cmd

import (
	"github.com/spf13/cobra"
	"github.com/teampulse/teampulse/core"
	"github.com/teampulse/teampulse/internal/contract"
)

// generateCmd produces a synthetic interaction dataset.
var generateCmd = &cobra.Command{
	Use:   "generate [data-dir]",
	Short: "Generate a synthetic team interaction dataset.",
	Long: `Simulate a small team exchanging messages, replies, reviews and tasks,
and write the resulting dataset as CSV files.

The simulation models the texture of real collaboration data:
- Roles (leader, active, passive, isolated) that shape who talks to whom
- Pairwise affinities, including a clique with elevated internal traffic
- A daily activity curve that peaks at a configurable hour
- Burst days and quiet days
- A task table kept consistent with task_assign/task_complete events

The same seed always produces the same dataset, so generated data can be
used in tests and reproducible benchmarks.

Examples:
  # Generate the default dataset under data/raw
  teampulse generate

  # A bigger, longer simulation
  teampulse generate --days 90 --target 20000

  # A larger team with late-evening activity
  teampulse generate --min-members 8 --max-members 12 --peak-hour 20

  # Reproduce a specific dataset elsewhere
  teampulse generate ./fixtures --seed 42`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTeamPulseGenerate(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot generate dataset", err)
		}
	},
}
