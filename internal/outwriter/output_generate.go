package outwriter

import (
	"fmt"
	"time"

	"github.com/teampulse/teampulse/schema"
)

// WriteGenerateResults prints a short summary after writing a synthetic dataset.
func WriteGenerateResults(ds *schema.Dataset, dataDir string, seed int64, duration time.Duration) error {
	completed := 0
	for _, t := range ds.Tasks {
		if t.Status == schema.TaskCompleted {
			completed++
		}
	}

	fmt.Printf("Generated %d interactions, %d tasks (%d completed), %d members.\n",
		len(ds.Interactions), len(ds.Tasks), completed, len(ds.Members))
	if leader, ok := schema.FindLeader(ds.Members); ok {
		fmt.Printf("Leader: %s (%s)\n", leader.MemberID, leader.Name)
	}
	fmt.Printf("Wrote dataset to %s (seed %d) in %v\n", dataDir, seed, duration)
	return nil
}
