package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teampulse/teampulse/schema"
)

// TestDetectPatterns tests member and pair classification on a team with a
// clear hub, a silent member, and a lopsided pair.
func TestDetectPatterns(t *testing.T) {
	members := []schema.Member{
		{MemberID: "M001", Role: schema.RoleLeader},
		{MemberID: "M002", Role: schema.RoleActive},
		{MemberID: "M003", Role: schema.RoleRegular},
		{MemberID: "M004", Role: schema.RoleIsolated},
	}
	log := []schema.Interaction{
		// M001 dominates the conversation.
		directed("M001", "M002", 4),
		directed("M001", "M002", 4),
		directed("M001", "M003", 4),
		directed("M001", "M003", 4),
		directed("M002", "M001", 4),
		directed("M002", "M001", 4),
		// Two barely-used channels.
		directed("M003", "M001", 1),
		directed("M003", "M002", 0.2),
	}
	g := BuildGraph(members, log)
	metrics := ComputeMetrics(members, log, g)
	patterns := DetectPatterns(&metrics, members, g)

	t.Run("isolated member flagged", func(t *testing.T) {
		assert.Equal(t, []string{"M004"}, patterns.IsolatedMembers)
	})

	t.Run("isolated member is also passive", func(t *testing.T) {
		assert.Contains(t, patterns.PassiveMembers, "M004")
	})

	t.Run("dominant member flagged", func(t *testing.T) {
		assert.Contains(t, patterns.DominantMembers, "M001")
		assert.NotContains(t, patterns.DominantMembers, "M003")
	})

	t.Run("strong and weak pairs", func(t *testing.T) {
		strongSources := make([]string, 0, len(patterns.StrongPairs))
		for _, p := range patterns.StrongPairs {
			strongSources = append(strongSources, p.Source+"->"+p.Target)
		}
		assert.Contains(t, strongSources, "M001->M002")
		assert.Contains(t, strongSources, "M001->M003")
		assert.Contains(t, strongSources, "M002->M001")

		require.Len(t, patterns.WeakPairs, 2)
		for _, p := range patterns.WeakPairs {
			assert.Equal(t, "M003", p.Source)
		}
	})

	t.Run("central leader has no mismatch", func(t *testing.T) {
		assert.Empty(t, patterns.RoleMismatch)
	})
}

// TestDetectPatternsLeaderMismatch tests the leader heuristics when the
// leader is on the edge of the network.
func TestDetectPatternsLeaderMismatch(t *testing.T) {
	members := []schema.Member{
		{MemberID: "M001", Role: schema.RoleLeader},
		{MemberID: "M002", Role: schema.RoleActive},
		{MemberID: "M003", Role: schema.RoleActive},
		{MemberID: "M004", Role: schema.RoleRegular},
	}
	// Everyone talks except the leader.
	log := []schema.Interaction{
		directed("M002", "M003", 2),
		directed("M003", "M002", 2),
		directed("M002", "M004", 2),
		directed("M004", "M002", 2),
		directed("M003", "M004", 2),
		directed("M004", "M003", 2),
	}
	g := BuildGraph(members, log)
	metrics := ComputeMetrics(members, log, g)
	patterns := DetectPatterns(&metrics, members, g)

	assert.Contains(t, patterns.RoleMismatch, "Leader has low degree centrality (not well-connected).")
	assert.Contains(t, patterns.RoleMismatch, "Leader is unusually inactive.")
	assert.Contains(t, patterns.RoleMismatch, "Leader receives unusually low communication.")
}

// TestDetectPatternsNoLeader verifies teams without a leader skip the
// mismatch check entirely.
func TestDetectPatternsNoLeader(t *testing.T) {
	members := testMembers("A", "B")
	log := []schema.Interaction{directed("A", "B", 1)}
	g := BuildGraph(members, log)
	metrics := ComputeMetrics(members, log, g)
	patterns := DetectPatterns(&metrics, members, g)

	assert.Empty(t, patterns.RoleMismatch)
	assert.NotNil(t, patterns.RoleMismatch)
}

// TestDetectPatternsEmpty verifies the degenerate all-quiet team produces
// empty, non-nil categories.
func TestDetectPatternsEmpty(t *testing.T) {
	members := testMembers("A", "B", "C")
	g := BuildGraph(members, nil)
	metrics := ComputeMetrics(members, nil, g)
	patterns := DetectPatterns(&metrics, members, g)

	assert.ElementsMatch(t, []string{"A", "B", "C"}, patterns.IsolatedMembers)
	assert.Empty(t, patterns.StrongPairs)
	assert.Empty(t, patterns.WeakPairs)
	assert.Empty(t, patterns.Subgroups)
	assert.NotNil(t, patterns.Subgroups)
	assert.Empty(t, patterns.DominantMembers)
}
