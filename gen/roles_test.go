package gen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/teampulse/teampulse/schema"
)

// TestBuildTeamRoles tests role assignment across many seeds.
func TestBuildTeamRoles(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	sawIsolated := false
	sawNoIsolated := false

	for seed := int64(0); seed < 50; seed++ {
		cfg := DefaultConfig()
		cfg.Seed = seed
		g := New(cfg)
		members := g.buildTeam(start)

		counts := make(map[schema.Role]int)
		for _, m := range members {
			counts[m.Role]++
			assert.NotEmpty(t, m.Name)
			assert.False(t, m.JoinedAt.After(start), "members join before the simulation window")
		}

		assert.Equal(t, 1, counts[schema.RoleLeader], "seed %d", seed)
		assert.GreaterOrEqual(t, counts[schema.RoleActive], 1, "seed %d", seed)
		assert.LessOrEqual(t, counts[schema.RoleActive], 2, "seed %d", seed)
		assert.LessOrEqual(t, counts[schema.RoleIsolated], 1, "seed %d", seed)

		if counts[schema.RoleIsolated] > 0 {
			sawIsolated = true
		} else {
			sawNoIsolated = true
		}
	}

	// Isolated assignment is a coin flip, so both outcomes should show up.
	assert.True(t, sawIsolated)
	assert.True(t, sawNoIsolated)
}

// TestBuildAffinity tests the affinity structure layered on the base table.
func TestBuildAffinity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 3
	g := New(cfg)

	ids := []string{"M001", "M002", "M003", "M004", "M005"}
	roles := map[string]schema.Role{
		"M001": schema.RoleLeader,
		"M002": schema.RoleActive,
		"M003": schema.RoleRegular,
		"M004": schema.RoleRegular,
		"M005": schema.RoleIsolated,
	}
	table := g.buildAffinity(ids, roles)

	t.Run("missing pair reads as neutral", func(t *testing.T) {
		assert.Equal(t, 1.0, table.get("M001", "M999"))
	})

	t.Run("leader sends with elevated affinity", func(t *testing.T) {
		// The clique bonus can stack on top, so only the floor is fixed.
		assert.GreaterOrEqual(t, table.get("M001", "M003"), 1.6)
	})

	t.Run("isolated members are rarely targeted", func(t *testing.T) {
		for _, src := range ids {
			if src == "M005" {
				continue
			}
			assert.Less(t, table.get(src, "M005"), table.get("M005", src),
				"traffic toward the isolated member should be dampened from %s", src)
		}
	})
}

// TestSample tests the partial shuffle helper.
func TestSample(t *testing.T) {
	g := New(DefaultConfig())

	t.Run("k capped at n", func(t *testing.T) {
		picks := g.sample(3, 10)
		assert.Len(t, picks, 3)
	})

	t.Run("indices are distinct and in range", func(t *testing.T) {
		picks := g.sample(20, 10)
		seen := make(map[int]bool)
		for _, p := range picks {
			assert.GreaterOrEqual(t, p, 0)
			assert.Less(t, p, 20)
			assert.False(t, seen[p])
			seen[p] = true
		}
	})
}

// TestWeightedIndex tests proportional selection.
func TestWeightedIndex(t *testing.T) {
	g := New(DefaultConfig())

	t.Run("zero-weight entries never picked", func(t *testing.T) {
		weights := []float64{0, 1, 0}
		for range 100 {
			assert.Equal(t, 1, g.weightedIndex(weights))
		}
	})

	t.Run("heavier entries dominate", func(t *testing.T) {
		weights := []float64{1, 99}
		hits := 0
		for range 1000 {
			if g.weightedIndex(weights) == 1 {
				hits++
			}
		}
		assert.Greater(t, hits, 900)
	})
}
