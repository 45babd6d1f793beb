package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/teampulse/teampulse/schema"
)

// testMembers builds a plain member list from IDs.
func testMembers(ids ...string) []schema.Member {
	members := make([]schema.Member, len(ids))
	for i, id := range ids {
		members[i] = schema.Member{MemberID: id, Name: id, Role: schema.RoleRegular}
	}
	return members
}

// directed builds a directed interaction with a fixed timestamp.
func directed(source, target string, weight float64) schema.Interaction {
	return schema.Interaction{
		Timestamp: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
		Source:    source,
		Target:    &target,
		Type:      schema.TypeMessage,
		Platform:  "slack",
		Weight:    weight,
	}
}

// broadcast builds a channel-wide interaction with no single recipient.
func broadcast(source string, weight float64) schema.Interaction {
	return schema.Interaction{
		Timestamp: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
		Source:    source,
		Type:      schema.TypeMessage,
		Platform:  "slack",
		Weight:    weight,
	}
}

// TestBuildGraph tests edge aggregation from an interaction log.
func TestBuildGraph(t *testing.T) {
	members := testMembers("A", "B", "C")
	log := []schema.Interaction{
		directed("A", "B", 1),
		directed("A", "B", 1),
		directed("B", "A", 1),
		directed("C", "A", 5),
		broadcast("A", 1),      // no edge
		directed("A", "A", 1),  // self loop, no edge
		directed("X", "B", 1),  // unknown source, no edge
		directed("A", "X", 1),  // unknown target, no edge
	}
	g := BuildGraph(members, log)

	t.Run("nodes cover the member list", func(t *testing.T) {
		assert.Equal(t, 3, g.NumNodes())
		assert.Equal(t, []string{"A", "B", "C"}, g.Nodes())
	})

	t.Run("parallel interactions aggregate into one edge", func(t *testing.T) {
		assert.Equal(t, 3, g.NumEdges())
		assert.True(t, g.HasEdge("A", "B"))
		assert.InDelta(t, 2.0, g.EdgeWeight("A", "B"), 1e-9)

		edges := g.Edges()
		assert.Equal(t, "A", edges[0].Source)
		assert.Equal(t, "B", edges[0].Target)
		assert.Equal(t, 2, edges[0].Count)
	})

	t.Run("direction matters", func(t *testing.T) {
		assert.True(t, g.HasEdge("B", "A"))
		assert.InDelta(t, 1.0, g.EdgeWeight("B", "A"), 1e-9)
		assert.False(t, g.HasEdge("A", "C"))
		assert.Zero(t, g.EdgeWeight("A", "C"))
	})

	t.Run("weighted degree identity", func(t *testing.T) {
		var totalOut, totalIn float64
		for _, id := range g.Nodes() {
			totalOut += g.WeightedOutDegree(id)
			totalIn += g.WeightedInDegree(id)
		}
		assert.InDelta(t, totalOut, totalIn, 1e-9)
		assert.InDelta(t, 8.0, totalOut, 1e-9)
	})

	t.Run("unknown node queries return zero values", func(t *testing.T) {
		assert.False(t, g.HasEdge("X", "A"))
		assert.Zero(t, g.WeightedOutDegree("X"))
		assert.Zero(t, g.WeightedInDegree("X"))
	})
}

// TestBuildGraphEmpty tests degenerate graph construction.
func TestBuildGraphEmpty(t *testing.T) {
	t.Run("no members", func(t *testing.T) {
		g := BuildGraph(nil, nil)
		assert.Zero(t, g.NumNodes())
		assert.Zero(t, g.NumEdges())
	})

	t.Run("members without interactions", func(t *testing.T) {
		g := BuildGraph(testMembers("A", "B"), nil)
		assert.Equal(t, 2, g.NumNodes())
		assert.Zero(t, g.NumEdges())
	})
}
