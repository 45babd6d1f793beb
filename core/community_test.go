package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teampulse/teampulse/schema"
)

// TestCommunities tests subgroup detection via greedy modularity.
func TestCommunities(t *testing.T) {
	t.Run("two disjoint pairs", func(t *testing.T) {
		members := testMembers("A", "B", "C", "D")
		log := []schema.Interaction{
			directed("A", "B", 1),
			directed("B", "A", 1),
			directed("C", "D", 1),
			directed("D", "C", 1),
		}
		g := BuildGraph(members, log)
		groups := g.communities()

		require.Len(t, groups, 2)
		assert.ElementsMatch(t, [][]string{{"A", "B"}, {"C", "D"}}, groups)
	})

	t.Run("two cliques with a bridge", func(t *testing.T) {
		members := testMembers("A", "B", "C", "D", "E", "F")
		log := []schema.Interaction{
			// Clique one.
			directed("A", "B", 5),
			directed("B", "C", 5),
			directed("C", "A", 5),
			// Clique two.
			directed("D", "E", 5),
			directed("E", "F", 5),
			directed("F", "D", 5),
			// Weak bridge between them.
			directed("C", "D", 0.1),
		}
		g := BuildGraph(members, log)
		groups := g.communities()

		require.Len(t, groups, 2)
		assert.ElementsMatch(t, [][]string{{"A", "B", "C"}, {"D", "E", "F"}}, groups)
	})

	t.Run("member untouched by edges becomes a singleton", func(t *testing.T) {
		members := testMembers("A", "B", "C")
		log := []schema.Interaction{
			directed("A", "B", 1),
			directed("B", "A", 1),
		}
		g := BuildGraph(members, log)
		groups := g.communities()

		require.Len(t, groups, 2)
		assert.Equal(t, []string{"A", "B"}, groups[0])
		assert.Equal(t, []string{"C"}, groups[1])
	})

	t.Run("edgeless graph has no communities", func(t *testing.T) {
		g := BuildGraph(testMembers("A", "B"), nil)
		assert.Nil(t, g.communities())
	})
}
