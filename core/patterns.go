package core

import (
	"github.com/teampulse/teampulse/schema"
)

// Thresholds for behavioral classification, relative to team means.
const (
	passiveFactor    = 0.4
	dominantFactor   = 1.8
	strongPairFactor = 1.5
	weakPairFactor   = 0.5

	leaderActivityFactor = 0.6
	leaderReceivedFactor = 0.5
)

// DetectPatterns classifies members, pairs, and the team from the metric
// tables plus role metadata. The detector is stateless: re-run it whenever
// the upstream log changes. Categories are independent, so a member or pair
// may appear in more than one.
//
// When every member is inactive the activity mean is zero and the passive
// and dominant thresholds collapse to zero; members then classify as
// isolated and sit at the passive boundary, which is the documented
// degenerate outcome rather than an error.
func DetectPatterns(metrics *schema.MetricsResult, members []schema.Member, g *Graph) schema.Patterns {
	p := schema.Patterns{
		IsolatedMembers: []string{},
		PassiveMembers:  []string{},
		DominantMembers: []string{},
		StrongPairs:     []schema.PairPattern{},
		WeakPairs:       []schema.PairPattern{},
		Subgroups:       [][]string{},
		RoleMismatch:    []string{},
	}

	meanActivity := meanOf(metrics.Nodes, func(n schema.NodeMetrics) float64 { return n.ActivityScore })
	for _, n := range metrics.Nodes {
		if n.TotalSent == 0 && n.TotalReceived == 0 {
			p.IsolatedMembers = append(p.IsolatedMembers, n.MemberID)
		}
		if n.ActivityScore < passiveFactor*meanActivity {
			p.PassiveMembers = append(p.PassiveMembers, n.MemberID)
		}
		if n.ActivityScore > dominantFactor*meanActivity {
			p.DominantMembers = append(p.DominantMembers, n.MemberID)
		}
	}

	meanWeight := meanOf(metrics.Edges, func(e schema.EdgeMetrics) float64 { return e.Weight })
	for _, e := range metrics.Edges {
		pair := schema.PairPattern{Source: e.Source, Target: e.Target, Weight: e.Weight}
		if e.Weight >= strongPairFactor*meanWeight {
			p.StrongPairs = append(p.StrongPairs, pair)
		}
		if e.Weight <= weakPairFactor*meanWeight {
			p.WeakPairs = append(p.WeakPairs, pair)
		}
	}

	if groups := g.communities(); groups != nil {
		p.Subgroups = groups
	}

	p.RoleMismatch = detectLeaderMismatch(metrics, members, meanActivity)
	return p
}

// detectLeaderMismatch checks the leader's observed network position
// against what the leader role implies. Every failed expectation appends a
// reason; no leader means no check at all.
func detectLeaderMismatch(metrics *schema.MetricsResult, members []schema.Member, meanActivity float64) []string {
	reasons := []string{}
	leader, ok := schema.FindLeader(members)
	if !ok {
		return reasons
	}
	stats, ok := metrics.NodeByID(leader.MemberID)
	if !ok {
		return reasons
	}

	meanDegree := meanOf(metrics.Nodes, func(n schema.NodeMetrics) float64 { return n.DegreeCentrality })
	meanReceived := meanOf(metrics.Nodes, func(n schema.NodeMetrics) float64 { return float64(n.TotalReceived) })

	if stats.DegreeCentrality < meanDegree {
		reasons = append(reasons, "Leader has low degree centrality (not well-connected).")
	}
	if stats.ActivityScore < leaderActivityFactor*meanActivity {
		reasons = append(reasons, "Leader is unusually inactive.")
	}
	if float64(stats.TotalReceived) < leaderReceivedFactor*meanReceived {
		reasons = append(reasons, "Leader receives unusually low communication.")
	}
	return reasons
}

// meanOf averages a projected value over a slice, returning 0 when empty.
func meanOf[T any](items []T, value func(T) float64) float64 {
	if len(items) == 0 {
		return 0
	}
	var sum float64
	for _, it := range items {
		sum += value(it)
	}
	return sum / float64(len(items))
}
