package core

import (
	"github.com/teampulse/teampulse/schema"
)

// ComputeMetrics derives all node, edge, and team metrics for one graph and
// its originating log. It is a pure function of its inputs: no state is
// carried between runs and results are fully regenerable.
//
// Degenerate graphs never fail: an edgeless graph yields zero density,
// reciprocity, and clustering, and centralities default to zero.
func ComputeMetrics(members []schema.Member, log []schema.Interaction, g *Graph) schema.MetricsResult {
	return schema.MetricsResult{
		Nodes: computeNodeMetrics(members, log, g),
		Edges: computeEdgeMetrics(g),
		Team:  computeTeamMetrics(g),
	}
}

// computeNodeMetrics builds the per-member metrics table. Sent/received
// counts are tallied from the raw log (received excludes broadcasts);
// weighted sums come from the aggregated adjacency and are zero for members
// without edges.
func computeNodeMetrics(members []schema.Member, log []schema.Interaction, g *Graph) []schema.NodeMetrics {
	sent := make(map[string]int)
	received := make(map[string]int)
	for i := range log {
		ia := &log[i]
		sent[ia.Source]++
		if ia.HasTarget() {
			received[ia.TargetID()]++
		}
	}

	degree, inDegree, outDegree := g.degreeCentralities()
	closeness := g.closenessCentralities()
	betweenness := g.betweennessCentralities()

	nodes := make([]schema.NodeMetrics, 0, g.NumNodes())
	for i, id := range g.Nodes() {
		m := schema.NodeMetrics{
			MemberID:              id,
			TotalSent:             sent[id],
			TotalReceived:         received[id],
			WeightedSent:          g.WeightedOutDegree(id),
			WeightedReceived:      g.WeightedInDegree(id),
			DegreeCentrality:      degree[i],
			InDegreeCentrality:    inDegree[i],
			OutDegreeCentrality:   outDegree[i],
			ClosenessCentrality:   closeness[i],
			BetweennessCentrality: betweenness[i],
		}
		m.ActivityScore = 0.4*float64(m.TotalSent) + 0.2*float64(m.TotalReceived) + 0.4*m.WeightedSent
		m.InfluenceScore = 0.6*m.WeightedSent + 0.3*m.DegreeCentrality + 0.1*m.BetweennessCentrality
		nodes = append(nodes, m)
	}
	return nodes
}

// computeEdgeMetrics normalizes edge weights against the single global
// maximum for the run. All-zero weights normalize to 0 rather than failing.
func computeEdgeMetrics(g *Graph) []schema.EdgeMetrics {
	var maxWeight float64
	for _, e := range g.Edges() {
		if e.Weight > maxWeight {
			maxWeight = e.Weight
		}
	}
	edges := make([]schema.EdgeMetrics, 0, g.NumEdges())
	for _, e := range g.Edges() {
		em := schema.EdgeMetrics{
			Source: e.Source,
			Target: e.Target,
			Weight: e.Weight,
			Count:  e.Count,
		}
		if maxWeight > 0 {
			em.NormWeight = e.Weight / maxWeight
		}
		edges = append(edges, em)
	}
	return edges
}

// computeTeamMetrics derives the team-level aggregates.
func computeTeamMetrics(g *Graph) schema.TeamMetrics {
	n := g.NumNodes()
	m := g.NumEdges()
	tm := schema.TeamMetrics{NumNodes: n, NumEdges: m}
	if n > 1 {
		tm.Density = float64(m) / float64(n*(n-1))
	}
	if m > 0 {
		reciprocal := 0
		for _, e := range g.Edges() {
			if g.HasEdge(e.Target, e.Source) {
				reciprocal++
			}
		}
		tm.Reciprocity = float64(reciprocal) / float64(m)
	}
	tm.AverageClustering = g.averageClustering()
	return tm
}

// averageClustering computes the mean local clustering coefficient over the
// unweighted undirected projection of the graph. Nodes with fewer than two
// neighbors contribute zero; an empty graph yields zero.
func (g *Graph) averageClustering() float64 {
	n := len(g.nodes)
	if n == 0 {
		return 0
	}
	und := g.undirected()
	var total float64
	for i := range g.nodes {
		neighbors := make([]int, 0, len(und[i]))
		for j := range und[i] {
			neighbors = append(neighbors, j)
		}
		k := len(neighbors)
		if k < 2 {
			continue
		}
		links := 0
		for a := 0; a < k; a++ {
			for b := a + 1; b < k; b++ {
				if _, ok := und[neighbors[a]][neighbors[b]]; ok {
					links++
				}
			}
		}
		total += 2.0 * float64(links) / float64(k*(k-1))
	}
	return total / float64(n)
}
