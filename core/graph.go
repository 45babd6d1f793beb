package core

import (
	"sort"

	"github.com/teampulse/teampulse/schema"
)

// Edge is one aggregated directed edge of the collaboration graph.
type Edge struct {
	Source string
	Target string
	Weight float64
	Count  int
}

// Graph is a simple directed weighted graph aggregated from an interaction
// log. Every team member is a node, including members with no interactions.
// Parallel interactions between the same ordered pair are pre-aggregated
// into a single edge, so the adjacency is safe input for centrality
// algorithms that require simple graphs.
type Graph struct {
	nodes []string
	index map[string]int
	out   []map[int]float64 // adjacency: node -> successor -> weight
	in    []map[int]float64 // reverse adjacency
	edges []Edge
}

// BuildGraph constructs the collaboration graph for a member list and log.
// Broadcast interactions (no target), self-loops, and interactions whose
// endpoints are not in the member list contribute no edges.
func BuildGraph(members []schema.Member, log []schema.Interaction) *Graph {
	nodes := schema.SortedMemberIDs(members)
	g := &Graph{
		nodes: nodes,
		index: make(map[string]int, len(nodes)),
		out:   make([]map[int]float64, len(nodes)),
		in:    make([]map[int]float64, len(nodes)),
	}
	for i, id := range nodes {
		g.index[id] = i
		g.out[i] = make(map[int]float64)
		g.in[i] = make(map[int]float64)
	}

	counts := make(map[[2]int]int)
	for i := range log {
		ia := &log[i]
		if !ia.HasTarget() {
			continue
		}
		src, ok := g.index[ia.Source]
		if !ok {
			continue
		}
		tgt, ok := g.index[ia.TargetID()]
		if !ok || src == tgt {
			continue
		}
		g.out[src][tgt] += ia.Weight
		g.in[tgt][src] += ia.Weight
		counts[[2]int{src, tgt}]++
	}

	for pair, count := range counts {
		g.edges = append(g.edges, Edge{
			Source: g.nodes[pair[0]],
			Target: g.nodes[pair[1]],
			Weight: g.out[pair[0]][pair[1]],
			Count:  count,
		})
	}
	sort.Slice(g.edges, func(i, j int) bool {
		if g.edges[i].Source != g.edges[j].Source {
			return g.edges[i].Source < g.edges[j].Source
		}
		return g.edges[i].Target < g.edges[j].Target
	})
	return g
}

// NumNodes returns the node count.
func (g *Graph) NumNodes() int { return len(g.nodes) }

// NumEdges returns the aggregated directed edge count.
func (g *Graph) NumEdges() int { return len(g.edges) }

// Nodes returns node IDs in lexicographic order.
func (g *Graph) Nodes() []string { return g.nodes }

// Edges returns aggregated edges ordered by (source, target).
func (g *Graph) Edges() []Edge { return g.edges }

// HasEdge reports whether the directed edge (source, target) exists.
func (g *Graph) HasEdge(source, target string) bool {
	s, ok := g.index[source]
	if !ok {
		return false
	}
	t, ok := g.index[target]
	if !ok {
		return false
	}
	_, ok = g.out[s][t]
	return ok
}

// EdgeWeight returns the aggregated weight of (source, target), or 0.
func (g *Graph) EdgeWeight(source, target string) float64 {
	s, ok := g.index[source]
	if !ok {
		return 0
	}
	t, ok := g.index[target]
	if !ok {
		return 0
	}
	return g.out[s][t]
}

// WeightedOutDegree returns the sum of outgoing edge weights for a node.
func (g *Graph) WeightedOutDegree(node string) float64 {
	i, ok := g.index[node]
	if !ok {
		return 0
	}
	var sum float64
	for _, w := range g.out[i] {
		sum += w
	}
	return sum
}

// WeightedInDegree returns the sum of incoming edge weights for a node.
func (g *Graph) WeightedInDegree(node string) float64 {
	i, ok := g.index[node]
	if !ok {
		return 0
	}
	var sum float64
	for _, w := range g.in[i] {
		sum += w
	}
	return sum
}

// undirected collapses the graph into an undirected weighted adjacency,
// summing the weights of reciprocal edges. Used by clustering and
// community detection.
func (g *Graph) undirected() []map[int]float64 {
	und := make([]map[int]float64, len(g.nodes))
	for i := range und {
		und[i] = make(map[int]float64)
	}
	for i, succ := range g.out {
		for j, w := range succ {
			und[i][j] += w
			und[j][i] += w
		}
	}
	return und
}
