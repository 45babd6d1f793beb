package core

import (
	"sort"

	"github.com/teampulse/teampulse/schema"
)

// rankNodes orders members by influence score, highest first. Ties fall back
// to member id so output is stable across runs.
func rankNodes(nodes []schema.NodeMetrics) []schema.NodeMetrics {
	ranked := make([]schema.NodeMetrics, len(nodes))
	copy(ranked, nodes)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].InfluenceScore != ranked[j].InfluenceScore {
			return ranked[i].InfluenceScore > ranked[j].InfluenceScore
		}
		return ranked[i].MemberID < ranked[j].MemberID
	})
	return ranked
}

// rankEdges orders edges by total weight, highest first, then by endpoint ids.
func rankEdges(edges []schema.EdgeMetrics) []schema.EdgeMetrics {
	ranked := make([]schema.EdgeMetrics, len(edges))
	copy(ranked, edges)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Weight != ranked[j].Weight {
			return ranked[i].Weight > ranked[j].Weight
		}
		if ranked[i].Source != ranked[j].Source {
			return ranked[i].Source < ranked[j].Source
		}
		return ranked[i].Target < ranked[j].Target
	})
	return ranked
}
