package schema

// NodeMetrics holds every per-member statistic computed by a single analysis
// run. Sent/received counts come from the raw log; weighted sums come from
// the aggregated adjacency; centralities are computed on the directed graph.
type NodeMetrics struct {
	MemberID              string  `json:"member_id"`
	TotalSent             int     `json:"total_sent"`
	TotalReceived         int     `json:"total_received"`
	WeightedSent          float64 `json:"weighted_sent"`
	WeightedReceived      float64 `json:"weighted_received"`
	DegreeCentrality      float64 `json:"degree_centrality"`
	InDegreeCentrality    float64 `json:"in_degree_centrality"`
	OutDegreeCentrality   float64 `json:"out_degree_centrality"`
	ClosenessCentrality   float64 `json:"closeness_centrality"`
	BetweennessCentrality float64 `json:"betweenness_centrality"`
	ActivityScore         float64 `json:"activity_score"`
	InfluenceScore        float64 `json:"influence_score"`
}

// EdgeMetrics describes one aggregated directed edge. Weight is the sum of
// contributing interaction weights, Count the number of interactions, and
// NormWeight the weight divided by the global maximum for the run.
type EdgeMetrics struct {
	Source     string  `json:"source"`
	Target     string  `json:"target"`
	Weight     float64 `json:"weight"`
	Count      int     `json:"count"`
	NormWeight float64 `json:"norm_weight"`
}

// TeamMetrics holds the team-level aggregates for one analysis run.
type TeamMetrics struct {
	Density           float64 `json:"density"`
	Reciprocity       float64 `json:"reciprocity"`
	NumNodes          int     `json:"num_nodes"`
	NumEdges          int     `json:"num_edges"`
	AverageClustering float64 `json:"average_clustering"`
}

// MetricsResult bundles all metric tables produced by one run over one graph.
type MetricsResult struct {
	Nodes []NodeMetrics `json:"nodes"`
	Edges []EdgeMetrics `json:"edges"`
	Team  TeamMetrics   `json:"team"`
}

// NodeByID returns the node metrics record for a member, if present.
func (r *MetricsResult) NodeByID(memberID string) (NodeMetrics, bool) {
	for _, n := range r.Nodes {
		if n.MemberID == memberID {
			return n, true
		}
	}
	return NodeMetrics{}, false
}
