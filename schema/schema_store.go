package schema

import "time"

// RunStatus represents the status of the run-tracking store.
type RunStatus struct {
	Backend          string           `json:"backend"`
	Connected        bool             `json:"connected"`
	TotalRuns        int              `json:"total_runs"`
	LastRunID        int64            `json:"last_run_id"`
	LastRunTime      time.Time        `json:"last_run_time"`
	OldestRunTime    time.Time        `json:"oldest_run_time"`
	TotalNodeRecords int              `json:"total_node_records"`
	TableSizes       map[string]int64 `json:"table_sizes"`
}

// AnalysisRunRecord represents a row from the teampulse_analysis_runs table.
type AnalysisRunRecord struct {
	RunID           int64
	StartTime       time.Time
	EndTime         *time.Time
	RunDurationMs   *int32
	NumMembers      int32
	NumInteractions int32
	ConfigParams    *string
}

// NodeMetricsRecord represents a row from the teampulse_node_metrics table.
type NodeMetricsRecord struct {
	RunID                 int64
	MemberID              string
	Role                  string
	AnalysisTime          time.Time
	TotalSent             int32
	TotalReceived         int32
	WeightedSent          float64
	WeightedReceived      float64
	DegreeCentrality      float64
	ClosenessCentrality   float64
	BetweennessCentrality float64
	ActivityScore         float64
	InfluenceScore        float64
}
