// Package parquet provides data structures and functions for exporting
// analysis-run data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/teampulse/teampulse/schema"
)

// AnalysisRun represents a single analysis run with metadata.
// This struct maps to the teampulse_analysis_runs database table.
type AnalysisRun struct {
	// RunID is the unique identifier for this analysis run
	RunID int64 `parquet:"run_id,snappy"`

	// StartTime is when the analysis began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the analysis completed (nullable, stored as TIMESTAMP with nanosecond precision)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the analysis run in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// NumMembers is the number of team members analyzed in this run
	NumMembers int32 `parquet:"num_members,snappy"`

	// NumInteractions is the number of interaction events analyzed in this run
	NumInteractions int32 `parquet:"num_interactions,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// NodeMetricsRow represents the computed metrics for a single member in a run.
// This struct maps to the teampulse_node_metrics database table.
type NodeMetricsRow struct {
	// RunID references the parent analysis run
	RunID int64 `parquet:"run_id,snappy"`

	// MemberID is the stable identifier of the team member
	MemberID string `parquet:"member_id,snappy"`

	// Role is the member's organizational role at analysis time
	Role string `parquet:"member_role,snappy"`

	// AnalysisTime is when this member was analyzed (stored as TIMESTAMP with nanosecond precision)
	AnalysisTime time.Time `parquet:"analysis_time,snappy"`

	// TotalSent is the number of interactions initiated by the member
	TotalSent int32 `parquet:"total_sent,snappy"`

	// TotalReceived is the number of targeted interactions received by the member
	TotalReceived int32 `parquet:"total_received,snappy"`

	// WeightedSent is the summed weight over the member's outgoing edges
	WeightedSent float64 `parquet:"weighted_sent,snappy"`

	// WeightedReceived is the summed weight over the member's incoming edges
	WeightedReceived float64 `parquet:"weighted_received,snappy"`

	// DegreeCentrality is the normalized count of incident edges
	DegreeCentrality float64 `parquet:"degree_centrality,snappy"`

	// ClosenessCentrality measures how near the member is to everyone else
	ClosenessCentrality float64 `parquet:"closeness_centrality,snappy"`

	// BetweennessCentrality measures how often the member bridges shortest paths
	BetweennessCentrality float64 `parquet:"betweenness_centrality,snappy"`

	// ActivityScore is the composite raw-volume score
	ActivityScore float64 `parquet:"activity_score,snappy"`

	// InfluenceScore is the composite structural-importance score
	InfluenceScore float64 `parquet:"influence_score,snappy"`
}

// WriteAnalysisRunsParquet writes a slice of AnalysisRun structs to a Parquet file.
func WriteAnalysisRunsParquet(data []AnalysisRun, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the AnalysisRun struct tags
	writer := parquet.NewGenericWriter[AnalysisRun](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	// The Write method accepts a variadic slice
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteNodeMetricsParquet writes a slice of NodeMetricsRow structs to a Parquet file.
func WriteNodeMetricsParquet(data []NodeMetricsRow, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the NodeMetricsRow struct tags
	writer := parquet.NewGenericWriter[NodeMetricsRow](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	// The Write method accepts a variadic slice
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertAnalysisRunRecords converts schema.AnalysisRunRecord to AnalysisRun for Parquet export.
func ConvertAnalysisRunRecords(records []schema.AnalysisRunRecord) []AnalysisRun {
	result := make([]AnalysisRun, len(records))
	for i, record := range records {
		result[i] = AnalysisRun{
			RunID:           record.RunID,
			StartTime:       record.StartTime,
			EndTime:         record.EndTime,
			RunDurationMs:   record.RunDurationMs,
			NumMembers:      record.NumMembers,
			NumInteractions: record.NumInteractions,
			ConfigParams:    record.ConfigParams,
		}
	}
	return result
}

// ConvertNodeMetricsRecords converts schema.NodeMetricsRecord to NodeMetricsRow for Parquet export.
func ConvertNodeMetricsRecords(records []schema.NodeMetricsRecord) []NodeMetricsRow {
	result := make([]NodeMetricsRow, len(records))
	for i, record := range records {
		result[i] = NodeMetricsRow{
			RunID:                 record.RunID,
			MemberID:              record.MemberID,
			Role:                  record.Role,
			AnalysisTime:          record.AnalysisTime,
			TotalSent:             record.TotalSent,
			TotalReceived:         record.TotalReceived,
			WeightedSent:          record.WeightedSent,
			WeightedReceived:      record.WeightedReceived,
			DegreeCentrality:      record.DegreeCentrality,
			ClosenessCentrality:   record.ClosenessCentrality,
			BetweennessCentrality: record.BetweennessCentrality,
			ActivityScore:         record.ActivityScore,
			InfluenceScore:        record.InfluenceScore,
		}
	}
	return result
}
