package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/teampulse/teampulse/internal/contract"
	"github.com/teampulse/teampulse/internal/parquet"
	"github.com/teampulse/teampulse/schema"
)

// WriteNodeResults outputs per-member metrics, dispatching based on the output format configured.
func WriteNodeResults(result *schema.MetricsResult, roles map[string]schema.Role, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFormatter(cfg.Precision)

	nodes := result.Nodes
	if cfg.ResultLimit > 0 && len(nodes) > cfg.ResultLimit {
		nodes = nodes[:cfg.ResultLimit]
	}

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, nodes)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVNodes(w, nodes, fmtFloat)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("--output-file is required for parquet output")
		}
		rows := nodeParquetRows(nodes, roles)
		if err := parquet.WriteNodeMetricsParquet(rows, cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
		fmt.Printf("Wrote %d node metric records to %s\n", len(rows), cfg.OutputFile)
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeNodeTable(nodes, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeNodeTable generates and writes the human-readable table.
func writeNodeTable(nodes []schema.NodeMetrics, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	headers := []string{"Rank", "Member", "Sent", "Recv", "WSent", "WRecv", "Degree", "Close", "Between", "Activity", "Influence", "Label"}
	table.Header(headers)

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, n := range nodes {
		label := contract.GetPlainLabel(n.InfluenceScore)
		if cfg.UseColors {
			label = contract.GetColorLabel(n.InfluenceScore)
		}
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncateName(n.MemberID, getMaxTableNameWidth(cfg)),
			strconv.Itoa(n.TotalSent),
			strconv.Itoa(n.TotalReceived),
			fmtFloat(n.WeightedSent),
			fmtFloat(n.WeightedReceived),
			fmtFloat(n.DegreeCentrality),
			fmtFloat(n.ClosenessCentrality),
			fmtFloat(n.BetweennessCentrality),
			fmtFloat(n.ActivityScore),
			fmtFloat(n.InfluenceScore),
			label,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Showing %d members\n", len(nodes)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v. Store backend: %s\n", duration, cfg.StoreBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVNodes writes per-member metrics in CSV format.
func writeCSVNodes(w io.Writer, nodes []schema.NodeMetrics, fmtFloat func(float64) string) error {
	header := []string{
		"member_id",
		"total_sent",
		"total_received",
		"weighted_sent",
		"weighted_received",
		"degree_centrality",
		"in_degree_centrality",
		"out_degree_centrality",
		"closeness_centrality",
		"betweenness_centrality",
		"activity_score",
		"influence_score",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, n := range nodes {
			rec := []string{
				n.MemberID,
				strconv.Itoa(n.TotalSent),
				strconv.Itoa(n.TotalReceived),
				fmtFloat(n.WeightedSent),
				fmtFloat(n.WeightedReceived),
				fmtFloat(n.DegreeCentrality),
				fmtFloat(n.InDegreeCentrality),
				fmtFloat(n.OutDegreeCentrality),
				fmtFloat(n.ClosenessCentrality),
				fmtFloat(n.BetweennessCentrality),
				fmtFloat(n.ActivityScore),
				fmtFloat(n.InfluenceScore),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// nodeParquetRows converts node metrics to the parquet row layout.
func nodeParquetRows(nodes []schema.NodeMetrics, roles map[string]schema.Role) []parquet.NodeMetricsRow {
	now := time.Now()
	rows := make([]parquet.NodeMetricsRow, len(nodes))
	for i, n := range nodes {
		rows[i] = parquet.NodeMetricsRow{
			MemberID:              n.MemberID,
			Role:                  string(roles[n.MemberID]),
			AnalysisTime:          now,
			TotalSent:             int32(n.TotalSent),
			TotalReceived:         int32(n.TotalReceived),
			WeightedSent:          n.WeightedSent,
			WeightedReceived:      n.WeightedReceived,
			DegreeCentrality:      n.DegreeCentrality,
			ClosenessCentrality:   n.ClosenessCentrality,
			BetweennessCentrality: n.BetweennessCentrality,
			ActivityScore:         n.ActivityScore,
			InfluenceScore:        n.InfluenceScore,
		}
	}
	return rows
}
