package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/teampulse/teampulse/internal/contract"
	"github.com/teampulse/teampulse/schema"
)

// WriteTeamResults outputs team-level metrics, dispatching based on the output format configured.
func WriteTeamResults(result *schema.MetricsResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFormatter(cfg.Precision)
	team := result.Team

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, team)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVTeam(w, team, fmtFloat)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is only supported for the nodes command")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTeamTable(team, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeTeamTable generates and writes the human-readable table.
func writeTeamTable(team schema.TeamMetrics, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Metric", "Value"})

	data := [][]string{
		{"Density", fmtFloat(team.Density)},
		{"Reciprocity", fmtFloat(team.Reciprocity)},
		{"Nodes", strconv.Itoa(team.NumNodes)},
		{"Edges", strconv.Itoa(team.NumEdges)},
		{"Avg Clustering", fmtFloat(team.AverageClustering)},
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Analysis completed in %v. Store backend: %s\n", duration, cfg.StoreBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVTeam writes team-level metrics in CSV format.
func writeCSVTeam(w io.Writer, team schema.TeamMetrics, fmtFloat func(float64) string) error {
	header := []string{"density", "reciprocity", "num_nodes", "num_edges", "average_clustering"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		return cw.Write([]string{
			fmtFloat(team.Density),
			fmtFloat(team.Reciprocity),
			strconv.Itoa(team.NumNodes),
			strconv.Itoa(team.NumEdges),
			fmtFloat(team.AverageClustering),
		})
	})
}
