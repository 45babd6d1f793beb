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
	"github.com/teampulse/teampulse/schema"
)

// WriteEdgeResults outputs aggregated edge metrics, dispatching based on the output format configured.
func WriteEdgeResults(result *schema.MetricsResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFormatter(cfg.Precision)

	edges := result.Edges
	if cfg.ResultLimit > 0 && len(edges) > cfg.ResultLimit {
		edges = edges[:cfg.ResultLimit]
	}

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, edges)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVEdges(w, edges, fmtFloat)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is only supported for the nodes command")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeEdgeTable(edges, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeEdgeTable generates and writes the human-readable table.
func writeEdgeTable(edges []schema.EdgeMetrics, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	table.Header([]string{"Rank", "Source", "Target", "Weight", "Count", "NormWeight"})

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, e := range edges {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			e.Source,
			e.Target,
			fmtFloat(e.Weight),
			strconv.Itoa(e.Count),
			fmtFloat(e.NormWeight),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Showing %d edges\n", len(edges)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Analysis completed in %v. Store backend: %s\n", duration, cfg.StoreBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVEdges writes aggregated edge metrics in CSV format.
func writeCSVEdges(w io.Writer, edges []schema.EdgeMetrics, fmtFloat func(float64) string) error {
	header := []string{"source", "target", "weight", "count", "norm_weight"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, e := range edges {
			rec := []string{
				e.Source,
				e.Target,
				fmtFloat(e.Weight),
				strconv.Itoa(e.Count),
				fmtFloat(e.NormWeight),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
