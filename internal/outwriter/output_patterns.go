package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/teampulse/teampulse/internal/contract"
	"github.com/teampulse/teampulse/schema"
)

// WritePatternResults outputs detected patterns, dispatching based on the output format configured.
func WritePatternResults(patterns *schema.Patterns, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, patterns)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVPatterns(w, patterns, fmtFloat)
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is only supported for the nodes command")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writePatternsText(w, patterns, cfg, fmtFloat, duration)
		}, "Wrote text")
	}
	return nil
}

// writePatternsText displays patterns in human-readable text format.
func writePatternsText(w io.Writer, patterns *schema.Patterns, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	writeIDSection := func(title string, ids []string) error {
		if _, err := fmt.Fprintf(w, "%s (%d):", title, len(ids)); err != nil {
			return err
		}
		if len(ids) == 0 {
			_, err := fmt.Fprintln(w, " none")
			return err
		}
		_, err := fmt.Fprintf(w, " %s\n", strings.Join(ids, ", "))
		return err
	}

	if err := writeIDSection("Isolated members", patterns.IsolatedMembers); err != nil {
		return err
	}
	if err := writeIDSection("Passive members", patterns.PassiveMembers); err != nil {
		return err
	}
	if err := writeIDSection("Dominant members", patterns.DominantMembers); err != nil {
		return err
	}

	writePairSection := func(title string, pairs []schema.PairPattern) error {
		if _, err := fmt.Fprintf(w, "%s (%d):\n", title, len(pairs)); err != nil {
			return err
		}
		for _, p := range pairs {
			if _, err := fmt.Fprintf(w, "  %s -> %s (weight %s)\n", p.Source, p.Target, fmtFloat(p.Weight)); err != nil {
				return err
			}
		}
		return nil
	}

	if err := writePairSection("Strong pairs", patterns.StrongPairs); err != nil {
		return err
	}
	if err := writePairSection("Weak pairs", patterns.WeakPairs); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Subgroups (%d):\n", len(patterns.Subgroups)); err != nil {
		return err
	}
	for i, group := range patterns.Subgroups {
		if _, err := fmt.Fprintf(w, "  %d: %s\n", i+1, strings.Join(group, ", ")); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "Role mismatch (%d):\n", len(patterns.RoleMismatch)); err != nil {
		return err
	}
	for _, reason := range patterns.RoleMismatch {
		if _, err := fmt.Fprintf(w, "  %s\n", reason); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "Analysis completed in %v. Store backend: %s\n", duration, cfg.StoreBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVPatterns writes patterns as flat category/value rows.
func writeCSVPatterns(w io.Writer, patterns *schema.Patterns, fmtFloat func(float64) string) error {
	header := []string{"category", "value"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, id := range patterns.IsolatedMembers {
			if err := cw.Write([]string{"isolated", id}); err != nil {
				return err
			}
		}
		for _, id := range patterns.PassiveMembers {
			if err := cw.Write([]string{"passive", id}); err != nil {
				return err
			}
		}
		for _, id := range patterns.DominantMembers {
			if err := cw.Write([]string{"dominant", id}); err != nil {
				return err
			}
		}
		for _, p := range patterns.StrongPairs {
			if err := cw.Write([]string{"strong_pair", fmt.Sprintf("%s->%s:%s", p.Source, p.Target, fmtFloat(p.Weight))}); err != nil {
				return err
			}
		}
		for _, p := range patterns.WeakPairs {
			if err := cw.Write([]string{"weak_pair", fmt.Sprintf("%s->%s:%s", p.Source, p.Target, fmtFloat(p.Weight))}); err != nil {
				return err
			}
		}
		for _, group := range patterns.Subgroups {
			if err := cw.Write([]string{"subgroup", strings.Join(group, "|")}); err != nil {
				return err
			}
		}
		for _, reason := range patterns.RoleMismatch {
			if err := cw.Write([]string{"role_mismatch", reason}); err != nil {
				return err
			}
		}
		return nil
	})
}
