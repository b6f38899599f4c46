// Package outwriter has output and writer logic.
package outwriter

import (
	"fmt"
	"io"
	"time"

	"github.com/huangsam/foodrank/internal/contract"
	"github.com/huangsam/foodrank/internal/parquet"
	"github.com/huangsam/foodrank/schema"
)

// PrintComparisonResults writes a comparison to the configured output file (or stdout).
func PrintComparisonResults(result schema.ComparisonResult, cfg *contract.Config, duration time.Duration) error {
	return writeOutput(cfg, func(w io.Writer) error {
		return WriteComparisonResults(w, result, cfg, duration)
	})
}

// WriteComparisonResults outputs the comparison, dispatching based on the output format configured.
func WriteComparisonResults(w io.Writer, result schema.ComparisonResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeJSON(w, result); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeCSV(w, comparisonCSVHeader(result), comparisonCSVRecords(result)); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := parquet.WriteComparisonParquet(w, parquet.FromComparison(result)); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		return writeComparisonText(w, result, cfg, duration)
	}
	return nil
}

// writeComparisonText writes the human-readable comparison in the resolved view.
func writeComparisonText(w io.Writer, result schema.ComparisonResult, cfg *contract.Config, duration time.Duration) error {
	names := make([]string, len(result.Products))
	for i, p := range result.Products {
		names[i] = p.DisplayName()
	}
	contract.LogCompareHeader(w, cfg, names)

	var err error
	if ResolveView(cfg) == schema.CardView {
		err = writeComparisonCards(w, result, cfg)
	} else {
		err = writeComparisonTable(w, result, cfg)
	}
	if err != nil {
		return err
	}

	winner := result.Winner()
	if _, err := fmt.Fprintf(w, "🏆 Healthiest: %s (score %s)\n", winner.DisplayName(), formatScore(winner.UnhealthinessScore)); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Compared %d products in %v.\n", len(result.Products), duration.Round(time.Microsecond))
	return err
}
