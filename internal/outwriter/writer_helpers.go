package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/huangsam/foodrank/internal/contract"
	"github.com/huangsam/foodrank/schema"
)

// errComparisonOnly is returned when Parquet is requested for a listing.
var errComparisonOnly = errors.New("parquet output is only available for comparisons")

// formatLabels names each output mode in the "💾 Wrote ..." notice.
var formatLabels = map[schema.OutputMode]string{
	schema.JSONOut:    "JSON",
	schema.CSVOut:     "CSV",
	schema.ParquetOut: "Parquet",
	schema.TextOut:    "text",
}

// writeOutput renders into cfg.OutputFile, or stdout when no file is set.
// A file target gets a notice on stderr once render succeeds.
func writeOutput(cfg *contract.Config, render func(io.Writer) error) error {
	file, err := contract.SelectOutputFile(cfg.OutputFile)
	if err != nil {
		return err
	}
	if file == os.Stdout {
		return render(file)
	}
	defer func() { _ = file.Close() }()

	if err := render(file); err != nil {
		return err
	}
	label, ok := formatLabels[cfg.Output]
	if !ok {
		label = "text"
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote %s to %s\n", label, cfg.OutputFile)
	return nil
}

// writeJSON encodes data as indented JSON.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSV writes the header followed by records. WriteAll flushes and reports
// the first write error.
func writeCSV(w io.Writer, header []string, records [][]string) error {
	all := make([][]string, 0, len(records)+1)
	all = append(all, header)
	all = append(all, records...)
	if err := csv.NewWriter(w).WriteAll(all); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}
