// Package parquet provides data structures and functions for exporting product
// comparisons to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"time"

	"github.com/huangsam/foodrank/schema"
	"github.com/parquet-go/parquet-go"
)

// ComparisonCell is one metric value of one product in a comparison.
// A comparison of N products over M metric rows yields N*M records.
type ComparisonCell struct {
	// ComparisonID groups the records of one comparison
	ComparisonID string `parquet:"comparison_id,snappy,dict"`

	// GeneratedAt is when the comparison was built
	GeneratedAt time.Time `parquet:"generated_at,snappy"`

	RowKey       string `parquet:"row_key,snappy,dict"`
	RowLabel     string `parquet:"row_label,snappy,dict"`
	Direction    string `parquet:"direction,snappy,dict"`
	ProductIndex int32  `parquet:"product_index,snappy"`
	ProductID    string `parquet:"product_id,snappy,dict"`
	ProductName  string `parquet:"product_name,snappy,dict"`

	// Display is the formatted value shown to users
	Display string `parquet:"display,snappy"`

	// RawNumber is set for numeric values, RawText for text values; both are null when missing
	RawNumber *float64 `parquet:"raw_number,optional,snappy"`
	RawText   *string  `parquet:"raw_text,optional,snappy"`

	// Highlight is best, worst, winner or empty
	Highlight string `parquet:"highlight,snappy,dict"`

	// IsWinner marks the overall healthiest product
	IsWinner bool `parquet:"is_winner,snappy"`
}

// FromComparison flattens a comparison into one record per (row, product) cell.
func FromComparison(result schema.ComparisonResult) []ComparisonCell {
	records := make([]ComparisonCell, 0, len(result.Rows)*len(result.Products))
	for _, row := range result.Rows {
		for i, cell := range row.Cells {
			p := result.Products[i]
			record := ComparisonCell{
				ComparisonID: result.ComparisonID,
				GeneratedAt:  result.GeneratedAt,
				RowKey:       row.Key,
				RowLabel:     row.Label,
				Direction:    string(row.Direction),
				ProductIndex: int32(i),
				ProductID:    p.ProductID,
				ProductName:  p.ProductName,
				Display:      cell.Display,
				Highlight:    string(cell.Highlight),
				IsWinner:     i == result.WinnerIdx,
			}
			switch {
			case cell.Raw.IsNumber():
				record.RawNumber = cell.Raw.Float()
			case !cell.Raw.IsNull():
				text := cell.Raw.String()
				record.RawText = &text
			}
			records = append(records, record)
		}
	}
	return records
}

// WriteComparisonParquet writes comparison cells to w as a Parquet file.
func WriteComparisonParquet(w io.Writer, data []ComparisonCell) error {
	// The schema is derived from the ComparisonCell struct tags
	writer := parquet.NewGenericWriter[ComparisonCell](w)

	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}
