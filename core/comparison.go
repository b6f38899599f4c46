package core

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/huangsam/foodrank/core/algo"
	"github.com/huangsam/foodrank/internal/contract"
	"github.com/huangsam/foodrank/schema"
	"github.com/shopspring/decimal"
)

// Comparison errors.
var (
	ErrTooFewProducts  = errors.New("select at least 2 products to compare")
	ErrTooManyProducts = errors.New("too many products to compare")
)

// NoRounding keeps values exactly as reported.
const NoRounding = contract.NoRounding

// BuildComparison runs the ranking engine once over the products and returns the
// result every rendering reads from. Numbers are rounded to precision before they
// are formatted or ranked, so a displayed value always matches its ranked value.
func BuildComparison(products []schema.Product, rows []MetricRow, precision int, fallback string) (schema.ComparisonResult, error) {
	if len(products) < 2 {
		return schema.ComparisonResult{}, ErrTooFewProducts
	}

	winnerIdx := algo.GetWinnerIndex(products)

	compared := make([]schema.ComparedProduct, len(products))
	for i, p := range products {
		band, _ := schema.GetScoreBand(p.UnhealthinessScore)
		compared[i] = schema.ComparedProduct{
			Product:      p,
			ScoreBand:    band.Label,
			Warnings:     algo.GetProductWarnings(p),
			AllergenList: schema.SplitAllergenTags(p.AllergenTags),
		}
	}

	out := make([]schema.ComparisonRow, len(rows))
	for r, row := range rows {
		raw := make([]schema.CellValue, len(products))
		column := make([]*float64, len(products))
		for i, p := range products {
			raw[i] = roundCell(row.Value(p), precision)
			column[i] = raw[i].Float()
		}

		ranking := algo.GetBestWorst(column, row.Direction)
		cells := make([]schema.ComparisonCell, len(products))
		for i := range products {
			cells[i] = schema.ComparisonCell{
				Display:   row.Format(raw[i], fallback),
				Raw:       raw[i],
				Highlight: algo.GetCellHighlight(i, ranking, winnerIdx),
			}
		}

		out[r] = schema.ComparisonRow{
			Label:       row.Label,
			Key:         row.Key,
			Direction:   row.Direction,
			Unit:        row.Unit,
			CardVisible: row.CardVisible,
			Ranking:     ranking,
			Cells:       cells,
		}
	}

	return schema.ComparisonResult{
		ComparisonID: uuid.NewString(),
		GeneratedAt:  time.Now().UTC(),
		WinnerIdx:    winnerIdx,
		Products:     compared,
		Rows:         out,
	}, nil
}

// roundCell rounds numeric cells half away from zero. Null and text cells pass through.
func roundCell(v schema.CellValue, precision int) schema.CellValue {
	f := v.Float()
	if f == nil || precision < 0 || math.IsNaN(*f) || math.IsInf(*f, 0) {
		return v
	}
	return schema.NumberCell(decimal.NewFromFloat(*f).Round(int32(precision)).InexactFloat64())
}
