// Package algo has the pure ranking functions behind every product comparison.
// Nothing here allocates state across calls or knows how results are rendered.
package algo

import "github.com/huangsam/foodrank/schema"

// ExtremeMode selects whether FindExtreme looks for the minimum or the maximum.
type ExtremeMode int

// Extreme modes.
const (
	MinMode ExtremeMode = iota
	MaxMode
)

// IndexedValue pairs a numeric value with its position in the original column.
type IndexedValue struct {
	Idx int
	Val float64
}

// FilterNumericEntries keeps the non-nil values of a column together with their
// original positions. Zero is a real value and is kept.
func FilterNumericEntries(values []*float64) []IndexedValue {
	result := make([]IndexedValue, 0, len(values))
	for i, v := range values {
		if v != nil {
			result = append(result, IndexedValue{Idx: i, Val: *v})
		}
	}
	return result
}

// FindExtreme returns the minimum or maximum entry. Only a strict improvement
// replaces the running extreme, so the earliest entry wins a tie.
// The caller must pass at least one entry.
func FindExtreme(entries []IndexedValue, mode ExtremeMode) IndexedValue {
	result := entries[0]
	for _, entry := range entries[1:] {
		var better bool
		switch mode {
		case MinMode:
			better = entry.Val < result.Val
		case MaxMode:
			better = entry.Val > result.Val
		}
		if better {
			result = entry
		}
	}
	return result
}

// GetBestWorst ranks one metric column. It returns nil when the direction is
// none, when fewer than two values are numeric, or when every numeric value
// is the same. Returned positions index the unfiltered column.
func GetBestWorst(values []*float64, dir schema.Direction) *schema.Ranking {
	var bestMode, worstMode ExtremeMode
	switch dir {
	case schema.DirectionLower:
		bestMode, worstMode = MinMode, MaxMode
	case schema.DirectionHigher:
		bestMode, worstMode = MaxMode, MinMode
	default:
		// DirectionNone, and any direction without an order, is never ranked
		return nil
	}

	valid := FilterNumericEntries(values)
	if len(valid) < 2 {
		return nil
	}

	best := FindExtreme(valid, bestMode)
	worst := FindExtreme(valid, worstMode)
	if best.Val == worst.Val {
		return nil
	}
	return &schema.Ranking{BestIdx: best.Idx, WorstIdx: worst.Idx}
}

// GetWinnerIndex returns the position of the product with the lowest
// unhealthiness score, first occurrence on ties. The caller must pass at least
// one product.
func GetWinnerIndex(products []schema.Product) int {
	bestIdx := 0
	bestScore := products[0].UnhealthinessScore
	for i := 1; i < len(products); i++ {
		if products[i].UnhealthinessScore < bestScore {
			bestScore = products[i].UnhealthinessScore
			bestIdx = i
		}
	}
	return bestIdx
}
