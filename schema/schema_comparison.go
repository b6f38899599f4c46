package schema

import "time"

// Ranking is the best and worst position for one metric across the compared products.
// Positions index the original product list.
type Ranking struct {
	BestIdx  int `json:"best_idx"`
	WorstIdx int `json:"worst_idx"`
}

// ComparisonCell is one formatted metric value for one product.
type ComparisonCell struct {
	Display   string    `json:"display"`   // Formatted value shown to users
	Raw       CellValue `json:"raw"`       // Value after rounding, before formatting
	Highlight Highlight `json:"highlight"` // Emphasis from ranking and winner
}

// ComparisonRow holds one metric across all compared products.
type ComparisonRow struct {
	Label       string           `json:"label"`
	Key         string           `json:"key"`
	Direction   Direction        `json:"direction"`
	Unit        string           `json:"unit,omitempty"`
	CardVisible bool             `json:"card_visible"`
	Ranking     *Ranking         `json:"ranking"` // nil when the row is not ranked
	Cells       []ComparisonCell `json:"cells"`
}

// ComparedProduct is the per-product summary shown alongside the metric rows.
type ComparedProduct struct {
	Product
	ScoreBand    string   `json:"score_band"`
	Warnings     []string `json:"warnings"`
	AllergenList []string `json:"allergen_list"`
}

// ComparisonResult is the shared computation behind every comparison rendering.
// Table, cards, CSV, JSON and Parquet all read it without re-ranking.
type ComparisonResult struct {
	ComparisonID string            `json:"comparison_id"`
	GeneratedAt  time.Time         `json:"generated_at"`
	WinnerIdx    int               `json:"winner_idx"`
	Products     []ComparedProduct `json:"products"`
	Rows         []ComparisonRow   `json:"rows"`
}

// Winner returns the overall winning product.
func (r ComparisonResult) Winner() ComparedProduct {
	return r.Products[r.WinnerIdx]
}

// RowDefinition describes one metric row for listing and documentation.
type RowDefinition struct {
	Label       string    `json:"label"`
	Key         string    `json:"key"`
	Direction   Direction `json:"direction"`
	Unit        string    `json:"unit,omitempty"`
	CardVisible bool      `json:"card_visible"`
}
