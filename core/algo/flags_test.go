package algo

import (
	"testing"

	"github.com/huangsam/foodrank/schema"
	"github.com/stretchr/testify/assert"
)

func TestGetProductWarnings(t *testing.T) {
	tests := []struct {
		name     string
		product  schema.Product
		expected []string
	}{
		{"no flags", schema.Product{}, []string{}},
		{"salt", schema.Product{HighSalt: true}, []string{"🧂 High Salt"}},
		{"sugar", schema.Product{HighSugar: true}, []string{"🍬 High Sugar"}},
		{"sat fat", schema.Product{HighSatFat: true}, []string{"🧈 High Sat Fat"}},
		{"additives", schema.Product{HighAdditiveLoad: true}, []string{"⚗️ Additives"}},
		{
			"all in order",
			schema.Product{HighAdditiveLoad: true, HighSatFat: true, HighSugar: true, HighSalt: true},
			[]string{"🧂 High Salt", "🍬 High Sugar", "🧈 High Sat Fat", "⚗️ Additives"},
		},
		{"subset", schema.Product{HighAdditiveLoad: true, HighSugar: true}, []string{"🍬 High Sugar", "⚗️ Additives"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetProductWarnings(tt.product))
		})
	}
}

func TestGetCellHighlight(t *testing.T) {
	ranking := &schema.Ranking{BestIdx: 1, WorstIdx: 2}

	tests := []struct {
		name      string
		idx       int
		ranking   *schema.Ranking
		winnerIdx int
		expected  schema.Highlight
	}{
		{"best index", 1, ranking, 0, schema.HighlightBest},
		{"worst index", 2, ranking, 0, schema.HighlightWorst},
		{"winner index", 0, ranking, 0, schema.HighlightWinner},
		{"plain index", 3, ranking, 0, schema.HighlightNone},
		{"winner without ranking", 0, nil, 0, schema.HighlightWinner},
		{"plain without ranking", 1, nil, 0, schema.HighlightNone},
		{"best outranks winner", 1, ranking, 1, schema.HighlightBest},
		{"worst outranks winner", 2, ranking, 2, schema.HighlightWorst},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetCellHighlight(tt.idx, tt.ranking, tt.winnerIdx))
		})
	}
}
