package schema_test

import (
	"math"
	"testing"

	"github.com/huangsam/foodrank/schema"
	"github.com/stretchr/testify/assert"
)

func TestGetScoreBand(t *testing.T) {
	tests := []struct {
		name      string
		score     float64
		wantOK    bool
		wantLabel string
		wantColor string
	}{
		{"Lowest valid", 1, true, "Low", "green"},
		{"Low upper", 20, true, "Low", "green"},
		{"Moderate lower", 20.5, true, "Moderate", "yellow"},
		{"Moderate upper", 40, true, "Moderate", "yellow"},
		{"High upper", 60, true, "High", "orange"},
		{"Very High upper", 80, true, "Very High", "red"},
		{"Extreme", 81, true, "Extreme", "darkred"},
		{"Highest valid", 100, true, "Extreme", "darkred"},
		{"Zero", 0, false, "", ""},
		{"Above range", 101, false, "", ""},
		{"Negative", -5, false, "", ""},
		{"NaN", math.NaN(), false, "", ""},
		{"Infinity", math.Inf(1), false, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			band, ok := schema.GetScoreBand(tt.score)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantLabel, band.Label)
			assert.Equal(t, tt.wantColor, band.Color)
		})
	}
}

func TestGetPlainLabel(t *testing.T) {
	assert.Equal(t, "Moderate", schema.GetPlainLabel(35))
	assert.Equal(t, "Unknown", schema.GetPlainLabel(0))
}

func TestSplitAllergenTags(t *testing.T) {
	str := func(s string) *string { return &s }

	tests := []struct {
		name     string
		input    *string
		expected []string
	}{
		{"Nil", nil, []string{}},
		{"Blank", str("  "), []string{}},
		{"Single", str("en:milk"), []string{"milk"}},
		{"Multiple", str("en:gluten, en:milk"), []string{"gluten", "milk"}},
		{"No prefix", str("soy,en:nuts"), []string{"soy", "nuts"}},
		{"Trailing comma", str("en:eggs, "), []string{"eggs"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, schema.SplitAllergenTags(tt.input))
		})
	}
}

func TestFormatAllergenTags(t *testing.T) {
	assert.Equal(t, "None", schema.FormatAllergenTags(nil, "None"))
	assert.Equal(t, "gluten, milk", schema.FormatAllergenTags([]string{"gluten", "milk"}, "None"))
}

func TestDirectionIsRanked(t *testing.T) {
	assert.True(t, schema.DirectionLower.IsRanked())
	assert.True(t, schema.DirectionHigher.IsRanked())
	assert.False(t, schema.DirectionNone.IsRanked())
	assert.False(t, schema.Direction("alphabetical").IsRanked())
}
