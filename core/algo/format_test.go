package algo

import (
	"testing"

	"github.com/huangsam/foodrank/schema"
	"github.com/stretchr/testify/assert"
)

func TestFormatWithUnit(t *testing.T) {
	tests := []struct {
		name     string
		value    schema.CellValue
		unit     string
		fallback string
		expected string
	}{
		{"number with unit", schema.NumberCell(42), "g", DefaultFallback, "42 g"},
		{"zero with unit", schema.NumberCell(0), "kcal", DefaultFallback, "0 kcal"},
		{"decimal kept as is", schema.NumberCell(1.25), "g", DefaultFallback, "1.25 g"},
		{"null uses default fallback", schema.NullCell(), "g", DefaultFallback, "—"},
		{"null uses custom fallback", schema.NullCell(), "g", "N/A", "N/A"},
		{"string with empty unit", schema.TextCell("high"), "", DefaultFallback, "high "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatWithUnit(tt.value, tt.unit, tt.fallback))
		})
	}
}

func TestFormatPlain(t *testing.T) {
	tests := []struct {
		name     string
		value    schema.CellValue
		fallback string
		expected string
	}{
		{"number", schema.NumberCell(42), DefaultFallback, "42"},
		{"string as is", schema.TextCell("hello"), DefaultFallback, "hello"},
		{"null uses default fallback", schema.NullCell(), DefaultFallback, "—"},
		{"null uses custom fallback", schema.NullCell(), "N/A", "N/A"},
		{"zero", schema.NumberCell(0), DefaultFallback, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatPlain(tt.value, tt.fallback))
		})
	}
}
