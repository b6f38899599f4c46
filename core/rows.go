package core

import (
	"slices"
	"strconv"
	"strings"

	"github.com/huangsam/foodrank/core/algo"
	"github.com/huangsam/foodrank/schema"
)

// MetricRow is the static description of one comparable metric.
type MetricRow struct {
	Label       string
	Key         string
	Value       func(p schema.Product) schema.CellValue
	Format      func(v schema.CellValue, fallback string) string
	Direction   schema.Direction
	Unit        string
	CardVisible bool // false for rows the card view shows in its header instead
}

// Definition returns the descriptive part of the row.
func (r MetricRow) Definition() schema.RowDefinition {
	return schema.RowDefinition{
		Label:       r.Label,
		Key:         r.Key,
		Direction:   r.Direction,
		Unit:        r.Unit,
		CardVisible: r.CardVisible,
	}
}

func withUnit(unit string) func(schema.CellValue, string) string {
	return func(v schema.CellValue, fallback string) string {
		return algo.FormatWithUnit(v, unit, fallback)
	}
}

func plain(v schema.CellValue, fallback string) string {
	return algo.FormatPlain(v, fallback)
}

// orToken ignores the configured fallback and shows a fixed token for missing values.
func orToken(token string) func(schema.CellValue, string) string {
	return func(v schema.CellValue, _ string) string {
		if v.String() == "" {
			return token
		}
		return algo.FormatPlain(v, token)
	}
}

// novaValue reads the NOVA group as a number so it can be ranked.
// Anything unparsable stays text and is displayed but never ranked.
func novaValue(p schema.Product) schema.CellValue {
	if p.NovaGroup == nil || strings.TrimSpace(*p.NovaGroup) == "" {
		return schema.NullCell()
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(*p.NovaGroup), 64)
	if err != nil {
		return schema.TextCell(*p.NovaGroup)
	}
	return schema.NumberCell(n)
}

var compareRows = [...]MetricRow{
	{
		Label:       "Unhealthiness Score",
		Key:         "unhealthiness_score",
		Value:       func(p schema.Product) schema.CellValue { return schema.NumberCell(p.UnhealthinessScore) },
		Format:      plain,
		Direction:   schema.DirectionLower,
		CardVisible: true,
	},
	{
		Label:     "Nutri-Score",
		Key:       "nutri_score",
		Value:     func(p schema.Product) schema.CellValue { return schema.StringCell(p.NutriScore) },
		Format:    orToken("?"),
		Direction: schema.DirectionNone,
	},
	{
		Label:     "NOVA Group",
		Key:       "nova_group",
		Value:     novaValue,
		Format:    orToken("?"),
		Direction: schema.DirectionLower,
	},
	{
		Label:       "Calories",
		Key:         "calories",
		Value:       func(p schema.Product) schema.CellValue { return schema.FloatCell(p.Calories) },
		Format:      withUnit("kcal"),
		Direction:   schema.DirectionLower,
		Unit:        "kcal",
		CardVisible: true,
	},
	{
		Label:       "Total Fat",
		Key:         "total_fat_g",
		Value:       func(p schema.Product) schema.CellValue { return schema.FloatCell(p.TotalFatG) },
		Format:      withUnit("g"),
		Direction:   schema.DirectionLower,
		Unit:        "g",
		CardVisible: true,
	},
	{
		Label:       "Saturated Fat",
		Key:         "saturated_fat_g",
		Value:       func(p schema.Product) schema.CellValue { return schema.FloatCell(p.SaturatedFatG) },
		Format:      withUnit("g"),
		Direction:   schema.DirectionLower,
		Unit:        "g",
		CardVisible: true,
	},
	{
		Label:       "Sugars",
		Key:         "sugars_g",
		Value:       func(p schema.Product) schema.CellValue { return schema.FloatCell(p.SugarsG) },
		Format:      withUnit("g"),
		Direction:   schema.DirectionLower,
		Unit:        "g",
		CardVisible: true,
	},
	{
		Label:       "Salt",
		Key:         "salt_g",
		Value:       func(p schema.Product) schema.CellValue { return schema.FloatCell(p.SaltG) },
		Format:      withUnit("g"),
		Direction:   schema.DirectionLower,
		Unit:        "g",
		CardVisible: true,
	},
	{
		Label:       "Fibre",
		Key:         "fibre_g",
		Value:       func(p schema.Product) schema.CellValue { return schema.FloatCell(p.FibreG) },
		Format:      withUnit("g"),
		Direction:   schema.DirectionHigher,
		Unit:        "g",
		CardVisible: true,
	},
	{
		Label:       "Protein",
		Key:         "protein_g",
		Value:       func(p schema.Product) schema.CellValue { return schema.FloatCell(p.ProteinG) },
		Format:      withUnit("g"),
		Direction:   schema.DirectionHigher,
		Unit:        "g",
		CardVisible: true,
	},
	{
		Label:       "Carbs",
		Key:         "carbs_g",
		Value:       func(p schema.Product) schema.CellValue { return schema.FloatCell(p.CarbsG) },
		Format:      withUnit("g"),
		Direction:   schema.DirectionLower,
		Unit:        "g",
		CardVisible: true,
	},
	{
		Label:       "Additives",
		Key:         "additives_count",
		Value:       func(p schema.Product) schema.CellValue { return schema.IntCell(p.AdditivesCount) },
		Format:      plain,
		Direction:   schema.DirectionLower,
		CardVisible: true,
	},
	{
		Label:       "Allergens",
		Key:         "allergen_count",
		Value:       func(p schema.Product) schema.CellValue { return schema.IntCell(p.AllergenCount) },
		Format:      orToken("0"),
		Direction:   schema.DirectionLower,
		CardVisible: true,
	},
}

// CompareRows returns the metric rows in display order.
// The returned slice is a copy; the table itself never changes.
func CompareRows() []MetricRow {
	return slices.Clone(compareRows[:])
}

// LookupRow finds a metric row by key.
func LookupRow(key string) (MetricRow, bool) {
	for _, r := range compareRows {
		if r.Key == key {
			return r, true
		}
	}
	return MetricRow{}, false
}

// RowKeys lists the metric row keys in display order.
func RowKeys() []string {
	keys := make([]string, len(compareRows))
	for i, r := range compareRows {
		keys[i] = r.Key
	}
	return keys
}

// RowDefinitions lists the descriptive part of every metric row.
func RowDefinitions() []schema.RowDefinition {
	defs := make([]schema.RowDefinition, len(compareRows))
	for i, r := range compareRows {
		defs[i] = r.Definition()
	}
	return defs
}
