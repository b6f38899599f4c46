package outwriter

import (
	"fmt"

	"github.com/huangsam/foodrank/schema"
)

// comparisonCSVHeader labels the transposed comparison: a metric column, then one column per product.
func comparisonCSVHeader(result schema.ComparisonResult) []string {
	header := []string{"Metric"}
	for i := range result.Products {
		header = append(header, fmt.Sprintf("Product %d", i+1))
	}
	return header
}

// comparisonCSVRecords lays out identity rows, every metric row by display string,
// then allergens and warnings.
func comparisonCSVRecords(result schema.ComparisonResult) [][]string {
	perProduct := func(label string, value func(i int, p schema.ComparedProduct) string) []string {
		record := []string{label}
		for i, p := range result.Products {
			record = append(record, value(i, p))
		}
		return record
	}

	records := [][]string{
		perProduct("Product ID", func(_ int, p schema.ComparedProduct) string { return p.ProductID }),
		perProduct("Product Name", func(_ int, p schema.ComparedProduct) string { return p.ProductName }),
		perProduct("Brand", func(_ int, p schema.ComparedProduct) string { return p.Brand }),
		perProduct("EAN", func(_ int, p schema.ComparedProduct) string { return derefOr(p.EAN, "") }),
		perProduct("Category", func(_ int, p schema.ComparedProduct) string { return categoryName(p) }),
		perProduct("Score Band", func(_ int, p schema.ComparedProduct) string { return p.ScoreBand }),
		perProduct("Healthiest", func(i int, _ schema.ComparedProduct) string {
			if i == result.WinnerIdx {
				return "yes"
			}
			return ""
		}),
	}

	for _, row := range result.Rows {
		record := []string{row.Label}
		for _, cell := range row.Cells {
			record = append(record, cell.Display)
		}
		records = append(records, record)
	}

	return append(records,
		perProduct("Allergen Tags", func(_ int, p schema.ComparedProduct) string {
			return schema.FormatAllergenTags(p.AllergenList, "")
		}),
		perProduct("Warnings", func(_ int, p schema.ComparedProduct) string {
			return formatWarnings(p.Warnings, "; ", "")
		}),
	)
}

// categoryName prefers the display name of the category.
func categoryName(p schema.ComparedProduct) string {
	if p.CategoryDisplay != "" {
		return p.CategoryDisplay
	}
	return p.Category
}

func derefOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}
