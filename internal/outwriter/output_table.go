package outwriter

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/huangsam/foodrank/internal/contract"
	"github.com/huangsam/foodrank/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// Markers appended to best and worst values when colors are not available.
const (
	bestMarker  = " ✓"
	worstMarker = " ✗"
)

// decorateCell renders a cell for the table view: colored when colors are on,
// otherwise marked the same way the card view marks it.
func decorateCell(cell schema.ComparisonCell, useColors bool) string {
	if !useColors {
		return markCell(cell)
	}
	switch cell.Highlight {
	case schema.HighlightBest:
		return contract.BestColor.Sprint(cell.Display)
	case schema.HighlightWorst:
		return contract.WorstColor.Sprint(cell.Display)
	case schema.HighlightWinner:
		return contract.WinnerColor.Sprint(cell.Display)
	default:
		return cell.Display
	}
}

// markCell appends the best/worst marker to the display value.
func markCell(cell schema.ComparisonCell) string {
	return cell.Display + marker(cell.Highlight)
}

// marker returns the suffix for best and worst cells.
func marker(h schema.Highlight) string {
	switch h {
	case schema.HighlightBest:
		return bestMarker
	case schema.HighlightWorst:
		return worstMarker
	default:
		return ""
	}
}

// formatScore renders a product score without trailing zeros.
func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}

// bandLabel returns the score band label, colored when colors are on.
func bandLabel(score float64, useColors bool) string {
	if useColors {
		return contract.GetColorLabel(score)
	}
	return schema.GetPlainLabel(score)
}

// tableHeader builds the product column header: trophy, name, brand and score band.
func tableHeader(p schema.ComparedProduct, isWinner bool, nameWidth int, useColors bool) string {
	var lines []string
	if isWinner {
		lines = append(lines, "🏆 Healthiest")
	}
	lines = append(lines, contract.TruncateName(p.DisplayName(), nameWidth))
	if p.Brand != "" {
		lines = append(lines, contract.TruncateName(p.Brand, nameWidth))
	}
	lines = append(lines, fmt.Sprintf("%s · %s", formatScore(p.UnhealthinessScore), bandLabel(p.UnhealthinessScore, useColors)))
	return strings.Join(lines, "\n")
}

// writeComparisonTable writes every metric row with one column per product.
func writeComparisonTable(w io.Writer, result schema.ComparisonResult, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()

	nameWidth := maxNameWidth(cfg, len(result.Products))
	headers := []string{"Metric"}
	for i, p := range result.Products {
		headers = append(headers, tableHeader(p, i == result.WinnerIdx, nameWidth, cfg.UseColors))
	}
	table.Header(headers)

	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Header.Formatting.AutoFormat = tw.Off
		cfg.Row.Alignment.Global = tw.AlignRight
		cfg.Row.Alignment.PerColumn = []tw.Align{tw.AlignLeft}
	})

	data := make([][]string, 0, len(result.Rows)+2)
	for _, row := range result.Rows {
		line := []string{row.Label}
		for _, cell := range row.Cells {
			line = append(line, decorateCell(cell, cfg.UseColors))
		}
		data = append(data, line)
	}

	allergens := []string{"Allergen Tags"}
	warnings := []string{"Warnings"}
	for _, p := range result.Products {
		allergens = append(allergens, schema.FormatAllergenTags(p.AllergenList, "None"))
		warnings = append(warnings, formatWarnings(p.Warnings, "\n", "✓ None"))
	}
	data = append(data, allergens, warnings)

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// formatWarnings joins warning labels, or returns empty when there are none.
func formatWarnings(warnings []string, sep, empty string) string {
	if len(warnings) == 0 {
		return empty
	}
	return strings.Join(warnings, sep)
}
