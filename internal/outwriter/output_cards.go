package outwriter

import (
	"fmt"
	"io"
	"strings"

	"github.com/huangsam/foodrank/internal/contract"
	"github.com/huangsam/foodrank/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// tabNameWidth is how many runes of a product name fit the card tab strip.
const tabNameWidth = 12

// ClampCard maps a 1-based --card position onto a product index.
// Positions past either end land on the first or last card.
func ClampCard(card, total int) int {
	return max(0, min(card-1, total-1))
}

// cardIndices lists the cards to print: all of them, or the one picked with --card.
func cardIndices(cfg *contract.Config, total int) []int {
	if cfg.Card > 0 {
		return []int{ClampCard(cfg.Card, total)}
	}
	indices := make([]int, total)
	for i := range indices {
		indices[i] = i
	}
	return indices
}

// writeComparisonCards writes one card per product, reading the same cells as the table view.
func writeComparisonCards(w io.Writer, result schema.ComparisonResult, cfg *contract.Config) error {
	for n, idx := range cardIndices(cfg, len(result.Products)) {
		if n > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := writeCard(w, result, idx, cfg); err != nil {
			return err
		}
	}
	return nil
}

// writeTabStrip prints every product name with the active one in brackets.
func writeTabStrip(w io.Writer, result schema.ComparisonResult, active int) error {
	tabs := make([]string, len(result.Products))
	for i, p := range result.Products {
		name := contract.TruncateName(p.DisplayName(), tabNameWidth)
		if i == result.WinnerIdx {
			name = "🏆 " + name
		}
		if i == active {
			name = "[" + name + "]"
		}
		tabs[i] = name
	}
	_, err := fmt.Fprintln(w, strings.Join(tabs, "  "))
	return err
}

// writeCard prints the header, card-visible metric rows, allergens, warnings and position footer.
func writeCard(w io.Writer, result schema.ComparisonResult, idx int, cfg *contract.Config) error {
	p := result.Products[idx]

	if err := writeTabStrip(w, result, idx); err != nil {
		return err
	}

	title := p.DisplayName()
	if p.Brand != "" {
		title = fmt.Sprintf("%s (%s)", title, p.Brand)
	}
	if cfg.UseColors {
		title = contract.HeaderColor.Sprint(title)
	}
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}

	badges := []string{
		fmt.Sprintf("Score %s · %s", formatScore(p.UnhealthinessScore), bandLabel(p.UnhealthinessScore, cfg.UseColors)),
		"Nutri " + orQuestion(p.NutriScore),
		"NOVA " + orQuestion(p.NovaGroup),
	}
	if idx == result.WinnerIdx {
		badges = append(badges, "🏆 Best")
	}
	if _, err := fmt.Fprintln(w, strings.Join(badges, " · ")); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
		cfg.Row.Alignment.PerColumn = []tw.Align{tw.AlignLeft}
	})
	var data [][]string
	for _, row := range result.Rows {
		if !row.CardVisible {
			continue
		}
		cell := row.Cells[idx]
		value := markCell(cell)
		if cfg.UseColors {
			value = decorateCell(cell, true) + marker(cell.Highlight)
		}
		data = append(data, []string{row.Label, value})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	lines := []string{
		"Allergens: " + schema.FormatAllergenTags(p.AllergenList, "None declared"),
		"Warnings: " + formatWarnings(p.Warnings, " ", "✓ No warnings"),
		fmt.Sprintf("← %d of %d →", idx+1, len(result.Products)),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// orQuestion returns the value, or "?" when it is missing.
func orQuestion(v *string) string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return "?"
	}
	return *v
}
