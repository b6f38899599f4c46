package outwriter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/foodrank/internal/contract"
	"github.com/huangsam/foodrank/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintRowDefinitions displays the metric rows a comparison is built from.
// This is a static display that does not need any products.
func PrintRowDefinitions(defs []schema.RowDefinition, cfg *contract.Config) error {
	if cfg.Output == schema.ParquetOut {
		return errComparisonOnly
	}
	return writeOutput(cfg, func(w io.Writer) error {
		switch cfg.Output {
		case schema.JSONOut:
			return writeJSON(w, defs)
		case schema.CSVOut:
			return writeCSV(w, rowDefinitionHeader, rowDefinitionRecords(defs))
		default:
			return writeRowDefinitionsTable(w, defs)
		}
	})
}

// directionLabel describes which values of a metric win.
func directionLabel(d schema.Direction) string {
	switch d {
	case schema.DirectionLower:
		return "lower is better"
	case schema.DirectionHigher:
		return "higher is better"
	case schema.DirectionNone:
		return "not ranked"
	default:
		return string(d)
	}
}

func writeRowDefinitionsTable(w io.Writer, defs []schema.RowDefinition) error {
	if _, err := fmt.Fprintln(w, "🥗 Comparison Metrics"); err != nil {
		return err
	}
	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()
	table.Header([]string{"Metric", "Key", "Better", "Unit", "Card"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Header.Formatting.AutoFormat = tw.Off
	})

	data := make([][]string, 0, len(defs))
	for _, d := range defs {
		card := "yes"
		if !d.CardVisible {
			card = "header"
		}
		data = append(data, []string{d.Label, d.Key, directionLabel(d.Direction), d.Unit, card})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

var rowDefinitionHeader = []string{"label", "key", "direction", "unit", "card_visible"}

func rowDefinitionRecords(defs []schema.RowDefinition) [][]string {
	records := make([][]string, 0, len(defs))
	for _, d := range defs {
		records = append(records, []string{d.Label, d.Key, string(d.Direction), d.Unit, strconv.FormatBool(d.CardVisible)})
	}
	return records
}

// PrintProductList displays the products a source can compare.
func PrintProductList(products []schema.Product, cfg *contract.Config) error {
	if cfg.Output == schema.ParquetOut {
		return errComparisonOnly
	}
	return writeOutput(cfg, func(w io.Writer) error {
		switch cfg.Output {
		case schema.JSONOut:
			return writeJSON(w, products)
		case schema.CSVOut:
			records := make([][]string, 0, len(products))
			for _, p := range products {
				records = append(records, productListRecord(p))
			}
			return writeCSV(w, productListHeader, records)
		default:
			return writeProductListTable(w, products, cfg)
		}
	})
}

var productListHeader = []string{"product_id", "product_name", "brand", "unhealthiness_score", "nutri_score", "nova_group"}

// productListRecord is the shared column set of the product list.
func productListRecord(p schema.Product) []string {
	return []string{
		p.ProductID,
		p.ProductName,
		p.Brand,
		formatScore(p.UnhealthinessScore),
		derefOr(p.NutriScore, ""),
		derefOr(p.NovaGroup, ""),
	}
}

func writeProductListTable(w io.Writer, products []schema.Product, cfg *contract.Config) error {
	if len(products) == 0 {
		_, err := fmt.Fprintln(w, "No products found. Import some with 'foodrank catalog import <file>'.")
		return err
	}

	table := tablewriter.NewWriter(w)
	defer func() { _ = table.Close() }()
	table.Header([]string{"ID", "Name", "Brand", "Score", "Band", "Nutri", "NOVA"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Header.Formatting.AutoFormat = tw.Off
	})

	nameWidth := maxNameWidth(cfg, 2)
	data := make([][]string, 0, len(products))
	for _, p := range products {
		data = append(data, []string{
			p.ProductID,
			contract.TruncateName(p.ProductName, nameWidth),
			p.Brand,
			formatScore(p.UnhealthinessScore),
			bandLabel(p.UnhealthinessScore, cfg.UseColors),
			orQuestion(p.NutriScore),
			orQuestion(p.NovaGroup),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Showing %d products\n", len(products))
	return err
}

// PrintJSONSchema writes a JSON Schema document. Every output format gets JSON.
func PrintJSONSchema(doc any, cfg *contract.Config) error {
	jsonCfg := cfg.Clone()
	jsonCfg.Output = schema.JSONOut
	return writeOutput(jsonCfg, func(w io.Writer) error {
		return writeJSON(w, doc)
	})
}
