package cmd

import (
	"github.com/huangsam/foodrank/core"
	"github.com/huangsam/foodrank/internal/contract"
	"github.com/spf13/cobra"
)

// rowsCmd displays the metric rows a comparison is built from.
var rowsCmd = &cobra.Command{
	Use:   "rows",
	Short: "Display the metric rows and which direction wins for each",
	Long: `Show every metric row used in a comparison.

For each row you get:
- Display label and product field key
- Which values are better (lower, higher, or not ranked)
- Unit shown next to values
- Whether the row appears on product cards or only in the table

No products are loaded - this is purely informational.

Examples:
  # Show the metric rows
  foodrank rows

  # Export the row definitions
  foodrank rows --output json`,
	PreRunE: staticSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRows(rootCtx, cfg, catalogManager); err != nil {
			contract.LogFatal("Cannot display rows", err)
		}
	},
}

// schemaCmd prints the JSON Schema of a product record.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of a product record",
	Long: `Print the JSON Schema that product files and catalog imports follow.

Use it to validate product files before importing them, or to generate
client types in other tools.

Examples:
  foodrank schema --output-file product.schema.json`,
	PreRunE: staticSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSchema(rootCtx, cfg, catalogManager); err != nil {
			contract.LogFatal("Cannot print schema", err)
		}
	},
}
