package cmd

import (
	"github.com/huangsam/foodrank/core"
	"github.com/huangsam/foodrank/internal/contract"
	"github.com/spf13/cobra"
)

// compareCmd ranks 2 to 4 products side by side.
var compareCmd = &cobra.Command{
	Use:   "compare <product-id> <product-id> [product-id...]",
	Short: "Compare 2 to 4 products and name the healthiest.",
	Long: `Compare 2 to 4 products metric by metric.

For every nutrition metric, the best value is marked with ✓ and the worst with ✗.
Metrics like salt and sugar favor lower values; fibre and protein favor higher ones.
The product with the lowest unhealthiness score is named the healthiest.

Views:
  table - one column per product (default on wide terminals)
  cards - one card per product (default below 100 columns)

Both views read the same ranking, so a value marked best in the table is
marked best on its card too.

Examples:
  # Compare two products from the catalog
  foodrank compare 5900259000002 5900259000019

  # Compare products from a file without touching the catalog
  foodrank compare p1 p2 p3 --file products.json

  # Show only the second card
  foodrank compare p1 p2 p3 --view cards --card 2

  # Export the comparison to CSV or Parquet
  foodrank compare p1 p2 --output csv --output-file comparison.csv
  foodrank compare p1 p2 --output parquet --output-file comparison.parquet`,
	Args:    cobra.ArbitraryArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCompare(rootCtx, cfg, catalogManager); err != nil {
			contract.LogFatal("Cannot compare products", err)
		}
	},
}
