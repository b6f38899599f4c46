// Package cmd defines the command-line interface for foodrank.
package cmd

import (
	"github.com/huangsam/foodrank/internal/contract"
	"github.com/huangsam/foodrank/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(rowsCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the catalog subcommands to the parent catalog command
	catalogCmd.AddCommand(catalogImportCmd)
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogStatusCmd)
	catalogCmd.AddCommand(catalogClearCmd)
	catalogCmd.AddCommand(catalogMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Round nutrition values to 0-3 decimal places before ranking (-1 = no rounding)")
	rootCmd.PersistentFlags().String("fallback", contract.DefaultFallback, "Text shown for values that were not reported")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored cells in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().StringP("file", "f", "", "Read products from a JSON, YAML or CSV file instead of the catalog")
	rootCmd.PersistentFlags().String("catalog-backend", string(schema.SQLiteBackend), "Catalog backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("catalog-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname), or a file path for sqlite")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of compareCmd to Viper
	compareCmd.Flags().String("view", string(schema.AutoView), "Text layout: auto or table or cards")
	compareCmd.Flags().Int("card", 0, "Show only this card (1-based) in the card view")
	if err := viper.BindPFlags(compareCmd.Flags()); err != nil {
		contract.LogFatal("Error binding compare flags", err)
	}

	// Bind all flags of catalogListCmd to Viper
	catalogListCmd.Flags().IntP("limit", "l", contract.DefaultListLimit, "Number of products to display (0 = all)")
	if err := viper.BindPFlags(catalogListCmd.Flags()); err != nil {
		contract.LogFatal("Error binding catalog list flags", err)
	}

	// Bind all flags of catalogMigrateCmd to Viper
	catalogMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(catalogMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding catalog migrate flags", err)
	}
}
