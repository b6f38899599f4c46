package cmd

import (
	"fmt"
	"os"

	"github.com/huangsam/foodrank/core"
	"github.com/huangsam/foodrank/internal/catalog"
	"github.com/huangsam/foodrank/internal/contract"
	"github.com/huangsam/foodrank/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// catalogConfigSetup loads the catalog backend settings without opening the catalog.
// Clear and migrate use this so they can run against a missing or fresh database.
func catalogConfigSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend, err := contract.ParseCatalogBackend(viper.GetString("catalog-backend"))
	if err != nil {
		return err
	}
	connStr := viper.GetString("catalog-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	cfg.CatalogBackend = backend
	cfg.CatalogDBConnect = connStr
	return nil
}

// catalogSetup loads the catalog settings and opens the catalog.
func catalogSetup() error {
	if err := catalogConfigSetup(); err != nil {
		return err
	}
	return catalog.InitCatalog(cfg.CatalogBackend, cfg.CatalogDBConnect)
}

// catalogSetupWrapper wraps catalogSetup to provide PreRunE for catalog commands.
func catalogSetupWrapper(_ *cobra.Command, _ []string) error {
	return catalogSetup()
}

// catalogConfigSetupWrapper wraps catalogConfigSetup to provide PreRunE for catalog commands.
func catalogConfigSetupWrapper(_ *cobra.Command, _ []string) error {
	return catalogConfigSetup()
}

// sqliteFilePath returns the SQLite catalog file: the connection string when set, else the default.
func sqliteFilePath() string {
	if cfg.CatalogBackend == schema.SQLiteBackend && cfg.CatalogDBConnect != "" {
		return cfg.CatalogDBConnect
	}
	return catalog.GetDBFilePath()
}

// catalogCmd focused on catalog management.
//
// Note: Catalog subcommands other than list use minimal initialization instead of
// the full sharedSetup used by compare. This skips output validation for simple
// catalog operations.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the product catalog",
	Long: `Manage the product catalog that compare reads from.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (empty catalog)

Subcommands:
  import  - Upsert products from a JSON, YAML or CSV file
  list    - List catalog products ordered by id
  status  - Show catalog statistics and connection info
  clear   - Remove all catalog products
  migrate - Run schema migrations

Examples:
  # Import products and check the catalog
  foodrank catalog import products.json
  foodrank catalog status`,
}

// catalogImportCmd upserts products from a file.
var catalogImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Upsert products from a JSON, YAML or CSV file",
	Long: `Read products from a file and insert or replace them in the catalog by product_id.

Accepted files:
- .json - an array of products, or {"products": [...]}
- .yaml / .yml - the same shapes as JSON
- .csv - a header row of product fields; unknown columns are ignored

Run 'foodrank schema' to see every product field.

Examples:
  foodrank catalog import products.json

  # Import into PostgreSQL (set connection string via env variable)
  FOODRANK_CATALOG_BACKEND=postgresql FOODRANK_CATALOG_DB_CONNECT="host=... dbname=..." foodrank catalog import products.csv`,
	Args:    cobra.ExactArgs(1),
	PreRunE: catalogSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		cfg.ProductFile = args[0]
		if err := core.ExecuteImport(rootCtx, cfg, catalogManager); err != nil {
			contract.LogFatal("Failed to import products", err)
		}
	},
}

// catalogListCmd lists catalog products.
var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog products ordered by id",
	Long: `List the products available to compare.

With --file, lists the products of that file instead of the catalog.

Examples:
  foodrank catalog list --limit 20
  foodrank catalog list --file products.yaml --output csv`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteList(rootCtx, cfg, catalogManager); err != nil {
			contract.LogFatal("Failed to list products", err)
		}
	},
}

// catalogStatusCmd shows catalog status.
var catalogStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display catalog statistics and connection details",
	Long: `Show detailed information about the product catalog.

Displays:
- Backend type and connection status
- Total number of products
- Newest and oldest product update timestamps
- Catalog database size

Examples:
  foodrank catalog status`,
	PreRunE: catalogSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := catalogManager.GetCatalogStore()
		if store == nil {
			contract.LogFatal("Failed to get catalog status", core.ErrNoCatalog)
		}
		status, err := store.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get catalog status", err)
		}
		catalog.PrintCatalogStatus(os.Stdout, status)
	},
}

// catalogClearCmd clears the catalog.
var catalogClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all catalog products",
	Long: `Delete all products from the configured backend.

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the products table

Examples:
  # Clear SQLite catalog (default)
  foodrank catalog clear

  # Clear MySQL catalog (set connection string via env variable)
  FOODRANK_CATALOG_BACKEND=mysql FOODRANK_CATALOG_DB_CONNECT="..." foodrank catalog clear`,
	PreRunE: catalogConfigSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := catalog.ClearCatalog(cfg.CatalogBackend, sqliteFilePath(), cfg.CatalogDBConnect); err != nil {
			contract.LogFatal("Failed to clear catalog", err)
		}
		fmt.Println("Catalog cleared successfully.")
	},
}

// catalogMigrateCmd runs database migrations for the catalog store.
var catalogMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the product catalog.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  foodrank catalog migrate

  # Migrate to specific version
  foodrank catalog migrate --target-version 1

  # Rollback to initial state
  foodrank catalog migrate --target-version 0`,
	PreRunE: catalogConfigSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := catalog.MigrateCatalog(os.Stdout, cfg.CatalogBackend, cfg.CatalogDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
