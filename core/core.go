// Package core has core logic for building, ranking and printing product comparisons.
package core

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/huangsam/foodrank/internal/catalog"
	"github.com/huangsam/foodrank/internal/contract"
	"github.com/huangsam/foodrank/internal/outwriter"
	"github.com/huangsam/foodrank/schema"
	"github.com/invopop/jsonschema"
)

// ErrNoCatalog is returned when products are needed but no source is configured.
var ErrNoCatalog = errors.New("no product catalog configured; use --file or a catalog backend")

// ExecutorFunc defines the function signature for executing commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.CatalogManager) error

// ExecuteCompare loads the selected products, ranks them and prints the comparison.
// It serves as the main entry point for the 'compare' command.
func ExecuteCompare(ctx context.Context, cfg *contract.Config, mgr contract.CatalogManager) error {
	start := time.Now()
	result, err := GetComparisonResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.PrintComparisonResults(result, cfg, time.Since(start))
}

// GetComparisonResults loads cfg.ProductIDs from the configured source and ranks them.
func GetComparisonResults(ctx context.Context, cfg *contract.Config, mgr contract.CatalogManager) (schema.ComparisonResult, error) {
	ids, err := selectProductIDs(cfg.ProductIDs)
	if err != nil {
		return schema.ComparisonResult{}, err
	}

	source, err := resolveSource(cfg, mgr)
	if err != nil {
		return schema.ComparisonResult{}, err
	}

	products, err := source.GetProducts(ctx, ids)
	if err != nil {
		return schema.ComparisonResult{}, err
	}

	return BuildComparison(products, CompareRows(), cfg.Precision, cfg.Fallback)
}

// GetProductList returns up to cfg.ListLimit products from the configured source.
func GetProductList(ctx context.Context, cfg *contract.Config, mgr contract.CatalogManager) ([]schema.Product, error) {
	source, err := resolveSource(cfg, mgr)
	if err != nil {
		return nil, err
	}
	return source.ListProducts(ctx, cfg.ListLimit)
}

// ExecuteRows prints the metric row table. It needs no products.
func ExecuteRows(_ context.Context, cfg *contract.Config, _ contract.CatalogManager) error {
	return outwriter.PrintRowDefinitions(RowDefinitions(), cfg)
}

// ExecuteList prints the products available from the configured source.
func ExecuteList(ctx context.Context, cfg *contract.Config, mgr contract.CatalogManager) error {
	products, err := GetProductList(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.PrintProductList(products, cfg)
}

// ExecuteImport reads cfg.ProductFile and upserts every product into the catalog store.
func ExecuteImport(ctx context.Context, cfg *contract.Config, mgr contract.CatalogManager) error {
	if cfg.ProductFile == "" {
		return errors.New("a products file is required")
	}
	store := catalogStore(mgr)
	if store == nil {
		return ErrNoCatalog
	}

	file, err := catalog.NewFileSource(cfg.ProductFile)
	if err != nil {
		return err
	}
	products, err := file.ListProducts(ctx, 0)
	if err != nil {
		return err
	}

	n, err := store.Upsert(ctx, products)
	if err != nil {
		return fmt.Errorf("failed to import products: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stderr, "📥 Imported %d products from %s into %s catalog\n", n, cfg.ProductFile, cfg.CatalogBackend)
	return nil
}

// ExecuteSchema prints the JSON Schema of a product record.
func ExecuteSchema(_ context.Context, cfg *contract.Config, _ contract.CatalogManager) error {
	return outwriter.PrintJSONSchema(ProductJSONSchema(), cfg)
}

// ProductJSONSchema reflects the product record into a JSON Schema document.
func ProductJSONSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties:  false,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}
	s := reflector.Reflect(&schema.Product{})
	s.Title = "foodrank product"
	s.Description = "A food product record for side-by-side comparison. Nutrition values are per 100g; null means not reported."
	return s
}

// selectProductIDs normalizes the requested ids and enforces the compare tray size.
func selectProductIDs(requested []string) ([]string, error) {
	ids := contract.DedupeIDs(requested)
	if len(ids) != len(requested) {
		contract.LogWarn("Ignoring repeated product ids", fmt.Errorf("%d requested, %d unique", len(requested), len(ids)))
	}
	if len(ids) < contract.MinCompareProducts {
		return nil, ErrTooFewProducts
	}
	if len(ids) > contract.MaxCompareProducts {
		return nil, fmt.Errorf("%w: got %d, at most %d", ErrTooManyProducts, len(ids), contract.MaxCompareProducts)
	}
	return ids, nil
}

// resolveSource picks the products file when one is set, else the catalog store.
func resolveSource(cfg *contract.Config, mgr contract.CatalogManager) (contract.ProductSource, error) {
	if cfg.ProductFile != "" {
		file, err := catalog.NewFileSource(cfg.ProductFile)
		if err != nil {
			return nil, err
		}
		return file, nil
	}
	store := catalogStore(mgr)
	if store == nil {
		return nil, ErrNoCatalog
	}
	return store, nil
}

func catalogStore(mgr contract.CatalogManager) contract.CatalogStore {
	if mgr == nil {
		return nil
	}
	return mgr.GetCatalogStore()
}
