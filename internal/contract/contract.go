// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"errors"

	"github.com/huangsam/foodrank/schema"
)

// ErrProductNotFound is returned when a requested product id is unknown to a source.
var ErrProductNotFound = errors.New("product not found")

// ProductSource supplies product records to compare.
// This allows the comparison logic to be tested without files or databases.
type ProductSource interface {
	// GetProducts returns the products in the requested order.
	// An unknown id yields an error wrapping ErrProductNotFound.
	GetProducts(ctx context.Context, ids []string) ([]schema.Product, error)

	// ListProducts returns up to limit products ordered by id. A limit of 0 means no limit.
	ListProducts(ctx context.Context, limit int) ([]schema.Product, error)
}

// CatalogStore is a product source backed by a database table.
type CatalogStore interface {
	ProductSource

	// Upsert inserts or replaces products by id and returns how many were written.
	Upsert(ctx context.Context, products []schema.Product) (int, error)

	// GetStatus returns status information about the catalog.
	GetStatus() (schema.CatalogStatus, error)

	// Close closes the underlying connection.
	Close() error
}

// CatalogManager defines the interface for managing the catalog store.
// This allows the catalog layer to be mocked for testing.
type CatalogManager interface {
	GetCatalogStore() CatalogStore
}
