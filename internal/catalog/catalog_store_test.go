package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/huangsam/foodrank/internal/contract"
	"github.com/huangsam/foodrank/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func sampleProducts() []schema.Product {
	return []schema.Product{
		{
			ProductID: "p2", ProductName: "Crisps", Brand: "Acme", UnhealthinessScore: 62,
			NutriScore: ptr("D"), NovaGroup: ptr("4"), SaltG: ptr(1.2), HighSalt: true,
			AllergenTags: ptr("en:milk"),
		},
		{
			ProductID: "p1", ProductName: "Oat Bar", Brand: "Good Co", UnhealthinessScore: 18,
			SaltG: ptr(0.0), AdditivesCount: ptr(0),
		},
	}
}

func newSQLiteStore(t *testing.T) *CatalogStoreImpl {
	t.Helper()
	store, err := NewCatalogStore(productsTable, schema.SQLiteBackend, filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestValidateTableName(t *testing.T) {
	tests := []struct {
		name    string
		table   string
		wantErr bool
	}{
		{"simple", "products", false},
		{"underscore prefix", "_products", false},
		{"digits after first", "products_v2", false},
		{"empty", "", true},
		{"leading digit", "2products", true},
		{"injection", "products; DROP TABLE x", true},
		{"dash", "food-products", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTableName(tt.table)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestQuoteTableName(t *testing.T) {
	assert.Equal(t, "`foodrank_products`", quoteTableName(productsTable, schema.MySQLBackend))
	assert.Equal(t, `"foodrank_products"`, quoteTableName(productsTable, schema.PostgreSQLBackend))
	assert.Equal(t, `"foodrank_products"`, quoteTableName(productsTable, schema.SQLiteBackend))
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "?, ?, ?", placeholders(schema.SQLiteBackend, 1, 3))
	assert.Equal(t, "?, ?", placeholders(schema.MySQLBackend, 1, 2))
	assert.Equal(t, "$1, $2, $3", placeholders(schema.PostgreSQLBackend, 1, 3))
	assert.Equal(t, "$4", placeholders(schema.PostgreSQLBackend, 4, 1))
	assert.Empty(t, placeholders(schema.SQLiteBackend, 1, 0))
}

func TestGetUpsertQuery(t *testing.T) {
	tests := []struct {
		backend schema.DatabaseBackend
		want    string
	}{
		{schema.SQLiteBackend, "INSERT OR REPLACE INTO"},
		{schema.MySQLBackend, "ON DUPLICATE KEY UPDATE"},
		{schema.PostgreSQLBackend, "ON CONFLICT (product_id) DO UPDATE"},
	}
	for _, tt := range tests {
		t.Run(string(tt.backend), func(t *testing.T) {
			store := &CatalogStoreImpl{tableName: productsTable, backend: tt.backend}
			assert.Contains(t, store.getUpsertQuery(), tt.want)
		})
	}
}

func TestGetCreateTableQuery(t *testing.T) {
	assert.Contains(t, getCreateTableQuery(productsTable, schema.MySQLBackend), "MEDIUMTEXT")
	assert.Contains(t, getCreateTableQuery(productsTable, schema.PostgreSQLBackend), "DOUBLE PRECISION")
	assert.Contains(t, getCreateTableQuery(productsTable, schema.SQLiteBackend), "REAL NOT NULL")
}

func TestNewCatalogStoreErrors(t *testing.T) {
	_, err := NewCatalogStore("bad name", schema.SQLiteBackend, "")
	assert.Error(t, err)

	_, err = NewCatalogStore(productsTable, schema.DatabaseBackend("oracle"), "")
	assert.ErrorContains(t, err, "unsupported catalog backend")
}

func TestCatalogStore_SQLite(t *testing.T) {
	ctx := context.Background()
	store := newSQLiteStore(t)

	n, err := store.Upsert(ctx, sampleProducts())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	t.Run("get in requested order", func(t *testing.T) {
		products, err := store.GetProducts(ctx, []string{"p1", "p2"})
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "Oat Bar", products[0].ProductName)
		assert.Equal(t, "Crisps", products[1].ProductName)
		assert.Nil(t, products[0].SugarsG)
		require.NotNil(t, products[0].SaltG)
		assert.Equal(t, 0.0, *products[0].SaltG)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := store.GetProducts(ctx, []string{"p1", "p9"})
		assert.ErrorIs(t, err, contract.ErrProductNotFound)
	})

	t.Run("list ordered by id", func(t *testing.T) {
		products, err := store.ListProducts(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, []string{"p1", "p2"}, productIDs(products))

		limited, err := store.ListProducts(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, []string{"p1"}, productIDs(limited))
	})

	t.Run("upsert replaces", func(t *testing.T) {
		updated := sampleProducts()[1]
		updated.UnhealthinessScore = 22
		_, err := store.Upsert(ctx, []schema.Product{updated})
		require.NoError(t, err)

		products, err := store.GetProducts(ctx, []string{"p1"})
		require.NoError(t, err)
		assert.Equal(t, 22.0, products[0].UnhealthinessScore)
	})

	t.Run("status", func(t *testing.T) {
		status, err := store.GetStatus()
		require.NoError(t, err)
		assert.Equal(t, "sqlite", status.Backend)
		assert.True(t, status.Connected)
		assert.Equal(t, 2, status.TotalProducts)
		assert.False(t, status.LastUpdateTime.IsZero())
		assert.Positive(t, status.TableSizeBytes)
	})
}

func TestCatalogStore_UpsertRejectsMissingID(t *testing.T) {
	store := newSQLiteStore(t)
	_, err := store.Upsert(context.Background(), []schema.Product{{ProductName: "anonymous"}})
	assert.ErrorContains(t, err, "no product_id")

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Zero(t, status.TotalProducts)
}

func TestCatalogStore_NoneBackend(t *testing.T) {
	ctx := context.Background()
	store, err := NewCatalogStore(productsTable, schema.NoneBackend, "")
	require.NoError(t, err)

	n, err := store.Upsert(ctx, sampleProducts())
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = store.GetProducts(ctx, []string{"p1", "p2"})
	assert.ErrorIs(t, err, contract.ErrProductNotFound)

	products, err := store.ListProducts(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, products)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, "none", status.Backend)
	assert.False(t, status.Connected)

	assert.NoError(t, store.Close())
}
