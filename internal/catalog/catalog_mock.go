package catalog

import (
	"context"

	"github.com/huangsam/foodrank/internal/contract"
	"github.com/huangsam/foodrank/schema"
	"github.com/stretchr/testify/mock"
)

// MockCatalogManager is a mock implementation of CatalogManager for testing.
type MockCatalogManager struct {
	mock.Mock
}

var _ contract.CatalogManager = &MockCatalogManager{} // Compile-time check

// GetCatalogStore implements the CatalogManager interface.
func (m *MockCatalogManager) GetCatalogStore() contract.CatalogStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.CatalogStore)
	return store
}

// MockCatalogStore is a mock implementation of CatalogStore for testing.
type MockCatalogStore struct {
	mock.Mock
}

var _ contract.CatalogStore = &MockCatalogStore{} // Compile-time check

// GetProducts implements the CatalogStore interface.
func (m *MockCatalogStore) GetProducts(ctx context.Context, ids []string) ([]schema.Product, error) {
	args := m.Called(ctx, ids)
	products, _ := args.Get(0).([]schema.Product)
	return products, args.Error(1)
}

// ListProducts implements the CatalogStore interface.
func (m *MockCatalogStore) ListProducts(ctx context.Context, limit int) ([]schema.Product, error) {
	args := m.Called(ctx, limit)
	products, _ := args.Get(0).([]schema.Product)
	return products, args.Error(1)
}

// Upsert implements the CatalogStore interface.
func (m *MockCatalogStore) Upsert(ctx context.Context, products []schema.Product) (int, error) {
	args := m.Called(ctx, products)
	return args.Int(0), args.Error(1)
}

// GetStatus implements the CatalogStore interface.
func (m *MockCatalogStore) GetStatus() (schema.CatalogStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.CatalogStatus), args.Error(1)
}

// Close implements the CatalogStore interface.
func (m *MockCatalogStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
