// Package catalog is for loading products from files and SQL catalogs.
package catalog

import (
	"sync"

	"github.com/huangsam/foodrank/internal/contract"
)

// CatalogStoreManager holds the process-wide catalog store.
type CatalogStoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	store        contract.CatalogStore
}

var _ contract.CatalogManager = &CatalogStoreManager{} // Compile-time check

// GetCatalogStore returns the catalog store, or nil when none was initialized.
func (m *CatalogStoreManager) GetCatalogStore() contract.CatalogStore {
	m.RLock()
	defer m.RUnlock()
	return m.store
}
