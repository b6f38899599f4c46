package catalog

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/huangsam/foodrank/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetManager() {
	initOnce = sync.Once{}
	closeOnce = sync.Once{}
	Manager.Lock()
	Manager.store = nil
	Manager.Unlock()
}

func TestInitCatalog(t *testing.T) {
	t.Run("sqlite", func(t *testing.T) {
		resetManager()
		dbPath := filepath.Join(t.TempDir(), "catalog.db")

		require.NoError(t, InitCatalog(schema.SQLiteBackend, dbPath))
		assert.NotNil(t, Manager.GetCatalogStore())
		CloseCatalog()

		_, err := os.Stat(dbPath)
		assert.NoError(t, err, "database file should be created")
	})

	t.Run("idempotent", func(t *testing.T) {
		resetManager()
		dbPath := filepath.Join(t.TempDir(), "catalog.db")

		assert.NoError(t, InitCatalog(schema.SQLiteBackend, dbPath))
		assert.NoError(t, InitCatalog(schema.SQLiteBackend, dbPath))
		CloseCatalog()
		CloseCatalog()
	})

	t.Run("none backend", func(t *testing.T) {
		resetManager()
		require.NoError(t, InitCatalog(schema.NoneBackend, ""))
		store := Manager.GetCatalogStore()
		require.NotNil(t, store)
		status, err := store.GetStatus()
		require.NoError(t, err)
		assert.False(t, status.Connected)
		CloseCatalog()
	})

	t.Run("unsupported backend", func(t *testing.T) {
		resetManager()
		err := InitCatalog(schema.DatabaseBackend("oracle"), "")
		assert.ErrorContains(t, err, "failed to initialize product catalog")
		assert.Nil(t, Manager.GetCatalogStore())
	})
}

func TestCatalogStoreManagerConcurrency(t *testing.T) {
	resetManager()
	require.NoError(t, InitCatalog(schema.NoneBackend, ""))
	defer CloseCatalog()

	var wg sync.WaitGroup
	for range 20 {
		wg.Go(func() {
			assert.NotNil(t, Manager.GetCatalogStore())
		})
	}
	wg.Wait()
}

func TestClearCatalog(t *testing.T) {
	t.Run("sqlite removes file", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "catalog.db")
		store, err := NewCatalogStore(productsTable, schema.SQLiteBackend, dbPath)
		require.NoError(t, err)
		require.NoError(t, store.Close())

		require.NoError(t, ClearCatalog(schema.SQLiteBackend, dbPath, ""))
		_, err = os.Stat(dbPath)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("sqlite missing file is fine", func(t *testing.T) {
		assert.NoError(t, ClearCatalog(schema.SQLiteBackend, filepath.Join(t.TempDir(), "absent.db"), ""))
	})

	t.Run("sqlite needs a path", func(t *testing.T) {
		assert.Error(t, ClearCatalog(schema.SQLiteBackend, "", ""))
	})

	t.Run("none backend", func(t *testing.T) {
		assert.NoError(t, ClearCatalog(schema.NoneBackend, "", ""))
	})

	t.Run("unsupported backend", func(t *testing.T) {
		assert.Error(t, ClearCatalog(schema.DatabaseBackend("oracle"), "", ""))
	})
}

func TestPrintCatalogStatus(t *testing.T) {
	var buf bytes.Buffer
	PrintCatalogStatus(&buf, schema.CatalogStatus{Backend: "none"})
	assert.Equal(t, "Catalog Backend: none\nConnected: false\n", buf.String())

	buf.Reset()
	PrintCatalogStatus(&buf, schema.CatalogStatus{Backend: "sqlite", Connected: true, TableSizeBytes: 4096})
	assert.Contains(t, buf.String(), "Total Products: 0")
	assert.NotContains(t, buf.String(), "Last Update")
	assert.Contains(t, buf.String(), "Table Size: 4096 bytes")
}
