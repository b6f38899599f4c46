package catalog

import (
	"database/sql"
	"fmt"
	"os"
	"sync"

	"github.com/huangsam/foodrank/internal/contract"
	"github.com/huangsam/foodrank/schema"
)

// productsTable is the name of the table holding catalog products.
const productsTable = "foodrank_products"

// Global Manager instance for main logic.
var (
	Manager   = &CatalogStoreManager{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// GetDBFilePath returns the path to the SQLite DB file for the catalog.
func GetDBFilePath() string {
	return contract.GetCatalogDBFilePath()
}

// InitCatalog initializes the global catalog store.
// For SQLite, connStr is an optional database file path.
func InitCatalog(backend schema.DatabaseBackend, connStr string) error {
	var initErr error

	initOnce.Do(func() {
		store, err := NewCatalogStore(productsTable, backend, connStr)
		if err != nil {
			initErr = fmt.Errorf("failed to initialize product catalog: %w", err)
			return
		}

		Manager.Lock()
		defer Manager.Unlock()
		Manager.store = store
	})

	return initErr
}

// CloseCatalog should be called on application shutdown.
func CloseCatalog() { // called in main defer
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.store != nil {
			_ = Manager.store.Close()
		}
	})
}

// ClearCatalog removes every product for the specified backend.
// For SQLite, it deletes the database file.
// For SQL backends (MySQL/PostgreSQL), it drops the table.
// For NoneBackend, it does nothing.
func ClearCatalog(backend schema.DatabaseBackend, dbFilePath, connStr string) error {
	switch backend {
	case schema.SQLiteBackend:
		if dbFilePath == "" {
			return fmt.Errorf("dbFilePath cannot be empty for SQLite backend")
		}
		if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove SQLite database file %s: %w", dbFilePath, err)
		}
		return nil

	case schema.MySQLBackend:
		return clearSQLTable("mysql", connStr, quoteTableName(productsTable, backend))

	case schema.PostgreSQLBackend:
		return clearSQLTable("pgx", connStr, quoteTableName(productsTable, backend))

	case schema.NoneBackend:
		return nil

	default:
		return fmt.Errorf("unsupported catalog backend for clearing: %s", backend)
	}
}

// clearSQLTable connects to the SQL database and drops the table if it exists.
func clearSQLTable(driverName, connStr, quotedTableName string) error {
	db, err := sql.Open(driverName, connStr)
	if err != nil {
		return fmt.Errorf("failed to connect to %s database: %w", driverName, err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping %s database: %w", driverName, err)
	}

	query := fmt.Sprintf("DROP TABLE IF EXISTS %s", quotedTableName)
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", quotedTableName, err)
	}

	return nil
}
