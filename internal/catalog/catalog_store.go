package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql" // MySQL driver
	"github.com/huangsam/foodrank/internal/contract"
	"github.com/huangsam/foodrank/schema"
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver
)

// productColumns are the columns written on every upsert, in bind order.
const productColumns = "product_id, product_name, brand, unhealthiness_score, payload, updated_at"

// CatalogStoreImpl keeps products in a SQL table.
// The full product record is stored as a JSON payload next to a few
// queryable columns.
type CatalogStoreImpl struct {
	db         *sql.DB
	tableName  string
	backend    schema.DatabaseBackend
	driverName string
	connStr    string
}

var _ contract.CatalogStore = &CatalogStoreImpl{} // Compile-time check

// NewCatalogStore initializes and returns a new CatalogStore based on the backend type.
func NewCatalogStore(tableName string, backend schema.DatabaseBackend, connStr string) (*CatalogStoreImpl, error) {
	// Validate table name to prevent SQL injection
	if err := validateTableName(tableName); err != nil {
		return nil, err
	}

	var db *sql.DB
	var err error
	var driverName string

	switch backend {
	case schema.SQLiteBackend:
		driverName = "sqlite"
		dbPath := connStr
		if dbPath == "" {
			dbPath = GetDBFilePath()
		}
		db, err = sql.Open(driverName, dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SQLite catalog at %q: %w. Ensure the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		// connStr should be:
		// user:password@tcp(host:port)/dbname
		driverName = "mysql"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MySQL catalog: %w. Check connection format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		// connStr should be:
		// host=localhost port=5432 user=postgres password=mysecretpassword dbname=postgres
		driverName = "pgx"
		db, err = sql.Open(driverName, connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL catalog: %w. Check connection format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}

	case schema.NoneBackend:
		// An empty catalog: every lookup misses and writes are dropped
		return &CatalogStoreImpl{
			tableName: tableName,
			backend:   backend,
			connStr:   connStr,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported catalog backend: %s. Must be sqlite, mysql, postgresql, or none", backend)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database. Check that the server is running and connection parameters are valid: %w", backend, err)
	}

	query := getCreateTableQuery(tableName, backend)
	if _, err := db.Exec(query); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create table %s: %w", tableName, err)
	}

	return &CatalogStoreImpl{
		db:         db,
		tableName:  tableName,
		backend:    backend,
		driverName: driverName,
		connStr:    connStr,
	}, nil
}

// getCreateTableQuery returns the CREATE TABLE query for the given backend.
// It matches the first embedded migration.
func getCreateTableQuery(tableName string, backend schema.DatabaseBackend) string {
	quotedTableName := quoteTableName(tableName, backend)
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				product_id VARCHAR(255) PRIMARY KEY,
				product_name VARCHAR(512) NOT NULL,
				brand VARCHAR(255) NOT NULL,
				unhealthiness_score DOUBLE NOT NULL,
				payload MEDIUMTEXT NOT NULL,
				updated_at BIGINT NOT NULL
			);
		`, quotedTableName)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				product_id TEXT PRIMARY KEY,
				product_name TEXT NOT NULL,
				brand TEXT NOT NULL,
				unhealthiness_score DOUBLE PRECISION NOT NULL,
				payload TEXT NOT NULL,
				updated_at BIGINT NOT NULL
			);
		`, quotedTableName)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				product_id TEXT PRIMARY KEY,
				product_name TEXT NOT NULL,
				brand TEXT NOT NULL,
				unhealthiness_score REAL NOT NULL,
				payload TEXT NOT NULL,
				updated_at INTEGER NOT NULL
			);
		`, quotedTableName)
	}
}

// GetProducts returns the products in the requested order.
func (ps *CatalogStoreImpl) GetProducts(ctx context.Context, ids []string) ([]schema.Product, error) {
	if len(ids) == 0 {
		return []schema.Product{}, nil
	}
	if ps.backend == schema.NoneBackend || ps.db == nil {
		return nil, fmt.Errorf("%w: %s", contract.ErrProductNotFound, ids[0])
	}

	quotedTableName := quoteTableName(ps.tableName, ps.backend)
	query := fmt.Sprintf(`SELECT payload FROM %s WHERE product_id IN (%s)`,
		quotedTableName, placeholders(ps.backend, 1, len(ids)))
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	found, err := ps.queryProducts(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]schema.Product, len(found))
	for _, p := range found {
		byID[p.ProductID] = p
	}
	products := make([]schema.Product, 0, len(ids))
	for _, id := range ids {
		p, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", contract.ErrProductNotFound, id)
		}
		products = append(products, p)
	}
	return products, nil
}

// ListProducts returns up to limit products ordered by id. A limit of 0 means no limit.
func (ps *CatalogStoreImpl) ListProducts(ctx context.Context, limit int) ([]schema.Product, error) {
	if ps.backend == schema.NoneBackend || ps.db == nil {
		return []schema.Product{}, nil
	}

	quotedTableName := quoteTableName(ps.tableName, ps.backend)
	query := fmt.Sprintf(`SELECT payload FROM %s ORDER BY product_id`, quotedTableName)
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}
	return ps.queryProducts(ctx, query)
}

// queryProducts runs a query selecting the payload column and decodes every row.
func (ps *CatalogStoreImpl) queryProducts(ctx context.Context, query string, args ...any) ([]schema.Product, error) {
	rows, err := ps.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer func() { _ = rows.Close() }()

	products := []schema.Product{}
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		var p schema.Product
		if err := json.Unmarshal([]byte(payload), &p); err != nil {
			return nil, fmt.Errorf("failed to decode stored product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read products: %w", err)
	}
	return products, nil
}

// Upsert inserts or replaces products by id in a single transaction.
func (ps *CatalogStoreImpl) Upsert(ctx context.Context, products []schema.Product) (int, error) {
	if ps.backend == schema.NoneBackend || ps.db == nil {
		return 0, nil
	}

	tx, err := ps.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, ps.getUpsertQuery())
	if err != nil {
		return 0, fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	now := time.Now().Unix()
	for i, p := range products {
		if strings.TrimSpace(p.ProductID) == "" {
			return 0, fmt.Errorf("product at position %d has no product_id", i)
		}
		payload, err := json.Marshal(p)
		if err != nil {
			return 0, fmt.Errorf("failed to encode product %s: %w", p.ProductID, err)
		}
		if _, err := stmt.ExecContext(ctx, p.ProductID, p.ProductName, p.Brand, p.UnhealthinessScore, string(payload), now); err != nil {
			return 0, fmt.Errorf("failed to write product %s: %w", p.ProductID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit products: %w", err)
	}
	return len(products), nil
}

// getUpsertQuery returns the UPSERT query for the backend.
func (ps *CatalogStoreImpl) getUpsertQuery() string {
	quotedTableName := quoteTableName(ps.tableName, ps.backend)
	switch ps.backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (%s) VALUES (?, ?, ?, ?, ?, ?) AS new
			ON DUPLICATE KEY UPDATE product_name = new.product_name, brand = new.brand,
			unhealthiness_score = new.unhealthiness_score, payload = new.payload, updated_at = new.updated_at`,
			quotedTableName, productColumns)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (product_id) DO UPDATE SET product_name = EXCLUDED.product_name, brand = EXCLUDED.brand,
			unhealthiness_score = EXCLUDED.unhealthiness_score, payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`,
			quotedTableName, productColumns)

	default: // SQLite
		return fmt.Sprintf(`INSERT OR REPLACE INTO %s (%s) VALUES (?, ?, ?, ?, ?, ?)`, quotedTableName, productColumns)
	}
}

// Close closes the underlying DB connection.
func (ps *CatalogStoreImpl) Close() error {
	if ps.db != nil {
		return ps.db.Close()
	}
	return nil
}

// GetStatus returns status information about the catalog store.
func (ps *CatalogStoreImpl) GetStatus() (schema.CatalogStatus, error) {
	status := schema.CatalogStatus{
		Backend:   string(ps.backend),
		Connected: ps.db != nil,
	}

	if ps.backend == schema.NoneBackend || ps.db == nil {
		return status, nil
	}

	quotedTableName := quoteTableName(ps.tableName, ps.backend)

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", quotedTableName)
	if err := ps.db.QueryRow(countQuery).Scan(&status.TotalProducts); err != nil {
		return status, fmt.Errorf("failed to get total products: %w", err)
	}

	if status.TotalProducts == 0 {
		return status, nil
	}

	var lastTs, oldestTs int64
	rangeQuery := fmt.Sprintf("SELECT MAX(updated_at), MIN(updated_at) FROM %s", quotedTableName)
	if err := ps.db.QueryRow(rangeQuery).Scan(&lastTs, &oldestTs); err != nil {
		return status, fmt.Errorf("failed to get update times: %w", err)
	}
	status.LastUpdateTime = time.Unix(lastTs, 0)
	status.OldestEntryTime = time.Unix(oldestTs, 0)

	status.TableSizeBytes = ps.tableSize(status.TotalProducts)
	return status, nil
}

// tableSize asks the database for the table size, falling back to a rough
// estimate of 1KB per product.
func (ps *CatalogStoreImpl) tableSize(total int) int64 {
	estimate := int64(total) * 1000

	var size int64
	var err error
	switch ps.backend {
	case schema.SQLiteBackend:
		err = ps.db.QueryRow("SELECT page_count * page_size FROM pragma_page_count(), pragma_page_size()").Scan(&size)
	case schema.MySQLBackend:
		cfg, parseErr := mysql.ParseDSN(ps.connStr)
		if parseErr != nil || cfg.DBName == "" {
			return estimate
		}
		err = ps.db.QueryRow(
			"SELECT data_length + index_length FROM information_schema.tables WHERE table_schema = ? AND table_name = ?",
			cfg.DBName, ps.tableName,
		).Scan(&size)
	case schema.PostgreSQLBackend:
		err = ps.db.QueryRow("SELECT pg_total_relation_size($1)", ps.tableName).Scan(&size)
	default:
		err = errors.New("no size query")
	}
	if err != nil {
		return estimate
	}
	return size
}
