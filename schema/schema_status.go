package schema

import "time"

// CatalogStatus represents the status of the product catalog store.
type CatalogStatus struct {
	Backend         string    `json:"backend"`
	Connected       bool      `json:"connected"`
	TotalProducts   int       `json:"total_products"`
	LastUpdateTime  time.Time `json:"last_update_time"`
	OldestEntryTime time.Time `json:"oldest_entry_time"`
	TableSizeBytes  int64     `json:"table_size_bytes"`
}
