package catalog

import (
	"fmt"
	"io"

	"github.com/huangsam/foodrank/schema"
)

// PrintCatalogStatus prints catalog status information.
func PrintCatalogStatus(w io.Writer, status schema.CatalogStatus) {
	_, _ = fmt.Fprintf(w, "Catalog Backend: %s\n", status.Backend)
	_, _ = fmt.Fprintf(w, "Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	_, _ = fmt.Fprintf(w, "Total Products: %d\n", status.TotalProducts)
	if status.TotalProducts > 0 {
		_, _ = fmt.Fprintf(w, "Last Update: %s\n", status.LastUpdateTime.Format("2006-01-02 15:04:05"))
		_, _ = fmt.Fprintf(w, "Oldest Entry: %s\n", status.OldestEntryTime.Format("2006-01-02 15:04:05"))
	}
	_, _ = fmt.Fprintf(w, "Table Size: %d bytes\n", status.TableSizeBytes)
}
