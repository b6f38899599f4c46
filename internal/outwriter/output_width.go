package outwriter

import (
	"os"

	"github.com/huangsam/foodrank/internal/contract"
	"github.com/huangsam/foodrank/schema"
	"golang.org/x/term"
)

// defaultTermWidth is used when the terminal size can't be detected (pipes, CI).
const defaultTermWidth = 80

// terminalWidth returns the --width override, else the detected terminal width.
func terminalWidth(cfg *contract.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}
	detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detectedWidth <= 0 {
		return defaultTermWidth
	}
	return detectedWidth
}

// ResolveView turns the auto view into table or cards based on terminal width.
// Narrow terminals get one card per product instead of a wide table.
func ResolveView(cfg *contract.Config) schema.ViewMode {
	switch cfg.View {
	case schema.TableView, schema.CardView:
		return cfg.View
	}
	if terminalWidth(cfg) < contract.NarrowWidth {
		return schema.CardView
	}
	return schema.TableView
}

// maxNameWidth is how many runes of a product name fit one table column.
func maxNameWidth(cfg *contract.Config, products int) int {
	if products < 1 {
		products = 1
	}
	// Metric column plus borders take about 24 columns
	available := (terminalWidth(cfg) - 24) / products
	return min(max(available-3, 12), 40)
}
