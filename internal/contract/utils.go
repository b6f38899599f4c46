package contract

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/huangsam/foodrank/schema"
)

// Color variables for console output.
var (
	BestColor   = color.New(color.FgGreen, color.Bold) // BestColor marks the best value of a metric.
	WorstColor  = color.New(color.FgRed)               // WorstColor marks the worst value of a metric.
	WinnerColor = color.New(color.FgGreen, color.Faint)
	HeaderColor = color.New(color.Bold)
)

// Band colors follow the five score bands from green to dark red.
var bandColors = map[string]*color.Color{
	"green":   color.New(color.FgGreen),
	"yellow":  color.New(color.FgYellow),
	"orange":  color.New(color.FgHiYellow, color.Bold),
	"red":     color.New(color.FgRed),
	"darkred": color.New(color.FgRed, color.Bold),
}

// GetColorLabel returns the score band label colored for console output.
func GetColorLabel(score float64) string {
	band, ok := schema.GetScoreBand(score)
	if !ok {
		return schema.GetPlainLabel(score)
	}
	if c, found := bandColors[band.Color]; found {
		return c.Sprint(band.Label)
	}
	return band.Label
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. It returns os.Stdout for an empty path.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// LogCompareHeader prints a concise, 2-line header for a product comparison.
func LogCompareHeader(w io.Writer, cfg *Config, names []string) {
	source := string(cfg.CatalogBackend) + " catalog"
	if cfg.ProductFile != "" {
		source = filepath.Base(cfg.ProductFile)
	}
	_, _ = fmt.Fprintf(w, "🔎 Source: %s\n", source)
	_, _ = fmt.Fprintf(w, "📊 Comparing: %s\n", strings.Join(names, " ↔ "))
}

// GetCatalogDBFilePath returns the path to the SQLite DB file for the product catalog.
func GetCatalogDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".foodrank_catalog.db"
	}
	return filepath.Join(homeDir, ".foodrank_catalog.db")
}

// TruncateName shortens a name to maxLen runes with a trailing ellipsis.
// Names that fit are returned unchanged.
func TruncateName(name string, maxLen int) string {
	if maxLen < 1 || utf8.RuneCountInString(name) <= maxLen {
		return name
	}
	runes := []rune(name)
	return string(runes[:maxLen]) + "…"
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

// DedupeIDs drops repeated and blank ids while keeping first-seen order.
func DedupeIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
