package contract

import (
	"fmt"
	"slices"
	"strings"

	"github.com/huangsam/foodrank/schema"
)

// Default values for configuration.
const (
	NoRounding         = -1 // Keep values exactly as reported
	DefaultPrecision   = NoRounding
	MinPrecision       = 0
	MaxPrecision       = 3
	DefaultListLimit   = 50
	MaxCompareProducts = 4
	MinCompareProducts = 2
	DefaultFallback    = "—"
)

// NarrowWidth is the terminal width below which the auto view switches to cards.
const NarrowWidth = 100

// Config holds the runtime configuration for a comparison.
// This struct is the "final, validated" config.
type Config struct {
	ProductIDs  []string
	ProductFile string

	Output     schema.OutputMode
	OutputFile string
	View       schema.ViewMode
	Card       int // 1-based card to show in the card view (0 = all cards)
	Width      int // Terminal width override (0 = auto-detect)
	Precision  int
	Fallback   string
	ListLimit  int

	CatalogBackend   schema.DatabaseBackend
	CatalogDBConnect string // Please use env var as this is plaintext

	UseColors bool // Enable colored cells in text output
}

// Clone returns a copy of the config that can be changed without touching the original.
func (c *Config) Clone() *Config {
	clone := *c
	clone.ProductIDs = slices.Clone(c.ProductIDs)
	return &clone
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	ProductIDs []string

	// --- Fields from rootCmd.PersistentFlags() ---
	Output           string `mapstructure:"output"`
	OutputFile       string `mapstructure:"output-file"`
	Precision        int    `mapstructure:"precision"`
	Fallback         string `mapstructure:"fallback"`
	Width            int    `mapstructure:"width"`
	Color            string `mapstructure:"color"`
	File             string `mapstructure:"file"`
	CatalogBackend   string `mapstructure:"catalog-backend"`
	CatalogDBConnect string `mapstructure:"catalog-db-connect"`

	// --- Fields from compareCmd.Flags() ---
	View string `mapstructure:"view"`
	Card int    `mapstructure:"card"`

	// --- Fields from catalogListCmd.Flags() ---
	Limit int `mapstructure:"limit"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := validateOutputInputs(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfigs(cfg, input); err != nil {
		return err
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("catalog-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("catalog-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// ParseCatalogBackend normalizes and validates a catalog backend name.
func ParseCatalogBackend(s string) (schema.DatabaseBackend, error) {
	backend := schema.DatabaseBackend(strings.ToLower(strings.TrimSpace(s)))
	if backend == "" {
		return schema.SQLiteBackend, nil
	}
	if _, ok := schema.ValidCatalogBackends[backend]; !ok {
		return "", fmt.Errorf("invalid catalog backend '%s'. must be sqlite, mysql, postgresql, none", s)
	}
	return backend, nil
}

// validateBackendConfigs validates the catalog backend configuration.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	backend, err := ParseCatalogBackend(input.CatalogBackend)
	if err != nil {
		return err
	}
	cfg.CatalogBackend = backend
	cfg.CatalogDBConnect = input.CatalogDBConnect
	return ValidateDatabaseConnectionString(cfg.CatalogBackend, cfg.CatalogDBConnect)
}

// validateSimpleInputs processes and validates fields that need no cross-checks.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.ProductIDs = input.ProductIDs
	cfg.ProductFile = strings.TrimSpace(input.File)
	cfg.Fallback = input.Fallback
	if cfg.Fallback == "" {
		cfg.Fallback = DefaultFallback
	}

	cfg.UseColors = true
	if input.Color != "" {
		colors, err := ParseBoolString(input.Color)
		if err != nil {
			return fmt.Errorf("invalid --color value: %w", err)
		}
		cfg.UseColors = colors
	}

	if err := ValidatePrecision(input.Precision); err != nil {
		return err
	}
	cfg.Precision = input.Precision

	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	cfg.Width = input.Width

	if input.Card < 0 {
		return fmt.Errorf("card must be 0 (all cards) or a 1-based position (received %d)", input.Card)
	}
	cfg.Card = input.Card

	if input.Limit < 0 {
		return fmt.Errorf("limit cannot be negative (received %d)", input.Limit)
	}
	cfg.ListLimit = input.Limit

	return nil
}

// ValidatePrecision accepts NoRounding or a decimal place count in [MinPrecision, MaxPrecision].
func ValidatePrecision(p int) error {
	if p == NoRounding || (p >= MinPrecision && p <= MaxPrecision) {
		return nil
	}
	return fmt.Errorf("precision must be between %d and %d, or %d for no rounding (received %d)", MinPrecision, MaxPrecision, NoRounding, p)
}

// validateOutputInputs validates the output format, output file and view.
func validateOutputInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if cfg.Output == "" {
		cfg.Output = schema.TextOut
	}
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}

	cfg.OutputFile = input.OutputFile
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}

	cfg.View = schema.ViewMode(strings.ToLower(input.View))
	if cfg.View == "" {
		cfg.View = schema.AutoView
	}
	if _, ok := schema.ValidViewModes[cfg.View]; !ok {
		return fmt.Errorf("invalid view '%s'. must be auto, table, cards", input.View)
	}

	return nil
}
