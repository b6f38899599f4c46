package schema

// Custom string types for type safety.
type (
	// Direction says which values of a metric are favorable.
	Direction string

	// Highlight is the emphasis a comparison cell receives.
	Highlight string

	// OutputMode represents the format of the output.
	OutputMode string

	// ViewMode represents how a text comparison is laid out.
	ViewMode string

	// DatabaseBackend represents the database backend for the product catalog.
	DatabaseBackend string
)

// All better directions supported.
const (
	DirectionLower  Direction = "lower"
	DirectionHigher Direction = "higher"
	DirectionNone   Direction = "none" // displayed, never ranked
)

// All cell highlights supported, in precedence order.
const (
	HighlightBest   Highlight = "best"
	HighlightWorst  Highlight = "worst"
	HighlightWinner Highlight = "winner"
	HighlightNone   Highlight = ""
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All view modes supported.
const (
	AutoView  ViewMode = "auto" // default
	TableView ViewMode = "table"
	CardView  ViewMode = "cards"
)

// All catalog backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// ValidDirections lists all valid better directions.
var ValidDirections = map[Direction]struct{}{
	DirectionLower:  {},
	DirectionHigher: {},
	DirectionNone:   {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidViewModes lists all valid view modes.
var ValidViewModes = map[ViewMode]struct{}{
	AutoView:  {},
	TableView: {},
	CardView:  {},
}

// ValidCatalogBackends lists all valid catalog backends.
var ValidCatalogBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// IsRanked reports whether rows with this direction take part in ranking.
func (d Direction) IsRanked() bool {
	switch d {
	case DirectionLower, DirectionHigher:
		return true
	case DirectionNone:
		return false
	default:
		return false
	}
}
