package algo

import "github.com/huangsam/foodrank/schema"

// DefaultFallback is shown in place of a missing value.
const DefaultFallback = "—"

// FormatWithUnit renders "<value> <unit>", or the fallback for a null value.
// Values are not rounded here.
func FormatWithUnit(v schema.CellValue, unit, fallback string) string {
	if v.IsNull() {
		return fallback
	}
	return v.String() + " " + unit
}

// FormatPlain renders the value without a unit, or the fallback for a null value.
func FormatPlain(v schema.CellValue, fallback string) string {
	if v.IsNull() {
		return fallback
	}
	return v.String()
}
