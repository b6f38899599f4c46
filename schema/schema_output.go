package schema

import (
	"math"
	"strings"
)

// ScoreBand is one of the five unhealthiness score bands.
type ScoreBand struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Color string `json:"color"`
}

var scoreBands = []struct {
	max  float64
	band ScoreBand
}{
	{20, ScoreBand{Name: "low", Label: "Low", Color: "green"}},
	{40, ScoreBand{Name: "moderate", Label: "Moderate", Color: "yellow"}},
	{60, ScoreBand{Name: "high", Label: "High", Color: "orange"}},
	{80, ScoreBand{Name: "very_high", Label: "Very High", Color: "red"}},
	{100, ScoreBand{Name: "extreme", Label: "Extreme", Color: "darkred"}},
}

// GetScoreBand returns the band for an unhealthiness score.
// Scores outside 1-100 (or NaN) have no band.
func GetScoreBand(score float64) (ScoreBand, bool) {
	if math.IsNaN(score) || score < 1 || score > 100 {
		return ScoreBand{}, false
	}
	for _, b := range scoreBands {
		if score <= b.max {
			return b.band, true
		}
	}
	return ScoreBand{}, false
}

// GetPlainLabel returns the band label for a score, or "Unknown".
func GetPlainLabel(score float64) string {
	if b, ok := GetScoreBand(score); ok {
		return b.Label
	}
	return "Unknown"
}

// SplitAllergenTags turns "en:gluten, en:milk" into ["gluten", "milk"].
// A nil or blank value yields no tags.
func SplitAllergenTags(tags *string) []string {
	if tags == nil || strings.TrimSpace(*tags) == "" {
		return []string{}
	}
	var out []string
	for tag := range strings.SplitSeq(*tags, ",") {
		tag = strings.TrimSpace(tag)
		tag = strings.TrimPrefix(tag, "en:")
		if tag != "" {
			out = append(out, tag)
		}
	}
	if out == nil {
		return []string{}
	}
	return out
}

// FormatAllergenTags joins cleaned allergen tags, or returns empty when there are none.
func FormatAllergenTags(tags []string, empty string) string {
	if len(tags) == 0 {
		return empty
	}
	return strings.Join(tags, ", ")
}
