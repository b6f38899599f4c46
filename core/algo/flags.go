package algo

import "github.com/huangsam/foodrank/schema"

// Warning labels, in the order they are reported.
const (
	WarnHighSalt   = "🧂 High Salt"
	WarnHighSugar  = "🍬 High Sugar"
	WarnHighSatFat = "🧈 High Sat Fat"
	WarnAdditives  = "⚗️ Additives"
)

// GetProductWarnings lists the raised risk flags of a product in a fixed order:
// salt, sugar, saturated fat, additives.
func GetProductWarnings(p schema.Product) []string {
	flags := make([]string, 0, 4)
	if p.HighSalt {
		flags = append(flags, WarnHighSalt)
	}
	if p.HighSugar {
		flags = append(flags, WarnHighSugar)
	}
	if p.HighSatFat {
		flags = append(flags, WarnHighSatFat)
	}
	if p.HighAdditiveLoad {
		flags = append(flags, WarnAdditives)
	}
	return flags
}

// GetCellHighlight classifies one cell. Row ranking outranks the winner tint,
// so the overall winner still shows as worst on a metric it loses.
func GetCellHighlight(idx int, ranking *schema.Ranking, winnerIdx int) schema.Highlight {
	if ranking != nil && idx == ranking.BestIdx {
		return schema.HighlightBest
	}
	if ranking != nil && idx == ranking.WorstIdx {
		return schema.HighlightWorst
	}
	if idx == winnerIdx {
		return schema.HighlightWinner
	}
	return schema.HighlightNone
}
