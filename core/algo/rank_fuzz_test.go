package algo

import (
	"math"
	"testing"

	"github.com/huangsam/foodrank/schema"
)

// decodeColumn turns fuzz bytes into a nullable column. Every third byte marks a null.
func decodeColumn(data []byte) []*float64 {
	values := make([]*float64, 0, len(data))
	for i, b := range data {
		if i%3 == 2 && b%2 == 0 {
			values = append(values, nil)
			continue
		}
		v := float64(int(b) - 128)
		values = append(values, &v)
	}
	return values
}

// FuzzGetBestWorst checks ranking properties on random columns.
func FuzzGetBestWorst(f *testing.F) {
	f.Add([]byte{30, 10, 20}, true)
	f.Add([]byte{5, 5, 5}, false)
	f.Add([]byte{}, true)
	f.Add([]byte{0, 0, 0, 1}, false)

	f.Fuzz(func(t *testing.T, data []byte, lower bool) {
		values := decodeColumn(data)
		dir := schema.DirectionHigher
		if lower {
			dir = schema.DirectionLower
		}

		if GetBestWorst(values, schema.DirectionNone) != nil {
			t.Fatal("none direction must never rank")
		}

		entries := FilterNumericEntries(values)
		for _, e := range entries {
			if values[e.Idx] == nil || *values[e.Idx] != e.Val {
				t.Fatalf("entry %v does not match original column", e)
			}
		}

		ranking := GetBestWorst(values, dir)
		if len(entries) < 2 {
			if ranking != nil {
				t.Fatalf("ranked a column with %d numbers", len(entries))
			}
			return
		}

		lo, hi := math.Inf(1), math.Inf(-1)
		for _, e := range entries {
			lo = math.Min(lo, e.Val)
			hi = math.Max(hi, e.Val)
		}
		if lo == hi {
			if ranking != nil {
				t.Fatal("ranked a flat column")
			}
			return
		}
		if ranking == nil {
			t.Fatal("expected a ranking")
		}

		best, worst := *values[ranking.BestIdx], *values[ranking.WorstIdx]
		if lower && (best != lo || worst != hi) {
			t.Fatalf("lower: best=%v worst=%v, want %v %v", best, worst, lo, hi)
		}
		if !lower && (best != hi || worst != lo) {
			t.Fatalf("higher: best=%v worst=%v, want %v %v", best, worst, hi, lo)
		}

		// Earliest position wins among ties.
		for i := 0; i < ranking.BestIdx; i++ {
			if values[i] != nil && *values[i] == best {
				t.Fatalf("best index %d is not the first occurrence", ranking.BestIdx)
			}
		}
	})
}
