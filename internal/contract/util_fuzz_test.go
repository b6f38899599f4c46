package contract

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// FuzzTruncateName fuzzes TruncateName with random names and limits.
func FuzzTruncateName(f *testing.F) {
	seeds := []struct {
		name   string
		maxLen int
	}{
		{"Crunchy Peanut Butter", 12},
		{"", 12},
		{"Żółta Ćwikła", 3},
		{"abc", -1},
	}
	for _, seed := range seeds {
		f.Add(seed.name, seed.maxLen)
	}

	f.Fuzz(func(t *testing.T, name string, maxLen int) {
		if !utf8.ValidString(name) {
			t.Skip()
		}
		got := TruncateName(name, maxLen)
		if maxLen >= 1 && utf8.RuneCountInString(got) > maxLen+1 {
			t.Fatalf("TruncateName(%q, %d) = %q is too long", name, maxLen, got)
		}
		if got != name && !strings.HasSuffix(got, "…") {
			t.Fatalf("truncated name %q lacks ellipsis", got)
		}
	})
}
