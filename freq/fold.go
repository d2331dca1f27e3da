package freq

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Fold returns a new mapping whose words are NFC-normalized and case-folded,
// so "Go", "GO" and "go" land on one key. Counts of words that collide are
// summed. m is not modified.
func Fold(m map[string]int) map[string]int {
	folder := cases.Fold()
	out := make(map[string]int, len(m))

	for word, n := range m {
		out[norm.NFC.String(folder.String(word))] += n
	}

	return out
}
