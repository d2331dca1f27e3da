package freq

import (
	"cmp"
	"fmt"
	"slices"
)

// Entry is one word and its merged count.
type Entry struct {
	Word  string `json:"word"  yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

func (e Entry) String() string {
	return fmt.Sprintf("%s=%d", e.Word, e.Count)
}

// Compare orders entries by descending count, then ascending word.
func Compare(a, b Entry) int {
	if c := cmp.Compare(b.Count, a.Count); c != 0 {
		return c
	}

	return cmp.Compare(a.Word, b.Word)
}

// IsOrdered reports whether entries are in Compare order.
func IsOrdered(entries []Entry) bool {
	return slices.IsSortedFunc(entries, Compare)
}
