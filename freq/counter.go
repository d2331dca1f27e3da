package freq

import (
	"maps"
	"slices"
)

// Counter accumulates counts per word. Missing words count as zero. The
// zero value is ready to use. It is not safe for concurrent use.
type Counter struct {
	counts map[string]int
}

func NewCounter() *Counter {
	return &Counter{counts: make(map[string]int)}
}

// Add adds n to word's count. n may be negative.
func (c *Counter) Add(word string, n int) {
	if c.counts == nil {
		c.counts = make(map[string]int)
	}

	c.counts[word] += n
}

// AddAll adds every count in m. m is not modified.
func (c *Counter) AddAll(m map[string]int) {
	for word, n := range m {
		c.Add(word, n)
	}
}

// Get returns word's count, zero if it was never added.
func (c *Counter) Get(word string) int {
	return c.counts[word]
}

// Len is the number of distinct words seen, including those whose total is zero.
func (c *Counter) Len() int {
	return len(c.counts)
}

// Map returns a copy of the totals.
func (c *Counter) Map() map[string]int {
	out := make(map[string]int, len(c.counts))
	maps.Copy(out, c.counts)

	return out
}

// Entries returns the totals in Compare order.
func (c *Counter) Entries() []Entry {
	entries := make([]Entry, 0, len(c.counts))
	for word, n := range c.counts {
		entries = append(entries, Entry{Word: word, Count: n})
	}

	slices.SortFunc(entries, Compare)

	return entries
}
