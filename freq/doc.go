// Package freq merges word-frequency mappings.
//
// Merge sums the counts for each word across any number of inputs and
// returns the totals ordered by descending count, with ties broken by
// ascending word:
//
//	freq.Merge(
//	    map[string]int{"python": 10, "java": 3},
//	    map[string]int{"python": 5, "c++": 2},
//	)
//	// [python=15 java=3 c++=2]
//
// Counts may be negative. Totals of zero or below are kept.
package freq
