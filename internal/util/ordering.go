package util

import "sort"

// Alphabetized returns the elements of s as a slice sorted ascending. E is
// constrained to ~string and compared with <. StringOrdered gives the same
// order as a single display string; this helper returns a slice instead
// (e.g. for iterating Grammar.FOLLOW in a fixed order).
func Alphabetized[E ~string](s ISet[E]) []E {
	elems := s.Elements()
	sorted := make([]E, len(elems))
	copy(sorted, elems)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return sorted
}
