package suffixarray

import (
	"cmp"
	"slices"
	"sort"
)

// Lookup returns the start positions of every occurrence of pattern in s,
// in ascending order. Occurrences may overlap. An empty pattern occurs at
// every position.
//
// All suffixes that begin with pattern form one contiguous block of SA rows,
// found with two binary searches.
//
// Complexity: O(m log n + occ log occ), where m = len(pattern).
func Lookup[T cmp.Ordered](s []T, sa []int, pattern []T) []int {
	lo, hi := Range(s, sa, pattern)
	positions := slices.Clone(sa[lo:hi])
	slices.Sort(positions)

	return positions
}

// Range returns the half-open block [lo, hi) of SA rows whose suffixes start
// with pattern. lo == hi means pattern does not occur in s.
func Range[T cmp.Ordered](s []T, sa []int, pattern []T) (lo, hi int) {
	lo = sort.Search(len(sa), func(r int) bool {
		return comparePrefix(s, sa[r], pattern) >= 0
	})
	hi = lo + sort.Search(len(sa)-lo, func(r int) bool {
		return comparePrefix(s, sa[lo+r], pattern) > 0
	})

	return lo, hi
}

// comparePrefix compares the suffix at start, truncated to len(pattern)
// symbols, with pattern. It returns 0 when pattern is a prefix of the suffix.
func comparePrefix[T cmp.Ordered](s []T, start int, pattern []T) int {
	suffix := s[start:]
	for i, c := range pattern {
		if i == len(suffix) {
			return -1
		}
		if d := cmp.Compare(suffix[i], c); d != 0 {
			return d
		}
	}

	return 0
}
