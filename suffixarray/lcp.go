package suffixarray

import "cmp"

// LCP computes the longest-common-prefix array of s with Kasai's algorithm.
//
// The result has one entry per SA position: lcp[0] = 0 and, for r > 0,
// lcp[r] is the length of the common prefix of the suffixes at sa[r-1] and
// sa[r].
//
// Suffixes are visited in text order. If suffix i shares h symbols with its
// SA predecessor, suffix i+1 shares at least h-1 with its own predecessor,
// so the running match length drops by at most one per step and the total
// number of symbol comparisons is O(n).
//
// sa must be the suffix array of s (as returned by Build); behavior for any
// other permutation is undefined.
//
// Complexity:
//
//   - Time:  O(n)
//   - Space: O(n)
func LCP[T cmp.Ordered](s []T, sa []int) []int {
	n := len(s)
	lcp := make([]int, n)
	if n == 0 {
		return lcp
	}

	// posInSA[i] is the SA row holding suffix i.
	posInSA := make([]int, n)
	for r, i := range sa {
		posInSA[i] = r
	}

	h := 0
	for i := 0; i < n; i++ {
		r := posInSA[i]
		if r == 0 {
			h = 0
			continue
		}

		j := sa[r-1]
		for i+h < n && j+h < n && s[i+h] == s[j+h] {
			h++
		}
		lcp[r] = h
		if h > 0 {
			h--
		}
	}

	return lcp
}

// CountDistinct returns the number of distinct non-empty substrings of s.
//
// Every substring is a prefix of exactly one suffix occurrence counted in
// n(n+1)/2; the lcp[r] prefixes that suffix sa[r] shares with sa[r-1] were
// already counted there, so they are subtracted.
//
// Complexity: O(n) time, O(1) extra space.
func CountDistinct[T cmp.Ordered](s []T, sa, lcp []int) int64 {
	n := int64(len(s))
	total := n * (n + 1) / 2

	var shared int64
	for _, h := range lcp {
		shared += int64(h)
	}

	return total - shared
}

// LongestRepeated returns the start and length of the longest substring that
// occurs at least twice in s (occurrences may overlap). When several
// substrings tie, the lexicographically smallest one is reported. When no
// symbol repeats, LongestRepeated returns (0, 0).
func LongestRepeated(sa, lcp []int) (start, length int) {
	for r := 1; r < len(lcp); r++ {
		if lcp[r] > length {
			start, length = sa[r], lcp[r]
		}
	}

	return start, length
}
