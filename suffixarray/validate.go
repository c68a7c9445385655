package suffixarray

import (
	"cmp"
	"fmt"
	"slices"
)

// Validate reports whether sa is the suffix array of s.
//
// Checks (in order):
//  1. len(sa) == len(s) (ErrLengthMismatch).
//  2. sa is a permutation of 0..n-1 (ErrNotPermutation).
//  3. adjacent suffixes are non-decreasing (ErrNotSorted).
//
// Complexity: O(n²) worst case, since each adjacent pair is compared in full.
func Validate[T cmp.Ordered](s []T, sa []int) error {
	n := len(s)
	if len(sa) != n {
		return fmt.Errorf("%w: len(sa)=%d, len(s)=%d", ErrLengthMismatch, len(sa), n)
	}

	seen := make([]bool, n)
	for r, i := range sa {
		if i < 0 || i >= n || seen[i] {
			return fmt.Errorf("%w: sa[%d]=%d", ErrNotPermutation, r, i)
		}
		seen[i] = true
	}

	for r := 1; r < n; r++ {
		if slices.Compare(s[sa[r-1]:], s[sa[r]:]) > 0 {
			return fmt.Errorf("%w: rows %d and %d (suffixes %d, %d)", ErrNotSorted, r-1, r, sa[r-1], sa[r])
		}
	}

	return nil
}

// ValidateLCP reports whether lcp is the LCP array of s under sa.
// sa itself is validated first, so any error from Validate may be returned.
//
// Complexity: O(n²) worst case.
func ValidateLCP[T cmp.Ordered](s []T, sa, lcp []int) error {
	if err := Validate(s, sa); err != nil {
		return err
	}
	if len(lcp) != len(s) {
		return fmt.Errorf("%w: len(lcp)=%d, len(s)=%d", ErrLengthMismatch, len(lcp), len(s))
	}
	if len(lcp) > 0 && lcp[0] != 0 {
		return fmt.Errorf("%w: lcp[0]=%d, want 0", ErrLCPMismatch, lcp[0])
	}

	for r := 1; r < len(lcp); r++ {
		if want := commonPrefix(s[sa[r-1]:], s[sa[r]:]); lcp[r] != want {
			return fmt.Errorf("%w: lcp[%d]=%d, want %d", ErrLCPMismatch, r, lcp[r], want)
		}
	}

	return nil
}

// commonPrefix returns the length of the longest common prefix of a and b.
func commonPrefix[T cmp.Ordered](a, b []T) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}

	return n
}
