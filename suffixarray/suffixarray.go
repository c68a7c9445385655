// Package suffixarray implements prefix-doubling suffix sorting.
//
// Algorithm Outline:
//  1. rank[i] = order of s[i] among the distinct symbols of s; SA[i] = i.
//  2. For k = 1, 2, 4, … while k < n:
//     sort SA by the pair (rank[i], rank[i+k]), where a missing second half
//     (i+k ≥ n) ranks below every real rank;
//     scan SA and assign new ranks, bumping the rank whenever the pair
//     differs from the previous element's pair;
//     stop once the largest rank is n-1 (all suffixes distinguished).
//
// After the final round SA is ordered by full suffix comparison.
package suffixarray

import (
	"cmp"
	"slices"
)

// noSecondHalf is the second key of a suffix shorter than k+1 symbols.
// It is below every real rank, so a proper prefix sorts first.
const noSecondHalf = -1

// Build returns the suffix array of s.
//
// Build is total: an empty s yields an empty (non-nil) slice and a single
// symbol yields [0]. The input is never modified.
//
// Options customization:
//
//   - WithStrategy(StrategyComparison): comparison sort per round (default).
//   - WithStrategy(StrategyRadix):      counting sort per round.
//
// Complexity:
//
//   - Time:  O(n log² n) comparison, O(n log n) radix
//   - Space: O(n)
func Build[T cmp.Ordered](s []T, opts ...Option) []int {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := len(s)
	sa := make([]int, n)
	for i := range sa {
		sa[i] = i
	}
	if n <= 1 {
		return sa
	}

	rank := initialRanks(s)
	next := make([]int, n)

	var radix *radixSorter
	if cfg.Strategy == StrategyRadix {
		radix = newRadixSorter(n)
	}

	for k := 1; k < n; k <<= 1 {
		if radix != nil {
			radix.sort(sa, rank, k)
		} else {
			sortByPairs(sa, rank, k)
		}

		maxRank := rerank(sa, rank, next, k)
		rank, next = next, rank
		if maxRank == n-1 {
			break
		}
	}

	return sa
}

// BuildString returns the suffix array of the runes of s.
// SA entries are rune offsets, not byte offsets.
func BuildString(s string, opts ...Option) []int {
	return Build([]rune(s), opts...)
}

// initialRanks maps every symbol to its position among the sorted distinct
// symbols of s. The result preserves symbol order and is bounded by n-1,
// which keeps the radix strategy's key domain small for any alphabet.
func initialRanks[T cmp.Ordered](s []T) []int {
	alphabet := slices.Clone(s)
	slices.Sort(alphabet)
	alphabet = slices.Compact(alphabet)

	rank := make([]int, len(s))
	for i, c := range s {
		rank[i], _ = slices.BinarySearch(alphabet, c)
	}

	return rank
}

// secondKey returns the rank of the half starting k symbols after i,
// or noSecondHalf when that half is past the end.
func secondKey(rank []int, i, k int) int {
	if i+k < len(rank) {
		return rank[i+k]
	}

	return noSecondHalf
}

// comparePairs orders suffixes a and b by (rank[a], rank[a+k]).
// The rank array is an explicit parameter so each round's comparator reads
// exactly the ranks of that round.
func comparePairs(rank []int, k, a, b int) int {
	if c := cmp.Compare(rank[a], rank[b]); c != 0 {
		return c
	}

	return cmp.Compare(secondKey(rank, a, k), secondKey(rank, b, k))
}

// sortByPairs is the comparison strategy for one doubling round.
func sortByPairs(sa, rank []int, k int) {
	slices.SortFunc(sa, func(a, b int) int {
		return comparePairs(rank, k, a, b)
	})
}

// rerank writes the ranks of the freshly sorted round into next and
// returns the largest rank assigned.
func rerank(sa, rank, next []int, k int) int {
	next[sa[0]] = 0
	for i := 1; i < len(sa); i++ {
		next[sa[i]] = next[sa[i-1]]
		if comparePairs(rank, k, sa[i-1], sa[i]) != 0 {
			next[sa[i]]++
		}
	}

	return next[sa[len(sa)-1]]
}

// radixSorter holds the scratch buffers reused by every radix round.
type radixSorter struct {
	buf   []int // intermediate order after the second-key pass
	count []int // bucket counters, one per key value (keys are shifted by one)
}

// newRadixSorter allocates buffers for sequences of length n.
// Keys range over [0, n]: ranks are < n and the shifted sentinel is 0.
func newRadixSorter(n int) *radixSorter {
	return &radixSorter{
		buf:   make([]int, n),
		count: make([]int, n+1),
	}
}

// sort orders sa by (rank[i], rank[i+k]) with two stable counting passes:
// first by the second key, then by the first key.
func (r *radixSorter) sort(sa, rank []int, k int) {
	r.countingPass(sa, r.buf, func(i int) int { return secondKey(rank, i, k) + 1 })
	r.countingPass(r.buf, sa, func(i int) int { return rank[i] + 1 })
}

// countingPass stably distributes src into dst by key.
func (r *radixSorter) countingPass(src, dst []int, key func(int) int) {
	clear(r.count)
	for _, i := range src {
		r.count[key(i)]++
	}

	// turn counts into bucket start offsets
	start := 0
	for b, c := range r.count {
		r.count[b] = start
		start += c
	}

	for _, i := range src {
		b := key(i)
		dst[r.count[b]] = i
		r.count[b]++
	}
}
