package suffixarray_test

import (
	"cmp"
	"math/rand/v2"
	"slices"
	"strings"
)

// allStrings enumerates every string over alphabet with length 0..maxLen.
func allStrings(alphabet string, maxLen int) []string {
	out := []string{""}
	level := []string{""}
	for l := 1; l <= maxLen; l++ {
		next := make([]string, 0, len(level)*len(alphabet))
		for _, prefix := range level {
			for _, c := range alphabet {
				next = append(next, prefix+string(c))
			}
		}
		out = append(out, next...)
		level = next
	}

	return out
}

// randomStrings returns count pseudo-random strings with lengths in [0, maxLen].
func randomStrings(seed uint64, alphabet string, count, maxLen int) []string {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	letters := []rune(alphabet)
	out := make([]string, count)
	for i := range out {
		var b strings.Builder
		n := rng.IntN(maxLen + 1)
		for j := 0; j < n; j++ {
			b.WriteRune(letters[rng.IntN(len(letters))])
		}
		out[i] = b.String()
	}

	return out
}

// bruteSA sorts suffix positions by direct suffix comparison.
func bruteSA[T cmp.Ordered](s []T) []int {
	sa := make([]int, len(s))
	for i := range sa {
		sa[i] = i
	}
	slices.SortFunc(sa, func(a, b int) int {
		return slices.Compare(s[a:], s[b:])
	})

	return sa
}

// bruteLCP compares every adjacent SA pair symbol by symbol.
func bruteLCP[T cmp.Ordered](s []T, sa []int) []int {
	lcp := make([]int, len(sa))
	for r := 1; r < len(sa); r++ {
		a, b := s[sa[r-1]:], s[sa[r]:]
		h := 0
		for h < len(a) && h < len(b) && a[h] == b[h] {
			h++
		}
		lcp[r] = h
	}

	return lcp
}

// bruteDistinct collects every substring in a set.
func bruteDistinct(s string) int64 {
	r := []rune(s)
	seen := make(map[string]struct{})
	for i := 0; i < len(r); i++ {
		for j := i + 1; j <= len(r); j++ {
			seen[string(r[i:j])] = struct{}{}
		}
	}

	return int64(len(seen))
}

// bruteOccurrences returns every start of pattern in s, ascending.
func bruteOccurrences(s, pattern []rune) []int {
	out := []int{}
	for i := 0; i+len(pattern) <= len(s); i++ {
		if slices.Equal(s[i:i+len(pattern)], pattern) {
			out = append(out, i)
		}
	}

	return out
}

// randomText returns a pseudo-random text of exactly n symbols.
func randomText(seed uint64, alphabet string, n int) []rune {
	rng := rand.New(rand.NewPCG(seed, seed+1))
	letters := []rune(alphabet)
	text := make([]rune, n)
	for i := range text {
		text[i] = letters[rng.IntN(len(letters))]
	}

	return text
}
