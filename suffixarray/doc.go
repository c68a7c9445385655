// Package suffixarray builds suffix arrays and LCP arrays over arbitrary
// ordered symbol sequences, and answers the queries that fall out of them.
//
// 🚀 What is a suffix array?
//
//	The suffix array SA of a sequence s (length n) is the permutation of
//	0..n-1 that lists suffix start positions in lexicographic order of the
//	suffixes they begin:
//
//	  s = "banana"
//	  SA  = [5 3 1 0 4 2]    →  a, ana, anana, banana, na, nana
//	  LCP = [0 1 3 0 0 2]    →  shared prefix with the previous row
//
// ✨ Key features:
//   - Build:          prefix doubling, comparison sort (default) or radix sort
//   - LCP:            Kasai's linear-time LCP recovery
//   - CountDistinct:  n(n+1)/2 − ΣLCP distinct substrings
//   - Lookup:         every occurrence of a pattern by binary search over SA
//   - LongestRepeated: longest substring occurring at least twice
//   - Validate / ValidateLCP: diagnostics for externally supplied arrays
//
// ⚙️ Usage:
//
//	s := []rune("banana")
//	sa := suffixarray.Build(s, suffixarray.WithStrategy(suffixarray.StrategyRadix))
//	lcp := suffixarray.LCP(s, sa)
//	fmt.Println(suffixarray.CountDistinct(s, sa, lcp)) // 15
//
// Symbols:
//
//	Any cmp.Ordered type works as a symbol: bytes, runes, integers or whole
//	string tokens. The alphabet is unbounded; symbols are ranked by their
//	natural order before the first doubling round.
//
// Performance:
//
//   - Build (comparison): O(n log² n) time, O(n) memory
//   - Build (radix):      O(n log n) time,  O(n) memory
//   - LCP:                O(n) time,        O(n) memory
//   - Lookup:             O(m log n) per pattern of length m
//
// All functions are total for finite input, including the empty sequence.
// Preconditions such as "sa was built from s" are not checked at run time;
// use Validate when arrays come from an untrusted source.
package suffixarray
