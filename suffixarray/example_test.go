package suffixarray_test

import (
	"fmt"

	"github.com/katalvlaran/suffixkit/suffixarray"
)

// ExampleBuild lists the sorted suffixes of "banana" with their LCP values.
//
// Scenario:
//
//	s = "banana"
//	every suffix, in lexicographic order, next to the number of symbols it
//	shares with the suffix listed directly above it.
//
// Complexity: O(n log² n) time, O(n) memory
func ExampleBuild() {
	s := []rune("banana")
	sa := suffixarray.Build(s)
	lcp := suffixarray.LCP(s, sa)

	for r, start := range sa {
		fmt.Printf("%d\t%d\t%s\t%d\n", r, start, string(s[start:]), lcp[r])
	}
	fmt.Println("distinct substrings:", suffixarray.CountDistinct(s, sa, lcp))
	// Output:
	// 0	5	a	0
	// 1	3	ana	1
	// 2	1	anana	3
	// 3	0	banana	0
	// 4	4	na	0
	// 5	2	nana	2
	// distinct substrings: 15
}

// ExampleLookup finds every occurrence of a pattern, overlapping ones included.
func ExampleLookup() {
	s := []byte("abracadabra")
	sa := suffixarray.Build(s, suffixarray.WithStrategy(suffixarray.StrategyRadix))

	fmt.Println(suffixarray.Lookup(s, sa, []byte("abra")))
	fmt.Println(suffixarray.Lookup(s, sa, []byte("a")))
	// Output:
	// [0 7]
	// [0 3 5 7 10]
}

// ExampleLongestRepeated reports the longest substring that appears twice.
func ExampleLongestRepeated() {
	s := []rune("mississippi")
	sa := suffixarray.Build(s)
	start, length := suffixarray.LongestRepeated(sa, suffixarray.LCP(s, sa))

	fmt.Println(string(s[start : start+length]))
	// Output:
	// issi
}
