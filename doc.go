// Package suffixkit is your in-memory toolbox for substring structure:
// sorted suffixes, shared prefixes, distinct-substring counts and longest
// common substrings over any ordered symbol type.
//
// 🚀 What is suffixkit?
//
//	A small, allocation-conscious library that brings together:
//		• Suffix arrays: prefix doubling with comparison or radix sorting
//		• LCP arrays: Kasai's linear-time construction
//		• Suffix automata: online construction with state cloning
//		• Queries: distinct substrings (two independent derivations),
//		  longest common substring, membership, occurrence counts,
//		  pattern lookup and longest repeated substring
//
// ✨ Why choose suffixkit?
//
//   - Generic – symbols are any cmp.Ordered type (bytes, runes, ints, tokens)
//   - Verifiable – validators and a built-in cross-check between derivations
//   - Deterministic – sorted transitions, stable ids, identical rebuilds
//
// Packages:
//
//	suffixarray/ – Build, LCP, CountDistinct, Lookup, Validate
//	automaton/   – New, Extend, Build, DistinctSubstrings, LongestCommonSubstring
//	index/       – one facade over all structures of a single text
//	cmd/suffixkit – command-line explorer (suffixes, automaton, verify, search)
//
// Quick example:
//
//	banana → SA [5 3 1 0 4 2], LCP [0 1 3 0 0 2], 15 distinct substrings
//
//	go get github.com/katalvlaran/suffixkit
package suffixkit
