// Package automaton builds suffix automata: the minimal deterministic
// automaton whose accepted paths spell exactly the substrings of a sequence.
//
// 🚀 What is a suffix automaton?
//
//	Every state stands for a class of substrings that end at the same set of
//	positions. A state records:
//	  • Len  – length of the longest substring in its class
//	  • Link – suffix link to the class of the next shorter suffixes
//	  • Edges – one transition per symbol, to the class reached by appending it
//
//	For s = "ababa" the automaton has 6 states; the suffix-link chain from the
//	last state enumerates every suffix of s.
//
// ✨ Key features:
//   - Online construction: Extend appends one symbol in amortized O(1)
//     (for a fixed alphabet; O(log σ) per transition lookup in general)
//   - Arena layout: states are plain records addressed by integer id; links
//     and edge targets are ids, so a Snapshot is trivially serializable
//   - Unbounded alphabet: any cmp.Ordered symbol type, per-state sorted edges
//   - Queries: DistinctSubstrings, LongestCommonSubstring / CommonSubstring,
//     Contains, IsSuffix, Occurrences, TopologicalOrder
//
// ⚙️ Usage:
//
//	a := automaton.BuildString("ababa")
//	fmt.Println(a.DistinctSubstrings())                   // 9
//	fmt.Println(a.LongestCommonSubstring([]rune("baba"))) // 4
//
// Performance:
//
//   - Build: O(n log σ) time, at most 2n-1 states and 3n-4 transitions
//   - LongestCommonSubstring: O(m log σ) for a probe of length m
//   - DistinctSubstrings: O(states)
//
// Thread safety:
//
//   - Extend mutates the automaton and must not run concurrently with
//     anything else on the same instance.
//   - Once construction is finished, all query methods may be called
//     concurrently.
package automaton
