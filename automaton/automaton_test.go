// Package automaton_test checks suffix automaton construction and queries
// against brute-force substring enumeration.
package automaton_test

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/suffixkit/automaton"
	"github.com/katalvlaran/suffixkit/suffixarray"
)

// allStrings enumerates every string over alphabet with length 0..maxLen.
func allStrings(alphabet string, maxLen int) []string {
	out := []string{""}
	level := []string{""}
	for l := 1; l <= maxLen; l++ {
		var next []string
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
	rng := rand.New(rand.NewPCG(seed, seed*31+7))
	letters := []rune(alphabet)
	out := make([]string, count)
	for i := range out {
		var b strings.Builder
		for j := rng.IntN(maxLen + 1); j > 0; j-- {
			b.WriteRune(letters[rng.IntN(len(letters))])
		}
		out[i] = b.String()
	}

	return out
}

// bruteLCS returns the longest common substring length by trying every pair
// of start positions.
func bruteLCS(s, t string) int {
	a, b := []rune(s), []rune(t)
	best := 0
	for i := range a {
		for j := range b {
			k := 0
			for i+k < len(a) && j+k < len(b) && a[i+k] == b[j+k] {
				k++
			}
			best = max(best, k)
		}
	}

	return best
}

// ------------------------------------------------------------------------
// 1. Fixed scenarios
// ------------------------------------------------------------------------

func TestBuild_Empty(t *testing.T) {
	a := automaton.BuildString("")
	require.Equal(t, 1, a.NumStates(), "only the initial state")
	assert.Equal(t, 0, a.Len(automaton.Initial))
	assert.Equal(t, automaton.NoLink, a.Link(automaton.Initial))
	assert.Equal(t, automaton.Initial, a.Last())
	assert.Equal(t, int64(0), a.DistinctSubstrings())
	assert.Equal(t, 0, a.LongestCommonSubstring([]rune("abc")))
	assert.True(t, a.Contains(nil))
	assert.False(t, a.Contains([]rune("a")))
	assert.Equal(t, []int{0}, a.TopologicalOrder())
}

func TestBuild_Ababa(t *testing.T) {
	a := automaton.BuildString("ababa")
	assert.Equal(t, 6, a.NumStates())
	assert.Equal(t, int64(9), a.DistinctSubstrings())
	assert.Equal(t, 4, a.LongestCommonSubstring([]rune("baba")))
	assert.Equal(t, automaton.Match{Length: 4, ProbeStart: 0}, a.CommonSubstring([]rune("baba")))
	assert.Equal(t, 5, a.Length())
}

func TestBuild_Banana(t *testing.T) {
	a := automaton.BuildString("banana")
	assert.Equal(t, int64(15), a.DistinctSubstrings())
	assert.Equal(t, 3, a.LongestCommonSubstring([]rune("xxnanxx")))
	assert.Equal(t, automaton.Match{Length: 3, ProbeStart: 2}, a.CommonSubstring([]rune("xxnanxx")))
	assert.Equal(t, automaton.Match{}, a.CommonSubstring([]rune("xyz")))

	assert.Equal(t, 2, a.Occurrences([]rune("ana")))
	assert.Equal(t, 3, a.Occurrences([]rune("a")))
	assert.Equal(t, 1, a.Occurrences([]rune("banana")))
	assert.Equal(t, 0, a.Occurrences([]rune("nab")))
	assert.Equal(t, 6, a.Occurrences(nil))

	assert.True(t, a.IsSuffix([]rune("ana")))
	assert.True(t, a.IsSuffix([]rune("")))
	assert.False(t, a.IsSuffix([]rune("anan")))
	assert.False(t, a.IsSuffix([]rune("x")))
}

func TestBuild_CloneRedirects(t *testing.T) {
	// "abb": the second 'b' splits the class {ab, b}.
	a := automaton.BuildString("abb")
	snap := a.Snapshot()

	clones := 0
	for _, st := range snap {
		if st.Cloned {
			clones++
			assert.Equal(t, 1, st.Len)
			assert.Equal(t, automaton.Initial, st.Link)
		}
	}
	assert.Equal(t, 1, clones)
	assert.Equal(t, int64(5), a.DistinctSubstrings()) // a b ab bb abb
}

func TestBuild_GenericSymbols(t *testing.T) {
	words := strings.Fields("to be or not to be")
	a := automaton.Build(words)
	assert.True(t, a.Contains([]string{"not", "to", "be"}))
	assert.False(t, a.Contains([]string{"be", "to"}))
	assert.Equal(t, 2, a.Occurrences([]string{"to", "be"}))
	assert.Equal(t, 3, a.LongestCommonSubstring(strings.Fields("is not to be done")))

	bytes := automaton.Build([]byte{0x00, 0xff, 0x00, 0xff})
	assert.Equal(t, int64(7), bytes.DistinctSubstrings())
}

// ------------------------------------------------------------------------
// 2. Structural invariants
// ------------------------------------------------------------------------

func TestBuild_Invariants(t *testing.T) {
	for _, str := range append(allStrings("ab", 10), randomStrings(1, "abcde", 200, 80)...) {
		a := automaton.BuildString(str)
		n := len([]rune(str))

		require.LessOrEqual(t, a.NumStates(), max(n+1, 2*n-1), "state bound for %q", str)
		require.Equal(t, 0, a.Len(automaton.Initial))
		require.Equal(t, n, a.Len(a.Last()))

		for _, st := range a.Snapshot()[1:] {
			require.Greater(t, st.Len, a.Len(st.Link), "len strictly exceeds link len in %q", str)
			for i, e := range st.Edges {
				if i > 0 {
					require.Less(t, st.Edges[i-1].Symbol, e.Symbol, "edges sorted and unique")
				}
				require.GreaterOrEqual(t, a.Len(e.Target), st.Len+1, "edges lengthen the class")
			}
		}
	}
}

func TestTopologicalOrder(t *testing.T) {
	a := automaton.BuildString("abcbcbbacab")
	order := a.TopologicalOrder()
	require.Len(t, order, a.NumStates())
	assert.Equal(t, automaton.Initial, order[0])

	pos := make([]int, len(order))
	for i, id := range order {
		pos[id] = i
	}
	for _, st := range a.Snapshot() {
		for _, e := range st.Edges {
			assert.Less(t, pos[st.ID], pos[e.Target], "edge %d→%d goes forward", st.ID, e.Target)
		}
		if st.Link != automaton.NoLink {
			assert.Less(t, pos[st.Link], pos[st.ID], "link %d→%d goes backward", st.ID, st.Link)
		}
	}
}

// ------------------------------------------------------------------------
// 3. Properties against brute force
// ------------------------------------------------------------------------

func TestContains_IffSubstring(t *testing.T) {
	probes := allStrings("abc", 5)
	for _, str := range allStrings("abc", 6) {
		a := automaton.BuildString(str)
		for _, w := range probes {
			if !assert.Equal(t, strings.Contains(str, w), a.Contains([]rune(w)), "Contains(%q, %q)", str, w) {
				return
			}
		}
	}
}

func TestIsSuffix_MatchesBruteForce(t *testing.T) {
	probes := allStrings("ab", 5)
	for _, str := range allStrings("ab", 7) {
		a := automaton.BuildString(str)
		for _, w := range probes {
			if !assert.Equal(t, strings.HasSuffix(str, w), a.IsSuffix([]rune(w)), "IsSuffix(%q, %q)", str, w) {
				return
			}
		}
	}
}

func TestOccurrences_MatchesBruteForce(t *testing.T) {
	probes := allStrings("ab", 4)[1:]
	for _, str := range randomStrings(2, "ab", 100, 40) {
		a := automaton.BuildString(str)
		for _, w := range probes {
			want := 0
			for i := 0; i+len(w) <= len(str); i++ {
				if str[i:i+len(w)] == w {
					want++
				}
			}
			if !assert.Equal(t, want, a.Occurrences([]rune(w)), "Occurrences(%q, %q)", str, w) {
				return
			}
		}
	}
}

func TestDistinctSubstrings_CrossCheck(t *testing.T) {
	for _, str := range append(allStrings("abc", 7), randomStrings(4, "ab", 100, 150)...) {
		s := []rune(str)
		sa := suffixarray.Build(s)
		want := suffixarray.CountDistinct(s, sa, suffixarray.LCP(s, sa))
		if !assert.Equal(t, want, automaton.Build(s).DistinctSubstrings(), "distinct substrings of %q", str) {
			return
		}
	}
}

func TestLongestCommonSubstring_MatchesBruteForce(t *testing.T) {
	texts := randomStrings(5, "abc", 60, 30)
	probes := randomStrings(6, "abcd", 60, 30)
	for i := range texts {
		a := automaton.BuildString(texts[i])
		m := a.CommonSubstring([]rune(probes[i]))
		require.Equal(t, bruteLCS(texts[i], probes[i]), m.Length, "LCS(%q, %q)", texts[i], probes[i])

		found := []rune(probes[i])[m.ProbeStart : m.ProbeStart+m.Length]
		assert.True(t, strings.Contains(texts[i], string(found)))
	}
}

// ------------------------------------------------------------------------
// 4. Idempotence and incremental construction
// ------------------------------------------------------------------------

func TestBuild_Idempotent(t *testing.T) {
	for _, str := range randomStrings(8, "xyz", 40, 60) {
		first := automaton.BuildString(str).Snapshot()
		second := automaton.BuildString(str).Snapshot()
		if diff := cmp.Diff(first, second); diff != "" {
			t.Fatalf("rebuild of %q differs (-first +second):\n%s", str, diff)
		}
	}
}

func TestExtend_MatchesBuild(t *testing.T) {
	str := "cacaocacao"
	a := automaton.New[rune](automaton.WithCapacity(len(str)))
	for i, c := range str {
		a.Extend(c)
		want := automaton.BuildString(str[:i+1])
		if diff := cmp.Diff(want.Snapshot(), a.Snapshot()); diff != "" {
			t.Fatalf("after %q (-build +extend):\n%s", str[:i+1], diff)
		}
	}
}

func TestExtend_InvalidatesOccurrences(t *testing.T) {
	a := automaton.BuildString("aa")
	require.Equal(t, 2, a.Occurrences([]rune("a")))
	a.Extend('a')
	assert.Equal(t, 3, a.Occurrences([]rune("a")))
	assert.Equal(t, 2, a.Occurrences([]rune("aa")))
}

func TestWithCapacity_NegativePanics(t *testing.T) {
	assert.Panics(t, func() { automaton.New[rune](automaton.WithCapacity(-1)) })
}
