package automaton

// DistinctSubstrings returns the number of distinct non-empty substrings of
// the consumed string.
//
// State v accounts for the substrings of lengths len[link[v]]+1 … len[v],
// and every substring belongs to exactly one state.
//
// Complexity: O(states).
func (a *Automaton[T]) DistinctSubstrings() int64 {
	var total int64
	for id := 1; id < len(a.states); id++ {
		st := a.states[id]
		total += int64(st.len - a.states[st.link].len)
	}

	return total
}

// LongestCommonSubstring returns the length of the longest string that is a
// substring of both the consumed string and t.
func (a *Automaton[T]) LongestCommonSubstring(t []T) int {
	return a.CommonSubstring(t).Length
}

// CommonSubstring finds a longest common substring of the consumed string and
// t and reports where it sits in t. The earliest such position in t wins.
//
// The walk keeps the longest suffix of t[:i+1] that is a substring of the
// indexed string: on a missing edge it falls back along suffix links, whose
// classes hold ever shorter suffixes of the current match.
//
// Complexity: O(m log σ) amortized, m = len(t).
func (a *Automaton[T]) CommonSubstring(t []T) Match {
	v, l := Initial, 0
	var best Match

	for i, c := range t {
		if next, ok := a.Next(v, c); ok {
			v = next
			l++
		} else {
			for v != NoLink {
				if _, ok := a.Next(v, c); ok {
					break
				}
				v = a.states[v].link
			}
			if v == NoLink {
				v, l = Initial, 0
			} else {
				l = a.states[v].len + 1
				v, _ = a.Next(v, c)
			}
		}

		if l > best.Length {
			best = Match{Length: l, ProbeStart: i - l + 1}
		}
	}

	return best
}

// walk follows w from the initial state and returns the state reached.
func (a *Automaton[T]) walk(w []T) (int, bool) {
	v := Initial
	for _, c := range w {
		next, ok := a.Next(v, c)
		if !ok {
			return 0, false
		}
		v = next
	}

	return v, true
}

// Contains reports whether w is a substring of the consumed string.
// The empty string is always contained.
//
// Complexity: O(len(w) log σ).
func (a *Automaton[T]) Contains(w []T) bool {
	_, ok := a.walk(w)

	return ok
}

// IsSuffix reports whether w is a suffix of the consumed string. The
// terminal states are exactly those on the suffix-link chain of Last.
func (a *Automaton[T]) IsSuffix(w []T) bool {
	v, ok := a.walk(w)
	if !ok {
		return false
	}
	for t := a.last; t != NoLink; t = a.states[t].link {
		if t == v {
			return true
		}
	}

	return false
}

// Occurrences returns how many times w occurs in the consumed string,
// counting overlapping occurrences. The empty string is reported as occurring
// once per position, i.e. Length() times.
//
// The first call after construction (or after Extend) computes the
// end-position class sizes of all states in O(states); later calls cost
// O(len(w) log σ).
func (a *Automaton[T]) Occurrences(w []T) int {
	if len(w) == 0 {
		return a.Length()
	}
	v, ok := a.walk(w)
	if !ok {
		return 0
	}

	return a.endPosCounts()[v]
}

// endPosCounts returns |endpos(v)| for every state, computing it on demand.
// Every non-clone state other than the initial one owns exactly one end
// position; a state's class size is its own plus those of every state whose
// suffix link points at it, propagated from longest to shortest.
func (a *Automaton[T]) endPosCounts() []int {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.counts != nil {
		return a.counts
	}

	counts := make([]int, len(a.states))
	for id := 1; id < len(a.states); id++ {
		if !a.states[id].cloned {
			counts[id] = 1
		}
	}

	order := a.TopologicalOrder()
	for i := len(order) - 1; i > 0; i-- {
		v := order[i]
		counts[a.states[v].link] += counts[v]
	}
	a.counts = counts

	return counts
}
