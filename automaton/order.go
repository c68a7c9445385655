package automaton

// TopologicalOrder returns every state id ordered by non-decreasing Len.
//
// Both edges and reversed suffix links strictly increase Len, so this is a
// topological order of the transition DAG and of the suffix-link tree at the
// same time. The initial state always comes first.
//
// Complexity: O(states) via counting sort on Len.
func (a *Automaton[T]) TopologicalOrder() []int {
	maxLen := a.states[a.last].len

	bucket := make([]int, maxLen+2)
	for _, st := range a.states {
		bucket[st.len+1]++
	}
	for l := 1; l < len(bucket); l++ {
		bucket[l] += bucket[l-1]
	}

	order := make([]int, len(a.states))
	for id, st := range a.states {
		order[bucket[st.len]] = id
		bucket[st.len]++
	}

	return order
}
