// Package automaton implements online suffix automaton construction.
//
// Algorithm Outline (Extend(c)):
//  1. Append state cur with len = len[last] + 1.
//  2. Walk p from last along suffix links while p has no edge on c,
//     adding the edge p –c→ cur.
//  3. If the walk fell off the initial state, link[cur] = 0.
//  4. Otherwise let q = next[p][c]. If len[p]+1 == len[q], link[cur] = q.
//  5. Otherwise append clone of q with len = len[p]+1 (same edges, same
//     link), redirect every p –c→ q on the remaining walk to the clone,
//     and set link[q] = link[cur] = clone.
//  6. last = cur.
package automaton

import (
	"cmp"
	"slices"
	"sync"
)

// state is one arena record. Edges are kept sorted by symbol.
type state[T cmp.Ordered] struct {
	len    int
	link   int
	cloned bool
	next   []Edge[T]
}

// Automaton is a suffix automaton over symbols of type T.
// The zero value is not usable; create one with New or Build.
type Automaton[T cmp.Ordered] struct {
	states []state[T]
	last   int

	mu     sync.Mutex // guards counts
	counts []int      // end-position class sizes, nil until first Occurrences
}

// New returns an automaton for the empty string: only the initial state,
// with len 0 and no suffix link.
func New[T cmp.Ordered](opts ...Option) *Automaton[T] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	a := &Automaton[T]{
		states: make([]state[T], 0, max(1, 2*cfg.Capacity)),
		last:   Initial,
	}
	a.states = append(a.states, state[T]{len: 0, link: NoLink})

	return a
}

// Build returns the suffix automaton of s, extending symbol by symbol.
func Build[T cmp.Ordered](s []T, opts ...Option) *Automaton[T] {
	opts = append([]Option{WithCapacity(len(s))}, opts...)
	a := New[T](opts...)
	for _, c := range s {
		a.Extend(c)
	}

	return a
}

// BuildString returns the suffix automaton of the runes of s.
func BuildString(s string, opts ...Option) *Automaton[rune] {
	return Build([]rune(s), opts...)
}

// Extend appends c to the recognized string.
//
// Complexity: amortized O(log σ), σ = largest number of edges on a state.
func (a *Automaton[T]) Extend(c T) {
	cur := a.appendState(a.states[a.last].len+1, NoLink, nil, false)

	p := a.last
	for p != NoLink {
		if _, ok := a.Next(p, c); ok {
			break
		}
		a.setEdge(p, c, cur)
		p = a.states[p].link
	}

	if p == NoLink {
		a.states[cur].link = Initial
	} else {
		q, _ := a.Next(p, c)
		if a.states[p].len+1 == a.states[q].len {
			a.states[cur].link = q
		} else {
			clone := a.appendState(a.states[p].len+1, a.states[q].link, slices.Clone(a.states[q].next), true)
			for p != NoLink {
				if t, ok := a.Next(p, c); !ok || t != q {
					break
				}
				a.setEdge(p, c, clone)
				p = a.states[p].link
			}
			a.states[q].link = clone
			a.states[cur].link = clone
		}
	}

	a.last = cur

	a.mu.Lock()
	a.counts = nil
	a.mu.Unlock()
}

// appendState adds a record to the arena and returns its id.
func (a *Automaton[T]) appendState(length, link int, next []Edge[T], cloned bool) int {
	a.states = append(a.states, state[T]{len: length, link: link, cloned: cloned, next: next})

	return len(a.states) - 1
}

// findEdge locates c among the sorted edges of id.
func (a *Automaton[T]) findEdge(id int, c T) (int, bool) {
	return slices.BinarySearchFunc(a.states[id].next, c, func(e Edge[T], c T) int {
		return cmp.Compare(e.Symbol, c)
	})
}

// setEdge inserts or redirects the edge of id on c.
func (a *Automaton[T]) setEdge(id int, c T, target int) {
	i, ok := a.findEdge(id, c)
	if ok {
		a.states[id].next[i].Target = target
		return
	}
	a.states[id].next = slices.Insert(a.states[id].next, i, Edge[T]{Symbol: c, Target: target})
}

// NumStates returns the arena size, initial state included.
func (a *Automaton[T]) NumStates() int {
	return len(a.states)
}

// Last returns the id of the state representing the whole string.
func (a *Automaton[T]) Last() int {
	return a.last
}

// Length returns the number of symbols consumed so far.
func (a *Automaton[T]) Length() int {
	return a.states[a.last].len
}

// Len returns the length of the longest substring in the class of id.
func (a *Automaton[T]) Len(id int) int {
	return a.states[id].len
}

// Link returns the suffix link of id (NoLink for the initial state).
func (a *Automaton[T]) Link(id int) int {
	return a.states[id].link
}

// Next returns the target of the edge of id on c.
func (a *Automaton[T]) Next(id int, c T) (int, bool) {
	i, ok := a.findEdge(id, c)
	if !ok {
		return 0, false
	}

	return a.states[id].next[i].Target, true
}

// Edges returns a copy of the transitions of id, sorted by symbol.
func (a *Automaton[T]) Edges(id int) []Edge[T] {
	return slices.Clone(a.states[id].next)
}

// Snapshot returns a copy of the whole arena in id order.
func (a *Automaton[T]) Snapshot() []StateView[T] {
	views := make([]StateView[T], len(a.states))
	for id, st := range a.states {
		views[id] = StateView[T]{
			ID:     id,
			Len:    st.len,
			Link:   st.link,
			Cloned: st.cloned,
			Edges:  slices.Clone(st.next),
		}
	}

	return views
}
