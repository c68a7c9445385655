// Package automaton defines the arena records, options and sentinel errors
// of the suffix automaton.
package automaton

import (
	"cmp"
	"errors"
	"fmt"
)

// NoLink is the suffix link of the initial state, the only state without one.
const NoLink = -1

// Initial is the id of the initial state. It stands for the empty string.
const Initial = 0

// ErrBadCapacity indicates that WithCapacity received a negative length.
var ErrBadCapacity = errors.New("automaton: capacity must be non-negative")

// Edge is one transition: reading Symbol moves to state Target.
type Edge[T cmp.Ordered] struct {
	Symbol T
	Target int
}

// StateView is a read-only copy of one arena record.
//
// ID     – arena index.
// Len    – length of the longest substring in the state's class.
// Link   – suffix link id (NoLink for the initial state).
// Cloned – true if the state was split off another one during construction.
// Edges  – transitions sorted by Symbol.
type StateView[T cmp.Ordered] struct {
	ID     int
	Len    int
	Link   int
	Cloned bool
	Edges  []Edge[T]
}

// Match locates a longest common substring inside the probe string:
// probe[ProbeStart : ProbeStart+Length]. Length 0 means nothing matched
// and ProbeStart is 0.
type Match struct {
	Length     int
	ProbeStart int
}

// Options configures automaton construction.
//
// Capacity – number of symbols to pre-size the arena for (2·Capacity states).
type Options struct {
	Capacity int
}

// Option represents a functional option for configuring New and Build.
type Option func(*Options)

// WithCapacity pre-sizes the arena for n symbols. Build already sizes the
// arena from its input; use WithCapacity with New when the final length is
// known up front. A negative n panics with ErrBadCapacity.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(fmt.Sprintf("%s: %d", ErrBadCapacity.Error(), n))
		}
		o.Capacity = n
	}
}

// DefaultOptions returns the Options used when no options are given.
//
// Defaults:
//   - Capacity: 0 (the arena grows on demand).
func DefaultOptions() Options {
	return Options{Capacity: 0}
}
