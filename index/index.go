package index

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/suffixkit/automaton"
	"github.com/katalvlaran/suffixkit/suffixarray"
)

// ErrDerivationMismatch indicates that the SA+LCP and automaton counts of
// distinct substrings disagree, which means one of the structures is corrupt.
var ErrDerivationMismatch = errors.New("index: distinct-substring derivations disagree")

// Row is one line of the sorted suffix listing.
//
// Rank  – SA position.
// Start – start of the suffix in the text (SA[Rank]).
// LCP   – shared prefix length with the previous row (0 for Rank 0).
type Row struct {
	Rank  int `json:"rank"`
	Start int `json:"start"`
	LCP   int `json:"lcp"`
}

// Index holds all structures built over one text.
type Index[T cmp.Ordered] struct {
	text []T
	sa   []int
	lcp  []int
	sam  *automaton.Automaton[T]
}

// Options configures New.
//
// Strategy – suffix array sort strategy (default suffixarray.StrategyComparison).
type Options struct {
	Strategy suffixarray.Strategy
}

// Option represents a functional option for configuring New.
type Option func(*Options)

// WithStrategy selects the suffix array sort strategy.
func WithStrategy(s suffixarray.Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// DefaultOptions returns the Options used when New receives no options.
func DefaultOptions() Options {
	return Options{Strategy: suffixarray.StrategyComparison}
}

// New builds the suffix array, LCP array and suffix automaton of text.
// The index keeps its own copy of text.
func New[T cmp.Ordered](text []T, opts ...Option) *Index[T] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	own := slices.Clone(text)
	sa := suffixarray.Build(own, suffixarray.WithStrategy(cfg.Strategy))

	return &Index[T]{
		text: own,
		sa:   sa,
		lcp:  suffixarray.LCP(own, sa),
		sam:  automaton.Build(own),
	}
}

// NewString indexes the runes of s.
func NewString(s string, opts ...Option) *Index[rune] {
	return New([]rune(s), opts...)
}

// Len returns the number of symbols in the indexed text.
func (x *Index[T]) Len() int {
	return len(x.text)
}

// Text returns a copy of the indexed text.
func (x *Index[T]) Text() []T {
	return slices.Clone(x.text)
}

// SuffixArray returns a copy of the suffix array.
func (x *Index[T]) SuffixArray() []int {
	return slices.Clone(x.sa)
}

// LCP returns a copy of the LCP array.
func (x *Index[T]) LCP() []int {
	return slices.Clone(x.lcp)
}

// Automaton returns the suffix automaton. It is shared, not copied:
// callers must not Extend it.
func (x *Index[T]) Automaton() *automaton.Automaton[T] {
	return x.sam
}

// Rows returns the sorted suffix listing.
func (x *Index[T]) Rows() []Row {
	rows := make([]Row, len(x.sa))
	for r, start := range x.sa {
		rows[r] = Row{Rank: r, Start: start, LCP: x.lcp[r]}
	}

	return rows
}

// Suffix returns the symbols of the suffix listed in row.
func (x *Index[T]) Suffix(row Row) []T {
	return slices.Clone(x.text[row.Start:])
}

// DistinctCount returns the number of distinct substrings derived from the
// suffix and LCP arrays.
func (x *Index[T]) DistinctCount() int64 {
	return suffixarray.CountDistinct(x.text, x.sa, x.lcp)
}

// DistinctCountAutomaton returns the number of distinct substrings derived
// from the suffix automaton.
func (x *Index[T]) DistinctCountAutomaton() int64 {
	return x.sam.DistinctSubstrings()
}

// CrossCheck compares both distinct-substring derivations.
// Returns ErrDerivationMismatch (with both counts) when they differ.
func (x *Index[T]) CrossCheck() error {
	a, b := x.DistinctCount(), x.DistinctCountAutomaton()
	if a != b {
		return fmt.Errorf("%w: suffix array %d, automaton %d", ErrDerivationMismatch, a, b)
	}

	return nil
}

// Validate checks the suffix array and LCP array against the text and then
// cross-checks the distinct counts.
func (x *Index[T]) Validate() error {
	if err := suffixarray.ValidateLCP(x.text, x.sa, x.lcp); err != nil {
		return err
	}

	return x.CrossCheck()
}

// LongestCommonSubstring returns the length of the longest substring shared
// by the indexed text and t.
func (x *Index[T]) LongestCommonSubstring(t []T) int {
	return x.sam.LongestCommonSubstring(t)
}

// CommonSubstring returns the longest shared substring's location in t.
func (x *Index[T]) CommonSubstring(t []T) automaton.Match {
	return x.sam.CommonSubstring(t)
}

// Contains reports whether w is a substring of the indexed text.
func (x *Index[T]) Contains(w []T) bool {
	return x.sam.Contains(w)
}

// Lookup returns every start position of w in the indexed text, ascending.
func (x *Index[T]) Lookup(w []T) []int {
	return suffixarray.Lookup(x.text, x.sa, w)
}

// Occurrences returns how many times w occurs in the indexed text.
func (x *Index[T]) Occurrences(w []T) int {
	return x.sam.Occurrences(w)
}

// LongestRepeated returns the longest substring occurring at least twice.
func (x *Index[T]) LongestRepeated() []T {
	start, length := suffixarray.LongestRepeated(x.sa, x.lcp)

	return slices.Clone(x.text[start : start+length])
}
