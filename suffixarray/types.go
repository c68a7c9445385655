// Package suffixarray defines options, strategies and sentinel errors
// for suffix array construction and validation.
package suffixarray

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the validators.
var (
	// ErrLengthMismatch indicates that an array does not have one entry per symbol.
	ErrLengthMismatch = errors.New("suffixarray: array length does not match input length")

	// ErrNotPermutation indicates that SA is not a permutation of 0..n-1.
	ErrNotPermutation = errors.New("suffixarray: not a permutation of suffix positions")

	// ErrNotSorted indicates that two adjacent SA entries are out of lexicographic order.
	ErrNotSorted = errors.New("suffixarray: suffixes are not in lexicographic order")

	// ErrLCPMismatch indicates that an LCP entry differs from the true shared prefix length.
	ErrLCPMismatch = errors.New("suffixarray: LCP entry does not match suffixes")

	// ErrBadStrategy indicates that an unknown Strategy was passed to WithStrategy.
	ErrBadStrategy = errors.New("suffixarray: unknown sort strategy")
)

// Strategy selects how each prefix-doubling round orders the rank pairs.
//
//   - StrategyComparison – general comparison sort per round, O(n log n) per round.
//   - StrategyRadix      – two-pass counting sort on the bounded rank domain, O(n) per round.
//
// Both strategies produce the same suffix array.
type Strategy int

const (
	// StrategyComparison sorts each round with slices.SortFunc over rank pairs.
	StrategyComparison Strategy = iota

	// StrategyRadix sorts each round with a stable two-key counting sort.
	StrategyRadix
)

// String returns the lowercase name of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyComparison:
		return "comparison"
	case StrategyRadix:
		return "radix"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps a strategy name back to its value.
// Returns ErrBadStrategy for unknown names.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "comparison", "":
		return StrategyComparison, nil
	case "radix":
		return StrategyRadix, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadStrategy, name)
	}
}

// Options configures suffix array construction.
//
// Strategy – per-round sort algorithm (default StrategyComparison).
type Options struct {
	Strategy Strategy
}

// Option represents a functional option for configuring Build.
type Option func(*Options)

// WithStrategy selects the per-round sort algorithm.
// Unknown strategies panic with ErrBadStrategy, since they can only come
// from a programming error.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != StrategyComparison && s != StrategyRadix {
			panic(fmt.Sprintf("%s: %d", ErrBadStrategy.Error(), int(s)))
		}
		o.Strategy = s
	}
}

// DefaultOptions returns the Options used when Build receives no options.
//
// Defaults:
//   - Strategy: StrategyComparison.
func DefaultOptions() Options {
	return Options{Strategy: StrategyComparison}
}
