// Package index bundles every substring structure built over one sequence:
// the suffix array, its LCP array and the suffix automaton.
//
// 🚀 Why a facade?
//
//	The suffixarray and automaton packages are independent. Callers that
//	want the full picture of a string (the sorted suffix listing, the
//	distinct-substring count and its independent cross-check, probe
//	queries) would otherwise rebuild and thread the same arrays by hand.
//
// ⚙️ Usage:
//
//	idx := index.NewString("banana")
//	for _, row := range idx.Rows() {
//	    fmt.Println(row.Rank, row.Start, idx.Suffix(row), row.LCP)
//	}
//	fmt.Println(idx.DistinctCount())            // 15
//	if err := idx.CrossCheck(); err != nil { … } // ErrDerivationMismatch
//
// An Index is immutable after New returns and safe for concurrent queries.
package index
