// SPDX-License-Identifier: MIT
// Package: polarbayes/schema
//
// order.go: the index column ordering policy.
//
// Determinism:
//   • Every name gets an explicit rank: 0 for the chain name, 1 for the draw
//     name, 2 for anything else. Ties at rank 2 break on the name itself.
//   • No map iteration is involved, so the result is a pure function of the
//     input set.
//
// Complexity:
//   • Time O(n log n), Space O(n) for the returned copy.

package schema

import (
	"iter"
	"slices"
	"strings"
)

// Ranks of the ordering policy.
const (
	rankChain = 0
	rankDraw  = 1
	rankOther = 2
)

// rank places name relative to the reserved chain and draw names.
func (c orderConfig) rank(name string) int {
	switch name {
	case c.chain:
		return rankChain
	case c.draw:
		return rankDraw
	default:
		return rankOther
	}
}

// compare is the total order used by slices.SortStableFunc.
func (c orderConfig) compare(a, b string) int {
	ra, rb := c.rank(a), c.rank(b)
	if ra != rb {
		return ra - rb
	}

	return strings.Compare(a, b)
}

// OrderIndexColumnNames returns a new slice holding cols ordered as:
// the chain name (if present), the draw name (if present), then every other
// name in ascending lexicographic order.
//
// Behavior highlights:
//   - cols is not modified.
//   - Idempotent: ordering an ordered slice returns an equal slice.
//   - Duplicated names are kept; their relative placement is unspecified.
//
// Complexity: O(n log n).
func OrderIndexColumnNames(cols []string, opts ...Option) []string {
	cfg := newOrderConfig(opts...)
	out := slices.Clone(cols)
	slices.SortStableFunc(out, cfg.compare)

	return out
}

// OrderIndexColumnNamesSeq is OrderIndexColumnNames over any iterator of names,
// e.g. slices.Values(cols) or maps.Keys(set).
func OrderIndexColumnNamesSeq(seq iter.Seq[string], opts ...Option) []string {
	cfg := newOrderConfig(opts...)
	out := slices.Collect(seq)
	slices.SortStableFunc(out, cfg.compare)

	return out
}

// IsOrdered reports whether cols already follows the ordering policy.
func IsOrdered(cols []string, opts ...Option) bool {
	cfg := newOrderConfig(opts...)

	return slices.IsSortedFunc(cols, cfg.compare)
}
