// SPDX-License-Identifier: MIT

// Package dispatch selects the traversal algorithm of an expression from the
// storage categories of its operands.
//
// Selection table (first matching row wins):
//
//	any operand Unknown                  → IndexFallback
//	any operand Dense                    → DenseStride
//	every operand Packed                 → PackedBand
//	every operand Packed or Sparse-*     → SparseMerge
//
// Select is a pure function of its arguments. Expression nodes call it once at
// construction and keep the result, so no per-element branching depends on
// it beyond what the chosen algorithm does itself.
package dispatch

import "github.com/katalvlaran/lvlalg/core"

// Strategy identifies one of the fixed traversal algorithms.
type Strategy uint8

// Traversal algorithms. IndexFallback is the zero value: it is always correct.
const (
	// IndexFallback reads every index through random access.
	IndexFallback Strategy = iota
	// DenseStride loops over the full shape in storage order.
	DenseStride
	// PackedBand loops over the stored band offsets only.
	PackedBand
	// SparseMerge advances the sorted index streams of the operands together
	// and visits only indices stored in at least one (union) or all
	// (intersection) of them.
	SparseMerge
)

// String returns a stable lowercase name for logs and tests.
func (s Strategy) String() string {
	switch s {
	case DenseStride:
		return "dense-stride"
	case PackedBand:
		return "packed-band"
	case SparseMerge:
		return "sparse-merge"
	default:
		return "index-fallback"
	}
}

// Select returns the strategy for an operation over operands of the given
// categories. With no operands it returns IndexFallback.
func Select(cats ...core.Category) Strategy {
	if len(cats) == 0 {
		return IndexFallback
	}
	var dense, sparse bool
	for _, c := range cats {
		switch {
		case c == core.Unknown:
			return IndexFallback
		case c == core.Dense:
			dense = true
		case c.IsSparse():
			sparse = true
		}
	}
	switch {
	case dense:
		return DenseStride
	case sparse:
		return SparseMerge
	default:
		return PackedBand
	}
}

// ForAccumulate adapts a strategy for read-modify-write into a destination.
// Additive accumulation only changes slots the expression stores, so the
// strategy is kept. Multiplicative accumulation changes the destination at
// the expression's structural zeros too, which a restricted traversal would
// skip; the full-shape loop is used instead.
func ForAccumulate(s Strategy, multiplicative bool) Strategy {
	if multiplicative && (s == SparseMerge || s == PackedBand) {
		return DenseStride
	}

	return s
}
