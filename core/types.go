// SPDX-License-Identifier: MIT

// Package core: storage category tags and the composition tables that derive
// an expression's category from its operands.
//
// Determinism:
//   - Every function in this file is a pure function of its arguments.
//   - Categories are attached once per instance and never change.
//
// Complexity: O(1) everywhere.

package core

// Category classifies the physical layout behind a container, proxy or
// expression node.
type Category uint8

// Storage categories. Unknown is the zero value so that an unset category
// degrades to the always-correct index fallback.
const (
	Unknown Category = iota
	Dense
	Packed
	SparseUnordered
	SparseSorted
)

// String returns a stable lowercase name for logs and tests.
func (c Category) String() string {
	switch c {
	case Dense:
		return "dense"
	case Packed:
		return "packed"
	case SparseUnordered:
		return "sparse-unordered"
	case SparseSorted:
		return "sparse-sorted"
	default:
		return "unknown"
	}
}

// IsSparse reports whether c only stores structurally non-zero entries.
func (c Category) IsSparse() bool {
	return c == SparseUnordered || c == SparseSorted
}

// Structure pairs a category with the structural band that bounds its
// non-zero entries. For every category except Packed the band is the full
// shape.
type Structure struct {
	Category Category
	Band     Band
}

// StructureOf builds a Structure, normalizing the band of non-packed
// categories to the full rows×cols shape.
func StructureOf(c Category, b Band, rows, cols int) Structure {
	if c != Packed {
		b = FullBand(rows, cols)
	}

	return Structure{Category: c, Band: b.Clamp(rows, cols)}
}

// sparseOf picks the sparse category of a mixed pair: the sparse operand's own
// category when only one is sparse, the common category when both agree and
// SparseSorted when two different sparse layouts meet.
func sparseOf(a, b Category) Category {
	switch {
	case !a.IsSparse():
		return b
	case !b.IsSparse():
		return a
	case a == b:
		return a
	default:
		return SparseSorted
	}
}

// Union derives the structure of an additive combination (add, subtract).
//
//	Unknown ⊕ any    = Unknown
//	any ⊕ Sparse-*   = the sparse category
//	Dense ⊕ Dense    = Dense, Dense ⊕ Packed = Dense
//	Packed ⊕ Packed  = Packed(union band) unless the union covers the shape, then Dense
func Union(a, b Structure, rows, cols int) Structure {
	full := FullBand(rows, cols)
	switch {
	case a.Category == Unknown || b.Category == Unknown:
		return Structure{Category: Unknown, Band: full}
	case a.Category.IsSparse() || b.Category.IsSparse():
		return Structure{Category: sparseOf(a.Category, b.Category), Band: full}
	case a.Category == Packed && b.Category == Packed:
		band := a.Band.Union(b.Band).Clamp(rows, cols)
		if band.IsFull(rows, cols) {
			return Structure{Category: Dense, Band: full}
		}

		return Structure{Category: Packed, Band: band}
	default:
		return Structure{Category: Dense, Band: full}
	}
}

// Intersection derives the structure of an element-wise multiplication.
// It follows Union except that Packed ⊗ Packed keeps the intersection band,
// which can never cover more than either operand.
func Intersection(a, b Structure, rows, cols int) Structure {
	if a.Category == Packed && b.Category == Packed {
		return Structure{Category: Packed, Band: a.Band.Intersect(b.Band).Clamp(rows, cols)}
	}

	return Union(a, b, rows, cols)
}

// Quotient derives the structure of an element-wise division. A structural
// zero in the divisor produces ±Inf or NaN, so nothing sparse survives:
// Unknown if either side is Unknown, Dense otherwise.
func Quotient(a, b Structure, rows, cols int) Structure {
	full := FullBand(rows, cols)
	if a.Category == Unknown || b.Category == Unknown {
		return Structure{Category: Unknown, Band: full}
	}

	return Structure{Category: Dense, Band: full}
}

// Product derives the structure of a matrix-matrix, matrix-vector or outer
// product of shape rows×cols.
//
//	Unknown × any       = Unknown
//	Sparse-* × Sparse-* = SparseSorted (sparse-output path)
//	Packed × Packed     = Packed(summed band) unless it covers the shape
//	anything else       = Dense (mixed products are assumed mostly non-zero)
func Product(a, b Structure, rows, cols int) Structure {
	full := FullBand(rows, cols)
	switch {
	case a.Category == Unknown || b.Category == Unknown:
		return Structure{Category: Unknown, Band: full}
	case a.Category.IsSparse() && b.Category.IsSparse():
		return Structure{Category: SparseSorted, Band: full}
	case a.Category == Packed && b.Category == Packed:
		band := a.Band.Add(b.Band).Clamp(rows, cols)
		if band.IsFull(rows, cols) {
			return Structure{Category: Dense, Band: full}
		}

		return Structure{Category: Packed, Band: band}
	default:
		return Structure{Category: Dense, Band: full}
	}
}
