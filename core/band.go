// SPDX-License-Identifier: MIT

// Package core: structural band arithmetic.
//
// A Band{Lower, Upper} admits (i,j) iff -Upper <= i-j <= Lower, i.e. Lower
// sub-diagonals and Upper super-diagonals around the main diagonal.
// Triangular shapes are bands too: lower-triangular n×n is Band{n-1, 0}.

package core

// Band bounds the structurally non-zero region of a matrix.
type Band struct {
	Lower int // number of sub-diagonals
	Upper int // number of super-diagonals
}

// FullBand returns the band covering an entire rows×cols shape.
func FullBand(rows, cols int) Band {
	return Band{Lower: max(rows-1, 0), Upper: max(cols-1, 0)}
}

// Contains reports whether (i,j) lies inside the band.
func (b Band) Contains(i, j int) bool {
	d := i - j

	return d <= b.Lower && -d <= b.Upper
}

// IsFull reports whether the band covers the whole rows×cols shape.
func (b Band) IsFull(rows, cols int) bool {
	return b.Lower >= rows-1 && b.Upper >= cols-1
}

// Clamp limits the band to what a rows×cols shape can hold.
func (b Band) Clamp(rows, cols int) Band {
	return Band{
		Lower: max(min(b.Lower, rows-1), 0),
		Upper: max(min(b.Upper, cols-1), 0),
	}
}

// Union returns the smallest band containing both b and o.
func (b Band) Union(o Band) Band {
	return Band{Lower: max(b.Lower, o.Lower), Upper: max(b.Upper, o.Upper)}
}

// Intersect returns the band common to b and o.
func (b Band) Intersect(o Band) Band {
	return Band{Lower: min(b.Lower, o.Lower), Upper: min(b.Upper, o.Upper)}
}

// Add returns the band of a product of two banded operands.
func (b Band) Add(o Band) Band {
	return Band{Lower: b.Lower + o.Lower, Upper: b.Upper + o.Upper}
}

// Transpose swaps the sub- and super-diagonal counts.
func (b Band) Transpose() Band {
	return Band{Lower: b.Upper, Upper: b.Lower}
}

// RowSpan returns the half-open column range [lo, hi) of row i inside the band.
// Complexity: O(1).
func (b Band) RowSpan(i, cols int) (lo, hi int) {
	lo = max(i-b.Lower, 0)
	hi = min(i+b.Upper+1, cols)
	if hi < lo {
		hi = lo
	}

	return lo, hi
}

// ColSpan returns the half-open row range [lo, hi) of column j inside the band.
// Complexity: O(1).
func (b Band) ColSpan(j, rows int) (lo, hi int) {
	lo = max(j-b.Upper, 0)
	hi = min(j+b.Lower+1, rows)
	if hi < lo {
		hi = lo
	}

	return lo, hi
}
