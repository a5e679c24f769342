// SPDX-License-Identifier: MIT

// Package storage - sparse store contract.
//
// Sparse stores address entries by (major, minor) coordinates. Matrices map
// (i,j) through core.Orientation.Major; vectors use a single major line 0.
// Every store yields the entries of a line in ascending (Forward) or
// descending (Backward) minor order, whatever its internal layout.

package storage

import (
	"iter"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvlalg/core"
)

// Sparse is the contract shared by Mapped, Compressed and Coordinate.
type Sparse[T core.Element] interface {
	ID() core.ID
	Majors() int
	Minors() int
	// Sorted reports whether the internal layout is ordered by (major, minor).
	Sorted() bool
	// At returns the stored value or zero. It never creates an entry.
	At(major, minor int) T
	// Lookup returns the stored value and whether an entry exists.
	Lookup(major, minor int) (T, bool)
	// Set stores v, inserting an entry when none exists.
	Set(major, minor int, v T)
	// Erase removes the entry if present.
	Erase(major, minor int)
	// Len returns the number of stored entries.
	Len() int
	Clear()
	// Major yields the entries of one major line in minor order.
	Major(major int, d core.Direction) iter.Seq2[int, T]
	// Minor yields the entries of one minor line in major order.
	Minor(minor int, d core.Direction) iter.Seq2[int, T]
	// Reshape changes the logical extent, dropping entries that fall outside.
	Reshape(majors, minors int) error
}

// Kind names a sparse backend for constructors that pick one at run time.
type Kind uint8

// Sparse backends.
const (
	KindMapped Kind = iota
	KindCompressed
	KindCoordinate
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindCompressed:
		return "compressed"
	case KindCoordinate:
		return "coordinate"
	default:
		return "mapped"
	}
}

// NewSparse allocates an empty store of kind k.
func NewSparse[T core.Element](k Kind, majors, minors int) (Sparse[T], error) {
	switch k {
	case KindCompressed:
		return NewCompressed[T](majors, minors)
	case KindCoordinate:
		return NewCoordinate[T](majors, minors)
	default:
		return NewMapped[T](majors, minors)
	}
}

func checkExtent(op string, majors, minors int) error {
	if majors < 0 || minors < 0 {
		return errors.Wrapf(core.ErrInvalidDimensions, "%s(%d,%d)", op, majors, minors)
	}

	return nil
}
