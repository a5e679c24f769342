// SPDX-License-Identifier: MIT

// Package core: orientation, traversal direction and proxy index transforms.

package core

import (
	"iter"

	"github.com/cockroachdb/errors"
)

// Orientation selects the storage order of 2-D dense and packed forms.
type Orientation uint8

// RowMajor is the zero value, matching the flat i*cols+j convention.
const (
	RowMajor Orientation = iota
	ColumnMajor
)

// String implements fmt.Stringer.
func (o Orientation) String() string {
	if o == ColumnMajor {
		return "column-major"
	}

	return "row-major"
}

// Major maps (i,j) to (major, minor) coordinates for this orientation.
func (o Orientation) Major(i, j int) (major, minor int) {
	if o == ColumnMajor {
		return j, i
	}

	return i, j
}

// Unmajor is the inverse of Major.
func (o Orientation) Unmajor(major, minor int) (i, j int) {
	if o == ColumnMajor {
		return minor, major
	}

	return major, minor
}

// Direction selects forward (ascending index) or reverse traversal.
type Direction uint8

// Traversal directions.
const (
	Forward Direction = iota
	Backward
)

// Before reports whether index a comes before index b in direction d.
func (d Direction) Before(a, b int) bool {
	if d == Backward {
		return a > b
	}

	return a < b
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == Backward {
		return Forward
	}

	return Backward
}

// Walk yields lo..hi-1 in direction d.
func Walk(lo, hi int, d Direction) iter.Seq[int] {
	return func(yield func(int) bool) {
		if d == Backward {
			for k := hi - 1; k >= lo; k-- {
				if !yield(k) {
					return
				}
			}
			return
		}
		for k := lo; k < hi; k++ {
			if !yield(k) {
				return
			}
		}
	}
}

// Range selects the contiguous indices [Start, Stop).
type Range struct {
	Start, Stop int
}

// Size returns the number of selected indices (0 for inverted ranges).
func (r Range) Size() int {
	return max(r.Stop-r.Start, 0)
}

// Slice converts the range into an equivalent unit-stride Slice.
func (r Range) Slice() Slice {
	return Slice{Start: r.Start, Stride: 1, Size: r.Size()}
}

// Slice selects Size indices Start, Start+Stride, Start+2*Stride, ...
// Negative strides walk backwards; a zero stride is only legal for Size <= 1.
type Slice struct {
	Start, Stride, Size int
}

// Index maps the k-th selected position to the referent index.
func (s Slice) Index(k int) int {
	return s.Start + k*s.Stride
}

// Validate checks that every selected index lies in [0, n).
// Returns ErrInvalidRange otherwise.
func (s Slice) Validate(n int) error {
	if s.Size < 0 {
		return errors.Wrapf(ErrInvalidRange, "slice size %d", s.Size)
	}
	if s.Size == 0 {
		return nil
	}
	if s.Stride == 0 && s.Size > 1 {
		return errors.Wrapf(ErrInvalidRange, "zero stride over %d elements", s.Size)
	}
	last := s.Index(s.Size - 1)
	if s.Start < 0 || s.Start >= n || last < 0 || last >= n {
		return errors.Wrapf(ErrInvalidRange, "slice{%d,%d,%d} over size %d", s.Start, s.Stride, s.Size, n)
	}

	return nil
}

// Compose returns the slice selecting inner's positions out of s, so that
// s.Compose(inner).Index(k) == s.Index(inner.Index(k)).
func (s Slice) Compose(inner Slice) Slice {
	return Slice{
		Start:  s.Index(inner.Start),
		Stride: s.Stride * inner.Stride,
		Size:   inner.Size,
	}
}

// Locate is the inverse of Index: it returns k with s.Index(k) == idx.
func (s Slice) Locate(idx int) (int, bool) {
	if s.Size == 0 {
		return 0, false
	}
	if s.Stride == 0 {
		return 0, idx == s.Start
	}
	d := idx - s.Start
	if d%s.Stride != 0 {
		return 0, false
	}
	k := d / s.Stride

	return k, k >= 0 && k < s.Size
}

// Walk returns the direction in which the referent must be traversed so that
// selected positions come out in direction d.
func (s Slice) Walk(d Direction) Direction {
	if s.Stride < 0 {
		return d.Reverse()
	}

	return d
}
