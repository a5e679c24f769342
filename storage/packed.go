// SPDX-License-Identifier: MIT

// Package storage - packed band and triangular stores.
//
// Layouts:
//   - Band, row-major:    offset(i,j) = i*(kl+ku+1) + (j-i+kl)
//   - Band, column-major: offset(i,j) = j*(kl+ku+1) + (i-j+ku)
//   - Triangular rows of a lower triangle, row-major: offset(i,j) = i(i+1)/2 + j
//   - Triangular rows of an upper triangle, row-major: offset(i,j) = i*n - i(i-1)/2 + (j-i)
//     (column-major is the row-major layout of the transposed triangle)
//
// Reads outside the stored region return zero and never touch memory;
// writes there fail with ErrOutOfBand.

package storage

import (
	"iter"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvlalg/core"
)

// Packed is the contract shared by Band and Triangular.
type Packed[T core.Element] interface {
	ID() core.ID
	Rows() int
	Cols() int
	Band() core.Band
	Orientation() core.Orientation
	Contains(i, j int) bool
	At(i, j int) T
	Set(i, j int, v T) error
	Row(i int, d core.Direction) iter.Seq2[int, T]
	Col(j int, d core.Direction) iter.Seq2[int, T]
	Len() int
	Clear()
}

// outOfBand wraps ErrOutOfBand with coordinates.
func outOfBand(op string, i, j int) error {
	return errors.Wrapf(core.ErrOutOfBand, "%s(%d,%d)", op, i, j)
}

// packedRow yields the stored slots of row i of p in direction d.
func packedRow[T core.Element](p Packed[T], i int, d core.Direction) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		lo, hi := p.Band().RowSpan(i, p.Cols())
		for j := range core.Walk(lo, hi, d) {
			if !yield(j, p.At(i, j)) {
				return
			}
		}
	}
}

// packedCol yields the stored slots of column j of p in direction d.
func packedCol[T core.Element](p Packed[T], j int, d core.Direction) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		lo, hi := p.Band().ColSpan(j, p.Rows())
		for i := range core.Walk(lo, hi, d) {
			if !yield(i, p.At(i, j)) {
				return
			}
		}
	}
}

// Band stores the kl sub-diagonals and ku super-diagonals of a rows×cols matrix.
type Band[T core.Element] struct {
	id         core.ID
	rows, cols int
	band       core.Band
	orient     core.Orientation
	data       []T
}

// NewBand allocates a zero band store. The band is clamped to the shape.
// Returns ErrInvalidDimensions for negative sizes or widths.
func NewBand[T core.Element](rows, cols int, band core.Band, o core.Orientation) (*Band[T], error) {
	if rows < 0 || cols < 0 || band.Lower < 0 || band.Upper < 0 {
		return nil, errors.Wrapf(core.ErrInvalidDimensions, "NewBand(%d,%d,%d,%d)", rows, cols, band.Lower, band.Upper)
	}
	b := &Band[T]{id: core.NewID(), rows: rows, cols: cols, band: band.Clamp(rows, cols), orient: o}
	b.data = make([]T, b.majors()*b.width())

	return b, nil
}

func (b *Band[T]) width() int { return b.band.Lower + b.band.Upper + 1 }

func (b *Band[T]) majors() int {
	if b.orient == core.ColumnMajor {
		return b.cols
	}

	return b.rows
}

// offset returns the slot of (i,j) or false when outside the band.
func (b *Band[T]) offset(i, j int) (int, bool) {
	if !b.band.Contains(i, j) {
		return 0, false
	}
	if b.orient == core.ColumnMajor {
		return j*b.width() + (i - j + b.band.Upper), true
	}

	return i*b.width() + (j - i + b.band.Lower), true
}

// ID returns the storage identity token.
func (b *Band[T]) ID() core.ID { return b.id }

// Rows returns the logical row count.
func (b *Band[T]) Rows() int { return b.rows }

// Cols returns the logical column count.
func (b *Band[T]) Cols() int { return b.cols }

// Band returns the stored band.
func (b *Band[T]) Band() core.Band { return b.band }

// Orientation returns the storage order.
func (b *Band[T]) Orientation() core.Orientation { return b.orient }

// Contains reports whether (i,j) is stored.
func (b *Band[T]) Contains(i, j int) bool { return b.band.Contains(i, j) }

// Len returns the number of allocated slots.
func (b *Band[T]) Len() int { return len(b.data) }

// At returns the value at (i,j), zero outside the band.
func (b *Band[T]) At(i, j int) T {
	if off, ok := b.offset(i, j); ok {
		return b.data[off]
	}

	return core.Zero[T]()
}

// Set stores v at (i,j) or returns ErrOutOfBand.
func (b *Band[T]) Set(i, j int, v T) error {
	off, ok := b.offset(i, j)
	if !ok {
		return outOfBand("Band.Set", i, j)
	}
	b.data[off] = v

	return nil
}

// Row yields the in-band slots of row i.
func (b *Band[T]) Row(i int, d core.Direction) iter.Seq2[int, T] { return packedRow[T](b, i, d) }

// Col yields the in-band slots of column j.
func (b *Band[T]) Col(j int, d core.Direction) iter.Seq2[int, T] { return packedCol[T](b, j, d) }

// Clear zeroes every stored slot.
func (b *Band[T]) Clear() { clear(b.data) }

// Resize reshapes the store to rows×cols keeping in-band values that still fit.
func (b *Band[T]) Resize(rows, cols int) error {
	nb, err := NewBand[T](rows, cols, b.band, b.orient)
	if err != nil {
		return err
	}
	for i := 0; i < min(rows, b.rows); i++ {
		lo, hi := nb.band.RowSpan(i, min(cols, b.cols))
		for j := lo; j < hi; j++ {
			_ = nb.Set(i, j, b.At(i, j)) // safe: (i,j) inside nb's band
		}
	}
	b.rows, b.cols, b.band, b.data = nb.rows, nb.cols, nb.band, nb.data

	return nil
}

// Triangular stores the lower or upper triangle (diagonal included) of an n×n matrix.
type Triangular[T core.Element] struct {
	id     core.ID
	n      int
	lower  bool
	orient core.Orientation
	data   []T
}

// NewTriangular allocates a zero triangle of order n.
func NewTriangular[T core.Element](n int, lower bool, o core.Orientation) (*Triangular[T], error) {
	if n < 0 {
		return nil, errors.Wrapf(core.ErrInvalidDimensions, "NewTriangular(%d)", n)
	}

	return &Triangular[T]{id: core.NewID(), n: n, lower: lower, orient: o, data: make([]T, n*(n+1)/2)}, nil
}

// offset returns the slot of (i,j) or false when outside the triangle.
func (t *Triangular[T]) offset(i, j int) (int, bool) {
	if !t.Contains(i, j) {
		return 0, false
	}
	r, c, lower := i, j, t.lower
	if t.orient == core.ColumnMajor {
		r, c, lower = j, i, !t.lower
	}
	if lower {
		return r*(r+1)/2 + c, true
	}

	return r*t.n - r*(r-1)/2 + (c - r), true
}

// ID returns the storage identity token.
func (t *Triangular[T]) ID() core.ID { return t.id }

// Rows returns the order n.
func (t *Triangular[T]) Rows() int { return t.n }

// Cols returns the order n.
func (t *Triangular[T]) Cols() int { return t.n }

// Lower reports whether the lower triangle is stored.
func (t *Triangular[T]) Lower() bool { return t.lower }

// Orientation returns the storage order.
func (t *Triangular[T]) Orientation() core.Orientation { return t.orient }

// Band returns {n-1, 0} for lower and {0, n-1} for upper triangles.
func (t *Triangular[T]) Band() core.Band {
	w := max(t.n-1, 0)
	if t.lower {
		return core.Band{Lower: w}
	}

	return core.Band{Upper: w}
}

// Contains reports whether (i,j) is stored.
func (t *Triangular[T]) Contains(i, j int) bool {
	if t.lower {
		return j <= i
	}

	return j >= i
}

// Len returns the number of allocated slots.
func (t *Triangular[T]) Len() int { return len(t.data) }

// At returns the value at (i,j), zero outside the triangle.
func (t *Triangular[T]) At(i, j int) T {
	if off, ok := t.offset(i, j); ok {
		return t.data[off]
	}

	return core.Zero[T]()
}

// Set stores v at (i,j) or returns ErrOutOfBand.
func (t *Triangular[T]) Set(i, j int, v T) error {
	off, ok := t.offset(i, j)
	if !ok {
		return outOfBand("Triangular.Set", i, j)
	}
	t.data[off] = v

	return nil
}

// Row yields the stored slots of row i.
func (t *Triangular[T]) Row(i int, d core.Direction) iter.Seq2[int, T] {
	return packedRow[T](t, i, d)
}

// Col yields the stored slots of column j.
func (t *Triangular[T]) Col(j int, d core.Direction) iter.Seq2[int, T] {
	return packedCol[T](t, j, d)
}

// Clear zeroes every stored slot.
func (t *Triangular[T]) Clear() { clear(t.data) }

// Resize changes the order to n keeping the overlapping triangle.
func (t *Triangular[T]) Resize(n int) error {
	nt, err := NewTriangular[T](n, t.lower, t.orient)
	if err != nil {
		return err
	}
	m := min(n, t.n)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			if t.Contains(i, j) {
				_ = nt.Set(i, j, t.At(i, j)) // safe: same triangle, smaller order
			}
		}
	}
	t.n, t.data = nt.n, nt.data

	return nil
}
