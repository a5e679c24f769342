// SPDX-License-Identifier: MIT

package container

import (
	"iter"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvlalg/core"
	"github.com/katalvlaran/lvlalg/expr"
	"github.com/katalvlaran/lvlalg/storage"
)

// packed implements the shared surface of Banded and Triangular.
type packed[T core.Element] struct {
	s storage.Packed[T]
}

func (p packed[T]) Rows() int                     { return p.s.Rows() }
func (p packed[T]) Cols() int                     { return p.s.Cols() }
func (p packed[T]) Orientation() core.Orientation { return p.s.Orientation() }
func (p packed[T]) Category() core.Category       { return core.Packed }
func (p packed[T]) Band() core.Band               { return p.s.Band() }
func (p packed[T]) StorageID() core.ID            { return p.s.ID() }
func (p packed[T]) ReadOnly() bool                { return false }
func (p packed[T]) References(id core.ID) bool    { return id == p.s.ID() }

// Contains reports whether (i,j) lies in the stored region.
func (p packed[T]) Contains(i, j int) bool { return p.s.Contains(i, j) }

func (p packed[T]) inRange(i, j int) bool {
	return i >= 0 && i < p.s.Rows() && j >= 0 && j < p.s.Cols()
}

// At returns element (i,j); zero outside the stored region.
func (p packed[T]) At(i, j int) (T, error) {
	if !p.inRange(i, j) {
		return core.Zero[T](), core.IndexError("Packed.At", i, j)
	}

	return p.s.At(i, j), nil
}

// Set stores v at (i,j). Returns ErrIndexOutOfRange outside the shape and
// ErrOutOfBand outside the stored region.
func (p packed[T]) Set(i, j int, v T) error {
	if !p.inRange(i, j) {
		return core.IndexError("Packed.Set", i, j)
	}

	return p.s.Set(i, j, v)
}

// Erase zeroes (i,j). Outside the stored region it is a no-op: the slot is
// already a structural zero.
func (p packed[T]) Erase(i, j int) error {
	if !p.inRange(i, j) {
		return core.IndexError("Packed.Erase", i, j)
	}
	if !p.s.Contains(i, j) {
		return nil
	}

	return p.s.Set(i, j, core.Zero[T]())
}

func (p packed[T]) Clear() error {
	p.s.Clear()
	return nil
}

func (p packed[T]) Row(i int, d core.Direction) iter.Seq2[int, T] {
	if i < 0 || i >= p.s.Rows() {
		return empty[T]
	}

	return p.s.Row(i, d)
}

func (p packed[T]) Col(j int, d core.Direction) iter.Seq2[int, T] {
	if j < 0 || j >= p.s.Cols() {
		return empty[T]
	}

	return p.s.Col(j, d)
}

// empty is the stream of an out-of-range line.
func empty[T core.Element](func(int, T) bool) {}

// Banded is a rows×cols matrix storing Lower sub- and Upper super-diagonals.
type Banded[T core.Element] struct {
	packed[T]
	b *storage.Band[T]
}

// NewBanded allocates a zero banded matrix.
func NewBanded[T core.Element](rows, cols int, band core.Band, opts ...Option) (*Banded[T], error) {
	o := gatherOptions(opts...)
	b, err := storage.NewBand[T](rows, cols, band, o.orient)
	if err != nil {
		return nil, err
	}

	return &Banded[T]{packed: packed[T]{s: b}, b: b}, nil
}

// Temporary allocates a zero banded matrix with the same band.
func (m *Banded[T]) Temporary() expr.MutableMatrix[T] {
	t, _ := NewBanded[T](m.Rows(), m.Cols(), m.Band(), WithOrientation(m.Orientation()))
	return t
}

// Resize reshapes the matrix, keeping in-band values that still fit.
func (m *Banded[T]) Resize(rows, cols int) error { return m.b.Resize(rows, cols) }

// Triangular is an n×n lower or upper triangular matrix (diagonal included).
type Triangular[T core.Element] struct {
	packed[T]
	t *storage.Triangular[T]
}

func newTriangular[T core.Element](n int, lower bool, opts ...Option) (*Triangular[T], error) {
	o := gatherOptions(opts...)
	t, err := storage.NewTriangular[T](n, lower, o.orient)
	if err != nil {
		return nil, err
	}

	return &Triangular[T]{packed: packed[T]{s: t}, t: t}, nil
}

// NewLowerTriangular allocates a zero lower triangular matrix of order n.
func NewLowerTriangular[T core.Element](n int, opts ...Option) (*Triangular[T], error) {
	return newTriangular[T](n, true, opts...)
}

// NewUpperTriangular allocates a zero upper triangular matrix of order n.
func NewUpperTriangular[T core.Element](n int, opts ...Option) (*Triangular[T], error) {
	return newTriangular[T](n, false, opts...)
}

// Lower reports whether the lower triangle is stored.
func (m *Triangular[T]) Lower() bool { return m.t.Lower() }

// Temporary allocates a zero triangle of the same order and side.
func (m *Triangular[T]) Temporary() expr.MutableMatrix[T] {
	t, _ := newTriangular[T](m.Rows(), m.Lower(), WithOrientation(m.Orientation()))
	return t
}

// Resize changes the order. Returns ErrInvalidDimensions unless rows == cols.
func (m *Triangular[T]) Resize(rows, cols int) error {
	if rows != cols {
		return errors.Wrapf(core.ErrInvalidDimensions, "Triangular.Resize(%d,%d)", rows, cols)
	}

	return m.t.Resize(rows)
}
