// SPDX-License-Identifier: MIT

// Package container - dense matrix and vector.
//
// Layout:
//   - row-major:    offset(i,j) = i*cols + j
//   - column-major: offset(i,j) = j*rows + i
//
// Complexity: At/Set O(1); Row/Col O(len); Resize O(rows*cols).

package container

import (
	"iter"
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvlalg/core"
	"github.com/katalvlaran/lvlalg/expr"
	"github.com/katalvlaran/lvlalg/storage"
)

// Matrix is a dense rows×cols container over one contiguous store.
type Matrix[T core.Element] struct {
	rows, cols int
	orient     core.Orientation
	fixedCap   int
	data       *storage.Array[T]
}

func newArray[T core.Element](n, fixedCap int) (*storage.Array[T], error) {
	if fixedCap >= 0 {
		return storage.NewFixedArray[T](n, fixedCap)
	}

	return storage.NewArray[T](n)
}

// NewMatrix allocates a zero rows×cols matrix.
// Returns ErrInvalidDimensions for negative sizes and ErrCapacity when a
// fixed capacity is smaller than rows*cols.
func NewMatrix[T core.Element](rows, cols int, opts ...Option) (*Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return nil, errors.Wrapf(core.ErrInvalidDimensions, "NewMatrix(%d,%d)", rows, cols)
	}
	o := gatherOptions(opts...)
	data, err := newArray[T](rows*cols, o.fixedCap)
	if err != nil {
		return nil, err
	}

	return &Matrix[T]{rows: rows, cols: cols, orient: o.orient, fixedCap: o.fixedCap, data: data}, nil
}

// NewMatrixFrom copies a row-major literal. Rows must have equal length;
// a ragged literal returns ErrShapeMismatch.
func NewMatrixFrom[T core.Element](values [][]T, opts ...Option) (*Matrix[T], error) {
	rows, cols := len(values), 0
	if rows > 0 {
		cols = len(values[0])
	}
	m, err := NewMatrix[T](rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	for i, row := range values {
		if len(row) != cols {
			return nil, core.ShapeError("NewMatrixFrom", i, len(row), i, cols)
		}
		for j, v := range row {
			m.data.Set(m.offset(i, j), v)
		}
	}

	return m, nil
}

func (m *Matrix[T]) offset(i, j int) int {
	if m.orient == core.ColumnMajor {
		return j*m.rows + i
	}

	return i*m.cols + j
}

func (m *Matrix[T]) Rows() int                     { return m.rows }
func (m *Matrix[T]) Cols() int                     { return m.cols }
func (m *Matrix[T]) Orientation() core.Orientation { return m.orient }
func (m *Matrix[T]) Category() core.Category       { return core.Dense }
func (m *Matrix[T]) Band() core.Band               { return core.FullBand(m.rows, m.cols) }
func (m *Matrix[T]) StorageID() core.ID            { return m.data.ID() }
func (m *Matrix[T]) ReadOnly() bool                { return false }
func (m *Matrix[T]) References(id core.ID) bool    { return id == m.data.ID() }

// Data exposes the backing slice in storage order.
func (m *Matrix[T]) Data() []T { return m.data.Data() }

// At returns element (i,j) or ErrIndexOutOfRange.
func (m *Matrix[T]) At(i, j int) (T, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return core.Zero[T](), core.IndexError("Matrix.At", i, j)
	}

	return m.data.At(m.offset(i, j)), nil
}

// Set stores v at (i,j) or returns ErrIndexOutOfRange.
func (m *Matrix[T]) Set(i, j int, v T) error {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return core.IndexError("Matrix.Set", i, j)
	}
	m.data.Set(m.offset(i, j), v)

	return nil
}

// Erase stores zero at (i,j).
func (m *Matrix[T]) Erase(i, j int) error {
	return m.Set(i, j, core.Zero[T]())
}

// Clear zeroes every element.
func (m *Matrix[T]) Clear() error {
	m.data.Clear()
	return nil
}

// Fill sets every element to v.
func (m *Matrix[T]) Fill(v T) { m.data.Fill(v) }

func (m *Matrix[T]) Row(i int, d core.Direction) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if i < 0 || i >= m.rows {
			return
		}
		for j := range core.Walk(0, m.cols, d) {
			if !yield(j, m.data.At(m.offset(i, j))) {
				return
			}
		}
	}
}

func (m *Matrix[T]) Col(j int, d core.Direction) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if j < 0 || j >= m.cols {
			return
		}
		for i := range core.Walk(0, m.rows, d) {
			if !yield(i, m.data.At(m.offset(i, j))) {
				return
			}
		}
	}
}

// Temporary allocates a zero matrix of the same shape and orientation.
func (m *Matrix[T]) Temporary() expr.MutableMatrix[T] {
	t, _ := NewMatrix[T](m.rows, m.cols, WithOrientation(m.orient)) // shape already valid
	return t
}

// Clone returns an independent copy with its own storage.
func (m *Matrix[T]) Clone() *Matrix[T] {
	c := m.Temporary().(*Matrix[T])
	copy(c.data.Data(), m.data.Data())

	return c
}

// Resize changes the shape to rows×cols. Elements in the overlapping
// top-left block keep their values; new elements read zero. Proxies over m
// are invalidated.
func (m *Matrix[T]) Resize(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return errors.Wrapf(core.ErrInvalidDimensions, "Matrix.Resize(%d,%d)", rows, cols)
	}
	minor := m.cols
	if m.orient == core.ColumnMajor {
		minor = m.rows
	}
	old := &Matrix[T]{rows: m.rows, cols: m.cols, orient: m.orient}
	sameMinor := (m.orient == core.RowMajor && cols == m.cols) || (m.orient == core.ColumnMajor && rows == m.rows)
	var snapshot []T
	if !sameMinor && minor > 0 {
		snapshot = slices.Clone(m.data.Data())
	}
	if err := m.data.Resize(rows * cols); err != nil {
		return err
	}
	m.rows, m.cols = rows, cols
	if snapshot == nil {
		return nil // flat prefix already matches the new layout
	}
	m.data.Clear()
	for i := 0; i < min(rows, old.rows); i++ {
		for j := 0; j < min(cols, old.cols); j++ {
			m.data.Set(m.offset(i, j), snapshot[old.offset(i, j)])
		}
	}

	return nil
}

// Vector is a dense vector over one contiguous store.
type Vector[T core.Element] struct {
	data *storage.Array[T]
}

// NewVector allocates a zero vector of length n.
func NewVector[T core.Element](n int, opts ...Option) (*Vector[T], error) {
	o := gatherOptions(opts...)
	data, err := newArray[T](n, o.fixedCap)
	if err != nil {
		return nil, err
	}

	return &Vector[T]{data: data}, nil
}

// NewVectorFrom copies values into a new vector.
func NewVectorFrom[T core.Element](values []T, opts ...Option) (*Vector[T], error) {
	v, err := NewVector[T](len(values), opts...)
	if err != nil {
		return nil, err
	}
	copy(v.data.Data(), values)

	return v, nil
}

func (v *Vector[T]) Len() int                   { return v.data.Len() }
func (v *Vector[T]) Category() core.Category    { return core.Dense }
func (v *Vector[T]) StorageID() core.ID         { return v.data.ID() }
func (v *Vector[T]) ReadOnly() bool             { return false }
func (v *Vector[T]) References(id core.ID) bool { return id == v.data.ID() }

// Data exposes the backing slice.
func (v *Vector[T]) Data() []T { return v.data.Data() }

func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.data.Len() {
		return core.Zero[T](), errors.Wrapf(core.ErrIndexOutOfRange, "Vector.At(%d)", i)
	}

	return v.data.At(i), nil
}

func (v *Vector[T]) Set(i int, x T) error {
	if i < 0 || i >= v.data.Len() {
		return errors.Wrapf(core.ErrIndexOutOfRange, "Vector.Set(%d)", i)
	}
	v.data.Set(i, x)

	return nil
}

func (v *Vector[T]) Erase(i int) error { return v.Set(i, core.Zero[T]()) }

func (v *Vector[T]) Clear() error {
	v.data.Clear()
	return nil
}

func (v *Vector[T]) Entries(d core.Direction) iter.Seq2[int, T] { return v.data.All(d) }

// Temporary allocates a zero vector of the same length.
func (v *Vector[T]) Temporary() expr.MutableVector[T] {
	t, _ := NewVector[T](v.Len())
	return t
}

// Resize changes the length, keeping the overlap.
func (v *Vector[T]) Resize(n int) error { return v.data.Resize(n) }
