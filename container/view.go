// SPDX-License-Identifier: MIT

// Package container - matrix proxies.
//
// A MatrixView selects rows rs and columns cs of a referent through
// core.Slice transforms; a range is a unit-stride slice. A view of a view
// composes both transforms onto the innermost referent, so every view is one
// indirection away from its storage.
//
// Category:
//   - unit-stride view of a Packed referent: Packed, band shifted by the
//     view's diagonal offset;
//   - strided view of a Packed referent: Dense;
//   - otherwise the referent's category.
//
// A view does not own elements. Resizing the referent invalidates it.

package container

import (
	"iter"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvlalg/core"
	"github.com/katalvlaran/lvlalg/expr"
)

// MatrixView is a range or slice proxy over a matrix, container or expression.
type MatrixView[T core.Element] struct {
	base   expr.Matrix[T]
	mut    expr.MutableMatrix[T] // nil: read-only
	rs, cs core.Slice
	cat    core.Category
	band   core.Band
}

// NewMatrixRange selects rows [rows.Start, rows.Stop) and columns
// [cols.Start, cols.Stop) of m. Returns ErrInvalidRange when either range
// leaves m.
func NewMatrixRange[T core.Element](m expr.Matrix[T], rows, cols core.Range) (*MatrixView[T], error) {
	if rows.Stop < rows.Start || cols.Stop < cols.Start {
		return nil, errors.Wrapf(core.ErrInvalidRange, "range [%d,%d)x[%d,%d)", rows.Start, rows.Stop, cols.Start, cols.Stop)
	}

	return NewMatrixSlice(m, rows.Slice(), cols.Slice())
}

// NewMatrixSlice selects rows rs and columns cs of m.
// Returns ErrNilOperand for nil m and ErrInvalidRange when a slice leaves m.
func NewMatrixSlice[T core.Element](m expr.Matrix[T], rs, cs core.Slice) (*MatrixView[T], error) {
	if m == nil {
		return nil, errors.Wrap(core.ErrNilOperand, "NewMatrixSlice")
	}
	if err := rs.Validate(m.Rows()); err != nil {
		return nil, errors.Wrap(err, "rows")
	}
	if err := cs.Validate(m.Cols()); err != nil {
		return nil, errors.Wrap(err, "cols")
	}

	v := &MatrixView[T]{base: m, rs: rs, cs: cs}
	if inner, ok := m.(*MatrixView[T]); ok {
		v.base, v.mut = inner.base, inner.mut
		v.rs, v.cs = inner.rs.Compose(rs), inner.cs.Compose(cs)
	} else if mm, ok := m.(expr.MutableMatrix[T]); ok && !mm.ReadOnly() {
		v.mut = mm
	}
	v.cat, v.band = viewStructure(v.base, v.rs, v.cs)

	return v, nil
}

// viewStructure derives the category and band of a view over base.
func viewStructure[T core.Element](base expr.Matrix[T], rs, cs core.Slice) (core.Category, core.Band) {
	rows, cols := rs.Size, cs.Size
	cat := base.Category()
	if cat != core.Packed {
		return cat, core.FullBand(rows, cols)
	}
	if rs.Stride != 1 || cs.Stride != 1 {
		return core.Dense, core.FullBand(rows, cols)
	}
	// view (i,j) is base (i+r0, j+c0): i-j shifts by r0-c0
	b, d := base.Band(), rs.Start-cs.Start
	band := core.Band{Lower: max(b.Lower-d, 0), Upper: max(b.Upper+d, 0)}

	return core.Packed, band.Clamp(rows, cols)
}

func (v *MatrixView[T]) Rows() int                  { return v.rs.Size }
func (v *MatrixView[T]) Cols() int                  { return v.cs.Size }
func (v *MatrixView[T]) Category() core.Category    { return v.cat }
func (v *MatrixView[T]) Band() core.Band            { return v.band }
func (v *MatrixView[T]) ReadOnly() bool             { return v.mut == nil }
func (v *MatrixView[T]) References(id core.ID) bool { return v.base.References(id) }
func (v *MatrixView[T]) Check() error               { return expr.Check(v.base) }

// StorageID returns the identity of the referent storage, core.NoID when the
// view is read-only.
func (v *MatrixView[T]) StorageID() core.ID {
	if v.mut == nil {
		return core.NoID
	}

	return v.mut.StorageID()
}

// Orientation reports the referent's storage order.
func (v *MatrixView[T]) Orientation() core.Orientation {
	if o, ok := v.base.(expr.Oriented); ok {
		return o.Orientation()
	}

	return core.RowMajor
}

// Contains reports whether (i,j) is writable in the referent's stored region.
func (v *MatrixView[T]) Contains(i, j int) bool {
	if b, ok := v.base.(expr.Bounded); ok {
		return b.Contains(v.rs.Index(i), v.cs.Index(j))
	}

	return v.band.Contains(i, j)
}

func (v *MatrixView[T]) inRange(i, j int) bool {
	return i >= 0 && i < v.rs.Size && j >= 0 && j < v.cs.Size
}

func (v *MatrixView[T]) At(i, j int) (T, error) {
	if !v.inRange(i, j) {
		return core.Zero[T](), core.IndexError("MatrixView.At", i, j)
	}

	return v.base.At(v.rs.Index(i), v.cs.Index(j))
}

func (v *MatrixView[T]) Set(i, j int, x T) error {
	if v.mut == nil {
		return errors.Wrapf(core.ErrReadOnly, "MatrixView.Set(%d,%d)", i, j)
	}
	if !v.inRange(i, j) {
		return core.IndexError("MatrixView.Set", i, j)
	}

	return v.mut.Set(v.rs.Index(i), v.cs.Index(j), x)
}

func (v *MatrixView[T]) Erase(i, j int) error {
	if v.mut == nil {
		return errors.Wrapf(core.ErrReadOnly, "MatrixView.Erase(%d,%d)", i, j)
	}
	if !v.inRange(i, j) {
		return core.IndexError("MatrixView.Erase", i, j)
	}

	return v.mut.Erase(v.rs.Index(i), v.cs.Index(j))
}

// Clear erases every element of the selected region. The rest of the
// referent is untouched.
func (v *MatrixView[T]) Clear() error {
	if v.mut == nil {
		return errors.Wrap(core.ErrReadOnly, "MatrixView.Clear")
	}
	var cols []int
	for i := 0; i < v.rs.Size; i++ {
		cols = cols[:0]
		for j := range v.Row(i, core.Forward) {
			cols = append(cols, j)
		}
		for _, j := range cols {
			if err := v.mut.Erase(v.rs.Index(i), v.cs.Index(j)); err != nil {
				return err
			}
		}
	}

	return nil
}

// line selects the stored entries of one referent line that fall inside s,
// re-indexed to view positions.
func line[T core.Element](src func(d core.Direction) iter.Seq2[int, T], s core.Slice, d core.Direction) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for idx, x := range src(s.Walk(d)) {
			if k, ok := s.Locate(idx); ok {
				if !yield(k, x) {
					return
				}
			}
		}
	}
}

func (v *MatrixView[T]) Row(i int, d core.Direction) iter.Seq2[int, T] {
	if i < 0 || i >= v.rs.Size {
		return empty[T]
	}
	bi := v.rs.Index(i)
	if v.cat.IsSparse() {
		return line(func(d core.Direction) iter.Seq2[int, T] { return v.base.Row(bi, d) }, v.cs, d)
	}
	lo, hi := v.band.RowSpan(i, v.cs.Size)

	return func(yield func(int, T) bool) {
		for j := range core.Walk(lo, hi, d) {
			x, _ := v.base.At(bi, v.cs.Index(j))
			if !yield(j, x) {
				return
			}
		}
	}
}

func (v *MatrixView[T]) Col(j int, d core.Direction) iter.Seq2[int, T] {
	if j < 0 || j >= v.cs.Size {
		return empty[T]
	}
	bj := v.cs.Index(j)
	if v.cat.IsSparse() {
		return line(func(d core.Direction) iter.Seq2[int, T] { return v.base.Col(bj, d) }, v.rs, d)
	}
	lo, hi := v.band.ColSpan(j, v.rs.Size)

	return func(yield func(int, T) bool) {
		for i := range core.Walk(lo, hi, d) {
			x, _ := v.base.At(v.rs.Index(i), bj)
			if !yield(i, x) {
				return
			}
		}
	}
}

// Temporary allocates an empty container shaped and structured like the view.
func (v *MatrixView[T]) Temporary() expr.MutableMatrix[T] {
	return newLike[T](v.cat, v.rs.Size, v.cs.Size, v.band, v.Orientation())
}

// newLike allocates an empty container for a category: Dense (and Unknown)
// → Matrix, Packed → Banded, Sparse-Unordered → MappedMatrix,
// Sparse-Sorted → CompressedMatrix.
func newLike[T core.Element](cat core.Category, rows, cols int, band core.Band, o core.Orientation) expr.MutableMatrix[T] {
	opt := WithOrientation(o)
	switch cat {
	case core.Packed:
		m, _ := NewBanded[T](rows, cols, band, opt)
		return m
	case core.SparseUnordered:
		m, _ := NewMappedMatrix[T](rows, cols, opt)
		return m
	case core.SparseSorted:
		m, _ := NewCompressedMatrix[T](rows, cols, opt)
		return m
	default:
		m, _ := NewMatrix[T](rows, cols, opt)
		return m
	}
}

// NewLike allocates an empty container able to hold the value of e: the
// category and band e derives, in row-major order.
func NewLike[T core.Element](e expr.Matrix[T]) expr.MutableMatrix[T] {
	return newLike[T](e.Category(), e.Rows(), e.Cols(), e.Band(), core.RowMajor)
}
