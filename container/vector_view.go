// SPDX-License-Identifier: MIT

package container

import (
	"iter"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvlalg/core"
	"github.com/katalvlaran/lvlalg/expr"
)

// VectorView is a 1-D proxy: a range or slice of a vector, or one row or
// column of a matrix (optionally narrowed further by a range or slice).
// Nested views compose onto the innermost referent.
type VectorView[T core.Element] struct {
	// vector referent
	vec  expr.Vector[T]
	vmut expr.MutableVector[T]

	// matrix referent: line fixed along a row (row == true) or a column
	mat   expr.Matrix[T]
	mmut  expr.MutableMatrix[T]
	fixed int
	row   bool

	s   core.Slice
	cat core.Category
}

// lineCategory maps the referent category to the category of a 1-D view.
// Packed rows are exposed as dense lines.
func lineCategory(c core.Category) core.Category {
	if c == core.Packed {
		return core.Dense
	}

	return c
}

func newMatrixLine[T core.Element](m expr.Matrix[T], fixed int, row bool) (*VectorView[T], error) {
	if m == nil {
		return nil, errors.Wrap(core.ErrNilOperand, "matrix line")
	}
	limit, size := m.Rows(), m.Cols()
	if !row {
		limit, size = m.Cols(), m.Rows()
	}
	if fixed < 0 || fixed >= limit {
		return nil, errors.Wrapf(core.ErrInvalidRange, "line %d of %d", fixed, limit)
	}
	v := &VectorView[T]{mat: m, fixed: fixed, row: row, s: core.Slice{Start: 0, Stride: 1, Size: size}}
	if inner, ok := m.(*MatrixView[T]); ok {
		// fold the matrix view into the line transform
		v.mat, v.mmut = inner.base, inner.mut
		if row {
			v.fixed, v.s = inner.rs.Index(fixed), inner.cs
		} else {
			v.fixed, v.s = inner.cs.Index(fixed), inner.rs
		}
	} else if mm, ok := m.(expr.MutableMatrix[T]); ok && !mm.ReadOnly() {
		v.mmut = mm
	}
	v.cat = lineCategory(v.mat.Category())

	return v, nil
}

// NewRow selects row i of m. Returns ErrInvalidRange when i is outside m.
func NewRow[T core.Element](m expr.Matrix[T], i int) (*VectorView[T], error) {
	return newMatrixLine(m, i, true)
}

// NewColumn selects column j of m. Returns ErrInvalidRange when j is outside m.
func NewColumn[T core.Element](m expr.Matrix[T], j int) (*VectorView[T], error) {
	return newMatrixLine(m, j, false)
}

// NewVectorRange selects [r.Start, r.Stop) of v.
func NewVectorRange[T core.Element](v expr.Vector[T], r core.Range) (*VectorView[T], error) {
	if r.Stop < r.Start {
		return nil, errors.Wrapf(core.ErrInvalidRange, "range [%d,%d)", r.Start, r.Stop)
	}

	return NewVectorSlice(v, r.Slice())
}

// NewVectorSlice selects positions s of v.
func NewVectorSlice[T core.Element](v expr.Vector[T], s core.Slice) (*VectorView[T], error) {
	if v == nil {
		return nil, errors.Wrap(core.ErrNilOperand, "NewVectorSlice")
	}
	if err := s.Validate(v.Len()); err != nil {
		return nil, err
	}
	if inner, ok := v.(*VectorView[T]); ok {
		out := *inner
		out.s = inner.s.Compose(s)
		return &out, nil
	}
	out := &VectorView[T]{vec: v, s: s, cat: lineCategory(v.Category())}
	if mv, ok := v.(expr.MutableVector[T]); ok && !mv.ReadOnly() {
		out.vmut = mv
	}

	return out, nil
}

// coords maps view position k to referent matrix coordinates.
func (v *VectorView[T]) coords(k int) (int, int) {
	if v.row {
		return v.fixed, v.s.Index(k)
	}

	return v.s.Index(k), v.fixed
}

// InRegion reports whether position k is writable in the stored region of a
// matrix referent. Positions of vector referents are always writable.
func (v *VectorView[T]) InRegion(k int) bool {
	if v.mmut == nil {
		return true
	}
	i, j := v.coords(k)
	if b, ok := v.mmut.(expr.Bounded); ok {
		return b.Contains(i, j)
	}

	return v.mmut.Category() != core.Packed || v.mmut.Band().Contains(i, j)
}

func (v *VectorView[T]) Len() int                { return v.s.Size }
func (v *VectorView[T]) Category() core.Category { return v.cat }

func (v *VectorView[T]) ReadOnly() bool {
	return v.vmut == nil && v.mmut == nil
}

// StorageID returns the identity of the referent storage, core.NoID when the
// view is read-only.
func (v *VectorView[T]) StorageID() core.ID {
	switch {
	case v.vmut != nil:
		return v.vmut.StorageID()
	case v.mmut != nil:
		return v.mmut.StorageID()
	default:
		return core.NoID
	}
}

func (v *VectorView[T]) References(id core.ID) bool {
	if v.mat != nil {
		return v.mat.References(id)
	}

	return v.vec.References(id)
}

func (v *VectorView[T]) Check() error {
	if v.mat != nil {
		return expr.Check(v.mat)
	}

	return expr.Check(v.vec)
}

func (v *VectorView[T]) At(k int) (T, error) {
	if k < 0 || k >= v.s.Size {
		return core.Zero[T](), errors.Wrapf(core.ErrIndexOutOfRange, "VectorView.At(%d)", k)
	}
	if v.mat != nil {
		return v.mat.At(v.coords(k))
	}

	return v.vec.At(v.s.Index(k))
}

func (v *VectorView[T]) write(op string, k int, set func(i, j int) error, setVec func(i int) error) error {
	if v.ReadOnly() {
		return errors.Wrapf(core.ErrReadOnly, "VectorView.%s(%d)", op, k)
	}
	if k < 0 || k >= v.s.Size {
		return errors.Wrapf(core.ErrIndexOutOfRange, "VectorView.%s(%d)", op, k)
	}
	if v.mmut != nil {
		return set(v.coords(k))
	}

	return setVec(v.s.Index(k))
}

func (v *VectorView[T]) Set(k int, x T) error {
	return v.write("Set", k,
		func(i, j int) error { return v.mmut.Set(i, j, x) },
		func(i int) error { return v.vmut.Set(i, x) })
}

func (v *VectorView[T]) Erase(k int) error {
	return v.write("Erase", k,
		func(i, j int) error { return v.mmut.Erase(i, j) },
		func(i int) error { return v.vmut.Erase(i) })
}

// Clear erases every selected position.
func (v *VectorView[T]) Clear() error {
	if v.ReadOnly() {
		return errors.Wrap(core.ErrReadOnly, "VectorView.Clear")
	}
	var ks []int
	for k := range v.Entries(core.Forward) {
		ks = append(ks, k)
	}
	for _, k := range ks {
		if err := v.Erase(k); err != nil {
			return err
		}
	}

	return nil
}

// source returns the stream of the whole referent line in direction d.
func (v *VectorView[T]) source(d core.Direction) iter.Seq2[int, T] {
	switch {
	case v.mat == nil:
		return v.vec.Entries(d)
	case v.row:
		return v.mat.Row(v.fixed, d)
	default:
		return v.mat.Col(v.fixed, d)
	}
}

func (v *VectorView[T]) Entries(d core.Direction) iter.Seq2[int, T] {
	if v.cat.IsSparse() {
		return line(v.source, v.s, d)
	}

	return func(yield func(int, T) bool) {
		for k := range core.Walk(0, v.s.Size, d) {
			x, _ := v.At(k)
			if !yield(k, x) {
				return
			}
		}
	}
}

// Temporary allocates an empty vector container of the view's length and
// category.
func (v *VectorView[T]) Temporary() expr.MutableVector[T] {
	return newLikeVector[T](v.cat, v.s.Size)
}

// newLikeVector allocates an empty vector for a category.
func newLikeVector[T core.Element](cat core.Category, n int) expr.MutableVector[T] {
	switch cat {
	case core.SparseUnordered:
		x, _ := NewMappedVector[T](n)
		return x
	case core.SparseSorted:
		x, _ := NewCompressedVector[T](n)
		return x
	default:
		x, _ := NewVector[T](n)
		return x
	}
}

// NewLikeVector allocates an empty vector able to hold the value of e.
func NewLikeVector[T core.Element](e expr.Vector[T]) expr.MutableVector[T] {
	return newLikeVector[T](e.Category(), e.Len())
}
