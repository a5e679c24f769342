// SPDX-License-Identifier: MIT

package container

import (
	"iter"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvlalg/core"
	"github.com/katalvlaran/lvlalg/expr"
)

// ReadOnlyMatrix forwards reads to its referent and rejects every write with
// core.ErrReadOnly. Views built over it are read-only as well.
type ReadOnlyMatrix[T core.Element] struct {
	m expr.Matrix[T]
}

// ReadOnly wraps m. Returns nil for a nil m.
func ReadOnly[T core.Element](m expr.Matrix[T]) *ReadOnlyMatrix[T] {
	if m == nil {
		return nil
	}

	return &ReadOnlyMatrix[T]{m: m}
}

func (r *ReadOnlyMatrix[T]) Rows() int                  { return r.m.Rows() }
func (r *ReadOnlyMatrix[T]) Cols() int                  { return r.m.Cols() }
func (r *ReadOnlyMatrix[T]) Category() core.Category    { return r.m.Category() }
func (r *ReadOnlyMatrix[T]) Band() core.Band            { return r.m.Band() }
func (r *ReadOnlyMatrix[T]) At(i, j int) (T, error)     { return r.m.At(i, j) }
func (r *ReadOnlyMatrix[T]) References(id core.ID) bool { return r.m.References(id) }
func (r *ReadOnlyMatrix[T]) Check() error               { return expr.Check(r.m) }
func (r *ReadOnlyMatrix[T]) ReadOnly() bool             { return true }
func (r *ReadOnlyMatrix[T]) StorageID() core.ID         { return core.NoID }

func (r *ReadOnlyMatrix[T]) Row(i int, d core.Direction) iter.Seq2[int, T] { return r.m.Row(i, d) }
func (r *ReadOnlyMatrix[T]) Col(j int, d core.Direction) iter.Seq2[int, T] { return r.m.Col(j, d) }

func (r *ReadOnlyMatrix[T]) Set(i, j int, _ T) error {
	return errors.Wrapf(core.ErrReadOnly, "ReadOnly.Set(%d,%d)", i, j)
}

func (r *ReadOnlyMatrix[T]) Erase(i, j int) error {
	return errors.Wrapf(core.ErrReadOnly, "ReadOnly.Erase(%d,%d)", i, j)
}

func (r *ReadOnlyMatrix[T]) Clear() error {
	return errors.Wrap(core.ErrReadOnly, "ReadOnly.Clear")
}

func (r *ReadOnlyMatrix[T]) Temporary() expr.MutableMatrix[T] { return NewLike(r.m) }

// ReadOnlyVector is the vector counterpart of ReadOnlyMatrix.
type ReadOnlyVector[T core.Element] struct {
	v expr.Vector[T]
}

// ReadOnlyVec wraps v. Returns nil for a nil v.
func ReadOnlyVec[T core.Element](v expr.Vector[T]) *ReadOnlyVector[T] {
	if v == nil {
		return nil
	}

	return &ReadOnlyVector[T]{v: v}
}

func (r *ReadOnlyVector[T]) Len() int                   { return r.v.Len() }
func (r *ReadOnlyVector[T]) Category() core.Category    { return r.v.Category() }
func (r *ReadOnlyVector[T]) At(i int) (T, error)        { return r.v.At(i) }
func (r *ReadOnlyVector[T]) References(id core.ID) bool { return r.v.References(id) }
func (r *ReadOnlyVector[T]) Check() error               { return expr.Check(r.v) }
func (r *ReadOnlyVector[T]) ReadOnly() bool             { return true }
func (r *ReadOnlyVector[T]) StorageID() core.ID         { return core.NoID }

func (r *ReadOnlyVector[T]) Entries(d core.Direction) iter.Seq2[int, T] { return r.v.Entries(d) }

func (r *ReadOnlyVector[T]) Set(i int, _ T) error {
	return errors.Wrapf(core.ErrReadOnly, "ReadOnlyVector.Set(%d)", i)
}

func (r *ReadOnlyVector[T]) Erase(i int) error {
	return errors.Wrapf(core.ErrReadOnly, "ReadOnlyVector.Erase(%d)", i)
}

func (r *ReadOnlyVector[T]) Clear() error {
	return errors.Wrap(core.ErrReadOnly, "ReadOnlyVector.Clear")
}

func (r *ReadOnlyVector[T]) Temporary() expr.MutableVector[T] { return NewLikeVector(r.v) }
