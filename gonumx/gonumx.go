// SPDX-License-Identifier: MIT

// Package gonumx bridges gonum's mat package and lvlalg expressions.
//
// Any mat.Matrix (or mat.Vector) becomes an expression leaf of category
// Unknown: its layout is opaque, so expressions over it use the
// index-fallback traversal, and aliasing is assumed because a gonum matrix
// may share memory with a container's backing slice. Dense and VecDense
// evaluate any float64 expression into a fresh gonum value.
package gonumx

import (
	"iter"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlalg/assign"
	"github.com/katalvlaran/lvlalg/container"
	"github.com/katalvlaran/lvlalg/core"
	"github.com/katalvlaran/lvlalg/expr"
)

// Matrix is a read-only expression leaf over a mat.Matrix.
type Matrix struct {
	m          mat.Matrix
	rows, cols int
}

// Wrap adapts m. Dimensions are read once; m must not be resized while the
// wrapper is in use.
func Wrap(m mat.Matrix) *Matrix {
	r, c := m.Dims()
	return &Matrix{m: m, rows: r, cols: c}
}

func (w *Matrix) Rows() int               { return w.rows }
func (w *Matrix) Cols() int               { return w.cols }
func (w *Matrix) Category() core.Category { return core.Unknown }
func (w *Matrix) Band() core.Band         { return core.FullBand(w.rows, w.cols) }

// References always reports true: the wrapped memory is not tracked.
func (w *Matrix) References(core.ID) bool { return true }

// At returns m(i,j), or core.ErrIndexOutOfRange where gonum would panic.
func (w *Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= w.rows || j < 0 || j >= w.cols {
		return 0, core.IndexError("gonumx.At", i, j)
	}

	return w.m.At(i, j), nil
}

func (w *Matrix) Row(i int, d core.Direction) iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		if i < 0 || i >= w.rows {
			return
		}
		for j := range core.Walk(0, w.cols, d) {
			if !yield(j, w.m.At(i, j)) {
				return
			}
		}
	}
}

func (w *Matrix) Col(j int, d core.Direction) iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		if j < 0 || j >= w.cols {
			return
		}
		for i := range core.Walk(0, w.rows, d) {
			if !yield(i, w.m.At(i, j)) {
				return
			}
		}
	}
}

// Vector is a read-only expression leaf over a mat.Vector.
type Vector struct {
	v mat.Vector
}

// WrapVec adapts v.
func WrapVec(v mat.Vector) *Vector { return &Vector{v: v} }

func (w *Vector) Len() int                { return w.v.Len() }
func (w *Vector) Category() core.Category { return core.Unknown }
func (w *Vector) References(core.ID) bool { return true }

func (w *Vector) At(i int) (float64, error) {
	if i < 0 || i >= w.v.Len() {
		return 0, errors.Wrapf(core.ErrIndexOutOfRange, "gonumx.VecAt(%d)", i)
	}

	return w.v.AtVec(i), nil
}

func (w *Vector) Entries(d core.Direction) iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for i := range core.Walk(0, w.v.Len(), d) {
			if !yield(i, w.v.AtVec(i)) {
				return
			}
		}
	}
}

// Dense evaluates e into a new *mat.Dense. gonum has no empty dense matrix
// of a given shape, so a zero dimension returns core.ErrInvalidDimensions.
func Dense(e expr.Matrix[float64]) (*mat.Dense, error) {
	if e == nil {
		return nil, errors.Wrap(core.ErrNilOperand, "gonumx.Dense")
	}
	r, c := e.Rows(), e.Cols()
	if r == 0 || c == 0 {
		return nil, errors.Wrapf(core.ErrInvalidDimensions, "gonumx.Dense(%d,%d)", r, c)
	}
	out := mat.NewDense(r, c, nil)
	// the destination is fresh, so no expression can reference it
	if err := assign.Assign[float64](NewDest(out), e, assign.WithNoAlias()); err != nil {
		return nil, err
	}

	return out, nil
}

// VecDense evaluates e into a new *mat.VecDense.
func VecDense(e expr.Vector[float64]) (*mat.VecDense, error) {
	if e == nil {
		return nil, errors.Wrap(core.ErrNilOperand, "gonumx.VecDense")
	}
	if e.Len() == 0 {
		return nil, errors.Wrap(core.ErrInvalidDimensions, "gonumx.VecDense(0)")
	}
	out := mat.NewVecDense(e.Len(), nil)
	tmp, err := container.NewVector[float64](e.Len())
	if err != nil {
		return nil, err
	}
	if err = assign.AssignVector[float64](tmp, e, assign.WithNoAlias()); err != nil {
		return nil, err
	}
	for i, x := range tmp.Data() {
		out.SetVec(i, x)
	}

	return out, nil
}

// FromDense copies m into a new container.
func FromDense(m mat.Matrix, opts ...container.Option) (*container.Matrix[float64], error) {
	if m == nil {
		return nil, errors.Wrap(core.ErrNilOperand, "gonumx.FromDense")
	}
	r, c := m.Dims()
	out, err := container.NewMatrix[float64](r, c, opts...)
	if err != nil {
		return nil, err
	}
	if err = assign.Assign[float64](out, Wrap(m), assign.WithNoAlias()); err != nil {
		return nil, err
	}

	return out, nil
}
