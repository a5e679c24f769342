// SPDX-License-Identifier: MIT

package expr

import (
	"iter"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvlalg/core"
	"github.com/katalvlaran/lvlalg/dispatch"
)

// column presents a vector as an n×1 matrix so the elementwise matrix nodes
// serve vectors as well.
type column[T core.Element] struct{ v Vector[T] }

func (c column[T]) Rows() int                  { return c.v.Len() }
func (c column[T]) Cols() int                  { return 1 }
func (c column[T]) Category() core.Category    { return c.v.Category() }
func (c column[T]) Band() core.Band            { return core.FullBand(c.v.Len(), 1) }
func (c column[T]) References(id core.ID) bool { return c.v.References(id) }
func (c column[T]) Check() error               { return Check(c.v) }

func (c column[T]) At(i, j int) (T, error) {
	if j != 0 {
		return core.Zero[T](), core.IndexError("column.At", i, j)
	}

	return c.v.At(i)
}

func (c column[T]) Row(i int, _ core.Direction) iter.Seq2[int, T] {
	v := atVec(c.v, i)
	return single(0, v, c.v.Category().IsSparse() && core.IsZero(v))
}

func (c column[T]) Col(j int, d core.Direction) iter.Seq2[int, T] {
	if j != 0 {
		return single(0, core.Zero[T](), true)
	}

	return c.v.Entries(d)
}

// matrixNode is a matrix expression that reports its operation.
type matrixNode[T core.Element] interface {
	Matrix[T]
	Node
	Checked
}

// VectorNode is an elementwise vector expression. It evaluates through the
// matching matrix node over n×1 column adapters.
type VectorNode[T core.Element] struct {
	m matrixNode[T]
}

func vectorOf[T core.Element](m matrixNode[T], err error) (*VectorNode[T], error) {
	if err != nil {
		return nil, err
	}

	return &VectorNode[T]{m: m}, nil
}

func colOf[T core.Element](v Vector[T]) Matrix[T] {
	if v == nil {
		return nil
	}

	return column[T]{v: v}
}

// NegVec builds -x.
func NegVec[T core.Element](x Vector[T]) (*VectorNode[T], error) {
	return vectorOf[T](Neg(colOf(x)))
}

// ConjVec builds the elementwise conjugate of x.
func ConjVec[T core.Element](x Vector[T]) (*VectorNode[T], error) {
	return vectorOf[T](Conj(colOf(x)))
}

// ScaleVec builds s*x.
func ScaleVec[T core.Element](x Vector[T], s T) (*VectorNode[T], error) {
	return vectorOf[T](Scale(colOf(x), s))
}

// DivVec builds x/s. Returns ErrDivideByZero for an integer T and s == 0.
func DivVec[T core.Element](x Vector[T], s T) (*VectorNode[T], error) {
	return vectorOf[T](Div(colOf(x), s))
}

// AddVec builds x + y.
func AddVec[T core.Element](x, y Vector[T]) (*VectorNode[T], error) {
	return vectorOf[T](Add(colOf(x), colOf(y)))
}

// SubVec builds x - y.
func SubVec[T core.Element](x, y Vector[T]) (*VectorNode[T], error) {
	return vectorOf[T](Sub(colOf(x), colOf(y)))
}

// ElemMulVec builds x ⊙ y.
func ElemMulVec[T core.Element](x, y Vector[T]) (*VectorNode[T], error) {
	return vectorOf[T](ElemMul(colOf(x), colOf(y)))
}

// ElemDivVec builds x ⊘ y.
func ElemDivVec[T core.Element](x, y Vector[T]) (*VectorNode[T], error) {
	return vectorOf[T](ElemDiv(colOf(x), colOf(y)))
}

func (v *VectorNode[T]) Op() Op                      { return v.m.Op() }
func (v *VectorNode[T]) Strategy() dispatch.Strategy { return v.m.Strategy() }
func (v *VectorNode[T]) Len() int                    { return v.m.Rows() }
func (v *VectorNode[T]) Category() core.Category     { return v.m.Category() }
func (v *VectorNode[T]) References(id core.ID) bool  { return v.m.References(id) }
func (v *VectorNode[T]) Check() error                { return v.m.Check() }

func (v *VectorNode[T]) At(i int) (T, error) {
	if i < 0 || i >= v.Len() {
		return core.Zero[T](), errors.Wrapf(core.ErrIndexOutOfRange, "Vector.At(%d)", i)
	}

	return v.m.At(i, 0)
}

func (v *VectorNode[T]) Entries(d core.Direction) iter.Seq2[int, T] { return v.m.Col(0, d) }
