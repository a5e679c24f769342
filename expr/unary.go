// SPDX-License-Identifier: MIT

package expr

import (
	"iter"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvlalg/core"
	"github.com/katalvlaran/lvlalg/dispatch"
)

// Unary applies an element function to one matrix operand. The structure of
// the operand is kept, except for Div by a zero scalar: every slot is then
// NaN or Inf and the node is Dense.
type Unary[T core.Element] struct {
	op    Op
	a     Matrix[T]
	f     func(T) T
	strat dispatch.Strategy
	dense bool
}

func newUnary[T core.Element](op Op, a Matrix[T], f func(T) T) (*Unary[T], error) {
	if a == nil {
		return nil, errors.Wrapf(core.ErrNilOperand, "%s", op)
	}

	return &Unary[T]{op: op, a: a, f: f, strat: dispatch.Select(a.Category())}, nil
}

// Neg builds -a.
func Neg[T core.Element](a Matrix[T]) (*Unary[T], error) {
	return newUnary(OpNeg, a, func(x T) T { return -x })
}

// Conj builds the elementwise complex conjugate of a.
func Conj[T core.Element](a Matrix[T]) (*Unary[T], error) {
	return newUnary(OpConj, a, core.Conj[T])
}

// Scale builds s*a.
func Scale[T core.Element](a Matrix[T], s T) (*Unary[T], error) {
	return newUnary(OpScale, a, func(x T) T { return s * x })
}

// Div builds a/s. Returns ErrDivideByZero for an integer T and s == 0.
func Div[T core.Element](a Matrix[T], s T) (*Unary[T], error) {
	if !core.IsZero(s) {
		return newUnary(OpDiv, a, func(x T) T { return x / s })
	}
	if core.IsInteger[T]() {
		return nil, errors.Wrap(core.ErrDivideByZero, "div")
	}
	u, err := newUnary(OpDiv, a, func(x T) T { return x / s })
	if err != nil {
		return nil, err
	}
	u.dense = true
	if u.strat != dispatch.IndexFallback {
		u.strat = dispatch.DenseStride
	}

	return u, nil
}

func (u *Unary[T]) Op() Op                      { return u.op }
func (u *Unary[T]) Strategy() dispatch.Strategy { return u.strat }
func (u *Unary[T]) Rows() int                   { return u.a.Rows() }
func (u *Unary[T]) Cols() int                   { return u.a.Cols() }
func (u *Unary[T]) References(id core.ID) bool  { return u.a.References(id) }
func (u *Unary[T]) Check() error                { return Check(u.a) }

func (u *Unary[T]) Category() core.Category {
	if u.dense && u.a.Category() != core.Unknown {
		return core.Dense
	}

	return u.a.Category()
}

func (u *Unary[T]) Band() core.Band {
	if u.dense {
		return core.FullBand(u.Rows(), u.Cols())
	}

	return u.a.Band()
}

func (u *Unary[T]) At(i, j int) (T, error) {
	v, err := u.a.At(i, j)
	if err != nil {
		return v, err
	}

	return u.f(v), nil
}

func (u *Unary[T]) Row(i int, d core.Direction) iter.Seq2[int, T] {
	if u.dense {
		return span(0, u.Cols(), d, func(j int) T { return u.f(at(u.a, i, j)) })
	}

	return mapValues(u.a.Row(i, d), u.f)
}

func (u *Unary[T]) Col(j int, d core.Direction) iter.Seq2[int, T] {
	if u.dense {
		return span(0, u.Rows(), d, func(i int) T { return u.f(at(u.a, i, j)) })
	}

	return mapValues(u.a.Col(j, d), u.f)
}

// Transposed swaps the row and column roles of its operand, conjugating the
// values for the Hermitian form.
type Transposed[T core.Element] struct {
	op    Op
	a     Matrix[T]
	strat dispatch.Strategy
}

func newTransposed[T core.Element](op Op, a Matrix[T]) (*Transposed[T], error) {
	if a == nil {
		return nil, errors.Wrapf(core.ErrNilOperand, "%s", op)
	}

	return &Transposed[T]{op: op, a: a, strat: dispatch.Select(a.Category())}, nil
}

// Trans builds aᵀ.
func Trans[T core.Element](a Matrix[T]) (*Transposed[T], error) { return newTransposed(OpTrans, a) }

// Herm builds the conjugate transpose aᴴ.
func Herm[T core.Element](a Matrix[T]) (*Transposed[T], error) { return newTransposed(OpHerm, a) }

func (t *Transposed[T]) Op() Op                      { return t.op }
func (t *Transposed[T]) Strategy() dispatch.Strategy { return t.strat }
func (t *Transposed[T]) Rows() int                   { return t.a.Cols() }
func (t *Transposed[T]) Cols() int                   { return t.a.Rows() }
func (t *Transposed[T]) Category() core.Category     { return t.a.Category() }
func (t *Transposed[T]) Band() core.Band             { return t.a.Band().Transpose() }
func (t *Transposed[T]) References(id core.ID) bool  { return t.a.References(id) }
func (t *Transposed[T]) Check() error                { return Check(t.a) }

func (t *Transposed[T]) value(v T) T {
	if t.op == OpHerm {
		return core.Conj(v)
	}

	return v
}

func (t *Transposed[T]) At(i, j int) (T, error) {
	if err := checkIndex("Trans.At", i, j, t.Rows(), t.Cols()); err != nil {
		return core.Zero[T](), err
	}
	v, err := t.a.At(j, i)

	return t.value(v), err
}

func (t *Transposed[T]) Row(i int, d core.Direction) iter.Seq2[int, T] {
	if t.op == OpHerm {
		return mapValues(t.a.Col(i, d), core.Conj[T])
	}

	return t.a.Col(i, d)
}

func (t *Transposed[T]) Col(j int, d core.Direction) iter.Seq2[int, T] {
	if t.op == OpHerm {
		return mapValues(t.a.Row(j, d), core.Conj[T])
	}

	return t.a.Row(j, d)
}
