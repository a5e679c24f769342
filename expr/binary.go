// SPDX-License-Identifier: MIT

package expr

import (
	"iter"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvlalg/core"
	"github.com/katalvlaran/lvlalg/dispatch"
)

// Binary combines two equally shaped matrices element by element.
type Binary[T core.Element] struct {
	op        Op
	a, b      Matrix[T]
	f         func(x, y T) T
	st        core.Structure
	strat     dispatch.Strategy
	intersect bool // sparse stream visits indices stored in both operands
}

// structureOf returns the structure an operand advertises.
func structureOf[T core.Element](m Matrix[T]) core.Structure {
	return core.StructureOf(m.Category(), m.Band(), m.Rows(), m.Cols())
}

func newBinary[T core.Element](op Op, a, b Matrix[T], f func(x, y T) T) (*Binary[T], error) {
	if a == nil || b == nil {
		return nil, errors.Wrapf(core.ErrNilOperand, "%s", op)
	}
	rows, cols := a.Rows(), a.Cols()
	if b.Rows() != rows || b.Cols() != cols {
		return nil, core.ShapeError(op.String(), rows, cols, b.Rows(), b.Cols())
	}

	n := &Binary[T]{op: op, a: a, b: b, f: f}
	sa, sb := structureOf(a), structureOf(b)
	n.strat = dispatch.Select(a.Category(), b.Category())
	switch op {
	case OpElemMul:
		n.st = core.Intersection(sa, sb, rows, cols)
		n.intersect = true
	case OpElemDiv:
		n.st = core.Quotient(sa, sb, rows, cols)
		if n.strat != dispatch.IndexFallback {
			n.strat = dispatch.DenseStride
		}
	default:
		n.st = core.Union(sa, sb, rows, cols)
	}

	return n, nil
}

// Add builds a + b.
func Add[T core.Element](a, b Matrix[T]) (*Binary[T], error) {
	return newBinary(OpAdd, a, b, func(x, y T) T { return x + y })
}

// Sub builds a - b.
func Sub[T core.Element](a, b Matrix[T]) (*Binary[T], error) {
	return newBinary(OpSub, a, b, func(x, y T) T { return x - y })
}

// ElemMul builds the elementwise (Hadamard) product a ⊙ b.
func ElemMul[T core.Element](a, b Matrix[T]) (*Binary[T], error) {
	return newBinary(OpElemMul, a, b, func(x, y T) T { return x * y })
}

// ElemDiv builds the elementwise quotient a ⊘ b. The result is Dense: a
// structural zero in b yields the IEEE quotient at that slot. For an integer
// T, Check reports ErrDivideByZero when b holds a zero.
func ElemDiv[T core.Element](a, b Matrix[T]) (*Binary[T], error) {
	return newBinary(OpElemDiv, a, b, func(x, y T) T { return x / y })
}

func (n *Binary[T]) Op() Op                      { return n.op }
func (n *Binary[T]) Strategy() dispatch.Strategy { return n.strat }
func (n *Binary[T]) Rows() int                   { return n.a.Rows() }
func (n *Binary[T]) Cols() int                   { return n.a.Cols() }
func (n *Binary[T]) Category() core.Category     { return n.st.Category }
func (n *Binary[T]) Band() core.Band             { return n.st.Band }

func (n *Binary[T]) References(id core.ID) bool {
	return n.a.References(id) || n.b.References(id)
}

// Check fails with core.ErrDivideByZero when an integer quotient has a zero
// divisor slot.
func (n *Binary[T]) Check() error {
	if err := Check(n.a); err != nil {
		return err
	}
	if err := Check(n.b); err != nil {
		return err
	}
	if n.op != OpElemDiv || !core.IsInteger[T]() {
		return nil
	}
	for i := 0; i < n.Rows(); i++ {
		for j := 0; j < n.Cols(); j++ {
			if core.IsZero(at(n.b, i, j)) {
				return errors.Wrapf(core.ErrDivideByZero, "%s(%d,%d)", n.op, i, j)
			}
		}
	}

	return nil
}

func (n *Binary[T]) At(i, j int) (T, error) {
	x, err := n.a.At(i, j)
	if err != nil {
		return x, err
	}
	y, err := n.b.At(i, j)
	if err != nil {
		return y, err
	}

	return n.f(x, y), nil
}

// merge combines two ordered streams according to the node's operation.
func (n *Binary[T]) merge(a, b iter.Seq2[int, T], d core.Direction) iter.Seq2[int, T] {
	if n.intersect {
		return intersectMerge(a, b, d, n.f)
	}

	return unionMerge(a, b, d, n.f)
}

func (n *Binary[T]) Row(i int, d core.Direction) iter.Seq2[int, T] {
	if n.strat == dispatch.SparseMerge {
		return n.merge(n.a.Row(i, d), n.b.Row(i, d), d)
	}
	lo, hi := n.st.Band.RowSpan(i, n.Cols())

	return span(lo, hi, d, func(j int) T { return n.f(at(n.a, i, j), at(n.b, i, j)) })
}

func (n *Binary[T]) Col(j int, d core.Direction) iter.Seq2[int, T] {
	if n.strat == dispatch.SparseMerge {
		return n.merge(n.a.Col(j, d), n.b.Col(j, d), d)
	}
	lo, hi := n.st.Band.ColSpan(j, n.Rows())

	return span(lo, hi, d, func(i int) T { return n.f(at(n.a, i, j), at(n.b, i, j)) })
}
