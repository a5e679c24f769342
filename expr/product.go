// SPDX-License-Identifier: MIT

// Package expr - products.
//
// Row i of a·b is Σ_k a[i,k]·b[k,:]: the stored entries of a's row drive the
// accumulation over the matching rows of b. Dense and packed results use a
// slice accumulator over the row; sparse results (both operands sparse) use
// a map accumulator and yield the touched indices in order.
//
// Complexity: one row of a dense product costs O(k·cols); a sparse row costs
// O(Σ nnz(b[k,:]) + m log m) for m touched columns.

package expr

import (
	"iter"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvlalg/core"
	"github.com/katalvlaran/lvlalg/dispatch"
)

// productStrategy maps the derived structure of a product to the traversal
// its rows are produced with.
func productStrategy(st core.Structure) dispatch.Strategy {
	return dispatch.Select(st.Category)
}

func vectorStructure[T core.Element](v Vector[T]) core.Structure {
	return core.StructureOf(v.Category(), core.Band{}, v.Len(), 1)
}

func mul[T core.Element](x, y T) T { return x * y }

// dot returns Σ a_k·b_k over two ordered streams, and whether any index
// contributed.
func dot[T core.Element](a iter.Seq2[int, T], b func(k int) T) (T, bool) {
	var s T
	hit := false
	for k, x := range a {
		s += x * b(k)
		hit = true
	}

	return s, hit
}

// sparseDot is dot restricted to indices stored in both streams.
func sparseDot[T core.Element](a, b iter.Seq2[int, T]) (T, bool) {
	var s T
	hit := false
	for _, v := range intersectMerge(a, b, core.Forward, mul[T]) {
		s += v
		hit = true
	}

	return s, hit
}

// MatMulNode is the matrix-matrix product a·b.
type MatMulNode[T core.Element] struct {
	a, b  Matrix[T]
	st    core.Structure
	strat dispatch.Strategy
}

// MatMul builds a·b. Returns ErrShapeMismatch unless a.Cols() == b.Rows().
func MatMul[T core.Element](a, b Matrix[T]) (*MatMulNode[T], error) {
	if a == nil || b == nil {
		return nil, errors.Wrap(core.ErrNilOperand, "prod")
	}
	if a.Cols() != b.Rows() {
		return nil, core.ShapeError("prod", a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}
	p := &MatMulNode[T]{a: a, b: b}
	p.st = core.Product(structureOf(a), structureOf(b), a.Rows(), b.Cols())
	p.strat = productStrategy(p.st)

	return p, nil
}

func (p *MatMulNode[T]) Op() Op                      { return OpMatMul }
func (p *MatMulNode[T]) Strategy() dispatch.Strategy { return p.strat }
func (p *MatMulNode[T]) Rows() int                   { return p.a.Rows() }
func (p *MatMulNode[T]) Cols() int                   { return p.b.Cols() }
func (p *MatMulNode[T]) Category() core.Category     { return p.st.Category }
func (p *MatMulNode[T]) Band() core.Band             { return p.st.Band }

func (p *MatMulNode[T]) References(id core.ID) bool {
	return p.a.References(id) || p.b.References(id)
}

func (p *MatMulNode[T]) Check() error { return checkAll(p.a, p.b) }

func (p *MatMulNode[T]) sparse() bool {
	return p.a.Category().IsSparse() && p.b.Category().IsSparse()
}

func (p *MatMulNode[T]) At(i, j int) (T, error) {
	if err := checkIndex("MatMul.At", i, j, p.Rows(), p.Cols()); err != nil {
		return core.Zero[T](), err
	}
	if p.sparse() {
		v, _ := sparseDot(p.a.Row(i, core.Forward), p.b.Col(j, core.Forward))
		return v, nil
	}
	v, _ := dot(p.a.Row(i, core.Forward), func(k int) T { return at(p.b, k, j) })

	return v, nil
}

// gather accumulates Σ_k outer[k]·inner(k) into a line of length n and yields
// [lo, hi) of it, or only the touched indices for sparse results.
func (p *MatMulNode[T]) gather(outer iter.Seq2[int, T], inner func(k int) iter.Seq2[int, T], n, lo, hi int, d core.Direction) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if p.st.Category.IsSparse() {
			acc := make(map[int]T)
			for k, x := range outer {
				for j, y := range inner(k) {
					acc[j] += x * y
				}
			}
			for j, v := range sortedAcc(acc, d) {
				if !yield(j, v) {
					return
				}
			}
			return
		}
		acc := make([]T, n)
		for k, x := range outer {
			for j, y := range inner(k) {
				acc[j] += x * y
			}
		}
		for j := range core.Walk(lo, hi, d) {
			if !yield(j, acc[j]) {
				return
			}
		}
	}
}

func (p *MatMulNode[T]) Row(i int, d core.Direction) iter.Seq2[int, T] {
	lo, hi := p.st.Band.RowSpan(i, p.Cols())
	inner := func(k int) iter.Seq2[int, T] { return p.b.Row(k, core.Forward) }

	return p.gather(p.a.Row(i, core.Forward), inner, p.Cols(), lo, hi, d)
}

func (p *MatMulNode[T]) Col(j int, d core.Direction) iter.Seq2[int, T] {
	lo, hi := p.st.Band.ColSpan(j, p.Rows())
	inner := func(k int) iter.Seq2[int, T] { return p.a.Col(k, core.Forward) }

	return p.gather(p.b.Col(j, core.Forward), inner, p.Rows(), lo, hi, d)
}

// MatVecNode is the matrix-vector product a·x (or xᵀ·a for VecMat).
type MatVecNode[T core.Element] struct {
	op    Op
	a     Matrix[T]
	x     Vector[T]
	st    core.Structure
	strat dispatch.Strategy
}

func newMatVec[T core.Element](op Op, a Matrix[T], x Vector[T]) (*MatVecNode[T], error) {
	p := &MatVecNode[T]{op: op, a: a, x: x}
	p.st = core.Product(structureOf(a), vectorStructure(x), a.Rows(), 1)
	p.strat = productStrategy(p.st)

	return p, nil
}

// MatVec builds a·x. Returns ErrShapeMismatch unless a.Cols() == x.Len().
func MatVec[T core.Element](a Matrix[T], x Vector[T]) (*MatVecNode[T], error) {
	if a == nil || x == nil {
		return nil, errors.Wrap(core.ErrNilOperand, "matvec")
	}
	if a.Cols() != x.Len() {
		return nil, core.ShapeError("matvec", a.Rows(), a.Cols(), x.Len(), 1)
	}

	return newMatVec(OpMatVec, a, x)
}

// VecMat builds xᵀ·a as a vector. Returns ErrShapeMismatch unless
// x.Len() == a.Rows().
func VecMat[T core.Element](x Vector[T], a Matrix[T]) (*MatVecNode[T], error) {
	if a == nil || x == nil {
		return nil, errors.Wrap(core.ErrNilOperand, "vecmat")
	}
	if a.Rows() != x.Len() {
		return nil, core.ShapeError("vecmat", 1, x.Len(), a.Rows(), a.Cols())
	}
	ta, _ := Trans(a) // a is non-nil

	return newMatVec[T](OpVecMat, ta, x)
}

func (p *MatVecNode[T]) Op() Op                      { return p.op }
func (p *MatVecNode[T]) Strategy() dispatch.Strategy { return p.strat }
func (p *MatVecNode[T]) Len() int                    { return p.a.Rows() }
func (p *MatVecNode[T]) Category() core.Category     { return p.st.Category }

func (p *MatVecNode[T]) References(id core.ID) bool {
	return p.a.References(id) || p.x.References(id)
}

func (p *MatVecNode[T]) Check() error { return checkAll(p.a, p.x) }

func (p *MatVecNode[T]) value(i int) (T, bool) {
	if p.st.Category.IsSparse() {
		return sparseDot(p.a.Row(i, core.Forward), p.x.Entries(core.Forward))
	}

	return dot(p.a.Row(i, core.Forward), func(k int) T { return atVec(p.x, k) })
}

func (p *MatVecNode[T]) At(i int) (T, error) {
	if i < 0 || i >= p.Len() {
		return core.Zero[T](), errors.Wrapf(core.ErrIndexOutOfRange, "%s.At(%d)", p.op, i)
	}
	v, _ := p.value(i)

	return v, nil
}

func (p *MatVecNode[T]) Entries(d core.Direction) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		sparse := p.st.Category.IsSparse()
		for i := range core.Walk(0, p.Len(), d) {
			v, hit := p.value(i)
			if sparse && !hit {
				continue
			}
			if !yield(i, v) {
				return
			}
		}
	}
}

// OuterNode is the outer product x·yᵀ.
type OuterNode[T core.Element] struct {
	x, y  Vector[T]
	st    core.Structure
	strat dispatch.Strategy
}

// Outer builds x·yᵀ, an x.Len()×y.Len() matrix.
func Outer[T core.Element](x, y Vector[T]) (*OuterNode[T], error) {
	if x == nil || y == nil {
		return nil, errors.Wrap(core.ErrNilOperand, "outer")
	}
	o := &OuterNode[T]{x: x, y: y}
	o.st = core.Product(vectorStructure(x), vectorStructure(y), x.Len(), y.Len())
	o.strat = productStrategy(o.st)

	return o, nil
}

func (o *OuterNode[T]) Op() Op                      { return OpOuter }
func (o *OuterNode[T]) Strategy() dispatch.Strategy { return o.strat }
func (o *OuterNode[T]) Rows() int                   { return o.x.Len() }
func (o *OuterNode[T]) Cols() int                   { return o.y.Len() }
func (o *OuterNode[T]) Category() core.Category     { return o.st.Category }
func (o *OuterNode[T]) Band() core.Band             { return o.st.Band }

func (o *OuterNode[T]) References(id core.ID) bool {
	return o.x.References(id) || o.y.References(id)
}

func (o *OuterNode[T]) Check() error { return checkAll(o.x, o.y) }

func (o *OuterNode[T]) At(i, j int) (T, error) {
	if err := checkIndex("Outer.At", i, j, o.Rows(), o.Cols()); err != nil {
		return core.Zero[T](), err
	}

	return atVec(o.x, i) * atVec(o.y, j), nil
}

// line yields s·other over other's entries (sparse) or every slot.
func (o *OuterNode[T]) line(s T, other Vector[T], d core.Direction) iter.Seq2[int, T] {
	if o.st.Category.IsSparse() {
		if core.IsZero(s) {
			return single(0, s, true)
		}
		return mapValues(other.Entries(d), func(v T) T { return s * v })
	}

	return span(0, other.Len(), d, func(k int) T { return s * atVec(other, k) })
}

func (o *OuterNode[T]) Row(i int, d core.Direction) iter.Seq2[int, T] {
	return o.line(atVec(o.x, i), o.y, d)
}

func (o *OuterNode[T]) Col(j int, d core.Direction) iter.Seq2[int, T] {
	return o.line(atVec(o.y, j), o.x, d)
}

// InnerProduct is the scalar Σ x_k·y_k. No conjugation is applied.
type InnerProduct[T core.Element] struct {
	x, y Vector[T]
}

// Inner builds x·y. Returns ErrShapeMismatch for different lengths.
func Inner[T core.Element](x, y Vector[T]) (*InnerProduct[T], error) {
	if x == nil || y == nil {
		return nil, errors.Wrap(core.ErrNilOperand, "inner")
	}
	if x.Len() != y.Len() {
		return nil, core.ShapeError("inner", x.Len(), 1, y.Len(), 1)
	}

	return &InnerProduct[T]{x: x, y: y}, nil
}

func (p *InnerProduct[T]) Op() Op { return OpInner }

func (p *InnerProduct[T]) Strategy() dispatch.Strategy {
	return dispatch.Select(p.x.Category(), p.y.Category())
}

func (p *InnerProduct[T]) References(id core.ID) bool {
	return p.x.References(id) || p.y.References(id)
}

// Check runs the value checks of both operands; call it before Value when
// they may hold an integer quotient.
func (p *InnerProduct[T]) Check() error { return checkAll(p.x, p.y) }

// Value computes the product on every call.
func (p *InnerProduct[T]) Value() T {
	if p.Strategy() == dispatch.SparseMerge {
		v, _ := sparseDot(p.x.Entries(core.Forward), p.y.Entries(core.Forward))
		return v
	}
	v, _ := dot(p.x.Entries(core.Forward), func(k int) T { return atVec(p.y, k) })

	return v
}
