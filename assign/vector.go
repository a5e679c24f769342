// SPDX-License-Identifier: MIT

package assign

import (
	"iter"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvlalg/core"
	"github.com/katalvlaran/lvlalg/expr"
)

// AssignVector evaluates e into dst (dst = e). Errors follow Assign.
func AssignVector[T core.Element](dst expr.MutableVector[T], e expr.Vector[T], opts ...Option) error {
	if dst == nil || e == nil {
		return errors.Wrap(core.ErrNilOperand, "AssignVector")
	}

	return run(job[T]{
		dst:   newColumnDest(dst),
		e:     columnExpr[T]{v: e},
		strat: expr.StrategyOf(e),
		opt:   gatherOptions(opts...),
	})
}

// AccumulateVector combines e into dst element by element (dst op= e).
func AccumulateVector[T core.Element](dst expr.MutableVector[T], e expr.Vector[T], op Op, opts ...Option) error {
	if dst == nil || e == nil {
		return errors.Wrap(core.ErrNilOperand, "AccumulateVector")
	}
	if !op.valid() {
		return errors.Wrapf(ErrUnknownOp, "AccumulateVector(%d)", op)
	}
	o := gatherOptions(opts...)
	o.resize = false

	return run(job[T]{
		dst:   newColumnDest(dst),
		e:     columnExpr[T]{v: e},
		strat: expr.StrategyOf(e),
		op:    op,
		opt:   o,
	})
}

// columnExpr reads a vector expression as an n×1 matrix.
type columnExpr[T core.Element] struct{ v expr.Vector[T] }

func (c columnExpr[T]) Rows() int                  { return c.v.Len() }
func (c columnExpr[T]) Cols() int                  { return 1 }
func (c columnExpr[T]) Category() core.Category    { return c.v.Category() }
func (c columnExpr[T]) Band() core.Band            { return core.FullBand(c.v.Len(), 1) }
func (c columnExpr[T]) References(id core.ID) bool { return c.v.References(id) }
func (c columnExpr[T]) Check() error               { return expr.Check(c.v) }

func (c columnExpr[T]) At(i, j int) (T, error) {
	if j != 0 {
		return core.Zero[T](), core.IndexError("vector", i, j)
	}

	return c.v.At(i)
}

func (c columnExpr[T]) Row(i int, _ core.Direction) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if x, err := c.v.At(i); err == nil {
			yield(0, x)
		}
	}
}

func (c columnExpr[T]) Col(j int, d core.Direction) iter.Seq2[int, T] {
	if j != 0 {
		return func(func(int, T) bool) {}
	}

	return c.v.Entries(d)
}

// columnDest writes a vector destination as an n×1 column-major matrix, so
// the engine walks it as one line.
type columnDest[T core.Element] struct {
	columnExpr[T]
	v expr.MutableVector[T]
}

func newColumnDest[T core.Element](v expr.MutableVector[T]) columnDest[T] {
	return columnDest[T]{columnExpr: columnExpr[T]{v: v}, v: v}
}

func (c columnDest[T]) Orientation() core.Orientation { return core.ColumnMajor }
func (c columnDest[T]) StorageID() core.ID            { return c.v.StorageID() }
func (c columnDest[T]) ReadOnly() bool                { return c.v.ReadOnly() }
func (c columnDest[T]) Clear() error                  { return c.v.Clear() }

// Contains narrows the column to the writable positions of a line over a
// packed matrix.
func (c columnDest[T]) Contains(i, j int) bool {
	b, ok := c.v.(expr.BoundedVector)
	return j == 0 && (!ok || b.InRegion(i))
}

func (c columnDest[T]) Set(i, j int, x T) error {
	if j != 0 {
		return core.IndexError("vector.Set", i, j)
	}

	return c.v.Set(i, x)
}

func (c columnDest[T]) Erase(i, j int) error {
	if j != 0 {
		return core.IndexError("vector.Erase", i, j)
	}

	return c.v.Erase(i)
}

func (c columnDest[T]) Temporary() expr.MutableMatrix[T] {
	return newColumnDest(c.v.Temporary())
}

// Resize changes the length of a resizable vector. Other vectors report
// core.ErrShapeMismatch.
func (c columnDest[T]) Resize(rows, cols int) error {
	r, ok := c.v.(expr.ResizableVector)
	if !ok || cols != 1 {
		return core.ShapeError("vector resize", c.v.Len(), 1, rows, cols)
	}

	return r.Resize(rows)
}
