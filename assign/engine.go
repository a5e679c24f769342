// SPDX-License-Identifier: MIT

package assign

import (
	"iter"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlalg/core"
	"github.com/katalvlaran/lvlalg/dispatch"
	"github.com/katalvlaran/lvlalg/expr"
)

// Assign evaluates e into dst (dst = e).
//
// Validation happens before any mutation: core.ErrReadOnly for a read-only
// destination, core.ErrShapeMismatch for different shapes (unless
// WithResize applies) and core.ErrOutOfBand when e has a non-zero outside
// a packed destination's stored region. Integer division by a zero slot of
// e is core.ErrDivideByZero.
func Assign[T core.Element](dst expr.MutableMatrix[T], e expr.Matrix[T], opts ...Option) error {
	if dst == nil || e == nil {
		return errors.Wrap(core.ErrNilOperand, "Assign")
	}

	return run(job[T]{dst: dst, e: e, strat: expr.StrategyOf(e), opt: gatherOptions(opts...)})
}

// Accumulate combines e into dst element by element (dst op= e). Shapes
// must match; WithResize is ignored.
func Accumulate[T core.Element](dst expr.MutableMatrix[T], e expr.Matrix[T], op Op, opts ...Option) error {
	if dst == nil || e == nil {
		return errors.Wrap(core.ErrNilOperand, "Accumulate")
	}
	if !op.valid() {
		return errors.Wrapf(ErrUnknownOp, "Accumulate(%d)", op)
	}
	o := gatherOptions(opts...)
	o.resize = false

	return run(job[T]{dst: dst, e: e, strat: expr.StrategyOf(e), op: op, opt: o})
}

// job is one evaluation request. op == 0 is plain assignment.
type job[T core.Element] struct {
	dst   expr.MutableMatrix[T]
	e     expr.Matrix[T]
	strat dispatch.Strategy
	op    Op
	opt   Options
}

func (j job[T]) name() string {
	if j.op == 0 {
		return "="
	}

	return j.op.String()
}

func run[T core.Element](j job[T]) error {
	if j.dst.ReadOnly() {
		return errors.Wrapf(core.ErrReadOnly, "assign %s", j.name())
	}
	rows, cols := j.e.Rows(), j.e.Cols()
	resize := j.dst.Rows() != rows || j.dst.Cols() != cols
	if resize {
		if _, ok := j.dst.(expr.ResizableMatrix); !ok || !j.opt.resize {
			return core.ShapeError("assign "+j.name(), j.dst.Rows(), j.dst.Cols(), rows, cols)
		}
	}
	reg := regionOf(j.dst, resize, rows, cols)
	if reg != nil && !j.op.multiplicative() {
		if err := checkRegion(j.e, reg); err != nil {
			return errors.Wrapf(err, "assign %s", j.name())
		}
	}
	if err := expr.Check(j.e); err != nil {
		return errors.Wrapf(err, "assign %s", j.name())
	}
	if j.op == DivideAssign && core.IsInteger[T]() {
		if err := checkDivisor(j.e, reg); err != nil {
			return errors.Wrapf(err, "assign %s", j.name())
		}
	}

	aliased := !j.opt.noAlias && j.e.References(j.dst.StorageID())
	j.opt.log.Debug("evaluate",
		zap.String("op", j.name()),
		zap.Stringer("strategy", j.strat),
		zap.Int("rows", rows),
		zap.Int("cols", cols),
		zap.Bool("aliased", aliased))

	if !aliased {
		if resize {
			if err := j.dst.(expr.ResizableMatrix).Resize(rows, cols); err != nil {
				return err
			}
		}
		return evaluate(j.dst, j.e, j.strat, j.op, reg)
	}

	// the result is built in a temporary; dst is untouched until the copy
	tmp := j.dst.Temporary()
	if tmp.Rows() != rows || tmp.Cols() != cols {
		r, ok := tmp.(expr.ResizableMatrix)
		if !ok {
			return core.ShapeError("assign "+j.name(), tmp.Rows(), tmp.Cols(), rows, cols)
		}
		if err := r.Resize(rows, cols); err != nil {
			return err
		}
	}
	j.opt.log.Debug("temporary allocated", zap.Stringer("category", tmp.Category()))
	tmpReg := regionOf(tmp, false, rows, cols)
	if j.op != 0 {
		if err := evaluate(tmp, expr.Matrix[T](j.dst), expr.StrategyOf(j.dst), 0, tmpReg); err != nil {
			return err
		}
	}
	if err := evaluate(tmp, j.e, j.strat, j.op, tmpReg); err != nil {
		return err
	}
	if resize {
		if err := j.dst.(expr.ResizableMatrix).Resize(rows, cols); err != nil {
			return err
		}
	}

	return evaluate(j.dst, expr.Matrix[T](tmp), expr.StrategyOf(tmp), 0, reg)
}

// evaluate writes e into out with the traversal of strat. The caller has
// validated shapes and the stored region.
func evaluate[T core.Element](out expr.MutableMatrix[T], e expr.Matrix[T], strat dispatch.Strategy, op Op, reg expr.Bounded) error {
	w := writer[T]{out: out, op: op, reg: reg}
	l := layoutOf(out)
	if op != 0 {
		strat = dispatch.ForAccumulate(strat, op.multiplicative())
	}

	switch strat {
	case dispatch.IndexFallback:
		return w.indexLoop(l, e)
	case dispatch.DenseStride:
		return w.strideLoop(l, e)
	default:
		if op == 0 {
			if err := out.Clear(); err != nil {
				return err
			}
		}
		return w.storedLoop(l, e)
	}
}

// layout walks the destination in its storage order: rows for row-major,
// columns for column-major destinations.
type layout struct {
	byCol      bool
	rows, cols int
}

func layoutOf[T core.Element](m expr.Matrix[T]) layout {
	l := layout{rows: m.Rows(), cols: m.Cols()}
	if o, ok := m.(expr.Oriented); ok {
		l.byCol = o.Orientation() == core.ColumnMajor
	}

	return l
}

func (l layout) lines() int {
	if l.byCol {
		return l.cols
	}

	return l.rows
}

func (l layout) length() int {
	if l.byCol {
		return l.rows
	}

	return l.cols
}

func (l layout) coords(line, idx int) (int, int) {
	if l.byCol {
		return idx, line
	}

	return line, idx
}

func stream[T core.Element](l layout, e expr.Matrix[T], line int) iter.Seq2[int, T] {
	if l.byCol {
		return e.Col(line, core.Forward)
	}

	return e.Row(line, core.Forward)
}

// writer applies the write rule: slots outside the stored region are
// skipped (the region check proved them zero), zero results erase and
// everything else is set.
type writer[T core.Element] struct {
	out expr.MutableMatrix[T]
	op  Op
	reg expr.Bounded
}

func (w writer[T]) put(i, j int, x T) error {
	if w.reg != nil && !w.reg.Contains(i, j) {
		return nil
	}
	if w.op != 0 {
		if core.IsZero(x) && !w.op.multiplicative() {
			return nil
		}
		old, err := w.out.At(i, j)
		if err != nil {
			return err
		}
		x = combine(w.op, old, x)
	}
	if core.IsZero(x) {
		return w.out.Erase(i, j)
	}

	return w.out.Set(i, j, x)
}

// indexLoop reads every slot through At.
func (w writer[T]) indexLoop(l layout, e expr.Matrix[T]) error {
	for line := 0; line < l.lines(); line++ {
		for idx := 0; idx < l.length(); idx++ {
			i, j := l.coords(line, idx)
			x, err := e.At(i, j)
			if err != nil {
				return err
			}
			if err = w.put(i, j, x); err != nil {
				return err
			}
		}
	}

	return nil
}

// strideLoop visits every slot in storage order, filling indices the line
// stream skips with zero.
func (w writer[T]) strideLoop(l layout, e expr.Matrix[T]) error {
	var zero T
	n := l.length()
	for line := 0; line < l.lines(); line++ {
		next := 0
		for idx, x := range stream(l, e, line) {
			for ; next < idx; next++ {
				i, j := l.coords(line, next)
				if err := w.put(i, j, zero); err != nil {
					return err
				}
			}
			i, j := l.coords(line, idx)
			if err := w.put(i, j, x); err != nil {
				return err
			}
			next = idx + 1
		}
		for ; next < n; next++ {
			i, j := l.coords(line, next)
			if err := w.put(i, j, zero); err != nil {
				return err
			}
		}
	}

	return nil
}

// storedLoop visits only the slots the expression streams yield.
func (w writer[T]) storedLoop(l layout, e expr.Matrix[T]) error {
	for line := 0; line < l.lines(); line++ {
		for idx, x := range stream(l, e, line) {
			i, j := l.coords(line, idx)
			if err := w.put(i, j, x); err != nil {
				return err
			}
		}
	}

	return nil
}
