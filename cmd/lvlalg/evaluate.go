// SPDX-License-Identifier: MIT

package main

import (
	"slices"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlalg/assign"
	"github.com/katalvlaran/lvlalg/container"
	"github.com/katalvlaran/lvlalg/core"
	"github.com/katalvlaran/lvlalg/expr"
)

// operand is a named container; exactly one of m and v is set.
type operand struct {
	m expr.MutableMatrix[float64]
	v expr.MutableVector[float64]
}

// value is the result of building an expression node.
type value struct {
	m expr.Matrix[float64]
	v expr.Vector[float64]
	s expr.Scalar[float64]
}

func (x value) kind() string {
	switch {
	case x.m != nil:
		return "matrix"
	case x.v != nil:
		return "vector"
	default:
		return "scalar"
	}
}

// Session holds the operands of one workload and evaluates its steps.
type Session struct {
	operands map[string]operand
	scalars  map[string]float64
	targets  []string
	noAlias  bool
	log      *zap.Logger
}

// NewSession materializes every operand declared in w.
func NewSession(w *Workload, noAlias bool, log *zap.Logger) (*Session, error) {
	s := &Session{
		operands: make(map[string]operand, len(w.Operands)),
		scalars:  make(map[string]float64),
		noAlias:  noAlias,
		log:      log,
	}
	names := make([]string, 0, len(w.Operands))
	for name := range w.Operands {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		op, err := w.Operands[name].build(name)
		if err != nil {
			return nil, err
		}
		s.operands[name] = op
		s.log.Debug("operand", zap.String("name", name), zap.String("kind", w.Operands[name].Kind))
	}

	return s, nil
}

// Run evaluates the steps in order.
func (s *Session) Run(steps []Step) error {
	for k, st := range steps {
		if err := s.step(st); err != nil {
			return errors.Wrapf(err, "step %d (%s)", k+1, st.Target)
		}
		if !slices.Contains(s.targets, st.Target) {
			s.targets = append(s.targets, st.Target)
		}
	}

	return nil
}

// Targets returns step targets in first-assignment order.
func (s *Session) Targets() []string { return slices.Clone(s.targets) }

func (s *Session) options(st Step) []assign.Option {
	var opts []assign.Option
	if s.noAlias || st.NoAlias {
		opts = append(opts, assign.WithNoAlias())
	}
	if st.Resize {
		opts = append(opts, assign.WithResize())
	}

	return append(opts, assign.WithLogger(s.log.With(zap.String("target", st.Target))))
}

func parseOp(s string) (assign.Op, bool, error) {
	switch s {
	case "", "=":
		return 0, false, nil
	case "+=":
		return assign.PlusAssign, true, nil
	case "-=":
		return assign.MinusAssign, true, nil
	case ".*=":
		return assign.TimesAssign, true, nil
	case "./=":
		return assign.DivideAssign, true, nil
	default:
		return 0, false, errors.Wrapf(assign.ErrUnknownOp, "%q", s)
	}
}

func (s *Session) step(st Step) error {
	if st.Target == "" {
		return errors.Wrap(ErrWorkload, "step without target")
	}
	op, acc, err := parseOp(st.Op)
	if err != nil {
		return err
	}
	x, err := s.build(st.Expr)
	if err != nil {
		return err
	}
	dst, declared := s.operands[st.Target]
	opts := s.options(st)

	switch {
	case x.s != nil:
		if acc || declared {
			return errors.Wrap(ErrWorkload, "scalar result needs a fresh target with '='")
		}
		if err := expr.Check(x.s); err != nil {
			return err
		}
		s.scalars[st.Target] = x.s.Value()

		return nil
	case !declared:
		// a fresh target takes the structure of its expression
		if acc {
			return errors.Wrapf(ErrUnknownOperand, "%q cannot be accumulated before it is assigned", st.Target)
		}
		if x.m != nil {
			dst = operand{m: container.NewLike(x.m)}
		} else {
			dst = operand{v: container.NewLikeVector(x.v)}
		}
		s.operands[st.Target] = dst
	}

	switch {
	case x.m != nil && dst.m != nil:
		if acc {
			return assign.Accumulate(dst.m, x.m, op, opts...)
		}
		return assign.Assign(dst.m, x.m, opts...)
	case x.v != nil && dst.v != nil:
		if acc {
			return assign.AccumulateVector(dst.v, x.v, op, opts...)
		}
		return assign.AssignVector(dst.v, x.v, opts...)
	default:
		return errors.Wrapf(core.ErrShapeMismatch, "cannot store a %s in %q", x.kind(), st.Target)
	}
}

// leaf resolves a reference to a declared operand or a previous target.
func (s *Session) leaf(name string) (value, error) {
	if op, ok := s.operands[name]; ok {
		if op.m != nil {
			return value{m: op.m}, nil
		}
		return value{v: op.v}, nil
	}

	return value{}, errors.Wrapf(ErrUnknownOperand, "%q", name)
}

func arity(e Expr, n int) error {
	if len(e.Args) != n {
		return errors.Wrapf(ErrWorkload, "%s takes %d operand(s), got %d", e.Op, n, len(e.Args))
	}

	return nil
}

func pair(r []int, what string) (core.Range, error) {
	if len(r) != 2 {
		return core.Range{}, errors.Wrapf(ErrWorkload, "%s must be [start, stop]", what)
	}

	return core.Range{Start: r[0], Stop: r[1]}, nil
}

// build turns an expression tree into lazy nodes over the session operands.
func (s *Session) build(e Expr) (value, error) {
	if e.Op == "" {
		return s.leaf(e.Ref)
	}
	args := make([]value, len(e.Args))
	for k, a := range e.Args {
		v, err := s.build(a)
		if err != nil {
			return value{}, err
		}
		args[k] = v
	}

	switch e.Op {
	case "add", "sub", "emul", "ediv", "prod", "outer", "inner":
		if err := arity(e, 2); err != nil {
			return value{}, err
		}
		return binary(e.Op, args[0], args[1])
	case "neg", "conj", "trans", "herm", "scale", "div":
		if err := arity(e, 1); err != nil {
			return value{}, err
		}
		return unary(e, args[0])
	case "row", "col", "range":
		if err := arity(e, 1); err != nil {
			return value{}, err
		}
		return proxy(e, args[0])
	default:
		return value{}, errors.Wrapf(ErrWorkload, "unknown operator %q", e.Op)
	}
}

func binary(op string, a, b value) (value, error) {
	var (
		out value
		err error
	)
	mm := a.m != nil && b.m != nil
	vv := a.v != nil && b.v != nil
	switch {
	case op == "add" && mm:
		out.m, err = expr.Add(a.m, b.m)
	case op == "sub" && mm:
		out.m, err = expr.Sub(a.m, b.m)
	case op == "emul" && mm:
		out.m, err = expr.ElemMul(a.m, b.m)
	case op == "ediv" && mm:
		out.m, err = expr.ElemDiv(a.m, b.m)
	case op == "prod" && mm:
		out.m, err = expr.MatMul(a.m, b.m)
	case op == "add" && vv:
		out.v, err = expr.AddVec(a.v, b.v)
	case op == "sub" && vv:
		out.v, err = expr.SubVec(a.v, b.v)
	case op == "emul" && vv:
		out.v, err = expr.ElemMulVec(a.v, b.v)
	case op == "ediv" && vv:
		out.v, err = expr.ElemDivVec(a.v, b.v)
	case op == "outer" && vv:
		out.m, err = expr.Outer(a.v, b.v)
	case op == "inner" && vv:
		out.s, err = expr.Inner(a.v, b.v)
	case op == "prod" && a.m != nil && b.v != nil:
		out.v, err = expr.MatVec(a.m, b.v)
	case op == "prod" && a.v != nil && b.m != nil:
		out.v, err = expr.VecMat(a.v, b.m)
	default:
		return value{}, errors.Wrapf(ErrWorkload, "%s of %s and %s", op, a.kind(), b.kind())
	}

	return out, err
}

func unary(e Expr, a value) (value, error) {
	var (
		out value
		err error
	)
	switch {
	case a.m != nil:
		switch e.Op {
		case "neg":
			out.m, err = expr.Neg(a.m)
		case "conj":
			out.m, err = expr.Conj(a.m)
		case "trans":
			out.m, err = expr.Trans(a.m)
		case "herm":
			out.m, err = expr.Herm(a.m)
		case "scale":
			out.m, err = expr.Scale(a.m, e.By)
		case "div":
			out.m, err = expr.Div(a.m, e.By)
		}
	case a.v != nil:
		switch e.Op {
		case "neg":
			out.v, err = expr.NegVec(a.v)
		case "conj":
			out.v, err = expr.ConjVec(a.v)
		case "scale":
			out.v, err = expr.ScaleVec(a.v, e.By)
		case "div":
			out.v, err = expr.DivVec(a.v, e.By)
		default:
			return value{}, errors.Wrapf(ErrWorkload, "%s of a vector", e.Op)
		}
	default:
		return value{}, errors.Wrapf(ErrWorkload, "%s of a scalar", e.Op)
	}

	return out, err
}

func proxy(e Expr, a value) (value, error) {
	var (
		out value
		err error
	)
	switch {
	case e.Op == "row" && a.m != nil:
		out.v, err = container.NewRow(a.m, e.Index)
	case e.Op == "col" && a.m != nil:
		out.v, err = container.NewColumn(a.m, e.Index)
	case e.Op == "range" && a.m != nil:
		rs, rerr := pair(e.Rows, "rows")
		if rerr != nil {
			return value{}, rerr
		}
		cs, cerr := pair(e.Cols, "cols")
		if cerr != nil {
			return value{}, cerr
		}
		out.m, err = container.NewMatrixRange(a.m, rs, cs)
	case e.Op == "range" && a.v != nil:
		r, rerr := pair(e.Span, "span")
		if rerr != nil {
			return value{}, rerr
		}
		out.v, err = container.NewVectorRange(a.v, r)
	default:
		return value{}, errors.Wrapf(ErrWorkload, "%s of a %s", e.Op, a.kind())
	}

	return out, err
}
