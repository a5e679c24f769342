// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlalg/container"
	"github.com/katalvlaran/lvlalg/core"
	"github.com/katalvlaran/lvlalg/expr"
)

// Operand kinds accepted in a workload file.
const (
	KindDense      = "dense"
	KindBanded     = "banded"
	KindLower      = "lower"
	KindUpper      = "upper"
	KindMapped     = "mapped"
	KindCompressed = "compressed"
	KindCoordinate = "coordinate"
	KindVector     = "vector"
	KindSparseVec  = "sparse-vector"
)

var (
	// ErrWorkload is returned for a malformed workload document.
	ErrWorkload = errors.New("lvlalg: invalid workload")

	// ErrUnknownOperand is returned when a step names an undeclared operand.
	ErrUnknownOperand = errors.New("lvlalg: unknown operand")
)

// Workload is the YAML document evaluated by the eval command.
//
//	operands:
//	  A: {kind: dense, data: [[1, 2], [3, 4]]}
//	  x: {kind: vector, values: [1, 1]}
//	steps:
//	  - {target: y, expr: {prod: [A, x]}}
//	print: [y]
type Workload struct {
	Operands map[string]OperandSpec `yaml:"operands"`
	Steps    []Step                 `yaml:"steps"`
	Print    []string               `yaml:"print"`
}

// OperandSpec declares one leaf. Dense kinds take Data (or Values for
// vectors); every other kind takes Rows, Cols (or Len) and Entries.
type OperandSpec struct {
	Kind    string      `yaml:"kind"`
	Order   string      `yaml:"order"`
	Rows    int         `yaml:"rows"`
	Cols    int         `yaml:"cols"`
	Len     int         `yaml:"len"`
	Band    core.Band   `yaml:"band"`
	Data    [][]float64 `yaml:"data"`
	Values  []float64   `yaml:"values"`
	Entries [][]float64 `yaml:"entries"`
}

// Step evaluates Expr into Target. Op is "=" (the default) or one of the
// accumulation operators "+=", "-=", ".*=", "./=".
type Step struct {
	Target  string `yaml:"target"`
	Op      string `yaml:"op"`
	Expr    Expr   `yaml:"expr"`
	NoAlias bool   `yaml:"noalias"`
	Resize  bool   `yaml:"resize"`
}

// Expr is one node of an expression tree. A YAML scalar is an operand
// reference; a single-key mapping is an operator applied to its value.
type Expr struct {
	Ref   string
	Op    string
	Args  []Expr
	By    float64
	Index int
	Rows  []int
	Cols  []int
	Span  []int
}

// exprArgs is the long form of an operator: {of: X, by: 2} and friends.
type exprArgs struct {
	Of    *Expr   `yaml:"of"`
	By    float64 `yaml:"by"`
	Index int     `yaml:"index"`
	Rows  []int   `yaml:"rows"`
	Cols  []int   `yaml:"cols"`
	Span  []int   `yaml:"span"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *Expr) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		if n.Value == "" {
			return errors.Wrapf(ErrWorkload, "line %d: empty operand reference", n.Line)
		}
		*e = Expr{Ref: n.Value}

		return nil
	case yaml.MappingNode:
	default:
		return errors.Wrapf(ErrWorkload, "line %d: expression must be a name or a single-key mapping", n.Line)
	}
	if len(n.Content) != 2 {
		return errors.Wrapf(ErrWorkload, "line %d: expression mapping must have exactly one operator", n.Line)
	}
	key, val := n.Content[0], n.Content[1]
	out := Expr{Op: key.Value}
	switch val.Kind {
	case yaml.ScalarNode:
		out.Args = []Expr{{Ref: val.Value}}
	case yaml.SequenceNode:
		if err := val.Decode(&out.Args); err != nil {
			return err
		}
	case yaml.MappingNode:
		var a exprArgs
		if err := val.Decode(&a); err != nil {
			return err
		}
		if a.Of == nil {
			return errors.Wrapf(ErrWorkload, "line %d: %q needs an 'of' operand", val.Line, out.Op)
		}
		out.Args = []Expr{*a.Of}
		out.By, out.Index = a.By, a.Index
		out.Rows, out.Cols, out.Span = a.Rows, a.Cols, a.Span
	default:
		return errors.Wrapf(ErrWorkload, "line %d: unsupported operand form for %q", val.Line, out.Op)
	}
	*e = out

	return nil
}

// ParseWorkload decodes a workload document.
func ParseWorkload(r io.Reader) (*Workload, error) {
	var w Workload
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&w); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.Wrap(ErrWorkload, "empty document")
		}
		return nil, errors.Wrap(err, "decode workload")
	}
	if len(w.Steps) == 0 {
		return nil, errors.Wrap(ErrWorkload, "no steps")
	}

	return &w, nil
}

// LoadWorkload reads and decodes the file at path; "-" reads stdin.
func LoadWorkload(path string, stdin io.Reader) (*Workload, error) {
	if path == "-" {
		return ParseWorkload(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open workload %q", path)
	}
	defer f.Close()

	return ParseWorkload(f)
}

func orientation(s string) (core.Orientation, error) {
	switch s {
	case "", "row":
		return core.RowMajor, nil
	case "col":
		return core.ColumnMajor, nil
	default:
		return 0, errors.Wrapf(ErrWorkload, "order %q (want row or col)", s)
	}
}

// isVector reports whether the kind declares a vector operand.
func (s OperandSpec) isVector() bool {
	return s.Kind == KindVector || s.Kind == KindSparseVec
}

// build materializes the operand as a mutable container.
func (s OperandSpec) build(name string) (operand, error) {
	o, err := orientation(s.Order)
	if err != nil {
		return operand{}, errors.Wrapf(err, "operand %q", name)
	}
	opt := container.WithOrientation(o)

	var (
		m   expr.MutableMatrix[float64]
		v   expr.MutableVector[float64]
		dim = func() (int, int) { return s.Rows, s.Cols }
	)
	switch s.Kind {
	case KindDense, "":
		if s.Data != nil {
			m, err = container.NewMatrixFrom(s.Data, opt)
		} else {
			m, err = container.NewMatrix[float64](s.Rows, s.Cols, opt)
		}
	case KindBanded:
		m, err = container.NewBanded[float64](s.Rows, s.Cols, s.Band, opt)
	case KindLower:
		m, err = container.NewLowerTriangular[float64](s.Rows, opt)
		dim = func() (int, int) { return s.Rows, s.Rows }
	case KindUpper:
		m, err = container.NewUpperTriangular[float64](s.Rows, opt)
		dim = func() (int, int) { return s.Rows, s.Rows }
	case KindMapped:
		m, err = container.NewMappedMatrix[float64](s.Rows, s.Cols, opt)
	case KindCompressed:
		m, err = container.NewCompressedMatrix[float64](s.Rows, s.Cols, opt)
	case KindCoordinate:
		m, err = container.NewCoordinateMatrix[float64](s.Rows, s.Cols, opt)
	case KindVector:
		if s.Values != nil {
			v, err = container.NewVectorFrom(s.Values)
		} else {
			v, err = container.NewVector[float64](s.Len)
		}
	case KindSparseVec:
		v, err = container.NewCompressedVector[float64](s.Len)
	default:
		return operand{}, errors.Wrapf(ErrWorkload, "operand %q: unknown kind %q", name, s.Kind)
	}
	if err != nil {
		return operand{}, errors.Wrapf(err, "operand %q", name)
	}

	if v != nil {
		for _, e := range s.Entries {
			if len(e) != 2 {
				return operand{}, errors.Wrapf(ErrWorkload, "operand %q: vector entry %v is not [i, v]", name, e)
			}
			if err = v.Set(int(e[0]), e[1]); err != nil {
				return operand{}, errors.Wrapf(err, "operand %q", name)
			}
		}

		return operand{v: v}, nil
	}

	if s.Data != nil && s.Kind != KindDense && s.Kind != "" {
		return operand{}, errors.Wrapf(ErrWorkload, "operand %q: data is only valid for dense, use entries", name)
	}
	r, c := dim()
	for _, e := range s.Entries {
		if len(e) != 3 {
			return operand{}, errors.Wrapf(ErrWorkload, "operand %q: entry %v is not [i, j, v]", name, e)
		}
		i, j := int(e[0]), int(e[1])
		if i < 0 || i >= r || j < 0 || j >= c {
			return operand{}, errors.Wrapf(core.IndexError("entry", i, j), "operand %q", name)
		}
		if err = m.Set(i, j, e[2]); err != nil {
			return operand{}, errors.Wrapf(err, "operand %q", name)
		}
	}

	return operand{m: m}, nil
}
