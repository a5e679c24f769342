// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvlalg/core"
)

func TestParseWorkload_Expr(t *testing.T) {
	t.Parallel()

	w, err := ParseWorkload(strings.NewReader(`
steps:
  - target: C
    op: "+="
    expr:
      add:
        - {scale: {of: A, by: 2}}
        - {range: {of: {trans: B}, rows: [0, 1], cols: [1, 3]}}
`))
	require.NoError(t, err)
	require.Len(t, w.Steps, 1)
	e := w.Steps[0].Expr
	require.Equal(t, "add", e.Op)
	require.Len(t, e.Args, 2)
	require.Equal(t, Expr{Op: "scale", Args: []Expr{{Ref: "A"}}, By: 2}, e.Args[0])
	r := e.Args[1]
	require.Equal(t, "range", r.Op)
	require.Equal(t, []int{0, 1}, r.Rows)
	require.Equal(t, []int{1, 3}, r.Cols)
	require.Equal(t, Expr{Op: "trans", Args: []Expr{{Ref: "B"}}}, r.Args[0])
}

func TestParseWorkload_Invalid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name, doc string
		want      error
	}{
		{"empty", "", ErrWorkload},
		{"no steps", "operands: {A: {data: [[1]]}}\n", ErrWorkload},
		{"two operators", "steps: [{target: A, expr: {neg: A, conj: A}}]\n", ErrWorkload},
		{"missing of", "steps: [{target: A, expr: {scale: {by: 2}}}]\n", ErrWorkload},
		{"sequence node", "steps: [{target: A, expr: [A]}]\n", ErrWorkload},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseWorkload(strings.NewReader(tc.doc))
			require.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}

	_, err := ParseWorkload(strings.NewReader("steps: [{target: A, expr: A, colour: red}]\n"))
	require.Error(t, err, "unknown fields are rejected")
}

func TestOperandSpec_Build(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		spec OperandSpec
		cat  core.Category
		want error
	}{
		{"dense col", OperandSpec{Data: [][]float64{{1, 2}}, Order: "col"}, core.Dense, nil},
		{"dense sized", OperandSpec{Kind: KindDense, Rows: 2, Cols: 3}, core.Dense, nil},
		{"upper", OperandSpec{Kind: KindUpper, Rows: 3, Entries: [][]float64{{0, 2, 1}}}, core.Packed, nil},
		{"coordinate", OperandSpec{Kind: KindCoordinate, Rows: 2, Cols: 2, Entries: [][]float64{{1, 1, 5}}}, core.SparseSorted, nil},
		{"mapped", OperandSpec{Kind: KindMapped, Rows: 2, Cols: 2}, core.SparseUnordered, nil},
		{"upper entry below", OperandSpec{Kind: KindUpper, Rows: 3, Entries: [][]float64{{2, 0, 1}}}, 0, core.ErrOutOfBand},
		{"bad order", OperandSpec{Rows: 1, Cols: 1, Order: "diagonal"}, 0, ErrWorkload},
		{"short entry", OperandSpec{Kind: KindMapped, Rows: 1, Cols: 1, Entries: [][]float64{{0, 0}}}, 0, ErrWorkload},
		{"data on sparse", OperandSpec{Kind: KindCompressed, Data: [][]float64{{1}}}, 0, ErrWorkload},
		{"negative", OperandSpec{Kind: KindBanded, Rows: -1, Cols: 2}, 0, core.ErrInvalidDimensions},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			op, err := tc.spec.build(tc.name)
			if tc.want != nil {
				require.True(t, errors.Is(err, tc.want), "got %v", err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, op.m)
			require.Equal(t, tc.cat, op.m.Category())
		})
	}

	op, err := OperandSpec{Kind: KindSparseVec, Len: 3, Entries: [][]float64{{1, 7}}}.build("v")
	require.NoError(t, err)
	require.True(t, op.v.Category().IsSparse())
	x, err := op.v.At(1)
	require.NoError(t, err)
	require.Equal(t, 7.0, x)
}

func TestSession_Targets(t *testing.T) {
	t.Parallel()

	w, err := ParseWorkload(strings.NewReader(`
operands: {A: {data: [[1, 2], [3, 4]]}}
steps:
  - {target: B, expr: {neg: A}}
  - {target: A, op: "-=", expr: B}
  - {target: B, op: "./=", expr: A}
`))
	require.NoError(t, err)
	s, err := NewSession(w, false, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, s.Run(w.Steps))
	require.Equal(t, []string{"B", "A"}, s.Targets())

	res, err := s.Results(nil)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{-0.5, -0.5}, {-0.5, -0.5}}, res[0].Data)
	require.Equal(t, [][]float64{{2, 4}, {6, 8}}, res[1].Data)

	_, err = s.Results([]string{"Z"})
	require.True(t, errors.Is(err, ErrUnknownOperand))
}
