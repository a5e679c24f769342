// SPDX-License-Identifier: MIT
// Package container_test contains test helpers.
package container_test

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/container"
	"github.com/katalvlaran/lvlalg/core"
	"github.com/katalvlaran/lvlalg/expr"
)

// collect drains an index stream into parallel slices.
func collect[T core.Element](s iter.Seq2[int, T]) ([]int, []T) {
	var ks []int
	var vs []T
	for k, v := range s {
		ks = append(ks, k)
		vs = append(vs, v)
	}

	return ks, vs
}

// mustDense builds a dense matrix from a literal or fails the test.
func mustDense(t *testing.T, rows [][]float64, opts ...container.Option) *container.Matrix[float64] {
	t.Helper()
	m, err := container.NewMatrixFrom(rows, opts...)
	require.NoError(t, err)

	return m
}

// toRows reads every element of m through At.
func toRows[T core.Element](t *testing.T, m expr.Matrix[T]) [][]T {
	t.Helper()
	out := make([][]T, m.Rows())
	for i := range out {
		out[i] = make([]T, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out[i][j] = v
		}
	}

	return out
}
