// SPDX-License-Identifier: MIT
// Package assign_test contains test helpers.
package assign_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/container"
	"github.com/katalvlaran/lvlalg/core"
	"github.com/katalvlaran/lvlalg/expr"
)

// kinds lists every container layout the engine is exercised with.
var kinds = []string{"dense", "dense-col", "banded", "mapped", "compressed", "compressed-col", "coordinate"}

// tri is the band every literal in these tests fits.
var tri = core.Band{Lower: 1, Upper: 1}

// build allocates an empty rows×cols container of the given kind.
func build(t testing.TB, kind string, rows, cols int) expr.MutableMatrix[float64] {
	t.Helper()
	col := container.WithOrientation(core.ColumnMajor)
	var (
		m   expr.MutableMatrix[float64]
		err error
	)
	switch kind {
	case "dense":
		m, err = container.NewMatrix[float64](rows, cols)
	case "dense-col":
		m, err = container.NewMatrix[float64](rows, cols, col)
	case "banded":
		m, err = container.NewBanded[float64](rows, cols, tri)
	case "mapped":
		m, err = container.NewMappedMatrix[float64](rows, cols)
	case "compressed":
		m, err = container.NewCompressedMatrix[float64](rows, cols)
	case "compressed-col":
		m, err = container.NewCompressedMatrix[float64](rows, cols, col)
	case "coordinate":
		m, err = container.NewCoordinateMatrix[float64](rows, cols)
	default:
		t.Fatalf("unknown kind %q", kind)
	}
	require.NoError(t, err)

	return m
}

// fill builds a container of the given kind holding the non-zeros of lit.
func fill(t testing.TB, kind string, lit [][]float64) expr.MutableMatrix[float64] {
	t.Helper()
	m := build(t, kind, len(lit), len(lit[0]))
	for i, row := range lit {
		for j, v := range row {
			if v != 0 {
				require.NoError(t, m.Set(i, j, v), "%s (%d,%d)", kind, i, j)
			}
		}
	}

	return m
}

func dense(t *testing.T, lit [][]float64) *container.Matrix[float64] {
	t.Helper()
	m, err := container.NewMatrixFrom(lit)
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

// nnz counts the entries a sparse container stores.
func nnz(m any) int {
	if s, ok := m.(interface{ NNZ() int }); ok {
		return s.NNZ()
	}

	return -1
}
