// SPDX-License-Identifier: MIT
package assign_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/assign"
	"github.com/katalvlaran/lvlalg/container"
	"github.com/katalvlaran/lvlalg/core"
	"github.com/katalvlaran/lvlalg/expr"
)

func readVec[T core.Element](t *testing.T, v expr.Vector[T]) []T {
	t.Helper()
	out := make([]T, v.Len())
	for i := range out {
		x, err := v.At(i)
		require.NoError(t, err)
		out[i] = x
	}

	return out
}

func TestAssignVector_SparseElemMul(t *testing.T) {
	t.Parallel()

	x, _ := container.NewCompressedVector[float64](4)
	y, _ := container.NewMappedVector[float64](4)
	require.NoError(t, x.Set(0, 3))
	require.NoError(t, x.Set(2, 5))
	require.NoError(t, y.Set(1, 2))
	require.NoError(t, y.Set(2, 4))

	dst, _ := container.NewCompressedVector[float64](4)
	require.NoError(t, dst.Set(3, 1))
	require.NoError(t, assign.AssignVector[float64](dst, expr.Must(expr.ElemMulVec[float64](x, y))))
	require.Equal(t, []float64{0, 0, 20, 0}, readVec[float64](t, dst))
	require.Equal(t, 1, dst.NNZ())

	dd, _ := container.NewVector[float64](4)
	require.NoError(t, assign.AssignVector[float64](dd, expr.Must(expr.AddVec[float64](x, y))))
	require.Equal(t, []float64{3, 2, 9, 0}, readVec[float64](t, dd))
}

func TestAssignVector_SelfReference(t *testing.T) {
	t.Parallel()

	x, err := container.NewVectorFrom([]float64{1, 2, 3})
	require.NoError(t, err)
	require.NoError(t, assign.AssignVector[float64](x, expr.Must(expr.AddVec[float64](x, x))))
	require.Equal(t, []float64{2, 4, 6}, readVec[float64](t, x))

	a := dense(t, [][]float64{{0, 1, 0}, {0, 0, 1}, {1, 0, 0}})
	// x = A·x rotates the entries; in place this would read updated values
	require.NoError(t, assign.AssignVector[float64](x, expr.Must(expr.MatVec[float64](a, x))))
	require.Equal(t, []float64{4, 6, 2}, readVec[float64](t, x))

	require.NoError(t, assign.AccumulateVector[float64](x, expr.Must(expr.ScaleVec[float64](x, 0.5)), assign.MinusAssign))
	require.Equal(t, []float64{2, 3, 1}, readVec[float64](t, x))
}

func TestAccumulateVector_Ops(t *testing.T) {
	t.Parallel()

	for _, op := range []assign.Op{assign.PlusAssign, assign.MinusAssign, assign.TimesAssign, assign.DivideAssign} {
		x, _ := container.NewVectorFrom([]float64{4, 8})
		s, _ := container.NewMappedVector[float64](2)
		require.NoError(t, s.Set(0, 2))
		require.NoError(t, s.Set(1, 4))
		require.NoError(t, assign.AccumulateVector[float64](x, s, op), op.String())
		want := map[assign.Op][]float64{
			assign.PlusAssign:   {6, 12},
			assign.MinusAssign:  {2, 4},
			assign.TimesAssign:  {8, 32},
			assign.DivideAssign: {2, 2},
		}[op]
		require.Equal(t, want, readVec[float64](t, x), op.String())
	}

	x, _ := container.NewVector[float64](2)
	err := assign.AccumulateVector[float64](x, x, assign.Op(0))
	require.True(t, errors.Is(err, assign.ErrUnknownOp))
}

func TestAssignVector_ResizeAndErrors(t *testing.T) {
	t.Parallel()

	src, _ := container.NewVectorFrom([]int{1, 2, 3})
	dst, _ := container.NewVector[int](1)
	err := assign.AssignVector[int](dst, src)
	require.True(t, errors.Is(err, core.ErrShapeMismatch))
	require.NoError(t, assign.AssignVector[int](dst, src, assign.WithResize()))
	require.Equal(t, []int{1, 2, 3}, readVec[int](t, dst))

	sp, _ := container.NewCoordinateVector[int](5)
	require.NoError(t, sp.Set(4, 1))
	require.NoError(t, assign.AssignVector[int](sp, src, assign.WithResize()))
	require.Equal(t, []int{1, 2, 3}, readVec[int](t, sp))
	require.Equal(t, 3, sp.NNZ())

	err = assign.AssignVector[int](container.ReadOnlyVec[int](dst), src)
	require.True(t, errors.Is(err, core.ErrReadOnly))
	require.True(t, errors.Is(assign.AssignVector[int](nil, src), core.ErrNilOperand))

	part, err := container.NewVectorRange[int](dst, core.Range{Start: 1, Stop: 3})
	require.NoError(t, err)
	err = assign.AssignVector[int](part, src, assign.WithResize())
	require.True(t, errors.Is(err, core.ErrShapeMismatch), "views have a fixed length")
}

// TestAssignVector_RowDestination writes -row(1) back into row 1 of the
// same matrix through a line proxy.
func TestAssignVector_RowDestination(t *testing.T) {
	t.Parallel()

	m := dense(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	row, err := container.NewRow[float64](m, 1)
	require.NoError(t, err)
	require.NoError(t, assign.AssignVector[float64](row, expr.Must(expr.NegVec[float64](row))))
	require.Equal(t, [][]float64{{1, 2, 3}, {-4, -5, -6}, {7, 8, 9}}, toRows[float64](t, m))

	col, err := container.NewColumn[float64](m, 0)
	require.NoError(t, err)
	require.NoError(t, assign.AccumulateVector[float64](col, row, assign.PlusAssign))
	require.Equal(t, [][]float64{{-3, 2, 3}, {-9, -5, -6}, {1, 8, 9}}, toRows[float64](t, m))
}

// TestAssignVector_PackedRowDestination writes into row 0 of a tridiagonal
// matrix, where only positions 0 and 1 are stored.
func TestAssignVector_PackedRowDestination(t *testing.T) {
	t.Parallel()

	b, err := container.NewBanded[float64](4, 4, core.Band{Lower: 1, Upper: 1})
	require.NoError(t, err)
	require.NoError(t, b.Set(0, 0, 1))
	require.NoError(t, b.Set(0, 1, 2))
	row, err := container.NewRow[float64](b, 0)
	require.NoError(t, err)

	full, _ := container.NewVectorFrom([]float64{7, 8, 9, 10})
	err = assign.AssignVector[float64](row, full)
	require.True(t, errors.Is(err, core.ErrOutOfBand), "got %v", err)
	require.Equal(t, []float64{1, 2, 0, 0}, readVec[float64](t, row), "row untouched")

	err = assign.AccumulateVector[float64](row, full, assign.PlusAssign)
	require.True(t, errors.Is(err, core.ErrOutOfBand), "got %v", err)
	require.Equal(t, []float64{1, 2, 0, 0}, readVec[float64](t, row))

	inBand, _ := container.NewVectorFrom([]float64{7, 8, 0, 0})
	require.NoError(t, assign.AssignVector[float64](row, inBand))
	require.Equal(t, []float64{7, 8, 0, 0}, readVec[float64](t, row))

	mid, err := container.NewRow[float64](b, 2)
	require.NoError(t, err)
	require.True(t, mid.InRegion(1))
	require.False(t, mid.InRegion(0))
	require.NoError(t, assign.AssignVector[float64](mid, expr.Must(expr.ScaleVec[float64](inBand, 0))))
}
