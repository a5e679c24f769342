// SPDX-License-Identifier: MIT
package container_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/container"
	"github.com/katalvlaran/lvlalg/core"
	"github.com/katalvlaran/lvlalg/expr"
)

// TestMatrix_Orientations checks that both storage orders read the same
// logical matrix and lay out Data as documented.
func TestMatrix_Orientations(t *testing.T) {
	t.Parallel()

	lit := [][]float64{{1, 2, 3}, {4, 5, 6}}
	rm := mustDense(t, lit)
	cm := mustDense(t, lit, container.WithOrientation(core.ColumnMajor))
	require.Equal(t, lit, toRows[float64](t, rm))
	require.Equal(t, lit, toRows[float64](t, cm))
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, rm.Data())
	require.Equal(t, []float64{1, 4, 2, 5, 3, 6}, cm.Data())
	require.Equal(t, core.Dense, rm.Category())

	_, err := rm.At(2, 0)
	require.True(t, errors.Is(err, core.ErrIndexOutOfRange))
	require.True(t, errors.Is(rm.Set(0, 3, 1), core.ErrIndexOutOfRange))

	_, err = container.NewMatrixFrom([][]float64{{1, 2}, {3}})
	require.True(t, errors.Is(err, core.ErrShapeMismatch))
}

// TestMatrix_Resize keeps the overlapping block in both orientations.
func TestMatrix_Resize(t *testing.T) {
	t.Parallel()

	for _, o := range []core.Orientation{core.RowMajor, core.ColumnMajor} {
		t.Run(o.String(), func(t *testing.T) {
			m := mustDense(t, [][]float64{{1, 2}, {3, 4}}, container.WithOrientation(o))
			require.NoError(t, m.Resize(3, 3))
			require.Equal(t, [][]float64{{1, 2, 0}, {3, 4, 0}, {0, 0, 0}}, toRows[float64](t, m))
			require.NoError(t, m.Resize(1, 2))
			require.Equal(t, [][]float64{{1, 2}}, toRows[float64](t, m))
			require.NoError(t, m.Resize(2, 2))
			require.Equal(t, [][]float64{{1, 2}, {0, 0}}, toRows[float64](t, m))
		})
	}
}

func TestMatrix_FixedCapacity(t *testing.T) {
	t.Parallel()

	m, err := container.NewMatrix[int](2, 2, container.WithFixedCapacity(6))
	require.NoError(t, err)
	require.NoError(t, m.Resize(2, 3))
	require.True(t, errors.Is(m.Resize(3, 3), core.ErrCapacity))

	_, err = container.NewMatrix[int](3, 3, container.WithFixedCapacity(4))
	require.True(t, errors.Is(err, core.ErrCapacity))
	require.Panics(t, func() { container.WithFixedCapacity(-1) })
}

func TestBanded_Region(t *testing.T) {
	t.Parallel()

	b, err := container.NewBanded[float64](4, 4, core.Band{Lower: 1, Upper: 0})
	require.NoError(t, err)
	require.NoError(t, b.Set(1, 0, 2))
	require.True(t, errors.Is(b.Set(0, 1, 2), core.ErrOutOfBand))
	require.True(t, errors.Is(b.Set(4, 0, 2), core.ErrIndexOutOfRange))
	require.NoError(t, b.Erase(0, 3), "erasing a structural zero is a no-op")

	v, err := b.At(0, 3)
	require.NoError(t, err)
	require.Zero(t, v)

	ks, vs := collect(b.Row(1, core.Forward))
	require.Equal(t, []int{0, 1}, ks)
	require.Equal(t, []float64{2, 0}, vs)
	require.Equal(t, core.Packed, b.Category())
	require.IsType(t, &container.Banded[float64]{}, b.Temporary())
}

func TestTriangular_Region(t *testing.T) {
	t.Parallel()

	up, err := container.NewUpperTriangular[int](3, container.WithOrientation(core.ColumnMajor))
	require.NoError(t, err)
	require.NoError(t, up.Set(0, 2, 7))
	require.True(t, errors.Is(up.Set(2, 0, 7), core.ErrOutOfBand))
	require.Equal(t, core.Band{Upper: 2}, up.Band())
	require.True(t, errors.Is(up.Resize(2, 3), core.ErrInvalidDimensions))
	require.NoError(t, up.Resize(4, 4))
	v, _ := up.At(0, 2)
	require.Equal(t, 7, v)
}

// TestSparse_ZeroDefault checks that reads of unstored entries return zero
// without inserting, for every sparse container in both orientations.
func TestSparse_ZeroDefault(t *testing.T) {
	t.Parallel()

	type sparseMatrix interface {
		expr.MutableMatrix[float64]
		NNZ() int
	}
	builders := map[string]func(o core.Orientation) sparseMatrix{
		"mapped": func(o core.Orientation) sparseMatrix {
			m, _ := container.NewMappedMatrix[float64](3, 4, container.WithOrientation(o))
			return m
		},
		"compressed": func(o core.Orientation) sparseMatrix {
			m, _ := container.NewCompressedMatrix[float64](3, 4, container.WithOrientation(o))
			return m
		},
		"coordinate": func(o core.Orientation) sparseMatrix {
			m, _ := container.NewCoordinateMatrix[float64](3, 4, container.WithOrientation(o))
			return m
		},
	}
	for name, build := range builders {
		for _, o := range []core.Orientation{core.RowMajor, core.ColumnMajor} {
			m := build(o)
			require.NoError(t, m.Set(1, 3, 5), name)
			require.NoError(t, m.Set(1, 0, 2), name)
			require.NoError(t, m.Set(2, 3, 1), name)
			for i := 0; i < 3; i++ {
				for j := 0; j < 4; j++ {
					_, err := m.At(i, j)
					require.NoError(t, err)
				}
			}
			require.Equal(t, 3, m.NNZ(), "%s %s: reads must not insert", name, o)

			ks, vs := collect(m.Row(1, core.Forward))
			require.Equal(t, []int{0, 3}, ks, "%s %s", name, o)
			require.Equal(t, []float64{2, 5}, vs)
			ks, _ = collect(m.Col(3, core.Backward))
			require.Equal(t, []int{2, 1}, ks, "%s %s", name, o)

			require.NoError(t, m.Erase(1, 3))
			require.Equal(t, 2, m.NNZ())
			require.True(t, errors.Is(m.Set(3, 0, 1), core.ErrIndexOutOfRange))
		}
	}
}

func TestCoordinateMatrix_Append(t *testing.T) {
	t.Parallel()

	m, err := container.NewCoordinateMatrix[int](2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Append(1, 1, 3))
	require.NoError(t, m.Append(0, 0, 1))
	require.NoError(t, m.Append(1, 1, 4))
	require.Equal(t, [][]int{{1, 0}, {0, 7}}, toRows[int](t, m))
	require.True(t, errors.Is(m.Append(2, 0, 1), core.ErrIndexOutOfRange))
}

func TestSparseVectors(t *testing.T) {
	t.Parallel()

	mv, _ := container.NewMappedVector[float64](4)
	cv, _ := container.NewCompressedVector[float64](4)
	kv, _ := container.NewCoordinateVector[float64](4)
	for _, v := range []expr.MutableVector[float64]{mv, cv, kv} {
		require.NoError(t, v.Set(2, 5))
		require.NoError(t, v.Set(0, 3))
		ks, vs := collect(v.Entries(core.Forward))
		require.Equal(t, []int{0, 2}, ks)
		require.Equal(t, []float64{3, 5}, vs)
		x, err := v.At(1)
		require.NoError(t, err)
		require.Zero(t, x)
		_, err = v.At(4)
		require.True(t, errors.Is(err, core.ErrIndexOutOfRange))
	}
	require.NoError(t, kv.Append(2, 1))
	x, _ := kv.At(2)
	require.Equal(t, 6.0, x)
	require.NoError(t, cv.Resize(2))
	require.Equal(t, 1, cv.NNZ())
}
