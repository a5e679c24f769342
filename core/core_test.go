// SPDX-License-Identifier: MIT
// Package core_test covers band arithmetic, proxy index transforms and the
// category composition tables.
package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/core"
)

func TestBand_Spans(t *testing.T) {
	t.Parallel()

	b := core.Band{Lower: 1, Upper: 2}
	lo, hi := b.RowSpan(0, 6)
	require.Equal(t, [2]int{0, 3}, [2]int{lo, hi})
	lo, hi = b.RowSpan(5, 6)
	require.Equal(t, [2]int{4, 6}, [2]int{lo, hi})
	lo, hi = b.ColSpan(5, 3) // column beyond the last row's reach
	require.Equal(t, lo, hi)

	require.True(t, b.Contains(3, 5))
	require.False(t, b.Contains(3, 6))
	require.False(t, b.Contains(3, 1))
	require.Equal(t, core.Band{Lower: 2, Upper: 1}, b.Transpose())
	require.True(t, core.FullBand(3, 4).IsFull(3, 4))
	require.Equal(t, core.Band{Lower: 2, Upper: 1}, core.Band{Lower: 9, Upper: 1}.Clamp(3, 4))
}

func TestSlice_ComposeAndLocate(t *testing.T) {
	t.Parallel()

	outer := core.Slice{Start: 1, Stride: 2, Size: 4} // 1 3 5 7
	inner := core.Slice{Start: 3, Stride: -1, Size: 3} // 3 2 1 of outer
	got := outer.Compose(inner)
	for k := 0; k < inner.Size; k++ {
		require.Equal(t, outer.Index(inner.Index(k)), got.Index(k))
	}
	require.Equal(t, []int{7, 5, 3}, []int{got.Index(0), got.Index(1), got.Index(2)})

	k, ok := outer.Locate(5)
	require.True(t, ok)
	require.Equal(t, 2, k)
	_, ok = outer.Locate(4)
	require.False(t, ok)
	_, ok = outer.Locate(9)
	require.False(t, ok)

	require.Equal(t, core.Backward, got.Walk(core.Forward))
	require.Equal(t, core.Slice{Start: 2, Stride: 1, Size: 3}, core.Range{Start: 2, Stop: 5}.Slice())
}

func TestSlice_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		s    core.Slice
		n    int
		ok   bool
	}{
		{"empty", core.Slice{Start: 99, Stride: 1, Size: 0}, 3, true},
		{"fits", core.Slice{Start: 0, Stride: 2, Size: 3}, 5, true},
		{"last out", core.Slice{Start: 0, Stride: 2, Size: 3}, 4, false},
		{"negative walk", core.Slice{Start: 4, Stride: -2, Size: 3}, 5, true},
		{"negative below", core.Slice{Start: 2, Stride: -2, Size: 3}, 5, false},
		{"zero stride single", core.Slice{Start: 1, Stride: 0, Size: 1}, 2, true},
		{"zero stride many", core.Slice{Start: 1, Stride: 0, Size: 2}, 2, false},
		{"negative size", core.Slice{Start: 0, Stride: 1, Size: -1}, 2, false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := tc.s.Validate(tc.n)
			if tc.ok {
				require.NoError(t, err)
				return
			}
			require.True(t, errors.Is(err, core.ErrInvalidRange), "got %v", err)
		})
	}
}

func TestWalk(t *testing.T) {
	t.Parallel()

	var fwd, bwd []int
	for k := range core.Walk(2, 5, core.Forward) {
		fwd = append(fwd, k)
	}
	for k := range core.Walk(2, 5, core.Backward) {
		bwd = append(bwd, k)
	}
	require.Equal(t, []int{2, 3, 4}, fwd)
	require.Equal(t, []int{4, 3, 2}, bwd)
	require.True(t, core.Backward.Before(4, 2))
	require.True(t, core.Forward.Before(2, 4))
}

func st(c core.Category, b core.Band) core.Structure { return core.Structure{Category: c, Band: b} }

// TestUnion_Table checks the additive composition table, including that
// Unknown dominates and that mixed sparse layouts meet at SparseSorted.
func TestUnion_Table(t *testing.T) {
	t.Parallel()

	full := core.FullBand(4, 4)
	tri := core.Band{Lower: 1}
	up := core.Band{Upper: 1}
	tests := []struct {
		name string
		a, b core.Structure
		want core.Structure
	}{
		{"dense+dense", st(core.Dense, full), st(core.Dense, full), st(core.Dense, full)},
		{"dense+packed", st(core.Dense, full), st(core.Packed, tri), st(core.Dense, full)},
		{"packed+packed", st(core.Packed, tri), st(core.Packed, up), st(core.Packed, core.Band{Lower: 1, Upper: 1})},
		{"packed+packed full", st(core.Packed, core.Band{Lower: 3}), st(core.Packed, core.Band{Upper: 3}), st(core.Dense, full)},
		{"dense+mapped", st(core.Dense, full), st(core.SparseUnordered, full), st(core.SparseUnordered, full)},
		{"mapped+sorted", st(core.SparseUnordered, full), st(core.SparseSorted, full), st(core.SparseSorted, full)},
		{"sorted+sorted", st(core.SparseSorted, full), st(core.SparseSorted, full), st(core.SparseSorted, full)},
		{"unknown+sparse", st(core.Unknown, full), st(core.SparseSorted, full), st(core.Unknown, full)},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, core.Union(tc.a, tc.b, 4, 4))
			require.Equal(t, tc.want, core.Union(tc.b, tc.a, 4, 4), "union is symmetric")
		})
	}
}

func TestIntersectionQuotientProduct(t *testing.T) {
	t.Parallel()

	full := core.FullBand(4, 4)
	lo := st(core.Packed, core.Band{Lower: 2})
	bd := st(core.Packed, core.Band{Lower: 1, Upper: 1})
	require.Equal(t, st(core.Packed, core.Band{Lower: 1}), core.Intersection(lo, bd, 4, 4))
	require.Equal(t, st(core.SparseSorted, full), core.Intersection(st(core.SparseSorted, full), st(core.Dense, full), 4, 4))

	require.Equal(t, st(core.Dense, full), core.Quotient(st(core.SparseSorted, full), st(core.SparseSorted, full), 4, 4))
	require.Equal(t, st(core.Unknown, full), core.Quotient(st(core.Unknown, full), st(core.Dense, full), 4, 4))

	require.Equal(t, st(core.SparseSorted, full), core.Product(st(core.SparseUnordered, full), st(core.SparseUnordered, full), 4, 4))
	require.Equal(t, st(core.Packed, core.Band{Lower: 2, Upper: 1}), core.Product(bd, st(core.Packed, core.Band{Lower: 1}), 4, 4))
	require.Equal(t, st(core.Dense, full), core.Product(st(core.Packed, core.Band{Lower: 3}), st(core.Packed, core.Band{Upper: 3}), 4, 4))
	require.Equal(t, st(core.Dense, full), core.Product(st(core.Packed, core.Band{}), st(core.SparseSorted, full), 4, 4))
	require.Equal(t, st(core.Unknown, full), core.Product(st(core.SparseSorted, full), st(core.Unknown, full), 4, 4))
}

func TestElementHelpers(t *testing.T) {
	t.Parallel()

	require.Equal(t, complex(1, -2), core.Conj(complex(1, 2)))
	require.Equal(t, complex64(complex(3, 4)), core.Conj(complex64(complex(3, -4))))
	require.Equal(t, 2.5, core.Conj(2.5))
	require.True(t, core.IsZero(0))
	require.False(t, core.IsZero(float32(1e-30)))
	require.True(t, core.IsInteger[int32]())
	require.False(t, core.IsInteger[complex64]())
	require.NotEqual(t, core.NewID(), core.NewID())
	require.Equal(t, "sparse-sorted", core.SparseSorted.String())
}
