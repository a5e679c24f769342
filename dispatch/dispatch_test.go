// SPDX-License-Identifier: MIT
package dispatch_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlalg/core"
	"github.com/katalvlaran/lvlalg/dispatch"
)

func TestSelect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cats []core.Category
		want dispatch.Strategy
	}{
		{"none", nil, dispatch.IndexFallback},
		{"dense", []core.Category{core.Dense}, dispatch.DenseStride},
		{"dense+sparse", []core.Category{core.Dense, core.SparseSorted}, dispatch.DenseStride},
		{"dense+packed", []core.Category{core.Packed, core.Dense}, dispatch.DenseStride},
		{"packed+packed", []core.Category{core.Packed, core.Packed}, dispatch.PackedBand},
		{"sorted+unordered", []core.Category{core.SparseSorted, core.SparseUnordered}, dispatch.SparseMerge},
		{"packed+sparse", []core.Category{core.Packed, core.SparseUnordered}, dispatch.SparseMerge},
		{"unknown wins", []core.Category{core.Dense, core.Unknown, core.SparseSorted}, dispatch.IndexFallback},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, dispatch.Select(tc.cats...))
		})
	}
}

func TestForAccumulate(t *testing.T) {
	t.Parallel()

	require.Equal(t, dispatch.SparseMerge, dispatch.ForAccumulate(dispatch.SparseMerge, false))
	require.Equal(t, dispatch.DenseStride, dispatch.ForAccumulate(dispatch.SparseMerge, true))
	require.Equal(t, dispatch.DenseStride, dispatch.ForAccumulate(dispatch.PackedBand, true))
	require.Equal(t, dispatch.IndexFallback, dispatch.ForAccumulate(dispatch.IndexFallback, true))
	require.Equal(t, "sparse-merge", dispatch.SparseMerge.String())
}
