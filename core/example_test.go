package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/core"
)

// ExampleUnion shows how the sum of two packed operands keeps a band until
// the band covers the whole shape.
func ExampleUnion() {
	lower := core.StructureOf(core.Packed, core.Band{Lower: 1}, 4, 4)
	upper := core.StructureOf(core.Packed, core.Band{Upper: 1}, 4, 4)
	wideL := core.StructureOf(core.Packed, core.Band{Lower: 3}, 4, 4)
	wideU := core.StructureOf(core.Packed, core.Band{Upper: 3}, 4, 4)

	s := core.Union(lower, upper, 4, 4)
	fmt.Println(s.Category, s.Band)
	s = core.Union(wideL, wideU, 4, 4)
	fmt.Println(s.Category)

	sparse := core.StructureOf(core.SparseUnordered, core.Band{}, 4, 4)
	fmt.Println(core.Union(sparse, lower, 4, 4).Category)

	// Output:
	// packed {1 1}
	// dense
	// sparse-unordered
}

// ExampleSlice_Compose composes a reversed slice onto a strided one.
func ExampleSlice_Compose() {
	outer := core.Slice{Start: 1, Stride: 2, Size: 4} // 1 3 5 7
	inner := core.Slice{Start: 3, Stride: -1, Size: 3}
	s := outer.Compose(inner)
	for k := 0; k < s.Size; k++ {
		fmt.Print(s.Index(k), " ")
	}
	fmt.Println()

	// Output:
	// 7 5 3
}
