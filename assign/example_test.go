// Package assign_test provides runnable examples of the evaluation entry points.
package assign_test

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/assign"
	"github.com/katalvlaran/lvlalg/container"
	"github.com/katalvlaran/lvlalg/core"
	"github.com/katalvlaran/lvlalg/expr"
)

// ExampleAssign evaluates C = A + B into a fresh dense matrix.
func ExampleAssign() {
	// 1) Operands.
	a, _ := container.NewMatrixFrom([][]float64{{1, 2}, {3, 4}})
	b, _ := container.NewMatrixFrom([][]float64{{5, 6}, {7, 8}})

	// 2) Build the expression; nothing is computed yet.
	sum, err := expr.Add[float64](a, b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Evaluate into the destination.
	c, _ := container.NewMatrix[float64](2, 2)
	if err = assign.Assign[float64](c, sum); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(c.Data())

	// Output:
	// [6 8 10 12]
}

// ExampleAssign_selfReference shows that M = M + Mᵀ reads the original M:
// the engine detects the alias and evaluates through a temporary.
func ExampleAssign_selfReference() {
	m, _ := container.NewMatrixFrom([][]int{{1, 2}, {3, 4}})
	tr, _ := expr.Trans[int](m)
	sym, _ := expr.Add[int](m, tr)

	_ = assign.Assign[int](m, sym)
	fmt.Println(m.Data())

	// Output:
	// [2 5 5 8]
}

// ExampleAccumulate adds a sparse update into a banded matrix.
func ExampleAccumulate() {
	// 1) Tridiagonal destination.
	t, _ := container.NewBanded[float64](3, 3, core.Band{Lower: 1, Upper: 1})
	for i := 0; i < 3; i++ {
		_ = t.Set(i, i, 2)
	}

	// 2) A sparse update on the diagonal.
	upd, _ := container.NewMappedMatrix[float64](3, 3)
	_ = upd.Set(1, 1, 0.5)

	// 3) t += upd visits only the stored entry of upd.
	_ = assign.Accumulate[float64](t, upd, assign.PlusAssign)
	for i := 0; i < 3; i++ {
		v, _ := t.At(i, i)
		fmt.Print(v, " ")
	}
	fmt.Println()

	// Output:
	// 2 2.5 2
}
