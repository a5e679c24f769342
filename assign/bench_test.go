// Package assign_test provides benchmarks for the evaluation engine, using a
// deterministic random fill per layout.
package assign_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlalg/assign"
	"github.com/katalvlaran/lvlalg/expr"
)

// benchSizes are the square sizes to benchmark.
var benchSizes = []int{64, 256}

// randomLit returns an n×n literal with roughly density·n² non-zeros inside
// the tridiagonal band, so every kind can hold it.
func randomLit(n int, density float64, seed int64) [][]float64 {
	r := rand.New(rand.NewSource(seed))
	lit := make([][]float64, n)
	for i := range lit {
		lit[i] = make([]float64, n)
		for j := max(0, i-1); j <= min(n-1, i+1); j++ {
			if r.Float64() < density {
				lit[i][j] = r.Float64()*2 - 1
			}
		}
	}

	return lit
}

func BenchmarkAssign_Add(b *testing.B) {
	b.ReportAllocs()
	for _, kind := range kinds {
		for _, n := range benchSizes {
			b.Run(fmt.Sprintf("%s/n=%d", kind, n), func(b *testing.B) {
				x := fill(b, kind, randomLit(n, 0.8, 1337))
				y := fill(b, kind, randomLit(n, 0.8, 4242))
				dst := build(b, kind, n, n)
				sum := expr.Must(expr.Add[float64](x, y))
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if err := assign.Assign[float64](dst, sum); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

// BenchmarkAssign_SelfReference measures the temporary path: dst = dst + xᵀ.
func BenchmarkAssign_SelfReference(b *testing.B) {
	b.ReportAllocs()
	for _, kind := range []string{"dense", "compressed"} {
		for _, n := range benchSizes {
			b.Run(fmt.Sprintf("%s/n=%d", kind, n), func(b *testing.B) {
				dst := fill(b, kind, randomLit(n, 1, 11))
				e := expr.Must(expr.Add[float64](dst, expr.Must(expr.Trans[float64](dst))))
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if err := assign.Assign[float64](dst, e); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkAccumulate_Plus(b *testing.B) {
	b.ReportAllocs()
	for _, kind := range []string{"dense", "banded", "mapped", "compressed"} {
		b.Run(kind, func(b *testing.B) {
			dst := fill(b, kind, randomLit(256, 1, 5))
			upd := fill(b, "mapped", randomLit(256, 0.1, 6))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := assign.Accumulate[float64](dst, upd, assign.PlusAssign); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkAssign_MatMul(b *testing.B) {
	b.ReportAllocs()
	for _, kind := range []string{"dense", "banded", "compressed"} {
		b.Run(kind, func(b *testing.B) {
			x := fill(b, kind, randomLit(128, 1, 21))
			y := fill(b, kind, randomLit(128, 1, 22))
			dst := build(b, "dense", 128, 128)
			p := expr.Must(expr.MatMul[float64](x, y))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := assign.Assign[float64](dst, p, assign.WithNoAlias()); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
