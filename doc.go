// Package lvlalg is a lazy linear-algebra core: matrix and vector
// expressions over dense, packed and sparse storage, evaluated in one pass
// into a destination of any storage kind.
//
// 🚀 What is lvlalg?
//
//	A generic, pure-Go evaluation engine that brings together:
//		• Storage backends: dense arrays, band and triangle packing,
//		  hash-mapped, compressed (CSR/CSC) and coordinate sparse stores
//		• Containers & proxies: matrices, vectors, ranges, slices, rows and
//		  columns, read-only wrappers
//		• Expression nodes: negate, conjugate, transpose, herm, add, subtract,
//		  element-wise multiply/divide, scaling, products (matrix, vector,
//		  inner, outer)
//		• Dispatch: one traversal strategy per combination of storage
//		  categories (dense stride, packed band, sparse merge, index fallback)
//		• Assignment: assign and accumulate (+=, -=, .*=, ./=) with aliasing
//		  detection, so A = A·A reads the original A
//
// ✨ Why choose lvlalg?
//
//   - Lazy: building A + Bᵀ allocates nothing; evaluation happens once
//   - Structure aware: sparse sums touch stored entries only
//   - Safe by default: self-referencing assignments go through a temporary
//   - Interoperable: gonum matrices are first-class leaves (gonumx)
//
// Packages:
//
//	core/         categories, bands, orientation, ranges, sentinel errors
//	storage/      backends: Array, Band, Triangular, Mapped, Compressed, Coordinate
//	container/    owning containers, views and read-only proxies
//	expr/         lazy expression nodes and sparse merge iterators
//	dispatch/     traversal strategy selection
//	assign/       the evaluation engine
//	gonumx/       gonum adapters
//	cmd/lvlalg/   CLI evaluating YAML workloads
//
// Quick example:
//
//	a, _ := container.NewMatrixFrom([][]float64{{1, 2}, {3, 4}})
//	sym := expr.Must(expr.Add[float64](a, expr.Must(expr.Trans[float64](a))))
//	_ = assign.Assign[float64](a, sym) // a = [[2 5] [5 8]]
//
//	go get github.com/katalvlaran/lvlalg
package lvlalg
