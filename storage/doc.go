// Package storage implements the element stores behind lvlalg containers.
//
// Every backend owns a core.ID identity token and exposes forward and reverse
// traversal in index order:
//
//	Array[T]       dense contiguous store, growable (doubling) or fixed capacity
//	Band[T]        packed band, majors×(kl+ku+1) slots, orientation aware
//	Triangular[T]  packed triangle, n(n+1)/2 slots, lower or upper
//	Mapped[T]      Sparse-Unordered hash store keyed by (major, minor)
//	Compressed[T]  Sparse-Sorted CSR/CSC runs (ptr, idx, val)
//	Coordinate[T]  Sparse-Sorted triplets with an unsorted bulk-append path
//
// Reads never create entries. Packed stores return zero outside the stored
// region without touching memory and reject writes there with
// core.ErrOutOfBand. Backends perform no bounds checks on the logical shape
// beyond what their layout needs; containers validate indices first.
//
// Backends are not safe for concurrent mutation; callers synchronize.
package storage
