// Package container provides the owning containers and the non-owning
// proxies of lvlalg.
//
// Containers own one storage backend exclusively:
//
//	Matrix, Vector                       Dense (storage.Array)
//	Banded, Triangular                   Packed (storage.Band, storage.Triangular)
//	MappedMatrix, MappedVector           Sparse-Unordered (storage.Mapped)
//	CompressedMatrix, CompressedVector   Sparse-Sorted (storage.Compressed)
//	CoordinateMatrix, CoordinateVector   Sparse-Sorted (storage.Coordinate)
//
// Proxies reference a container, another proxy or an expression:
//
//	MatrixView   NewMatrixRange, NewMatrixSlice
//	VectorView   NewVectorRange, NewVectorSlice, NewRow, NewColumn
//	ReadOnly     ReadOnly, ReadOnlyVec
//
// Every container and writable proxy satisfies expr.MutableMatrix or
// expr.MutableVector and can be the destination of package assign. Indices
// are checked on every access: core.ErrIndexOutOfRange for reads and writes
// outside the shape, core.ErrOutOfBand for writes outside a packed region,
// core.ErrInvalidRange for proxy parameters and core.ErrReadOnly for writes
// through read-only proxies.
//
// Containers are not safe for concurrent mutation.
package container
