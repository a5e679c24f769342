// SPDX-License-Identifier: MIT

// Package container - sparse matrices and vectors.
//
// A sparse matrix addresses its store by (major, minor) through its
// orientation: row-major containers keep row runs (CSR for Compressed),
// column-major containers keep column runs (CSC). Row traversal of a
// row-major container walks one run; the cross direction scans the runs.

package container

import (
	"iter"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvlalg/core"
	"github.com/katalvlaran/lvlalg/expr"
	"github.com/katalvlaran/lvlalg/storage"
)

// sparse implements the shared surface of the sparse matrices.
type sparse[T core.Element] struct {
	rows, cols int
	orient     core.Orientation
	cat        core.Category
	s          storage.Sparse[T]
}

func newSparse[T core.Element](k storage.Kind, cat core.Category, rows, cols int, opts ...Option) (sparse[T], error) {
	if rows < 0 || cols < 0 {
		return sparse[T]{}, errors.Wrapf(core.ErrInvalidDimensions, "new %s matrix (%d,%d)", k, rows, cols)
	}
	o := gatherOptions(opts...)
	majors, minors := o.orient.Major(rows, cols)
	s, err := storage.NewSparse[T](k, majors, minors)
	if err != nil {
		return sparse[T]{}, err
	}

	return sparse[T]{rows: rows, cols: cols, orient: o.orient, cat: cat, s: s}, nil
}

func (m *sparse[T]) Rows() int                     { return m.rows }
func (m *sparse[T]) Cols() int                     { return m.cols }
func (m *sparse[T]) Orientation() core.Orientation { return m.orient }
func (m *sparse[T]) Category() core.Category       { return m.cat }
func (m *sparse[T]) Band() core.Band               { return core.FullBand(m.rows, m.cols) }
func (m *sparse[T]) StorageID() core.ID            { return m.s.ID() }
func (m *sparse[T]) ReadOnly() bool                { return false }
func (m *sparse[T]) References(id core.ID) bool    { return id == m.s.ID() }

// NNZ returns the number of stored entries.
func (m *sparse[T]) NNZ() int { return m.s.Len() }

func (m *sparse[T]) inRange(i, j int) bool {
	return i >= 0 && i < m.rows && j >= 0 && j < m.cols
}

// At returns the stored value or zero. Reads never insert.
func (m *sparse[T]) At(i, j int) (T, error) {
	if !m.inRange(i, j) {
		return core.Zero[T](), core.IndexError("Sparse.At", i, j)
	}

	return m.s.At(m.orient.Major(i, j)), nil
}

// Set stores v at (i,j), inserting an entry when none exists.
func (m *sparse[T]) Set(i, j int, v T) error {
	if !m.inRange(i, j) {
		return core.IndexError("Sparse.Set", i, j)
	}
	major, minor := m.orient.Major(i, j)
	m.s.Set(major, minor, v)

	return nil
}

// Erase removes the entry at (i,j) if present.
func (m *sparse[T]) Erase(i, j int) error {
	if !m.inRange(i, j) {
		return core.IndexError("Sparse.Erase", i, j)
	}
	m.s.Erase(m.orient.Major(i, j))

	return nil
}

func (m *sparse[T]) Clear() error {
	m.s.Clear()
	return nil
}

func (m *sparse[T]) Row(i int, d core.Direction) iter.Seq2[int, T] {
	if i < 0 || i >= m.rows {
		return empty[T]
	}
	if m.orient == core.ColumnMajor {
		return m.s.Minor(i, d)
	}

	return m.s.Major(i, d)
}

func (m *sparse[T]) Col(j int, d core.Direction) iter.Seq2[int, T] {
	if j < 0 || j >= m.cols {
		return empty[T]
	}
	if m.orient == core.ColumnMajor {
		return m.s.Major(j, d)
	}

	return m.s.Minor(j, d)
}

// Resize changes the shape, dropping entries that fall outside.
func (m *sparse[T]) Resize(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return errors.Wrapf(core.ErrInvalidDimensions, "Sparse.Resize(%d,%d)", rows, cols)
	}
	if err := m.s.Reshape(m.orient.Major(rows, cols)); err != nil {
		return err
	}
	m.rows, m.cols = rows, cols

	return nil
}

// MappedMatrix is a Sparse-Unordered matrix over a hash store.
type MappedMatrix[T core.Element] struct{ sparse[T] }

// NewMappedMatrix allocates an empty hash-backed sparse matrix.
func NewMappedMatrix[T core.Element](rows, cols int, opts ...Option) (*MappedMatrix[T], error) {
	s, err := newSparse[T](storage.KindMapped, core.SparseUnordered, rows, cols, opts...)
	if err != nil {
		return nil, err
	}

	return &MappedMatrix[T]{sparse: s}, nil
}

func (m *MappedMatrix[T]) Temporary() expr.MutableMatrix[T] {
	t, _ := NewMappedMatrix[T](m.rows, m.cols, WithOrientation(m.orient))
	return t
}

// CompressedMatrix is a Sparse-Sorted matrix in CSR (row-major) or CSC
// (column-major) form.
type CompressedMatrix[T core.Element] struct {
	sparse[T]
	c *storage.Compressed[T]
}

// NewCompressedMatrix allocates an empty compressed sparse matrix.
func NewCompressedMatrix[T core.Element](rows, cols int, opts ...Option) (*CompressedMatrix[T], error) {
	s, err := newSparse[T](storage.KindCompressed, core.SparseSorted, rows, cols, opts...)
	if err != nil {
		return nil, err
	}

	return &CompressedMatrix[T]{sparse: s, c: s.s.(*storage.Compressed[T])}, nil
}

// Append stores v at (i,j). Entries appended in storage order cost O(1)
// amortized; out-of-order entries fall back to Set.
func (m *CompressedMatrix[T]) Append(i, j int, v T) error {
	if !m.inRange(i, j) {
		return core.IndexError("CompressedMatrix.Append", i, j)
	}
	major, minor := m.orient.Major(i, j)
	m.c.Append(major, minor, v)

	return nil
}

func (m *CompressedMatrix[T]) Temporary() expr.MutableMatrix[T] {
	t, _ := NewCompressedMatrix[T](m.rows, m.cols, WithOrientation(m.orient))
	return t
}

// CoordinateMatrix is a Sparse-Sorted triplet matrix with a bulk Append path.
type CoordinateMatrix[T core.Element] struct {
	sparse[T]
	c *storage.Coordinate[T]
}

// NewCoordinateMatrix allocates an empty coordinate sparse matrix.
func NewCoordinateMatrix[T core.Element](rows, cols int, opts ...Option) (*CoordinateMatrix[T], error) {
	s, err := newSparse[T](storage.KindCoordinate, core.SparseSorted, rows, cols, opts...)
	if err != nil {
		return nil, err
	}

	return &CoordinateMatrix[T]{sparse: s, c: s.s.(*storage.Coordinate[T])}, nil
}

// Append adds v to the value at (i,j) without ordering the store. Duplicates
// are summed on the next read.
func (m *CoordinateMatrix[T]) Append(i, j int, v T) error {
	if !m.inRange(i, j) {
		return core.IndexError("CoordinateMatrix.Append", i, j)
	}
	major, minor := m.orient.Major(i, j)
	m.c.Append(major, minor, v)

	return nil
}

func (m *CoordinateMatrix[T]) Temporary() expr.MutableMatrix[T] {
	t, _ := NewCoordinateMatrix[T](m.rows, m.cols, WithOrientation(m.orient))
	return t
}

// sparseVec implements the shared surface of the sparse vectors: one major
// line of a sparse store.
type sparseVec[T core.Element] struct {
	n   int
	cat core.Category
	s   storage.Sparse[T]
}

func newSparseVec[T core.Element](k storage.Kind, cat core.Category, n int) (sparseVec[T], error) {
	if n < 0 {
		return sparseVec[T]{}, errors.Wrapf(core.ErrInvalidDimensions, "new %s vector (%d)", k, n)
	}
	s, err := storage.NewSparse[T](k, 1, n)
	if err != nil {
		return sparseVec[T]{}, err
	}

	return sparseVec[T]{n: n, cat: cat, s: s}, nil
}

func (v *sparseVec[T]) Len() int                   { return v.n }
func (v *sparseVec[T]) Category() core.Category    { return v.cat }
func (v *sparseVec[T]) StorageID() core.ID         { return v.s.ID() }
func (v *sparseVec[T]) ReadOnly() bool             { return false }
func (v *sparseVec[T]) References(id core.ID) bool { return id == v.s.ID() }

// NNZ returns the number of stored entries.
func (v *sparseVec[T]) NNZ() int { return v.s.Len() }

func (v *sparseVec[T]) At(i int) (T, error) {
	if i < 0 || i >= v.n {
		return core.Zero[T](), errors.Wrapf(core.ErrIndexOutOfRange, "SparseVector.At(%d)", i)
	}

	return v.s.At(0, i), nil
}

func (v *sparseVec[T]) Set(i int, x T) error {
	if i < 0 || i >= v.n {
		return errors.Wrapf(core.ErrIndexOutOfRange, "SparseVector.Set(%d)", i)
	}
	v.s.Set(0, i, x)

	return nil
}

func (v *sparseVec[T]) Erase(i int) error {
	if i < 0 || i >= v.n {
		return errors.Wrapf(core.ErrIndexOutOfRange, "SparseVector.Erase(%d)", i)
	}
	v.s.Erase(0, i)

	return nil
}

func (v *sparseVec[T]) Clear() error {
	v.s.Clear()
	return nil
}

func (v *sparseVec[T]) Entries(d core.Direction) iter.Seq2[int, T] { return v.s.Major(0, d) }

// Resize changes the length, dropping entries beyond it.
func (v *sparseVec[T]) Resize(n int) error {
	if err := v.s.Reshape(1, n); err != nil {
		return err
	}
	v.n = n

	return nil
}

// MappedVector is a Sparse-Unordered vector over a hash store.
type MappedVector[T core.Element] struct{ sparseVec[T] }

// NewMappedVector allocates an empty hash-backed sparse vector.
func NewMappedVector[T core.Element](n int) (*MappedVector[T], error) {
	s, err := newSparseVec[T](storage.KindMapped, core.SparseUnordered, n)
	if err != nil {
		return nil, err
	}

	return &MappedVector[T]{sparseVec: s}, nil
}

func (v *MappedVector[T]) Temporary() expr.MutableVector[T] {
	t, _ := NewMappedVector[T](v.n)
	return t
}

// CompressedVector is a Sparse-Sorted vector.
type CompressedVector[T core.Element] struct{ sparseVec[T] }

// NewCompressedVector allocates an empty compressed sparse vector.
func NewCompressedVector[T core.Element](n int) (*CompressedVector[T], error) {
	s, err := newSparseVec[T](storage.KindCompressed, core.SparseSorted, n)
	if err != nil {
		return nil, err
	}

	return &CompressedVector[T]{sparseVec: s}, nil
}

func (v *CompressedVector[T]) Temporary() expr.MutableVector[T] {
	t, _ := NewCompressedVector[T](v.n)
	return t
}

// CoordinateVector is a Sparse-Sorted vector with a bulk Append path.
type CoordinateVector[T core.Element] struct {
	sparseVec[T]
	c *storage.Coordinate[T]
}

// NewCoordinateVector allocates an empty coordinate sparse vector.
func NewCoordinateVector[T core.Element](n int) (*CoordinateVector[T], error) {
	s, err := newSparseVec[T](storage.KindCoordinate, core.SparseSorted, n)
	if err != nil {
		return nil, err
	}

	return &CoordinateVector[T]{sparseVec: s, c: s.s.(*storage.Coordinate[T])}, nil
}

// Append adds x to the value at i; duplicates are summed on the next read.
func (v *CoordinateVector[T]) Append(i int, x T) error {
	if i < 0 || i >= v.n {
		return errors.Wrapf(core.ErrIndexOutOfRange, "CoordinateVector.Append(%d)", i)
	}
	v.c.Append(0, i, x)

	return nil
}

func (v *CoordinateVector[T]) Temporary() expr.MutableVector[T] {
	t, _ := NewCoordinateVector[T](v.n)
	return t
}
