// Package expr builds lazy, immutable expression trees over matrices, vectors
// and scalars.
//
// What:
//   - Matrix, Vector and Scalar are the read/iterate contracts every container,
//     proxy and node satisfies; MutableMatrix and MutableVector add the write
//     side the assign engine needs.
//   - Builders (Add, Sub, ElemMul, ElemDiv, Neg, Conj, Trans, Herm, Scale, Div,
//     MatMul, MatVec, VecMat, Outer, Inner and the *Vec forms) check shapes at
//     construction and return core.ErrShapeMismatch before anything is read.
//
// How:
//   - A node derives its core.Structure from its operands through the core
//     composition tables and asks package dispatch for its traversal strategy
//     once, at construction.
//   - Values are computed when read. Row and Col streams of sparse nodes are
//     coordinated merges of the operand streams (union for add/sub,
//     intersection for elementwise multiply); dense and packed nodes loop over
//     the row span of their band.
//   - References(id) walks the tree and reports whether any leaf storage has
//     the given identity. It may over-report, never under-report.
//
// Nodes hold operands by reference and never copy elements. Re-reading a node
// without mutating its operands yields identical values.
package expr
