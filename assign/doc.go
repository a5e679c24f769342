// Package assign evaluates expressions into destinations. It is the only
// package of lvlalg that mutates containers on behalf of an expression.
//
// Entry points:
//
//	Assign(dst, e)              dst = e
//	Accumulate(dst, e, op)      dst op= e, op ∈ {PlusAssign, MinusAssign, TimesAssign, DivideAssign}
//	AssignVector, AccumulateVector
//
// Every call runs in three stages:
//
//  1. Validation, before any mutation: read-only destinations fail with
//     core.ErrReadOnly, shape mismatches with core.ErrShapeMismatch (unless
//     WithResize applies), and non-zeros outside a packed destination's
//     stored region with core.ErrOutOfBand.
//  2. Aliasing: when the expression references the destination's storage
//     (expr.Matrix.References on dst.StorageID) the result is built in
//     dst.Temporary() and copied afterwards. WithNoAlias skips the check.
//  3. Traversal, chosen by the expression's dispatch.Strategy:
//     dense-stride visits every slot in the destination's storage order,
//     packed-band and sparse-merge clear the destination and visit the
//     stored entries only, index-fallback reads every slot through At.
//
// Zero results erase, so sparse destinations never hold explicit zeros
// written by the engine.
//
// Complexity: dense-stride and index-fallback are O(rows·cols) writes;
// packed-band and sparse-merge are O(stored entries) plus the cost of Clear.
// The aliased path adds one temporary and one copy.
package assign
