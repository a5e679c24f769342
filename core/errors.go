// SPDX-License-Identifier: MIT
// Package core: sentinel error set (unified, shared by all packages).
// All packages MUST return these sentinels (optionally wrapped with call-site
// context) and tests MUST match them via errors.Is. No package panics on a
// user-triggered condition; Must* helpers are the only exception.

package core

import "github.com/cockroachdb/errors"

// NOTE ON WRAPPING
// ----------------
// Every message is prefixed with "lvlalg: ...". Call sites attach context with
// errors.Wrapf(ErrX, "Op(%d,%d)", i, j); errors.Is keeps matching the sentinel.

var (
	// ErrShapeMismatch is returned when operand shapes are incompatible for the
	// requested operation (Add of 3×3 and 3×4, MatMul with a.Cols != b.Rows...).
	// Detected at expression construction, before any evaluation.
	ErrShapeMismatch = errors.New("lvlalg: shape mismatch")

	// ErrIndexOutOfRange indicates an index outside [0, size) on read or write.
	ErrIndexOutOfRange = errors.New("lvlalg: index out of range")

	// ErrOutOfBand indicates a mutable access outside the stored region of a
	// packed (banded/triangular) storage.
	ErrOutOfBand = errors.New("lvlalg: access outside packed storage region")

	// ErrInvalidRange indicates that proxy parameters (start/stop/stride or a
	// fixed row/column) address outside the referent's bounds.
	ErrInvalidRange = errors.New("lvlalg: range outside referent")

	// ErrReadOnly indicates a write through an immutable view.
	ErrReadOnly = errors.New("lvlalg: write through read-only view")

	// ErrCapacity indicates that a fixed-capacity store was asked to grow.
	ErrCapacity = errors.New("lvlalg: fixed capacity exceeded")

	// ErrInvalidDimensions indicates negative sizes or band widths.
	ErrInvalidDimensions = errors.New("lvlalg: dimensions must be >= 0")

	// ErrDivideByZero indicates an integer division whose divisor is zero.
	ErrDivideByZero = errors.New("lvlalg: integer division by zero")

	// ErrNilOperand indicates that a nil container, proxy or expression was used.
	ErrNilOperand = errors.New("lvlalg: nil operand")
)

// IndexError wraps ErrIndexOutOfRange with the call site and coordinates.
func IndexError(op string, i, j int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "%s(%d,%d)", op, i, j)
}

// ShapeError wraps ErrShapeMismatch with both operand shapes.
func ShapeError(op string, r1, c1, r2, c2 int) error {
	return errors.Wrapf(ErrShapeMismatch, "%s: %dx%d vs %dx%d", op, r1, c1, r2, c2)
}
