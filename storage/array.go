// SPDX-License-Identifier: MIT

// Package storage - dense contiguous store.
//
// Purpose:
//   - Back Dense matrices and vectors with one flat slice.
//   - Growable arrays double their capacity; fixed arrays never reallocate.
//
// Complexity quicksheet:
//   - At/Set: O(1); Resize: O(n) when reallocating, amortized O(1) per slot.

package storage

import (
	"iter"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvlalg/core"
)

// Array is a contiguous dense store of n elements.
type Array[T core.Element] struct {
	id    core.ID
	data  []T
	fixed bool // true: capacity is a hard limit
}

// NewArray allocates a growable zero-filled array of n elements.
// Returns ErrInvalidDimensions for n < 0.
func NewArray[T core.Element](n int) (*Array[T], error) {
	if n < 0 {
		return nil, errors.Wrapf(core.ErrInvalidDimensions, "NewArray(%d)", n)
	}

	return &Array[T]{id: core.NewID(), data: make([]T, n)}, nil
}

// NewFixedArray allocates a zero-filled array of n elements whose capacity can
// never exceed capacity. Returns ErrCapacity when n > capacity.
func NewFixedArray[T core.Element](n, capacity int) (*Array[T], error) {
	if n < 0 || capacity < 0 {
		return nil, errors.Wrapf(core.ErrInvalidDimensions, "NewFixedArray(%d,%d)", n, capacity)
	}
	if n > capacity {
		return nil, errors.Wrapf(core.ErrCapacity, "NewFixedArray(%d,%d)", n, capacity)
	}

	return &Array[T]{id: core.NewID(), data: make([]T, n, capacity), fixed: true}, nil
}

// ID returns the storage identity token.
func (a *Array[T]) ID() core.ID { return a.id }

// Len returns the number of stored elements.
func (a *Array[T]) Len() int { return len(a.data) }

// Cap returns the current capacity.
func (a *Array[T]) Cap() int { return cap(a.data) }

// Fixed reports whether the capacity is a hard limit.
func (a *Array[T]) Fixed() bool { return a.fixed }

// At returns element k. The caller guarantees 0 <= k < Len().
func (a *Array[T]) At(k int) T { return a.data[k] }

// Set stores v at k. The caller guarantees 0 <= k < Len().
func (a *Array[T]) Set(k int, v T) { a.data[k] = v }

// Data exposes the backing slice for flat fast paths.
func (a *Array[T]) Data() []T { return a.data }

// Clear resets every element to zero, keeping the length.
func (a *Array[T]) Clear() { clear(a.data) }

// Fill sets every element to v.
func (a *Array[T]) Fill(v T) {
	for k := range a.data {
		a.data[k] = v
	}
}

// Resize changes the length to n. Elements up to min(old, n) are preserved,
// new slots read zero. Growth beyond capacity doubles the capacity (growable)
// or fails with ErrCapacity (fixed).
func (a *Array[T]) Resize(n int) error {
	if n < 0 {
		return errors.Wrapf(core.ErrInvalidDimensions, "Array.Resize(%d)", n)
	}
	old := len(a.data)
	if n <= cap(a.data) {
		a.data = a.data[:n]
		if n > old {
			clear(a.data[old:n]) // stale values from an earlier shrink
		}
		return nil
	}
	if a.fixed {
		return errors.Wrapf(core.ErrCapacity, "Array.Resize(%d) cap=%d", n, cap(a.data))
	}
	buf := make([]T, n, max(n, 2*cap(a.data)))
	copy(buf, a.data)
	a.data = buf

	return nil
}

// All yields (index, value) for every slot in direction d.
func (a *Array[T]) All(d core.Direction) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for k := range core.Walk(0, len(a.data), d) {
			if !yield(k, a.data[k]) {
				return
			}
		}
	}
}
