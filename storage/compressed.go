// SPDX-License-Identifier: MIT

// Package storage - compressed sparse store (CSR for row-major, CSC for
// column-major containers).
//
// Layout:
//   - ptr has majors+1 entries; line k occupies idx/val[ptr[k]:ptr[k+1]].
//   - idx is strictly ascending within each line (sorted invariant).
//
// Complexity quicksheet:
//   - Lookup: O(log nnz(line)).
//   - Set/Erase: O(nnz) for mid-array inserts; O(1) amortized when appending
//     after the last stored entry.
//   - Major traversal: O(nnz(line)); Minor traversal: O(majors · log).

package storage

import (
	"iter"
	"slices"

	"github.com/katalvlaran/lvlalg/core"
)

// Compressed stores entries in per-line sorted runs.
type Compressed[T core.Element] struct {
	id             core.ID
	majors, minors int
	ptr            []int
	idx            []int
	val            []T
}

// NewCompressed allocates an empty compressed store.
func NewCompressed[T core.Element](majors, minors int) (*Compressed[T], error) {
	if err := checkExtent("NewCompressed", majors, minors); err != nil {
		return nil, err
	}

	return &Compressed[T]{id: core.NewID(), majors: majors, minors: minors, ptr: make([]int, majors+1)}, nil
}

func (c *Compressed[T]) ID() core.ID  { return c.id }
func (c *Compressed[T]) Majors() int  { return c.majors }
func (c *Compressed[T]) Minors() int  { return c.minors }
func (c *Compressed[T]) Sorted() bool { return true }
func (c *Compressed[T]) Len() int     { return len(c.idx) }

// find returns the position of minor in line major, or the insertion point.
func (c *Compressed[T]) find(major, minor int) (int, bool) {
	lo, hi := c.ptr[major], c.ptr[major+1]
	k, ok := slices.BinarySearch(c.idx[lo:hi], minor)

	return lo + k, ok
}

func (c *Compressed[T]) At(major, minor int) T {
	v, _ := c.Lookup(major, minor)
	return v
}

func (c *Compressed[T]) Lookup(major, minor int) (T, bool) {
	if major < 0 || major >= c.majors {
		return core.Zero[T](), false
	}
	k, ok := c.find(major, minor)
	if !ok {
		return core.Zero[T](), false
	}

	return c.val[k], true
}

func (c *Compressed[T]) Set(major, minor int, v T) {
	k, ok := c.find(major, minor)
	if ok {
		c.val[k] = v
		return
	}
	if k == len(c.idx) {
		c.idx = append(c.idx, minor)
		c.val = append(c.val, v)
	} else {
		c.idx = slices.Insert(c.idx, k, minor)
		c.val = slices.Insert(c.val, k, v)
	}
	for p := major + 1; p <= c.majors; p++ {
		c.ptr[p]++
	}
}

// Append stores v at (major, minor) when it follows every stored entry in
// (major, minor) order, falling back to Set otherwise.
func (c *Compressed[T]) Append(major, minor int, v T) {
	end := c.ptr[major+1]
	tail := end == len(c.idx) && (c.ptr[major] == end || c.idx[end-1] < minor)
	if !tail {
		c.Set(major, minor, v)
		return
	}
	c.idx = append(c.idx, minor)
	c.val = append(c.val, v)
	for p := major + 1; p <= c.majors; p++ {
		c.ptr[p]++
	}
}

func (c *Compressed[T]) Erase(major, minor int) {
	if major < 0 || major >= c.majors {
		return
	}
	k, ok := c.find(major, minor)
	if !ok {
		return
	}
	c.idx = slices.Delete(c.idx, k, k+1)
	c.val = slices.Delete(c.val, k, k+1)
	for p := major + 1; p <= c.majors; p++ {
		c.ptr[p]--
	}
}

func (c *Compressed[T]) Clear() {
	clear(c.ptr)
	c.idx = c.idx[:0]
	c.val = c.val[:0]
}

func (c *Compressed[T]) Major(major int, d core.Direction) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if major < 0 || major >= c.majors {
			return
		}
		for k := range core.Walk(c.ptr[major], c.ptr[major+1], d) {
			if !yield(c.idx[k], c.val[k]) {
				return
			}
		}
	}
}

func (c *Compressed[T]) Minor(minor int, d core.Direction) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for major := range core.Walk(0, c.majors, d) {
			if k, ok := c.find(major, minor); ok {
				if !yield(major, c.val[k]) {
					return
				}
			}
		}
	}
}

func (c *Compressed[T]) Reshape(majors, minors int) error {
	if err := checkExtent("Compressed.Reshape", majors, minors); err != nil {
		return err
	}
	ptr := make([]int, majors+1)
	idx := c.idx[:0:0]
	val := c.val[:0:0]
	for major := 0; major < min(majors, c.majors); major++ {
		for k := c.ptr[major]; k < c.ptr[major+1]; k++ {
			if c.idx[k] < minors {
				idx = append(idx, c.idx[k])
				val = append(val, c.val[k])
			}
		}
		ptr[major+1] = len(idx)
	}
	for major := c.majors + 1; major <= majors; major++ {
		ptr[major] = len(idx)
	}
	c.majors, c.minors, c.ptr, c.idx, c.val = majors, minors, ptr, idx, val

	return nil
}
