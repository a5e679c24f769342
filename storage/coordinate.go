// SPDX-License-Identifier: MIT

package storage

import (
	"cmp"
	"iter"
	"math"
	"slices"

	"github.com/katalvlaran/lvlalg/core"
)

type triplet[T core.Element] struct {
	major, minor int
	v            T
}

func cmpTriplet[T core.Element](a, b triplet[T]) int {
	if c := cmp.Compare(a.major, b.major); c != 0 {
		return c
	}

	return cmp.Compare(a.minor, b.minor)
}

// Coordinate stores (major, minor, value) triplets. Append adds triplets
// without ordering them; duplicates are summed. The first read or keyed
// write afterwards sorts and merges the buffer once.
type Coordinate[T core.Element] struct {
	id             core.ID
	majors, minors int
	entries        []triplet[T]
	sorted         bool
}

// NewCoordinate allocates an empty coordinate store.
func NewCoordinate[T core.Element](majors, minors int) (*Coordinate[T], error) {
	if err := checkExtent("NewCoordinate", majors, minors); err != nil {
		return nil, err
	}

	return &Coordinate[T]{id: core.NewID(), majors: majors, minors: minors, sorted: true}, nil
}

func (c *Coordinate[T]) ID() core.ID  { return c.id }
func (c *Coordinate[T]) Majors() int  { return c.majors }
func (c *Coordinate[T]) Minors() int  { return c.minors }
func (c *Coordinate[T]) Sorted() bool { return true }

// Len returns the number of distinct entries.
func (c *Coordinate[T]) Len() int {
	c.normalize()
	return len(c.entries)
}

// Append adds v to whatever is stored at (major, minor).
func (c *Coordinate[T]) Append(major, minor int, v T) {
	t := triplet[T]{major: major, minor: minor, v: v}
	if n := len(c.entries); c.sorted && n > 0 && cmpTriplet(c.entries[n-1], t) >= 0 {
		c.sorted = false
	}
	c.entries = append(c.entries, t)
}

// normalize sorts the buffer and sums duplicate coordinates.
func (c *Coordinate[T]) normalize() {
	if c.sorted {
		return
	}
	slices.SortStableFunc(c.entries, cmpTriplet[T])
	out := c.entries[:0]
	for _, t := range c.entries {
		if n := len(out); n > 0 && out[n-1].major == t.major && out[n-1].minor == t.minor {
			out[n-1].v += t.v
			continue
		}
		out = append(out, t)
	}
	clear(c.entries[len(out):])
	c.entries = out
	c.sorted = true
}

func (c *Coordinate[T]) find(major, minor int) (int, bool) {
	c.normalize()
	return slices.BinarySearchFunc(c.entries, triplet[T]{major: major, minor: minor}, cmpTriplet[T])
}

func (c *Coordinate[T]) At(major, minor int) T {
	v, _ := c.Lookup(major, minor)
	return v
}

func (c *Coordinate[T]) Lookup(major, minor int) (T, bool) {
	k, ok := c.find(major, minor)
	if !ok {
		return core.Zero[T](), false
	}

	return c.entries[k].v, true
}

func (c *Coordinate[T]) Set(major, minor int, v T) {
	k, ok := c.find(major, minor)
	if ok {
		c.entries[k].v = v
		return
	}
	c.entries = slices.Insert(c.entries, k, triplet[T]{major: major, minor: minor, v: v})
}

func (c *Coordinate[T]) Erase(major, minor int) {
	if k, ok := c.find(major, minor); ok {
		c.entries = slices.Delete(c.entries, k, k+1)
	}
}

func (c *Coordinate[T]) Clear() {
	c.entries = c.entries[:0]
	c.sorted = true
}

// line returns the half-open position range of one major line.
func (c *Coordinate[T]) line(major int) (int, int) {
	lo, _ := c.find(major, math.MinInt)
	hi, _ := slices.BinarySearchFunc(c.entries[lo:], major+1, func(t triplet[T], m int) int {
		return cmp.Compare(t.major, m)
	})

	return lo, lo + hi
}

func (c *Coordinate[T]) Major(major int, d core.Direction) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		lo, hi := c.line(major)
		for k := range core.Walk(lo, hi, d) {
			if !yield(c.entries[k].minor, c.entries[k].v) {
				return
			}
		}
	}
}

func (c *Coordinate[T]) Minor(minor int, d core.Direction) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		c.normalize()
		for k := range core.Walk(0, len(c.entries), d) {
			if t := c.entries[k]; t.minor == minor {
				if !yield(t.major, t.v) {
					return
				}
			}
		}
	}
}

func (c *Coordinate[T]) Reshape(majors, minors int) error {
	if err := checkExtent("Coordinate.Reshape", majors, minors); err != nil {
		return err
	}
	c.entries = slices.DeleteFunc(c.entries, func(t triplet[T]) bool {
		return t.major >= majors || t.minor >= minors
	})
	c.majors, c.minors = majors, minors

	return nil
}
