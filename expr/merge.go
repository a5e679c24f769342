// SPDX-License-Identifier: MIT

// Package expr - coordinated index-stream iterators.
//
// All streams are ordered by index in the direction they were produced with;
// the merges compare heads with core.Direction.Before so the same code serves
// forward and reverse traversal. A k-way merge is a tree of binary merges: a
// node whose operands are themselves merge nodes pulls from their streams.

package expr

import (
	"iter"
	"maps"
	"slices"

	"github.com/katalvlaran/lvlalg/core"
)

// unionMerge yields every index present in a or b. A missing side reads zero.
func unionMerge[T core.Element](a, b iter.Seq2[int, T], d core.Direction, f func(x, y T) T) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		nextA, stopA := iter.Pull2(a)
		defer stopA()
		nextB, stopB := iter.Pull2(b)
		defer stopB()

		var z T
		ia, va, okA := nextA()
		ib, vb, okB := nextB()
		for okA || okB {
			switch {
			case okA && (!okB || d.Before(ia, ib)):
				if !yield(ia, f(va, z)) {
					return
				}
				ia, va, okA = nextA()
			case okB && (!okA || d.Before(ib, ia)):
				if !yield(ib, f(z, vb)) {
					return
				}
				ib, vb, okB = nextB()
			default:
				if !yield(ia, f(va, vb)) {
					return
				}
				ia, va, okA = nextA()
				ib, vb, okB = nextB()
			}
		}
	}
}

// intersectMerge yields only the indices present in both a and b.
func intersectMerge[T core.Element](a, b iter.Seq2[int, T], d core.Direction, f func(x, y T) T) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		nextA, stopA := iter.Pull2(a)
		defer stopA()
		nextB, stopB := iter.Pull2(b)
		defer stopB()

		ia, va, okA := nextA()
		ib, vb, okB := nextB()
		for okA && okB {
			switch {
			case d.Before(ia, ib):
				ia, va, okA = nextA()
			case d.Before(ib, ia):
				ib, vb, okB = nextB()
			default:
				if !yield(ia, f(va, vb)) {
					return
				}
				ia, va, okA = nextA()
				ib, vb, okB = nextB()
			}
		}
	}
}

// mapValues applies f to every value of s.
func mapValues[T core.Element](s iter.Seq2[int, T], f func(T) T) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for k, v := range s {
			if !yield(k, f(v)) {
				return
			}
		}
	}
}

// span yields (k, get(k)) for k in [lo, hi) in direction d.
func span[T core.Element](lo, hi int, d core.Direction, get func(k int) T) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for k := range core.Walk(lo, hi, d) {
			if !yield(k, get(k)) {
				return
			}
		}
	}
}

// fill yields every index of [lo, hi) in direction d, taking values from the
// ordered stream s where present and zero elsewhere.
func fill[T core.Element](s iter.Seq2[int, T], lo, hi int, d core.Direction) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		next, stop := iter.Pull2(s)
		defer stop()

		var z T
		k, v, ok := next()
		for idx := range core.Walk(lo, hi, d) {
			for ok && d.Before(k, idx) {
				k, v, ok = next()
			}
			if ok && k == idx {
				if !yield(idx, v) {
					return
				}
				k, v, ok = next()
				continue
			}
			if !yield(idx, z) {
				return
			}
		}
	}
}

// sortedAcc yields the entries of a sparse accumulator in index order.
func sortedAcc[T core.Element](acc map[int]T, d core.Direction) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		keys := slices.Sorted(maps.Keys(acc))
		if d == core.Backward {
			slices.Reverse(keys)
		}
		for _, k := range keys {
			if !yield(k, acc[k]) {
				return
			}
		}
	}
}

// single yields one entry, or nothing when skip is set.
func single[T core.Element](k int, v T, skip bool) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if !skip {
			yield(k, v)
		}
	}
}
