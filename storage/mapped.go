// SPDX-License-Identifier: MIT

package storage

import (
	"iter"
	"maps"
	"slices"

	"github.com/katalvlaran/lvlalg/core"
)

// Mapped is a hash store: majors map to lines, lines map minors to values.
// Insertion and lookup are O(1) expected; ordered traversal sorts the keys of
// the visited line.
type Mapped[T core.Element] struct {
	id             core.ID
	majors, minors int
	lines          map[int]map[int]T
	n              int
}

// NewMapped allocates an empty hash store.
func NewMapped[T core.Element](majors, minors int) (*Mapped[T], error) {
	if err := checkExtent("NewMapped", majors, minors); err != nil {
		return nil, err
	}

	return &Mapped[T]{id: core.NewID(), majors: majors, minors: minors, lines: make(map[int]map[int]T)}, nil
}

func (m *Mapped[T]) ID() core.ID  { return m.id }
func (m *Mapped[T]) Majors() int  { return m.majors }
func (m *Mapped[T]) Minors() int  { return m.minors }
func (m *Mapped[T]) Sorted() bool { return false }
func (m *Mapped[T]) Len() int     { return m.n }

func (m *Mapped[T]) At(major, minor int) T {
	v, _ := m.Lookup(major, minor)
	return v
}

func (m *Mapped[T]) Lookup(major, minor int) (T, bool) {
	line, ok := m.lines[major] // nil map reads are safe and allocate nothing
	if !ok {
		return core.Zero[T](), false
	}
	v, ok := line[minor]

	return v, ok
}

func (m *Mapped[T]) Set(major, minor int, v T) {
	line, ok := m.lines[major]
	if !ok {
		line = make(map[int]T)
		m.lines[major] = line
	}
	if _, had := line[minor]; !had {
		m.n++
	}
	line[minor] = v
}

func (m *Mapped[T]) Erase(major, minor int) {
	line, ok := m.lines[major]
	if !ok {
		return
	}
	if _, had := line[minor]; had {
		delete(line, minor)
		m.n--
	}
	if len(line) == 0 {
		delete(m.lines, major)
	}
}

func (m *Mapped[T]) Clear() {
	clear(m.lines)
	m.n = 0
}

// sortedKeys returns the keys of mp ordered for direction d.
func sortedKeys[V any](mp map[int]V, d core.Direction) []int {
	keys := slices.Sorted(maps.Keys(mp))
	if d == core.Backward {
		slices.Reverse(keys)
	}

	return keys
}

func (m *Mapped[T]) Major(major int, d core.Direction) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		line := m.lines[major]
		for _, k := range sortedKeys(line, d) {
			if !yield(k, line[k]) {
				return
			}
		}
	}
}

func (m *Mapped[T]) Minor(minor int, d core.Direction) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for _, major := range sortedKeys(m.lines, d) {
			if v, ok := m.lines[major][minor]; ok {
				if !yield(major, v) {
					return
				}
			}
		}
	}
}

func (m *Mapped[T]) Reshape(majors, minors int) error {
	if err := checkExtent("Mapped.Reshape", majors, minors); err != nil {
		return err
	}
	for major, line := range m.lines {
		if major >= majors {
			m.n -= len(line)
			delete(m.lines, major)
			continue
		}
		for minor := range line {
			if minor >= minors {
				delete(line, minor)
				m.n--
			}
		}
		if len(line) == 0 {
			delete(m.lines, major)
		}
	}
	m.majors, m.minors = majors, minors

	return nil
}
