// SPDX-License-Identifier: MIT

package expr

import (
	"iter"

	"github.com/katalvlaran/lvlalg/core"
	"github.com/katalvlaran/lvlalg/dispatch"
)

// Matrix is the read contract of every 2-D operand.
//
// Row and Col yield (index, value) pairs in index order for direction d.
// Sparse categories may skip structural zeros and never yield an index twice;
// Dense and Unknown yield every slot; Packed yields the slots inside Band.
type Matrix[T core.Element] interface {
	Rows() int
	Cols() int
	Category() core.Category
	Band() core.Band
	At(i, j int) (T, error)
	Row(i int, d core.Direction) iter.Seq2[int, T]
	Col(j int, d core.Direction) iter.Seq2[int, T]
	References(id core.ID) bool
}

// Vector is the read contract of every 1-D operand.
type Vector[T core.Element] interface {
	Len() int
	Category() core.Category
	At(i int) (T, error)
	Entries(d core.Direction) iter.Seq2[int, T]
	References(id core.ID) bool
}

// Scalar is a value computed from vector operands (inner product).
type Scalar[T core.Element] interface {
	Value() T
	References(id core.ID) bool
}

// MutableMatrix is a matrix destination: a container or a writable proxy.
type MutableMatrix[T core.Element] interface {
	Matrix[T]
	// StorageID identifies the backend written through; core.NoID if none.
	StorageID() core.ID
	ReadOnly() bool
	Set(i, j int, v T) error
	// Erase turns (i,j) into a structural zero.
	Erase(i, j int) error
	// Clear erases every element in the destination's region.
	Clear() error
	// Temporary allocates an empty container of the same shape and structure.
	Temporary() MutableMatrix[T]
}

// MutableVector is a vector destination.
type MutableVector[T core.Element] interface {
	Vector[T]
	StorageID() core.ID
	ReadOnly() bool
	Set(i int, v T) error
	Erase(i int) error
	Clear() error
	Temporary() MutableVector[T]
}

// ResizableMatrix is implemented by containers that can change shape.
type ResizableMatrix interface {
	Resize(rows, cols int) error
}

// ResizableVector is implemented by vector containers that can change length.
type ResizableVector interface {
	Resize(n int) error
}

// Bounded is implemented by destinations whose writable region is narrower
// than their shape (packed containers and views over them).
type Bounded interface {
	Contains(i, j int) bool
}

// BoundedVector is implemented by vector destinations whose writable
// positions are narrower than their length (lines of packed matrices).
type BoundedVector interface {
	InRegion(k int) bool
}

// Checked is implemented by expressions whose reads can fail on the operand
// values alone (integer division by a stored zero).
type Checked interface {
	Check() error
}

// Check runs the value checks of x and its operands. Leaves pass.
func Check(x any) error {
	if c, ok := x.(Checked); ok {
		return c.Check()
	}

	return nil
}

func checkAll(xs ...any) error {
	for _, x := range xs {
		if err := Check(x); err != nil {
			return err
		}
	}

	return nil
}

// Oriented is implemented by operands with a storage order.
type Oriented interface {
	Orientation() core.Orientation
}

// Op tags the operation of an expression node.
type Op uint8

// Operation tags.
const (
	OpNone Op = iota
	OpNeg
	OpConj
	OpTrans
	OpHerm
	OpAdd
	OpSub
	OpElemMul
	OpElemDiv
	OpScale
	OpDiv
	OpMatVec
	OpVecMat
	OpMatMul
	OpInner
	OpOuter
)

var opNames = [...]string{
	OpNone:    "leaf",
	OpNeg:     "neg",
	OpConj:    "conj",
	OpTrans:   "trans",
	OpHerm:    "herm",
	OpAdd:     "add",
	OpSub:     "sub",
	OpElemMul: "emul",
	OpElemDiv: "ediv",
	OpScale:   "scale",
	OpDiv:     "div",
	OpMatVec:  "matvec",
	OpVecMat:  "vecmat",
	OpMatMul:  "prod",
	OpInner:   "inner",
	OpOuter:   "outer",
}

// String implements fmt.Stringer.
func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}

	return "op?"
}

// Node is implemented by every expression node.
type Node interface {
	Op() Op
	Strategy() dispatch.Strategy
}

// StrategyOf returns the traversal strategy of x: the node's own when x is a
// node, otherwise the strategy of its category alone.
func StrategyOf(x interface{ Category() core.Category }) dispatch.Strategy {
	if n, ok := x.(Node); ok {
		return n.Strategy()
	}

	return dispatch.Select(x.Category())
}

// OpOf returns the operation tag of x, OpNone for leaves.
func OpOf(x any) Op {
	if n, ok := x.(Node); ok {
		return n.Op()
	}

	return OpNone
}

// Must panics on error. For tests and examples.
func Must[E any](e E, err error) E {
	if err != nil {
		panic(err)
	}

	return e
}

// checkIndex validates (i,j) against a rows×cols shape.
func checkIndex(op string, i, j, rows, cols int) error {
	if i < 0 || i >= rows || j < 0 || j >= cols {
		return core.IndexError(op, i, j)
	}

	return nil
}

// at reads an element whose indices were validated by the caller.
func at[T core.Element](m Matrix[T], i, j int) T {
	v, _ := m.At(i, j)
	return v
}

// atVec reads a vector element whose index was validated by the caller.
func atVec[T core.Element](v Vector[T], i int) T {
	x, _ := v.At(i)
	return x
}
