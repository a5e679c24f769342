// SPDX-License-Identifier: MIT

package assign

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/lvlalg/core"
	"github.com/katalvlaran/lvlalg/expr"
)

// bandRegion is the stored region of a packed destination after a resize,
// when the container's own bounds still describe the old shape.
type bandRegion core.Band

func (b bandRegion) Contains(i, j int) bool { return core.Band(b).Contains(i, j) }

// regionOf returns the writable region of m for a rows×cols result, or nil
// when every slot is writable. Regions are band-shaped, so a region holding
// both off-diagonal corners holds everything.
func regionOf[T core.Element](m expr.MutableMatrix[T], resized bool, rows, cols int) expr.Bounded {
	var reg expr.Bounded
	switch b, ok := m.(expr.Bounded); {
	case ok && !resized:
		reg = b
	case m.Category() == core.Packed:
		reg = bandRegion(m.Band())
	default:
		return nil
	}
	if rows == 0 || cols == 0 || (reg.Contains(rows-1, 0) && reg.Contains(0, cols-1)) {
		return nil
	}

	return reg
}

// checkRegion fails with core.ErrOutOfBand when e has a non-zero outside reg.
// A packed expression whose band lies inside reg is accepted without
// evaluation.
func checkRegion[T core.Element](e expr.Matrix[T], reg expr.Bounded) error {
	if e.Category() == core.Packed && bandInside(e.Band(), reg, e.Rows(), e.Cols()) {
		return nil
	}
	for i := 0; i < e.Rows(); i++ {
		for j, x := range e.Row(i, core.Forward) {
			if !reg.Contains(i, j) && !core.IsZero(x) {
				return errors.Wrapf(core.ErrOutOfBand, "(%d,%d)", i, j)
			}
		}
	}

	return nil
}

// checkDivisor fails with core.ErrDivideByZero when e is zero at a slot of
// reg, or at any slot when reg is nil.
func checkDivisor[T core.Element](e expr.Matrix[T], reg expr.Bounded) error {
	for i := 0; i < e.Rows(); i++ {
		for j := 0; j < e.Cols(); j++ {
			if reg != nil && !reg.Contains(i, j) {
				continue
			}
			x, err := e.At(i, j)
			if err != nil {
				return err
			}
			if core.IsZero(x) {
				return errors.Wrapf(core.ErrDivideByZero, "(%d,%d)", i, j)
			}
		}
	}

	return nil
}

func bandInside(b core.Band, reg expr.Bounded, rows, cols int) bool {
	for i := 0; i < rows; i++ {
		lo, hi := b.RowSpan(i, cols)
		if lo < hi && (!reg.Contains(i, lo) || !reg.Contains(i, hi-1)) {
			return false
		}
	}

	return true
}
