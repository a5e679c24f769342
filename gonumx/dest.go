// SPDX-License-Identifier: MIT

package gonumx

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlalg/core"
	"github.com/katalvlaran/lvlalg/expr"
)

// Dest exposes a *mat.Dense as an assignment destination. The wrapped
// memory is not tracked, so a Dest read as an operand references every
// destination and the engine evaluates through a temporary.
type Dest struct {
	*Matrix
	d  *mat.Dense
	id core.ID
}

// NewDest wraps d for writing.
func NewDest(d *mat.Dense) *Dest {
	return &Dest{Matrix: Wrap(d), d: d, id: core.NewID()}
}

// Dense returns the wrapped matrix.
func (w *Dest) Dense() *mat.Dense { return w.d }

func (w *Dest) Category() core.Category { return core.Dense }
func (w *Dest) StorageID() core.ID      { return w.id }
func (w *Dest) ReadOnly() bool          { return false }
func (w *Dest) References(core.ID) bool { return true }

func (w *Dest) Set(i, j int, v float64) error {
	if i < 0 || i >= w.rows || j < 0 || j >= w.cols {
		return core.IndexError("Dest.Set", i, j)
	}
	w.d.Set(i, j, v)

	return nil
}

func (w *Dest) Erase(i, j int) error { return w.Set(i, j, 0) }

func (w *Dest) Clear() error {
	w.d.Zero()
	return nil
}

// Temporary allocates a zero *mat.Dense of the same shape.
func (w *Dest) Temporary() expr.MutableMatrix[float64] {
	return NewDest(mat.NewDense(w.rows, w.cols, nil))
}
