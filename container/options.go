// SPDX-License-Identifier: MIT

// Package container: functional configuration for container constructors.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on nonsensical values (programmer error).
//   - Options fields are unexported; constructors consume ...Option.

package container

import "github.com/katalvlaran/lvlalg/core"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultOrientation is the storage order of dense and packed containers.
	DefaultOrientation = core.RowMajor

	// DefaultFixedCapacity marks a growable dense store (no fixed capacity).
	DefaultFixedCapacity = -1
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicOrientationInvalid = "container: WithOrientation: unknown orientation"
	panicCapacityInvalid    = "container: WithFixedCapacity: capacity must be >= 0"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	orient   core.Orientation // DefaultOrientation
	fixedCap int              // DefaultFixedCapacity; >= 0 ⇒ fixed-capacity dense store
}

// WithOrientation selects row-major or column-major storage for dense and
// packed containers. Sparse containers use it to pick CSR or CSC runs.
// Panics on values other than core.RowMajor and core.ColumnMajor.
func WithOrientation(o core.Orientation) Option {
	if o != core.RowMajor && o != core.ColumnMajor {
		panic(panicOrientationInvalid)
	}

	return func(opt *Options) { opt.orient = o }
}

// WithFixedCapacity backs a dense container with a fixed-capacity store:
// construction or Resize beyond capacity elements fails with core.ErrCapacity.
// Panics on negative capacity.
func WithFixedCapacity(capacity int) Option {
	if capacity < 0 {
		panic(panicCapacityInvalid)
	}

	return func(opt *Options) { opt.fixedCap = capacity }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{orient: DefaultOrientation, fixedCap: DefaultFixedCapacity}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
