// SPDX-License-Identifier: MIT

// Package assign: functional configuration for the evaluation entry points.
//
// Design goals:
//   - No global state: every call carries its own options.
//   - Safe by construction: panic only on nonsensical values (programmer error).
//   - Options fields are unexported; entry points consume ...Option.

package assign

import "go.uber.org/zap"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultNoAlias keeps the conservative aliasing check enabled.
	DefaultNoAlias = false

	// DefaultResize fails on a shape mismatch instead of resizing.
	DefaultResize = false
)

const panicLoggerNil = "assign: WithLogger: nil logger"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	noAlias bool
	resize  bool
	log     *zap.Logger
}

// WithNoAlias asserts that the expression does not reference the
// destination's storage. The aliasing check is skipped and the result is
// written in place. If the assertion is false the result is undefined.
func WithNoAlias() Option {
	return func(o *Options) { o.noAlias = true }
}

// WithResize resizes a destination implementing expr.ResizableMatrix (or
// expr.ResizableVector) to the expression's shape instead of failing with
// core.ErrShapeMismatch. Accumulation never resizes.
func WithResize() Option {
	return func(o *Options) { o.resize = true }
}

// WithLogger routes debug traces (strategy, aliasing decision, temporaries)
// to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.log = l }
}

func gatherOptions(opts ...Option) Options {
	o := Options{noAlias: DefaultNoAlias, resize: DefaultResize, log: zap.NewNop()}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
