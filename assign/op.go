// SPDX-License-Identifier: MIT

package assign

import "github.com/katalvlaran/lvlalg/core"

// Op combines the prior destination value with the expression value during
// accumulation.
type Op uint8

// Accumulation operators.
const (
	PlusAssign   Op = iota + 1 // dst += e
	MinusAssign                // dst -= e
	TimesAssign                // dst .*= e
	DivideAssign               // dst ./= e
)

// String implements fmt.Stringer.
func (op Op) String() string {
	switch op {
	case PlusAssign:
		return "+="
	case MinusAssign:
		return "-="
	case TimesAssign:
		return ".*="
	case DivideAssign:
		return "./="
	default:
		return "op?"
	}
}

func (op Op) valid() bool { return op >= PlusAssign && op <= DivideAssign }

// multiplicative reports whether a structural zero of the expression changes
// the destination.
func (op Op) multiplicative() bool { return op == TimesAssign || op == DivideAssign }

func combine[T core.Element](op Op, old, x T) T {
	switch op {
	case MinusAssign:
		return old - x
	case TimesAssign:
		return old * x
	case DivideAssign:
		return old / x
	default:
		return old + x
	}
}
