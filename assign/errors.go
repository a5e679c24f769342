// SPDX-License-Identifier: MIT

package assign

import "github.com/cockroachdb/errors"

// ErrUnknownOp is returned by Accumulate and AccumulateVector for an Op that
// is not one of the declared accumulation operators.
var ErrUnknownOp = errors.New("assign: unknown accumulation operator")
