// SPDX-License-Identifier: MIT

package core

import "sync/atomic"

// ID is the stable identity token of one storage backend. The aliasing check
// compares IDs, never element values.
type ID uint64

// NoID never identifies a storage; read-only views and expressions report it
// as their own storage.
const NoID ID = 0

var lastID atomic.Uint64

// NewID returns a process-unique storage identity.
func NewID() ID {
	return ID(lastID.Add(1))
}
