// Released under an MIT license. See LICENSE.

// Package atomic defines the capabilities required of an atom's payload.
package atomic

import (
	"github.com/michaelmacinnis/value/internal/common/interface/traceable"
)

// I (atomic) is satisfied by any type T that can be stored in an atom.
// Duplicate must return a copy that shares no mutable state with the
// receiver. The type's identity is recovered from T itself.
type I[T any] interface {
	traceable.I

	Duplicate() T
}
