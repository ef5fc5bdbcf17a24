// Released under an MIT license. See LICENSE.

// Package str provides a string payload.
package str

import (
	"fmt"

	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/value/internal/common/interface/atomic"
	"github.com/michaelmacinnis/value/internal/common/interface/literal"
	"github.com/michaelmacinnis/value/internal/common/interface/traceable"
)

const name = "string"

// T (str) wraps Go's string type.
type T string

type str = T

// New creates a new str.
func New(v string) *T {
	s := str(v)

	return &s
}

// Duplicate returns a new str with the same text.
func (s *str) Duplicate() *T {
	return New(s.String())
}

// Equal returns true if o has the same text as s.
func (s *str) Equal(o *T) bool {
	return o != nil && s.String() == o.String()
}

// Literal returns the literal representation of the str s.
func (s *str) Literal() string {
	return adapted.CanonicalString(string(*s))
}

// Name returns the name of the str type.
func (s *str) Name() string {
	return name
}

// String returns the text of the str s.
func (s *str) String() string {
	return string(*s)
}

// Trace does nothing. Strings hold no references.
func (s *str) Trace(traceable.Marker) {}

// Root does nothing.
func (s *str) Root() {}

// Unroot does nothing.
func (s *str) Unroot() {}

// Finalize does nothing.
func (s *str) Finalize() {}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t str

	// The str type can be stored in an atom.
	_ = atomic.I[*str](&t)

	// The str type has a literal representation.
	_ = literal.I(&t)

	// The str type is a stringer.
	_ = fmt.Stringer(&t)
}
