// Released under an MIT license. See LICENSE.

// Package boolean provides a boolean payload.
package boolean

import (
	"fmt"

	"github.com/michaelmacinnis/value/internal/common/interface/atomic"
	"github.com/michaelmacinnis/value/internal/common/interface/literal"
	"github.com/michaelmacinnis/value/internal/common/interface/traceable"
)

const name = "boolean"

// T (boolean) wraps Go's bool type.
type T bool

type boolean = T

//nolint:gochecknoglobals
var (
	False = f()
	True  = t()
)

// Bool returns the boolean for the bool b.
func Bool(b bool) *T {
	if b {
		return True
	}

	return False
}

// New returns the boolean named by s.
func New(s string) (*T, error) {
	b, ok := map[string]*boolean{
		"true":  True,
		"false": False,
	}[s]

	if ok {
		return b, nil
	}

	return nil, fmt.Errorf("%s is not $'true' or $'false'", s)
}

// Bool returns the boolean value of the boolean b.
func (b *boolean) Bool() bool {
	return bool(*b)
}

// Duplicate returns b. Booleans are immutable.
func (b *boolean) Duplicate() *T {
	return Bool(b.Bool())
}

// Equal returns true if o has the same value as b.
func (b *boolean) Equal(o *T) bool {
	return o != nil && b.Bool() == o.Bool()
}

// Literal returns the literal representation of the boolean b.
func (b *boolean) Literal() string {
	return "(|" + name + " " + b.String() + "|)"
}

// Name returns the type name for the boolean b.
func (b *boolean) Name() string {
	return name
}

// String returns the text of the boolean b.
func (b *boolean) String() string {
	if bool(*b) {
		return "true"
	}

	return "false"
}

// Trace does nothing.
func (b *boolean) Trace(traceable.Marker) {}

// Root does nothing.
func (b *boolean) Root() {}

// Unroot does nothing.
func (b *boolean) Unroot() {}

// Finalize does nothing.
func (b *boolean) Finalize() {}

func f() *boolean {
	v := boolean(false)

	return &v
}

func t() *boolean {
	v := boolean(true)

	return &v
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t boolean

	// The boolean type can be stored in an atom.
	_ = atomic.I[*boolean](&t)

	// The boolean type has a literal representation.
	_ = literal.I(&t)
}
