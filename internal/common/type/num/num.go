// Released under an MIT license. See LICENSE.

// Package num provides a rational number payload.
package num

import (
	"fmt"
	"math/big"

	"github.com/michaelmacinnis/value/internal/common/interface/atomic"
	"github.com/michaelmacinnis/value/internal/common/interface/literal"
	"github.com/michaelmacinnis/value/internal/common/interface/traceable"
)

const name = "number"

// T (num) wraps Go's big.Rat type.
type T big.Rat

type num = T

// New creates a num from a string.
func New(s string) (*T, error) {
	v := &big.Rat{}

	if _, ok := v.SetString(s); !ok {
		return nil, fmt.Errorf("%q is not a valid %s", s, name)
	}

	return Rat(v), nil
}

// Int creates a num from the integer i.
func Int(i int64) *T {
	return Rat(big.NewRat(i, 1))
}

// Rat wraps the *big.Rat r as a num.
func Rat(r *big.Rat) *T {
	return (*num)(r)
}

// Duplicate returns a num with the same value that shares no storage with n.
func (n *num) Duplicate() *T {
	return Rat(new(big.Rat).Set(n.Rat()))
}

// Equal returns true if o is the same number as the num n.
func (n *num) Equal(o *T) bool {
	return o != nil && n.Rat().Cmp(o.Rat()) == 0
}

// Literal returns the literal representation of the num n.
func (n *num) Literal() string {
	return n.String()
}

// Name returns the type name for the num n.
func (n *num) Name() string {
	return name
}

// Rat returns the value of the num n as a *big.Rat.
func (n *num) Rat() *big.Rat {
	return (*big.Rat)(n)
}

// String returns the text of the num n.
func (n *num) String() string {
	return n.Rat().RatString()
}

// Trace does nothing. Numbers hold no references.
func (n *num) Trace(traceable.Marker) {}

// Root does nothing.
func (n *num) Root() {}

// Unroot does nothing.
func (n *num) Unroot() {}

// Finalize does nothing.
func (n *num) Finalize() {}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t num

	// The num type can be stored in an atom.
	_ = atomic.I[*num](&t)

	// The num type has a literal representation.
	_ = literal.I(&t)

	// The num type is a stringer.
	_ = fmt.Stringer(&t)
}
