// Released under an MIT license. See LICENSE.

package value

import (
	"errors"
)

// ErrNotPair is wrapped by every *NotPairError.
var ErrNotPair = errors.New("not a pair") //nolint:gochecknoglobals

// NotPairError is returned when a pair operation is applied to an empty
// value or an atom. Rejected is the value the caller tried to store.
type NotPairError struct {
	Op       string
	Kind     Kind
	Rejected T
}

func (e *NotPairError) Error() string {
	return e.Op + ": " + e.Kind.String() + " is " + ErrNotPair.Error()
}

func (e *NotPairError) Unwrap() error {
	return ErrNotPair
}
