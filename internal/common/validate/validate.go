// Released under an MIT license. See LICENSE.

// Package validate checks argument lists.
package validate

import (
	"fmt"

	"github.com/michaelmacinnis/value/internal/common/type/list"
	"github.com/michaelmacinnis/value/internal/common/type/value"
)

// ArityError reports an argument list of the wrong length.
type ArityError struct {
	Expected string
	Passed   int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("expected %s, passed %d", e.Expected, e.Passed)
}

// Variadic returns the first min to max elements of actual and the rest
// of the list.
func Variadic(actual value.T, min, max int) ([]value.T, value.T, error) {
	expected := make([]value.T, 0, max)

	for i := 0; i < max; i++ {
		if !actual.IsPair() {
			if i < min {
				return nil, actual, &ArityError{
					Expected: Count(min, "argument", "s"),
					Passed:   i,
				}
			}

			break
		}

		car, _ := actual.Car()
		expected = append(expected, car)

		actual, _ = actual.Cdr()
	}

	return expected, actual, nil
}

// Fixed returns the elements of actual, which must have between min and
// max elements.
func Fixed(actual value.T, min, max int) ([]value.T, error) {
	expected, rest, err := Variadic(actual, min, max)
	if err != nil {
		return nil, err
	}

	if !rest.IsEmpty() {
		n, _ := list.Length(actual)

		return nil, &ArityError{
			Expected: Count(max, "argument", "s"),
			Passed:   int(n),
		}
	}

	return expected, nil
}

// Count returns n followed by label, pluralized with p if n is not 1.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}
