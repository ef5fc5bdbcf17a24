// Released under an MIT license. See LICENSE.

// Package literal defines the interface for payloads that can be expressed as literals.
package literal

// I (literal) is any type that can be expressed as a literal.
type I interface {
	Literal() string
}

// String returns the literal representation for v, if it has one.
func String(v any) (string, bool) {
	l, ok := v.(I)
	if !ok {
		return "", false
	}

	return l.Literal(), true
}
