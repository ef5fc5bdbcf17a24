// Released under an MIT license. See LICENSE.

// Package sym provides an interned symbol payload.
package sym

import (
	"fmt"
	"sync"

	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/value/internal/common/interface/atomic"
	"github.com/michaelmacinnis/value/internal/common/interface/literal"
	"github.com/michaelmacinnis/value/internal/common/interface/traceable"
)

const (
	name  = "symbol"
	short = 3
)

// T (sym) wraps Go's string type. Short and common strings are interned.
type T string

type sym = T

// New creates a sym.
func New(v string) *T {
	return symnew(v)
}

// Duplicate returns s. Symbols are immutable so they can be shared.
func (s *sym) Duplicate() *T {
	return s
}

// Equal returns true if o has the same text as s.
func (s *sym) Equal(o *T) bool {
	return o != nil && s.String() == o.String()
}

// Literal returns the literal representation of the sym s.
func (s *sym) Literal() string {
	return repr(string(*s))
}

// Name returns the type name for the sym s.
func (s *sym) Name() string {
	return name
}

// String returns the text of the sym s.
func (s *sym) String() string {
	return string(*s)
}

// Trace does nothing. Symbols hold no references.
func (s *sym) Trace(traceable.Marker) {}

// Root does nothing.
func (s *sym) Root() {}

// Unroot does nothing.
func (s *sym) Unroot() {}

// Finalize does nothing.
func (s *sym) Finalize() {}

//nolint:gochecknoglobals
var (
	cache  = map[string]*sym{}
	cachel = &sync.RWMutex{}
)

func meta(s string) string {
	return "(|" + name + " " + s + "|)"
}

func repr(s string) string {
	q := adapted.CanonicalString(s)

	if len(s) == 0 {
		return meta(q)
	}

	for _, r := range s {
		if r == ' ' || r == '(' || r == ')' {
			return meta(q)
		}
	}

	if q[2:len(q)-1] != s {
		return meta(q)
	}

	return s
}

func symnew(v string) *sym {
	p, ok, cacheable := symtry(v)
	if !ok {
		if cacheable {
			cachel.Lock()
			defer cachel.Unlock()

			if p, ok = cache[v]; ok {
				return p
			}
		}

		s := sym(v)
		p = &s

		if cacheable {
			cache[v] = p
		}
	}

	return p
}

func symtry(v string) (p *sym, ok bool, cacheable bool) {
	cachel.RLock()
	defer cachel.RUnlock()

	cacheable = len(v) <= short

	p, ok = cache[v]

	return
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t sym

	// The sym type can be stored in an atom.
	_ = atomic.I[*sym](&t)

	// The sym type has a literal representation.
	_ = literal.I(&t)

	// The sym type is a stringer.
	_ = fmt.Stringer(&t)
}
