// Released under an MIT license. See LICENSE.

// Package ref provides a mutable reference payload that holds a value.
//
// The value is kept in a managed slot. Like a pair's cell, the slot is
// registered with the collector and reached by marking, so a ref that
// holds itself, directly or through other values, is traced once per pass.
package ref

import (
	"sync"

	"github.com/michaelmacinnis/value/internal/common/interface/atomic"
	"github.com/michaelmacinnis/value/internal/common/interface/collector"
	"github.com/michaelmacinnis/value/internal/common/interface/literal"
	"github.com/michaelmacinnis/value/internal/common/interface/traceable"
	"github.com/michaelmacinnis/value/internal/common/type/value"
)

const name = "ref"

// T (ref) holds a value.
type T struct {
	sync.RWMutex
	s *slot

	printing bool
}

type ref = T

// slot is the managed allocation behind a ref.
type slot struct {
	owner *T
	v     value.T
}

// New creates a new ref holding v.
func New(v value.T) *T {
	r := &ref{}
	r.s = &slot{owner: r, v: v}

	collector.Current().Allocate(r.s)

	return r
}

// Duplicate creates a new ref holding a clone of r's value.
func (r *ref) Duplicate() *T {
	return New(r.Get().Clone())
}

// Equal returns true if o is r. Refs, like pairs, compare by identity.
func (r *ref) Equal(o *T) bool {
	return r == o
}

// Get returns the value held by r.
func (r *ref) Get() value.T {
	r.RLock()
	defer r.RUnlock()

	return r.s.v
}

// Literal returns the literal representation of the ref r.
// A ref reached again while it is being written is shown as #<cycle>.
func (r *ref) Literal() string {
	r.Lock()

	if r.printing {
		r.Unlock()

		return "(|" + name + " #<cycle>|)"
	}

	r.printing = true
	v := r.s.v

	r.Unlock()

	s := v.Literal()

	r.Lock()
	r.printing = false
	r.Unlock()

	return "(|" + name + " " + s + "|)"
}

// Name returns the type name for the ref r.
func (r *ref) Name() string {
	return name
}

// Set replaces the value held by r with v.
func (r *ref) Set(v value.T) {
	r.Lock()
	defer r.Unlock()

	r.s.v = v
}

// Trace hands r's slot to m.
func (r *ref) Trace(m traceable.Marker) {
	m.Mark(r.s)
}

// Root tells the current collector that r's slot is held outside the
// managed heap.
func (r *ref) Root() {
	collector.Current().Root(r.s)
}

// Unroot reverses a previous call to Root.
func (r *ref) Unroot() {
	collector.Current().Unroot(r.s)
}

// Finalize does nothing. The value held by r is finalized with r's slot.
func (r *ref) Finalize() {}

func (s *slot) Trace(m traceable.Marker) {
	s.owner.Get().Trace(m)
}

func (s *slot) Root() {}

func (s *slot) Unroot() {}

func (s *slot) Finalize() {
	s.owner.Get().Finalize()
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t ref

	// The ref type can be stored in an atom.
	_ = atomic.I[*ref](&t)

	// The ref type has a literal representation.
	_ = literal.I(&t)

	// The slot type is traceable.
	_ = traceable.I(&slot{})
}
