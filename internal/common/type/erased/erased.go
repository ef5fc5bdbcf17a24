// Released under an MIT license. See LICENSE.

// Package erased stores payloads of any atomic type behind one handle type.
//
// The only way back to the concrete type is through Ref or Mut. Both
// compare tags before the payload is touched.
package erased

import (
	"fmt"
	"reflect"

	"github.com/michaelmacinnis/value/internal/common/interface/atomic"
	"github.com/michaelmacinnis/value/internal/common/interface/traceable"
)

// T (erased) is a handle for a payload of some atomic type.
// The zero T holds nothing and matches no type.
type T struct {
	b boxed
}

type erased = T

type boxed interface {
	traceable.I

	duplicate() boxed
	equal(o boxed) bool
	payload() any
	tag() Tag
}

type box[V atomic.I[V]] struct {
	v V
}

// Wrap erases the type of v.
func Wrap[V atomic.I[V]](v V) T {
	return T{b: &box[V]{v: v}}
}

// Ref returns a copy of the payload in h if h holds a V.
func Ref[V atomic.I[V]](h T) (V, bool) {
	p, ok := Mut[V](h)
	if !ok {
		var zero V

		return zero, false
	}

	return *p, true
}

// Mut returns a pointer to the payload in h if h holds a V.
// Changes made through the pointer are visible to every copy of h.
func Mut[V atomic.I[V]](h T) (*V, bool) {
	if h.b == nil || h.b.tag() != TagOf[V]() {
		return nil, false
	}

	b, ok := h.b.(*box[V])
	if !ok {
		panic(fmt.Sprintf(
			"erased: tag %s matched but payload is %s",
			TagOf[V](), reflect.TypeOf(h.b),
		))
	}

	return &b.v, true
}

// Duplicate returns a new handle holding an independent copy of h's payload.
func (h erased) Duplicate() T {
	if h.b == nil {
		return h
	}

	return T{b: h.b.duplicate()}
}

// Equal returns true if h and o hold payloads of the same type that are equal.
func (h erased) Equal(o T) bool {
	if h.b == nil || o.b == nil {
		return h.b == o.b
	}

	return h.b.tag() == o.b.tag() && h.b.equal(o.b)
}

// Payload returns h's payload as an interface value.
func (h erased) Payload() any {
	if h.b == nil {
		return nil
	}

	return h.b.payload()
}

// Same returns true if h and o are copies of the same handle.
func (h erased) Same(o T) bool {
	return h.b == o.b
}

// Tag returns the tag of the payload's type.
func (h erased) Tag() Tag {
	if h.b == nil {
		return Tag{}
	}

	return h.b.tag()
}

// Valid returns true if h holds a payload.
func (h erased) Valid() bool {
	return h.b != nil
}

// Trace forwards to the payload.
func (h erased) Trace(m traceable.Marker) {
	if h.b != nil {
		h.b.Trace(m)
	}
}

// Root forwards to the payload.
func (h erased) Root() {
	if h.b != nil {
		h.b.Root()
	}
}

// Unroot forwards to the payload.
func (h erased) Unroot() {
	if h.b != nil {
		h.b.Unroot()
	}
}

// Finalize forwards to the payload.
func (h erased) Finalize() {
	if h.b != nil {
		h.b.Finalize()
	}
}

func (b *box[V]) Trace(m traceable.Marker) {
	b.v.Trace(m)
}

func (b *box[V]) Root() {
	b.v.Root()
}

func (b *box[V]) Unroot() {
	b.v.Unroot()
}

func (b *box[V]) Finalize() {
	b.v.Finalize()
}

func (b *box[V]) duplicate() boxed {
	return &box[V]{v: b.v.Duplicate()}
}

func (b *box[V]) equal(o boxed) bool {
	ob, ok := o.(*box[V])
	if !ok {
		return false
	}

	if e, ok := any(b.v).(interface{ Equal(V) bool }); ok {
		return e.Equal(ob.v)
	}

	return reflect.DeepEqual(b.v, ob.v)
}

func (b *box[V]) payload() any {
	return b.v
}

func (b *box[V]) tag() Tag {
	return TagOf[V]()
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t erased

	// The erased type is traceable.
	_ = traceable.I(t)
}
