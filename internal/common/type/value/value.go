// Released under an MIT license. See LICENSE.

// Package value provides the tagged value type: empty, atom or pair.
//
// Pairs share their cell. Assigning or cloning a pair value yields another
// reference to the same cell, so changes made with SetCar and SetCdr are
// seen through every reference. Assigning an atom value also shares its
// payload; Clone is the way to get an independent atom.
package value

import (
	"github.com/michaelmacinnis/value/internal/common/interface/atomic"
	"github.com/michaelmacinnis/value/internal/common/type/erased"
)

// Kind is the variant of a value.
type Kind uint8

// Value variants.
const (
	KindEmpty Kind = iota
	KindAtom
	KindPair
)

// String returns the name of the kind k.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindAtom:
		return "atom"
	case KindPair:
		return "pair"
	}

	return "unknown"
}

// T (value) is empty, an atom or a pair. The zero T is empty.
type T struct {
	kind Kind
	atom erased.T
	pair *cell
}

type value = T

// Empty returns the empty value.
func Empty() T {
	return T{}
}

// Atom wraps v as an atom.
func Atom[V atomic.I[V]](v V) T {
	return FromHandle(erased.Wrap(v))
}

// FromHandle creates an atom from an existing handle. If h holds nothing
// the result is empty.
func FromHandle(h erased.T) T {
	if !h.Valid() {
		return T{}
	}

	return T{kind: KindAtom, atom: h}
}

// Cons allocates a new cell holding car and cdr and returns it as a pair.
func Cons(car, cdr T) T {
	return T{kind: KindPair, pair: allocate(car, cdr)}
}

// AtomRef returns a copy of v's payload if v is an atom holding a V.
func AtomRef[V atomic.I[V]](v T) (V, bool) {
	if v.kind != KindAtom {
		var zero V

		return zero, false
	}

	return erased.Ref[V](v.atom)
}

// AtomMut returns a pointer to v's payload if v is an atom holding a V.
// Changes are seen by every value sharing v's payload. An atom returned by
// Car or Cdr is a duplicate, so changing it leaves the pair unchanged; use
// SetCar or SetCdr to replace a slot.
func AtomMut[V atomic.I[V]](v T) (*V, bool) {
	if v.kind != KindAtom {
		return nil, false
	}

	return erased.Mut[V](v.atom)
}

// AtomClone returns a duplicate of v's handle if v is an atom.
func (v value) AtomClone() (erased.T, bool) {
	if v.kind != KindAtom {
		return erased.T{}, false
	}

	return v.atom.Duplicate(), true
}

// AtomType returns the tag of v's payload if v is an atom.
func (v value) AtomType() (erased.Tag, bool) {
	if v.kind != KindAtom {
		return erased.Tag{}, false
	}

	return v.atom.Tag(), true
}

// Car returns a copy of the head of v if v is a pair. An atom in the head
// is duplicated, so AtomMut on the result cannot change the pair.
func (v value) Car() (T, bool) {
	if v.kind != KindPair {
		return T{}, false
	}

	return v.pair.getHead(), true
}

// Cdr returns a copy of the tail of v if v is a pair. Like Car, an atom
// in the tail is duplicated.
func (v value) Cdr() (T, bool) {
	if v.kind != KindPair {
		return T{}, false
	}

	return v.pair.getTail(), true
}

// Clone returns a copy of v. Atoms are duplicated. Pairs share their cell.
func (v value) Clone() T {
	switch v.kind {
	case KindAtom:
		return T{kind: KindAtom, atom: v.atom.Duplicate()}
	case KindPair:
		return T{kind: KindPair, pair: v.pair}
	}

	return T{}
}

// Equal returns true if v and o are both empty, are atoms with equal
// payloads, or are pairs referencing the same cell.
func (v value) Equal(o T) bool {
	if v.kind != o.kind {
		return false
	}

	switch v.kind {
	case KindAtom:
		return v.atom.Equal(o.atom)
	case KindPair:
		return v.pair == o.pair
	}

	return true
}

// IsAtom returns true if v is an atom.
func (v value) IsAtom() bool {
	return v.kind == KindAtom
}

// IsEmpty returns true if v is empty.
func (v value) IsEmpty() bool {
	return v.kind == KindEmpty
}

// IsPair returns true if v is a pair.
func (v value) IsPair() bool {
	return v.kind == KindPair
}

// Kind returns the variant of v.
func (v value) Kind() Kind {
	return v.kind
}

// Payload returns v's payload as an interface value, if v is an atom.
func (v value) Payload() (any, bool) {
	if v.kind != KindAtom {
		return nil, false
	}

	return v.atom.Payload(), true
}

// Same returns true if v and o are both empty or are references to the
// same payload or cell.
func (v value) Same(o T) bool {
	if v.kind != o.kind {
		return false
	}

	switch v.kind {
	case KindAtom:
		return v.atom.Same(o.atom)
	case KindPair:
		return v.pair == o.pair
	}

	return true
}

// SetCar replaces the head of v's cell with n. If v is not a pair the
// error returned is a *NotPairError holding n.
func (v value) SetCar(n T) error {
	if v.kind != KindPair {
		return &NotPairError{Op: "set-car", Kind: v.kind, Rejected: n}
	}

	v.pair.setHead(n)

	return nil
}

// SetCdr replaces the tail of v's cell with n. If v is not a pair the
// error returned is a *NotPairError holding n.
func (v value) SetCdr(n T) error {
	if v.kind != KindPair {
		return &NotPairError{Op: "set-cdr", Kind: v.kind, Rejected: n}
	}

	v.pair.setTail(n)

	return nil
}
