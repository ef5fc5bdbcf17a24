// Released under an MIT license. See LICENSE.

package erased

import (
	"strings"
	"testing"

	"github.com/michaelmacinnis/value/internal/common/interface/traceable"
)

type counts struct {
	traced    int
	rooted    int
	unrooted  int
	finalized int
}

type counted struct {
	n int
	c *counts
}

func (p *counted) Duplicate() *counted {
	return &counted{n: p.n, c: p.c}
}

func (p *counted) Trace(traceable.Marker) {
	p.c.traced++
}

func (p *counted) Root() {
	p.c.rooted++
}

func (p *counted) Unroot() {
	p.c.unrooted++
}

func (p *counted) Finalize() {
	p.c.finalized++
}

type word struct {
	s string
}

func (w word) Duplicate() word {
	return w
}

func (word) Trace(traceable.Marker) {}

func (word) Root() {}

func (word) Unroot() {}

func (word) Finalize() {}

type exact int

func (e exact) Duplicate() exact {
	return e
}

// Equal compares the last digit only.
func (e exact) Equal(o exact) bool {
	return e%10 == o%10
}

func (exact) Trace(traceable.Marker) {}

func (exact) Root() {}

func (exact) Unroot() {}

func (exact) Finalize() {}

// liar claims to hold a word but does not.
type liar struct {
	box[exact]
}

func (*liar) tag() Tag {
	return TagOf[word]()
}

func TestRefMatchingType(t *testing.T) {
	h := Wrap(word{s: "hello"})

	w, ok := Ref[word](h)
	if !ok || w.s != "hello" {
		t.Fatalf("Ref[word] = %v, %v", w, ok)
	}
}

func TestRefOtherType(t *testing.T) {
	h := Wrap(word{s: "hello"})

	if _, ok := Ref[exact](h); ok {
		t.Fatal("Ref[exact] matched a word")
	}

	if p, ok := Mut[*counted](h); ok || p != nil {
		t.Fatal("Mut[*counted] matched a word")
	}
}

func TestZeroHandle(t *testing.T) {
	var h T

	if h.Valid() {
		t.Fail()
	}

	if _, ok := Ref[word](h); ok {
		t.Fail()
	}

	if h.Tag() != (Tag{}) || h.Tag().String() != "<none>" {
		t.Fail()
	}

	if h.Duplicate().Valid() {
		t.Fail()
	}

	// Forwarding on an empty handle does nothing.
	h.Trace(nil)
	h.Root()
	h.Unroot()
	h.Finalize()
}

func TestTags(t *testing.T) {
	if TagOf[word]() != TagOf[word]() {
		t.Fatal("tags for the same type differ")
	}

	if TagOf[word]() == TagOf[exact]() {
		t.Fatal("tags for different types are equal")
	}

	if TagOf[*counted]() == TagOf[counted]() {
		t.Fatal("tags for T and *T are equal")
	}

	h := Wrap(exact(3))
	if h.Tag() != TagOf[exact]() {
		t.Fatalf("tag is %s", h.Tag())
	}

	if !strings.HasSuffix(h.Tag().String(), "exact") {
		t.Fatalf("tag name is %s", h.Tag())
	}
}

func TestMutIsShared(t *testing.T) {
	h := Wrap(exact(1))
	alias := h

	p, ok := Mut[exact](h)
	if !ok {
		t.Fatal("Mut[exact] failed")
	}

	*p = 7

	if v, _ := Ref[exact](alias); v != 7 {
		t.Fatalf("alias sees %d", v)
	}
}

func TestDuplicateIsIndependent(t *testing.T) {
	c := &counts{}
	h := Wrap(&counted{n: 1, c: c})

	d := h.Duplicate()
	if d.Tag() != h.Tag() {
		t.Fatal("duplicate has a different tag")
	}

	if d.Same(h) {
		t.Fatal("duplicate is the same handle")
	}

	p, _ := Mut[*counted](h)
	(*p).n = 2

	q, _ := Ref[*counted](d)
	if q.n != 1 {
		t.Fatalf("duplicate sees %d", q.n)
	}
}

func TestForwarding(t *testing.T) {
	c := &counts{}
	h := Wrap(&counted{c: c})

	h.Trace(nil)
	h.Root()
	h.Root()
	h.Unroot()
	h.Finalize()

	if *c != (counts{traced: 1, rooted: 2, unrooted: 1, finalized: 1}) {
		t.Fatalf("counts = %+v", *c)
	}
}

func TestEqual(t *testing.T) {
	if !Wrap(exact(3)).Equal(Wrap(exact(13))) {
		t.Error("Equal method not used")
	}

	if !Wrap(word{s: "a"}).Equal(Wrap(word{s: "a"})) {
		t.Error("equal words differ")
	}

	if Wrap(word{s: "a"}).Equal(Wrap(word{s: "b"})) {
		t.Error("different words are equal")
	}

	if Wrap(exact(3)).Equal(Wrap(word{s: "3"})) {
		t.Error("different types are equal")
	}

	if !(T{}).Equal(T{}) || (T{}).Equal(Wrap(exact(0))) {
		t.Error("zero handles")
	}
}

func TestPayload(t *testing.T) {
	if (T{}).Payload() != nil {
		t.Fail()
	}

	if p, ok := Wrap(exact(5)).Payload().(exact); !ok || p != 5 {
		t.Fail()
	}
}

func TestRepresentationMismatchPanics(t *testing.T) {
	h := T{b: &liar{}}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a panic")
		}

		if !strings.Contains(r.(string), "matched") {
			t.Fatalf("unexpected panic: %v", r)
		}
	}()

	Mut[word](h)
}
