// Released under an MIT license. See LICENSE.

package str

import (
	"testing"
)

func TestDuplicate(t *testing.T) {
	s := New("hello")
	d := s.Duplicate()

	if d == s || !d.Equal(s) {
		t.Fail()
	}
}

func TestLiteral(t *testing.T) {
	if l := New("hello").Literal(); l != "$'hello'" {
		t.Fatal(l)
	}
}
