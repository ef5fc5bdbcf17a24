// Released under an MIT license. See LICENSE.

package validate

import (
	"errors"
	"testing"

	"github.com/michaelmacinnis/value/internal/common/type/list"
	"github.com/michaelmacinnis/value/internal/common/type/sym"
	"github.com/michaelmacinnis/value/internal/common/type/value"
)

func words(ws ...string) value.T {
	vs := make([]value.T, 0, len(ws))
	for _, w := range ws {
		vs = append(vs, value.Atom(sym.New(w)))
	}

	return list.New(vs...)
}

func TestFixed(t *testing.T) {
	v, err := Fixed(words("a", "b"), 1, 2)
	if err != nil || len(v) != 2 {
		t.Fatalf("%v, %v", v, err)
	}

	_, err = Fixed(words("a", "b", "c"), 1, 2)

	var ae *ArityError
	if !errors.As(err, &ae) || ae.Passed != 3 {
		t.Fatalf("%v", err)
	}

	if err.Error() != "expected 2 arguments, passed 3" {
		t.Fatal(err.Error())
	}
}

func TestVariadic(t *testing.T) {
	v, rest, err := Variadic(words("a", "b", "c"), 1, 1)
	if err != nil || len(v) != 1 || rest.String() != "(b c)" {
		t.Fatalf("%v, %s, %v", v, rest, err)
	}

	_, _, err = Variadic(value.Empty(), 1, 1)
	if err == nil || err.Error() != "expected 1 argument, passed 0" {
		t.Fatalf("%v", err)
	}
}

func TestCount(t *testing.T) {
	if Count(1, "cell", "s") != "1 cell" || Count(2, "cell", "s") != "2 cells" {
		t.Fail()
	}
}
