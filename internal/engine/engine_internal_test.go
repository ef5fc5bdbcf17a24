// Released under an MIT license. See LICENSE.

package engine

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/michaelmacinnis/value/internal/common/type/num"
	"github.com/michaelmacinnis/value/internal/common/type/value"
)

func session(t *testing.T) (*T, *bytes.Buffer) {
	out := &bytes.Buffer{}

	e := New(out, 80)
	t.Cleanup(e.Close)

	return e, out
}

func run(t *testing.T, e *T, lines ...string) {
	t.Helper()

	for _, line := range lines {
		if err := e.Evaluate(line); err != nil {
			t.Fatalf("%s: %v", line, err)
		}
	}
}

func TestBuildList(t *testing.T) {
	e, out := session(t)

	run(t, e,
		"num a 3; num b 4",
		"cons tail b ()",
		"cons l a tail",
		"show l",
		"length l",
	)

	if out.String() != "(3 4)\n2\n" {
		t.Fatalf("output: %q", out.String())
	}

	l, _ := e.Lookup("l")

	car, _ := l.Car()
	if n, ok := value.AtomRef[*num.T](car); !ok || !n.Equal(num.Int(3)) {
		t.Fatal("car of l is not 3")
	}
}

func TestSetCarThroughAlias(t *testing.T) {
	e, out := session(t)

	run(t, e,
		"num a 1; str x hello",
		"list l a",
		"clone m l",
		"set-car m x",
		"show l",
	)

	if out.String() != "($'hello')\n" {
		t.Fatalf("output: %q", out.String())
	}
}

func TestCloneAtom(t *testing.T) {
	e, _ := session(t)

	run(t, e, "num a 1", "clone b a")

	a, _ := e.Lookup("a")
	b, _ := e.Lookup("b")

	if !a.Equal(b) || a.Same(b) {
		t.Fatal("clone of an atom is not an independent copy")
	}
}

func TestCensusAndRelease(t *testing.T) {
	e, out := session(t)

	run(t, e,
		"num a 1",
		"list l a a a",
		"set-cdr l l",
		"show l",
		"census",
		"drop l",
		"release",
		"census",
	)

	expected := strings.Join([]string{
		"(1 . #<cycle>)",
		"allocated 3, rooted 1, reachable 1, unreachable 2, marks 2, traces 1",
		"released 3",
		"allocated 0, rooted 0, reachable 0, unreachable 0, marks 0, traces 0",
		"",
	}, "\n")

	if out.String() != expected {
		t.Fatalf("output: %q", out.String())
	}
}

func TestRefKeepsCellsAlive(t *testing.T) {
	e, out := session(t)

	run(t, e,
		"list l ()",
		"ref r l",
		"drop l",
		"release",
		"deref l2 r",
		"show l2",
		"set-ref r ()",
		"drop l2",
		"release",
	)

	if out.String() != "released 0\n(())\nreleased 1\n" {
		t.Fatalf("output: %q", out.String())
	}
}

func TestRefHoldingItself(t *testing.T) {
	e, out := session(t)

	done := make(chan error, 1)

	go func() {
		done <- e.Evaluate("empty x; ref r x; set-ref r r; show r; census; drop r; release")
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatal(err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("set-ref r r did not return")
	}

	expected := strings.Join([]string{
		"(|ref (|ref #<cycle>|)|)",
		"allocated 1, rooted 1, reachable 1, unreachable 0, marks 2, traces 1",
		"released 1",
		"",
	}, "\n")

	if out.String() != expected {
		t.Fatalf("output: %q", out.String())
	}
}

func TestPairOperationsOnAtoms(t *testing.T) {
	e, _ := session(t)

	run(t, e, "num a 1")

	for _, line := range []string{"car x a", "cdr x a", "set-car a a", "set-cdr a a"} {
		if err := e.Evaluate(line); !errors.Is(err, value.ErrNotPair) {
			t.Errorf("%s: %v", line, err)
		}
	}
}

func TestErrors(t *testing.T) {
	e, _ := session(t)

	for line, message := range map[string]string{
		"frobnicate":   "frobnicate: unknown command",
		"num a":        "num: expected 2 arguments, passed 1",
		"num a b c":    "num: expected 2 arguments, passed 3",
		"num a x":      `num: "x" is not a valid number`,
		"show missing": "show: missing: no such register",
		"empty ()":     "empty: cannot assign to ()",
		"length ()":    "",
		"deref x ()":   "deref: (): not a ref",
		"bool b maybe": "bool: maybe is not $'true' or $'false'",
	} {
		err := e.Evaluate(line)
		if message == "" {
			if err != nil {
				t.Errorf("%s: %v", line, err)
			}

			continue
		}

		if err == nil || err.Error() != message {
			t.Errorf("%s: expected %q, got %v", line, message, err)
		}
	}
}

func TestQuitAndComments(t *testing.T) {
	e, out := session(t)

	if err := e.Evaluate("# nothing to see here"); err != nil {
		t.Fatal(err)
	}

	if err := e.Evaluate("   "); err != nil {
		t.Fatal(err)
	}

	if err := e.Evaluate("quit; show nothing"); !errors.Is(err, ErrQuit) {
		t.Fatal(err)
	}

	if out.Len() != 0 {
		t.Fatalf("output: %q", out.String())
	}
}

func TestRegistersAndType(t *testing.T) {
	e, out := session(t)

	run(t, e,
		"num n1 1; num n2 2; sym s a",
		"cons p n1 n2",
		"registers n*",
		"type s",
		"type p",
	)

	expected := "n1 atom\nn2 atom\natom *sym.T\npair\n"
	if out.String() != expected {
		t.Fatalf("output: %q", out.String())
	}
}

func TestTruncate(t *testing.T) {
	out := &bytes.Buffer{}

	e := New(out, 8)
	defer e.Close()

	run(t, e, "num a 1", "list l a a a a a", "show l")

	if out.String() != "(1 1 ...\n" {
		t.Fatalf("output: %q", out.String())
	}
}

func TestVerbs(t *testing.T) {
	e, out := session(t)

	verbs := e.Verbs()
	if len(verbs) != len(commands) || verbs[0] != "bool" {
		t.Fatal(verbs)
	}

	run(t, e, "help")

	if !strings.Contains(out.String(), "cons NAME CAR CDR\n") {
		t.Fatal(out.String())
	}
}
