// Released under an MIT license. See LICENSE.

package collector

import (
	"testing"

	"github.com/michaelmacinnis/value/internal/common/interface/traceable"
)

type leaf struct{}

func (leaf) Trace(traceable.Marker) {}

func (leaf) Root() {}

func (leaf) Unroot() {}

func (leaf) Finalize() {}

type counter struct {
	allocated int
}

func (c *counter) Allocate(traceable.I) {
	c.allocated++
}

func (c *counter) Root(traceable.I) {}

func (c *counter) Unroot(traceable.I) {}

func TestUse(t *testing.T) {
	if Current() != Runtime {
		t.Fatal("Runtime is not the default collector")
	}

	c := &counter{}

	if previous := Use(c); previous != Runtime {
		t.Fatal("Use did not return the previous collector")
	}

	Current().Allocate(leaf{})

	if c.allocated != 1 {
		t.Fatal("allocation did not reach the current collector")
	}

	if previous := Use(nil); previous != c {
		t.Fatal("Use did not return the previous collector")
	}

	if Current() != Runtime {
		t.Fatal("Use(nil) did not restore Runtime")
	}
}
