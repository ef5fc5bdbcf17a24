// Released under an MIT license. See LICENSE.

// Package census provides a collector that follows the trace protocol and
// reports what it finds. It never frees anything itself. Allocations it
// releases are left to the Go runtime.
package census

import (
	"fmt"

	"github.com/michaelmacinnis/value/internal/common/interface/collector"
	"github.com/michaelmacinnis/value/internal/common/interface/traceable"
)

// Report summarizes a trace pass.
type Report struct {
	Allocated   int
	Rooted      int
	Reachable   int
	Unreachable int
	Marks       int
	Traces      int
}

// String returns a one line summary of the report r.
func (r Report) String() string {
	return fmt.Sprintf(
		"allocated %d, rooted %d, reachable %d, unreachable %d, marks %d, traces %d",
		r.Allocated, r.Rooted, r.Reachable, r.Unreachable, r.Marks, r.Traces,
	)
}

// T (census) tracks allocations and roots and performs trace passes.
type T struct {
	objects []traceable.I
	known   map[traceable.I]bool
	roots   map[traceable.I]int
	marked  map[traceable.I]bool
	marks   map[traceable.I]int
	traces  map[traceable.I]int
}

type census = T

// New creates a new census.
func New() *T {
	return &census{
		known:  map[traceable.I]bool{},
		roots:  map[traceable.I]int{},
		marked: map[traceable.I]bool{},
		marks:  map[traceable.I]int{},
		traces: map[traceable.I]int{},
	}
}

// Allocate records o as a managed allocation.
func (c *census) Allocate(o traceable.I) {
	if c.known[o] {
		panic("census: allocation registered twice")
	}

	c.known[o] = true
	c.objects = append(c.objects, o)
}

// Root records that o is held outside the managed heap.
func (c *census) Root(o traceable.I) {
	c.roots[o]++
}

// Unroot reverses a previous call to Root.
func (c *census) Unroot(o traceable.I) {
	n, ok := c.roots[o]
	if !ok {
		panic("census: unroot without matching root")
	}

	if n == 1 {
		delete(c.roots, o)
	} else {
		c.roots[o] = n - 1
	}
}

// Mark marks o and, the first time o is marked in a pass, traces it.
func (c *census) Mark(o traceable.I) {
	c.marks[o]++

	if c.marked[o] {
		return
	}

	c.marked[o] = true
	c.traces[o]++

	o.Trace(c)
}

// Marked returns true if o was reached in the most recent pass.
func (c *census) Marked(o traceable.I) bool {
	return c.marked[o]
}

// Roots returns the number of times o is currently rooted.
func (c *census) Roots(o traceable.I) int {
	return c.roots[o]
}

// Marks returns the number of times o was handed to Mark in the most
// recent pass.
func (c *census) Marks(o traceable.I) int {
	return c.marks[o]
}

// Traces returns the number of times o was traced in the most recent pass.
func (c *census) Traces(o traceable.I) int {
	return c.traces[o]
}

// Pass traces everything reachable from the roots.
func (c *census) Pass() Report {
	c.marked = map[traceable.I]bool{}
	c.marks = map[traceable.I]int{}
	c.traces = map[traceable.I]int{}

	for o := range c.roots {
		c.Mark(o)
	}

	r := Report{
		Allocated: len(c.objects),
		Rooted:    len(c.roots),
	}

	for _, o := range c.objects {
		if c.marked[o] {
			r.Reachable++
		} else {
			r.Unreachable++
		}
	}

	for _, n := range c.marks {
		r.Marks += n
	}

	for _, n := range c.traces {
		r.Traces += n
	}

	return r
}

// Release performs a pass, then finalizes and forgets every allocation
// that was not reached. It returns the number of allocations released.
func (c *census) Release() int {
	c.Pass()

	kept := c.objects[:0]
	released := []traceable.I{}

	for _, o := range c.objects {
		if c.marked[o] {
			kept = append(kept, o)
		} else {
			released = append(released, o)
		}
	}

	for i := len(kept); i < len(c.objects); i++ {
		c.objects[i] = nil
	}

	c.objects = kept

	for _, o := range released {
		delete(c.known, o)
		o.Finalize()
	}

	return len(released)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t census

	// The census type is a collector.
	_ = collector.I(&t)

	// The census type is a marker.
	_ = traceable.Marker(&t)
}
