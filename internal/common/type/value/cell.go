// Released under an MIT license. See LICENSE.

package value

import (
	"github.com/michaelmacinnis/value/internal/common/interface/collector"
	"github.com/michaelmacinnis/value/internal/common/interface/traceable"
)

// cell is the managed two-slot allocation behind every pair.
// Its address is its identity. Updating a slot never replaces the cell.
type cell struct {
	head value
	tail value
}

func allocate(head, tail value) *cell {
	c := &cell{head: head, tail: tail}

	collector.Current().Allocate(c)

	return c
}

func (c *cell) getHead() value {
	return c.head.Clone()
}

func (c *cell) getTail() value {
	return c.tail.Clone()
}

func (c *cell) setHead(v value) {
	c.head = v
}

func (c *cell) setTail(v value) {
	c.tail = v
}

// Trace reports the contents of both slots to m.
func (c *cell) Trace(m traceable.Marker) {
	c.head.Trace(m)
	c.tail.Trace(m)
}

// Root does nothing. The contents of a cell live in the managed heap and
// are only reachable by tracing. A pair value roots the cell itself.
func (c *cell) Root() {}

// Unroot does nothing.
func (c *cell) Unroot() {}

// Finalize forwards to both slots. Cells referenced from the slots are
// finalized separately, by the collector.
func (c *cell) Finalize() {
	c.head.Finalize()
	c.tail.Finalize()
}
