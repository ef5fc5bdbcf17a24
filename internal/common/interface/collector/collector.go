// Released under an MIT license. See LICENSE.

// Package collector defines what values need from a tracing collector.
package collector

import (
	"github.com/michaelmacinnis/value/internal/common/interface/traceable"
)

// I (collector) is the allocation and rooting surface of a tracing collector.
type I interface {
	Allocate(o traceable.I)
	Root(o traceable.I)
	Unroot(o traceable.I)
}

// Runtime leaves reclamation to the Go runtime. Cycles are collected but
// nothing is ever finalized.
//
//nolint:gochecknoglobals
var Runtime I = runtime{}

//nolint:gochecknoglobals
var current = Runtime

// Current returns the collector new allocations are registered with.
func Current() I {
	return current
}

// Use makes c the current collector and returns the previous collector.
// A nil c restores Runtime.
func Use(c I) I {
	previous := current

	if c == nil {
		c = Runtime
	}

	current = c

	return previous
}

type runtime struct{}

func (runtime) Allocate(traceable.I) {}

func (runtime) Root(traceable.I) {}

func (runtime) Unroot(traceable.I) {}
