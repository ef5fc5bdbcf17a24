// Released under an MIT license. See LICENSE.

package value

import (
	"github.com/michaelmacinnis/value/internal/common/interface/collector"
	"github.com/michaelmacinnis/value/internal/common/interface/traceable"
)

// Allocation returns the managed allocation behind v if v is a pair.
func (v value) Allocation() (traceable.I, bool) {
	if v.kind != KindPair {
		return nil, false
	}

	return v.pair, true
}

// Trace reports what v references to m. A pair's cell is handed to m,
// which decides whether it still needs to be traced in this pass.
func (v value) Trace(m traceable.Marker) {
	switch v.kind {
	case KindAtom:
		v.atom.Trace(m)
	case KindPair:
		m.Mark(v.pair)
	}
}

// Root tells the current collector that v is held outside the managed heap.
func (v value) Root() {
	switch v.kind {
	case KindAtom:
		v.atom.Root()
	case KindPair:
		collector.Current().Root(v.pair)
	}
}

// Unroot reverses a previous call to Root.
func (v value) Unroot() {
	switch v.kind {
	case KindAtom:
		v.atom.Unroot()
	case KindPair:
		collector.Current().Unroot(v.pair)
	}
}

// Finalize forwards to v's payload if v is an atom.
func (v value) Finalize() {
	if v.kind == KindAtom {
		v.atom.Finalize()
	}
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t value

	// The value type is traceable.
	_ = traceable.I(t)

	// The cell type is traceable.
	_ = traceable.I(&cell{})
}
