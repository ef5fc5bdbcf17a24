// Released under an MIT license. See LICENSE.

// Package traceable defines the protocol between values and a tracing collector.
package traceable

// I (traceable) is anything a tracing collector can reach.
//
// Trace reports every managed allocation directly reachable from the
// receiver to m. Root and Unroot are called when a value starts or stops
// being held outside the managed heap. Finalize is called once, by the
// collector, before an unreachable allocation is forgotten.
type I interface {
	Trace(m Marker)
	Root()
	Unroot()
	Finalize()
}

// Marker is the collector's cycle-safe entry point for a trace pass.
// Mark must call o.Trace at most once per pass for any given o.
type Marker interface {
	Mark(o I)
}
