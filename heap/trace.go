package heap

// Traceable is the client capability the collector needs for a single
// client type T: mark/unmark/is_marked. A Traceable's Mark implementation
// is responsible for recursively marking any other Traceable it
// references via payload-stored child addresses — the heap does not walk
// arbitrary fields, it delegates graph traversal entirely to the client.
// A correct Mark must check IsMarked before recursing, or cyclic client
// graphs will not terminate; Collect does not guard against this itself.
type Traceable interface {
	Mark()
	Unmark()
	IsMarked() bool
}

// RootProvider yields the currently-reachable set of client objects of a
// single type T for one root. Collect calls Roots() once per provider at
// the start of the mark phase.
type RootProvider[T Traceable] interface {
	Roots() []T
}

// Tracer is reserved for a future relocating collector: an iterator over
// a Traceable's child addresses, to be used for updating addresses after
// a hypothetical moving collection. The current mark-and-sweep collector
// never calls Trace.
type Tracer interface {
	Trace() []Address
}
