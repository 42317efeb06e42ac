package heap

import "github.com/orizon-lang/managed-heap/internal/heaperr"

// config holds the options a ManagedHeap is constructed with.
type config struct {
	collectStats     bool
	checkFormat      bool
	formatConstraint string
}

// Option configures a ManagedHeap at construction time.
type Option func(*config)

// WithStats enables the lightweight allocation/collection counters
// returned by ManagedHeap.Stats. Disabled by default: opt in rather than
// pay for bookkeeping nobody reads.
func WithStats() Option {
	return func(c *config) { c.collectStats = true }
}

// WithFormatVersion asserts at construction time that this package's
// FormatVersion satisfies constraint, a semver constraint string (e.g.
// ">=1.0.0, <2.0.0"). Use this when a heap's raw bytes will be persisted
// or handed to another process that expects a specific on-wire header
// layout: construction fails loudly via heaperr rather than letting an
// incompatible layout surface later as corrupt-looking reads.
func WithFormatVersion(constraint string) Option {
	return func(c *config) {
		c.checkFormat = true
		c.formatConstraint = constraint
	}
}

// Stats is a plain counters struct. No metrics library is wired in for
// this concern; a handful of uint64 counters don't need one.
type Stats struct {
	Allocations uint64
	Frees       uint64
	Collections uint64
}

// ManagedHeap is a thin façade over RawHeap adding mark-and-sweep
// collection driven by client-supplied roots. It owns the RawHeap's
// backing region for its entire lifetime; there is no explicit Close —
// the region is released when the ManagedHeap becomes unreachable.
type ManagedHeap struct {
	raw   *RawHeap
	cfg   config
	stats Stats
}

// NewManagedHeap constructs a managed heap over a freshly acquired
// backing region of sizeBytes bytes. If constructed WithFormatVersion,
// the heap's FormatVersion is checked against the given constraint before
// the heap is handed back, panicking via heaperr if it is not satisfied.
func NewManagedHeap(sizeBytes int, opts ...Option) *ManagedHeap {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.checkFormat {
		ok, err := CheckFormatCompatible(cfg.formatConstraint)
		if err != nil || !ok {
			panic(heaperr.FormatVersionIncompatible(FormatVersion, cfg.formatConstraint))
		}
	}

	return &ManagedHeap{raw: NewRawHeap(sizeBytes), cfg: cfg}
}

// Alloc delegates to the underlying RawHeap, returning the payload
// address of a new block of at least payloadWords words, or false if no
// free block is large enough.
func (m *ManagedHeap) Alloc(payloadWords HalfWord) (Address, bool) {
	addr, ok := m.raw.Alloc(payloadWords)
	if ok && m.cfg.collectStats {
		m.stats.Allocations++
	}

	return addr, ok
}

// NumUsedBlocks returns the number of currently allocated blocks.
func (m *ManagedHeap) NumUsedBlocks() int {
	return m.raw.NumUsed()
}

// NumFreeBlocks returns the number of currently free blocks.
func (m *ManagedHeap) NumFreeBlocks() int {
	return m.raw.NumFree()
}

// Stats returns the allocation/collection counters accumulated so far.
// Zero-valued unless the heap was constructed with WithStats.
func (m *ManagedHeap) Stats() Stats {
	return m.stats
}

// Collect runs one mark-and-sweep cycle over h using roots, a slice of
// root providers all yielding the same client type T. fromAddress
// converts a block's payload Address back into a T, since Go cannot
// express a static "construct from Address" constructor as part of a type
// constraint.
//
// Ordering is fixed: mark precedes sweep precedes unmark. Sweep
// enumerates the used set before freeing anything from it, since freeing
// mutates the used set out from under an in-progress iteration. Collect
// is idempotent: calling it again with the same roots and no intervening
// allocation leaves every count and every surviving object unchanged.
func Collect[T Traceable](h *ManagedHeap, roots []RootProvider[T], fromAddress func(Address) T) {
	// Mark phase. Each root's children recursively mark their own
	// children via the client's Mark implementation; the heap itself
	// never inspects payload contents here.
	for _, rp := range roots {
		for _, t := range rp.Roots() {
			t.Mark()
		}
	}

	// Sweep phase: collect the addresses of unmarked used blocks first,
	// then free them in a second pass.
	var freeable []Address

	h.raw.ForEachUsed(func(b Block) {
		addr := addressOfBlock(b)
		if !fromAddress(addr).IsMarked() {
			freeable = append(freeable, addr)
		}
	})

	for _, addr := range freeable {
		h.raw.Free(addr)
	}

	// Unmark phase: every surviving used object starts the next cycle
	// clean.
	h.raw.ForEachUsed(func(b Block) {
		fromAddress(addressOfBlock(b)).Unmark()
	})

	if h.cfg.collectStats {
		h.stats.Collections++
		h.stats.Frees += uint64(len(freeable))
	}
}
