// Package heap implements a managed virtual heap: a fixed-size byte region
// carved from the host process's allocator, subdivided into headered
// blocks, handed out to a client virtual machine, and reclaimed by a
// mark-and-sweep collector driven by client-supplied root enumeration.
//
// The heap is single-threaded and not re-entrant: no method on RawHeap or
// ManagedHeap may be called from within a client Mark/Unmark callback
// invoked during Collect.
package heap

// Word and HalfWord are platform-parametric: the block header packs one
// machine Word into two HalfWord fields (own_size, pred_size). Their
// concrete underlying integer types are chosen per architecture in
// word_64bit.go / word_32bit.go.

// WordSize is the number of bytes in one Word on the current architecture.
const WordSize = wordSizeBytes

// HalfWordMax is the largest representable HalfWord value, and therefore
// the largest number of words a single heap region may span.
const HalfWordMax = halfWordMax
