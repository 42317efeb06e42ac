package heap

import (
	"runtime"
	"unsafe"

	"github.com/orizon-lang/managed-heap/internal/heaperr"
)

// RawHeap owns a fixed-size backing region acquired from the host
// allocator, subdivided into headered blocks, and maintains the free/used
// block bookkeeping: allocation via first-fit-with-split, freeing with
// immediate-neighbor coalescing. A RawHeap is single-threaded and not
// re-entrant — see the package doc.
type RawHeap struct {
	data       []byte // backing region; never resized or reallocated
	base       uintptr
	end        uintptr
	sizeWords  HalfWord
	freeBlocks BlockSet
	usedBlocks BlockSet
}

// NewRawHeap acquires sizeBytes from the host allocator and returns a heap
// spanning it as a single free block. sizeBytes must be a positive whole
// multiple of WordSize, and sizeBytes/WordSize must not exceed
// HalfWordMax; either violation is a hard failure.
func NewRawHeap(sizeBytes int) *RawHeap {
	if sizeBytes <= 0 || sizeBytes%WordSize != 0 {
		panic(heaperr.InvalidSize(sizeBytes, WordSize))
	}

	sizeWords64 := uint64(sizeBytes) / uint64(WordSize)
	if sizeWords64 > uint64(HalfWordMax) {
		panic(heaperr.SizeExceedsLimit(sizeWords64, uint64(HalfWordMax)))
	}

	data := make([]byte, sizeBytes)
	if len(data) == 0 {
		panic(heaperr.NullRegion())
	}

	base := uintptr(unsafe.Pointer(&data[0]))
	sizeWords := HalfWord(sizeWords64)

	h := &RawHeap{
		data:      data,
		base:      base,
		end:       base + uintptr(sizeBytes),
		sizeWords: sizeWords,
	}

	h.freeBlocks.Add(NewBlockAt(base, sizeWords, 0))
	runtime.KeepAlive(data)

	return h
}

func (h *RawHeap) blockOf(a Address) Block {
	if uintptr(a) < h.base+WordSize || uintptr(a) > h.end {
		panic(heaperr.ForeignAddress(uintptr(a), h.base, h.end))
	}

	return blockOfAddress(a)
}

// Alloc reserves a block of at least payloadWords words of payload (plus
// the one-word header) and returns its payload address. Returns false if
// no free block is large enough — a benign, non-panicking failure.
// payloadWords == 0 is legal and yields a header-only block of size 1
// word.
func (h *RawHeap) Alloc(payloadWords HalfWord) (Address, bool) {
	totalWords := uint64(payloadWords) + 1
	if totalWords > uint64(HalfWordMax) {
		panic(heaperr.RequestTooLarge(uint64(payloadWords), uint64(HalfWordMax)))
	}

	total := HalfWord(totalWords)

	block, ok := h.freeBlocks.TakeFirstFit(total)
	if !ok {
		return 0, false
	}

	// Splitting policy: only split off a residual when it would leave at
	// more than two words of free-block overhead; otherwise hand over the
	// whole block and accept the internal fragmentation.
	if block.Size() > total+2 {
		low, high := block.SplitAfter(total)
		h.freeBlocks.Add(high)

		if next, ok := high.NextBlock(h.end); ok {
			next.SetPredSize(high.Size())
		}

		block = low
	}

	h.usedBlocks.Add(block)
	runtime.KeepAlive(h.data)

	return addressOfBlock(block), true
}

// Free releases the block at address back to the heap, coalescing with
// whichever of its immediate neighbors are currently free. Panics if
// address does not identify a block currently in the used set (detected
// double-free) or does not fall within this heap's region.
func (h *RawHeap) Free(address Address) {
	block := h.blockOf(address)

	if !h.usedBlocks.Contains(block) {
		panic(heaperr.DoubleFree(uintptr(address)))
	}

	h.usedBlocks.Remove(block)

	size := block.Size()

	if next, ok := block.NextBlock(h.end); ok && h.freeBlocks.Contains(next) {
		h.freeBlocks.Remove(next)
		size += next.Size()
	}

	var merged Block

	if pred, ok := block.PredBlock(h.base); ok && h.freeBlocks.Contains(pred) {
		// pred's size is its sort key in freeBlocks: take it out while it
		// grows and re-insert it afterwards.
		h.freeBlocks.Remove(pred)
		pred.IncSize(size)
		h.freeBlocks.Add(pred)
		size = pred.Size()
		merged = pred
	} else {
		block.SetSize(size)
		h.freeBlocks.Add(block)
		merged = block
	}

	// Fix the pred_size of whatever block now follows the merged free
	// region — needed whether or not a forward merge just happened, since
	// a still-used successor's pred_size would otherwise go stale.
	if next, ok := merged.NextBlock(h.end); ok {
		next.SetPredSize(size)
	}

	runtime.KeepAlive(h.data)
}

// Size returns the total size of the region in words.
func (h *RawHeap) Size() HalfWord {
	return h.sizeWords
}

// NumUsed returns the number of currently allocated blocks.
func (h *RawHeap) NumUsed() int {
	return h.usedBlocks.Len()
}

// NumFree returns the number of currently free blocks.
func (h *RawHeap) NumFree() int {
	return h.freeBlocks.Len()
}

// ForEachUsed calls fn once for every currently used block, in ascending
// (size, address) order. Required by the collector's sweep phase. fn must
// not allocate or free on this heap.
func (h *RawHeap) ForEachUsed(fn func(Block)) {
	h.usedBlocks.ForEach(fn)
}
