package heap

import (
	"unsafe"

	"github.com/orizon-lang/managed-heap/internal/heaperr"
)

// Block is a handle over a header location inside a RawHeap's backing
// region. Its identity is the header's address; two Blocks are equal iff
// they refer to the same header word. Blocks are obtained via NewBlockAt,
// NextBlock, PredBlock, SplitAfter, or blockOfAddress. NewBlockAt rejects
// only a null header address; it does not check that headerAddr lies
// inside any heap's region.
type Block struct {
	headerAddr uintptr
}

// NewBlockAt writes a fresh header at headerAddr and returns a handle to
// it.
func NewBlockAt(headerAddr uintptr, ownSize, predSize HalfWord) Block {
	if headerAddr == 0 {
		panic(heaperr.NullBlock())
	}

	b := Block{headerAddr: headerAddr}
	b.header().set(NewHeader(predSize, ownSize))

	return b
}

// header returns a pointer to the Header word this block owns.
func (b Block) header() headerPtr {
	return headerPtr{p: unsafe.Pointer(b.headerAddr)}
}

// headerPtr is an unsafe.Pointer to a Header word; wrapped so reads/writes
// go through one place.
type headerPtr struct{ p unsafe.Pointer }

func (p headerPtr) get() Header  { return *(*Header)(p.p) }
func (p headerPtr) set(h Header) { *(*Header)(p.p) = h }

// Size returns own_size: the total size of the block in words, including
// the header.
func (b Block) Size() HalfWord {
	return b.header().get().BlockSize()
}

// PredSize returns pred_size: the size of the address-preceding block, or
// 0 if b is first in the region.
func (b Block) PredSize() HalfWord {
	return b.header().get().PredBlockSize()
}

// SetSize overwrites b's own_size.
func (b Block) SetSize(value HalfWord) {
	h := b.header().get()
	h.SetSize(value)
	b.header().set(h)
}

// IncSize adds value to b's own_size.
func (b Block) IncSize(value HalfWord) {
	h := b.header().get()
	h.IncSize(value)
	b.header().set(h)
}

// SetPredSize overwrites b's pred_size.
func (b Block) SetPredSize(value HalfWord) {
	h := b.header().get()
	h.SetPredSize(value)
	b.header().set(h)
}

// NextBlock returns the block immediately following b in address order,
// or false if b is the last block before end (one past the region).
func (b Block) NextBlock(end uintptr) (Block, bool) {
	next := b.headerAddr + uintptr(b.Size())*WordSize
	if next >= end {
		return Block{}, false
	}

	return Block{headerAddr: next}, true
}

// PredBlock returns the block immediately preceding b in address order,
// or false if b is first in the region (or, defensively, if the computed
// address falls before base).
func (b Block) PredBlock(base uintptr) (Block, bool) {
	predSize := b.PredSize()
	if predSize == 0 {
		return Block{}, false
	}

	predAddr := b.headerAddr - uintptr(predSize)*WordSize
	if predAddr < base {
		return Block{}, false
	}

	return Block{headerAddr: predAddr}, true
}

// SplitAfter splits b, which must currently be free with own_size >
// firstSize, into a low block of size firstSize and a high block holding
// the remainder. The low block keeps b's identity (header address and
// pred_size); the high block's pred_size is firstSize. The caller is
// responsible for fixing up the pred_size of whatever block used to
// follow b, if any — SplitAfter only knows about the two halves it
// creates.
func (b Block) SplitAfter(firstSize HalfWord) (low, high Block) {
	ownSize := b.Size()
	if ownSize <= firstSize {
		panic(heaperr.BlockTooSmallToSplit(uint64(ownSize), uint64(firstSize)))
	}

	predSize := b.PredSize()
	secondSize := ownSize - firstSize

	highAddr := b.headerAddr + uintptr(firstSize)*WordSize
	high = NewBlockAt(highAddr, secondSize, firstSize)

	b.header().set(NewHeader(predSize, firstSize))
	low = b

	return low, high
}

// WriteAt writes value at payload word offsetWords, counting from the
// start of the payload (i.e. one word past the header). Panics if
// offsetWords is not a valid payload offset for this block.
func (b Block) WriteAt(offsetWords HalfWord, value Word) {
	payloadWords := uint64(b.Size()) - 1
	if uint64(offsetWords) >= payloadWords {
		panic(heaperr.WriteOutOfBounds(uint64(offsetWords), payloadWords))
	}

	addressOfBlock(b).Offset(offsetWords).Write(value)
}
