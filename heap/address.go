package heap

import "unsafe"

// Address is the word-address of a block's payload start: header address
// plus one word. It is a bare word-sized value — copyable, comparable,
// carrying no reference to the owning heap. Reading, writing, and
// offsetting an Address are only valid for as long as its covering block
// has not been freed (explicitly or by collection); the heap does not
// track which addresses it has handed out.
type Address uintptr

// Offset returns the address of the k-th payload word relative to a,
// i.e. a + k words.
func (a Address) Offset(k HalfWord) Address {
	return a + Address(Word(k)*WordSize)
}

// Read dereferences a, returning the Word stored there.
func (a Address) Read() Word {
	return *(*Word)(unsafe.Pointer(uintptr(a)))
}

// Write stores value at a.
func (a Address) Write(value Word) {
	*(*Word)(unsafe.Pointer(uintptr(a))) = value
}

func addressOfBlock(b Block) Address {
	return Address(b.headerAddr + WordSize)
}

func blockOfAddress(a Address) Block {
	return Block{headerAddr: uintptr(a) - WordSize}
}
