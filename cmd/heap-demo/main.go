// Package main demonstrates allocation, mutation, and mark-and-sweep
// collection on the managed heap: first a single integer object, then a
// small linked list, observing used/free block counts at each step.
package main

import (
	"fmt"

	"github.com/orizon-lang/managed-heap/heap"
)

type integerObject struct {
	addr heap.Address
}

func (o integerObject) Mark()          { o.addr.Write(1) }
func (o integerObject) Unmark()        { o.addr.Write(0) }
func (o integerObject) IsMarked() bool { return o.addr.Read() != 0 }
func (o integerObject) Value() heap.Word {
	return o.addr.Offset(1).Read()
}

func integerObjectFrom(a heap.Address) integerObject { return integerObject{addr: a} }

type integerRoots struct {
	objs []integerObject
}

func (r integerRoots) Roots() []integerObject { return r.objs }

type listNode struct {
	addr heap.Address
}

func listNodeFrom(a heap.Address) listNode { return listNode{addr: a} }

func (n listNode) Mark() {
	if n.IsMarked() {
		return
	}

	n.addr.Write(1)

	if next := n.nextAddr(); next != 0 {
		listNodeFrom(next).Mark()
	}
}

func (n listNode) Unmark()        { n.addr.Write(0) }
func (n listNode) IsMarked() bool { return n.addr.Read() != 0 }
func (n listNode) Value() heap.Word {
	return n.addr.Offset(1).Read()
}

func (n listNode) nextAddr() heap.Address {
	return heap.Address(n.addr.Offset(2).Read())
}

func (n listNode) setNext(next heap.Address) {
	n.addr.Offset(2).Write(heap.Word(next))
}

type listRoots struct {
	head *listNode
}

func (r listRoots) Roots() []listNode {
	if r.head == nil {
		return nil
	}

	return []listNode{*r.head}
}

func report(label string, h *heap.ManagedHeap) {
	fmt.Printf("%-28s used=%d free=%d\n", label, h.NumUsedBlocks(), h.NumFreeBlocks())
}

func runIntegerDemo() {
	fmt.Println("\n== integer object ==")

	h := heap.NewManagedHeap(128, heap.WithStats())

	addr, ok := h.Alloc(2)
	if !ok {
		panic("heap-demo: no room for the integer object")
	}

	obj := integerObjectFrom(addr)
	obj.Unmark()
	obj.addr.Offset(1).Write(42)

	report("after alloc", h)

	roots := []heap.RootProvider[integerObject]{integerRoots{objs: []integerObject{obj}}}
	heap.Collect(h, roots, integerObjectFrom)
	report("after collect (rooted)", h)
	fmt.Printf("object survived with value %d, marked=%v\n", obj.Value(), obj.IsMarked())

	heap.Collect(h, []heap.RootProvider[integerObject]{integerRoots{}}, integerObjectFrom)
	report("after collect (unrooted)", h)

	stats := h.Stats()
	fmt.Printf("stats: allocations=%d frees=%d collections=%d\n", stats.Allocations, stats.Frees, stats.Collections)
}

func runListDemo() {
	fmt.Println("\n== three-node linked list ==")

	h := heap.NewManagedHeap(256)

	var nodes [3]listNode

	for i := 2; i >= 0; i-- {
		addr, ok := h.Alloc(3)
		if !ok {
			panic("heap-demo: no room for a list node")
		}

		n := listNodeFrom(addr)
		n.Unmark()
		n.addr.Offset(1).Write(heap.Word(i + 1))

		if i < 2 {
			n.setNext(nodes[i+1].addr)
		} else {
			n.setNext(0)
		}

		nodes[i] = n
	}

	report("after building list", h)

	head := nodes[0]
	roots := []heap.RootProvider[listNode]{listRoots{head: &head}}
	heap.Collect(h, roots, listNodeFrom)
	report("after collect (rooted)", h)

	for i, n := range nodes {
		fmt.Printf("node %d: value=%d marked=%v\n", i, n.Value(), n.IsMarked())
	}

	heap.Collect(h, []heap.RootProvider[listNode]{listRoots{}}, listNodeFrom)
	report("after collect (unrooted)", h)
}

func main() {
	fmt.Printf("managed-heap demo (format version %s)\n", heap.FormatVersion)
	fmt.Println("asserting on-wire header format is compatible with >=1.0.0,<2.0.0")

	// WithFormatVersion panics at construction time if FormatVersion does
	// not satisfy the constraint, so a successful call below is itself
	// the compatibility proof.
	heap.NewManagedHeap(8, heap.WithFormatVersion(">=1.0.0, <2.0.0"))

	runIntegerDemo()
	runListDemo()
}
