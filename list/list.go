// Package list supplies a singly linked sequential container of
// reference counted contents, with O(1) push and pop at the front,
// O(1) push at the back and O(n) indexed access.
//
// Nodes and the list container are heap objects in the sense of
// package mem: contents and the next link are owned references, so
// releasing the list releases every node and, transitively, its
// contents.
package list

import "github.com/mikedlowis/data-structures/mem"

// Node is a linked list node owning its contents and the next node.
type Node struct {
	mem.Hdr
	contents mem.Object
	next     *Node
}

// NewNode creates a detached node, taking ownership of the caller's
// contents reference.
func NewNode(contents mem.Object) *Node {
	nd := &Node{contents: contents}
	mem.Allocate(nd, nd.free)
	return nd
}

func (nd *Node) free() {
	mem.Release(nd.contents)
	if nd.next != nil {
		mem.Release(nd.next)
	}
}

// Contents returns the stored payload, reference stays owned by the
// node.
func (nd *Node) Contents() mem.Object {
	return nd.contents
}

// Next returns the following node, nil at the tail.
func (nd *Node) Next() *Node {
	return nd.next
}

// List is a singly linked list. The head reference is owned, the tail
// is a non-owning shortcut for O(1) PushBack.
type List struct {
	mem.Hdr
	head *Node
	tail *Node
}

// New creates an empty list.
func New() *List {
	l := &List{}
	mem.Allocate(l, l.free)
	return l
}

func (l *List) free() {
	if l.head != nil {
		mem.Release(l.head)
	}
}

// Destroy releases the list and, transitively, every node and its
// contents.
func (l *List) Destroy() {
	mem.Release(l)
}

// Front returns the first node, nil when empty.
func (l *List) Front() *Node {
	return l.head
}

// Back returns the last node, nil when empty.
func (l *List) Back() *Node {
	return l.tail
}

// Empty returns whether the list holds no nodes.
func (l *List) Empty() bool {
	return l.head == nil
}

// Size counts the nodes in the list.
func (l *List) Size() int {
	size := 0
	for nd := l.head; nd != nil; nd = nd.next {
		size++
	}
	return size
}

// At returns the node at index, nil when out of range.
func (l *List) At(index int) *Node {
	nd := l.head
	for i := 0; nd != nil && i < index; i++ {
		nd = nd.next
	}
	if index < 0 {
		return nil
	}
	return nd
}

// PushFront creates a node owning contents and makes it the new head.
func (l *List) PushFront(contents mem.Object) *Node {
	nd := NewNode(contents)
	nd.next = l.head
	l.head = nd
	if l.tail == nil {
		l.tail = nd
	}
	return nd
}

// PushBack creates a node owning contents and appends it as the new
// tail.
func (l *List) PushBack(contents mem.Object) *Node {
	nd := NewNode(contents)
	if l.tail == nil {
		l.head, l.tail = nd, nd
	} else {
		l.tail.next = nd
		l.tail = nd
	}
	return nd
}

// PopFront detaches and returns the first node, transferring its
// ownership to the caller, nil when empty.
func (l *List) PopFront() *Node {
	nd := l.head
	if nd == nil {
		return nil
	}
	l.head = nd.next
	if l.head == nil {
		l.tail = nil
	}
	nd.next = nil
	return nd
}

// PopBack detaches and returns the last node, transferring its
// ownership to the caller, nil when empty. Costs a walk to the
// penultimate node.
func (l *List) PopBack() *Node {
	nd := l.tail
	if nd == nil {
		return nil
	}
	if l.head == nd {
		l.head, l.tail = nil, nil
		return nd
	}
	prev := l.head
	for prev.next != nd {
		prev = prev.next
	}
	prev.next = nil
	l.tail = prev
	return nd
}

// Insert creates a node owning contents at index, shifting the node
// previously there behind it. Returns the new node, nil when index is
// out of range.
func (l *List) Insert(index int, contents mem.Object) *Node {
	if index < 0 {
		return nil
	} else if index == 0 {
		return l.PushFront(contents)
	}
	prev := l.At(index - 1)
	if prev == nil {
		return nil
	}
	nd := NewNode(contents)
	nd.next = prev.next
	prev.next = nd
	if nd.next == nil {
		l.tail = nd
	}
	return nd
}

// Delete releases the node at index, and with it the list's reference
// on its contents. Returns the node now at index, nil when index is
// out of range or the tail was deleted.
func (l *List) Delete(index int) *Node {
	if index < 0 || l.head == nil {
		return nil
	}
	var doomed *Node
	if index == 0 {
		doomed = l.head
		l.head = doomed.next
		if l.head == nil {
			l.tail = nil
		}
		doomed.next = nil
		mem.Release(doomed)
		return l.head
	}
	prev := l.At(index - 1)
	if prev == nil || prev.next == nil {
		return nil
	}
	doomed = prev.next
	prev.next = doomed.next
	if l.tail == doomed {
		l.tail = prev
	}
	doomed.next = nil
	mem.Release(doomed)
	return prev.next
}

// Clear releases every node in the list and returns the emptied list.
func (l *List) Clear() *List {
	if l.head != nil {
		mem.Release(l.head)
		l.head, l.tail = nil, nil
	}
	return l
}
