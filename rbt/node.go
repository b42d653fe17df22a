package rbt

import "github.com/mikedlowis/data-structures/mem"

// Color tag of a node. Conceptual leaves, absent children, are BLACK
// implicitly and carry no storage.
type Color byte

const (
	// RED nodes may not have RED children.
	RED Color = iota
	// BLACK node count is uniform on every root-to-leaf path.
	BLACK
)

func (c Color) String() string {
	switch c {
	case RED:
		return "RED"
	case BLACK:
		return "BLACK"
	}
	return "UNKNOWN"
}

// Node defines a node in a red-black tree. Nodes are heap objects,
// left, right and contents are owned references, parent is a
// non-owning back-reference kept in sync across rotations and
// splices.
type Node struct {
	mem.Hdr
	left     *Node
	right    *Node
	parent   *Node
	color    Color
	contents mem.Object
}

// newnode creates a RED node with no relatives, taking ownership of
// the caller's contents reference.
func newnode(contents mem.Object) *Node {
	nd := &Node{color: RED, contents: contents}
	mem.Allocate(nd, nd.free)
	return nd
}

// free releases the references this node owns, never the parent
// back-reference.
func (nd *Node) free() {
	mem.Release(nd.contents)
	if nd.left != nil {
		mem.Release(nd.left)
	}
	if nd.right != nil {
		mem.Release(nd.right)
	}
}

// Color returns the node's color tag, BLACK for absent nodes.
func (nd *Node) Color() Color {
	if nd == nil {
		return BLACK
	}
	return nd.color
}

// Contents returns the stored payload. The reference stays owned by
// the node, callers wanting to outlive it must Retain.
func (nd *Node) Contents() mem.Object {
	return nd.contents
}

func (nd *Node) isred() bool {
	return nd != nil && nd.color == RED
}
