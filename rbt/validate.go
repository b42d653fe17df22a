package rbt

import "github.com/mikedlowis/data-structures/mem"

// Status reported by Validate, identifying the first structural
// violation found in the tree.
type Status byte

const (
	// OK no violation found.
	OK Status = iota
	// UnknownColor a node carries a color tag other than RED/BLACK.
	UnknownColor
	// RedWithRedChild a red-red violation.
	RedWithRedChild
	// OutOfOrder a node sorts outside its subtree's bounds.
	OutOfOrder
	// SelfReference a node links to itself.
	SelfReference
	// BadParentPointer a parent back-reference out of sync with the
	// structure.
	BadParentPointer
	// BadRootColor the root is not black.
	BadRootColor
	// BlackNodesUnbalanced black-height differs between paths.
	BlackNodesUnbalanced
)

func (status Status) String() string {
	switch status {
	case OK:
		return "OK"
	case UnknownColor:
		return "UnknownColor"
	case RedWithRedChild:
		return "RedWithRedChild"
	case OutOfOrder:
		return "OutOfOrder"
	case SelfReference:
		return "SelfReference"
	case BadParentPointer:
		return "BadParentPointer"
	case BadRootColor:
		return "BadRootColor"
	case BlackNodesUnbalanced:
		return "BlackNodesUnbalanced"
	}
	return "UnknownStatus"
}

// blackcount returns the number of black nodes on the path from nd to
// any leaf, -1 when the left and right counts disagree somewhere in
// the subtree.
func blackcount(nd *Node) int64 {
	if nd == nil {
		return 0
	}
	leftcount := blackcount(nd.left)
	rightcount := blackcount(nd.right)
	if leftcount != rightcount || leftcount == -1 {
		return -1
	} else if nd.color == BLACK {
		return leftcount + 1
	}
	return leftcount
}

// Validate walks the tree and returns the first structural violation
// found, OK when the tree satisfies every red-black invariant. Purely
// diagnostic, meant for tests and tools, never on a production path.
func (t *RBT) Validate() Status {
	nobound := mem.Box(-1)
	defer mem.Release(nobound)

	status := t.checknode(t.root, nobound, nobound, nobound)
	if status == OK && t.root != nil && t.root.parent != nil {
		status = BadParentPointer
	}
	if status == OK && t.root.Color() != BLACK {
		status = BadRootColor
	}
	if status == OK && blackcount(t.root) == -1 {
		status = BlackNodesUnbalanced
	}
	return status
}

// checknode classifies nd against its bounds. A bound equal to the
// nobound sentinel, under the tree's comparator, is inactive.
func (t *RBT) checknode(
	nd *Node, minval, maxval mem.Object, nobound *mem.Boxed) Status {

	if nd == nil {
		return OK
	}
	switch {
	case nd.color != RED && nd.color != BLACK:
		return UnknownColor
	case nd.color == RED && nd.left.Color() != BLACK && nd.right.Color() != BLACK:
		return RedWithRedChild
	case t.comp(minval, nobound) > 0 && t.comp(nd.contents, minval) < 0:
		return OutOfOrder
	case t.comp(maxval, nobound) > 0 && t.comp(nd.contents, maxval) > 0:
		return OutOfOrder
	case nd.left == nd || nd.right == nd:
		return SelfReference
	case nd.left != nil && nd.left.parent != nd:
		return BadParentPointer
	case nd.right != nil && nd.right.parent != nd:
		return BadParentPointer
	}
	if status := t.checknode(nd.left, minval, nd.contents, nobound); status != OK {
		return status
	}
	return t.checknode(nd.right, nd.contents, maxval, nobound)
}
