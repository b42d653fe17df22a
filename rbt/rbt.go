package rbt

import "fmt"
import "reflect"

import s "github.com/bnclabs/gosettings"

import "github.com/mikedlowis/data-structures/lib"
import "github.com/mikedlowis/data-structures/mem"

// Comparator defines a total order over node contents, returning a
// negative, zero or positive value when a sorts before, equal-to or
// after b. The order must stay consistent for every payload ever
// inserted into one tree.
type Comparator func(a, b mem.Object) int

// identity order on the payload pointers, used when no comparator is
// supplied.
func defaultcomparator(a, b mem.Object) int {
	x, y := reflect.ValueOf(a).Pointer(), reflect.ValueOf(b).Pointer()
	if x == y {
		return 0
	} else if x < y {
		return -1
	}
	return 1
}

type direction byte

const (
	dirleft direction = iota
	dirright
)

// RBT manage a single instance of an in-memory ordered index using a
// red-black tree. The tree container is itself a heap object owning
// the root reference.
type RBT struct {
	mem.Hdr

	// statistics
	n_count       int64
	n_inserts     int64
	n_deletes     int64
	n_lookups     int64
	n_misses      int64
	h_insertdepth *lib.HistogramInt64

	name string
	root *Node
	comp Comparator
	dead bool

	// settings
	memcapacity int64
	setts       s.Settings
	logprefix   string
}

// New creates an empty tree ordered by comp, identity order over
// payload pointers when comp is nil. Settings are documented with
// Defaultsettings.
func New(name string, comp Comparator, setts s.Settings) *RBT {
	t := &RBT{name: name, comp: comp}
	t.logprefix = fmt.Sprintf("RBT [%s]", name)
	if t.comp == nil {
		t.comp = defaultcomparator
	}

	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	t.readsettings(setts)
	t.setts = setts

	t.h_insertdepth = lib.NewhistorgramInt64(1, 64, 1)

	mem.Allocate(t, t.free)
	infof("%v started ...\n", t.logprefix)
	return t
}

func (t *RBT) readsettings(setts s.Settings) *RBT {
	t.memcapacity = setts.Int64("memcapacity")
	return t
}

// free releases the root reference, whose finalizer recursively
// releases children and contents.
func (t *RBT) free() {
	if t.root != nil {
		mem.Release(t.root)
	}
}

// ID returns the name of this tree.
func (t *RBT) ID() string {
	return t.name
}

// Count returns the number of entries in the tree.
func (t *RBT) Count() int64 {
	return t.n_count
}

// Destroy releases the tree and, transitively, every node and its
// contents. The tree must not be used after Destroy.
func (t *RBT) Destroy() {
	if t.dead {
		panicerr("%v already destroyed", t.logprefix)
	}
	t.dead = true
	mem.Release(t)
	infof("%v destroyed\n", t.logprefix)
}

// Lookup returns the node whose contents are comparator-equal to the
// given contents, nil when absent.
func (t *RBT) Lookup(contents mem.Object) *Node {
	t.n_lookups++
	nd := t.lookupnode(t.root, contents)
	if nd == nil {
		t.n_misses++
	}
	return nd
}

func (t *RBT) lookupnode(nd *Node, contents mem.Object) *Node {
	if nd == nil {
		return nil
	}
	cmp := t.comp(contents, nd.contents)
	if cmp == 0 {
		return nd
	} else if cmp > 0 {
		return t.lookupnode(nd.right, contents)
	}
	return t.lookupnode(nd.left, contents)
}

// Insert adds contents as a new node, taking ownership of the
// caller's reference, and returns the new node. Duplicate contents
// under the comparator are allowed and sort after their equals.
func (t *RBT) Insert(contents mem.Object) *Node {
	nd := newnode(contents)
	t.insertnode(nd, t.root, 1)
	t.n_inserts++
	t.n_count++
	return nd
}

func (t *RBT) insertnode(nd, parent *Node, depth int64) {
	if parent == nil { // inserting the root of the tree
		t.root = nd
		t.h_insertdepth.Add(depth)
		t.insertfixup(nd)
	} else if t.comp(nd.contents, parent.contents) < 0 {
		if parent.left != nil {
			t.insertnode(nd, parent.left, depth+1)
		} else {
			nd.parent = parent
			parent.left = nd
			t.h_insertdepth.Add(depth)
			t.insertfixup(nd)
		}
	} else {
		if parent.right != nil {
			t.insertnode(nd, parent.right, depth+1)
		} else {
			nd.parent = parent
			parent.right = nd
			t.h_insertdepth.Add(depth)
			t.insertfixup(nd)
		}
	}
}

// insertfixup repairs the red-red violation a fresh RED node can
// introduce, bottom-up from nd.
func (t *RBT) insertfixup(nd *Node) {
	parent := nd.parent
	var grandparent, uncle *Node
	if parent != nil {
		grandparent = parent.parent
	}
	if grandparent != nil {
		if parent == grandparent.left {
			uncle = grandparent.right
		} else {
			uncle = grandparent.left
		}
	}

	if parent == nil {
		nd.color = BLACK
	} else if parent.Color() == BLACK {
		// no violation
	} else if uncle.Color() == RED {
		// parent and uncle are both red, both can be painted black
		grandparent.color = RED
		parent.color = BLACK
		uncle.color = BLACK
		t.insertfixup(grandparent)
	} else {
		ndside, parentside := dirright, dirright
		if nd == parent.left {
			ndside = dirleft
		}
		if parent == grandparent.left {
			parentside = dirleft
		}
		if ndside != parentside { // "inside" configuration
			t.rotate(parent, parentside) // convert to "outside"
			nd = parent                  // parent is now the lowest node
		}
		t.insertrebalance(nd, parentside)
	}
}

// insertrebalance rotates the "outside" configuration into balance,
// nd's parent comes up BLACK, the grandparent goes down RED.
func (t *RBT) insertrebalance(nd *Node, heavyside direction) {
	parent := nd.parent
	grandparent := parent.parent
	if heavyside == dirleft {
		t.rotate(grandparent, dirright)
	} else {
		t.rotate(grandparent, dirleft)
	}
	parent.color = BLACK
	grandparent.color = RED
}

// Delete removes the node whose contents are comparator-equal to the
// given contents and releases the tree's reference on the node.
// Absent contents are a no-op.
func (t *RBT) Delete(contents mem.Object) {
	doomed := t.lookupnode(t.root, contents)
	if doomed != nil {
		t.deletenode(doomed)
		t.n_deletes++
		t.n_count--
	}
}

func rightmostdescendent(nd *Node) *Node {
	if nd.right != nil {
		return rightmostdescendent(nd.right)
	}
	return nd
}

func (t *RBT) deletenode(nd *Node) {
	if nd.left != nil && nd.right != nil {
		// two children: remove the in-order predecessor from its own
		// position, then splice it into nd's position.
		replacement := rightmostdescendent(nd.left)
		mem.Retain(replacement)
		t.deletenode(replacement)
		// removing the predecessor may have rotated or recolored the
		// tree, nd's relatives and color are re-read here.
		parent := nd.parent
		if nd.left != nil {
			nd.left.parent = replacement
		}
		if nd.right != nil {
			nd.right.parent = replacement
		}
		replacement.left = nd.left
		replacement.right = nd.right
		replacement.parent = parent
		replacement.color = nd.color
		if parent == nil {
			t.root = replacement
		} else if nd == parent.left {
			parent.left = replacement
		} else {
			parent.right = replacement
		}
	} else {
		// nd has at most one non-leaf child
		parent := nd.parent
		var child *Node
		if nd.Color() == RED {
			// red node with at most one child cannot have any, the
			// detach below leaves an empty slot
		} else if nd.left.Color() == RED || nd.right.Color() == RED {
			child = nd.left
			if child == nil {
				child = nd.right
			}
			child.color = BLACK
		} else {
			t.deleterebalance(nd)
			// refresh child/parent after rebalance, the tree may have
			// been rotated
			parent = nd.parent
			child = nd.left
			if child == nil {
				child = nd.right
			}
		}
		if child != nil {
			child.parent = parent
		}
		if parent == nil {
			t.root = child
		} else if nd == parent.right {
			parent.right = child
		} else {
			parent.left = child
		}
	}
	nd.left = nil
	nd.right = nil
	nd.parent = nil
	mem.Release(nd)
}

// deleterebalance resolves the double-black defect left by removing
// a BLACK node with no RED child, bottom-up from nd. The subtree at
// nd counts one black node short relative to the rest of the tree.
func (t *RBT) deleterebalance(nd *Node) {
	parent := nd.parent
	if parent == nil {
		nd.color = BLACK
		return
	}
	ndside := dirright
	if nd == parent.left {
		ndside = dirleft
	}
	var sib, insidenibling, outsidenibling *Node
	if ndside == dirleft {
		sib = parent.right
	} else {
		sib = parent.left
	}
	if sib != nil {
		if ndside == dirleft {
			insidenibling, outsidenibling = sib.left, sib.right
		} else {
			insidenibling, outsidenibling = sib.right, sib.left
		}
	}

	if sib.Color() == RED {
		// rotate so sib is black and retry with the new scenario
		t.rotate(parent, ndside)
		parent.color = RED
		sib.color = BLACK
		t.deleterebalance(nd)
	} else if insidenibling.Color() == BLACK && outsidenibling.Color() == BLACK {
		// both niblings are black, paint sib red and move the defect
		// to the parent
		sib.color = RED
		if parent.Color() == RED {
			parent.color = BLACK
		} else {
			t.deleterebalance(parent)
		}
	} else if outsidenibling.Color() == BLACK {
		// convert the "inside" case to the "outside" case and retry
		if ndside == dirleft {
			t.rotate(sib, dirright)
		} else {
			t.rotate(sib, dirleft)
		}
		sib.color = RED
		insidenibling.color = BLACK
		t.deleterebalance(nd)
	} else {
		t.rotate(parent, ndside)
		sib.color = parent.color
		parent.color = BLACK
		outsidenibling.color = BLACK
	}
}

// rotate restructures the subtree around nd in the given direction,
// bringing up nd's child on the opposite side. Re-links every
// affected parent back-reference and the tree root, preserves
// in-order key order by construction. Rotating with an absent far
// child is not allowed and is left as a no-op.
func (t *RBT) rotate(nd *Node, dir direction) {
	var up *Node
	if dir == dirleft {
		up = nd.right
	} else {
		up = nd.left
	}
	if up == nil {
		return
	}
	if nd.parent == nil {
		t.root = up
	} else if nd.parent.left == nd {
		nd.parent.left = up
	} else {
		nd.parent.right = up
	}
	up.parent = nd.parent
	if dir == dirleft {
		nd.right = up.left // safe to overwrite nd.right, it is up
		if up.left != nil {
			up.left.parent = nd
		}
		up.left = nd
	} else { // mirror of above
		nd.left = up.right // safe to overwrite nd.left, it is up
		if up.right != nil {
			up.right.parent = nd
		}
		up.right = nd
	}
	nd.parent = up
}

// Range calls callb for every node in comparator order until callb
// returns false.
func (t *RBT) Range(callb func(nd *Node) bool) {
	t.rangenode(t.root, callb)
}

func (t *RBT) rangenode(nd *Node, callb func(nd *Node) bool) bool {
	if nd == nil {
		return true
	}
	if t.rangenode(nd.left, callb) == false {
		return false
	}
	if callb(nd) == false {
		return false
	}
	return t.rangenode(nd.right, callb)
}
