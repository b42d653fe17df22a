// Package rbt manage in-memory ordered indexes using red-black trees
// of reference counted nodes.
//
// Every node, and the tree container itself, is a heap object in the
// sense of package mem: left and right children and the stored
// contents are owned references, the parent back-reference is not
// owned. Inserting transfers ownership of the caller's contents
// reference to the new node, deleting releases it, and destroying the
// tree releases the root whose finalizer recursively releases the
// rest.
//
// Trees are ordered by a caller supplied comparator and balanced with
// the classic red-black rules: the root is black, no red node has a
// red child and every path from the root to an absent child crosses
// the same number of black nodes. Lookup, insert and delete are
// O(log n).
//
// The package provides no internal locking. Concurrent mutation of a
// single tree must be serialized by the caller.
package rbt
