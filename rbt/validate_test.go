package rbt

import "testing"

import "github.com/mikedlowis/data-structures/mem"

func buildtree(t *testing.T, name string, keys ...int64) *RBT {
	t.Helper()
	tree := New(name, intcmp, nil)
	for _, key := range keys {
		tree.Insert(mem.Box(key))
	}
	if status := tree.Validate(); status != OK {
		t.Fatalf("unexpected %v", status)
	}
	return tree
}

func TestValidateStatusString(t *testing.T) {
	statuses := map[Status]string{
		OK:                   "OK",
		UnknownColor:         "UnknownColor",
		RedWithRedChild:      "RedWithRedChild",
		OutOfOrder:           "OutOfOrder",
		SelfReference:        "SelfReference",
		BadParentPointer:     "BadParentPointer",
		BadRootColor:         "BadRootColor",
		BlackNodesUnbalanced: "BlackNodesUnbalanced",
		Status(200):          "UnknownStatus",
	}
	for status, ref := range statuses {
		if x := status.String(); x != ref {
			t.Errorf("expected %v, got %v", ref, x)
		}
	}
}

func TestValidateUnknownColor(t *testing.T) {
	tree := buildtree(t, "unknowncolor", 5, 3, 8)
	defer tree.Destroy()

	tree.root.color = Color(42)
	if status := tree.Validate(); status != UnknownColor {
		t.Errorf("unexpected %v", status)
	}
	tree.root.color = BLACK
}

func TestValidateRedWithRedChild(t *testing.T) {
	tree := buildtree(t, "redred", 5, 3, 8)
	defer tree.Destroy()

	// root black with two red children, recolor all three red
	root := tree.root
	root.color = RED
	root.left.color = RED
	root.right.color = RED
	if status := tree.Validate(); status != RedWithRedChild {
		t.Errorf("unexpected %v", status)
	}
	root.color = BLACK
	root.left.color = RED
	root.right.color = RED
}

func TestValidateOutOfOrder(t *testing.T) {
	tree := buildtree(t, "outoforder", 5, 3, 8, 1, 4)
	defer tree.Destroy()

	// swap the contents of two nodes, leaving structure intact
	left := tree.root.left
	tree.root.contents, left.contents = left.contents, tree.root.contents
	if status := tree.Validate(); status != OutOfOrder {
		t.Errorf("unexpected %v", status)
	}
	tree.root.contents, left.contents = left.contents, tree.root.contents
}

func TestValidateSelfReference(t *testing.T) {
	tree := buildtree(t, "selfreference", 5, 3)
	defer tree.Destroy()

	root := tree.root
	child := root.left
	root.left = root
	if status := tree.Validate(); status != SelfReference {
		t.Errorf("unexpected %v", status)
	}
	root.left = child
}

func TestValidateBadParentPointer(t *testing.T) {
	tree := buildtree(t, "badparent", 5, 3, 8)
	defer tree.Destroy()

	root := tree.root
	root.left.parent = root.right
	if status := tree.Validate(); status != BadParentPointer {
		t.Errorf("unexpected %v", status)
	}
	root.left.parent = root

	root.parent = root.left
	if status := tree.Validate(); status != BadParentPointer {
		t.Errorf("unexpected %v", status)
	}
	root.parent = nil
}

func TestValidateBadRootColor(t *testing.T) {
	tree := buildtree(t, "badrootcolor", 5)
	defer tree.Destroy()

	tree.root.color = RED
	if status := tree.Validate(); status != BadRootColor {
		t.Errorf("unexpected %v", status)
	}
	tree.root.color = BLACK
}

func TestValidateBlackImbalance(t *testing.T) {
	tree := buildtree(t, "imbalance", 5, 3, 8)
	defer tree.Destroy()

	// painting one red leaf black unbalances the black count
	tree.root.left.color = BLACK
	if status := tree.Validate(); status != BlackNodesUnbalanced {
		t.Errorf("unexpected %v", status)
	}
	tree.root.left.color = RED
}
