package bst

// visitor defines the interface for tree traversal using the visitor pattern.
// Implementations should return true to continue traversal, false to stop.
type visitor interface {
	Visit(node *node) bool
}

// seqVisitor drives an iter.Seq over the tree. It visits in order (left subtree,
// node, right subtree) and stops as soon as yield returns false.
type seqVisitor struct {
	yield func(int) bool
}

func (v *seqVisitor) Visit(node *node) bool {
	if node == nil {
		return true
	}

	if !v.Visit(node.left) {
		return false
	}

	if !v.yield(node.value) {
		return false
	}

	return v.Visit(node.right)
}

func (t *Tree) walk(v visitor) {
	if t == nil || t.root == nil {
		return
	}

	v.Visit(t.root)
}
