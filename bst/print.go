package bst

import (
	"strconv"

	"github.com/xlab/treeprint"
)

// String renders the tree's shape, one node per line. Children are labelled
// with the side they hang from, left before right.
//
//	50
//	├── L 30
//	│   ├── L 20
//	│   └── R 40
//	└── R 70
func (t *Tree) String() string {
	if t == nil || t.root == nil {
		return treeprint.NewWithRoot("(empty)").String()
	}

	out := treeprint.NewWithRoot(strconv.Itoa(t.root.value))
	addChildren(out, t.root)

	return out.String()
}

func addChildren(branch treeprint.Tree, n *node) {
	if n.left != nil {
		addChildren(branch.AddBranch("L "+strconv.Itoa(n.left.value)), n.left)
	}

	if n.right != nil {
		addChildren(branch.AddBranch("R "+strconv.Itoa(n.right.value)), n.right)
	}
}
