package trie

import (
	"maps"
	"slices"

	"github.com/xlab/treeprint"
)

// terminalMark flags nodes that end an inserted word in String output.
const terminalMark = "*"

// String renders the trie one edge per line, children in code-point order.
// Nodes that end a word are suffixed with "*".
//
//	.
//	├── a
//	│   └── r ...
//	└── e
//	    └── l
//	        └── m
//	            └── a*
func (t *Trie) String() string {
	rootLabel := "."
	if t.root.terminal {
		rootLabel += terminalMark
	}

	out := treeprint.NewWithRoot(rootLabel)
	addEdges(out, t.root)

	return out.String()
}

func addEdges(branch treeprint.Tree, n *node) {
	for _, r := range slices.Sorted(maps.Keys(n.children)) {
		child := n.children[r]

		label := string(r)
		if child.terminal {
			label += terminalMark
		}

		addEdges(branch.AddBranch(label), child)
	}
}
