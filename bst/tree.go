package bst

import (
	"iter"
	"slices"
)

// node is a single tree position. A node's value never changes after creation;
// only its empty child slots are filled in, once each, by later inserts.
type node struct {
	value int
	left  *node
	right *node
}

// Tree is an unbalanced binary search tree. The zero value is an empty tree
// ready to use.
type Tree struct {
	root *node
	size int
}

// New returns an empty Tree.
func New() *Tree {
	return &Tree{}
}

// Insert adds value to the tree. Values strictly less than a node descend left,
// everything else (including equal values) descends right. Insert always adds
// exactly one node.
// Time complexity: O(h) where h is the current height.
func (t *Tree) Insert(value int) {
	slot := t.slotFor(value)
	*slot = &node{value: value}
	t.size++
}

// InsertAll inserts values in argument order.
func (t *Tree) InsertAll(values ...int) {
	for _, value := range values {
		t.Insert(value)
	}
}

// slotFor walks from the root to the empty child slot where value belongs.
func (t *Tree) slotFor(value int) **node {
	slot := &t.root

	for *slot != nil {
		if value < (*slot).value {
			slot = &(*slot).left
		} else {
			slot = &(*slot).right
		}
	}

	return slot
}

// Values returns an iterator over every inserted value in ascending order.
// Equal values appear as many times as they were inserted. The iterator can be
// ranged over more than once; each range walks the tree again.
//
// This enables range-over-func syntax: for v := range tree.Values() { ... }
func (t *Tree) Values() iter.Seq[int] {
	return func(yield func(int) bool) {
		t.walk(&seqVisitor{yield: yield})
	}
}

// Entries returns all values as a slice, in ascending order.
func (t *Tree) Entries() []int {
	values := make([]int, 0, t.size)

	return slices.AppendSeq(values, t.Values())
}

// Size returns the number of values inserted so far.
func (t *Tree) Size() int {
	if t == nil {
		return 0
	}

	return t.size
}

// Height returns the number of nodes on the longest path from the root to a leaf.
// An empty tree has height 0.
func (t *Tree) Height() int {
	return height(t.root)
}

func height(n *node) int {
	if n == nil {
		return 0
	}

	return 1 + max(height(n.left), height(n.right))
}

// Min returns the smallest value, or false if the tree is empty.
func (t *Tree) Min() (int, bool) {
	if t.root == nil {
		return 0, false
	}

	n := t.root
	for n.left != nil {
		n = n.left
	}

	return n.value, true
}

// Max returns the largest value, or false if the tree is empty.
func (t *Tree) Max() (int, bool) {
	if t.root == nil {
		return 0, false
	}

	n := t.root
	for n.right != nil {
		n = n.right
	}

	return n.value, true
}
