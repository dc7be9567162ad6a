// Package bst provides an unbalanced binary search tree over integers.
//
// # Overview
//
// A [Tree] keeps every inserted value, duplicates included. For each node, values in
// the left subtree are strictly less than the node's value, and values in the right
// subtree are greater than or equal to it (ties route right).
//
//	tree := bst.New()
//	tree.InsertAll(50, 30, 70, 20, 40)
//
//	for v := range tree.Values() {
//	    fmt.Println(v) // 20, 30, 40, 50, 70
//	}
//
// # Balancing
//
// The tree never rebalances. Inserting values in sorted order degenerates it into a
// linked list with O(n) depth; [Tree.Height] reports the current depth.
//
// # Thread Safety
//
// A Tree is not safe for concurrent use. Callers that share one between goroutines
// must synchronize access themselves.
package bst
