// Copyright (c) 2020, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

const (
	// Continue is returned from walk functions to keep walking down
	// the current branch.
	Continue = true

	// Break is returned from walk functions to skip the rest of the
	// current branch.
	Break = false
)

// WalkDown calls the given function on the node and its descendants,
// depth first with parents before children. Returning [Break] skips
// the children of that node; the walk goes on with its siblings.
func (n *NodeBase) WalkDown(fun func(n *NodeBase) bool) {
	if !fun(n) {
		return
	}
	for _, kid := range n.Children {
		kid.WalkDown(fun)
	}
}

// NumNodes returns the number of nodes in the tree from this node down.
func (n *NodeBase) NumNodes() int {
	num := 0
	n.WalkDown(func(*NodeBase) bool {
		num++
		return Continue
	})
	return num
}
