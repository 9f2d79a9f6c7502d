// Copyright (c) 2020, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// testTree returns:
//
//	par1
//	  child1
//	  child2
//	    subchild1
//	  child3
func testTree() (*NodeBase, *NodeBase) {
	parent := NewRoot("par1")
	parent.NewChild("child1")
	child2 := parent.NewChild("child2")
	parent.NewChild("child3")
	child2.NewChild("subchild1")
	return parent, child2
}

func TestWalkDown(t *testing.T) {
	parent, child2 := testTree()

	var names []string
	parent.WalkDown(func(n *NodeBase) bool {
		names = append(names, n.Name)
		return Continue
	})
	assert.Equal(t, []string{"par1", "child1", "child2", "subchild1", "child3"}, names)

	names = nil
	parent.WalkDown(func(n *NodeBase) bool {
		names = append(names, n.Name)
		return n != child2
	})
	assert.Equal(t, []string{"par1", "child1", "child2", "child3"}, names)

	assert.Equal(t, 5, parent.NumNodes())
	assert.Equal(t, 2, child2.NumNodes())
}

func TestView(t *testing.T) {
	parent, child2 := testTree()
	v := View{}
	kids := v.Children(parent)
	assert.Len(t, kids, 3)
	assert.Equal(t, child2, kids[1])
	assert.Nil(t, v.Children("not a node"))
	assert.Empty(t, v.Children(child2.Child(0)))

	v.Filter = func(n *NodeBase) bool { return n.Name != "child1" }
	kids = v.Children(parent)
	assert.Equal(t, []any{child2, parent.Child(2)}, kids)
}
