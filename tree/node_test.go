// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeAddChild(t *testing.T) {
	parent := NewRoot("par1")
	child := &NodeBase{Name: "child1"}
	parent.AddChild(child)
	assert.Len(t, parent.Children, 1)
	assert.Equal(t, parent, child.Parent)
	assert.Equal(t, child, parent.Child(0))
	assert.Nil(t, parent.Child(1))
	assert.Nil(t, parent.Child(-1))
	assert.Equal(t, "/par1/child1", child.Path())
	assert.Equal(t, "child1", child.NodeName())
}

func TestNodeMoveChild(t *testing.T) {
	a := NewRoot("a")
	b := NewRoot("b")
	kid := a.NewChild("kid")
	other := a.NewChild("other")
	b.AddChild(kid)
	assert.Equal(t, []*NodeBase{other}, a.Children)
	assert.Equal(t, []*NodeBase{kid}, b.Children)
	assert.Equal(t, b, kid.Parent)
	assert.Equal(t, "/b/kid", kid.String())
}

func TestNodeEscapePaths(t *testing.T) {
	parent := NewRoot("par1")
	child := parent.NewChild("child1/a")
	assert.Equal(t, `/par1/child1\\a`, child.Path())
	assert.Equal(t, child, parent.FindPath(`child1\\a`))
	assert.Equal(t, "child1/a", UnescapePathName(EscapePathName(child.Name)))
	assert.Nil(t, parent.FindPath("nope"))
	assert.Equal(t, parent, parent.FindPath(""))
}

func TestNodeFindPath(t *testing.T) {
	root := NewRoot("root")
	a := root.NewChild("a")
	b := a.NewChild("b")
	assert.Equal(t, b, root.FindPath("a/b"))
	assert.Equal(t, b, root.FindPath("/a/b/"))
	assert.Equal(t, b, a.FindPath("b"))
	assert.Nil(t, root.FindPath("a/c"))
	assert.Equal(t, a, root.ChildByName("a"))
	assert.Nil(t, root.ChildByName("b"))
}

func TestNodeProperties(t *testing.T) {
	n := NewRoot("n")
	assert.Nil(t, n.Property("color"))
	n.SetProperty("color", "red")
	n.SetProperty("size", 2)
	assert.Equal(t, "red", n.Property("color"))
	assert.Equal(t, 2, n.Property("size"))
}

type testCap struct {
	value int
}

type testClonedCap struct {
	value int
}

func (c *testClonedCap) CloneCapability() any {
	return &testClonedCap{value: c.value}
}

func TestNodeCapabilities(t *testing.T) {
	n := NewRoot("n")
	assert.Empty(t, n.Capabilities())
	c1 := &testCap{1}
	c2 := &testClonedCap{2}
	n.AddCapability(c1, c2)
	assert.Equal(t, []any{c1, c2}, n.Capabilities())
}

func TestNodeClone(t *testing.T) {
	root := NewRoot("root")
	root.SetProperty("material", "glass")
	shared := &testCap{1}
	cloned := &testClonedCap{2}
	root.AddCapability(shared, cloned)
	a := root.NewChild("a")
	a.NewChild("b")
	a.SetProperty("p", 1)

	cp := root.Clone()
	require.NotNil(t, cp)
	assert.Nil(t, cp.Parent)
	assert.Equal(t, "root", cp.Name)
	assert.Equal(t, root.Properties, cp.Properties)

	// properties are copied, not shared
	cp.SetProperty("material", "steel")
	cp.SetProperty("extra", true)
	assert.Equal(t, "glass", root.Property("material"))
	assert.Nil(t, root.Property("extra"))

	require.Len(t, cp.Caps, 2)
	assert.Same(t, shared, cp.Caps[0])
	assert.NotSame(t, cloned, cp.Caps[1])
	assert.Equal(t, cloned, cp.Caps[1])

	ca := cp.Child(0)
	require.NotNil(t, ca)
	assert.NotSame(t, a, ca)
	assert.Equal(t, cp, ca.Parent)
	assert.Equal(t, 1, ca.Property("p"))
	ca.SetProperty("p", 2)
	assert.Equal(t, 1, a.Property("p"))
	require.NotNil(t, cp.FindPath("a/b"))
	assert.Equal(t, "/root/a/b", cp.FindPath("a/b").Path())
}

func TestNodeCopyFieldsFrom(t *testing.T) {
	from := NewRoot("from")
	from.NewChild("kid")
	from.AddCapability(&testCap{1})
	from.SetProperty("p", "v")

	to := NewRoot("to")
	to.CopyFieldsFrom(from)
	assert.Equal(t, "to", to.Name)
	assert.Empty(t, to.Children)
	assert.Empty(t, to.Caps)
	assert.Equal(t, "v", to.Property("p"))
	to.SetProperty("p", "w")
	assert.Equal(t, "v", from.Property("p"))
}
