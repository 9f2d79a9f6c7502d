// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"slices"

	"github.com/jinzhu/copier"

	"cogentcore.org/scene/base/errors"
	"cogentcore.org/scene/tree"
)

// SceneNode is a node in the scene graph. It owns its objects, its
// state stack and its children. Its source is a non-owning reference
// to the model object it was built from.
type SceneNode struct {

	// Name is the name of the node, typically that of its source.
	Name string

	// Source is the model object the node was built from.
	Source any `copier:"-"`

	// Objects are the renderable components of the node, in dependency order.
	Objects ObjectList `copier:"-"`

	// Children are the child nodes.
	Children []*SceneNode `copier:"-"`

	// StateStack holds the render states applied to the node and its
	// descendants, composed into one state when traversed.
	StateStack StateStack `copier:"-"`

	// Visible is whether the node and its descendants are traversed.
	Visible bool

	// Parent is the parent node, or nil for the root.
	Parent *SceneNode `copier:"-" json:"-"`
}

// NewSceneNode returns a new visible node for the given source.
func NewSceneNode(source any) *SceneNode {
	n := &SceneNode{Source: source, Visible: true}
	if nm, ok := source.(Namer); ok {
		n.Name = nm.NodeName()
	}
	return n
}

// AddChild adds the given child at the end of the children,
// removing it from any previous parent.
func (n *SceneNode) AddChild(kid *SceneNode) {
	if kid.Parent != nil {
		kid.Parent.RemoveChild(kid)
	}
	n.Children = append(n.Children, kid)
	kid.Parent = n
}

// RemoveChild removes the given child without releasing it,
// returning false if it is not a child of this node.
func (n *SceneNode) RemoveChild(kid *SceneNode) bool {
	i := slices.Index(n.Children, kid)
	if i < 0 {
		return false
	}
	n.Children = slices.Delete(n.Children, i, i+1)
	kid.Parent = nil
	return true
}

// Clear releases the objects of the node and all of its descendants,
// and removes all of its children.
func (n *SceneNode) Clear() {
	n.ClearSubGraph()
	for _, o := range n.Objects.Slice() {
		o.Release()
	}
	n.Objects.Clear()
}

// ClearSubGraph clears all of the children of the node, releasing
// their objects, and removes them. The node keeps its own objects.
func (n *SceneNode) ClearSubGraph() {
	for _, kid := range n.Children {
		kid.Clear()
		kid.Parent = nil
	}
	clear(n.Children)
	n.Children = n.Children[:0]
}

// Copy returns a copy of the node with the same source and a deep copy
// of its state stack. Objects implementing [Cloner] are cloned, and
// the others are shared with the copy. Copying nodes with children is
// not supported, and returns an error wrapping [ErrNotImplemented].
func (n *SceneNode) Copy() (*SceneNode, error) {
	if len(n.Children) > 0 {
		return nil, errors.Errorf("render.SceneNode.Copy %q: copying a node with children: %w", n.Name, ErrNotImplemented)
	}
	nn := &SceneNode{Source: n.Source}
	if err := copier.CopyWithOption(nn, n, copier.Option{DeepCopy: true}); err != nil {
		return nil, errors.Errorf("render.SceneNode.Copy %q: %w", n.Name, err)
	}
	nn.StateStack = *n.StateStack.Clone()
	for _, o := range n.Objects.Slice() {
		if c, ok := o.(Cloner); ok {
			o = c.Clone()
		}
		if err := nn.Objects.Add(o); err != nil {
			return nil, err
		}
	}
	return nn, nil
}

// WalkDown calls the given function on the node and all of its
// descendants, depth first. It stops walking the current branch if the
// function returns [tree.Break]. It returns false if the walk was
// stopped at this node.
func (n *SceneNode) WalkDown(fun func(n *SceneNode) bool) bool {
	if !fun(n) {
		return tree.Break
	}
	for _, kid := range n.Children {
		kid.WalkDown(fun)
	}
	return tree.Continue
}

// FindBySource returns the first node, depth first, built from the
// given source, or nil if there is none.
func (n *SceneNode) FindBySource(source any) *SceneNode {
	if _, ok := sourceKey(source); !ok {
		return nil
	}
	var found *SceneNode
	n.WalkDown(func(k *SceneNode) bool {
		if found != nil {
			return tree.Break
		}
		if k.Source == source {
			found = k
			return tree.Break
		}
		return tree.Continue
	})
	return found
}

// NumNodes returns the number of nodes in the subtree, including this one.
func (n *SceneNode) NumNodes() int {
	num := 0
	n.WalkDown(func(k *SceneNode) bool {
		num++
		return tree.Continue
	})
	return num
}

// Path returns the nodes from the root down to this node.
func (n *SceneNode) Path() []*SceneNode {
	var path []*SceneNode
	for k := n; k != nil; k = k.Parent {
		path = append(path, k)
	}
	slices.Reverse(path)
	return path
}
