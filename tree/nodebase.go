// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tree provides a tree of named nodes with properties and
// capabilities, which serves as the source document of a scene graph.
package tree

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/jinzhu/copier"
)

// NodeBase is a node in a tree. Each node has a name, a parent, an
// ordered list of children, a property map, and a list of capability
// values, such as renderable components, that it carries.
//
// Nodes should be made with [NewRoot] or [NodeBase.NewChild], or added
// to a parent with [NodeBase.AddChild], so that their parent is set.
type NodeBase struct {

	// Name is the name of this node, unique among its siblings
	// so that paths resolve. A / in it is escaped in paths.
	Name string `copier:"-"`

	// Parent is the parent of this node, or nil for the root.
	Parent *NodeBase `copier:"-" json:"-"`

	// Children is the list of children of this node. All of them have
	// this node as their parent.
	Children []*NodeBase `copier:"-" json:",omitempty"`

	// Properties holds arbitrary key-value properties, such as the
	// material names of scene files. Cloning deep copies them.
	Properties map[string]any `json:",omitempty"`

	// Caps are the capability values carried by this node.
	Caps []any `copier:"-" json:"-"`
}

// NewRoot returns a new root node with the given name.
func NewRoot(name string) *NodeBase {
	return &NodeBase{Name: name}
}

// String returns the path of the node.
func (n *NodeBase) String() string {
	if n == nil {
		return "nil"
	}
	return n.Path()
}

// NodeName returns the name of the node.
func (n *NodeBase) NodeName() string {
	return n.Name
}

// Child returns the child at the given index, or nil if it is out of range.
func (n *NodeBase) Child(i int) *NodeBase {
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// ChildByName returns the first child with the given name, or nil.
func (n *NodeBase) ChildByName(name string) *NodeBase {
	for _, k := range n.Children {
		if k.Name == name {
			return k
		}
	}
	return nil
}

// EscapePathName returns the name with any / replaced by \\.
func EscapePathName(name string) string {
	return strings.ReplaceAll(name, "/", `\\`)
}

// UnescapePathName reverses [EscapePathName].
func UnescapePathName(name string) string {
	return strings.ReplaceAll(name, `\\`, "/")
}

// Path returns the / separated names from the root down to the node,
// with a leading /.
func (n *NodeBase) Path() string {
	name := "/" + EscapePathName(n.Name)
	if n.Parent == nil {
		return name
	}
	return n.Parent.Path() + name
}

// FindPath returns the node at the given path relative to this node,
// in the format of [NodeBase.Path] without this node's own name, or nil
// if there is none. Empty path elements are ignored, so "" is this node.
func (n *NodeBase) FindPath(path string) *NodeBase {
	cur := n
	for _, nm := range strings.Split(path, "/") {
		if nm == "" {
			continue
		}
		if cur = cur.ChildByName(UnescapePathName(nm)); cur == nil {
			return nil
		}
	}
	return cur
}

// AddChild adds the given child at the end of the children,
// removing it from any parent it already has.
func (n *NodeBase) AddChild(kid *NodeBase) {
	if p := kid.Parent; p != nil {
		if i := slices.Index(p.Children, kid); i >= 0 {
			p.Children = slices.Delete(p.Children, i, i+1)
		}
	}
	n.Children = append(n.Children, kid)
	kid.Parent = n
}

// NewChild adds a new child with the given name and returns it.
func (n *NodeBase) NewChild(name string) *NodeBase {
	kid := &NodeBase{Name: name}
	n.AddChild(kid)
	return kid
}

// SetProperty sets the given property.
func (n *NodeBase) SetProperty(key string, value any) {
	if n.Properties == nil {
		n.Properties = map[string]any{}
	}
	n.Properties[key] = value
}

// Property returns the given property, or nil if it is not set.
func (n *NodeBase) Property(key string) any {
	return n.Properties[key]
}

// AddCapability adds the given capability values to the node.
func (n *NodeBase) AddCapability(caps ...any) {
	n.Caps = append(n.Caps, caps...)
}

// Capabilities returns the capability values of the node.
func (n *NodeBase) Capabilities() []any {
	return n.Caps
}

// Clone returns a deep copy of the tree from this node down, without
// a parent. Capability values are shared with the copy unless they
// implement [Cloner].
func (n *NodeBase) Clone() *NodeBase {
	nc := &NodeBase{Name: n.Name}
	nc.CopyFieldsFrom(n)
	for _, c := range n.Caps {
		if cl, ok := c.(Cloner); ok {
			c = cl.CloneCapability()
		}
		nc.Caps = append(nc.Caps, c)
	}
	for _, kid := range n.Children {
		nc.AddChild(kid.Clone())
	}
	return nc
}

// Cloner is implemented by capability values that are copied
// when their node is cloned.
type Cloner interface {
	CloneCapability() any
}

// CopyFieldsFrom deep copies the fields of the given node that do not
// have a `copier:"-"` struct tag, which are its properties.
func (n *NodeBase) CopyFieldsFrom(from *NodeBase) {
	err := copier.CopyWithOption(n, from, copier.Option{CaseSensitive: true, DeepCopy: true})
	if err != nil {
		slog.Error("tree.NodeBase.CopyFieldsFrom", "err", err)
	}
}
