// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

// View is the logical view of a tree of [NodeBase]s, used by the scene
// builder to find the children of a source node.
type View struct {

	// Filter, if set, excludes children for which it returns false,
	// along with their subtrees.
	Filter func(n *NodeBase) bool
}

// Children returns the children of the given parent, which must be a
// [*NodeBase]. It returns nil for any other parent.
func (v View) Children(parent any) []any {
	n, ok := parent.(*NodeBase)
	if !ok || n == nil {
		return nil
	}
	kids := make([]any, 0, len(n.Children))
	for _, k := range n.Children {
		if v.Filter != nil && !v.Filter(k) {
			continue
		}
		kids = append(kids, k)
	}
	return kids
}
