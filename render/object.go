// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

// Object is a renderable component attached to a [SceneNode].
type Object interface {

	// Provides returns the capabilities this object provides
	// to the objects that come after it.
	Provides() Capability

	// Dependencies returns the capabilities that must be provided by
	// objects placed before this one in the node's [ObjectList].
	Dependencies() Capability

	// Init initializes the object for the given node. It returns false
	// if the object cannot render on that node, in which case it is not
	// added to the node.
	Init(node *SceneNode) bool

	// Traverse is called when the action reaches the node. It typically
	// pushes transforms or states, or emits a [TraverseNode] via
	// [Action.Emit]. Returning false stops the traversal of the node:
	// its remaining objects and its children are skipped.
	Traverse(node *SceneNode, action Action) bool

	// Dispatch renders the given traverse node, which was emitted
	// by this object, with its resolved transform and state.
	Dispatch(tn *TraverseNode, action Action)

	// Release frees any resources the object holds.
	Release()
}

// PostTraverser is an optional interface for objects that need to
// undo their Traverse changes after the node's children have been
// traversed, such as popping a transform.
type PostTraverser interface {
	PostTraverse(node *SceneNode, action Action)
}

// Cloner is an optional interface for objects that can be copied
// along with their [SceneNode]. Objects that do not implement it are
// shared by the copy.
type Cloner interface {
	Clone() Object
}

// DependsOn returns whether a must come after b: whether b provides
// any of the capabilities a depends on.
func DependsOn(a, b Object) bool {
	return a.Dependencies().HasAny(b.Provides())
}
