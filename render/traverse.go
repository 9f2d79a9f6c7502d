// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"cogentcore.org/scene/math32"
)

// TraverseNode is the record of one draw call, made during traversal
// and dispatched after sorting. Traverse nodes are pooled by their
// [Action] and must not be kept past the dispatch they were made for.
type TraverseNode struct {

	// Object is the object that emitted the node and dispatches it.
	Object Object

	// Transform is the world transform. It is shared with the action's
	// matrix stack and must not be modified.
	Transform *math32.Matrix4

	// State is a copy of the composed render state.
	State State

	// GraphPath is a copy of the scene graph path, from the root
	// down to the node of the object.
	GraphPath []*SceneNode

	// WorldBounds is the bounding box of the object in world space,
	// which is empty if the object has no bounds.
	WorldBounds math32.Box3
}

// Init sets up the node for the given object with the given transform,
// copying the state and the graph path. The world bounds are computed
// from the given local bounds.
func (tn *TraverseNode) Init(obj Object, transform *math32.Matrix4, state *State, path []*SceneNode, localBounds math32.Box3) {
	tn.Object = obj
	tn.Transform = transform
	tn.State = *state
	tn.GraphPath = append(tn.GraphPath[:0], path...)
	if transform != nil {
		tn.WorldBounds = localBounds.MulMatrix4(transform)
	} else {
		tn.WorldBounds = localBounds
	}
}

// Reset clears all references held by the node, so that it can be
// pooled without keeping the scene graph alive.
func (tn *TraverseNode) Reset() {
	tn.Object = nil
	tn.Transform = nil
	tn.State = State{}
	clear(tn.GraphPath)
	tn.GraphPath = tn.GraphPath[:0]
	tn.WorldBounds = math32.B3Empty()
}

// Node returns the scene node of the object, the last one on the
// graph path, or nil if the path is empty.
func (tn *TraverseNode) Node() *SceneNode {
	if len(tn.GraphPath) == 0 {
		return nil
	}
	return tn.GraphPath[len(tn.GraphPath)-1]
}

// worldCenter returns the center of the world bounds, or the origin
// of the transform if there are no bounds.
func (tn *TraverseNode) worldCenter() math32.Vector3 {
	if !tn.WorldBounds.IsEmpty() {
		return tn.WorldBounds.Center()
	}
	if tn.Transform != nil {
		return tn.Transform.Pos()
	}
	return math32.Vector3{}
}
