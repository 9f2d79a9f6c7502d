// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package components

import (
	"log/slog"

	"cogentcore.org/scene/math32"
	"cogentcore.org/scene/render"
)

// objectBase provides the parts of [render.Object] and
// [render.SceneNodeBuilder] that most components leave empty.
type objectBase struct{}

func (objectBase) Dependencies() render.Capability                        { return 0 }
func (objectBase) Dispatch(tn *render.TraverseNode, action render.Action) {}
func (objectBase) Release()                                               {}
func (objectBase) AutoBuild() bool                                        { return true }
func (objectBase) NodeBuilt(node *render.SceneNode)                       {}

// Transform pushes the local transform of its source onto the matrix
// stack of the action, and pops it after the children of the node.
// Its source must be [render.Transformable].
type Transform struct {
	objectBase
	source render.Transformable
	matrix math32.Matrix4
}

func (t *Transform) Provides() render.Capability { return render.CapTransform }

func (t *Transform) Init(node *render.SceneNode) bool {
	src, ok := render.As[render.Transformable](node.Source)
	if !ok {
		slog.Debug("components.Transform.Init: source is not transformable", "node", node.Name)
		return false
	}
	t.source = src
	return true
}

func (t *Transform) Traverse(node *render.SceneNode, action render.Action) bool {
	t.matrix = t.source.LocalTransform()
	action.PushMatrix(&t.matrix, true)
	return true
}

func (t *Transform) PostTraverse(node *render.SceneNode, action render.Action) {
	action.PopMatrix()
}

func (t *Transform) Release() { t.source = nil }

func (t *Transform) Clone() render.Object {
	c := *t
	return &c
}

// StateSetter applies a render state to its node and, through state
// composition, to the descendants of the node.
type StateSetter struct {
	objectBase

	// State is the state pushed onto the state stack of the node.
	State render.State

	node *render.SceneNode
}

// NewStateSetter returns a state setter with the default state and the
// given mode.
func NewStateSetter(mode render.Mode) *StateSetter {
	ss := &StateSetter{}
	ss.State.Defaults()
	ss.State.Mode = mode
	return ss
}

func (ss *StateSetter) Provides() render.Capability { return render.CapRenderState }

func (ss *StateSetter) Init(node *render.SceneNode) bool {
	ss.node = node
	node.StateStack.Push(&ss.State)
	return true
}

func (ss *StateSetter) Traverse(node *render.SceneNode, action render.Action) bool {
	return true
}

// Release removes the state from the state stack of the node,
// if it is on top.
func (ss *StateSetter) Release() {
	if ss.node != nil && ss.node.StateStack.Top() == &ss.State {
		ss.node.StateStack.Pop()
	}
	ss.node = nil
}

func (ss *StateSetter) Clone() render.Object {
	return &StateSetter{State: ss.State}
}

// Cull skips the objects after it and the children of its node when
// the world bounds of its source are outside of the view frustum of
// the camera. It does not cull when there is no camera.
// Its source must be [render.Boundable].
type Cull struct {
	objectBase
	source render.Boundable

	// Culled is the number of times the node has been culled.
	Culled int
}

func (c *Cull) Provides() render.Capability     { return render.CapBounds }
func (c *Cull) Dependencies() render.Capability { return render.CapTransform }

func (c *Cull) Init(node *render.SceneNode) bool {
	src, ok := render.As[render.Boundable](node.Source)
	if !ok {
		slog.Debug("components.Cull.Init: source has no bounds", "node", node.Name)
		return false
	}
	c.source = src
	return true
}

func (c *Cull) Traverse(node *render.SceneNode, action render.Action) bool {
	cam := action.Camera()
	if cam == nil {
		return true
	}
	wb := c.source.LocalBounds().MulMatrix4(action.TopMatrix())
	f := cam.WorldFrustum()
	if f.IntersectsBox(wb) {
		return true
	}
	c.Culled++
	slog.Debug("components.Cull.Traverse: culled", "node", node.Name)
	return false
}

func (c *Cull) Release() { c.source = nil }

func (c *Cull) Clone() render.Object {
	return &Cull{source: c.source}
}
