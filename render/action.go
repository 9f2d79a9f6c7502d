// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"cogentcore.org/scene/camera"
	"cogentcore.org/scene/math32"
)

// Action traverses a scene graph into a list of [TraverseNode]s and
// dispatches them. Objects use it during traversal to manage the
// transform and state stacks and to emit draw calls.
type Action interface {

	// Dispatch traverses the scene from the given root as seen by the
	// given camera, sorts the resulting nodes into passes, and
	// dispatches them in order.
	Dispatch(root *SceneNode, cam *camera.Camera)

	// BuildTraverseList traverses the scene from the given root and
	// returns the unsorted traverse list.
	BuildTraverseList(root *SceneNode, cam *camera.Camera) []*TraverseNode

	// TraverseSubGraph traverses the given node and its descendants.
	TraverseSubGraph(node *SceneNode)

	// Clear returns all traverse nodes to the pool and resets the stacks.
	Clear()

	// PushMatrix pushes the given matrix, multiplied onto the current
	// top matrix if multiply is true.
	PushMatrix(m *math32.Matrix4, multiply bool)

	PopMatrix()

	// TopMatrix returns the current world transform.
	TopMatrix() *math32.Matrix4

	PushRenderState(s *State)

	PopRenderState()

	// RenderState returns the current composed render state.
	RenderState() *State

	TraverseState() TraverseState

	// RenderObject returns the object being traversed or dispatched.
	RenderObject() Object

	ViewportWidth() int

	ViewportHeight() int

	Camera() *camera.Camera

	// GetUnusedNode returns a traverse node from the pool.
	GetUnusedNode() *TraverseNode

	// Emit adds a traverse node for the given object at the current
	// transform and state, with the given local bounds. It returns nil
	// if the filter of the action rejects the object.
	Emit(obj Object, localBounds math32.Box3) *TraverseNode
}

// TraverseState is the position of an action in the scene graph.
type TraverseState struct {

	// Node is the node being traversed.
	Node *SceneNode

	// Path is the path from the root down to Node. It is only valid
	// during the traversal of Node.
	Path []*SceneNode
}

// RenderAction is the standard [Action].
type RenderAction struct {

	// DispatchFunc, if set, is called to dispatch each traverse node
	// instead of the Dispatch method of its object.
	DispatchFunc func(tn *TraverseNode)

	guardian *Guardian
	sorter   *Sorter
	filter   func(obj Object) bool

	pool     []*TraverseNode
	list     []*TraverseNode
	matrices []*math32.Matrix4
	identity math32.Matrix4
	states   StateStack
	defState State
	path     []*SceneNode
	object   Object

	cam           *camera.Camera
	width, height int
}

// NewRenderAction returns a new action committing states through the
// given guardian, which may be nil to dispatch without committing.
func NewRenderAction(g *Guardian) *RenderAction {
	ra := &RenderAction{guardian: g, sorter: NewSorter()}
	ra.identity.SetIdentity()
	ra.defState.Defaults()
	return ra
}

// Guardian returns the guardian of the action, which may be nil.
func (ra *RenderAction) Guardian() *Guardian {
	return ra.guardian
}

// Sorter returns the sorter of the action.
func (ra *RenderAction) Sorter() *Sorter {
	return ra.sorter
}

// SetViewport sets the viewport size in pixels.
func (ra *RenderAction) SetViewport(width, height int) {
	ra.width, ra.height = width, height
}

func (ra *RenderAction) ViewportWidth() int  { return ra.width }
func (ra *RenderAction) ViewportHeight() int { return ra.height }

// SetFilter sets the function selecting the objects that can emit
// traverse nodes. A nil filter accepts all objects.
func (ra *RenderAction) SetFilter(filter func(obj Object) bool) {
	ra.filter = filter
}

// FilterType returns a filter accepting the objects of type T.
func FilterType[T any]() func(obj Object) bool {
	return func(obj Object) bool {
		_, ok := obj.(T)
		return ok
	}
}

// FilterCapability returns a filter accepting the objects that
// provide any of the given capabilities.
func FilterCapability(c Capability) func(obj Object) bool {
	return func(obj Object) bool {
		return obj.Provides().HasAny(c)
	}
}

// FilterAny returns a filter accepting the objects that any of
// the given filters accepts.
func FilterAny(filters ...func(obj Object) bool) func(obj Object) bool {
	return func(obj Object) bool {
		for _, f := range filters {
			if f(obj) {
				return true
			}
		}
		return false
	}
}

func (ra *RenderAction) Dispatch(root *SceneNode, cam *camera.Camera) {
	defer ra.Clear()
	for _, tn := range ra.BuildTraverseList(root, cam) {
		ra.sorter.Add(tn)
	}
	for _, tn := range ra.sorter.All() {
		if ra.guardian != nil {
			ra.guardian.Commit(&tn.State)
		}
		ra.object = tn.Object
		if ra.DispatchFunc != nil {
			ra.DispatchFunc(tn)
		} else {
			tn.Object.Dispatch(tn, ra)
		}
	}
	ra.object = nil
}

// BuildTraverseList clears the action and traverses the scene from
// the given root. The root transform is the axis system of the camera,
// so that world space is the internal space of the camera. The camera
// may be nil, in which case objects do not cull.
func (ra *RenderAction) BuildTraverseList(root *SceneNode, cam *camera.Camera) []*TraverseNode {
	ra.Clear()
	ra.cam = cam
	base := ra.identity
	if cam != nil {
		base = cam.AxisSystem()
		ra.sorter.SetViewMatrix(cam.ViewMatrix())
	}
	ra.PushMatrix(&base, false)
	if root != nil {
		ra.TraverseSubGraph(root)
	}
	ra.PopMatrix()
	return ra.list
}

// TraverseSubGraph traverses the given node if it is visible. The
// composed state of its state stack is pushed, and each of its objects
// is traversed in order until one returns false, in which case the rest
// of its objects and its children are skipped. Otherwise its children
// are traversed. Then the objects that were traversed are post-traversed
// in reverse order.
func (ra *RenderAction) TraverseSubGraph(node *SceneNode) {
	if !node.Visible {
		return
	}
	ra.path = append(ra.path, node)
	pushed := false
	if node.StateStack.Len() > 0 {
		ra.PushRenderState(node.StateStack.ComposedState())
		pushed = true
	}
	objs := node.Objects.Slice()
	n := 0
	cont := true
	for _, o := range objs {
		ra.object = o
		n++
		if !o.Traverse(node, ra) {
			cont = false
			break
		}
	}
	if cont {
		for _, kid := range node.Children {
			ra.TraverseSubGraph(kid)
		}
	}
	for i := n - 1; i >= 0; i-- {
		if pt, ok := objs[i].(PostTraverser); ok {
			ra.object = objs[i]
			pt.PostTraverse(node, ra)
		}
	}
	ra.object = nil
	if pushed {
		ra.PopRenderState()
	}
	clear(ra.path[len(ra.path)-1:])
	ra.path = ra.path[:len(ra.path)-1]
}

func (ra *RenderAction) Clear() {
	for _, tn := range ra.list {
		tn.Reset()
		ra.pool = append(ra.pool, tn)
	}
	clear(ra.list)
	ra.list = ra.list[:0]
	ra.sorter.Clear()
	clear(ra.matrices)
	ra.matrices = ra.matrices[:0]
	ra.states.Clear()
	clear(ra.path)
	ra.path = ra.path[:0]
	ra.object = nil
	ra.cam = nil
}

// PushMatrix pushes a new matrix, so traverse nodes can keep
// references to the matrices below the top.
func (ra *RenderAction) PushMatrix(m *math32.Matrix4, multiply bool) {
	nm := new(math32.Matrix4)
	if multiply && len(ra.matrices) > 0 {
		nm.MulMatrices(ra.TopMatrix(), m)
	} else {
		*nm = *m
	}
	ra.matrices = append(ra.matrices, nm)
}

func (ra *RenderAction) PopMatrix() {
	if n := len(ra.matrices); n > 0 {
		ra.matrices[n-1] = nil
		ra.matrices = ra.matrices[:n-1]
	}
}

// TopMatrix returns the top matrix, or the identity if the stack is empty.
func (ra *RenderAction) TopMatrix() *math32.Matrix4 {
	if n := len(ra.matrices); n > 0 {
		return ra.matrices[n-1]
	}
	return &ra.identity
}

func (ra *RenderAction) PushRenderState(s *State) {
	ra.states.Push(s)
}

func (ra *RenderAction) PopRenderState() {
	ra.states.Pop()
}

// RenderState returns the composed state, or the default state if
// no state has been pushed.
func (ra *RenderAction) RenderState() *State {
	if s := ra.states.ComposedState(); s != nil {
		return s
	}
	return &ra.defState
}

func (ra *RenderAction) TraverseState() TraverseState {
	ts := TraverseState{Path: ra.path}
	if n := len(ra.path); n > 0 {
		ts.Node = ra.path[n-1]
	}
	return ts
}

func (ra *RenderAction) RenderObject() Object {
	return ra.object
}

// Camera returns the camera of the current traversal, or nil.
func (ra *RenderAction) Camera() *camera.Camera {
	return ra.cam
}

func (ra *RenderAction) GetUnusedNode() *TraverseNode {
	if n := len(ra.pool); n > 0 {
		tn := ra.pool[n-1]
		ra.pool[n-1] = nil
		ra.pool = ra.pool[:n-1]
		return tn
	}
	return &TraverseNode{}
}

func (ra *RenderAction) Emit(obj Object, localBounds math32.Box3) *TraverseNode {
	if ra.filter != nil && !ra.filter(obj) {
		return nil
	}
	tn := ra.GetUnusedNode()
	tn.Init(obj, ra.TopMatrix(), ra.RenderState(), ra.path, localBounds)
	ra.list = append(ra.list, tn)
	return tn
}
