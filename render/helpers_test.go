// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"testing"

	"cogentcore.org/scene/base/tolassert"
	"cogentcore.org/scene/math32"
)

func assertVector3(t *testing.T, want, have math32.Vector3) {
	t.Helper()
	tolassert.EqualTol(t, want.X, have.X, 1e-5, "X: want %v, have %v", want, have)
	tolassert.EqualTol(t, want.Y, have.Y, 1e-5, "Y: want %v, have %v", want, have)
	tolassert.EqualTol(t, want.Z, have.Z, 1e-5, "Z: want %v, have %v", want, have)
}

// testObject is a configurable object that records what happens to it.
type testObject struct {
	name     string
	provides Capability
	deps     Capability

	// emit makes Traverse emit a traverse node with bounds.
	emit   bool
	bounds math32.Box3

	// stop makes Traverse return false.
	stop bool

	// noInit makes Init fail.
	noInit bool

	// log receives the events of the object, if set.
	log *[]string

	inits      int
	released   int
	nodesBuilt int
}

func (o *testObject) record(ev string) {
	if o.log != nil {
		*o.log = append(*o.log, ev+" "+o.name)
	}
}

func (o *testObject) Provides() Capability     { return o.provides }
func (o *testObject) Dependencies() Capability { return o.deps }

func (o *testObject) Init(node *SceneNode) bool {
	o.inits++
	return !o.noInit
}
func (o *testObject) Release()                  { o.released++ }
func (o *testObject) AutoBuild() bool           { return true }
func (o *testObject) NodeBuilt(node *SceneNode) { o.nodesBuilt++ }

func (o *testObject) Traverse(node *SceneNode, action Action) bool {
	o.record("traverse")
	if o.emit {
		action.Emit(o, o.bounds)
	}
	return !o.stop
}

func (o *testObject) PostTraverse(node *SceneNode, action Action) {
	o.record("post")
}

func (o *testObject) Dispatch(tn *TraverseNode, action Action) {
	o.record("dispatch")
}

func (o *testObject) Clone() Object {
	no := *o
	no.name += "-clone"
	return &no
}

// testMatrixObject pushes a translation and pops it after the children.
type testMatrixObject struct {
	testObject
	offset math32.Vector3
}

func (o *testMatrixObject) Traverse(node *SceneNode, action Action) bool {
	action.PushMatrix(math32.Translate4(o.offset), true)
	return true
}

func (o *testMatrixObject) PostTraverse(node *SceneNode, action Action) {
	action.PopMatrix()
}

// testSource is a source object for building scene graphs.
type testSource struct {
	name string
	kids []any
	caps []any
}

func (s *testSource) NodeName() string      { return s.name }
func (s *testSource) RenderChildren() []any { return s.kids }
func (s *testSource) Capabilities() []any   { return s.caps }

func (s *testSource) add(kids ...*testSource) *testSource {
	for _, k := range kids {
		s.kids = append(s.kids, k)
	}
	return s
}

// gate is a [RenderableParent] capability.
type gate func(child any) bool

func (g gate) CanParentRenderable(child any) bool { return g(child) }

// boundsCap is a [Boundable] capability.
type boundsCap struct {
	box math32.Box3
}

func (b *boundsCap) LocalBounds() math32.Box3 { return b.box }

func newSource(name string, caps ...any) *testSource {
	return &testSource{name: name, caps: caps}
}

func newObject(name string) *testObject {
	return &testObject{name: name}
}
