// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package components

import (
	"fmt"
	"strings"
	"sync"

	"cogentcore.org/scene/math32"
	"cogentcore.org/scene/render"
)

// DrawCall is a single draw of a renderable, with its resolved
// world transform and render state.
type DrawCall struct {

	// Name is the name of the drawn renderable.
	Name string

	// Node is the name of the scene node of the renderable.
	Node string

	// Pass is the render pass the call was sorted into.
	Pass render.Pass

	Transform math32.Matrix4

	State render.State

	WorldBounds math32.Box3
}

// NewDrawCall returns the draw call for the given traverse node.
func NewDrawCall(name string, tn *render.TraverseNode) *DrawCall {
	dc := &DrawCall{Name: name, State: tn.State, WorldBounds: tn.WorldBounds}
	if tn.Transform != nil {
		dc.Transform = *tn.Transform
	}
	if n := tn.Node(); n != nil {
		dc.Node = n.Name
	}
	dc.Pass, _ = render.ClassifyMode(tn.State.Mode)
	return dc
}

func (dc *DrawCall) String() string {
	return fmt.Sprintf("%s %s (%s) mode=%s pos=%v", dc.Pass, dc.Name, dc.Node, dc.State.Mode, dc.Transform.Pos())
}

// Drawer receives draw calls. It stands in for the submission
// of commands to a graphics device.
type Drawer interface {
	Draw(dc *DrawCall)
}

// Recorder is a [Drawer] that records the draw calls it receives,
// in order. It is safe for concurrent use.
type Recorder struct {
	mu    sync.Mutex
	calls []*DrawCall
}

func (r *Recorder) Draw(dc *DrawCall) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, dc)
}

// Dispatch records a draw call for the given traverse node.
// It can be used as [render.RenderAction.DispatchFunc] to record
// every dispatched object, named by its node.
func (r *Recorder) Dispatch(tn *render.TraverseNode) {
	name := ""
	if n := tn.Node(); n != nil {
		name = n.Name
	}
	r.Draw(NewDrawCall(name, tn))
}

// Calls returns a copy of the recorded draw calls.
func (r *Recorder) Calls() []*DrawCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*DrawCall(nil), r.calls...)
}

// Names returns the names of the recorded draw calls.
func (r *Recorder) Names() []string {
	calls := r.Calls()
	names := make([]string, len(calls))
	for i, dc := range calls {
		names[i] = dc.Name
	}
	return names
}

// Reset clears the recorded draw calls.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}

func (r *Recorder) String() string {
	var b strings.Builder
	for _, dc := range r.Calls() {
		b.WriteString(dc.String())
		b.WriteByte('\n')
	}
	return b.String()
}
