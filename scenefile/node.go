// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenefile

import (
	"cogentcore.org/scene/base/errors"
	"cogentcore.org/scene/components"
	"cogentcore.org/scene/math32"
	"cogentcore.org/scene/render"
	"cogentcore.org/scene/tree"
)

// Node is a node of a scene file. Each node becomes a [tree.NodeBase]
// carrying the components its fields call for.
type Node struct {
	Name string `json:"name" toml:"name" yaml:"name"`

	// Pos is the position relative to the parent.
	Pos Vec3 `json:"pos,omitempty" toml:"pos,omitempty" yaml:"pos,omitempty"`

	// Rot is the Euler rotation in degrees.
	Rot Vec3 `json:"rot,omitempty" toml:"rot,omitempty" yaml:"rot,omitempty"`

	// Scale is the scale, where zero means unit scale.
	Scale Vec3 `json:"scale,omitempty" toml:"scale,omitempty" yaml:"scale,omitempty"`

	// Mode is the list of render mode names of the state of the node.
	// If it is empty the node has no state of its own.
	Mode []string `json:"mode,omitempty" toml:"mode,omitempty" yaml:"mode,omitempty"`

	// Inherit is the list of mode names taken from the parent state.
	Inherit []string `json:"inherit,omitempty" toml:"inherit,omitempty" yaml:"inherit,omitempty"`

	// Override is the list of mode names forced onto the descendants.
	Override []string `json:"override,omitempty" toml:"override,omitempty" yaml:"override,omitempty"`

	// Color is the RGBA solid color of the state.
	Color *[4]float32 `json:"color,omitempty" toml:"color,omitempty" yaml:"color,omitempty"`

	// Bounds, if set, culls the node against the view frustum.
	Bounds *Bounds `json:"bounds,omitempty" toml:"bounds,omitempty" yaml:"bounds,omitempty"`

	// Box is the size of a box mesh centered on the node.
	Box *Vec3 `json:"box,omitempty" toml:"box,omitempty" yaml:"box,omitempty"`

	// Sphere is the radius of a sphere centered on the node.
	Sphere float32 `json:"sphere,omitempty" toml:"sphere,omitempty" yaml:"sphere,omitempty"`

	Mesh *Mesh `json:"mesh,omitempty" toml:"mesh,omitempty" yaml:"mesh,omitempty"`

	// Properties are arbitrary properties of the node.
	Properties map[string]any `json:"properties,omitempty" toml:"properties,omitempty" yaml:"properties,omitempty"`

	Children []*Node `json:"children,omitempty" toml:"children,omitempty" yaml:"children,omitempty"`
}

// Bounds is a bounding box.
type Bounds struct {
	Min Vec3 `json:"min" toml:"min" yaml:"min"`
	Max Vec3 `json:"max" toml:"max" yaml:"max"`
}

// Mesh is an indexed triangle mesh.
type Mesh struct {
	Vertices []Vec3 `json:"vertices" toml:"vertices" yaml:"vertices"`
	Indices  []int  `json:"indices" toml:"indices" yaml:"indices"`
}

// Tree returns a new source tree for the scene, with a root named
// after the scene holding a node for each node of the file.
// Every node gets a [components.Pose] and a [components.Transform].
func (f *File) Tree() *tree.NodeBase {
	root := tree.NewRoot(f.Name)
	for _, n := range f.Nodes {
		n.addTo(root)
	}
	return root
}

func (n *Node) addTo(parent *tree.NodeBase) {
	tn := parent.NewChild(n.Name)
	for k, v := range n.Properties {
		tn.SetProperty(k, v)
	}
	pose := components.NewPose(n.Pos.Vector3())
	pose.Rot = n.Rot.Vector3()
	if sc := n.Scale.Vector3(); !sc.IsNil() {
		pose.Scl = sc
	}
	tn.AddCapability(pose, &components.Transform{})

	if st := n.state(); st != nil {
		tn.AddCapability(st)
	}
	if n.Bounds != nil {
		tn.AddCapability(components.NewBoxBounds(n.Bounds.Min.Vector3(), n.Bounds.Max.Vector3()), &components.Cull{})
	}
	if n.Box != nil {
		tn.AddCapability(components.NewBox(n.Name, n.Box.Vector3()))
	}
	if n.Sphere > 0 {
		tn.AddCapability(components.NewSphere(n.Name, n.Sphere))
	}
	if n.Mesh != nil {
		vtx := make([]math32.Vector3, len(n.Mesh.Vertices))
		for i, v := range n.Mesh.Vertices {
			vtx[i] = v.Vector3()
		}
		tn.AddCapability(components.NewMesh(n.Name, vtx, n.Mesh.Indices))
	}
	for _, k := range n.Children {
		k.addTo(tn)
	}
}

// state returns the state setter of the node, or nil if it has no mode.
// The modes have been validated by [File.Validate].
func (n *Node) state() *components.StateSetter {
	if len(n.Mode) == 0 {
		return nil
	}
	ss := components.NewStateSetter(errors.Log1(render.ParseMode(n.Mode...)))
	ss.State.InheritState = errors.Log1(render.ParseMode(n.Inherit...))
	ss.State.OverrideChildState = errors.Log1(render.ParseMode(n.Override...))
	if n.Color != nil {
		ss.State.SolidColor = math32.Vector4FromArray(*n.Color)
	}
	return ss
}
