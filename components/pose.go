// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package components provides standard renderable components of
// scene nodes: transforms, render states, culling, meshes and spheres,
// along with the source capabilities they read.
package components

import (
	"cogentcore.org/scene/math32"
)

// Pose contains the full specification of position and orientation,
// always relative to the parent element. It is a source capability
// read by [Transform].
type Pose struct {

	// Pos is the position of the element, relative to the parent.
	Pos math32.Vector3

	// Rot is the Euler rotation in degrees.
	Rot math32.Vector3

	// Scl is the scale, relative to the parent.
	Scl math32.Vector3

	// Anchor is the point that rotation and scaling are about.
	Anchor math32.Vector3
}

// NewPose returns a new pose at the given position with unit scale.
func NewPose(pos math32.Vector3) *Pose {
	ps := &Pose{Pos: pos}
	ps.Defaults()
	return ps
}

// Defaults sets defaults only if current values are nil
func (ps *Pose) Defaults() {
	if ps.Scl.IsNil() {
		ps.Scl.Set(1, 1, 1)
	}
}

// SetEulerRotation sets the rotation in Euler angles (degrees).
func (ps *Pose) SetEulerRotation(x, y, z float32) *Pose {
	ps.Rot.Set(x, y, z)
	return ps
}

// SetScale sets the scale.
func (ps *Pose) SetScale(x, y, z float32) *Pose {
	ps.Scl.Set(x, y, z)
	return ps
}

// MoveOnAxisAbs moves (translates) the specified distance on the specified local axis,
// in absolute X,Y,Z coordinates.
func (ps *Pose) MoveOnAxisAbs(x, y, z, dist float32) {
	ps.Pos.SetAdd(math32.Vec3(x, y, z).Normal().MulScalar(dist))
}

func (ps *Pose) Translation() math32.Vector3 { return ps.Pos }
func (ps *Pose) Rotation() math32.Vector3    { return ps.Rot }
func (ps *Pose) Scale() math32.Vector3       { return ps.Scl }
func (ps *Pose) Pivot() math32.Vector3       { return ps.Anchor }

// LocalTransform returns the matrix that scales and rotates about the
// anchor and then translates by the position. A nil scale is treated
// as unit scale.
func (ps *Pose) LocalTransform() math32.Matrix4 {
	scl := ps.Scl
	if scl.IsNil() {
		scl = math32.Vec3(1, 1, 1)
	}
	var m math32.Matrix4
	m.SetTransform(ps.Pos, ps.Rot.MulScalar(math32.DegToRad(1)), scl, ps.Anchor)
	return m
}

// BoxBounds is a source capability giving the local bounding box
// of a source, read by [Cull].
type BoxBounds struct {
	Box math32.Box3
}

// NewBoxBounds returns bounds with the given corners.
func NewBoxBounds(min, max math32.Vector3) *BoxBounds {
	return &BoxBounds{Box: math32.Box3{Min: min, Max: max}}
}

func (bb *BoxBounds) LocalBounds() math32.Box3 {
	return bb.Box
}
