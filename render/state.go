// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"cogentcore.org/scene/math32"
)

// State is a composable set of render mode flags and attributes.
// InheritState selects the flags and attributes a node pulls from its
// parent when composed, and OverrideChildState the ones it forces onto
// its descendants regardless of their own settings.
type State struct {

	// Mode is the set of render mode flags.
	Mode Mode

	// InheritState is the set of flags taken from the parent.
	InheritState Mode

	// OverrideChildState is the set of flags forced onto descendants.
	OverrideChildState Mode

	// SolidColor is the diffuse color, used with [SolidColor].
	SolidColor math32.Vector4

	// AmbientColor is the ambient color; gated by [SolidColor].
	AmbientColor math32.Vector4

	// EmissionColor is the emitted color; gated by [SolidColor].
	EmissionColor math32.Vector4

	// SpecularColor is the specular highlight color, used with [Specular].
	SpecularColor math32.Vector4

	// WireframeColor is the wireframe line color, used with [WireframeColor].
	WireframeColor math32.Vector4

	// Shininess is the specular exponent; gated by [Specular].
	Shininess float32

	// LineThickness is the wireframe line thickness, used with [WireframeThickness].
	LineThickness float32

	// TextureName identifies the texture, used with [Textured]; 0 is none.
	TextureName int
}

// NewState returns a new state with default values.
func NewState() *State {
	s := &State{}
	s.Defaults()
	return s
}

// Defaults sets the default state: smooth, lit, solid white surfaces
// with back faces culled, and black one pixel wireframes.
func (s *State) Defaults() {
	*s = State{
		Mode:           Smooth | SolidColor | Lit | CullBackFace,
		SolidColor:     math32.Vec4(1, 1, 1, 1),
		AmbientColor:   math32.Vec4(0, 0, 0, 1),
		EmissionColor:  math32.Vec4(0, 0, 0, 1),
		SpecularColor:  math32.Vec4(1, 1, 1, 1),
		WireframeColor: math32.Vec4(0, 0, 0, 1),
		Shininess:      30,
		LineThickness:  1,
	}
}

// Clone returns a copy of the state.
func (s *State) Clone() *State {
	ns := *s
	return &ns
}

// Equal returns whether the two states are identical.
func (s *State) Equal(o *State) bool {
	return *s == *o
}

// ComposeFrom composes this state with the given parent state.
// Mode bits come from this state unless the parent overrides them or
// this state inherits them, and likewise for the attributes gated by
// each flag. The override flags accumulate, so that a composed state
// carries the overrides of all its ancestors.
func (s *State) ComposeFrom(parent *State) {
	bitsFromChild := ((^parent.OverrideChildState & ^s.InheritState) | s.OverrideChildState) & s.Mode
	overrideFromParent := parent.OverrideChildState &^ s.OverrideChildState
	gate := overrideFromParent | s.InheritState
	bitsFromParent := gate & parent.Mode

	if gate.HasAny(SolidColor) {
		s.SolidColor = parent.SolidColor
		s.AmbientColor = parent.AmbientColor
		s.EmissionColor = parent.EmissionColor
	}
	if gate.HasAny(Specular) {
		s.SpecularColor = parent.SpecularColor
		s.Shininess = parent.Shininess
	}
	if gate.HasAny(WireframeColor) {
		s.WireframeColor = parent.WireframeColor
	}
	if gate.HasAny(WireframeThickness) {
		s.LineThickness = parent.LineThickness
	}
	if gate.HasAny(Textured) && s.TextureName == 0 && parent.Mode.HasAny(Textured) {
		s.TextureName = parent.TextureName
	}

	s.Mode = bitsFromChild | bitsFromParent
	s.OverrideChildState |= parent.OverrideChildState
}

// CommitAllBitsToGuardian calls [Guardian.SetRenderStateByIndex] for
// every defined mode bit, whether or not it is set in this state.
func (s *State) CommitAllBitsToGuardian(g *Guardian) {
	for i := 0; i < ModeBitsN; i++ {
		g.SetRenderStateByIndex(i, s)
	}
}
