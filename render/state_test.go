// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/scene/math32"
)

func allModes() Mode {
	return ModeBit(ModeBitsN) - 1
}

func randomState(rnd *rand.Rand) *State {
	s := NewState()
	s.Mode = Mode(rnd.Uint32()) & allModes()
	s.InheritState = Mode(rnd.Uint32()) & allModes()
	s.OverrideChildState = Mode(rnd.Uint32()) & allModes()
	s.SolidColor = math32.Vec4(rnd.Float32(), rnd.Float32(), rnd.Float32(), 1)
	s.SpecularColor = math32.Vec4(rnd.Float32(), rnd.Float32(), rnd.Float32(), 1)
	s.WireframeColor = math32.Vec4(rnd.Float32(), rnd.Float32(), rnd.Float32(), 1)
	s.Shininess = rnd.Float32() * 100
	s.LineThickness = 1 + rnd.Float32()*4
	s.TextureName = rnd.IntN(3)
	return s
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "0", Mode(0).String())
	assert.Equal(t, "Smooth|Textured", (Smooth | Textured).String())
	m, err := ParseMode("smooth|TEXTURED", "Alpha")
	require.NoError(t, err)
	assert.Equal(t, Smooth|Textured|Alpha, m)
	_, err = ParseMode("Shiny")
	assert.Error(t, err)
	assert.Equal(t, 4, Textured.BitIndex())
	assert.Equal(t, -1, (Smooth | Alpha).BitIndex())
	assert.Equal(t, -1, Mode(0).BitIndex())
}

func TestComposeNoLeak(t *testing.T) {
	parent := NewState()
	parent.Mode = Smooth | Textured
	child := NewState()
	child.Mode = Wireframe
	child.ComposeFrom(parent)
	assert.Equal(t, Wireframe, child.Mode)
}

func TestComposeDeterministic(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	for range 200 {
		p, c := randomState(rnd), randomState(rnd)
		a, b := c.Clone(), c.Clone()
		a.ComposeFrom(p)
		b.ComposeFrom(p)
		assert.Equal(t, a, b)

		pO, sI, sO := p.OverrideChildState, c.InheritState, c.OverrideChildState
		fromChild := ((^pO & ^sI) | sO) & c.Mode
		fromParent := ((pO &^ sO) | sI) & p.Mode
		assert.Equal(t, fromChild|fromParent, a.Mode)
	}
}

func TestComposeOverride(t *testing.T) {
	parent := NewState()
	parent.Mode = Wireframe | WireframeColor
	parent.OverrideChildState = Wireframe | Smooth | WireframeColor
	parent.WireframeColor = math32.Vec4(1, 0, 0, 1)

	child := NewState()
	child.Mode = Smooth | Lit
	child.WireframeColor = math32.Vec4(0, 1, 0, 1)
	child.ComposeFrom(parent)
	assert.Equal(t, Wireframe|WireframeColor|Lit, child.Mode)
	assert.Equal(t, math32.Vec4(1, 0, 0, 1), child.WireframeColor)
	assert.Equal(t, parent.OverrideChildState, child.OverrideChildState)

	// the child's own override wins over the parent's
	child = NewState()
	child.Mode = Smooth
	child.OverrideChildState = Smooth
	child.ComposeFrom(parent)
	assert.Equal(t, Smooth|Wireframe|WireframeColor, child.Mode)
}

func TestComposeOverrideThreeLevels(t *testing.T) {
	red := math32.Vec4(1, 0, 0, 1)
	grand := NewState()
	grand.Mode = Wireframe | WireframeColor
	grand.OverrideChildState = Wireframe | Smooth | WireframeColor
	grand.WireframeColor = red

	// the middle level sets no override of its own
	middle := NewState()
	middle.Mode = Smooth | Lit
	middle.WireframeColor = math32.Vec4(0, 1, 0, 1)

	leaf := NewState()
	leaf.Mode = Smooth
	leaf.WireframeColor = math32.Vec4(0, 0, 1, 1)

	var ss StateStack
	ss.Push(grand)
	ss.Push(middle)
	mid := ss.ComposedState()
	assert.Equal(t, Wireframe|WireframeColor|Lit, mid.Mode)
	assert.Equal(t, grand.OverrideChildState, mid.OverrideChildState)

	ss.Push(leaf)
	got := ss.ComposedState()
	assert.Equal(t, Wireframe|WireframeColor, got.Mode)
	assert.Equal(t, red, got.WireframeColor)
	assert.Equal(t, grand.OverrideChildState, got.OverrideChildState)
	assert.Equal(t, Smooth, leaf.Mode)
}

func TestComposeInheritAttributes(t *testing.T) {
	parent := NewState()
	parent.Mode = SolidColor | Specular | WireframeThickness | Textured
	parent.SolidColor = math32.Vec4(0.5, 0.5, 0.5, 1)
	parent.AmbientColor = math32.Vec4(0.1, 0.1, 0.1, 1)
	parent.SpecularColor = math32.Vec4(0, 0, 1, 1)
	parent.Shininess = 80
	parent.LineThickness = 3
	parent.TextureName = 7

	child := NewState()
	child.Mode = 0
	child.InheritState = SolidColor | Textured
	child.ComposeFrom(parent)
	assert.Equal(t, SolidColor|Textured, child.Mode)
	assert.Equal(t, parent.SolidColor, child.SolidColor)
	assert.Equal(t, parent.AmbientColor, child.AmbientColor)
	assert.Equal(t, 7, child.TextureName)
	// not inherited
	assert.Equal(t, NewState().SpecularColor, child.SpecularColor)
	assert.Equal(t, float32(1), child.LineThickness)

	// a texture of the child's own is kept
	child = NewState()
	child.TextureName = 3
	child.InheritState = Textured
	child.ComposeFrom(parent)
	assert.Equal(t, 3, child.TextureName)

	// no texture from an untextured parent
	parent.Mode &^= Textured
	child = NewState()
	child.InheritState = Textured
	child.ComposeFrom(parent)
	assert.Equal(t, 0, child.TextureName)
}

func TestStateStack(t *testing.T) {
	rnd := rand.New(rand.NewPCG(3, 4))
	var ss StateStack
	assert.Nil(t, ss.ComposedState())
	assert.Nil(t, ss.Pop())
	assert.Nil(t, ss.Top())

	for range 50 {
		p1, p2 := randomState(rnd), randomState(rnd)
		ss.Push(p1)
		assert.Equal(t, *p1, *ss.ComposedState())
		ss.Push(p2)
		want := p2.Clone()
		want.ComposeFrom(p1)
		assert.Equal(t, *want, *ss.ComposedState())
		assert.Same(t, p2, ss.Top())
		assert.Equal(t, 2, ss.Len())

		assert.Same(t, p2, ss.Pop())
		assert.Equal(t, *p1, *ss.ComposedState())
		ss.Clear()
		assert.Equal(t, 0, ss.Len())
	}
}

func TestStateStackThree(t *testing.T) {
	rnd := rand.New(rand.NewPCG(5, 6))
	p1, p2, p3 := randomState(rnd), randomState(rnd), randomState(rnd)
	var ss StateStack
	ss.Push(p1)
	ss.Push(p2)
	ss.ComposedState()
	ss.Push(p3)

	c2 := p2.Clone()
	c2.ComposeFrom(p1)
	c3 := p3.Clone()
	c3.ComposeFrom(c2)
	assert.Equal(t, *c3, *ss.ComposedState())

	// changes to a pushed state show after Invalidate
	p1.Mode ^= Smooth
	ss.Invalidate()
	c2 = p2.Clone()
	c2.ComposeFrom(p1)
	c3 = p3.Clone()
	c3.ComposeFrom(c2)
	assert.Equal(t, *c3, *ss.ComposedState())

	cl := ss.Clone()
	assert.Equal(t, ss.Len(), cl.Len())
	assert.NotSame(t, ss.Top(), cl.Top())
	assert.True(t, ss.Top().Equal(cl.Top()))
	assert.Equal(t, *ss.ComposedState(), *cl.ComposedState())
}
