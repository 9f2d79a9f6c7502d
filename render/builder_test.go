// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/scene/math32"
)

func nodeNames(root *SceneNode) []string {
	var nms []string
	root.WalkDown(func(n *SceneNode) bool {
		nms = append(nms, n.Name)
		return true
	})
	return nms
}

func TestBuildObjects(t *testing.T) {
	obj := newObject("mesh")
	failed := newObject("failed")
	failed.noInit = true
	root := newSource("root").add(newSource("kid", obj, failed))

	var b Builder
	n, err := b.Build(context.Background(), root, nil)
	require.NoError(t, err)
	assert.Same(t, root, n.Source)
	require.Len(t, n.Children, 1)
	kid := n.Children[0]
	assert.Equal(t, 1, kid.Objects.Len())
	assert.Same(t, obj, kid.Objects.At(0))
	// NodeBuilt is called whether or not the object initialized
	assert.Equal(t, 1, obj.nodesBuilt)
	assert.Equal(t, 1, failed.nodesBuilt)
}

func TestBuildElision(t *testing.T) {
	root := newSource("root").add(
		newSource("group").add(
			newSource("mesh", newObject("m")),
			newSource("empty"),
		),
		newSource("box", &boundsCap{math32.B3(0, 0, 0, 1, 1, 1)}),
	)

	var b Builder
	n, err := b.Build(context.Background(), root, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"root", "mesh", "box"}, nodeNames(n))

	b.IncludeEmpty = true
	n, err = b.Build(context.Background(), root, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"root", "group", "mesh", "empty", "box"}, nodeNames(n))
}

func TestBuildGatekeeper(t *testing.T) {
	hidden := newSource("hidden", newObject("h")).add(newSource("below", newObject("b")))
	shown := newSource("shown", newObject("s"))
	root := newSource("root", gate(func(child any) bool {
		return child != hidden
	})).add(hidden, shown)

	b := Builder{IncludeEmpty: true}
	n, err := b.Build(context.Background(), root, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"root", "shown"}, nodeNames(n))

	// the gatekeeper of an elided parent is not consulted
	b.IncludeEmpty = false
	group := newSource("group", gate(func(child any) bool { return false })).add(newSource("inner", newObject("i")))
	n, err = b.Build(context.Background(), newSource("top").add(group), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"top", "inner"}, nodeNames(n))

	// building a rejected child directly returns nil
	parent := NewSceneNode(root)
	n, err = b.Build(context.Background(), hidden, parent)
	require.NoError(t, err)
	assert.Nil(t, n)
	assert.Empty(t, parent.Children)
}

func TestBuildCycle(t *testing.T) {
	ao := newObject("a")
	a := newSource("a", ao)
	bs := newSource("b", newObject("b"))
	a.add(bs)
	bs.add(a)

	var b Builder
	n, err := b.Build(context.Background(), a, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, nodeNames(n))
	assert.Equal(t, 1, ao.inits)
	assert.Equal(t, 1, ao.nodesBuilt)
	held := 0
	n.WalkDown(func(k *SceneNode) bool {
		if k.Objects.Contains(ao) {
			held++
		}
		return true
	})
	assert.Equal(t, 1, held)

	so := newObject("s")
	self := newSource("self", so)
	self.add(self)
	n, err = b.Build(context.Background(), self, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, n.NumNodes())
	assert.Equal(t, 1, so.inits)

	// a source may appear again on another branch
	shared := newSource("shared", newObject("x"))
	root := newSource("root").add(newSource("l", newObject("l")).add(shared), newSource("r", newObject("r")).add(shared))
	n, err = b.Build(context.Background(), root, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, n.NumNodes())
}

func TestBuildCancel(t *testing.T) {
	root := newSource("root").add(newSource("kid", newObject("k")))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var b Builder
	n, err := b.Build(ctx, root, nil)
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, n)
	assert.Empty(t, n.Children)
}

// mapView is a [TreeView] over a map of children.
type mapView map[any][]any

func (mv mapView) Children(parent any) []any { return mv[parent] }

func TestBuildTreeView(t *testing.T) {
	type plain struct{ name string }
	root, kid := &plain{"root"}, &plain{"kid"}
	b := Builder{TreeView: mapView{root: {kid}}, IncludeEmpty: true}
	n, err := b.Build(context.Background(), root, nil)
	require.NoError(t, err)
	require.Len(t, n.Children, 1)
	assert.Same(t, kid, n.Children[0].Source)

	// a ChildLister is preferred over the tree view
	lister := newSource("lister").add(newSource("listed"))
	b.TreeView = mapView{lister: {kid}}
	n, err = b.Build(context.Background(), lister, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"lister", "listed"}, nodeNames(n))
}

func TestAs(t *testing.T) {
	bc := &boundsCap{math32.B3(0, 0, 0, 1, 1, 1)}
	o1, o2 := newObject("1"), newObject("2")
	src := newSource("src", o1, bc, o2)

	bd, ok := As[Boundable](src)
	assert.True(t, ok)
	assert.Same(t, bc, bd)
	_, ok = As[Transformable](src)
	assert.False(t, ok)

	cl, ok := As[ChildLister](src)
	assert.True(t, ok)
	assert.Same(t, src, cl)

	objs := AsAll[Object](src)
	assert.Equal(t, []Object{o1, o2}, objs)
	assert.Empty(t, AsAll[Object](42))
}
