// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the commands of the scenedump tool.
package cmd

import (
	"context"

	"cogentcore.org/scene/base/errors"
	"cogentcore.org/scene/camera"
	"cogentcore.org/scene/cmd/scenedump/config"
	"cogentcore.org/scene/render"
	"cogentcore.org/scene/scenefile"
	"cogentcore.org/scene/tree"
)

// Scene is a scene file built into a scene graph.
type Scene struct {
	File *scenefile.File

	// Source is the node tree of the scene file, including hidden nodes.
	Source *tree.NodeBase

	Root   *render.SceneNode
	Camera *camera.Camera
	Width  int
	Height int
}

// OpenScene opens the given scene file and builds its scene graph,
// with the viewport overridden by the config and the nodes at the
// config's hidden paths left out.
func OpenScene(ctx context.Context, c *config.Config, filename string) (*Scene, error) {
	f, err := scenefile.Open(filename)
	if err != nil {
		return nil, err
	}
	if c.Width > 0 {
		f.Viewport.Width = c.Width
	}
	if c.Height > 0 {
		f.Viewport.Height = c.Height
	}
	sc := &Scene{File: f, Width: f.Viewport.Width, Height: f.Viewport.Height}
	sc.Camera, err = f.NewCamera()
	if err != nil {
		return nil, err
	}
	sc.Source = f.Tree()
	view, err := hideView(sc.Source, c.Hide)
	if err != nil {
		return nil, errors.Errorf("opening %q: %w", filename, err)
	}
	b := &render.Builder{TreeView: view, IncludeEmpty: c.IncludeEmpty}
	sc.Root, err = b.Build(ctx, sc.Source, nil)
	if err != nil {
		return nil, errors.Errorf("building %q: %w", filename, err)
	}
	return sc, nil
}

// hideView returns a view of the given tree that leaves out
// the nodes at the given paths.
func hideView(src *tree.NodeBase, paths []string) (tree.View, error) {
	if len(paths) == 0 {
		return tree.View{}, nil
	}
	hidden := map[*tree.NodeBase]bool{}
	for _, p := range paths {
		n := src.FindPath(p)
		if n == nil || n == src {
			return tree.View{}, errors.Errorf("no node to hide at path %q", p)
		}
		hidden[n] = true
	}
	return tree.View{Filter: func(n *tree.NodeBase) bool { return !hidden[n] }}, nil
}
