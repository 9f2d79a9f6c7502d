// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"context"
	"log/slog"
)

// Builder builds a scene graph from a tree of source objects.
type Builder struct {

	// TreeView enumerates the children of sources that do not
	// implement [ChildLister]. If nil, only those sources have children.
	TreeView TreeView

	// IncludeEmpty keeps nodes without objects or bounds instead of
	// eliding them.
	IncludeEmpty bool
}

// buildSession holds the state of one call to [Builder.Build].
type buildSession struct {
	*Builder

	// visiting holds the sources on the current path, to stop at cycles.
	visiting map[any]bool
}

// Build builds the scene graph for the given source and its descendants,
// attaching it to the given parent, which may be nil to build a new root.
// A node that has no objects and whose source is not [Boundable] is
// elided: its descendants are attached to its parent, and the parent is
// returned. The source is skipped and nil is returned if the parent's
// source implements [RenderableParent] and rejects it, or if the source
// is already being built higher up the same branch.
//
// The context is checked before recursing into children; once it is
// done, no more nodes are added, and the node built so far is returned
// along with the context error.
func (b *Builder) Build(ctx context.Context, source any, parent *SceneNode) (*SceneNode, error) {
	s := &buildSession{Builder: b, visiting: map[any]bool{}}
	n := s.build(ctx, source, parent)
	return n, ctx.Err()
}

func (s *buildSession) build(ctx context.Context, source any, parent *SceneNode) *SceneNode {
	if parent != nil {
		if rp, ok := As[RenderableParent](parent.Source); ok && !rp.CanParentRenderable(source) {
			return nil
		}
	}
	key, hasKey := sourceKey(source)
	if hasKey {
		if s.visiting[key] {
			slog.Warn("render.Builder: source is its own ancestor, not building it again", "source", source)
			return nil
		}
		s.visiting[key] = true
		defer delete(s.visiting, key)
	}

	node := NewSceneNode(source)
	for _, nb := range AsAll[SceneNodeBuilder](source) {
		if nb.AutoBuild() {
			if obj, ok := nb.(Object); ok && obj.Init(node) {
				if err := node.Objects.Add(obj); err != nil {
					slog.Error("render.Builder: adding object", "node", node.Name, "err", err)
				}
			}
		}
		nb.NodeBuilt(node)
	}

	attach := node
	switch {
	case parent == nil:
	case node.Objects.Len() > 0 || s.IncludeEmpty:
		parent.AddChild(node)
	default:
		if _, ok := As[Boundable](source); ok {
			parent.AddChild(node)
		} else {
			slog.Debug("render.Builder: eliding empty node", "node", node.Name)
			attach = parent
		}
	}

	for _, kid := range s.children(source) {
		if ctx.Err() != nil {
			break
		}
		s.build(ctx, kid, attach)
	}
	return attach
}

// children returns the children of the given source.
func (s *buildSession) children(source any) []any {
	if cl, ok := As[ChildLister](source); ok {
		return cl.RenderChildren()
	}
	if s.TreeView != nil {
		return s.TreeView.Children(source)
	}
	return nil
}
