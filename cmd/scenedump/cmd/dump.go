// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cogentcore.org/scene/cmd/scenedump/config"
	"cogentcore.org/scene/components"
	"cogentcore.org/scene/render"
)

// Dump dispatches the given scene file and writes its scene graph,
// followed by the draw calls in pass order, each with the mode bits
// the guardian committed as changed before it.
func Dump(ctx context.Context, c *config.Config, filename string, w io.Writer) error {
	sc, err := OpenScene(ctx, c, filename)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "scene %s: %d nodes from %d sources\n", sc.File.Name, sc.Root.NumNodes(), sc.Source.NumNodes())
	writeGraph(w, sc.Root, 0)

	var changed render.Mode
	g := render.NewGuardian()
	for i := range render.ModeBitsN {
		bit := render.ModeBit(i)
		err := g.RegisterHandler(bit, func(ns, old *render.State) {
			if old == nil || (ns.Mode^old.Mode)&bit != 0 {
				changed |= bit
			}
		})
		if err != nil {
			return err
		}
	}

	rec := &components.Recorder{}
	var commits []render.Mode
	ra := render.NewRenderAction(g)
	ra.SetViewport(sc.Width, sc.Height)
	ra.DispatchFunc = func(tn *render.TraverseNode) {
		commits = append(commits, changed)
		changed = 0
		rec.Dispatch(tn)
	}
	ra.Dispatch(sc.Root, sc.Camera)

	fmt.Fprintf(w, "draw calls: %d\n", len(commits))
	for i, dc := range rec.Calls() {
		fmt.Fprintf(w, "%s changed=%s\n", dc, commits[i])
	}
	return nil
}

// writeGraph writes the node and its descendants, indented by depth.
func writeGraph(w io.Writer, n *render.SceneNode, depth int) {
	var objs []string
	for _, o := range n.Objects.Slice() {
		objs = append(objs, fmt.Sprintf("%T", o))
	}
	vis := ""
	if !n.Visible {
		vis = " hidden"
	}
	fmt.Fprintf(w, "%s%s [%s]%s\n", strings.Repeat("  ", depth), n.Name, strings.Join(objs, ", "), vis)
	for _, k := range n.Children {
		writeGraph(w, k, depth+1)
	}
}
