// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cogentcore.org/scene/base/errors"
	"cogentcore.org/scene/cmd/scenedump/config"
	"cogentcore.org/scene/render"
)

// Pick picks the given scene file at the pixel or rectangle of the
// config, and writes the hits nearest first.
func Pick(ctx context.Context, c *config.Config, filename string, w io.Writer) error {
	fw, fh, err := parseSize(c.Pick.Frustum)
	if err != nil {
		return err
	}
	sc, err := OpenScene(ctx, c, filename)
	if err != nil {
		return err
	}
	pa := render.NewPickAction()
	pa.SetViewport(sc.Width, sc.Height)
	if err := pa.Init(sc.Camera, c.Pick.X, c.Pick.Y, fw, fh, c.Pick.Multi, fw > 0 && fh > 0); err != nil {
		return err
	}
	hits := pa.Pick(sc.Root)
	fmt.Fprintf(w, "hits: %d\n", len(hits))
	for i, h := range hits {
		name := ""
		if n := h.Node(); n != nil {
			name = n.Name
		}
		fmt.Fprintf(w, "%d: %s", i, name)
		if p, err := h.WorldIntersection(); err == nil {
			fmt.Fprintf(w, " at %v", p)
		}
		if nrm, err := h.Normal(); err == nil {
			fmt.Fprintf(w, " normal %v", nrm)
		}
		if ud := h.UserData(); len(ud) > 0 {
			fmt.Fprintf(w, " data %v", ud)
		}
		fmt.Fprintln(w)
	}
	return nil
}

// parseSize parses a "W,H" size. An empty string is a zero size.
func parseSize(s string) (w, h int, err error) {
	if s == "" {
		return 0, 0, nil
	}
	ws, hs, ok := strings.Cut(s, ",")
	if ok {
		w, err = strconv.Atoi(strings.TrimSpace(ws))
	}
	if ok && err == nil {
		h, err = strconv.Atoi(strings.TrimSpace(hs))
	}
	if !ok || err != nil || w < 0 || h < 0 {
		return 0, 0, errors.Errorf("invalid size %q, expected W,H", s)
	}
	return w, h, nil
}
