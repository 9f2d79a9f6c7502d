// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"fmt"
	"io"

	"cogentcore.org/scene/cmd/scenedump/config"
)

// Camera saves the camera state of the given scene file to the
// output file of the config, and writes the state.
func Camera(ctx context.Context, c *config.Config, filename string, w io.Writer) error {
	sc, err := OpenScene(ctx, c, filename)
	if err != nil {
		return err
	}
	if err := sc.Camera.SaveState(c.Camera.Output); err != nil {
		return err
	}
	for k, v := range sc.Camera.GetState().All() {
		fmt.Fprintf(w, "%s = %s\n", k, v)
	}
	fmt.Fprintf(w, "saved %s\n", c.Camera.Output)
	return nil
}
