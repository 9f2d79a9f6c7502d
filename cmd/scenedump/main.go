// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command scenedump builds scene description files into scene graphs
// and dispatches, picks, and saves the camera of them.
package main

import (
	"context"
	"os"
	"os/signal"

	"cogentcore.org/scene/cmd/scenedump/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err := cmd.NewRoot().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
