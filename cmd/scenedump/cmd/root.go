// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"cogentcore.org/scene/base/logx"
	"cogentcore.org/scene/cmd/scenedump/config"
)

// flags are the command line flags that are not part of the config.
type flags struct {
	config  string
	vv      bool
	verbose bool
	quiet   bool
	watch   bool
}

// NewRoot returns the root command of the scenedump tool.
func NewRoot() *cobra.Command {
	fl := &flags{}
	c := &config.Config{}
	c.Defaults()

	root := &cobra.Command{
		Use:          "scenedump",
		Short:        "scenedump builds scene files into scene graphs and dispatches, picks and views them",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logx.UserLevel = logx.LevelFromFlags(fl.vv, fl.verbose, fl.quiet)
			logx.SetDefaultLogger()
			return applyConfigFile(cmd.Flags(), fl.config, c)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&fl.config, "config", "", "TOML config file, overridden by flags")
	pf.BoolVar(&fl.vv, "vv", false, "show debug messages")
	pf.BoolVarP(&fl.verbose, "verbose", "v", false, "show info messages")
	pf.BoolVarP(&fl.quiet, "quiet", "q", false, "only show errors")
	pf.BoolVar(&fl.watch, "watch", false, "run again each time the scene file changes")
	pf.IntVar(&c.Width, "width", c.Width, "viewport width, overriding the scene file")
	pf.IntVar(&c.Height, "height", c.Height, "viewport height, overriding the scene file")
	pf.BoolVar(&c.IncludeEmpty, "include-empty", c.IncludeEmpty, "keep scene nodes without renderables")
	pf.StringSliceVar(&c.Hide, "hide", c.Hide, "paths of scene file nodes to leave out")

	// run runs the given command function, watching the file if requested.
	run := func(fun func(ctx context.Context, c *config.Config, filename string) error) func(cmd *cobra.Command, args []string) error {
		return func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			once := func() error { return fun(ctx, c, args[0]) }
			if fl.watch {
				return Watch(ctx, args[0], time.Duration(c.Watch.Debounce)*time.Millisecond, once)
			}
			return once()
		}
	}

	dump := &cobra.Command{
		Use:   "dump FILE",
		Short: "print the scene graph and the draw calls in pass order",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(ctx context.Context, c *config.Config, filename string) error {
			return Dump(ctx, c, filename, root.OutOrStdout())
		}),
	}

	pick := &cobra.Command{
		Use:   "pick FILE",
		Short: "print the hits at a pixel or rectangle, nearest first",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(ctx context.Context, c *config.Config, filename string) error {
			return Pick(ctx, c, filename, root.OutOrStdout())
		}),
	}
	pick.Flags().IntVar(&c.Pick.X, "x", c.Pick.X, "pixel x, from the left")
	pick.Flags().IntVar(&c.Pick.Y, "y", c.Pick.Y, "pixel y, from the top")
	pick.Flags().BoolVar(&c.Pick.Multi, "multi", c.Pick.Multi, "report all hits")
	pick.Flags().StringVar(&c.Pick.Frustum, "frustum", c.Pick.Frustum, "pick the W,H rectangle at x, y")

	cam := &cobra.Command{
		Use:   "camera FILE",
		Short: "save the camera state of the scene file",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(ctx context.Context, c *config.Config, filename string) error {
			return Camera(ctx, c, filename, root.OutOrStdout())
		}),
	}
	cam.Flags().StringVarP(&c.Camera.Output, "output", "o", c.Camera.Output, "camera state file")

	root.AddCommand(dump, pick, cam)
	return root
}

// applyConfigFile opens the given config file into c, if it is not
// empty, and then applies the flags that were set again, so that they
// take precedence over the file.
func applyConfigFile(fs *pflag.FlagSet, filename string, c *config.Config) error {
	if filename == "" {
		return nil
	}
	set := map[string]string{}
	slices := map[string][]string{}
	fs.Visit(func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			slices[f.Name] = sv.GetSlice()
			return
		}
		set[f.Name] = f.Value.String()
	})
	fc, err := config.Open(filename)
	if err != nil {
		return err
	}
	*c = *fc
	for name, val := range set {
		if err := fs.Set(name, val); err != nil {
			return err
		}
	}
	for name, vals := range slices {
		if err := fs.Lookup(name).Value.(pflag.SliceValue).Replace(vals); err != nil {
			return err
		}
	}
	return nil
}
