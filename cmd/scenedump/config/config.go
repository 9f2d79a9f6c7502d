// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration information for the
// scenedump tool, which is read from a TOML file and then overridden
// by command line flags.
package config

import (
	"cogentcore.org/scene/base/errors"
	"cogentcore.org/scene/base/iox/tomlx"
)

// Config is the configuration information for the scenedump tool.
type Config struct {

	// Width and Height override the viewport of the scene file
	// when they are positive.
	Width  int
	Height int

	// IncludeEmpty keeps scene nodes that have no renderable objects.
	IncludeEmpty bool

	// Hide are the paths of scene file nodes, relative to the scene
	// root as in "arm/hand", that are left out of the scene graph
	// along with their descendants.
	Hide []string

	// Pick contains the configuration of the pick command.
	Pick Pick

	// Camera contains the configuration of the camera command.
	Camera Camera

	// Watch contains the configuration of watch mode.
	Watch Watch
}

// Pick is the configuration of the pick command.
type Pick struct {

	// X and Y are the pixel picked, or the top left of the picked
	// rectangle, with the origin at the top left of the viewport.
	X int
	Y int

	// Multi reports all hits instead of only the nearest one.
	Multi bool

	// Frustum is the size of the picked rectangle, as "W,H".
	// If it is empty, the pick uses the ray through the pixel.
	Frustum string
}

// Camera is the configuration of the camera command.
type Camera struct {

	// Output is the file the camera state is saved to.
	Output string
}

// Watch is the configuration of watch mode.
type Watch struct {

	// Debounce is the number of milliseconds to wait for more changes
	// to a file before processing it again.
	Debounce int
}

// Defaults sets the default values.
func (c *Config) Defaults() {
	c.Camera.Output = "camera.toml"
	c.Watch.Debounce = 100
}

// Open returns a new config with the defaults, overridden by the given
// TOML config file if it is not empty.
func Open(filename string) (*Config, error) {
	c := &Config{}
	c.Defaults()
	if filename == "" {
		return c, nil
	}
	if err := tomlx.Open(c, filename); err != nil {
		return nil, errors.Errorf("config.Open %q: %w", filename, err)
	}
	return c, nil
}
