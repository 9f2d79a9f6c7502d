// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scenefile reads and writes scene description files, which
// hold a camera, a viewport, and a tree of nodes with poses, render
// states and shapes. The format is chosen by the file extension:
// .toml, .yaml / .yml, or .json.
package scenefile

import (
	"path/filepath"
	"strings"

	"cogentcore.org/scene/base/errors"
	"cogentcore.org/scene/base/iox/jsonx"
	"cogentcore.org/scene/base/iox/tomlx"
	"cogentcore.org/scene/base/iox/yamlx"
	"cogentcore.org/scene/render"
)

// ErrFormat is returned for files with an unknown extension or with
// invalid contents.
var ErrFormat = errors.New("invalid scene file")

// Vec3 is a vector in a scene file.
type Vec3 [3]float32

// File is a scene description file.
type File struct {

	// Name is the name of the scene, used for the root node.
	Name string `json:"name,omitempty" toml:"name,omitempty" yaml:"name,omitempty"`

	Camera Camera `json:"camera" toml:"camera" yaml:"camera"`

	Viewport Viewport `json:"viewport" toml:"viewport" yaml:"viewport"`

	// Nodes are the top-level nodes of the scene.
	Nodes []*Node `json:"nodes,omitempty" toml:"nodes,omitempty" yaml:"nodes,omitempty"`

	// filename is the file the scene was read from.
	filename string
}

// Viewport is the size of the rendered image in pixels.
type Viewport struct {
	Width  int `json:"width" toml:"width" yaml:"width"`
	Height int `json:"height" toml:"height" yaml:"height"`
}

// Defaults sets the default camera and viewport.
func (f *File) Defaults() {
	f.Name = "scene"
	f.Camera.Defaults()
	f.Viewport = Viewport{Width: 640, Height: 480}
}

// Filename returns the name of the file the scene was read from.
func (f *File) Filename() string {
	return f.filename
}

type openFunc func(v any, filename string) error

type saveFunc func(v any, filename string) error

func formatFuncs(filename string) (openFunc, saveFunc, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return tomlx.Open, tomlx.Save, nil
	case ".yaml", ".yml":
		return yamlx.Open, yamlx.Save, nil
	case ".json":
		return jsonx.Open, jsonx.Save, nil
	}
	return nil, nil, errors.Errorf("scenefile: unknown extension of %q: %w", filename, ErrFormat)
}

// Open reads the scene file with the given name, whose format is
// given by its extension. Values missing from the file keep their
// defaults, and the contents are validated.
func Open(filename string) (*File, error) {
	open, _, err := formatFuncs(filename)
	if err != nil {
		return nil, err
	}
	f := &File{}
	f.Defaults()
	if err := open(f, filename); err != nil {
		return nil, errors.Errorf("scenefile.Open %q: %w", filename, err)
	}
	f.filename = filename
	if err := f.Validate(); err != nil {
		return nil, errors.Errorf("scenefile.Open %q: %w", filename, err)
	}
	return f, nil
}

// Save writes the scene file to the given filename, in the format
// given by its extension.
func (f *File) Save(filename string) error {
	_, save, err := formatFuncs(filename)
	if err != nil {
		return err
	}
	return save(f, filename)
}

// Validate checks the camera and all of the nodes, returning an
// error wrapping [ErrFormat] for the first invalid value.
func (f *File) Validate() error {
	if _, err := f.Camera.ViewType(); err != nil {
		return errors.Errorf("camera: %w: %w", ErrFormat, err)
	}
	if f.Viewport.Width < 0 || f.Viewport.Height < 0 {
		return errors.Errorf("viewport %dx%d: %w", f.Viewport.Width, f.Viewport.Height, ErrFormat)
	}
	var errs []error
	for _, n := range f.Nodes {
		n.walk(func(n *Node) {
			if err := n.validate(); err != nil {
				errs = append(errs, err)
			}
		})
	}
	return errors.Join(errs...)
}

// NumNodes returns the number of nodes in the file.
func (f *File) NumNodes() int {
	num := 0
	for _, n := range f.Nodes {
		n.walk(func(n *Node) { num++ })
	}
	return num
}

func (n *Node) walk(fun func(n *Node)) {
	fun(n)
	for _, k := range n.Children {
		k.walk(fun)
	}
}

func (n *Node) validate() error {
	for _, names := range [][]string{n.Mode, n.Inherit, n.Override} {
		if _, err := render.ParseMode(names...); err != nil {
			return errors.Errorf("node %q: %w: %w", n.Name, ErrFormat, err)
		}
	}
	if n.Mesh != nil {
		if len(n.Mesh.Indices)%3 != 0 {
			return errors.Errorf("node %q: mesh has %d indexes, not whole triangles: %w", n.Name, len(n.Mesh.Indices), ErrFormat)
		}
		for _, i := range n.Mesh.Indices {
			if i < 0 || i >= len(n.Mesh.Vertices) {
				return errors.Errorf("node %q: mesh index %d out of range: %w", n.Name, i, ErrFormat)
			}
		}
	}
	if n.Sphere < 0 {
		return errors.Errorf("node %q: negative sphere radius: %w", n.Name, ErrFormat)
	}
	return nil
}
