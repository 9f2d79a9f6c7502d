// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenefile

import (
	"cogentcore.org/scene/base/errors"
	"cogentcore.org/scene/camera"
	"cogentcore.org/scene/math32"
)

// Camera is the camera of a scene file, in world coordinates.
type Camera struct {

	// View is the name of the view type, such as Perspective or Top.
	View string `json:"view,omitempty" toml:"view,omitempty" yaml:"view,omitempty"`

	Eye Vec3 `json:"eye" toml:"eye" yaml:"eye"`

	LookAt Vec3 `json:"lookAt" toml:"lookAt" yaml:"lookAt"`

	Up Vec3 `json:"up" toml:"up" yaml:"up"`

	// Fov is the vertical field of view, in degrees.
	Fov float32 `json:"fov" toml:"fov" yaml:"fov"`

	Near float32 `json:"near" toml:"near" yaml:"near"`

	Far float32 `json:"far" toml:"far" yaml:"far"`

	// ZUp is whether the world is authored with +Z up.
	ZUp bool `json:"zUp,omitempty" toml:"zUp,omitempty" yaml:"zUp,omitempty"`
}

// Defaults sets the camera defaults of [camera.Camera.Defaults].
func (c *Camera) Defaults() {
	c.View = camera.Perspective.String()
	c.Eye = Vec3{1, 1, 1}
	c.LookAt = Vec3{}
	c.Up = Vec3{0, 1, 0}
	c.Fov = 45
	c.Near = 0.01
	c.Far = 2048
}

// ViewType returns the parsed view type, which is perspective if unset.
func (c *Camera) ViewType() (camera.ViewType, error) {
	if c.View == "" {
		return camera.Perspective, nil
	}
	return camera.ParseViewType(c.View)
}

// NewCamera returns a new camera set up from the scene file, with the
// aspect ratio of the viewport.
func (f *File) NewCamera() (*camera.Camera, error) {
	c := &f.Camera
	cam := camera.New()
	vt, err := c.ViewType()
	if err != nil {
		return nil, errors.Errorf("scenefile.File.NewCamera: %w", err)
	}
	aspect := float32(1)
	if f.Viewport.Width > 0 && f.Viewport.Height > 0 {
		aspect = float32(f.Viewport.Width) / float32(f.Viewport.Height)
	}
	cam.BeginUpdate()
	defer cam.EndUpdate()
	if c.ZUp {
		if err := cam.SetAxisSystem(camera.ZUpAxisSystem()); err != nil {
			return nil, errors.Errorf("scenefile.File.NewCamera: %w", err)
		}
	}
	if err := cam.SetPerspective(c.Fov, aspect, c.Near, c.Far); err != nil {
		return nil, errors.Errorf("scenefile.File.NewCamera: %w", err)
	}
	if err := cam.SetWorld(c.Eye.Vector3(), c.LookAt.Vector3(), c.Up.Vector3()); err != nil {
		return nil, errors.Errorf("scenefile.File.NewCamera: %w", err)
	}
	if err := cam.SetViewType(vt); err != nil {
		return nil, errors.Errorf("scenefile.File.NewCamera: %w", err)
	}
	return cam, nil
}

// Vector3 returns the vector as a [math32.Vector3].
func (v Vec3) Vector3() math32.Vector3 {
	return math32.Vec3(v[0], v[1], v[2])
}
