// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"cogentcore.org/scene/base/errors"
	"cogentcore.org/scene/math32"
)

// AxisSystem returns the matrix converting world coordinates, as
// authored, into the camera's internal coordinates (+Y up, right-handed).
func (cam *Camera) AxisSystem() math32.Matrix4 {
	return cam.axisSystem
}

// SetAxisSystem sets the world to camera-internal conversion matrix,
// which must be invertible. The camera keeps its internal position, so
// the world-space eye, look-at point and up directions change.
func (cam *Camera) SetAxisSystem(m math32.Matrix4) error {
	inv, err := m.Inverse()
	if err != nil {
		return errors.Errorf("camera.SetAxisSystem: %w: %w", ErrOutOfRange, err)
	}
	cam.axisSystem = m
	cam.invAxisSystem = *inv
	cam.changed()
	return nil
}

// ZUpAxisSystem returns the axis system for worlds authored with +Z up,
// mapping world +Z onto internal +Y and world +Y onto internal -Z.
func ZUpAxisSystem() math32.Matrix4 {
	var m math32.Matrix4
	m.Set(
		1, 0, 0, 0,
		0, 0, 1, 0,
		0, -1, 0, 0,
		0, 0, 0, 1,
	)
	return m
}

// SetWorld is [Camera.Set] with the arguments in world coordinates.
func (cam *Camera) SetWorld(eye, lookAtPoint, up math32.Vector3) error {
	return cam.Set(
		eye.MulMatrix4(&cam.axisSystem),
		lookAtPoint.MulMatrix4(&cam.axisSystem),
		up.MulMatrix4AsVector4(&cam.axisSystem, 0),
	)
}

// WorldEye returns the eye position in world coordinates.
func (cam *Camera) WorldEye() math32.Vector3 {
	return cam.eye.MulMatrix4(&cam.invAxisSystem)
}

// WorldLookAtPoint returns the look-at point in world coordinates.
func (cam *Camera) WorldLookAtPoint() math32.Vector3 {
	return cam.lookAtPoint.MulMatrix4(&cam.invAxisSystem)
}

// WorldLookAt returns the look direction in world coordinates.
func (cam *Camera) WorldLookAt() math32.Vector3 {
	return cam.lookAt.MulMatrix4AsVector4(&cam.invAxisSystem, 0).Normal()
}

// WorldUp returns the up direction in world coordinates.
func (cam *Camera) WorldUp() math32.Vector3 {
	return cam.up.MulMatrix4AsVector4(&cam.invAxisSystem, 0).Normal()
}

// WorldRight returns the right direction in world coordinates.
func (cam *Camera) WorldRight() math32.Vector3 {
	return cam.right.MulMatrix4AsVector4(&cam.invAxisSystem, 0).Normal()
}

// WorldViewMatrix returns the matrix mapping world coordinates into view
// space, including the axis system conversion.
func (cam *Camera) WorldViewMatrix() math32.Matrix4 {
	view := cam.ViewMatrix()
	return *view.Mul(&cam.axisSystem)
}
