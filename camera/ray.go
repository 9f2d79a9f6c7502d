// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"cogentcore.org/scene/math32"
)

// viewExtents returns the width and height of the view at the given
// distance from the eye. In orthographic views they do not depend on it.
func (cam *Camera) viewExtents(dist float32) (w, h float32) {
	if cam.ProjectionType() == OrthographicProjection {
		return cam.orthoRight + cam.orthoLeft, cam.orthoTop + cam.orthoBottom
	}
	h = 2 * dist * math32.Tan(math32.DegToRad(cam.yFov)/2)
	return h * cam.aspect, h
}

// CreateRay returns a ray in view space through the given normalized
// device coordinates, each in [-0.5, 0.5] with +y up. In orthographic
// views the ray starts on the near plane and points down -Z; in
// perspective views it starts at the eye (the view space origin) and
// points at the corresponding far plane point.
func (cam *Camera) CreateRay(x, y float32) math32.Ray {
	if cam.ProjectionType() == OrthographicProjection {
		w, h := cam.viewExtents(0)
		// offset for off-center extents
		cx := (cam.orthoRight - cam.orthoLeft) / 2
		cy := (cam.orthoTop - cam.orthoBottom) / 2
		return math32.Ray{
			Origin: math32.Vec3(x*w+cx, y*h+cy, -cam.orthoNearZ),
			Dir:    math32.Vec3(0, 0, -1),
		}
	}
	w, h := cam.viewExtents(cam.farZ)
	return math32.Ray{
		Dir: math32.Vec3(x*w, y*h, -cam.farZ).Normal(),
	}
}

// CreateWorldRay returns the ray of [Camera.CreateRay] in
// camera-internal world space, with a unit direction.
func (cam *Camera) CreateWorldRay(x, y float32) math32.Ray {
	ray := cam.CreateRay(x, y)
	inv := cam.InverseViewMatrix()
	wr := ray.MulMatrix4(&inv)
	wr.Dir.SetNormal()
	return wr
}

// SubFrustum returns the view space frustum through the rectangle with
// the given normalized device coordinate corners, each in [-0.5, 0.5],
// bounded by the near and far planes. It is used for area picking.
func (cam *Camera) SubFrustum(x0, y0, x1, y1 float32) math32.Frustum {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	nearZ := cam.NearZ()
	quad := func(dist float32) [4]math32.Vector3 {
		w, h := cam.viewExtents(dist)
		var cx, cy float32
		if cam.ProjectionType() == OrthographicProjection {
			cx = (cam.orthoRight - cam.orthoLeft) / 2
			cy = (cam.orthoTop - cam.orthoBottom) / 2
		}
		return [4]math32.Vector3{
			math32.Vec3(x0*w+cx, y0*h+cy, -dist),
			math32.Vec3(x1*w+cx, y0*h+cy, -dist),
			math32.Vec3(x1*w+cx, y1*h+cy, -dist),
			math32.Vec3(x0*w+cx, y1*h+cy, -dist),
		}
	}
	return *math32.NewFrustumFromPoints(quad(nearZ), quad(cam.farZ))
}

// WorldSubFrustum returns the frustum of [Camera.SubFrustum] in
// camera-internal world space.
func (cam *Camera) WorldSubFrustum(x0, y0, x1, y1 float32) math32.Frustum {
	f := cam.SubFrustum(x0, y0, x1, y1)
	view := cam.ViewMatrix()
	return f.MulMatrix4(&view)
}
