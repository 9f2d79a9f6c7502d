// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package camera provides the viewing and projection model of a scene:
// eye, look-at point and up direction, perspective and orthographic
// projections, view frustums, pick rays, and persistence of its state.
package camera

import (
	"cogentcore.org/scene/base/errors"
	"cogentcore.org/scene/math32"
)

// ErrOutOfRange is returned when an argument is outside of its valid range.
var ErrOutOfRange = errors.New("argument out of range")

// Camera defines the viewing transform and projection of a scene.
// The view looks down the -Z axis of camera space, with +Y up, and
// the basis is kept orthonormal on every update.
// Changes fire the functions registered with [Camera.OnChanged],
// coalesced between [Camera.BeginUpdate] and [Camera.EndUpdate].
type Camera struct {
	viewType ViewType

	// eye position, in camera-internal space (see [Camera.AxisSystem])
	eye         math32.Vector3
	lookAtPoint math32.Vector3

	// unit look direction from eye to lookAtPoint
	lookAt math32.Vector3
	up     math32.Vector3
	right  math32.Vector3

	lookAtDistance float32

	// vertical field of view in degrees
	yFov   float32
	aspect float32

	perspectiveNearZ float32
	orthoNearZ       float32
	farZ             float32

	// orthographic extents, as positive distances from the view center
	orthoRight  float32
	orthoLeft   float32
	orthoTop    float32
	orthoBottom float32

	focusRadius float32

	axisSystem    math32.Matrix4
	invAxisSystem math32.Matrix4

	onChanged []func(cam *Camera)
	updating  int
	pending   bool
}

// New returns a new camera with default parameters.
func New() *Camera {
	cam := &Camera{}
	cam.Defaults()
	return cam
}

// Defaults sets the default camera parameters: the eye at (1,1,1) looking
// at the origin with +Y up, a 45 degree perspective with an aspect of 1,
// and near and far planes at 0.01 and 2048.
func (cam *Camera) Defaults() {
	cam.BeginUpdate()
	defer cam.EndUpdate()
	cam.viewType = Perspective
	cam.yFov = 45
	cam.aspect = 1
	cam.perspectiveNearZ = 0.01
	cam.orthoNearZ = 0.01
	cam.farZ = 2048
	cam.orthoRight, cam.orthoLeft, cam.orthoTop, cam.orthoBottom = 1, 1, 1, 1
	cam.focusRadius = 1
	cam.axisSystem.SetIdentity()
	cam.invAxisSystem.SetIdentity()
	cam.setBasis(math32.Vec3(1, 1, 1), math32.Vec3Zero, math32.Vec3Y, true)
	cam.changed()
}

// OnChanged adds a function to call whenever the camera changes.
func (cam *Camera) OnChanged(fun func(cam *Camera)) {
	cam.onChanged = append(cam.onChanged, fun)
}

// BeginUpdate suspends change notification until the matching
// [Camera.EndUpdate], which then sends a single notification if
// anything changed. Calls may be nested.
func (cam *Camera) BeginUpdate() {
	cam.updating++
}

// EndUpdate ends an update started with [Camera.BeginUpdate].
func (cam *Camera) EndUpdate() {
	if cam.updating == 0 {
		return
	}
	cam.updating--
	if cam.updating == 0 && cam.pending {
		cam.pending = false
		cam.notify()
	}
}

func (cam *Camera) changed() {
	if cam.updating > 0 {
		cam.pending = true
		return
	}
	cam.notify()
}

func (cam *Camera) notify() {
	for _, fun := range cam.onChanged {
		fun(cam)
	}
}

// Set sets the eye position, the point looked at and the up direction,
// recomputing the orthonormal basis. The eye must differ from the
// look-at point, and up must not be parallel to the look direction.
func (cam *Camera) Set(eye, lookAtPoint, up math32.Vector3) error {
	dir := lookAtPoint.Sub(eye)
	if dir.LengthSquared() == 0 {
		return errors.Errorf("camera.Set: eye and look-at point are both %v: %w", eye, ErrOutOfRange)
	}
	if dir.Normal().Cross(up).LengthSquared() == 0 {
		return errors.Errorf("camera.Set: up %v is parallel to the look direction: %w", up, ErrOutOfRange)
	}
	cam.setBasis(eye, lookAtPoint, up, true)
	cam.changed()
	return nil
}

// setBasis updates the eye, look-at point and basis. If orthogonalize is
// false, up is taken as already orthogonal to the look direction.
func (cam *Camera) setBasis(eye, lookAtPoint, up math32.Vector3, orthogonalize bool) {
	cam.eye = eye
	cam.lookAtPoint = lookAtPoint
	dir := lookAtPoint.Sub(eye)
	cam.lookAtDistance = dir.Length()
	cam.lookAt = dir.Normal()
	cam.right = cam.lookAt.Cross(up).Normal()
	if orthogonalize {
		// right is unit length and orthogonal to lookAt, so up is too
		cam.up = cam.right.Cross(cam.lookAt)
	} else {
		cam.up = up
	}
}

// Eye returns the eye position.
func (cam *Camera) Eye() math32.Vector3 { return cam.eye }

// LookAtPoint returns the point the camera looks at.
func (cam *Camera) LookAtPoint() math32.Vector3 { return cam.lookAtPoint }

// LookAt returns the unit look direction.
func (cam *Camera) LookAt() math32.Vector3 { return cam.lookAt }

// Up returns the unit up direction.
func (cam *Camera) Up() math32.Vector3 { return cam.up }

// Right returns the unit right direction.
func (cam *Camera) Right() math32.Vector3 { return cam.right }

// DistanceFromLookAt returns the distance from the eye to the look-at point.
func (cam *Camera) DistanceFromLookAt() float32 { return cam.lookAtDistance }

// ViewType returns the current view type.
func (cam *Camera) ViewType() ViewType { return cam.viewType }

// ProjectionType returns the projection of the current view type.
func (cam *Camera) ProjectionType() ProjectionType { return cam.viewType.ProjectionType() }

// YFov returns the vertical field of view in degrees.
func (cam *Camera) YFov() float32 { return cam.yFov }

// Aspect returns the aspect ratio (width / height).
func (cam *Camera) Aspect() float32 { return cam.aspect }

// NearZ returns the near plane distance for the current projection.
func (cam *Camera) NearZ() float32 {
	if cam.ProjectionType() == OrthographicProjection {
		return cam.orthoNearZ
	}
	return cam.perspectiveNearZ
}

// PerspectiveNearZ returns the near plane distance used in perspective views.
func (cam *Camera) PerspectiveNearZ() float32 { return cam.perspectiveNearZ }

// OrthographicNearZ returns the near plane distance used in orthographic views.
func (cam *Camera) OrthographicNearZ() float32 { return cam.orthoNearZ }

// FarZ returns the far plane distance.
func (cam *Camera) FarZ() float32 { return cam.farZ }

// FocusRadius returns the radius of the region of interest around the look-at point.
func (cam *Camera) FocusRadius() float32 { return cam.focusRadius }

// OrthographicExtents returns the orthographic view extents,
// as positive distances from the view center.
func (cam *Camera) OrthographicExtents() (right, left, top, bottom float32) {
	return cam.orthoRight, cam.orthoLeft, cam.orthoTop, cam.orthoBottom
}

// SetAspect sets the aspect ratio, which must be positive.
// It is normally derived from the viewport size.
func (cam *Camera) SetAspect(aspect float32) error {
	if !(aspect > 0) {
		return errors.Errorf("camera.SetAspect: aspect %g must be positive: %w", aspect, ErrOutOfRange)
	}
	cam.aspect = aspect
	cam.changed()
	return nil
}

// SetNearZ sets the near plane distance of the current projection.
// It must be positive and less than the far plane distance.
func (cam *Camera) SetNearZ(nearZ float32) error {
	if !(nearZ > 0) || nearZ >= cam.farZ {
		return errors.Errorf("camera.SetNearZ: near %g must be in (0, %g): %w", nearZ, cam.farZ, ErrOutOfRange)
	}
	if cam.ProjectionType() == OrthographicProjection {
		cam.orthoNearZ = nearZ
	} else {
		cam.perspectiveNearZ = nearZ
	}
	cam.changed()
	return nil
}

// SetFarZ sets the far plane distance, which must be greater than both near planes.
func (cam *Camera) SetFarZ(farZ float32) error {
	if !(farZ > 0) || farZ <= cam.perspectiveNearZ || farZ <= cam.orthoNearZ {
		return errors.Errorf("camera.SetFarZ: far %g must be positive and beyond the near planes: %w", farZ, ErrOutOfRange)
	}
	cam.farZ = farZ
	cam.changed()
	return nil
}

// SetFocusRadius sets the focus radius, which must be positive.
func (cam *Camera) SetFocusRadius(radius float32) error {
	if !(radius > 0) {
		return errors.Errorf("camera.SetFocusRadius: radius %g must be positive: %w", radius, ErrOutOfRange)
	}
	cam.focusRadius = radius
	cam.changed()
	return nil
}

// SetPerspective sets the perspective projection parameters, with the
// vertical field of view in degrees, and switches to the [Perspective] view.
// All arguments must be positive, the field of view less than 180
// and far greater than near.
func (cam *Camera) SetPerspective(yFov, aspect, nearZ, farZ float32) error {
	if !(yFov > 0) || yFov >= 180 || !(aspect > 0) || !(nearZ > 0) || !(farZ > 0) || farZ <= nearZ {
		return errors.Errorf("camera.SetPerspective: invalid fov %g, aspect %g, near %g, far %g: %w", yFov, aspect, nearZ, farZ, ErrOutOfRange)
	}
	cam.yFov = yFov
	cam.aspect = aspect
	cam.perspectiveNearZ = nearZ
	cam.farZ = farZ
	cam.viewType = Perspective
	cam.changed()
	return nil
}

// SetOrthographic sets the orthographic projection extents, given as
// positive distances from the view center, and the near and far planes.
// It switches a [Perspective] view to [Orthographic]; the axis-aligned
// views are kept. All arguments must be positive and far greater than near.
func (cam *Camera) SetOrthographic(right, left, top, bottom, nearZ, farZ float32) error {
	if !(right > 0) || !(left > 0) || !(top > 0) || !(bottom > 0) || !(nearZ > 0) || !(farZ > 0) || farZ <= nearZ {
		return errors.Errorf("camera.SetOrthographic: invalid extents %g, %g, %g, %g, near %g, far %g: %w", right, left, top, bottom, nearZ, farZ, ErrOutOfRange)
	}
	cam.orthoRight, cam.orthoLeft, cam.orthoTop, cam.orthoBottom = right, left, top, bottom
	cam.orthoNearZ = nearZ
	cam.farZ = farZ
	if cam.viewType == Perspective {
		cam.viewType = Orthographic
	}
	cam.changed()
	return nil
}

// SetViewType sets the view type. The axis-aligned views move the eye
// onto the corresponding axis through the look-at point, keeping the
// current distance.
func (cam *Camera) SetViewType(vt ViewType) error {
	if vt < 0 || vt >= ViewTypesN {
		return errors.Errorf("camera.SetViewType: invalid view type %d: %w", vt, ErrOutOfRange)
	}
	cam.BeginUpdate()
	defer cam.EndUpdate()
	cam.viewType = vt
	d := cam.lookAtDistance
	lp := cam.lookAtPoint
	switch vt {
	case Top:
		cam.setBasis(lp.Add(math32.Vec3(0, d, 0)), lp, math32.Vec3(0, 0, -1), true)
	case Bottom:
		cam.setBasis(lp.Add(math32.Vec3(0, -d, 0)), lp, math32.Vec3(0, 0, 1), true)
	case Front:
		cam.setBasis(lp.Add(math32.Vec3(0, 0, d)), lp, math32.Vec3Y, true)
	case Back:
		cam.setBasis(lp.Add(math32.Vec3(0, 0, -d)), lp, math32.Vec3Y, true)
	case Left:
		cam.setBasis(lp.Add(math32.Vec3(-d, 0, 0)), lp, math32.Vec3Y, true)
	case Right:
		cam.setBasis(lp.Add(math32.Vec3(d, 0, 0)), lp, math32.Vec3Y, true)
	}
	cam.changed()
	return nil
}

// ViewMatrix returns the matrix mapping camera-internal world space into
// view space.
func (cam *Camera) ViewMatrix() math32.Matrix4 {
	var m math32.Matrix4
	m.SetViewBasis(cam.eye, cam.right, cam.up, cam.lookAt)
	return m
}

// InverseViewMatrix returns the matrix mapping view space into
// camera-internal world space.
func (cam *Camera) InverseViewMatrix() math32.Matrix4 {
	r, u, b := cam.right, cam.up, cam.lookAt.Negate()
	var m math32.Matrix4
	m.Set(
		r.X, u.X, b.X, cam.eye.X,
		r.Y, u.Y, b.Y, cam.eye.Y,
		r.Z, u.Z, b.Z, cam.eye.Z,
		0, 0, 0, 1,
	)
	return m
}

// ProjectionMatrix returns the projection matrix of the current projection.
func (cam *Camera) ProjectionMatrix() math32.Matrix4 {
	var m math32.Matrix4
	if cam.ProjectionType() == OrthographicProjection {
		m.SetOrthographic(-cam.orthoLeft, cam.orthoRight, -cam.orthoBottom, cam.orthoTop, cam.orthoNearZ, cam.farZ)
	} else {
		m.SetPerspective(cam.yFov, cam.aspect, cam.perspectiveNearZ, cam.farZ)
	}
	return m
}

// Frustum returns the view frustum in view space.
func (cam *Camera) Frustum() math32.Frustum {
	proj := cam.ProjectionMatrix()
	return *math32.NewFrustumFromMatrix(&proj)
}

// WorldFrustum returns the view frustum in camera-internal world space.
func (cam *Camera) WorldFrustum() math32.Frustum {
	f := cam.Frustum()
	view := cam.ViewMatrix()
	return f.MulMatrix4(&view)
}

// ZoomOnSphere moves the eye and look-at point to frame the given sphere,
// keeping the look direction. The focus distance is clamped to the near
// and far planes. In perspective views the near plane is tightened to
// 10% of the radius, but no less than 0.001. In orthographic views the
// extents are set to fit the sphere.
func (cam *Camera) ZoomOnSphere(sphere math32.Sphere) error {
	if !(sphere.Radius > 0) {
		return errors.Errorf("camera.ZoomOnSphere: radius %g must be positive: %w", sphere.Radius, ErrOutOfRange)
	}
	cam.BeginUpdate()
	defer cam.EndUpdate()
	r := sphere.Radius
	var dist float32
	if cam.ProjectionType() == PerspectiveProjection {
		dist = r / math32.Sin(math32.DegToRad(cam.yFov)/2)
		cam.perspectiveNearZ = math32.Min(math32.Max(0.1*r, 0.001), cam.farZ/2)
	} else {
		dist = 2 * r
		w := r * math32.Max(cam.aspect, 1)
		h := w / cam.aspect
		cam.orthoRight, cam.orthoLeft, cam.orthoTop, cam.orthoBottom = w, w, h, h
	}
	dist = math32.Clamp(dist, cam.NearZ(), cam.farZ)
	cam.focusRadius = r
	eye := sphere.Center.Sub(cam.lookAt.MulScalar(dist))
	cam.setBasis(eye, sphere.Center, cam.up, true)
	cam.changed()
	return nil
}

// Orbit rotates the eye about the look-at point by the given angles in
// degrees: delX about the up direction and delY about the right direction.
func (cam *Camera) Orbit(delX, delY float32) {
	var rx, ry math32.Matrix4
	rx.SetRotationAxis(cam.up, math32.DegToRad(delX))
	ry.SetRotationAxis(cam.right, math32.DegToRad(delY))
	rot := ry.Mul(&rx)
	v := cam.eye.Sub(cam.lookAtPoint).MulMatrix4AsVector4(rot, 0)
	up := cam.up.MulMatrix4AsVector4(rot, 0)
	cam.setBasis(cam.lookAtPoint.Add(v), cam.lookAtPoint, up, true)
	cam.changed()
}

// Pan moves the eye and the look-at point together within the view
// plane, by delX along the right direction and delY along up.
func (cam *Camera) Pan(delX, delY float32) {
	d := cam.right.MulScalar(delX).Add(cam.up.MulScalar(delY))
	cam.setBasis(cam.eye.Add(d), cam.lookAtPoint.Add(d), cam.up, false)
	cam.changed()
}

// Zoom moves the eye toward the look-at point by the given fraction of
// the current distance; negative values move it away. The eye never
// reaches the look-at point.
func (cam *Camera) Zoom(zoomPct float32) {
	dist := cam.lookAtDistance * (1 - zoomPct)
	dist = math32.Max(dist, cam.NearZ())
	eye := cam.lookAtPoint.Sub(cam.lookAt.MulScalar(dist))
	cam.setBasis(eye, cam.lookAtPoint, cam.up, false)
	cam.changed()
}
