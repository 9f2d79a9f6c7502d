// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

// Plane represents a plane in 3D space by its normal vector and a constant offset.
// When the the normal vector is the unit vector the offset is the distance from the origin.
// Points p on the plane satisfy Norm.Dot(p) + Off == 0.
type Plane struct {
	Norm Vector3
	Off  float32
}

// NewPlane creates and returns a new plane from a normal vector and a offset.
func NewPlane(normal Vector3, offset float32) *Plane {
	p := &Plane{normal, offset}
	return p
}

// Set sets this plane normal vector and offset.
func (p *Plane) Set(normal Vector3, offset float32) {
	p.Norm = normal
	p.Off = offset
}

// SetDims sets this plane normal vector components and offset.
func (p *Plane) SetDims(x, y, z, w float32) {
	p.Norm.Set(x, y, z)
	p.Off = w
}

// SetFromNormalAndCoplanarPoint sets this plane from a normal vector and a point on the plane.
func (p *Plane) SetFromNormalAndCoplanarPoint(normal Vector3, point Vector3) {
	p.Norm = normal
	p.Off = -point.Dot(p.Norm)
}

// SetFromCoplanarPoints sets this plane from three coplanar points.
func (p *Plane) SetFromCoplanarPoints(a, b, c Vector3) {
	norm := c.Sub(b).Cross(a.Sub(b))
	norm.SetNormal()
	p.SetFromNormalAndCoplanarPoint(norm, a)
}

// Normalize normalizes this plane normal vector and adjusts the offset.
// Note: will lead to a divide by zero if the plane is invalid.
func (p *Plane) Normalize() {
	invLen := 1.0 / p.Norm.Length()
	p.Norm.SetMulScalar(invLen)
	p.Off *= invLen
}

// Negate negates this plane normal.
func (p *Plane) Negate() {
	p.Off *= -1
	p.Norm = p.Norm.Negate()
}

// DistanceToPoint returns the distance of this plane from point.
func (p *Plane) DistanceToPoint(point Vector3) float32 {
	return p.Norm.Dot(point) + p.Off
}

// DistanceToSphere returns the distance of this place from the sphere.
func (p *Plane) DistanceToSphere(sphere Sphere) float32 {
	return p.DistanceToPoint(sphere.Center) - sphere.Radius
}

// MulMatrix4Transposed returns the plane whose coefficients are this
// plane's (normal, offset) multiplied by the transpose of m, normalized.
// If m maps space A into space B and this plane is in B, the result is
// the same plane expressed in A.
func (p *Plane) MulMatrix4Transposed(m *Matrix4) Plane {
	v := Vec4(p.Norm.X, p.Norm.Y, p.Norm.Z, p.Off)
	np := Plane{}
	np.SetDims(
		v.Dot(Vec4(m[0], m[1], m[2], m[3])),
		v.Dot(Vec4(m[4], m[5], m[6], m[7])),
		v.Dot(Vec4(m[8], m[9], m[10], m[11])),
		v.Dot(Vec4(m[12], m[13], m[14], m[15])),
	)
	if np.Norm.LengthSquared() > 0 {
		np.Normalize()
	}
	return np
}
