// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

// Sphere represents a 3D sphere defined by its center point and a radius
type Sphere struct {
	Center Vector3 // center of the sphere
	Radius float32 // radius of the sphere
}

// NewSphere creates and returns a pointer to a new sphere with
// the specified center and radius.
func NewSphere(center Vector3, radius float32) *Sphere {
	return &Sphere{center, radius}
}

// Set sets the center and radius of this sphere.
func (s *Sphere) Set(center Vector3, radius float32) {
	s.Center = center
	s.Radius = radius
}

// SetFromBox sets the center and radius of this sphere to surround the specified box.
func (s *Sphere) SetFromBox(box Box3) {
	s.Center = box.Center()
	s.Radius = 0.5 * box.Size().Length()
}

// IsEmpty checks if this sphere is empty (radius <= 0)
func (s *Sphere) IsEmpty() bool {
	return s.Radius <= 0
}

// ContainsPoint returns if this sphere contains the specified point.
func (s *Sphere) ContainsPoint(point Vector3) bool {
	return point.DistanceToSquared(s.Center) <= (s.Radius * s.Radius)
}

// DistanceToPoint returns the distance from the sphere surface to the specified point.
func (s *Sphere) DistanceToPoint(point Vector3) float32 {
	return point.DistanceTo(s.Center) - s.Radius
}

// IntersectSphere returns if other sphere intersects this one.
func (s *Sphere) IntersectSphere(other Sphere) bool {
	radiusSum := s.Radius + other.Radius
	return other.Center.DistanceToSquared(s.Center) <= (radiusSum * radiusSum)
}

// BBox returns the bounding box of this sphere.
func (s *Sphere) BBox() Box3 {
	return Box3{
		Min: s.Center.AddScalar(-s.Radius),
		Max: s.Center.AddScalar(s.Radius),
	}
}
