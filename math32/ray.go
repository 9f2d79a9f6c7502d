// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

// Ray represents an oriented 3D line segment defined by an origin point and a direction vector.
type Ray struct {
	Origin Vector3
	Dir    Vector3
}

// NewRay creates and returns a pointer to a Ray object with
// the specified origin and direction vectors.
func NewRay(origin, dir Vector3) *Ray {
	return &Ray{Origin: origin, Dir: dir}
}

// Set sets the origin and direction vectors of this Ray.
func (ray *Ray) Set(origin, dir Vector3) {
	ray.Origin = origin
	ray.Dir = dir
}

// At calculates the point in the ray which is at the specified t distance from the origin
// along its direction.
func (ray *Ray) At(t float32) Vector3 {
	return ray.Dir.MulScalar(t).Add(ray.Origin)
}

// ClosestPointToPoint calculates the point in the ray which is closest to the specified point.
func (ray *Ray) ClosestPointToPoint(point Vector3) Vector3 {
	dirDist := point.Sub(ray.Origin).Dot(ray.Dir)
	if dirDist < 0 {
		return ray.Origin
	}
	return ray.Dir.MulScalar(dirDist).Add(ray.Origin)
}

// DistanceSquaredToPoint returns the smallest squared distance
// from the ray direction vector to the specified point.
func (ray *Ray) DistanceSquaredToPoint(point Vector3) float32 {
	dirDist := point.Sub(ray.Origin).Dot(ray.Dir)
	// point behind the ray
	if dirDist < 0 {
		return ray.Origin.DistanceToSquared(point)
	}
	return ray.Dir.MulScalar(dirDist).Add(ray.Origin).DistanceToSquared(point)
}

// MulMatrix4 returns the ray transformed by the specified matrix:
// the origin as a point and the direction as a vector (not renormalized).
func (ray *Ray) MulMatrix4(m *Matrix4) Ray {
	return Ray{
		Origin: ray.Origin.MulMatrix4(m),
		Dir:    ray.Dir.MulMatrix4AsVector4(m, 0),
	}
}

// IntersectSphere returns the distance along the ray of the first
// intersection with the sphere and true, or false if there is none.
// A ray that starts inside the sphere returns the exit point.
func (ray *Ray) IntersectSphere(sphere Sphere) (float32, bool) {
	a := ray.Dir.LengthSquared()
	if a == 0 {
		return 0, false
	}
	oc := ray.Origin.Sub(sphere.Center)
	b := oc.Dot(ray.Dir)
	c := oc.LengthSquared() - sphere.Radius*sphere.Radius
	disc := b*b - a*c
	if disc < 0 {
		return 0, false
	}
	sq := Sqrt(disc)
	t0 := (-b - sq) / a
	t1 := (-b + sq) / a
	if t0 >= 0 {
		return t0, true
	}
	if t1 >= 0 {
		return t1, true
	}
	return 0, false
}

// IntersectBox returns the distance along the ray at which it enters
// the specified box and true, or false if the ray does not intersect it.
// A ray starting inside the box returns 0.
func (ray *Ray) IntersectBox(box Box3) (float32, bool) {
	if box.IsEmpty() {
		return 0, false
	}
	tmin := -Infinity
	tmax := Infinity
	for d := 0; d < 3; d++ {
		o := ray.Origin.Dim(d)
		dir := ray.Dir.Dim(d)
		lo := box.Min.Dim(d)
		hi := box.Max.Dim(d)
		if dir == 0 {
			if o < lo || o > hi {
				return 0, false
			}
			continue
		}
		inv := 1 / dir
		t0 := (lo - o) * inv
		t1 := (hi - o) * inv
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		tmin = Max(tmin, t0)
		tmax = Min(tmax, t1)
		if tmin > tmax {
			return 0, false
		}
	}
	if tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return 0, true
	}
	return tmin, true
}

// IntersectTriangle returns the distance along the ray of the intersection
// with the triangle (a, b, c) and true, or false if there is none.
// If backfaceCulling is true, triangles facing away from the ray are ignored.
// This is the Möller–Trumbore algorithm.
func (ray *Ray) IntersectTriangle(a, b, c Vector3, backfaceCulling bool) (float32, bool) {
	const eps = 1e-7
	edge1 := b.Sub(a)
	edge2 := c.Sub(a)
	p := ray.Dir.Cross(edge2)
	det := edge1.Dot(p)
	if backfaceCulling {
		if det < eps {
			return 0, false
		}
	} else if Abs(det) < eps {
		return 0, false
	}
	inv := 1 / det
	s := ray.Origin.Sub(a)
	u := s.Dot(p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}
	q := s.Cross(edge1)
	v := ray.Dir.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}
	t := edge2.Dot(q) * inv
	if t < 0 {
		return 0, false
	}
	return t, true
}
