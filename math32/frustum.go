// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

// Frustum represents a frustum, the volume bounded by six planes
// (left, right, bottom, top, near, far), whose normals point inward.
type Frustum struct {
	Planes [6]Plane
}

// NewFrustumFromMatrix creates and returns a Frustum based on the provided
// projection (or view-projection) matrix. The planes are extracted with
// the Gribb/Hartmann method, normalized, in the space the matrix maps from.
func NewFrustumFromMatrix(m *Matrix4) *Frustum {
	f := &Frustum{}
	f.SetFromMatrix(m)
	return f
}

// NewFrustumFromPoints returns the frustum bounded by the given near and
// far quads, each given in order bottom-left, bottom-right, top-right,
// top-left when viewed from the apex.
func NewFrustumFromPoints(near, far [4]Vector3) *Frustum {
	f := &Frustum{}
	inside := near[0].Add(near[2]).Add(far[0]).Add(far[2]).MulScalar(0.25)
	set := func(i int, a, b, c Vector3) {
		p := &f.Planes[i]
		p.SetFromCoplanarPoints(a, b, c)
		if p.DistanceToPoint(inside) < 0 {
			p.Negate()
		}
	}
	// left, right, bottom, top, near, far
	set(0, near[0], near[3], far[3])
	set(1, near[1], near[2], far[2])
	set(2, near[0], near[1], far[1])
	set(3, near[3], near[2], far[2])
	set(4, near[0], near[1], near[2])
	set(5, far[0], far[1], far[2])
	return f
}

// Set sets the frustum's planes.
func (f *Frustum) Set(p0, p1, p2, p3, p4, p5 *Plane) {
	f.Planes[0] = *p0
	f.Planes[1] = *p1
	f.Planes[2] = *p2
	f.Planes[3] = *p3
	f.Planes[4] = *p4
	f.Planes[5] = *p5
}

// SetFromMatrix sets the frustum's planes based on the specified Matrix4.
func (f *Frustum) SetFromMatrix(m *Matrix4) {
	me0 := m[0]
	me1 := m[1]
	me2 := m[2]
	me3 := m[3]
	me4 := m[4]
	me5 := m[5]
	me6 := m[6]
	me7 := m[7]
	me8 := m[8]
	me9 := m[9]
	me10 := m[10]
	me11 := m[11]
	me12 := m[12]
	me13 := m[13]
	me14 := m[14]
	me15 := m[15]

	f.Planes[0].SetDims(me3+me0, me7+me4, me11+me8, me15+me12)
	f.Planes[1].SetDims(me3-me0, me7-me4, me11-me8, me15-me12)
	f.Planes[2].SetDims(me3+me1, me7+me5, me11+me9, me15+me13)
	f.Planes[3].SetDims(me3-me1, me7-me5, me11-me9, me15-me13)
	f.Planes[4].SetDims(me3+me2, me7+me6, me11+me10, me15+me14)
	f.Planes[5].SetDims(me3-me2, me7-me6, me11-me10, me15-me14)

	for i := 0; i < 6; i++ {
		f.Planes[i].Normalize()
	}
}

// MulMatrix4 returns this frustum expressed in the space that m maps
// from: if m maps object space to this frustum's space, the result is the
// frustum in object space.
func (f *Frustum) MulMatrix4(m *Matrix4) Frustum {
	nf := Frustum{}
	for i := range f.Planes {
		nf.Planes[i] = f.Planes[i].MulMatrix4Transposed(m)
	}
	return nf
}

// IntersectsSphere determines whether the specified sphere is intersecting the frustum.
func (f *Frustum) IntersectsSphere(sphere Sphere) bool {
	negRadius := -sphere.Radius
	for _, p := range f.Planes {
		if p.DistanceToPoint(sphere.Center) < negRadius {
			return false
		}
	}
	return true
}

// IntersectsBox determines whether the specified box is intersecting the frustum,
// using the positive-vertex test against each plane.
func (f *Frustum) IntersectsBox(box Box3) bool {
	if box.IsEmpty() {
		return false
	}
	var pv Vector3
	for _, p := range f.Planes {
		if p.Norm.X > 0 {
			pv.X = box.Max.X
		} else {
			pv.X = box.Min.X
		}
		if p.Norm.Y > 0 {
			pv.Y = box.Max.Y
		} else {
			pv.Y = box.Min.Y
		}
		if p.Norm.Z > 0 {
			pv.Z = box.Max.Z
		} else {
			pv.Z = box.Min.Z
		}
		if p.DistanceToPoint(pv) < 0 {
			return false
		}
	}
	return true
}

// ContainsPoint determines whether the frustum contains the specified point.
func (f *Frustum) ContainsPoint(point Vector3) bool {
	for _, p := range f.Planes {
		if p.DistanceToPoint(point) < 0 {
			return false
		}
	}
	return true
}
