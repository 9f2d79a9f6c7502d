// Copyright 2021 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRayIntersect(t *testing.T) {
	ray := NewRay(Vec3(0, 0, 5), Vec3(0, 0, -1))

	d, ok := ray.IntersectSphere(Sphere{Radius: 1})
	assert.True(t, ok)
	assert.InDelta(t, 4, d, 1e-5)

	box := B3(-1, -1, -1, 1, 1, 1)
	d, ok = ray.IntersectBox(box)
	assert.True(t, ok)
	assert.InDelta(t, 4, d, 1e-5)
	TolAssertEqualVector3(t, StandardTol, Vec3(0, 0, 1), ray.At(d))

	inside := NewRay(Vec3Zero, Vec3(1, 0, 0))
	d, ok = inside.IntersectBox(box)
	assert.True(t, ok)
	assert.Equal(t, float32(0), d)

	miss := NewRay(Vec3(0, 0, 5), Vec3(0, 1, 0))
	_, ok = miss.IntersectBox(box)
	assert.False(t, ok)
	_, ok = miss.IntersectSphere(Sphere{Radius: 1})
	assert.False(t, ok)

	behind := NewRay(Vec3(0, 0, 5), Vec3(0, 0, 1))
	_, ok = behind.IntersectBox(box)
	assert.False(t, ok)
	_, ok = behind.IntersectBox(B3Empty())
	assert.False(t, ok)
}

func TestRayTriangle(t *testing.T) {
	tri := NewTriangle(Vec3(-1, -1, 0), Vec3(1, -1, 0), Vec3(0, 1, 0))
	TolAssertEqualVector3(t, StandardTol, Vec3(0, 0, 1), tri.Normal())

	front := NewRay(Vec3(0, 0, 5), Vec3(0, 0, -1))
	d, ok := front.IntersectTriangle(tri.A, tri.B, tri.C, true)
	assert.True(t, ok)
	assert.InDelta(t, 5, d, 1e-5)

	back := NewRay(Vec3(0, 0, -5), Vec3(0, 0, 1))
	_, ok = back.IntersectTriangle(tri.A, tri.B, tri.C, true)
	assert.False(t, ok)
	d, ok = tri.IntersectRay(*back)
	assert.True(t, ok)
	assert.InDelta(t, 5, d, 1e-5)

	outside := NewRay(Vec3(2, 2, 5), Vec3(0, 0, -1))
	_, ok = tri.IntersectRay(*outside)
	assert.False(t, ok)

	assert.Equal(t, tri.C, tri.NearestVertex(Vec3(0.1, 0.8, 0)))
	assert.Equal(t, tri.B, tri.NearestVertex(Vec3(3, -3, 1)))
}

func TestBox3MulMatrix4(t *testing.T) {
	box := B3(-1, -1, -1, 1, 1, 1)
	rb := box.MulMatrix4(RotationEuler4(Vec3(0, 0, DegToRad(45))))
	assert.InDelta(t, Sqrt(2), rb.Max.X, 1e-5)
	assert.InDelta(t, -Sqrt(2), rb.Min.Y, 1e-5)
	assert.InDelta(t, 1, rb.Max.Z, 1e-5)

	tb := box.MulMatrix4(Translate4(Vec3(10, 0, 0)))
	assert.Equal(t, B3(9, -1, -1, 11, 1, 1), tb)

	assert.True(t, B3Empty().MulMatrix4(Translate4(Vec3(1, 1, 1))).IsEmpty())
	assert.True(t, box.ContainsBox(B3(0, 0, 0, 0.5, 0.5, 0.5)))
	assert.False(t, box.ContainsBox(B3(0, 0, 0, 2, 0.5, 0.5)))
}

func TestFrustumFromMatrix(t *testing.T) {
	var proj Matrix4
	proj.SetPerspective(90, 1, 1, 100)
	f := NewFrustumFromMatrix(&proj)

	assert.True(t, f.ContainsPoint(Vec3(0, 0, -5)))
	assert.False(t, f.ContainsPoint(Vec3(0, 0, 5)))
	assert.False(t, f.ContainsPoint(Vec3(0, 0, -200)))
	assert.False(t, f.ContainsPoint(Vec3(10, 0, -5)))

	assert.True(t, f.IntersectsBox(B3(-0.5, -0.5, -50.5, 0.5, 0.5, -49.5)))
	assert.False(t, f.IntersectsBox(B3(-0.5, -0.5, 49.5, 0.5, 0.5, 50.5)))
	assert.False(t, f.IntersectsBox(B3Empty()))

	assert.False(t, f.IntersectsSphere(Sphere{Center: Vec3(3, 0, -2), Radius: 0.5}))
	assert.True(t, f.IntersectsSphere(Sphere{Center: Vec3(3, 0, -2), Radius: 1}))

	// moving the object 100 units along +X puts it outside; expressing
	// the frustum in object space must agree
	model := Translate4(Vec3(100, 0, 0))
	of := f.MulMatrix4(model)
	assert.False(t, of.ContainsPoint(Vec3(0, 0, -5)))
	assert.True(t, of.ContainsPoint(Vec3(-100, 0, -5)))
}

func TestFrustumFromPoints(t *testing.T) {
	near := [4]Vector3{Vec3(-1, -1, -1), Vec3(1, -1, -1), Vec3(1, 1, -1), Vec3(-1, 1, -1)}
	var far [4]Vector3
	for i, p := range near {
		far[i] = p.MulScalar(10)
	}
	f := NewFrustumFromPoints(near, far)
	assert.True(t, f.ContainsPoint(Vec3(0, 0, -5)))
	assert.True(t, f.ContainsPoint(Vec3(4.5, 0, -5)))
	assert.False(t, f.ContainsPoint(Vec3(6, 0, -5)))
	assert.False(t, f.ContainsPoint(Vec3(0, 0, -0.5)))
	assert.False(t, f.ContainsPoint(Vec3(0, 0, -11)))
}
