// Copyright 2021 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/scene/base/tolassert"
)

const StandardTol = float32(1.0e-5)

func TolAssertEqualVector3(t *testing.T, tol float32, vt, va Vector3) {
	t.Helper()
	tolassert.EqualTol(t, vt.X, va.X, tol, "X: want %v, have %v", vt, va)
	tolassert.EqualTol(t, vt.Y, va.Y, tol, "Y: want %v, have %v", vt, va)
	tolassert.EqualTol(t, vt.Z, va.Z, tol, "Z: want %v, have %v", vt, va)
}

func TestMatrix4Transforms(t *testing.T) {
	vx := Vec3(1, 0, 0)
	vy := Vec3(0, 1, 0)

	assert.Equal(t, vx, vx.MulMatrix4(Identity4()))
	assert.Equal(t, Vec3(2, 1, 1), vx.MulMatrix4(Translate4(Vec3(1, 1, 1))))
	assert.Equal(t, Vec3(2, 0, 0), vx.MulMatrix4(Scale4(Vec3(2, 3, 4))))

	// directions ignore translation
	assert.Equal(t, vx, vx.MulMatrix4AsVector4(Translate4(Vec3(5, 5, 5)), 0))

	TolAssertEqualVector3(t, StandardTol, vy, vx.MulMatrix4(RotationEuler4(Vec3(0, 0, DegToRad(90)))))
	TolAssertEqualVector3(t, StandardTol, Vec3(0, 0, -1), vx.MulMatrix4(RotationEuler4(Vec3(0, DegToRad(90), 0))))

	// multiplication order is *reverse* of "logical" order:
	// scale(2) -> rotate 90 about Z -> translate (1,1,0)
	m := Translate4(Vec3(1, 1, 0)).Mul(RotationEuler4(Vec3(0, 0, DegToRad(90)))).Mul(Scale4(Vec3(2, 2, 2)))
	TolAssertEqualVector3(t, StandardTol, Vec3(1, 3, 0), vx.MulMatrix4(m))
}

func TestMatrix4RotationAxis(t *testing.T) {
	var m Matrix4
	m.SetRotationAxis(Vec3Z, DegToRad(90))
	TolAssertEqualVector3(t, StandardTol, Vec3Y, Vec3X.MulMatrix4(&m))
	m.SetRotationAxis(Vec3(1, 1, 0).Normal(), DegToRad(180))
	TolAssertEqualVector3(t, StandardTol, Vec3Y, Vec3X.MulMatrix4(&m))
}

func TestMatrix4Inverse(t *testing.T) {
	m := &Matrix4{}
	m.SetTransform(Vec3(1, 2, 3), Vec3(0.3, -0.2, 0.9), Vec3(2, 1, 0.5), Vec3(0.5, 0, 0))
	inv, err := m.Inverse()
	require.NoError(t, err)
	prod := m.Mul(inv)
	for i := range prod {
		assert.InDelta(t, Identity4()[i], prod[i], 1e-5)
	}

	var singular Matrix4
	_, err = singular.Inverse()
	assert.ErrorIs(t, err, ErrSingular)
}

func TestMatrix4Transpose(t *testing.T) {
	m := Translate4(Vec3(1, 2, 3))
	tr := m.Transpose()
	assert.Equal(t, float32(1), tr[3])
	assert.Equal(t, float32(2), tr[7])
	assert.Equal(t, float32(3), tr[11])
	assert.Equal(t, *m, *tr.Transpose())
}

func TestMatrix4Pivot(t *testing.T) {
	m := &Matrix4{}
	// rotating about a pivot leaves the pivot in place
	pivot := Vec3(1, 0, 0)
	m.SetTransform(Vec3Zero, Vec3(0, 0, DegToRad(90)), Vector3Scalar(1), pivot)
	TolAssertEqualVector3(t, StandardTol, pivot, pivot.MulMatrix4(m))
	TolAssertEqualVector3(t, StandardTol, Vec3(1, -1, 0), Vec3Zero.MulMatrix4(m))
}

func TestMatrix4LookAt(t *testing.T) {
	var view Matrix4
	view.SetLookAt(Vec3(0, 0, 10), Vec3Zero, Vec3Y)
	// the target ends up straight ahead, down -Z
	TolAssertEqualVector3(t, StandardTol, Vec3(0, 0, -10), Vec3Zero.MulMatrix4(&view))
	TolAssertEqualVector3(t, StandardTol, Vec3(1, 0, -10), Vec3(1, 0, 0).MulMatrix4(&view))
}

func TestMatrix4Projections(t *testing.T) {
	var persp Matrix4
	persp.SetPerspective(90, 1, 1, 100)
	// a point on the near plane at the top edge maps to NDC y = 1, z = -1
	ndc := Vec3(0, 1, -1).MulMatrix4(&persp)
	TolAssertEqualVector3(t, StandardTol, Vec3(0, 1, -1), ndc)
	far := Vec3(0, 0, -100).MulMatrix4(&persp)
	assert.InDelta(t, 1, far.Z, 1e-4)

	var ortho Matrix4
	ortho.SetOrthographic(-2, 2, -1, 1, 1, 11)
	TolAssertEqualVector3(t, StandardTol, Vec3(1, 1, -1), Vec3(2, 1, -1).MulMatrix4(&ortho))
	TolAssertEqualVector3(t, StandardTol, Vec3(-1, -1, 1), Vec3(-2, -1, -11).MulMatrix4(&ortho))
}

func TestVector3Format(t *testing.T) {
	v := Vec3(0.1, -2.5e-7, 1234.5678)
	pv, err := ParseVector3(v.Format())
	require.NoError(t, err)
	assert.Equal(t, v, pv)

	pv, err = ParseVector3("(1, 2, 3)")
	require.NoError(t, err)
	assert.Equal(t, Vec3(1, 2, 3), pv)

	_, err = ParseVector3("1,2")
	assert.Error(t, err)
}
