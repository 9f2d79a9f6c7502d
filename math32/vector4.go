// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Vector4 is a homogeneous point or plane, or an RGBA color
// with components in the 0-1 range.
type Vector4 struct {
	X float32
	Y float32
	Z float32
	W float32
}

// Vec4 returns the vector with the given components.
func Vec4(x, y, z, w float32) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

// Vector4FromArray returns the vector with the components of the
// given array, in X, Y, Z, W order, as read from scene files.
func Vector4FromArray(a [4]float32) Vector4 {
	return Vector4{a[0], a[1], a[2], a[3]}
}

func (v Vector4) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", v.X, v.Y, v.Z, v.W)
}

// ToArray returns the components in X, Y, Z, W order.
func (v Vector4) ToArray() [4]float32 {
	return [4]float32{v.X, v.Y, v.Z, v.W}
}

// Vector3 drops the W component.
func (v Vector4) Vector3() Vector3 {
	return Vector3{v.X, v.Y, v.Z}
}

// Dot returns the four component dot product.
func (v Vector4) Dot(o Vector4) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W
}
