// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 is a float32 based vector, matrix, and geometry package
// for the 3D scene graph: vectors, column-major 4x4 matrices, boxes, rays,
// planes, spheres and view frustums.
package math32

import (
	"cmp"
	"math"

	"github.com/chewxy/math32"
)

// The trigonometric and root functions wrap github.com/chewxy/math32,
// which has float32 implementations of them.

// DegToRadFactor is the number of radians per degree.
const DegToRadFactor = math.Pi / 180

// Infinity is positive infinity.
var Infinity = float32(math.Inf(1))

// DegToRad converts degrees to radians. Poses and the camera field of
// view are kept in degrees and converted when matrices are built.
func DegToRad(degrees float32) float32 {
	return degrees * DegToRadFactor
}

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	return math32.Abs(x)
}

// Cos returns the cosine of the radian argument x.
func Cos(x float32) float32 {
	return math32.Cos(x)
}

// Sin returns the sine of the radian argument x.
func Sin(x float32) float32 {
	return math32.Sin(x)
}

// Tan returns the tangent of the radian argument x.
func Tan(x float32) float32 {
	return math32.Tan(x)
}

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 {
	return math32.Sqrt(x)
}

// Max returns the larger of x or y.
func Max(x, y float32) float32 {
	return math32.Max(x, y)
}

// Min returns the smaller of x or y.
func Min(x, y float32) float32 {
	return math32.Min(x, y)
}

// Clamp returns x limited to the closed interval [a, b].
func Clamp[T cmp.Ordered](x, a, b T) T {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

// Lerp interpolates linearly from start (amount 0) to stop (amount 1).
func Lerp(start, stop, amount float32) float32 {
	return (1-amount)*start + amount*stop
}

// EqualTol returns whether a and b are within tol of each other.
func EqualTol(a, b, tol float32) bool {
	return Abs(a-b) <= tol
}
