// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Box3 is an axis aligned bounding box, given by its minimum
// and maximum corners. A box with Max < Min on any axis is empty.
type Box3 struct {
	Min Vector3
	Max Vector3
}

// B3 returns the box with the given minimum and maximum coordinates.
func B3(x0, y0, z0, x1, y1, z1 float32) Box3 {
	return Box3{Vec3(x0, y0, z0), Vec3(x1, y1, z1)}
}

// B3Empty returns an empty box, which any point expands to
// a box of that single point.
func B3Empty() Box3 {
	return Box3{Min: Vector3Scalar(Infinity), Max: Vector3Scalar(-Infinity)}
}

// IsEmpty returns whether the box contains no points.
func (b Box3) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y || b.Max.Z < b.Min.Z
}

// SetFromPoints sets the box to the bounds of the given points,
// or to an empty box if there are none.
func (b *Box3) SetFromPoints(points []Vector3) {
	*b = B3Empty()
	for _, p := range points {
		b.ExpandByPoint(p)
	}
}

// ExpandByPoint grows the box to include the given point.
func (b *Box3) ExpandByPoint(p Vector3) {
	b.Min.SetMin(p)
	b.Max.SetMax(p)
}

// Center returns the midpoint of the box.
func (b Box3) Center() Vector3 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// Size returns the extent of the box along each axis.
func (b Box3) Size() Vector3 {
	return b.Max.Sub(b.Min)
}

// ContainsPoint returns whether the point is inside the box or on its surface.
func (b Box3) ContainsPoint(p Vector3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// ContainsBox returns whether the other box is entirely inside this one.
func (b Box3) ContainsBox(o Box3) bool {
	return b.ContainsPoint(o.Min) && b.ContainsPoint(o.Max)
}

// Corners returns the eight corners of the box. Bit 0 of the
// index selects the max x, bit 1 the max y and bit 2 the max z.
func (b Box3) Corners() [8]Vector3 {
	var cs [8]Vector3
	for i := range cs {
		c := b.Min
		if i&1 != 0 {
			c.X = b.Max.X
		}
		if i&2 != 0 {
			c.Y = b.Max.Y
		}
		if i&4 != 0 {
			c.Z = b.Max.Z
		}
		cs[i] = c
	}
	return cs
}

// MulMatrix4 returns the bounds of the corners of the box transformed
// by the given matrix. An empty box stays empty.
func (b Box3) MulMatrix4(m *Matrix4) Box3 {
	if b.IsEmpty() {
		return B3Empty()
	}
	nb := B3Empty()
	for _, c := range b.Corners() {
		nb.ExpandByPoint(c.MulMatrix4(m))
	}
	return nb
}
