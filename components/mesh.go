// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package components

import (
	"log/slog"

	"cogentcore.org/scene/math32"
	"cogentcore.org/scene/render"
)

// Mesh is an indexed triangle mesh. It emits one draw call per
// traversal, and is picked against its triangles. Hits carry the index
// of the hit triangle as user data.
type Mesh struct {
	objectBase

	// Name is the name of the mesh, reported in draw calls.
	Name string

	// Vertices are the vertex positions, in local space.
	Vertices []math32.Vector3

	// Indices are the vertex indexes of the triangles, three per triangle.
	Indices []int

	// Drawer receives the draw calls of the mesh. It can be nil.
	Drawer Drawer

	bbox math32.Box3
}

// NewMesh returns a new mesh with the given triangles.
func NewMesh(name string, vertices []math32.Vector3, indices []int) *Mesh {
	ms := &Mesh{Name: name, Vertices: vertices, Indices: indices}
	ms.UpdateBounds()
	return ms
}

// NewBox returns a box mesh of the given size centered at the origin.
func NewBox(name string, size math32.Vector3) *Mesh {
	h := size.MulScalar(0.5)
	vtx := make([]math32.Vector3, 8)
	for i := range vtx {
		v := h
		if i&1 == 0 {
			v.X = -v.X
		}
		if i&2 == 0 {
			v.Y = -v.Y
		}
		if i&4 == 0 {
			v.Z = -v.Z
		}
		vtx[i] = v
	}
	// counter-clockwise seen from outside
	idx := []int{
		0, 4, 6, 0, 6, 2, // -x
		1, 3, 7, 1, 7, 5, // +x
		0, 1, 5, 0, 5, 4, // -y
		2, 6, 7, 2, 7, 3, // +y
		0, 2, 3, 0, 3, 1, // -z
		4, 5, 7, 4, 7, 6, // +z
	}
	return NewMesh(name, vtx, idx)
}

// UpdateBounds recomputes the bounding box from the vertices.
func (ms *Mesh) UpdateBounds() {
	ms.bbox.SetFromPoints(ms.Vertices)
}

// NumTriangles returns the number of triangles.
func (ms *Mesh) NumTriangles() int {
	return len(ms.Indices) / 3
}

// Triangle returns the triangle at the given index.
func (ms *Mesh) Triangle(i int) math32.Triangle {
	var t math32.Triangle
	t.SetFromPointsAndIndices(ms.Vertices, ms.Indices[3*i], ms.Indices[3*i+1], ms.Indices[3*i+2])
	return t
}

func (ms *Mesh) Provides() render.Capability {
	return render.CapGeometry | render.CapPickable
}

func (ms *Mesh) Dependencies() render.Capability {
	return render.CapTransform | render.CapRenderState | render.CapBounds
}

// Init returns false if the indexes do not make whole triangles
// of existing vertices.
func (ms *Mesh) Init(node *render.SceneNode) bool {
	if len(ms.Indices)%3 != 0 {
		slog.Warn("components.Mesh.Init: indexes do not make whole triangles", "mesh", ms.Name, "indexes", len(ms.Indices))
		return false
	}
	for _, i := range ms.Indices {
		if i < 0 || i >= len(ms.Vertices) {
			slog.Warn("components.Mesh.Init: index out of range", "mesh", ms.Name, "index", i)
			return false
		}
	}
	ms.UpdateBounds()
	return true
}

func (ms *Mesh) LocalBounds() math32.Box3 {
	return ms.bbox
}

func (ms *Mesh) Traverse(node *render.SceneNode, action render.Action) bool {
	action.Emit(ms, ms.bbox)
	return true
}

func (ms *Mesh) Dispatch(tn *render.TraverseNode, action render.Action) {
	if ms.Drawer != nil {
		ms.Drawer.Draw(NewDrawCall(ms.Name, tn))
	}
}

func (ms *Mesh) Clone() render.Object {
	c := *ms
	return &c
}

// PickRay returns a hit for each triangle the given local space ray
// crosses. Normals face the ray origin.
func (ms *Mesh) PickRay(ray math32.Ray) []render.Hit {
	var hits []render.Hit
	for i := range ms.NumTriangles() {
		t := ms.Triangle(i)
		d, ok := t.IntersectRay(ray)
		if !ok || d < 0 {
			continue
		}
		p := ray.At(d)
		n := t.Normal()
		if n.Dot(ray.Dir) > 0 {
			n = n.Negate()
		}
		hits = append(hits, render.Hit{
			Point:          p,
			Normal:         n,
			HasNormal:      true,
			NearestVert:    t.NearestVertex(p),
			HasNearestVert: true,
			UserData:       []any{i},
		})
	}
	return hits
}

// PickFrustum returns a hit at the midpoint of each triangle that has
// a vertex inside the given local space frustum.
func (ms *Mesh) PickFrustum(f math32.Frustum) []render.Hit {
	var hits []render.Hit
	for i := range ms.NumTriangles() {
		t := ms.Triangle(i)
		for _, v := range []math32.Vector3{t.A, t.B, t.C} {
			if !f.ContainsPoint(v) {
				continue
			}
			hits = append(hits, render.Hit{
				Point:          t.Midpoint(),
				NearestVert:    v,
				HasNearestVert: true,
				UserData:       []any{i},
			})
			break
		}
	}
	return hits
}

// Intersect returns the nearest hit of the given local space ray.
func (ms *Mesh) Intersect(ray math32.Ray) (render.Hit, bool) {
	hits := ms.PickRay(ray)
	if len(hits) == 0 {
		return render.Hit{}, false
	}
	best := 0
	for i := range hits {
		if ray.Origin.DistanceToSquared(hits[i].Point) < ray.Origin.DistanceToSquared(hits[best].Point) {
			best = i
		}
	}
	return hits[best], true
}

// Sphere is an analytic sphere, picked by ray intersection only.
// In frustum picks it is tested against its bounds.
type Sphere struct {
	objectBase

	// Name is the name of the sphere, reported in draw calls.
	Name string

	Center math32.Vector3

	Radius float32

	// Drawer receives the draw calls of the sphere. It can be nil.
	Drawer Drawer
}

// NewSphere returns a new sphere of the given radius at the origin.
func NewSphere(name string, radius float32) *Sphere {
	return &Sphere{Name: name, Radius: radius}
}

func (sp *Sphere) sphere() math32.Sphere {
	return math32.Sphere{Center: sp.Center, Radius: sp.Radius}
}

func (sp *Sphere) Provides() render.Capability     { return render.CapGeometry }
func (sp *Sphere) Dependencies() render.Capability { return render.CapTransform | render.CapRenderState }

func (sp *Sphere) Init(node *render.SceneNode) bool {
	return sp.Radius > 0
}

func (sp *Sphere) LocalBounds() math32.Box3 {
	s := sp.sphere()
	return s.BBox()
}

func (sp *Sphere) Traverse(node *render.SceneNode, action render.Action) bool {
	action.Emit(sp, sp.LocalBounds())
	return true
}

func (sp *Sphere) Dispatch(tn *render.TraverseNode, action render.Action) {
	if sp.Drawer != nil {
		sp.Drawer.Draw(NewDrawCall(sp.Name, tn))
	}
}

func (sp *Sphere) Clone() render.Object {
	c := *sp
	return &c
}

// Intersect returns the point where the given local space ray
// enters the sphere.
func (sp *Sphere) Intersect(ray math32.Ray) (render.Hit, bool) {
	d, ok := ray.IntersectSphere(sp.sphere())
	if !ok {
		return render.Hit{}, false
	}
	p := ray.At(d)
	return render.Hit{
		Point:     p,
		Normal:    p.Sub(sp.Center).Normal(),
		HasNormal: true,
	}, true
}
