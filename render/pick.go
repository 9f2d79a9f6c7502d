// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"log/slog"

	"cogentcore.org/scene/base/errors"
	"cogentcore.org/scene/camera"
	"cogentcore.org/scene/math32"
)

// Hit is an intersection with the geometry of an object,
// in the object's local space.
type Hit struct {
	Point math32.Vector3

	Normal    math32.Vector3
	HasNormal bool

	NearestVert    math32.Vector3
	HasNearestVert bool

	// UserData is opaque data about the hit, such as the index
	// of the hit primitive.
	UserData []any
}

// GeometricPick is implemented by objects that test picks against
// their geometry. Rays and frustums are given in local space.
type GeometricPick interface {
	PickRay(ray math32.Ray) []Hit
	PickFrustum(f math32.Frustum) []Hit
}

// Intersectable is implemented by objects that can intersect a ray
// given in local space, returning the nearest hit.
type Intersectable interface {
	Intersect(ray math32.Ray) (Hit, bool)
}

// PickAction dispatches a scene like a [RenderAction], but tests each
// traverse node against a pick ray or frustum instead of drawing it.
// Objects implementing [GeometricPick] or [Intersectable] are tested
// against their geometry, and the others against their world bounds.
type PickAction struct {
	*RenderAction

	cam        *camera.Camera
	ray        math32.Ray
	frustum    math32.Frustum
	eye        math32.Vector3
	multiPick  bool
	useFrustum bool
	hits       []*HitRecord
}

// NewPickAction returns a new pick action.
func NewPickAction() *PickAction {
	pa := &PickAction{RenderAction: NewRenderAction(nil)}
	pa.DispatchFunc = pa.pickNode
	return pa
}

// Init sets up the pick region for the given camera from the given
// rectangle in viewport pixels, with the origin at the top left.
// If useFrustum is set and the rectangle is not empty, the pick
// tests the frustum through the rectangle; otherwise it tests the
// ray through its center. Unless multiPick is set, only the nearest
// hit is kept. The viewport must be set first.
func (pa *PickAction) Init(cam *camera.Camera, x, y, w, h int, multiPick, useFrustum bool) error {
	vw, vh := float32(pa.ViewportWidth()), float32(pa.ViewportHeight())
	if vw <= 0 || vh <= 0 {
		return errors.Errorf("render.PickAction.Init: viewport is %vx%v: %w", vw, vh, camera.ErrOutOfRange)
	}
	ndcX := func(px float32) float32 { return px/vw - 0.5 }
	ndcY := func(py float32) float32 { return 0.5 - py/vh }

	pa.cam = cam
	pa.eye = cam.Eye()
	pa.multiPick = multiPick
	pa.useFrustum = useFrustum && w > 0 && h > 0
	cx := float32(x) + float32(w)/2
	cy := float32(y) + float32(h)/2
	pa.ray = cam.CreateWorldRay(ndcX(cx), ndcY(cy))
	if pa.useFrustum {
		pa.frustum = cam.WorldSubFrustum(ndcX(float32(x)), ndcY(float32(y+h)), ndcX(float32(x+w)), ndcY(float32(y)))
	}
	pa.hits = nil
	return nil
}

// Pick dispatches the scene from the given root against the pick
// region set by [PickAction.Init], and returns the hits sorted
// nearest first.
func (pa *PickAction) Pick(root *SceneNode) []*HitRecord {
	pa.hits = nil
	pa.Dispatch(root, pa.cam)
	return pa.finishHits()
}

// GetHits returns the hits of the last pick or intersection.
func (pa *PickAction) GetHits() []*HitRecord {
	return pa.hits
}

// Intersect returns the nearest hit of the given world space ray
// with the scene from the given root, or false if there is none.
// Distances are measured from the origin of the ray.
func (pa *PickAction) Intersect(root *SceneNode, ray math32.Ray) (*HitRecord, bool) {
	hits := pa.intersect(root, ray, false)
	if len(hits) == 0 {
		return nil, false
	}
	return hits[0], true
}

// IntersectAll returns all hits of the given world space ray with the
// scene from the given root, sorted by distance from the ray origin.
func (pa *PickAction) IntersectAll(root *SceneNode, ray math32.Ray) []*HitRecord {
	return pa.intersect(root, ray, true)
}

func (pa *PickAction) intersect(root *SceneNode, ray math32.Ray, multi bool) []*HitRecord {
	pa.ray = ray
	pa.eye = ray.Origin
	pa.useFrustum = false
	pa.multiPick = multi
	pa.hits = nil
	pa.Dispatch(root, pa.cam)
	return pa.finishHits()
}

func (pa *PickAction) finishHits() []*HitRecord {
	SortHits(pa.hits, pa.eye)
	if !pa.multiPick && len(pa.hits) > 1 {
		clear(pa.hits[1:])
		pa.hits = pa.hits[:1]
	}
	return pa.hits
}

// pickNode tests the given traverse node against the pick region.
func (pa *PickAction) pickNode(tn *TraverseNode) {
	inv, err := tn.Transform.Inverse()
	if err != nil {
		slog.Debug("render.PickAction: skipping object with singular transform", "object", tn.Object)
		return
	}
	switch obj := tn.Object.(type) {
	case GeometricPick:
		var hits []Hit
		if pa.useFrustum {
			hits = obj.PickFrustum(pa.frustum.MulMatrix4(tn.Transform))
		} else {
			hits = obj.PickRay(pa.ray.MulMatrix4(inv))
		}
		for i := range hits {
			pa.addHit(tn, &hits[i], inv)
		}
		return
	case Intersectable:
		if !pa.useFrustum {
			if h, ok := obj.Intersect(pa.ray.MulMatrix4(inv)); ok {
				pa.addHit(tn, &h, inv)
			}
			return
		}
	}
	pa.pickBounds(tn)
}

// pickBounds tests the world bounds of the given traverse node.
func (pa *PickAction) pickBounds(tn *TraverseNode) {
	wb := tn.WorldBounds
	if wb.IsEmpty() {
		return
	}
	var p math32.Vector3
	if pa.useFrustum {
		if !pa.frustum.IntersectsBox(wb) {
			return
		}
		p = wb.Center()
	} else {
		d, ok := pa.ray.IntersectBox(wb)
		if !ok {
			return
		}
		p = pa.ray.At(d)
	}
	pa.hits = append(pa.hits, NewHitRecord(tn.GraphPath, tn.Object, *tn.Transform, WithWorldIntersection(p)))
}

// addHit adds a hit record for the given local space hit, transformed
// into world space. Normals are transformed by the inverse transpose.
func (pa *PickAction) addHit(tn *TraverseNode, h *Hit, inv *math32.Matrix4) {
	opts := []HitOption{WithWorldIntersection(h.Point.MulMatrix4(tn.Transform))}
	if h.HasNormal {
		opts = append(opts, WithNormal(h.Normal.MulMatrix4AsVector4(inv.Transpose(), 0).Normal()))
	}
	if h.HasNearestVert {
		opts = append(opts, WithNearestVert(h.NearestVert.MulMatrix4(tn.Transform)))
	}
	if len(h.UserData) > 0 {
		opts = append(opts, WithUserData(h.UserData...))
	}
	pa.hits = append(pa.hits, NewHitRecord(tn.GraphPath, tn.Object, *tn.Transform, opts...))
}
