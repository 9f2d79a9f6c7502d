// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"cmp"
	"slices"

	"cogentcore.org/scene/base/errors"
	"cogentcore.org/scene/math32"
)

// HitRecord is the result of a pick. It cannot be changed after
// it is made. The optional world intersection, normal and nearest
// vertex each have a Has method, which should be checked before
// reading them.
type HitRecord struct {
	graphPath []*SceneNode
	object    Object
	transform math32.Matrix4
	userData  []any

	worldIntersection    math32.Vector3
	hasWorldIntersection bool
	normal               math32.Vector3
	hasNormal            bool
	nearestVert          math32.Vector3
	hasNearestVert       bool
}

// HitOption sets an optional value of a new [HitRecord].
type HitOption func(hr *HitRecord)

// WithWorldIntersection sets the intersection point, in world space.
func WithWorldIntersection(p math32.Vector3) HitOption {
	return func(hr *HitRecord) {
		hr.worldIntersection = p
		hr.hasWorldIntersection = true
	}
}

// WithNormal sets the surface normal at the intersection, in world space.
func WithNormal(n math32.Vector3) HitOption {
	return func(hr *HitRecord) {
		hr.normal = n
		hr.hasNormal = true
	}
}

// WithNearestVert sets the vertex nearest to the intersection, in world space.
func WithNearestVert(v math32.Vector3) HitOption {
	return func(hr *HitRecord) {
		hr.nearestVert = v
		hr.hasNearestVert = true
	}
}

// WithUserData sets the opaque data of the object about the hit,
// such as the index of the hit primitive.
func WithUserData(data ...any) HitOption {
	return func(hr *HitRecord) {
		hr.userData = append(hr.userData, data...)
	}
}

// NewHitRecord returns a new hit record for the given object, with
// copies of the given graph path and world transform.
func NewHitRecord(path []*SceneNode, obj Object, transform math32.Matrix4, opts ...HitOption) *HitRecord {
	hr := &HitRecord{
		graphPath: slices.Clone(path),
		object:    obj,
		transform: transform,
	}
	for _, opt := range opts {
		opt(hr)
	}
	return hr
}

// GraphPath returns the scene graph path from the root down to the node
// of the object. It must not be modified.
func (hr *HitRecord) GraphPath() []*SceneNode { return hr.graphPath }

// Node returns the scene node of the object, or nil if the path is empty.
func (hr *HitRecord) Node() *SceneNode {
	if len(hr.graphPath) == 0 {
		return nil
	}
	return hr.graphPath[len(hr.graphPath)-1]
}

// Object returns the object that was hit.
func (hr *HitRecord) Object() Object { return hr.object }

// Transform returns the world transform of the object.
func (hr *HitRecord) Transform() math32.Matrix4 { return hr.transform }

// UserData returns the opaque data of the object about the hit.
// It must not be modified.
func (hr *HitRecord) UserData() []any { return hr.userData }

func (hr *HitRecord) HasWorldIntersection() bool { return hr.hasWorldIntersection }

func (hr *HitRecord) HasNormal() bool { return hr.hasNormal }

func (hr *HitRecord) HasNearestVert() bool { return hr.hasNearestVert }

// WorldIntersection returns the intersection point in world space, or an
// error wrapping [ErrInvalidState] if the hit has none.
func (hr *HitRecord) WorldIntersection() (math32.Vector3, error) {
	if !hr.hasWorldIntersection {
		return math32.Vector3{}, errors.Errorf("render.HitRecord.WorldIntersection: %w", ErrInvalidState)
	}
	return hr.worldIntersection, nil
}

// Normal returns the surface normal in world space, or an error
// wrapping [ErrInvalidState] if the hit has none.
func (hr *HitRecord) Normal() (math32.Vector3, error) {
	if !hr.hasNormal {
		return math32.Vector3{}, errors.Errorf("render.HitRecord.Normal: %w", ErrInvalidState)
	}
	return hr.normal, nil
}

// NearestVert returns the nearest vertex in world space, or an error
// wrapping [ErrInvalidState] if the hit has none.
func (hr *HitRecord) NearestVert() (math32.Vector3, error) {
	if !hr.hasNearestVert {
		return math32.Vector3{}, errors.Errorf("render.HitRecord.NearestVert: %w", ErrInvalidState)
	}
	return hr.nearestVert, nil
}

// SortHits sorts the given hits by the squared distance of their world
// intersection from the given eye point, nearest first. Hits without an
// intersection go last. The sort is stable.
func SortHits(hits []*HitRecord, eye math32.Vector3) {
	slices.SortStableFunc(hits, func(a, b *HitRecord) int {
		switch {
		case !a.hasWorldIntersection && !b.hasWorldIntersection:
			return 0
		case !a.hasWorldIntersection:
			return 1
		case !b.hasWorldIntersection:
			return -1
		}
		return cmp.Compare(a.worldIntersection.DistanceToSquared(eye), b.worldIntersection.DistanceToSquared(eye))
	})
}
