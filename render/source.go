// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"reflect"

	"cogentcore.org/scene/math32"
)

// Source objects are the model objects a scene graph is built from.
// They are plain values of any type; the interfaces below are the
// capabilities a source can expose, either by implementing them itself
// or by carrying capability instances through [CapabilityProvider].

// TreeView enumerates the children of source objects. It is used for
// sources that do not implement [ChildLister].
type TreeView interface {
	Children(parent any) []any
}

// ChildLister is implemented by sources that enumerate their own children.
type ChildLister interface {
	RenderChildren() []any
}

// RenderableParent is implemented by sources that decide which of their
// descendants are added to the scene graph below them.
type RenderableParent interface {
	CanParentRenderable(child any) bool
}

// Transformable is implemented by sources with a local transform.
type Transformable interface {
	Translation() math32.Vector3

	// Rotation returns the Euler rotation, in degrees.
	Rotation() math32.Vector3

	Scale() math32.Vector3

	// Pivot returns the point that rotation and scaling are about.
	Pivot() math32.Vector3

	// LocalTransform returns the composed local transform.
	LocalTransform() math32.Matrix4
}

// Boundable is implemented by sources with a spatial extent.
type Boundable interface {

	// LocalBounds returns the bounding box in local coordinates.
	LocalBounds() math32.Box3
}

// CapabilityProvider is implemented by sources that carry additional
// capability instances, such as renderable components.
type CapabilityProvider interface {
	Capabilities() []any
}

// SceneNodeBuilder is a capability that takes part in building the
// [SceneNode] of its source. If it is also an [Object] and AutoBuild
// returns true, the builder initializes it and adds it to the node.
type SceneNodeBuilder interface {
	AutoBuild() bool

	// NodeBuilt is called once the node of the source has been created.
	NodeBuilt(node *SceneNode)
}

// Namer is implemented by sources that name their scene nodes.
type Namer interface {
	NodeName() string
}

// As returns the source as the given capability type, or the first of
// its [CapabilityProvider] capabilities of that type.
func As[T any](source any) (T, bool) {
	if t, ok := source.(T); ok {
		return t, true
	}
	if cp, ok := source.(CapabilityProvider); ok {
		for _, c := range cp.Capabilities() {
			if t, ok := c.(T); ok {
				return t, true
			}
		}
	}
	var zero T
	return zero, false
}

// AsAll returns the source, if it has the given capability type, followed
// by all of its [CapabilityProvider] capabilities of that type.
func AsAll[T any](source any) []T {
	var all []T
	if t, ok := source.(T); ok {
		all = append(all, t)
	}
	if cp, ok := source.(CapabilityProvider); ok {
		for _, c := range cp.Capabilities() {
			if t, ok := c.(T); ok {
				all = append(all, t)
			}
		}
	}
	return all
}

// sourceKey returns the source as a map key, or false if its type
// is not comparable.
func sourceKey(source any) (any, bool) {
	if source == nil || !reflect.TypeOf(source).Comparable() {
		return nil, false
	}
	return source, true
}
