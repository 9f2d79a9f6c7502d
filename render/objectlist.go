// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"slices"

	"cogentcore.org/scene/base/errors"
	"cogentcore.org/scene/depsort"
)

// objectOrder orders objects by their declared capability dependencies.
// Objects without dependencies go to the head.
var objectOrder = depsort.Order[Object]{
	DependsOn: DependsOn,
	Independent: func(o Object) bool {
		return o.Dependencies() == 0
	},
}

// ObjectList is a list of objects kept in dependency order: every
// object comes after all of the objects providing its dependencies.
// The zero value is an empty list ready to use.
type ObjectList struct {
	objs []Object
}

// Add adds the given object, keeping the list in dependency order.
// It returns an error wrapping [ErrCyclicDependency], and leaves the
// list unchanged, if the object would create a dependency cycle.
func (ol *ObjectList) Add(o Object) error {
	objs, err := objectOrder.Insert(ol.objs, o)
	if err != nil {
		return errors.Errorf("render.ObjectList.Add %T: %w", o, err)
	}
	ol.objs = objs
	return nil
}

// Remove removes the given object, returning false if it is not in
// the list. Removing never breaks the dependency order.
func (ol *ObjectList) Remove(o Object) bool {
	i := ol.IndexOf(o)
	if i < 0 {
		return false
	}
	ol.objs = slices.Delete(ol.objs, i, i+1)
	return true
}

// Contains returns whether the given object is in the list.
func (ol *ObjectList) Contains(o Object) bool {
	return ol.IndexOf(o) >= 0
}

// IndexOf returns the index of the given object, or -1 if it is not in the list.
func (ol *ObjectList) IndexOf(o Object) int {
	return slices.Index(ol.objs, o)
}

// Len returns the number of objects.
func (ol *ObjectList) Len() int {
	return len(ol.objs)
}

// At returns the object at the given index.
func (ol *ObjectList) At(i int) Object {
	return ol.objs[i]
}

// Slice returns the objects in order. The slice must not be modified.
func (ol *ObjectList) Slice() []Object {
	return ol.objs
}

// Clear removes all objects without releasing them.
func (ol *ObjectList) Clear() {
	clear(ol.objs)
	ol.objs = ol.objs[:0]
}
