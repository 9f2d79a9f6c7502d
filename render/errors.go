// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"cogentcore.org/scene/base/errors"
	"cogentcore.org/scene/depsort"
)

var (
	// ErrInvalidState is returned when reading a value that was never set,
	// such as the intersection of a [HitRecord] without one.
	ErrInvalidState = errors.New("invalid state")

	// ErrConflict is returned for conflicting configuration, such as
	// registering two [Guardian] handlers for the same mode bit.
	ErrConflict = errors.New("configuration conflict")

	// ErrNotImplemented is returned for operations that are not supported,
	// such as copying a [SceneNode] that has children.
	ErrNotImplemented = errors.New("not implemented")

	// ErrCyclicDependency is returned when adding an [Object] to an
	// [ObjectList] would create a dependency cycle.
	ErrCyclicDependency = depsort.ErrCyclicDependency
)
