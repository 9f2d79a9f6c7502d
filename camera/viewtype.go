// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"strconv"
	"strings"

	"cogentcore.org/scene/base/errors"
)

// ViewType is the kind of view a [Camera] provides.
type ViewType int32

const (
	// Perspective is a free perspective view.
	Perspective ViewType = iota

	// Top looks down the -Y axis.
	Top

	// Bottom looks up the +Y axis.
	Bottom

	// Front looks down the -Z axis.
	Front

	// Back looks down the +Z axis.
	Back

	// Left looks down the +X axis.
	Left

	// Right looks down the -X axis.
	Right

	// Orthographic is a free orthographic view.
	Orthographic

	ViewTypesN
)

var viewTypeNames = [ViewTypesN]string{"Perspective", "Top", "Bottom", "Front", "Back", "Left", "Right", "Orthographic"}

// String returns the name of the view type.
func (vt ViewType) String() string {
	if vt < 0 || vt >= ViewTypesN {
		return "ViewType(" + strconv.Itoa(int(vt)) + ")"
	}
	return viewTypeNames[vt]
}

// ParseViewType returns the view type with the given name (case insensitive).
func ParseViewType(s string) (ViewType, error) {
	for i, nm := range viewTypeNames {
		if strings.EqualFold(nm, s) {
			return ViewType(i), nil
		}
	}
	return Perspective, errors.Errorf("camera.ParseViewType: %q is not a valid view type: %w", s, ErrOutOfRange)
}

// ProjectionType is the projection used by a [Camera].
type ProjectionType int32

const (
	// PerspectiveProjection is a perspective projection.
	PerspectiveProjection ProjectionType = iota

	// OrthographicProjection is a parallel projection.
	OrthographicProjection
)

// String returns the name of the projection type.
func (pt ProjectionType) String() string {
	if pt == OrthographicProjection {
		return "Orthographic"
	}
	return "Perspective"
}

// ProjectionType returns the projection the view type uses:
// every view other than [Perspective] is orthographic.
func (vt ViewType) ProjectionType() ProjectionType {
	if vt == Perspective {
		return PerspectiveProjection
	}
	return OrthographicProjection
}
