// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"log/slog"

	"cogentcore.org/scene/base/errors"
	"cogentcore.org/scene/base/iox/tomlx"
	"cogentcore.org/scene/base/ordmap"
	"cogentcore.org/scene/math32"
)

// The attribute names used by [Camera.GetState] and [Camera.SetState].
const (
	StateViewType    = "viewType"
	StateEye         = "eye"
	StateLookAtPoint = "lookAtPoint"
	StateUpVector    = "upVector"
	StateYFov        = "yFov"
	StateNearZ       = "nearZ"
	StateFarZ        = "farZ"
	StateFocusRadius = "focusRadius"
)

// StateNames are the state attribute names, in the order they are written.
var StateNames = []string{StateViewType, StateEye, StateLookAtPoint, StateUpVector, StateYFov, StateNearZ, StateFarZ, StateFocusRadius}

// GetState returns the persistent state of the camera as ordered
// attributes. Floats are written so that they read back exactly, and
// vectors as "x,y,z". The aspect ratio is not included: it always
// follows the viewport.
func (cam *Camera) GetState() *ordmap.Map[string, string] {
	st := ordmap.New[string, string]()
	st.Add(StateViewType, cam.viewType.String())
	st.Add(StateEye, cam.eye.Format())
	st.Add(StateLookAtPoint, cam.lookAtPoint.Format())
	st.Add(StateUpVector, cam.up.Format())
	st.Add(StateYFov, math32.FormatFloat(cam.yFov))
	st.Add(StateNearZ, math32.FormatFloat(cam.NearZ()))
	st.Add(StateFarZ, math32.FormatFloat(cam.farZ))
	st.Add(StateFocusRadius, math32.FormatFloat(cam.focusRadius))
	return st
}

// SetState restores state saved by [Camera.GetState]. Missing attributes
// keep their current values. Nothing is changed if any attribute is
// invalid. A single change notification is sent.
func (cam *Camera) SetState(st *ordmap.Map[string, string]) error {
	nc := *cam
	nc.onChanged = nil
	var err error
	parseVec := func(name string, v *math32.Vector3) {
		s, ok := st.ValueByKeyTry(name)
		if !ok || err != nil {
			return
		}
		*v, err = math32.ParseVector3(s)
	}
	parseFloat := func(name string, v *float32) {
		s, ok := st.ValueByKeyTry(name)
		if !ok || err != nil {
			return
		}
		var f float32
		if f, err = math32.ParseFloat(s); err == nil {
			if !(f > 0) {
				err = errors.Errorf("%s %g must be positive: %w", name, f, ErrOutOfRange)
				return
			}
			*v = f
		}
	}
	if s, ok := st.ValueByKeyTry(StateViewType); ok {
		nc.viewType, err = ParseViewType(s)
	}
	eye, lookAtPoint, up := nc.eye, nc.lookAtPoint, nc.up
	parseVec(StateEye, &eye)
	parseVec(StateLookAtPoint, &lookAtPoint)
	parseVec(StateUpVector, &up)
	parseFloat(StateYFov, &nc.yFov)
	nearZ := nc.NearZ()
	parseFloat(StateNearZ, &nearZ)
	parseFloat(StateFarZ, &nc.farZ)
	parseFloat(StateFocusRadius, &nc.focusRadius)
	if err != nil {
		return errors.Errorf("camera.SetState: %w", err)
	}
	if nearZ >= nc.farZ || nc.yFov >= 180 || eye == lookAtPoint {
		return errors.Errorf("camera.SetState: inconsistent state %v: %w", st, ErrOutOfRange)
	}
	if nc.ProjectionType() == OrthographicProjection {
		nc.orthoNearZ = nearZ
	} else {
		nc.perspectiveNearZ = nearZ
	}
	dir := lookAtPoint.Sub(eye).Normal()
	if dir.Cross(up).LengthSquared() == 0 {
		return errors.Errorf("camera.SetState: up %v is parallel to the look direction: %w", up, ErrOutOfRange)
	}
	// saved state is already orthonormal; only fix up hand-written values
	orthogonal := math32.Abs(dir.Dot(up)) < 1e-5 && math32.Abs(up.Length()-1) < 1e-5
	nc.setBasis(eye, lookAtPoint, up, !orthogonal)
	nc.onChanged = cam.onChanged
	nc.updating = cam.updating
	nc.pending = cam.pending
	*cam = nc
	cam.changed()
	return nil
}

// SaveState saves the camera state to the given TOML file.
func (cam *Camera) SaveState(filename string) error {
	m := make(map[string]string)
	for k, v := range cam.GetState().All() {
		m[k] = v
	}
	return tomlx.Save(m, filename)
}

// OpenState restores the camera state from the given TOML file
// written by [Camera.SaveState]. Unknown attributes are ignored.
func (cam *Camera) OpenState(filename string) error {
	m := make(map[string]string)
	if err := tomlx.Open(&m, filename); err != nil {
		return err
	}
	st := ordmap.New[string, string]()
	for _, nm := range StateNames {
		if v, ok := m[nm]; ok {
			st.Add(nm, v)
			delete(m, nm)
		}
	}
	for k := range m {
		slog.Warn("camera.OpenState: ignoring unknown attribute", "file", filename, "attribute", k)
	}
	return cam.SetState(st)
}
