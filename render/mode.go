// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"math/bits"
	"strconv"
	"strings"

	"cogentcore.org/scene/base/errors"
)

// Mode is a set of render mode bit flags.
type Mode uint32

const (
	// Smooth renders filled, smoothly shaded surfaces.
	Smooth Mode = 1 << iota

	// Wireframe renders edges only.
	Wireframe

	// SolidColor renders with the solid color of the state.
	SolidColor

	// Lit enables lighting.
	Lit

	// Textured enables texturing with the texture of the state.
	Textured

	// Alpha enables alpha blending.
	Alpha

	// CullBackFace culls back-facing polygons.
	CullBackFace

	// DisableZBuffer disables the depth test.
	DisableZBuffer

	// DisableZBufferWrite disables writing to the depth buffer.
	DisableZBufferWrite

	// WireframeColor renders wireframes with the wireframe color of the state.
	WireframeColor

	// WireframeThickness renders wireframes with the line thickness of the state.
	WireframeThickness

	// Specular enables specular highlights.
	Specular
)

// ModeBitsN is the number of defined [Mode] bits.
const ModeBitsN = 12

var modeNames = [ModeBitsN]string{
	"Smooth", "Wireframe", "SolidColor", "Lit", "Textured", "Alpha", "CullBackFace",
	"DisableZBuffer", "DisableZBufferWrite", "WireframeColor", "WireframeThickness", "Specular",
}

// ModeBit returns the mode with only the given bit index set.
func ModeBit(index int) Mode {
	return 1 << index
}

// Has returns whether all of the given flags are set.
func (m Mode) Has(flags Mode) bool {
	return m&flags == flags
}

// HasAny returns whether any of the given flags are set.
func (m Mode) HasAny(flags Mode) bool {
	return m&flags != 0
}

// BitIndex returns the index of the single bit that is set, or -1
// if the mode does not have exactly one bit set.
func (m Mode) BitIndex() int {
	if bits.OnesCount32(uint32(m)) != 1 {
		return -1
	}
	return bits.TrailingZeros32(uint32(m))
}

// String returns the names of the set flags joined by "|",
// or "0" if none are set.
func (m Mode) String() string {
	if m == 0 {
		return "0"
	}
	var names []string
	for i, nm := range modeNames {
		if m&ModeBit(i) != 0 {
			names = append(names, nm)
		}
	}
	if rest := m &^ (ModeBit(ModeBitsN) - 1); rest != 0 {
		names = append(names, "0x"+strconv.FormatUint(uint64(rest), 16))
	}
	return strings.Join(names, "|")
}

// ParseMode returns the mode with the given named flags set. Each name
// may itself be a "|" separated list; names are case insensitive and
// "0" or "" adds nothing.
func ParseMode(names ...string) (Mode, error) {
	var m Mode
	for _, s := range names {
		for _, nm := range strings.Split(s, "|") {
			nm = strings.TrimSpace(nm)
			if nm == "" || nm == "0" {
				continue
			}
			found := false
			for i, mn := range modeNames {
				if strings.EqualFold(mn, nm) {
					m |= ModeBit(i)
					found = true
					break
				}
			}
			if !found {
				return m, errors.Errorf("render.ParseMode: unknown mode %q", nm)
			}
		}
	}
	return m, nil
}
