// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"math/bits"
	"strings"
	"sync"
)

// Capability is a set of capability markers. Objects declare the
// capabilities they provide and the ones they depend on, and an
// [ObjectList] orders its objects so that every object comes after
// all of the objects providing its dependencies.
type Capability uint64

var (
	capMu    sync.Mutex
	capNames []string
)

// NewCapability registers and returns a new single-bit capability with
// the given name. It panics if all 64 capabilities are taken, so it
// should only be called to initialize package-level variables.
func NewCapability(name string) Capability {
	capMu.Lock()
	defer capMu.Unlock()
	if len(capNames) >= 64 {
		panic(fmt.Sprintf("render.NewCapability: too many capabilities registered, cannot add %q", name))
	}
	c := Capability(1) << len(capNames)
	capNames = append(capNames, name)
	return c
}

var (
	// CapTransform is provided by objects that push a local transform.
	CapTransform = NewCapability("Transform")

	// CapRenderState is provided by objects that set the render state.
	CapRenderState = NewCapability("RenderState")

	// CapBounds is provided by objects that cull or report bounds.
	CapBounds = NewCapability("Bounds")

	// CapGeometry is provided by objects that draw geometry.
	CapGeometry = NewCapability("Geometry")

	// CapPickable is provided by objects that can be picked.
	CapPickable = NewCapability("Pickable")
)

// Has returns whether all of the given capabilities are set.
func (c Capability) Has(o Capability) bool {
	return c&o == o
}

// HasAny returns whether any of the given capabilities is set.
func (c Capability) HasAny(o Capability) bool {
	return c&o != 0
}

// String returns the names of the set capabilities separated by |.
func (c Capability) String() string {
	if c == 0 {
		return "0"
	}
	capMu.Lock()
	defer capMu.Unlock()
	var sb strings.Builder
	for rest := c; rest != 0; rest &= rest - 1 {
		i := bits.TrailingZeros64(uint64(rest))
		if sb.Len() > 0 {
			sb.WriteByte('|')
		}
		if i < len(capNames) {
			sb.WriteString(capNames[i])
		} else {
			fmt.Fprintf(&sb, "Capability(%d)", i)
		}
	}
	return sb.String()
}
