// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"cmp"
	"iter"
	"log/slog"
	"slices"
	"strconv"

	"cogentcore.org/scene/math32"
)

// Pass is a render pass of the [Sorter], in dispatch order.
type Pass int32

const (
	// WireframePass renders wireframes without fill.
	WireframePass Pass = iota

	// SmoothPass renders opaque untextured surfaces.
	SmoothPass

	// SmoothTexturedPass renders opaque textured surfaces.
	SmoothTexturedPass

	// AlphaPass renders blended surfaces, farthest first.
	AlphaPass

	// NoZBufferPass renders everything drawn without the depth test.
	NoZBufferPass

	// PassesN is the number of passes. [Sorter.All] reports nodes
	// that match no pass with this value.
	PassesN
)

var passNames = [PassesN]string{"Wireframe", "Smooth", "SmoothTextured", "Alpha", "NoZBuffer"}

func (p Pass) String() string {
	if p >= 0 && p < PassesN {
		return passNames[p]
	}
	if p == PassesN {
		return "Unclassified"
	}
	return "Pass(" + strconv.Itoa(int(p)) + ")"
}

// passMasks are the modes each pass requires and excludes.
var passMasks = [PassesN]struct{ must, mustNot Mode }{
	WireframePass:      {Wireframe, Smooth | Alpha | DisableZBuffer},
	SmoothPass:         {Smooth, Alpha | DisableZBuffer | Textured},
	SmoothTexturedPass: {Smooth | Textured, Alpha | DisableZBuffer},
	AlphaPass:          {Alpha, DisableZBuffer},
	NoZBufferPass:      {DisableZBuffer, 0},
}

// Accepts returns whether the pass accepts the given mode, without
// regard to the passes before it.
func (p Pass) Accepts(m Mode) bool {
	pm := passMasks[p]
	return m.Has(pm.must) && !m.HasAny(pm.mustNot)
}

// ClassifyMode returns the first pass accepting the given mode,
// or false if no pass accepts it.
func ClassifyMode(m Mode) (Pass, bool) {
	for p := range PassesN {
		if p.Accepts(m) {
			return p, true
		}
	}
	return PassesN, false
}

// bucket is the list of nodes of one pass.
type bucket struct {
	nodes []*TraverseNode
	dirty bool
}

// Sorter sorts traverse nodes into render passes to minimize state
// changes. Each pass is sorted when it is first read after an add:
// textured nodes by texture, blended nodes back to front, and the
// others by mode. Sorting is stable, so reading a pass again without
// adding nodes always gives the same order.
type Sorter struct {
	buckets      [PassesN]bucket
	unclassified []*TraverseNode
	view         math32.Matrix4
}

// NewSorter returns a new empty sorter.
func NewSorter() *Sorter {
	s := &Sorter{}
	s.view.SetIdentity()
	return s
}

// SetViewMatrix sets the view matrix used for the depth sort of the
// alpha pass.
func (s *Sorter) SetViewMatrix(view math32.Matrix4) {
	s.view = view
	s.buckets[AlphaPass].dirty = true
}

// Add adds the given node to the first pass accepting its mode. Nodes
// that no pass accepts are kept as unclassified.
func (s *Sorter) Add(tn *TraverseNode) {
	p, ok := ClassifyMode(tn.State.Mode)
	if !ok {
		slog.Warn("render.Sorter: no pass accepts the mode of the node", "mode", tn.State.Mode, "object", tn.Object)
		s.unclassified = append(s.unclassified, tn)
		return
	}
	b := &s.buckets[p]
	b.nodes = append(b.nodes, tn)
	b.dirty = true
}

// Pass returns the sorted nodes of the given pass. The slice is owned
// by the sorter and is only valid until it next changes.
func (s *Sorter) Pass(p Pass) []*TraverseNode {
	b := &s.buckets[p]
	if b.dirty {
		s.sort(p)
		b.dirty = false
	}
	return b.nodes
}

// Unclassified returns the nodes that no pass accepted, in the order
// they were added.
func (s *Sorter) Unclassified() []*TraverseNode {
	return s.unclassified
}

// All iterates over all of the nodes in dispatch order, with their
// pass: all passes in order followed by the unclassified nodes,
// which are reported with [PassesN].
func (s *Sorter) All() iter.Seq2[Pass, *TraverseNode] {
	return func(yield func(Pass, *TraverseNode) bool) {
		for p := range PassesN {
			for _, tn := range s.Pass(p) {
				if !yield(p, tn) {
					return
				}
			}
		}
		for _, tn := range s.unclassified {
			if !yield(PassesN, tn) {
				return
			}
		}
	}
}

// Len returns the total number of nodes.
func (s *Sorter) Len() int {
	n := len(s.unclassified)
	for i := range s.buckets {
		n += len(s.buckets[i].nodes)
	}
	return n
}

// Clear removes all nodes.
func (s *Sorter) Clear() {
	for i := range s.buckets {
		b := &s.buckets[i]
		clear(b.nodes)
		b.nodes = b.nodes[:0]
		b.dirty = false
	}
	clear(s.unclassified)
	s.unclassified = s.unclassified[:0]
}

func (s *Sorter) sort(p Pass) {
	nodes := s.buckets[p].nodes
	switch p {
	case SmoothTexturedPass:
		slices.SortStableFunc(nodes, func(a, b *TraverseNode) int {
			return cmp.Compare(a.State.TextureName, b.State.TextureName)
		})
	case AlphaPass:
		type depthNode struct {
			z  float32
			tn *TraverseNode
		}
		dn := make([]depthNode, len(nodes))
		for i, tn := range nodes {
			dn[i] = depthNode{tn.worldCenter().MulMatrix4(&s.view).Z, tn}
		}
		slices.SortStableFunc(dn, func(a, b depthNode) int {
			return cmp.Compare(a.z, b.z)
		})
		for i := range dn {
			nodes[i] = dn[i].tn
		}
	default:
		slices.SortStableFunc(nodes, func(a, b *TraverseNode) int {
			return cmp.Compare(a.State.Mode, b.State.Mode)
		})
	}
}
