// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"github.com/jinzhu/copier"
)

// StateStack is a stack of render states whose composed state is
// maintained incrementally: each entry is composed against the composed
// state of the entries below it, outermost first, and only entries
// pushed since the last composition are recomputed.
type StateStack struct {
	entries []*State

	// composed[i] is the composition of entries[0..i]; valid up to nvalid
	composed []State
	nvalid   int
}

// Push pushes the given state. The stack refers to the state, so
// call [StateStack.Invalidate] after changing it while on the stack.
func (ss *StateStack) Push(s *State) {
	ss.entries = append(ss.entries, s)
}

// Pop removes and returns the top state, or nil if the stack is empty.
func (ss *StateStack) Pop() *State {
	n := len(ss.entries)
	if n == 0 {
		return nil
	}
	s := ss.entries[n-1]
	ss.entries[n-1] = nil
	ss.entries = ss.entries[:n-1]
	ss.nvalid = min(ss.nvalid, n-1)
	return s
}

// Top returns the top state without composing it, or nil if the stack is empty.
func (ss *StateStack) Top() *State {
	if len(ss.entries) == 0 {
		return nil
	}
	return ss.entries[len(ss.entries)-1]
}

// Len returns the number of states on the stack.
func (ss *StateStack) Len() int {
	return len(ss.entries)
}

// Clear removes all states.
func (ss *StateStack) Clear() {
	clear(ss.entries)
	ss.entries = ss.entries[:0]
	ss.nvalid = 0
}

// Invalidate forces the composed state to be fully recomputed.
func (ss *StateStack) Invalidate() {
	ss.nvalid = 0
}

// ComposedState returns the composed state of the whole stack, or nil
// if the stack is empty. The result is owned by the stack and is only
// valid until it next changes.
func (ss *StateStack) ComposedState() *State {
	n := len(ss.entries)
	if n == 0 {
		return nil
	}
	if cap(ss.composed) < n {
		nc := make([]State, n, 2*n)
		copy(nc, ss.composed[:ss.nvalid])
		ss.composed = nc
	}
	ss.composed = ss.composed[:n]
	for i := ss.nvalid; i < n; i++ {
		ss.composed[i] = *ss.entries[i]
		if i > 0 {
			ss.composed[i].ComposeFrom(&ss.composed[i-1])
		}
	}
	ss.nvalid = n
	return &ss.composed[n-1]
}

// Clone returns a deep copy of the stack, with copies of its states.
func (ss *StateStack) Clone() *StateStack {
	ns := &StateStack{}
	ns.entries = make([]*State, 0, len(ss.entries))
	for _, s := range ss.entries {
		cs := &State{}
		copier.CopyWithOption(cs, s, copier.Option{DeepCopy: true})
		ns.entries = append(ns.entries, cs)
	}
	return ns
}
