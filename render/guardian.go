// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"cogentcore.org/scene/base/errors"
)

// StateHandler applies one render mode bit of newState to the device.
// oldState is the previously committed state, or nil if the state
// must be applied in full.
type StateHandler func(newState, oldState *State)

// Guardian dispatches committed render states to per-bit handlers,
// passing the last committed state so that handlers can skip
// redundant device changes.
type Guardian struct {
	handlers [ModeBitsN]StateHandler
	old      *State
	oldValid bool
	reset    bool
}

// NewGuardian returns a new guardian with no handlers.
func NewGuardian() *Guardian {
	return &Guardian{}
}

// RegisterHandler registers the handler for the given single-bit key.
// It returns an error wrapping [ErrConflict] if the key does not have
// exactly one defined bit set or already has a handler.
func (g *Guardian) RegisterHandler(key Mode, h StateHandler) error {
	i := key.BitIndex()
	if i < 0 || i >= ModeBitsN {
		return errors.Errorf("render.Guardian.RegisterHandler: key %v must be a single defined bit: %w", key, ErrConflict)
	}
	if g.handlers[i] != nil {
		return errors.Errorf("render.Guardian.RegisterHandler: a handler for %v is already registered: %w", key, ErrConflict)
	}
	g.handlers[i] = h
	return nil
}

// Commit applies the given state through all handlers, and records it as
// the baseline for the next commit.
func (g *Guardian) Commit(s *State) {
	s.CommitAllBitsToGuardian(g)
	if g.old == nil {
		g.old = &State{}
	}
	*g.old = *s
	g.oldValid = true
	g.reset = false
}

// SetRenderStateByIndex calls the handler of the given bit index, if any.
func (g *Guardian) SetRenderStateByIndex(index int, s *State) {
	if index < 0 || index >= ModeBitsN {
		return
	}
	h := g.handlers[index]
	if h == nil {
		return
	}
	h(s, g.OldState())
}

// Reset makes the next commit apply its state in full, passing nil
// as the old state to every handler.
func (g *Guardian) Reset() {
	g.reset = true
}

// OldState returns the state handlers diff against: the last committed
// state, or nil before the first commit and after [Guardian.Reset].
func (g *Guardian) OldState() *State {
	if !g.oldValid || g.reset {
		return nil
	}
	return g.old
}
