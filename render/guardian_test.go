// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/scene/base/errors"
)

func TestGuardianRegister(t *testing.T) {
	g := NewGuardian()
	h := func(ns, os *State) {}
	require.NoError(t, g.RegisterHandler(Wireframe, h))
	assert.True(t, errors.Is(g.RegisterHandler(Wireframe, h), ErrConflict))
	assert.True(t, errors.Is(g.RegisterHandler(Smooth|Alpha, h), ErrConflict))
	assert.True(t, errors.Is(g.RegisterHandler(0, h), ErrConflict))
	assert.True(t, errors.Is(g.RegisterHandler(ModeBit(ModeBitsN), h), ErrConflict))
}

func TestGuardianCommit(t *testing.T) {
	g := NewGuardian()
	type call struct {
		bit    Mode
		on     bool
		hadOld bool
	}
	var calls []call
	for i := range ModeBitsN {
		bit := ModeBit(i)
		require.NoError(t, g.RegisterHandler(bit, func(ns, os *State) {
			calls = append(calls, call{bit, ns.Mode.Has(bit), os != nil})
		}))
	}

	s := NewState()
	s.Mode = Smooth | Lit
	assert.Nil(t, g.OldState())
	g.Commit(s)
	// every bit is committed, set or not
	require.Len(t, calls, ModeBitsN)
	for i, c := range calls {
		assert.Equal(t, ModeBit(i), c.bit)
		assert.Equal(t, s.Mode.Has(c.bit), c.on)
		assert.False(t, c.hadOld)
	}
	require.NotNil(t, g.OldState())
	assert.True(t, s.Equal(g.OldState()))

	calls = nil
	g.Commit(s)
	for _, c := range calls {
		assert.True(t, c.hadOld)
	}

	g.Reset()
	assert.Nil(t, g.OldState())
	calls = nil
	g.Commit(s)
	for _, c := range calls {
		assert.False(t, c.hadOld)
	}
	calls = nil
	g.Commit(s)
	for _, c := range calls {
		assert.True(t, c.hadOld)
	}
}

func TestGuardianOldStateIsCopy(t *testing.T) {
	g := NewGuardian()
	var seen []Mode
	require.NoError(t, g.RegisterHandler(Alpha, func(ns, os *State) {
		if os != nil {
			seen = append(seen, os.Mode)
		}
	}))
	s := NewState()
	s.Mode = Alpha
	g.Commit(s)
	s.Mode = Smooth
	g.Commit(s)
	assert.Equal(t, []Mode{Alpha}, seen)
}
