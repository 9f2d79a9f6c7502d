// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tolassert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type mockT struct {
	failed bool
}

func (m *mockT) Errorf(format string, args ...any) {
	m.failed = true
}

func TestEqualTol(t *testing.T) {
	assert.True(t, EqualTol(t, float32(1), 1.000001, 1e-5))
	assert.True(t, EqualTolSlice(t, []float64{1, 2}, []float64{1.0000001, 1.9999999}, 1e-5))

	mock := &mockT{}
	assert.False(t, EqualTol(mock, 1.0, 1.1, 0.01))
	assert.False(t, EqualTolSlice(mock, []float32{1}, []float32{1, 2}, 0.01))
	assert.False(t, EqualTolSlice(mock, []float32{1, 2}, []float32{1, 3}, 0.01))
	assert.True(t, mock.failed)
}
