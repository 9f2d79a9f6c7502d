// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "v.json")
	in := map[string]float64{"x": 1.5, "y": -2}
	require.NoError(t, Save(in, fn))
	out := map[string]float64{}
	require.NoError(t, Open(&out, fn))
	assert.Equal(t, in, out)
}
