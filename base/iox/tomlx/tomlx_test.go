// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Name  string
	Count int
	Tags  []string
}

func TestSaveOpen(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "cfg.toml")
	in := &testConfig{Name: "scene", Count: 3, Tags: []string{"a", "b"}}
	require.NoError(t, Save(in, fn))

	out := &testConfig{}
	require.NoError(t, Open(out, fn))
	assert.Equal(t, in, out)
}

func TestOpenFiles(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "base.toml")
	over := filepath.Join(dir, "over.toml")
	require.NoError(t, os.WriteFile(base, []byte("Name = \"base\"\nCount = 1\n"), 0666))
	require.NoError(t, os.WriteFile(over, []byte("Count = 7\n"), 0666))

	cfg := &testConfig{}
	require.NoError(t, OpenFiles(cfg, base, over))
	assert.Equal(t, "base", cfg.Name)
	assert.Equal(t, 7, cfg.Count)

	assert.Error(t, OpenFiles(cfg, filepath.Join(dir, "missing.toml")))
}

func TestBytes(t *testing.T) {
	b, err := WriteBytes(&testConfig{Name: "x"})
	require.NoError(t, err)
	cfg := &testConfig{}
	require.NoError(t, ReadBytes(cfg, b))
	assert.Equal(t, "x", cfg.Name)
}
