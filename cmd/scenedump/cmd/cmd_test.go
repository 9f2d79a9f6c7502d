// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/scene/camera"
	"cogentcore.org/scene/cmd/scenedump/config"
)

var testScene = filepath.Join("testdata", "scene.toml")

func testConfig() *config.Config {
	c := &config.Config{}
	c.Defaults()
	return c
}

// assertOrder asserts that the given strings occur in the output in order.
func assertOrder(t *testing.T, out string, strs ...string) {
	t.Helper()
	last := -1
	for _, s := range strs {
		i := strings.Index(out, s)
		if assert.GreaterOrEqual(t, i, 0, "missing %q in:\n%s", s, out) {
			assert.Greater(t, i, last, "%q out of order in:\n%s", s, out)
			last = i
		}
	}
}

func TestDump(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Dump(context.Background(), testConfig(), testScene, &buf))
	out := buf.String()
	assert.Contains(t, out, "scene test: 4 nodes from 4 sources")
	assert.Contains(t, out, "draw calls: 3")
	assertOrder(t, out, "Wireframe tri (tri)", "Smooth box (box)", "Alpha glass (glass)")
	_, calls, _ := strings.Cut(out, "draw calls: 3\n")
	first, _, _ := strings.Cut(calls, "\n")
	assert.True(t, strings.HasPrefix(first, "Wireframe tri"), first)
	assert.NotContains(t, first, "changed=0")
}

func TestDumpIncludeEmpty(t *testing.T) {
	c := testConfig()
	c.IncludeEmpty = true
	var buf bytes.Buffer
	require.NoError(t, Dump(context.Background(), c, testScene, &buf))
	assert.Contains(t, buf.String(), "scene test: 4 nodes from 4 sources")

	err := Dump(context.Background(), c, filepath.Join("testdata", "missing.toml"), &buf)
	assert.Error(t, err)
}

func TestDumpHide(t *testing.T) {
	c := testConfig()
	c.Hide = []string{"glass", "/tri"}
	var buf bytes.Buffer
	require.NoError(t, Dump(context.Background(), c, testScene, &buf))
	out := buf.String()
	assert.Contains(t, out, "scene test: 2 nodes from 4 sources")
	assert.Contains(t, out, "draw calls: 1\n")
	assert.Contains(t, out, "Smooth box (box)")
	assert.NotContains(t, out, "(glass)")
	assert.NotContains(t, out, "(tri)")

	c.Hide = []string{"box", "glass", "tri"}
	buf.Reset()
	require.NoError(t, Dump(context.Background(), c, testScene, &buf))
	assert.Contains(t, buf.String(), "scene test: 1 nodes from 4 sources")
	assert.Contains(t, buf.String(), "draw calls: 0\n")

	c.Hide = []string{"box/lid"}
	err := Dump(context.Background(), c, testScene, &buf)
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), `"box/lid"`)
	}
	c.Hide = []string{"/"}
	assert.Error(t, Dump(context.Background(), c, testScene, &buf))
}

func TestPick(t *testing.T) {
	c := testConfig()
	c.Pick.X, c.Pick.Y = 52, 50
	var buf bytes.Buffer
	require.NoError(t, Pick(context.Background(), c, testScene, &buf))
	out := buf.String()
	assert.Contains(t, out, "hits: 1\n")
	assert.Contains(t, out, "0: box at")
	assert.Contains(t, out, "data [10]")

	c.Pick.Multi = true
	buf.Reset()
	require.NoError(t, Pick(context.Background(), c, testScene, &buf))
	assert.Contains(t, buf.String(), "hits: 2\n")

	c.Pick.X, c.Pick.Y = 0, 0
	c.Pick.Frustum = "100,100"
	buf.Reset()
	require.NoError(t, Pick(context.Background(), c, testScene, &buf))
	// 12 box triangles, the triangle, and the sphere bounds
	assert.Contains(t, buf.String(), "hits: 14\n")

	c.Pick.Frustum = "wide"
	assert.Error(t, Pick(context.Background(), c, testScene, &buf))
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in   string
		w, h int
		ok   bool
	}{
		{"", 0, 0, true},
		{"10,20", 10, 20, true},
		{" 3 , 4 ", 3, 4, true},
		{"10", 0, 0, false},
		{"a,b", 0, 0, false},
		{"-1,2", 0, 0, false},
	}
	for _, tt := range tests {
		w, h, err := parseSize(tt.in)
		if tt.ok {
			assert.NoError(t, err, tt.in)
		} else {
			assert.Error(t, err, tt.in)
		}
		assert.Equal(t, tt.w, w, tt.in)
		assert.Equal(t, tt.h, h, tt.in)
	}
}

func TestCamera(t *testing.T) {
	c := testConfig()
	c.Camera.Output = filepath.Join(t.TempDir(), "cam.toml")
	var buf bytes.Buffer
	require.NoError(t, Camera(context.Background(), c, testScene, &buf))
	assertOrder(t, buf.String(), "viewType = Perspective", "eye = ", "focusRadius = ", "saved ")

	cam := camera.New()
	require.NoError(t, cam.OpenState(c.Camera.Output))
	assert.InDelta(t, 10, cam.Eye().Z, 1e-5)
	assert.InDelta(t, 500, cam.FarZ(), 1e-3)
}

func TestRootCommand(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "scenedump.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("[Pick]\nX = 52\nY = 50\nMulti = true\n"), 0666))

	run := func(args ...string) string {
		var buf bytes.Buffer
		root := NewRoot()
		root.SetOut(&buf)
		root.SetErr(&buf)
		root.SetArgs(args)
		require.NoError(t, root.Execute(), strings.Join(args, " "))
		return buf.String()
	}

	out := run("-q", "dump", testScene)
	assert.Contains(t, out, "draw calls: 3")

	out = run("-q", "--config", cfg, "pick", testScene)
	assert.Contains(t, out, "hits: 2\n")

	// flags take precedence over the config file
	out = run("-q", "--config", cfg, "pick", "--multi=false", testScene)
	assert.Contains(t, out, "hits: 1\n")

	out = run("-q", "--hide", "glass,tri", "dump", testScene)
	assert.Contains(t, out, "2 nodes from 4 sources")

	hideCfg := filepath.Join(t.TempDir(), "hide.toml")
	require.NoError(t, os.WriteFile(hideCfg, []byte("Hide = [\"box\"]\n"), 0666))
	out = run("-q", "--config", hideCfg, "dump", testScene)
	assert.Contains(t, out, "3 nodes from 4 sources")
	assert.NotContains(t, out, "(box)")
	out = run("-q", "--config", hideCfg, "--hide", "glass", "dump", testScene)
	assert.Contains(t, out, "3 nodes from 4 sources")
	assert.Contains(t, out, "(box)")
	assert.NotContains(t, out, "(glass)")

	out = run("-q", "--width", "200", "pick", "--x", "2", "--y", "2", testScene)
	assert.Contains(t, out, "hits: 0\n")

	camFile := filepath.Join(t.TempDir(), "state.toml")
	out = run("-q", "camera", "-o", camFile, testScene)
	assert.Contains(t, out, "saved "+camFile)
	assert.FileExists(t, camFile)

	root := NewRoot()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"-q", "dump"})
	assert.Error(t, root.Execute())
}

func TestWatch(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "scene.toml")
	data, err := os.ReadFile(testScene)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(fn, data, 0666))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	calls := make(chan struct{}, 10)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, fn, 10*time.Millisecond, func() error {
			calls <- struct{}{}
			return nil
		})
	}()

	wait := func() {
		t.Helper()
		select {
		case <-calls:
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for watch call")
		}
	}
	wait()
	require.NoError(t, os.WriteFile(fn, append(data, '\n'), 0666))
	wait()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}
