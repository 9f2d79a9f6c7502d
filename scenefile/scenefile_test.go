// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scenefile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/scene/base/tolassert"
	"cogentcore.org/scene/camera"
	"cogentcore.org/scene/components"
	"cogentcore.org/scene/math32"
	"cogentcore.org/scene/render"
	"cogentcore.org/scene/tree"
)

func TestOpenFormats(t *testing.T) {
	ft, err := Open(filepath.Join("testdata", "scene.toml"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("testdata", "scene.toml"), ft.Filename())
	assert.Equal(t, "demo", ft.Name)
	assert.Equal(t, Viewport{100, 100}, ft.Viewport)
	assert.Equal(t, "Perspective", ft.Camera.View)
	assert.Equal(t, Vec3{0, 0, 10}, ft.Camera.Eye)
	assert.Equal(t, 5, ft.NumNodes())
	require.Len(t, ft.Nodes, 4)
	assert.Equal(t, "glass", ft.Nodes[1].Properties["material"])

	for _, fn := range []string{"scene.yaml", "scene.json"} {
		f, err := Open(filepath.Join("testdata", fn))
		require.NoError(t, err, fn)
		f.filename = ft.filename
		assert.Equal(t, ft, f, fn)
	}
}

func TestOpenErrors(t *testing.T) {
	_, err := Open("scene.txt")
	assert.ErrorIs(t, err, ErrFormat)

	_, err = Open(filepath.Join("testdata", "missing.toml"))
	assert.Error(t, err)

	_, err = Open(filepath.Join("testdata", "badmode.toml"))
	assert.ErrorIs(t, err, ErrFormat)

	f := &File{}
	f.Defaults()
	f.Nodes = []*Node{{Name: "m", Mesh: &Mesh{Vertices: []Vec3{{}}, Indices: []int{0, 0}}}}
	assert.ErrorIs(t, f.Validate(), ErrFormat)
	f.Nodes[0].Mesh.Indices = []int{0, 0, 1}
	assert.ErrorIs(t, f.Validate(), ErrFormat)
	f.Nodes[0].Mesh.Indices = []int{0, 0, 0}
	assert.NoError(t, f.Validate())
	f.Camera.View = "Sideways"
	assert.ErrorIs(t, f.Validate(), ErrFormat)
}

func TestSave(t *testing.T) {
	f, err := Open(filepath.Join("testdata", "scene.toml"))
	require.NoError(t, err)
	dir := t.TempDir()
	for _, fn := range []string{"out.toml", "out.yaml", "out.json"} {
		path := filepath.Join(dir, fn)
		require.NoError(t, f.Save(path), fn)
		g, err := Open(path)
		require.NoError(t, err, fn)
		assert.Equal(t, f.Nodes, g.Nodes, fn)
		assert.Equal(t, f.Camera, g.Camera, fn)
	}
	assert.ErrorIs(t, f.Save(filepath.Join(dir, "out.xml")), ErrFormat)
	_, err = os.Stat(filepath.Join(dir, "out.xml"))
	assert.True(t, os.IsNotExist(err))
}

func TestTree(t *testing.T) {
	f, err := Open(filepath.Join("testdata", "scene.yaml"))
	require.NoError(t, err)
	root := f.Tree()
	assert.Equal(t, "/demo", root.Path())
	require.Len(t, root.Children, 4)

	glass := root.ChildByName("glass")
	require.NotNil(t, glass)
	assert.Equal(t, "glass", glass.Property("material"))
	ss, ok := render.As[*components.StateSetter](glass)
	require.True(t, ok)
	assert.Equal(t, render.Smooth|render.Alpha|render.SolidColor|render.Lit, ss.State.Mode)
	assert.Equal(t, math32.Vec4(1, 0, 0, 0.5), ss.State.SolidColor)
	pose, ok := render.As[render.Transformable](glass)
	require.True(t, ok)
	assert.Equal(t, math32.Vec3(3, 0, 0), pose.Translation())
	assert.Equal(t, math32.Vec3(1, 1, 1), pose.Scale())

	hidden := root.FindPath("group/hidden")
	require.NotNil(t, hidden)
	_, ok = render.As[*components.Mesh](hidden)
	assert.True(t, ok)
	_, ok = render.As[*components.Cull](hidden.Parent)
	assert.True(t, ok)
}

func TestCamera(t *testing.T) {
	f, err := Open(filepath.Join("testdata", "scene.json"))
	require.NoError(t, err)
	cam, err := f.NewCamera()
	require.NoError(t, err)
	assert.Equal(t, math32.Vec3(0, 0, 10), cam.WorldEye())
	assert.Equal(t, float32(0.1), cam.NearZ())
	assert.Equal(t, float32(500), cam.FarZ())
	assert.Equal(t, float32(1), cam.Aspect())

	f.Camera.ZUp = true
	f.Camera.Up = Vec3{0, 0, 1}
	f.Camera.Eye = Vec3{0, -10, 0}
	f.Viewport = Viewport{200, 100}
	cam, err = f.NewCamera()
	require.NoError(t, err)
	worldEye, eye := cam.WorldEye().ToArray(), cam.Eye().ToArray()
	tolassert.EqualTolSlice(t, []float32{0, -10, 0}, worldEye[:], 1e-4)
	tolassert.EqualTolSlice(t, []float32{0, 0, 10}, eye[:], 1e-4)
	assert.Equal(t, float32(2), cam.Aspect())

	f.Camera.Fov = -1
	_, err = f.NewCamera()
	assert.ErrorIs(t, err, camera.ErrOutOfRange)
}

// TestDispatch builds and dispatches the test scene: the group is
// behind the camera and is culled along with its child.
func TestDispatch(t *testing.T) {
	f, err := Open(filepath.Join("testdata", "scene.toml"))
	require.NoError(t, err)
	cam, err := f.NewCamera()
	require.NoError(t, err)

	b := &render.Builder{TreeView: tree.View{}}
	root, err := b.Build(context.Background(), f.Tree(), nil)
	require.NoError(t, err)

	rec := &components.Recorder{}
	ra := render.NewRenderAction(nil)
	ra.SetViewport(f.Viewport.Width, f.Viewport.Height)
	ra.DispatchFunc = rec.Dispatch
	ra.Dispatch(root, cam)
	assert.Equal(t, []string{"tri", "box", "glass"}, rec.Names())

	calls := rec.Calls()
	assert.Equal(t, render.WireframePass, calls[0].Pass)
	assert.Equal(t, render.AlphaPass, calls[2].Pass)
}
