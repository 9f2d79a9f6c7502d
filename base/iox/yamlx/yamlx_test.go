// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package yamlx

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDoc struct {
	Name     string   `yaml:"name"`
	Children []string `yaml:"children"`
}

func TestWriteRead(t *testing.T) {
	var buf bytes.Buffer
	in := &testDoc{Name: "root", Children: []string{"a", "b"}}
	require.NoError(t, Write(in, &buf))
	assert.Contains(t, buf.String(), "name: root")

	out := &testDoc{}
	require.NoError(t, Read(out, &buf))
	assert.Equal(t, in, out)
}
