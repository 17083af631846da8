// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fetch

import (
	"archive/tar"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tarStream(t *testing.T, entries map[string]string) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	tw := tar.NewWriter(buf)
	for name, content := range entries {
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name: name,
			Mode: 0644,
			Size: int64(len(content)),
		}))
		_, err := tw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	return buf
}

func TestExtractTar(t *testing.T) {
	dir := t.TempDir()
	stream := tarStream(t, map[string]string{
		"templates/observability.yaml": "name: observability\n",
		"README.md":                    "docs\n",
	})

	require.NoError(t, extractTar(stream, dir))

	data, err := os.ReadFile(filepath.Join(dir, "templates/observability.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "name: observability\n", string(data))

	data, err = os.ReadFile(filepath.Join(dir, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "docs\n", string(data))
}

func TestExtractTarRejectsPathTraversal(t *testing.T) {
	dir := t.TempDir()
	stream := tarStream(t, map[string]string{
		"../escape.yaml": "nope\n",
	})

	err := extractTar(stream, dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "escapes the target directory")

	_, statErr := os.Stat(filepath.Join(filepath.Dir(dir), "escape.yaml"))
	assert.True(t, os.IsNotExist(statErr), "file written outside the target directory")
}
