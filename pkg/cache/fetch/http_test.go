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
	"compress/gzip"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kpt.dev/templatesync/pkg/api/templates/v1alpha1"
	"kpt.dev/templatesync/pkg/status"
)

// writeTarGz streams a gzipped tarball holding the given files.
func writeTarGz(t *testing.T, w http.ResponseWriter, files map[string]string) {
	t.Helper()
	gz := gzip.NewWriter(w)
	tw := tar.NewWriter(gz)
	for name, content := range files {
		require.NoError(t, tw.WriteHeader(&tar.Header{
			Name: name,
			Mode: 0644,
			Size: int64(len(content)),
		}))
		_, err := tw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())
}

func httpSource(url string) v1alpha1.SourceSpec {
	return v1alpha1.SourceSpec{
		Name:    "platform",
		Type:    v1alpha1.SourceTypeHTTP,
		Version: "v1.2.3",
		URL:     url,
	}
}

func TestHTTPFetcher(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/archives/v1.2.3.tar.gz", r.URL.Path)
		writeTarGz(t, w, map[string]string{
			"templates/observability.yaml": "name: observability\n",
		})
	}))
	defer server.Close()

	dir := t.TempDir()
	source := httpSource(server.URL + "/archives/{version}.tar.gz")
	err := (&HTTPFetcher{}).Fetch(context.Background(), source, dir)
	require.NoError(t, err)

	data, readErr := os.ReadFile(filepath.Join(dir, "templates/observability.yaml"))
	require.NoError(t, readErr)
	assert.Equal(t, "name: observability\n", string(data))
}

func TestHTTPFetcherStatusCodes(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
		wantCode   string
	}{
		{name: "not found", statusCode: http.StatusNotFound, wantCode: status.SourceNotFoundErrorCode},
		{name: "gone", statusCode: http.StatusGone, wantCode: status.SourceNotFoundErrorCode},
		{name: "unauthorized", statusCode: http.StatusUnauthorized, wantCode: status.SourceAuthErrorCode},
		{name: "forbidden", statusCode: http.StatusForbidden, wantCode: status.SourceAuthErrorCode},
		{name: "server error", statusCode: http.StatusInternalServerError, wantCode: status.SourceFetchErrorCode},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.statusCode)
			}))
			defer server.Close()

			err := (&HTTPFetcher{}).Fetch(context.Background(), httpSource(server.URL), t.TempDir())
			require.Error(t, err)
			assert.Equal(t, tc.wantCode, err.Code())
		})
	}
}

func TestHTTPFetcherRejectsNonArchive(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>not an archive</html>"))
	}))
	defer server.Close()

	err := (&HTTPFetcher{}).Fetch(context.Background(), httpSource(server.URL), t.TempDir())
	require.Error(t, err)
	assert.Equal(t, status.SourceFetchErrorCode, err.Code())
}

func TestArchiveURL(t *testing.T) {
	testCases := []struct {
		name   string
		url    string
		want   string
		source v1alpha1.SourceSpec
	}{
		{
			name: "placeholder substituted",
			url:  "https://example.com/archives/{version}.tar.gz",
			want: "https://example.com/archives/v1.2.3.tar.gz",
		},
		{
			name: "no placeholder used verbatim",
			url:  "https://example.com/archives/latest.tar.gz",
			want: "https://example.com/archives/latest.tar.gz",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, archiveURL(httpSource(tc.url)))
		})
	}
}
