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
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"k8s.io/klog/v2"

	"kpt.dev/templatesync/pkg/api/templates/v1alpha1"
	"kpt.dev/templatesync/pkg/status"
)

// versionPlaceholder in an HTTP source URL is replaced with the version
// being fetched.
const versionPlaceholder = "{version}"

// HTTPFetcher downloads a source packaged as a gzipped tarball over HTTP.
type HTTPFetcher struct {
	// Client is the HTTP client to fetch with. Defaults to
	// http.DefaultClient.
	Client *http.Client
}

// Fetch downloads the archive at the source URL and extracts it under dir.
func (f *HTTPFetcher) Fetch(ctx context.Context, source v1alpha1.SourceSpec, dir string) status.Error {
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	url := archiveURL(source)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return status.SourceFetchError(err, source.Name, source.Version)
	}
	resp, err := client.Do(req)
	if err != nil {
		return timeoutOr(ctx, err, source)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			klog.Warningf("failed to close response body for %q: %v", url, err)
		}
	}()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return status.SourceNotFoundError(source.Name, source.Version)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return status.SourceAuthError(fmt.Errorf("GET %q: %s", url, resp.Status), source.Name)
	case resp.StatusCode != http.StatusOK:
		return timeoutOr(ctx, fmt.Errorf("GET %q: %s", url, resp.Status), source)
	}

	gzReader, err := gzip.NewReader(resp.Body)
	if err != nil {
		return status.SourceFetchError(fmt.Errorf("response from %q is not a gzipped archive: %w", url, err), source.Name, source.Version)
	}
	defer func() {
		if err := gzReader.Close(); err != nil {
			klog.Warningf("failed to close gzip reader for %q: %v", url, err)
		}
	}()

	if err := extractTar(io.Reader(gzReader), dir); err != nil {
		return status.SourceFetchError(fmt.Errorf("failed to extract archive from %q: %w", url, err), source.Name, source.Version)
	}
	return nil
}

// archiveURL substitutes the version into the source URL. A URL without the
// placeholder is used verbatim.
func archiveURL(source v1alpha1.SourceSpec) string {
	return strings.ReplaceAll(source.URL, versionPlaceholder, source.Version)
}
