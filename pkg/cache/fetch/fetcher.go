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

// Package fetch implements the transports the source cache materializes
// sources with. Each Fetcher writes one source version into a directory the
// cache later promotes atomically; fetchers never touch the cache layout
// themselves.
package fetch

import (
	"context"

	"kpt.dev/templatesync/pkg/api/templates/v1alpha1"
	"kpt.dev/templatesync/pkg/status"
)

// Fetcher materializes one version of a source into dir.
type Fetcher interface {
	// Fetch downloads source at its configured version and writes the
	// materialized files under dir. The returned error distinguishes
	// retryable transport failures from terminal not-found and auth
	// failures.
	Fetch(ctx context.Context, source v1alpha1.SourceSpec, dir string) status.Error
}

// DefaultFetchers returns the production transport for every source type.
func DefaultFetchers() map[v1alpha1.SourceType]Fetcher {
	return map[v1alpha1.SourceType]Fetcher{
		v1alpha1.SourceTypeGit:  &GitFetcher{},
		v1alpha1.SourceTypeHTTP: &HTTPFetcher{},
		v1alpha1.SourceTypeOCI:  &OCIFetcher{},
	}
}

// timeoutOr wraps err as a timeout failure if the context deadline elapsed,
// and as a retryable transport failure otherwise.
func timeoutOr(ctx context.Context, err error, source v1alpha1.SourceSpec) status.Error {
	if ctx.Err() == context.DeadlineExceeded {
		return status.FetchTimeoutError(err, source.Name, source.Version)
	}
	return status.SourceFetchError(err, source.Name, source.Version)
}
