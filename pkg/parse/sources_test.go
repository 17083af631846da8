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

package parse

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"kpt.dev/templatesync/pkg/api/templates/v1alpha1"
	"kpt.dev/templatesync/pkg/cache"
	"kpt.dev/templatesync/pkg/cache/fetch"
	"kpt.dev/templatesync/pkg/status"
)

// stubFetcher serves in-memory template files and can fail its first calls.
type stubFetcher struct {
	calls     int32
	failFirst int32
	failWith  func() status.Error
	files     map[string]string
}

func (f *stubFetcher) Fetch(_ context.Context, _ v1alpha1.SourceSpec, dir string) status.Error {
	n := atomic.AddInt32(&f.calls, 1)
	if n <= f.failFirst {
		return f.failWith()
	}
	for name, content := range f.files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return status.InternalWrap(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return status.InternalWrap(err)
		}
	}
	return nil
}

func stubCache(t *testing.T, fetcher *stubFetcher) *cache.Cache {
	t.Helper()
	return cache.NewWithFetchers(t.TempDir(), map[v1alpha1.SourceType]fetch.Fetcher{
		v1alpha1.SourceTypeGit: fetcher,
	})
}

func platformSource() v1alpha1.SourceSpec {
	return v1alpha1.SourceSpec{
		Name:    "platform",
		Type:    v1alpha1.SourceTypeGit,
		Version: "v1.0.0",
		URL:     "https://example.com/platform.git",
	}
}

func TestSources(t *testing.T) {
	fetcher := &stubFetcher{files: map[string]string{
		"templates/observability.yaml": validTemplate,
	}}
	definitions, errs := Sources(context.Background(), stubCache(t, fetcher), []v1alpha1.SourceSpec{platformSource()})
	if errs != nil {
		t.Fatalf("Sources() = %v, want nil", errs)
	}
	definition, found := definitions["observability"]
	if !found {
		t.Fatal("observability definition not loaded")
	}
	if definition.Source == nil || definition.Source.Name != "platform" {
		t.Errorf("definition source = %v, want stamped with the owning source", definition.Source)
	}
}

func TestSourcesRetriesRetryableFailures(t *testing.T) {
	fetcher := &stubFetcher{
		failFirst: 2,
		failWith: func() status.Error {
			return status.SourceFetchError(errors.New("connection refused"), "platform", "v1.0.0")
		},
		files: map[string]string{"templates/observability.yaml": validTemplate},
	}
	definitions, errs := Sources(context.Background(), stubCache(t, fetcher), []v1alpha1.SourceSpec{platformSource()})
	if errs != nil {
		t.Fatalf("Sources() = %v, want nil after retries", errs)
	}
	if _, found := definitions["observability"]; !found {
		t.Error("observability definition not loaded after retries")
	}
	if got := atomic.LoadInt32(&fetcher.calls); got != 3 {
		t.Errorf("fetcher called %d times, want 3", got)
	}
}

func TestSourcesDoesNotRetryTerminalFailures(t *testing.T) {
	fetcher := &stubFetcher{
		failFirst: 99,
		failWith: func() status.Error {
			return status.SourceNotFoundError("platform", "v1.0.0")
		},
	}
	_, errs := Sources(context.Background(), stubCache(t, fetcher), []v1alpha1.SourceSpec{platformSource()})
	if want := status.FakeMultiError(status.SourceNotFoundErrorCode); !errors.Is(errs, want) {
		t.Fatalf("got Sources() error %v, want %v", errs, want)
	}
	if got := atomic.LoadInt32(&fetcher.calls); got != 1 {
		t.Errorf("fetcher called %d times for a terminal failure, want 1", got)
	}
}

func TestSourcesDuplicateTemplateAcrossSources(t *testing.T) {
	fetcher := &stubFetcher{files: map[string]string{
		"templates/observability.yaml": validTemplate,
	}}
	sources := []v1alpha1.SourceSpec{platformSource(), {
		Name:    "second",
		Type:    v1alpha1.SourceTypeGit,
		Version: "v1.0.0",
		URL:     "https://example.com/second.git",
	}}
	_, errs := Sources(context.Background(), stubCache(t, fetcher), sources)
	want := status.FakeMultiError(DuplicateTemplateErrorCode)
	if !errors.Is(errs, want) {
		t.Errorf("got Sources() error %v, want %v", errs, want)
	}
}
