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

// Package cache materializes remote sources on local disk, one directory
// per source version. Entries are promoted atomically so readers never see
// a partially written version, and at most one fetch per source version is
// in flight at any time.
package cache

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/Masterminds/semver/v3"
	"go.uber.org/multierr"
	"k8s.io/klog/v2"

	"kpt.dev/templatesync/pkg/api/templates"
	"kpt.dev/templatesync/pkg/api/templates/v1alpha1"
	"kpt.dev/templatesync/pkg/cache/fetch"
	"kpt.dev/templatesync/pkg/metrics"
	"kpt.dev/templatesync/pkg/status"
)

// Cache is a versioned on-disk store of materialized sources. The layout
// under root is {name}__{type}/{version}/ with a metadata record beside the
// materialized files.
type Cache struct {
	root     string
	fetchers map[v1alpha1.SourceType]fetch.Fetcher

	// now is stubbed in tests to control expiry.
	now func() time.Time

	mux      sync.Mutex
	inflight map[string]*inflightFetch
}

// inflightFetch tracks one in-progress materialization. Waiters block on
// done and read path/err afterwards.
type inflightFetch struct {
	done chan struct{}
	path string
	err  status.Error
}

// New returns a Cache rooted at root with the production transports.
func New(root string) *Cache {
	return NewWithFetchers(root, fetch.DefaultFetchers())
}

// NewWithFetchers returns a Cache with caller-supplied transports.
func NewWithFetchers(root string, fetchers map[v1alpha1.SourceType]fetch.Fetcher) *Cache {
	return &Cache{
		root:     root,
		fetchers: fetchers,
		now:      time.Now,
		inflight: make(map[string]*inflightFetch),
	}
}

// GetOrFetch returns the directory holding the materialized source at
// version, fetching it first if no valid cache entry exists. An entry is
// valid when its metadata record is readable, its TTL has not elapsed, and
// its checksum matches the files on disk. Concurrent calls for the same
// source version share a single fetch.
func (c *Cache) GetOrFetch(ctx context.Context, source v1alpha1.SourceSpec, version string) (string, status.Error) {
	if version == "" {
		version = source.Version
	}
	source.Version = version

	if err := validateVersion(source); err != nil {
		return "", err
	}

	key := entryKey(source)

	c.mux.Lock()
	if call, found := c.inflight[key]; found {
		c.mux.Unlock()
		select {
		case <-call.done:
			return call.path, call.err
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return "", status.FetchTimeoutError(ctx.Err(), source.Name, version)
			}
			return "", status.SourceFetchError(ctx.Err(), source.Name, version)
		}
	}
	call := &inflightFetch{done: make(chan struct{})}
	c.inflight[key] = call
	c.mux.Unlock()

	call.path, call.err = c.getOrFetch(ctx, source)
	close(call.done)

	c.mux.Lock()
	delete(c.inflight, key)
	c.mux.Unlock()

	return call.path, call.err
}

// getOrFetch does the lookup and, on miss, the fetch. The caller holds the
// in-flight slot for this entry, so no other fetch can race the promote.
func (c *Cache) getOrFetch(ctx context.Context, source v1alpha1.SourceSpec) (string, status.Error) {
	entryDir := filepath.Join(c.root, entryKey(source))

	outcome, reason := c.lookup(entryDir, source)
	metrics.RecordCacheLookup(ctx, string(source.Type), outcome)
	if outcome == metrics.LookupHit {
		klog.V(2).Infof("cache hit for source %q version %q", source.Name, source.Version)
		return entryDir, nil
	}
	klog.V(2).Infof("fetching source %q version %q: %s", source.Name, source.Version, reason)

	if err := c.fetch(ctx, source, entryDir); err != nil {
		return "", err
	}
	return entryDir, nil
}

// lookup classifies the state of an existing entry. reason is a short
// human-readable explanation for the log line on miss.
func (c *Cache) lookup(entryDir string, source v1alpha1.SourceSpec) (outcome, reason string) {
	meta, err := readMetadata(entryDir)
	switch {
	case os.IsNotExist(err):
		return metrics.LookupMiss, "no cache entry"
	case err != nil:
		return metrics.LookupExpired, fmt.Sprintf("unreadable cache metadata: %v", err)
	case meta.expired(c.now()):
		return metrics.LookupExpired, fmt.Sprintf("entry expired at %s", meta.ExpiresAt.Format(time.RFC3339))
	}
	sum, err := checksumDir(entryDir)
	if err != nil {
		return metrics.LookupExpired, fmt.Sprintf("unreadable cache entry: %v", err)
	}
	if sum != meta.Checksum {
		return metrics.LookupExpired, "cache entry failed checksum"
	}
	return metrics.LookupHit, ""
}

// fetch materializes the source into a temp directory and atomically
// promotes it over entryDir with a rename.
func (c *Cache) fetch(ctx context.Context, source v1alpha1.SourceSpec, entryDir string) status.Error {
	fetcher, found := c.fetchers[source.Type]
	if !found {
		return status.InternalErrorf("no fetcher registered for source type %q", source.Type)
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, templates.DefaultFetchTimeout)
		defer cancel()
	}

	if err := os.MkdirAll(filepath.Dir(entryDir), os.FileMode(0755)); err != nil {
		return status.InternalWrap(err)
	}
	tmpDir, err := os.MkdirTemp(c.root, ".tmp-fetch-*")
	if err != nil {
		return status.InternalWrap(err)
	}

	start := c.now()
	fetchErr := fetcher.Fetch(ctx, source, tmpDir)
	metrics.RecordFetchDuration(ctx, string(source.Type), metrics.StatusTagKey(fetchErr), start)
	if fetchErr != nil {
		if err := os.RemoveAll(tmpDir); err != nil {
			klog.Warningf("failed to clean up fetch directory %q: %v", tmpDir, err)
		}
		return fetchErr
	}

	if err := c.promote(tmpDir, entryDir, source, start); err != nil {
		err = multierr.Append(err, os.RemoveAll(tmpDir))
		return status.SourceFetchError(err, source.Name, source.Version)
	}
	return nil
}

// promote stamps the metadata record and renames the temp directory over
// the entry. The rename is the commit point; a stale entry is removed
// first so readers only ever see the old valid entry or the new one.
func (c *Cache) promote(tmpDir, entryDir string, source v1alpha1.SourceSpec, fetchedAt time.Time) error {
	sum, err := checksumDir(tmpDir)
	if err != nil {
		return err
	}
	meta := &entryMetadata{
		SourceName: source.Name,
		SourceType: string(source.Type),
		Version:    source.Version,
		FetchedAt:  fetchedAt,
		Checksum:   sum,
	}
	if source.TTL != nil {
		expiresAt := fetchedAt.Add(source.TTL.Duration)
		meta.ExpiresAt = &expiresAt
	}
	if err := writeMetadata(tmpDir, meta); err != nil {
		return err
	}
	if err := os.RemoveAll(entryDir); err != nil {
		return err
	}
	return os.Rename(tmpDir, entryDir)
}

// entryKey is the entry's path relative to the cache root. Characters that
// do not survive as directory names are escaped.
func entryKey(source v1alpha1.SourceSpec) string {
	return filepath.Join(
		fmt.Sprintf("%s__%s", sanitize(source.Name), source.Type),
		sanitize(source.Version))
}

var pathSanitizer = strings.NewReplacer("/", "_", string(os.PathSeparator), "_", ":", "_")

func sanitize(s string) string {
	return pathSanitizer.Replace(s)
}

// validateVersion rejects version strings that look like semantic versions
// but fail to parse, catching typos before a fetch is attempted. Branch
// names and commit hashes are passed through untouched.
func validateVersion(source v1alpha1.SourceSpec) status.Error {
	v := source.Version
	if v == "" {
		return status.InvalidSourceVersionError(fmt.Errorf("version must not be empty"), source.Name, v)
	}
	candidate := strings.TrimPrefix(v, "v")
	if len(candidate) == 0 || !unicode.IsDigit(rune(candidate[0])) || !strings.Contains(candidate, ".") {
		return nil
	}
	if _, err := semver.NewVersion(v); err != nil {
		return status.InvalidSourceVersionError(err, source.Name, v)
	}
	return nil
}
